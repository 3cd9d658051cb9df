package roster

import (
	"fmt"

	"rosterd.transitops.org/internal/models"
)

// NormalizeDutyEvent resolves one duty event into a concrete segment,
// dereferencing through the vehicle and trip collections as the event's
// variant requires. Any unresolvable reference or unknown variant is an error;
// a missing stop name is not, the segment simply carries an empty name.
func NormalizeDutyEvent(ev models.DutyEvent, vehicles []models.Vehicle, trips []models.Trip, stops []models.Stop) (models.Segment, error) {
	switch ev.Type {
	case models.DutyEventSignOn, models.DutyEventTaxi:
		name, _ := FindStopName(stops, ev.DestinationStopID)
		return models.Segment{
			StartTime:           ev.StartTime,
			EndTime:             ev.EndTime,
			DestinationStopName: name,
		}, nil

	case models.DutyEventVehicleEvent:
		return normalizeVehiclePointer(ev, vehicles, trips, stops)

	default:
		return models.Segment{}, fmt.Errorf("duty event %s: unknown duty event type %q: %w", ev.Sequence, ev.Type, ErrSchema)
	}
}

func normalizeVehiclePointer(ev models.DutyEvent, vehicles []models.Vehicle, trips []models.Trip, stops []models.Stop) (models.Segment, error) {
	ve, ok := FindVehicleEvent(vehicles, ev.VehicleID, string(ev.VehicleEventSequence))
	if !ok {
		return models.Segment{}, fmt.Errorf("vehicle event %s/%s: %w", ev.VehicleID, ev.VehicleEventSequence, ErrLookup)
	}

	switch {
	case ve.Type.SelfContained():
		name, _ := FindStopName(stops, ve.DestinationStopID)
		return models.Segment{
			StartTime:           ve.StartTime,
			EndTime:             ve.EndTime,
			DestinationStopName: name,
		}, nil

	case ve.Type == models.VehicleEventServiceTrip:
		trip, ok := FindTrip(trips, ve.TripID)
		if !ok {
			return models.Segment{}, fmt.Errorf("trip %s (vehicle event %s/%s): %w", ve.TripID, ev.VehicleID, ve.Sequence, ErrLookup)
		}
		name, _ := FindStopName(stops, trip.DestinationStopID)
		return models.Segment{
			StartTime:           trip.DepartureTime,
			EndTime:             trip.ArrivalTime,
			DestinationStopName: name,
		}, nil

	default:
		return models.Segment{}, fmt.Errorf("vehicle event %s/%s: unknown vehicle event type %q: %w", ev.VehicleID, ve.Sequence, ve.Type, ErrSchema)
	}
}
