package dataset

import (
	"fmt"

	"rosterd.transitops.org/internal/models"
)

// Validate checks the structural assumptions the resolution engine is entitled
// to make: identifiers present, event records typed. It does not chase
// cross-references; dangling IDs are per-duty resolution failures, not dataset
// failures.
func Validate(ds *models.Dataset) error {
	for i, stop := range ds.Stops {
		if stop.ID == "" {
			return fmt.Errorf("stops[%d]: missing stop_id", i)
		}
		if stop.Name == "" {
			return fmt.Errorf("stop %s: missing stop_name", stop.ID)
		}
	}

	for i, trip := range ds.Trips {
		if trip.ID == "" {
			return fmt.Errorf("trips[%d]: missing trip_id", i)
		}
		if trip.OriginStopID == "" || trip.DestinationStopID == "" {
			return fmt.Errorf("trip %s: missing origin/destination stop id", trip.ID)
		}
		if trip.DepartureTime == "" || trip.ArrivalTime == "" {
			return fmt.Errorf("trip %s: missing departure/arrival time", trip.ID)
		}
	}

	for i, vehicle := range ds.Vehicles {
		if vehicle.ID == "" {
			return fmt.Errorf("vehicles[%d]: missing vehicle_id", i)
		}
		for j, ev := range vehicle.Events {
			if ev.Sequence == "" {
				return fmt.Errorf("vehicle %s events[%d]: missing vehicle_event_sequence", vehicle.ID, j)
			}
			if ev.Type == "" {
				return fmt.Errorf("vehicle %s event %s: missing vehicle_event_type", vehicle.ID, ev.Sequence)
			}
		}
	}

	for i, duty := range ds.Duties {
		if duty.ID == "" {
			return fmt.Errorf("duties[%d]: missing duty_id", i)
		}
		for j, ev := range duty.Events {
			if ev.Type == "" {
				return fmt.Errorf("duty %s events[%d]: missing duty_event_type", duty.ID, j)
			}
		}
	}

	return nil
}
