package roster

import "rosterd.transitops.org/internal/models"

// Boundary scans recover duty-level facts directly from the raw event list.
// They are deliberately more forgiving than timeline construction: a duty
// whose full timeline cannot be built still gets a best-effort summary.

// FirstServiceTrip returns the first vehicle event of the duty that is a
// passenger-carrying service trip. Duty events of other types, and vehicle
// events of other types, are skipped. A pointer that fails to resolve ends the
// scan with "not found": the event list can no longer be trusted.
func FirstServiceTrip(events []models.DutyEvent, vehicles []models.Vehicle) (*models.VehicleEvent, bool) {
	for _, ev := range events {
		if ev.Type != models.DutyEventVehicleEvent {
			continue
		}
		ve, ok := FindVehicleEvent(vehicles, ev.VehicleID, string(ev.VehicleEventSequence))
		if !ok {
			return nil, false
		}
		if ve.Type == models.VehicleEventServiceTrip {
			return ve, true
		}
	}
	return nil, false
}

// LastServiceTrip is the reverse scan: it returns the last service trip in
// original chronological order.
func LastServiceTrip(events []models.DutyEvent, vehicles []models.Vehicle) (*models.VehicleEvent, bool) {
	reversed := make([]models.DutyEvent, len(events))
	for i, ev := range events {
		reversed[len(events)-1-i] = ev
	}
	return FirstServiceTrip(reversed, vehicles)
}

// DutyStartTime returns the start time of the duty's first event, resolving
// through its vehicle-event pointer when the event does not carry a time of
// its own. Every failure degrades to an empty string; summary rows are
// best-effort by policy, unlike timeline construction.
func DutyStartTime(duty models.Duty, vehicles []models.Vehicle, trips []models.Trip) string {
	if len(duty.Events) == 0 {
		return ""
	}
	return boundaryTime(duty.Events[0], vehicles, trips, false)
}

// DutyEndTime is the symmetric rule over the duty's last event.
func DutyEndTime(duty models.Duty, vehicles []models.Vehicle, trips []models.Trip) string {
	if len(duty.Events) == 0 {
		return ""
	}
	return boundaryTime(duty.Events[len(duty.Events)-1], vehicles, trips, true)
}

func boundaryTime(ev models.DutyEvent, vehicles []models.Vehicle, trips []models.Trip, end bool) string {
	if end && ev.EndTime != "" {
		return ev.EndTime
	}
	if !end && ev.StartTime != "" {
		return ev.StartTime
	}
	if !ev.HasVehiclePointer() {
		return ""
	}

	ve, ok := FindVehicleEvent(vehicles, ev.VehicleID, string(ev.VehicleEventSequence))
	if !ok {
		return ""
	}
	if end && ve.EndTime != "" {
		return ve.EndTime
	}
	if !end && ve.StartTime != "" {
		return ve.StartTime
	}
	// A service trip carries no times of its own; borrow them from its trip.
	if ve.Type == models.VehicleEventServiceTrip {
		if trip, ok := FindTrip(trips, ve.TripID); ok {
			if end {
				return trip.ArrivalTime
			}
			return trip.DepartureTime
		}
	}
	return ""
}
