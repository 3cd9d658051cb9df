package roster

import "rosterd.transitops.org/internal/models"

// Pure lookup functions over the four collections. Each returns the first
// structural match; absence is a first-class result, not an error, and the
// caller decides whether it is fatal to the duty being resolved.

// FindVehicleEvent returns the event of the given vehicle with the given
// sequence number. Sequences are compared as canonical strings; callers must
// pass the normalized form (see models.Ordinal).
func FindVehicleEvent(vehicles []models.Vehicle, vehicleID, sequence string) (*models.VehicleEvent, bool) {
	for i := range vehicles {
		if vehicles[i].ID != vehicleID {
			continue
		}
		for j := range vehicles[i].Events {
			if string(vehicles[i].Events[j].Sequence) == sequence {
				return &vehicles[i].Events[j], true
			}
		}
	}
	return nil, false
}

// FindTrip returns the trip with the given ID.
func FindTrip(trips []models.Trip, tripID string) (*models.Trip, bool) {
	for i := range trips {
		if trips[i].ID == tripID {
			return &trips[i], true
		}
	}
	return nil, false
}

// FindStopName returns the name of the stop with the given ID.
func FindStopName(stops []models.Stop, stopID string) (string, bool) {
	for i := range stops {
		if stops[i].ID == stopID {
			return stops[i].Name, true
		}
	}
	return "", false
}
