package roster

import (
	"strconv"

	"rosterd.transitops.org/internal/models"
)

// Shared in-memory dataset for resolver, normalizer, timeline, and boundary
// tests. Vehicle bus7 interleaves self-contained events with service trips,
// with a mix of numeric and string sequence encodings already canonicalized
// by models.Ordinal.
func testStops() []models.Stop {
	return []models.Stop{
		{ID: "d1", Name: "North Depot", IsDepot: true},
		{ID: "s1", Name: "Market Street"},
		{ID: "s2", Name: "Riverside"},
	}
}

func testTrips() []models.Trip {
	return []models.Trip{
		{ID: "t1", RouteNumber: "12", OriginStopID: "s1", DestinationStopID: "s2", DepartureTime: "0.06:10", ArrivalTime: "0.06:40"},
		{ID: "t2", RouteNumber: "12", OriginStopID: "s2", DestinationStopID: "s1", DepartureTime: "0.07:00", ArrivalTime: "0.07:30"},
	}
}

func testVehicles() []models.Vehicle {
	return []models.Vehicle{
		{
			ID: "bus7",
			Events: []models.VehicleEvent{
				{Sequence: "0", Type: models.VehicleEventPreTrip, StartTime: "0.05:40", EndTime: "0.05:50", OriginStopID: "d1", DestinationStopID: "d1", DutyID: "900"},
				{Sequence: "1", Type: models.VehicleEventDepotPullOut, StartTime: "0.05:50", EndTime: "0.06:10", OriginStopID: "d1", DestinationStopID: "s1", DutyID: "900"},
				{Sequence: "2", Type: models.VehicleEventServiceTrip, TripID: "t1", DutyID: "900"},
				{Sequence: "3", Type: models.VehicleEventDeadhead, StartTime: "0.06:40", EndTime: "0.06:55", OriginStopID: "s2", DestinationStopID: "s2", DutyID: "900"},
				{Sequence: "4", Type: models.VehicleEventAttendance, StartTime: "0.06:55", EndTime: "0.07:00", OriginStopID: "s2", DestinationStopID: "s2", DutyID: "900"},
				{Sequence: "5", Type: models.VehicleEventServiceTrip, TripID: "t2", DutyID: "900"},
				{Sequence: "6", Type: models.VehicleEventDepotPullIn, StartTime: "0.07:30", EndTime: "0.07:45", OriginStopID: "s1", DestinationStopID: "d1", DutyID: "900"},
			},
		},
	}
}

func testDuty() models.Duty {
	events := make([]models.DutyEvent, 0, 8)
	events = append(events, models.DutyEvent{
		Sequence: "0", Type: models.DutyEventSignOn,
		StartTime: "0.05:30", EndTime: "0.05:40",
		OriginStopID: "d1", DestinationStopID: "d1",
	})
	for i := 0; i < 7; i++ {
		events = append(events, models.DutyEvent{
			Sequence:             models.Ordinal(strconv.Itoa(i + 1)),
			Type:                 models.DutyEventVehicleEvent,
			VehicleID:            "bus7",
			VehicleEventSequence: models.Ordinal(strconv.Itoa(i)),
		})
	}
	return models.Duty{ID: "900", Events: events}
}
