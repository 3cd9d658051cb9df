package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rosterd.transitops.org/internal/models"
)

func TestFirstAndLastServiceTrip(t *testing.T) {
	duty := testDuty()
	vehicles := testVehicles()

	first, ok := FirstServiceTrip(duty.Events, vehicles)
	require.True(t, ok)
	assert.Equal(t, "t1", first.TripID)
	assert.Equal(t, models.Ordinal("2"), first.Sequence)

	last, ok := LastServiceTrip(duty.Events, vehicles)
	require.True(t, ok)
	assert.Equal(t, "t2", last.TripID)
	assert.Equal(t, models.Ordinal("5"), last.Sequence)
}

func TestFirstServiceTripSkipsNonVehicleEvents(t *testing.T) {
	events := []models.DutyEvent{
		{Sequence: "0", Type: models.DutyEventSignOn, StartTime: "0.05:30", EndTime: "0.05:40"},
		{Sequence: "1", Type: models.DutyEventTaxi, StartTime: "0.05:40", EndTime: "0.06:00"},
	}

	_, ok := FirstServiceTrip(events, testVehicles())
	assert.False(t, ok)
}

func TestFirstServiceTripAbortsOnBrokenPointer(t *testing.T) {
	// The broken pointer comes before a perfectly good service trip; the
	// scan still reports not-found rather than skipping past it.
	events := []models.DutyEvent{
		{Sequence: "0", Type: models.DutyEventVehicleEvent, VehicleID: "bus7", VehicleEventSequence: "42"},
		{Sequence: "1", Type: models.DutyEventVehicleEvent, VehicleID: "bus7", VehicleEventSequence: "2"},
	}

	_, ok := FirstServiceTrip(events, testVehicles())
	assert.False(t, ok)
}

func TestDutyStartAndEndTimes(t *testing.T) {
	duty := testDuty()
	vehicles := testVehicles()
	trips := testTrips()

	assert.Equal(t, "0.05:30", DutyStartTime(duty, vehicles, trips))
	assert.Equal(t, "0.07:45", DutyEndTime(duty, vehicles, trips))
}

func TestDutyBoundaryTimesThroughServiceTrip(t *testing.T) {
	// A duty that starts and ends on service trips has no times on its own
	// events; both boundaries borrow from the referenced trips.
	duty := models.Duty{
		ID: "902",
		Events: []models.DutyEvent{
			{Sequence: "0", Type: models.DutyEventVehicleEvent, VehicleID: "bus7", VehicleEventSequence: "2"},
			{Sequence: "1", Type: models.DutyEventVehicleEvent, VehicleID: "bus7", VehicleEventSequence: "5"},
		},
	}

	assert.Equal(t, "0.06:10", DutyStartTime(duty, testVehicles(), testTrips()))
	assert.Equal(t, "0.07:30", DutyEndTime(duty, testVehicles(), testTrips()))
}

func TestDutyBoundaryTimesDegradeToEmpty(t *testing.T) {
	broken := models.Duty{
		ID: "903",
		Events: []models.DutyEvent{
			{Sequence: "0", Type: models.DutyEventVehicleEvent, VehicleID: "ghost", VehicleEventSequence: "0"},
		},
	}

	assert.Empty(t, DutyStartTime(broken, testVehicles(), testTrips()))
	assert.Empty(t, DutyEndTime(broken, testVehicles(), testTrips()))

	empty := models.Duty{ID: "904"}
	assert.Empty(t, DutyStartTime(empty, nil, nil))
	assert.Empty(t, DutyEndTime(empty, nil, nil))
}
