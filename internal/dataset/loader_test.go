package dataset

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rosterd.transitops.org/internal/models"
)

func TestLoadFixture(t *testing.T) {
	ds, err := Load(filepath.Join("../../testdata", "mini_roster.json"))
	require.NoError(t, err)

	assert.Len(t, ds.Stops, 4)
	assert.Len(t, ds.Trips, 5)
	assert.Len(t, ds.Vehicles, 2)
	assert.Len(t, ds.Duties, 3)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join("../../testdata", "no_such_file.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open dataset")
}

func TestDecodeCanonicalizesOrdinals(t *testing.T) {
	// The same sequence value appears as a number on the vehicle event and
	// as a string on the duty event pointer. Both must decode to the same
	// canonical form.
	doc := `{
		"vehicles": [
			{"vehicle_id": "v1", "vehicle_events": [
				{"vehicle_event_sequence": 3, "vehicle_event_type": "deadhead", "start_time": "0.06:00", "end_time": "0.06:10"}
			]}
		],
		"duties": [
			{"duty_id": "d1", "duty_events": [
				{"duty_event_sequence": "0", "duty_event_type": "vehicle_event", "vehicle_id": "v1", "vehicle_event_sequence": "3"}
			]}
		]
	}`

	ds, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, models.Ordinal("3"), ds.Vehicles[0].Events[0].Sequence)
	assert.Equal(t, models.Ordinal("3"), ds.Duties[0].Events[0].VehicleEventSequence)
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"stops": [`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode dataset")
}
