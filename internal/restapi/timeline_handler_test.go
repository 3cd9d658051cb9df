package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rosterd.transitops.org/internal/models"
)

func TestTimelineHandlerReturnsOrderedSegments(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/roster/duty/110/timeline.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var timeline []models.Segment
	listFromModel(t, model, &timeline)
	require.Len(t, timeline, 9)

	assert.Equal(t, models.Segment{
		StartTime:           "0.02:55",
		EndTime:             "0.03:00",
		DestinationStopName: "Central Depot",
	}, timeline[0])
	assert.Equal(t, models.Segment{
		StartTime:           "0.03:25",
		EndTime:             "0.03:55",
		DestinationStopName: "Elm Street",
	}, timeline[3])
	assert.Equal(t, models.Segment{
		StartTime:           "0.06:40",
		EndTime:             "0.07:00",
		DestinationStopName: "Central Depot",
	}, timeline[8])
}

func TestTimelineHandlerUnresolvableDuty(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/roster/duty/111/timeline.json?key=TEST")

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "internal server error", model.Text)
}

func TestTimelineHandlerUnknownDuty(t *testing.T) {
	_, resp, _ := serveAndRetrieveEndpoint(t, "/api/roster/duty/999/timeline.json?key=TEST")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
