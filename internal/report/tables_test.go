package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rosterd.transitops.org/internal/models"
)

func TestWriteTimesReport(t *testing.T) {
	var buf bytes.Buffer
	rows := []models.DutySummary{
		{DutyID: "110", StartTime: "0.03:15", EndTime: "0.19:30"},
		{DutyID: "111", StartTime: "0.08:00", EndTime: ""},
	}

	require.NoError(t, WriteTimesReport(&buf, rows))
	out := buf.String()

	assert.Contains(t, out, "--- DUTY TIMES REPORT ---")
	assert.Contains(t, out, "Duty ID")
	// The day offset is trimmed for display.
	assert.Contains(t, out, "03:15")
	assert.NotContains(t, out, "0.03:15")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Title, blank line, header, two rows.
	assert.Len(t, lines, 5)
}

func TestWriteStopsReport(t *testing.T) {
	var buf bytes.Buffer
	rows := []models.DutyStopsSummary{
		{
			DutySummary:   models.DutySummary{DutyID: "110", StartTime: "0.03:15", EndTime: "0.19:30"},
			StartStopName: "Harbor Square",
			EndStopName:   "Central Depot",
		},
	}

	require.NoError(t, WriteStopsReport(&buf, rows))
	out := buf.String()

	assert.Contains(t, out, "--- DUTY TIMES AND STOPS REPORT ---")
	assert.Contains(t, out, "Start Stop")
	assert.Contains(t, out, "Harbor Square")
	assert.Contains(t, out, "Central Depot")
}

func TestWriteBreaksReport(t *testing.T) {
	var buf bytes.Buffer
	rows := []models.BreakRow{
		{
			DutyStopsSummary: models.DutyStopsSummary{
				DutySummary:   models.DutySummary{DutyID: "110", StartTime: "0.03:15", EndTime: "0.19:30"},
				StartStopName: "Harbor Square",
				EndStopName:   "Central Depot",
			},
			BreakStartTime:       "0.12:05",
			BreakDurationMinutes: 25,
			BreakStopName:        "Riverside",
		},
	}

	require.NoError(t, WriteBreaksReport(&buf, rows))
	out := buf.String()

	assert.Contains(t, out, "--- BREAKS REPORT ---")
	assert.Contains(t, out, "Break Duration (min)")
	assert.Contains(t, out, "12:05")
	assert.Contains(t, out, "25")
	assert.Contains(t, out, "Riverside")
}

func TestReportsWithNoRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBreaksReport(&buf, nil))
	assert.Contains(t, buf.String(), "--- BREAKS REPORT ---")
}
