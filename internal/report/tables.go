// Package report renders report rows as aligned text tables for the CLI. The
// leading day-offset field of every timestamp is trimmed for display; the full
// day-relative form stays on the API surface.
package report

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"rosterd.transitops.org/internal/models"
	"rosterd.transitops.org/internal/servicetime"
)

// WriteTimesReport renders the duty times report.
func WriteTimesReport(w io.Writer, rows []models.DutySummary) error {
	fmt.Fprintln(w, "--- DUTY TIMES REPORT ---")
	fmt.Fprintln(w)

	tw := newTable(w)
	fmt.Fprintln(tw, "Duty ID\tStart Time\tEnd Time")
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\n",
			row.DutyID,
			servicetime.Display(row.StartTime),
			servicetime.Display(row.EndTime))
	}
	return tw.Flush()
}

// WriteStopsReport renders the duty times-and-stops report.
func WriteStopsReport(w io.Writer, rows []models.DutyStopsSummary) error {
	fmt.Fprintln(w, "--- DUTY TIMES AND STOPS REPORT ---")
	fmt.Fprintln(w)

	tw := newTable(w)
	fmt.Fprintln(tw, "Duty ID\tStart Time\tEnd Time\tStart Stop\tEnd Stop")
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			row.DutyID,
			servicetime.Display(row.StartTime),
			servicetime.Display(row.EndTime),
			row.StartStopName,
			row.EndStopName)
	}
	return tw.Flush()
}

// WriteBreaksReport renders the breaks report.
func WriteBreaksReport(w io.Writer, rows []models.BreakRow) error {
	fmt.Fprintln(w, "--- BREAKS REPORT ---")
	fmt.Fprintln(w)

	tw := newTable(w)
	fmt.Fprintln(tw, "Duty ID\tStart Time\tEnd Time\tStart Stop\tEnd Stop\tBreak Start\tBreak Duration (min)\tBreak Stop")
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			row.DutyID,
			servicetime.Display(row.StartTime),
			servicetime.Display(row.EndTime),
			row.StartStopName,
			row.EndStopName,
			servicetime.Display(row.BreakStartTime),
			strconv.Itoa(row.BreakDurationMinutes),
			row.BreakStopName)
	}
	return tw.Flush()
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}
