package models

// DutySummary is one row of the duty times report. Times are day-relative
// strings; either may be empty when the duty's boundary events could not be
// resolved (best-effort policy).
type DutySummary struct {
	DutyID    string `json:"dutyId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// DutyStopsSummary extends DutySummary with the boarding stop of the first
// service trip and the alighting stop of the last one.
type DutyStopsSummary struct {
	DutySummary
	StartStopName string `json:"startStopName"`
	EndStopName   string `json:"endStopName"`
}

// BreakRow is one row of the breaks report: the owning duty's summary fields
// plus a single detected break.
type BreakRow struct {
	DutyStopsSummary
	BreakStartTime       string `json:"breakStartTime"`
	BreakDurationMinutes int    `json:"breakDurationMinutes"`
	BreakStopName        string `json:"breakStopName"`
}

// RosterStats describes the loaded dataset and the outcome of the last batch
// resolution.
type RosterStats struct {
	StopsCount    int `json:"stopsCount"`
	TripsCount    int `json:"tripsCount"`
	VehiclesCount int `json:"vehiclesCount"`
	DutiesCount   int `json:"dutiesCount"`
	FailedDuties  int `json:"failedDuties"`
}
