package models

// Segment is the normalized form of one duty event after full cross-reference
// resolution. Times keep the day-relative textual form of the input; a missing
// destination name stays empty rather than being substituted.
type Segment struct {
	StartTime           string `json:"startTime"`
	EndTime             string `json:"endTime"`
	DestinationStopName string `json:"destinationStopName"`
}

// Break is an idle interval between two consecutive segments. StartTime is the
// end of the preceding segment and StopName the stop where the idle time is
// spent.
type Break struct {
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	StopName        string `json:"stopName"`
}
