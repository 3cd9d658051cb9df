package roster

import (
	"fmt"

	"rosterd.transitops.org/internal/models"
)

// BuildTimeline normalizes every duty event of the duty, preserving input
// order exactly: the event sequence is the roster author's chronology and is
// never re-sorted. The first normalization failure discards all segments
// produced so far and fails the whole duty; a partially resolved duty is not
// reported.
func BuildTimeline(duty models.Duty, vehicles []models.Vehicle, trips []models.Trip, stops []models.Stop) ([]models.Segment, error) {
	segments := make([]models.Segment, 0, len(duty.Events))
	for _, ev := range duty.Events {
		seg, err := NormalizeDutyEvent(ev, vehicles, trips, stops)
		if err != nil {
			return nil, fmt.Errorf("duty %s: %w", duty.ID, err)
		}
		segments = append(segments, seg)
	}
	return segments, nil
}
