package roster

import (
	"fmt"

	"rosterd.transitops.org/internal/models"
	"rosterd.transitops.org/internal/servicetime"
)

// DetectBreaks emits the gaps between adjacent segments that are strictly
// longer than minMinutes. A gap equal to the threshold does not qualify, and
// zero or negative gaps (back-to-back or overlapping segments) never can. The
// break is located at the destination of the preceding segment, where the idle
// time begins.
func DetectBreaks(timeline []models.Segment, minMinutes int) ([]models.Break, error) {
	var breaks []models.Break
	for i := 0; i+1 < len(timeline); i++ {
		gap, err := servicetime.DiffMinutes(timeline[i].EndTime, timeline[i+1].StartTime)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		if gap <= minMinutes {
			continue
		}
		breaks = append(breaks, models.Break{
			StartTime:       timeline[i].EndTime,
			DurationMinutes: gap,
			StopName:        timeline[i].DestinationStopName,
		})
	}
	return breaks, nil
}
