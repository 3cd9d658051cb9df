package roster

import (
	"log/slog"

	"rosterd.transitops.org/internal/logging"
	"rosterd.transitops.org/internal/models"
)

// BatchMetrics receives counters from batch resolution. Implementations must
// tolerate concurrent use; a nil BatchMetrics disables instrumentation.
type BatchMetrics interface {
	DutyProcessed()
	DutyFailed()
	BreaksDetected(n int)
}

// Manager resolves a loaded dataset once and serves report rows from the
// resulting snapshot. The dataset and all derived state are read-only after
// construction, so methods are safe for concurrent use without locking.
type Manager struct {
	data      *models.Dataset
	logger    *slog.Logger
	metrics   BatchMetrics
	timelines map[string][]models.Segment
	failures  map[string]error
}

// NewManager builds every duty's timeline up front. A duty that fails to
// resolve is logged with its failing identifiers and excluded from break
// analysis; it still appears in summary reports with whatever boundary data
// can be recovered. One duty's failure never affects another's.
func NewManager(data *models.Dataset, logger *slog.Logger, metrics BatchMetrics) *Manager {
	m := &Manager{
		data:      data,
		logger:    logger,
		metrics:   metrics,
		timelines: make(map[string][]models.Segment, len(data.Duties)),
		failures:  make(map[string]error),
	}

	for _, duty := range data.Duties {
		timeline, err := BuildTimeline(duty, data.Vehicles, data.Trips, data.Stops)
		if metrics != nil {
			metrics.DutyProcessed()
		}
		if err != nil {
			m.failures[duty.ID] = err
			logging.LogError(logger, "duty timeline resolution failed", err,
				slog.String("duty_id", duty.ID))
			if metrics != nil {
				metrics.DutyFailed()
			}
			continue
		}
		m.timelines[duty.ID] = timeline
	}

	logging.LogOperation(logger, "roster resolved",
		slog.Int("duties", len(data.Duties)),
		slog.Int("failed", len(m.failures)))
	return m
}

// Dataset exposes the underlying collections; callers must treat them as
// read-only.
func (m *Manager) Dataset() *models.Dataset { return m.data }

// Duty returns the duty with the given ID.
func (m *Manager) Duty(dutyID string) (*models.Duty, bool) {
	for i := range m.data.Duties {
		if m.data.Duties[i].ID == dutyID {
			return &m.data.Duties[i], true
		}
	}
	return nil, false
}

// Timeline returns the resolved timeline for a duty, or the resolution error
// recorded for it.
func (m *Manager) Timeline(dutyID string) ([]models.Segment, error) {
	if err, ok := m.failures[dutyID]; ok {
		return nil, err
	}
	return m.timelines[dutyID], nil
}

// TimesReport returns one summary row per duty, in dataset order.
func (m *Manager) TimesReport() []models.DutySummary {
	rows := make([]models.DutySummary, 0, len(m.data.Duties))
	for _, duty := range m.data.Duties {
		rows = append(rows, SummarizeDuty(duty, m.data.Vehicles, m.data.Trips))
	}
	return rows
}

// StopsReport returns one times-and-stops row per duty, in dataset order.
func (m *Manager) StopsReport() []models.DutyStopsSummary {
	rows := make([]models.DutyStopsSummary, 0, len(m.data.Duties))
	for _, duty := range m.data.Duties {
		rows = append(rows, SummarizeDutyStops(duty, m.data.Vehicles, m.data.Trips, m.data.Stops))
	}
	return rows
}

// BreaksReport returns one row per detected break strictly longer than
// minMinutes, preserving duty and timeline order. Duties whose timeline failed
// to resolve contribute no rows.
func (m *Manager) BreaksReport(minMinutes int) []models.BreakRow {
	var rows []models.BreakRow
	for _, duty := range m.data.Duties {
		timeline, ok := m.timelines[duty.ID]
		if !ok {
			continue
		}
		breaks, err := DetectBreaks(timeline, minMinutes)
		if err != nil {
			logging.LogError(m.logger, "break detection failed", err,
				slog.String("duty_id", duty.ID))
			if m.metrics != nil {
				m.metrics.DutyFailed()
			}
			continue
		}
		if len(breaks) == 0 {
			continue
		}
		if m.metrics != nil {
			m.metrics.BreaksDetected(len(breaks))
		}
		summary := SummarizeDutyStops(duty, m.data.Vehicles, m.data.Trips, m.data.Stops)
		for _, b := range breaks {
			rows = append(rows, models.BreakRow{
				DutyStopsSummary:     summary,
				BreakStartTime:       b.StartTime,
				BreakDurationMinutes: b.DurationMinutes,
				BreakStopName:        b.StopName,
			})
		}
	}
	return rows
}

// Stats describes the snapshot.
func (m *Manager) Stats() models.RosterStats {
	return models.RosterStats{
		StopsCount:    len(m.data.Stops),
		TripsCount:    len(m.data.Trips),
		VehiclesCount: len(m.data.Vehicles),
		DutiesCount:   len(m.data.Duties),
		FailedDuties:  len(m.failures),
	}
}
