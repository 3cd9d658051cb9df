// Package publisher emits detected breaks to NATS for downstream dispatch
// tooling. Publishing is optional; the reports themselves never depend on it.
package publisher

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/nats-io/nats.go"

	"rosterd.transitops.org/internal/models"
)

// PublisherMetrics receives publish instrumentation. A nil value disables it.
type PublisherMetrics interface {
	PublishedInc()
	PublishErrInc()
	PublishObserve(d time.Duration)
	SetConnected(connected bool)
}

type BreakPublisher struct {
	nc      *nats.Conn
	logger  *slog.Logger
	metrics PublisherMetrics
}

func NewBreakPublisher(url string, logger *slog.Logger, m PublisherMetrics) (*BreakPublisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("rosterd"),
		nats.DisconnectHandler(func(_ *nats.Conn) {
			if m != nil {
				m.SetConnected(false)
			}
			logger.Warn("nats disconnected")
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			if m != nil {
				m.SetConnected(true)
			}
			logger.Info("nats reconnected")
		}),
		nats.ClosedHandler(func(_ *nats.Conn) {
			if m != nil {
				m.SetConnected(false)
			}
			logger.Info("nats closed")
		}),
	)
	if err != nil {
		return nil, err
	}
	if m != nil {
		m.SetConnected(true)
	}
	return &BreakPublisher{nc: nc, logger: logger, metrics: m}, nil
}

func (p *BreakPublisher) Close() {
	if p.nc != nil {
		_ = p.nc.Drain()
		p.nc.Close()
	}
}

// PublishBreaks publishes one message per break row on
// roster.breaks.<dutyID>.
func (p *BreakPublisher) PublishBreaks(rows []models.BreakRow) error {
	for _, row := range rows {
		subject := fmt.Sprintf("roster.breaks.%s", subjectToken(row.DutyID))
		b, err := json.Marshal(row)
		if err != nil {
			return err
		}

		start := time.Now()
		err = p.nc.Publish(subject, b)
		if p.metrics != nil {
			p.metrics.PublishObserve(time.Since(start))
			if err != nil {
				p.metrics.PublishErrInc()
			} else {
				p.metrics.PublishedInc()
			}
		}
		if err != nil {
			return fmt.Errorf("publish %s: %w", subject, err)
		}
	}
	return nil
}

func subjectToken(s string) string {
	s = strings.TrimSpace(s)
	// NATS tokens cannot contain spaces, '>', '*', or '.'
	repl := strings.NewReplacer(" ", "_", ".", "_", ">", "_", "*", "_", "/", "_", "\t", "_")
	s = repl.Replace(s)
	if s == "" {
		s = "_"
	}
	return s
}
