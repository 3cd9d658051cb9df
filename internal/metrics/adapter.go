package metrics

import "time"

// RosterAdapter satisfies roster.BatchMetrics over a Collector.
type RosterAdapter struct {
	c *Collector
}

func NewRosterAdapter(c *Collector) *RosterAdapter {
	return &RosterAdapter{c: c}
}

func (a *RosterAdapter) DutyProcessed() { a.c.DutiesProcessed.Inc() }
func (a *RosterAdapter) DutyFailed()    { a.c.DutiesFailed.Inc() }
func (a *RosterAdapter) BreaksDetected(n int) {
	a.c.BreaksTotal.Add(float64(n))
}

// PublisherAdapter satisfies publisher.PublisherMetrics over a Collector.
type PublisherAdapter struct {
	c *Collector
}

func NewPublisherAdapter(c *Collector) *PublisherAdapter {
	return &PublisherAdapter{c: c}
}

func (a *PublisherAdapter) PublishedInc()  { a.c.NATSPublished.Inc() }
func (a *PublisherAdapter) PublishErrInc() { a.c.NATSPublishErrs.Inc() }
func (a *PublisherAdapter) PublishObserve(d time.Duration) {
	a.c.NATSPublishDuration.Observe(d.Seconds())
}
func (a *PublisherAdapter) SetConnected(connected bool) {
	if connected {
		a.c.NATSConnected.Set(1)
		return
	}
	a.c.NATSConnected.Set(0)
}
