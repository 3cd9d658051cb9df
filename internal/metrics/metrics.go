// Package metrics exposes Prometheus instrumentation for the roster service
// on a private registry, served on its own listener so the report API stays
// unchanged when metrics are disabled.
package metrics

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	reg *prometheus.Registry

	DutiesProcessed prometheus.Counter
	DutiesFailed    prometheus.Counter
	BreaksTotal     prometheus.Counter

	DatasetLoadDuration prometheus.Histogram
	RequestDuration     *prometheus.HistogramVec

	NATSPublished       prometheus.Counter
	NATSPublishErrs     prometheus.Counter
	NATSPublishDuration prometheus.Histogram
	NATSConnected       prometheus.Gauge
}

func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		DutiesProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rosterd_duties_processed_total",
			Help: "Total duties run through timeline resolution.",
		}),
		DutiesFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rosterd_duties_failed_total",
			Help: "Total duties whose resolution failed and were excluded from break analysis.",
		}),
		BreaksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rosterd_breaks_detected_total",
			Help: "Total breaks detected across all break report runs.",
		}),
		DatasetLoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "rosterd_dataset_load_duration_seconds",
			Help:    "Duration of dataset loading and validation.",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 15),
		}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rosterd_request_duration_seconds",
			Help:    "Duration of API request handling.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 15),
		}, []string{"endpoint"}),
		NATSPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rosterd_nats_published_total",
			Help: "Total NATS messages published.",
		}),
		NATSPublishErrs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rosterd_nats_publish_errors_total",
			Help: "Total NATS publish errors.",
		}),
		NATSPublishDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "rosterd_nats_publish_duration_seconds",
			Help:    "Duration of individual NATS publish calls.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 15),
		}),
		NATSConnected: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rosterd_nats_connected",
			Help: "1 if the NATS connection is established, 0 otherwise.",
		}),
	}

	reg.MustRegister(
		c.DutiesProcessed, c.DutiesFailed, c.BreaksTotal,
		c.DatasetLoadDuration, c.RequestDuration,
		c.NATSPublished, c.NATSPublishErrs, c.NATSPublishDuration, c.NATSConnected,
	)

	return c
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}

// Serve starts an HTTP server exposing /metrics on the given address.
func (c *Collector) Serve(addr string, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("metrics server error", "error", err)
		}
	}()
	logger.Info("metrics listening", "addr", addr)
	return srv
}
