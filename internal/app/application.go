package app

import (
	"log/slog"

	"rosterd.transitops.org/internal/metrics"
	"rosterd.transitops.org/internal/roster"
)

// Application holds the dependencies for our HTTP handlers, helpers, and
// middleware.
type Application struct {
	Config  Config
	Logger  *slog.Logger
	Roster  *roster.Manager
	Metrics *metrics.Collector
}

// Config holds all the configuration settings for our Application. Values are
// read from command-line flags at startup, with environment variables (and an
// optional .env file) supplying the defaults.
type Config struct {
	Port            int
	Env             string
	ApiKeys         []string
	DatasetPath     string
	GTFSURL         string
	MinBreakMinutes int
	NATSURL         string
	MetricsAddr     string
}
