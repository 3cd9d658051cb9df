package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"

	"rosterd.transitops.org/internal/app"
	"rosterd.transitops.org/internal/dataset"
	"rosterd.transitops.org/internal/logging"
	"rosterd.transitops.org/internal/metrics"
	"rosterd.transitops.org/internal/publisher"
	"rosterd.transitops.org/internal/restapi"
	"rosterd.transitops.org/internal/roster"
)

func main() {
	// A missing .env file is fine; the environment and flags still apply.
	_ = godotenv.Load()

	var cfg app.Config
	var apiKeysFlag string

	flag.IntVar(&cfg.Port, "port", envInt("ROSTERD_PORT", 4000), "API server port")
	flag.StringVar(&cfg.Env, "env", envString("ROSTERD_ENV", "development"), "Environment (development|staging|production)")
	flag.StringVar(&apiKeysFlag, "api-keys", envString("ROSTERD_API_KEYS", "test"), "Comma separated API keys")
	flag.StringVar(&cfg.DatasetPath, "dataset", envString("ROSTERD_DATASET", "roster.json"), "Path to the duty roster dataset JSON file")
	flag.StringVar(&cfg.GTFSURL, "gtfs-url", envString("ROSTERD_GTFS_URL", ""), "Optional GTFS static feed (path or URL) for stop and trip reference data")
	flag.IntVar(&cfg.MinBreakMinutes, "min-break", envInt("ROSTERD_MIN_BREAK", 15), "Minimum idle gap in minutes that counts as a break")
	flag.StringVar(&cfg.NATSURL, "nats-url", envString("ROSTERD_NATS_URL", ""), "Optional NATS server URL for break publication")
	flag.StringVar(&cfg.MetricsAddr, "metrics-addr", envString("ROSTERD_METRICS_ADDR", ""), "Optional listen address for the Prometheus /metrics endpoint")
	flag.Parse()

	if apiKeysFlag != "" {
		cfg.ApiKeys = strings.Split(apiKeysFlag, ",")
		for i := range cfg.ApiKeys {
			cfg.ApiKeys[i] = strings.TrimSpace(cfg.ApiKeys[i])
		}
	}

	level := slog.LevelInfo
	if cfg.Env == "development" {
		level = slog.LevelDebug
	}
	logger := logging.NewStructuredLogger(os.Stdout, level)

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg app.Config, logger *slog.Logger) error {
	collector := metrics.NewCollector()

	loadStart := time.Now()
	ds, err := dataset.Load(cfg.DatasetPath)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	if cfg.GTFSURL != "" {
		if err := dataset.HydrateReference(ds, cfg.GTFSURL); err != nil {
			return fmt.Errorf("hydrate reference data: %w", err)
		}
	}
	collector.DatasetLoadDuration.Observe(time.Since(loadStart).Seconds())

	manager := roster.NewManager(ds, logger, metrics.NewRosterAdapter(collector))

	if cfg.NATSURL != "" {
		pub, err := publisher.NewBreakPublisher(cfg.NATSURL, logger, metrics.NewPublisherAdapter(collector))
		if err != nil {
			return fmt.Errorf("connect nats: %w", err)
		}
		defer pub.Close()

		rows := manager.BreaksReport(cfg.MinBreakMinutes)
		if err := pub.PublishBreaks(rows); err != nil {
			logger.Error("break publication failed", "error", err)
		} else {
			logger.Info("breaks published", "count", len(rows))
		}
	}

	var metricsSrv *http.Server
	if cfg.MetricsAddr != "" {
		metricsSrv = collector.Serve(cfg.MetricsAddr, logger)
	}

	application := &app.Application{
		Config:  cfg,
		Logger:  logger,
		Roster:  manager,
		Metrics: collector,
	}

	router := httprouter.New()
	restapi.NewRestAPI(application).SetRoutes(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if metricsSrv != nil {
		_ = metricsSrv.Shutdown(shutdownCtx)
	}
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
