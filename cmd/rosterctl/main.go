// Command rosterctl renders duty roster reports on the command line.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"rosterd.transitops.org/internal/dataset"
	"rosterd.transitops.org/internal/logging"
	"rosterd.transitops.org/internal/report"
	"rosterd.transitops.org/internal/roster"
)

func main() {
	_ = godotenv.Load()

	var (
		datasetPath = flag.String("dataset", envString("ROSTERD_DATASET", "roster.json"), "Path to the duty roster dataset JSON file")
		gtfsURL     = flag.String("gtfs-url", envString("ROSTERD_GTFS_URL", ""), "Optional GTFS static feed (path or URL) for stop and trip reference data")
		minBreak    = flag.Int("min-break", 15, "Minimum idle gap in minutes that counts as a break")
		which       = flag.String("report", "all", "Report to print (times|stops|breaks|all)")
		verbose     = flag.Bool("v", false, "Enable debug logging")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := logging.NewStructuredLogger(os.Stderr, level)

	if err := run(*datasetPath, *gtfsURL, *which, *minBreak, logger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(datasetPath, gtfsURL, which string, minBreak int, logger *slog.Logger) error {
	ds, err := dataset.Load(datasetPath)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	if gtfsURL != "" {
		if err := dataset.HydrateReference(ds, gtfsURL); err != nil {
			return fmt.Errorf("hydrate reference data: %w", err)
		}
	}

	manager := roster.NewManager(ds, logger, nil)
	out := os.Stdout

	switch which {
	case "times":
		return report.WriteTimesReport(out, manager.TimesReport())
	case "stops":
		return report.WriteStopsReport(out, manager.StopsReport())
	case "breaks":
		return report.WriteBreaksReport(out, manager.BreaksReport(minBreak))
	case "all":
		if err := report.WriteTimesReport(out, manager.TimesReport()); err != nil {
			return err
		}
		fmt.Fprintln(out)
		if err := report.WriteStopsReport(out, manager.StopsReport()); err != nil {
			return err
		}
		fmt.Fprintln(out)
		return report.WriteBreaksReport(out, manager.BreaksReport(minBreak))
	default:
		return fmt.Errorf("unknown report %q (want times, stops, breaks, or all)", which)
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
