package dataset

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/jamespfennell/gtfs"

	"rosterd.transitops.org/internal/models"
	"rosterd.transitops.org/internal/servicetime"
)

// HydrateReference fills the dataset's reference collections (stops, trips)
// from a static GTFS feed when the roster document does not carry its own.
// Vehicles and duties always come from the roster document; GTFS has no
// equivalent of a duty. Collections already present are left untouched.
func HydrateReference(ds *models.Dataset, source string) error {
	if len(ds.Stops) > 0 && len(ds.Trips) > 0 {
		return nil
	}

	static, err := loadStaticGTFS(source)
	if err != nil {
		return err
	}

	if len(ds.Stops) == 0 {
		ds.Stops = convertStops(static.Stops)
	}
	if len(ds.Trips) == 0 {
		ds.Trips = convertTrips(static.Trips)
	}
	return nil
}

// loadStaticGTFS reads and parses a GTFS zip from a URL or a local file path.
func loadStaticGTFS(source string) (*gtfs.Static, error) {
	isLocalFile := !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://")

	var b []byte
	var err error
	if isLocalFile {
		b, err = os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("error reading local GTFS file: %w", err)
		}
	} else {
		resp, err := http.Get(source)
		if err != nil {
			return nil, fmt.Errorf("error downloading GTFS data: %w", err)
		}
		defer resp.Body.Close() // nolint

		b, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("error reading GTFS data: %w", err)
		}
	}

	static, err := gtfs.ParseStatic(b, gtfs.ParseStaticOptions{})
	if err != nil {
		return nil, fmt.Errorf("error parsing GTFS data: %w", err)
	}
	return static, nil
}

func convertStops(stops []gtfs.Stop) []models.Stop {
	result := make([]models.Stop, 0, len(stops))
	for _, s := range stops {
		stop := models.Stop{
			ID:   s.Id,
			Name: s.Name,
		}
		if s.Latitude != nil {
			stop.Latitude = *s.Latitude
		}
		if s.Longitude != nil {
			stop.Longitude = *s.Longitude
		}
		result = append(result, stop)
	}
	return result
}

// convertTrips maps scheduled GTFS trips onto the roster's trip shape: the
// first stop time supplies the origin and departure, the last one the
// destination and arrival. Trips without stop times cannot be anchored and are
// skipped.
func convertTrips(trips []gtfs.ScheduledTrip) []models.Trip {
	result := make([]models.Trip, 0, len(trips))
	for _, t := range trips {
		if len(t.StopTimes) == 0 {
			continue
		}
		first := t.StopTimes[0]
		last := t.StopTimes[len(t.StopTimes)-1]
		if first.Stop == nil || last.Stop == nil {
			continue
		}

		trip := models.Trip{
			ID:                t.ID,
			OriginStopID:      first.Stop.Id,
			DestinationStopID: last.Stop.Id,
			DepartureTime:     servicetime.FromDaySeconds(int(first.DepartureTime / time.Second)),
			ArrivalTime:       servicetime.FromDaySeconds(int(last.ArrivalTime / time.Second)),
		}
		if t.Route != nil {
			trip.RouteNumber = t.Route.ShortName
			if trip.RouteNumber == "" {
				trip.RouteNumber = t.Route.Id
			}
		}
		result = append(result, trip)
	}
	return result
}
