// Package servicetime handles the day-relative timestamps used throughout a
// roster dataset. A timestamp has the form "<day>.<hour>:<minute>" and denotes
// elapsed time since the fixed reference instant of the service day, not a
// calendar date: day, hour and minute are independent non-negative integers
// summed into a single duration, and the hour never needs to wrap because day
// carries the rollover.
package servicetime

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrParse is wrapped by every parse failure so callers can classify it.
var ErrParse = errors.New("malformed service time")

const minutesPerDay = 24 * 60

// ParseMinutes converts a day-relative timestamp into total minutes since the
// reference instant. Malformed input is an error, never coerced to zero.
func ParseMinutes(s string) (int, error) {
	day, rest, ok := strings.Cut(s, ".")
	if !ok {
		return 0, fmt.Errorf("%w: %q missing day separator", ErrParse, s)
	}
	hour, minute, ok := strings.Cut(rest, ":")
	if !ok {
		return 0, fmt.Errorf("%w: %q missing minute separator", ErrParse, s)
	}

	d, err := parseField(day)
	if err != nil {
		return 0, fmt.Errorf("%w: %q day: %v", ErrParse, s, err)
	}
	h, err := parseField(hour)
	if err != nil {
		return 0, fmt.Errorf("%w: %q hour: %v", ErrParse, s, err)
	}
	m, err := parseField(minute)
	if err != nil {
		return 0, fmt.Errorf("%w: %q minute: %v", ErrParse, s, err)
	}

	return d*minutesPerDay + h*60 + m, nil
}

func parseField(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("not an integer")
	}
	if v < 0 {
		return 0, fmt.Errorf("negative value")
	}
	return v, nil
}

// DiffMinutes returns the signed number of minutes from a to b. The result is
// negative when b precedes a.
func DiffMinutes(a, b string) (int, error) {
	am, err := ParseMinutes(a)
	if err != nil {
		return 0, err
	}
	bm, err := ParseMinutes(b)
	if err != nil {
		return 0, err
	}
	return bm - am, nil
}

// Format renders a day-relative timestamp from its components.
func Format(day, hour, minute int) string {
	return fmt.Sprintf("%d.%02d:%02d", day, hour, minute)
}

// FromDaySeconds converts a seconds-since-midnight value (hours may exceed 23,
// as in GTFS stop times) into canonical day-relative form.
func FromDaySeconds(sec int) string {
	if sec < 0 {
		sec = 0
	}
	minutes := sec / 60
	return Format(minutes/minutesPerDay, (minutes%minutesPerDay)/60, minutes%60)
}

// Display trims the leading day-offset field for human-facing output, e.g.
// "0.03:15" becomes "03:15". Purely presentational; the day field remains part
// of the wire form.
func Display(s string) string {
	if _, rest, ok := strings.Cut(s, "."); ok {
		return rest
	}
	return s
}
