// Package dataset loads and validates the roster dataset: a single JSON
// document holding the four collections (stops, trips, vehicles, duties) that
// the resolution engine consumes. Sequence ordinals are canonicalized to
// strings during decoding, so mixed string/numeric representations in source
// data never cause silent lookup misses.
package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"rosterd.transitops.org/internal/models"
)

// Load reads and decodes a roster dataset from a JSON file, then validates its
// structure.
func Load(path string) (*models.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close() // nolint

	return Decode(f)
}

// Decode reads a roster dataset from r and validates its structure.
func Decode(r io.Reader) (*models.Dataset, error) {
	var ds models.Dataset
	dec := json.NewDecoder(r)
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	if err := Validate(&ds); err != nil {
		return nil, err
	}
	return &ds, nil
}
