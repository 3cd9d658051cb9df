package utils

import (
	"errors"
	"regexp"
)

// Duty, vehicle, trip, and stop IDs use alphanumerics plus underscore,
// hyphen, and dot
var validIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// ValidateID checks that an identifier from a request path is well-formed
func ValidateID(id string) error {
	if id == "" {
		return errors.New("id cannot be empty")
	}

	if len(id) > 100 {
		return errors.New("id too long (max 100 characters)")
	}

	if !validIDPattern.MatchString(id) {
		return errors.New("id contains invalid characters")
	}

	return nil
}
