package utils

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

// ValidateTimezone validates that the given timezone string is a valid IANA timezone name
func ValidateTimezone(timezone string) error {
	_, err := LoadTimezone(timezone)
	return err
}

// LoadTimezone resolves an IANA timezone name into a location
func LoadTimezone(timezone string) (*time.Location, error) {
	if timezone == "" {
		return nil, fmt.Errorf("timezone cannot be empty")
	}

	location, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone '%s': %w", timezone, err)
	}

	return location, nil
}
