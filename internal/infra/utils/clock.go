package utils

import "time"

// LocalClock reports wall time in the dashboard's configured timezone.
type LocalClock struct {
	location *time.Location
}

func NewLocalClock(timezone string) (*LocalClock, error) {
	location, err := LoadTimezone(timezone)
	if err != nil {
		return nil, err
	}
	return &LocalClock{location: location}, nil
}

func (c *LocalClock) Now() time.Time {
	return time.Now().In(c.location)
}
