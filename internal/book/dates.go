package book

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the accepted calendar date form.
	DateLayout = "2006-01-02"
	// ClockLayout is the accepted time-of-day form.
	ClockLayout = "15:04"
)

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(raw string) (time.Time, error) {
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("book: date %q: %w", raw, ErrInvalid)
	}
	return t, nil
}

// ParseClock parses an HH:MM time of day.
func ParseClock(raw string) (time.Time, error) {
	t, err := time.Parse(ClockLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("book: time %q: %w", raw, ErrInvalid)
	}
	return t, nil
}
