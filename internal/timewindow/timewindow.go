// Package timewindow parses customer-supplied times and checks them against
// the restaurant's delivery window.
package timewindow

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnparseableTime is returned when a time string matches no accepted format.
var ErrUnparseableTime = errors.New("timewindow: unrecognized time format")

// Accepted 12-hour layouts: "7:00 PM", "7 PM", "7:00PM", "7PM", "7".
var layouts = []string{
	"3:04 PM",
	"3 PM",
	"3:04PM",
	"3PM",
	"3",
}

// Validator checks delivery times against the daily window in the
// restaurant's timezone.
type Validator struct {
	loc         *time.Location
	startHour   int
	startMinute int
	endHour     int
	endMinute   int
}

// New loads the business timezone. The delivery window is fixed: first
// delivery at 10:00, last at 19:30.
func New(timezone string) (*Validator, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("timewindow: load timezone %s: %w", timezone, err)
	}
	return &Validator{
		loc:         loc,
		startHour:   10,
		startMinute: 0,
		endHour:     19,
		endMinute:   30,
	}, nil
}

// Location returns the restaurant's timezone.
func (v *Validator) Location() *time.Location {
	return v.loc
}

// Parse interprets a 12-hour clock string. Uppercasing makes "7 pm" work too.
func Parse(text string) (time.Time, error) {
	normalized := strings.ToUpper(strings.TrimSpace(text))
	for _, layout := range layouts {
		if t, err := time.Parse(layout, normalized); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseableTime, text)
}

// WithinWindow reports whether the given time string falls inside the
// delivery window, anchored to today's date in the business timezone. Only
// the wall-clock time is compared; the intended delivery date is not part of
// the check.
func (v *Validator) WithinWindow(text string) (bool, error) {
	parsed, err := Parse(text)
	if err != nil {
		return false, err
	}
	now := time.Now().In(v.loc)
	candidate := time.Date(now.Year(), now.Month(), now.Day(), parsed.Hour(), parsed.Minute(), 0, 0, v.loc)
	start := time.Date(now.Year(), now.Month(), now.Day(), v.startHour, v.startMinute, 0, 0, v.loc)
	end := time.Date(now.Year(), now.Month(), now.Day(), v.endHour, v.endMinute, 0, 0, v.loc)
	return !candidate.Before(start) && !candidate.After(end), nil
}
