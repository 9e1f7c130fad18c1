// Package dates maps calendar dates to the canonical YYYY-MM-DD keys the
// tracker stores completions and entries under. Day keys sort the same way
// lexicographically and chronologically.
package dates

import (
	"errors"
	"strings"
	"time"
)

const KeyLayout = "2006-01-02"

var ErrMalformedKey = errors.New("malformed date key")

// DayKey returns the calendar-day key for t in t's own location.
func DayKey(t time.Time) string {
	return t.Format(KeyLayout)
}

// WeekKey returns the day key of the Monday starting the ISO week that
// contains t. Weeks start Monday, not Sunday.
func WeekKey(t time.Time) string {
	return DayKey(WeekStart(t))
}

// WeekStart returns midnight of the Monday of t's week, in t's location.
func WeekStart(t time.Time) time.Time {
	midnight := Midnight(t)
	offset := (int(midnight.Weekday()) + 6) % 7
	return midnight.AddDate(0, 0, -offset)
}

// Midnight truncates t to the start of its calendar day, keeping the location.
func Midnight(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// ParseKey is the inverse of DayKey: it reads a day key as local midnight in
// the given location. Anything that does not round-trip through KeyLayout is
// rejected.
func ParseKey(value string, location *time.Location) (time.Time, error) {
	if location == nil {
		location = time.Local
	}
	trimmed := strings.TrimSpace(value)
	parsed, err := time.ParseInLocation(KeyLayout, trimmed, location)
	if err != nil {
		return time.Time{}, ErrMalformedKey
	}
	if parsed.Format(KeyLayout) != trimmed {
		return time.Time{}, ErrMalformedKey
	}
	return parsed, nil
}

// IsValidKey reports whether value parses as a day key.
func IsValidKey(value string) bool {
	_, err := ParseKey(value, time.UTC)
	return err == nil
}
