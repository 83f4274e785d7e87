// Package calendar implements the Monday-aligned week bucketing used to key
// weekly records.
package calendar

import (
	"time"
)

// DateLayout is the persisted format of week references (semana_ref).
const DateLayout = "2006-01-02"

// StartOfWeek returns midnight of the Monday on or before t, in t's location.
func StartOfWeek(t time.Time) time.Time {
	// time.Weekday starts at Sunday; shift so Monday is 0.
	offset := (int(t.Weekday()) + 6) % 7
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -offset)
}

// CurrentWeekStart returns the start of the week containing now.
func CurrentWeekStart(now time.Time) time.Time {
	return StartOfWeek(now)
}

// PreviousWeekStart returns the start of the week before the one containing now.
func PreviousWeekStart(now time.Time) time.Time {
	return StartOfWeek(now).AddDate(0, 0, -7)
}

// FormatDate renders t as a week reference.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a week reference in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(DateLayout, s, loc)
}

// Clock supplies the current time; tests replace it with a fixed instant.
type Clock func() time.Time

// SystemClock returns a Clock reading the wall clock in loc.
func SystemClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return func() time.Time {
		return time.Now().In(loc)
	}
}

// FixedClock returns a Clock that always reports t.
func FixedClock(t time.Time) Clock {
	return func() time.Time {
		return t
	}
}
