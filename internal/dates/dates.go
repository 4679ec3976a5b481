// Package dates provides calendar-date parsing, formatting, and whole-day
// arithmetic.
//
// This package exists to avoid duplicating date handling across:
// - the sequence engine (range bounds, stepping)
// - CLI date arguments (relative keywords)
// - history records
//
// A calendar date is a day-granularity point on the proleptic Gregorian
// calendar with no time-of-day and no zone. Internally every date is
// normalized to a UTC midnight so that day arithmetic stays exact.
package dates

import (
	"time"

	"github.com/ncruces/go-strftime"
)

// DefaultFormat is the strftime format used when none is configured.
const DefaultFormat = "%Y-%m-%d"

const secondsPerDay = 24 * 60 * 60

// Min and Max bound the representable calendar range.
var (
	Min = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	Max = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)

	minDay = Min.Unix() / secondsPerDay
	maxDay = Max.Unix() / secondsPerDay
)

// Normalize truncates t to its calendar day, rebased at UTC midnight.
// The day is taken from t's own wall clock, so a local-time "now" keeps
// the local calendar day.
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Parse parses text as a calendar date using a strftime format string.
func Parse(format, text string) (time.Time, error) {
	t, err := strftime.Parse(format, text)
	if err != nil {
		return time.Time{}, err
	}
	return Normalize(t), nil
}

// Format renders a calendar date using a strftime format string.
// Rendering is total: unsupported directives pass through verbatim.
func Format(format string, t time.Time) string {
	return strftime.Format(format, t)
}

// DayNumber returns the number of whole days between t's calendar day and
// the Unix epoch. UTC midnights are exact multiples of 86400 seconds, so
// the division is exact for normalized dates, negatives included.
func DayNumber(t time.Time) int64 {
	return Normalize(t).Unix() / secondsPerDay
}

// AddDays adds a signed number of whole days to t's calendar day. The
// boolean is false when the result would leave the representable range
// (0001-01-01 through 9999-12-31); the check happens before the addition,
// so the arithmetic never wraps.
func AddDays(t time.Time, days int64) (time.Time, bool) {
	day := DayNumber(t)
	if days > 0 && day > maxDay-days {
		return time.Time{}, false
	}
	if days < 0 && day < minDay-days {
		return time.Time{}, false
	}
	n := day + days
	if n < minDay || n > maxDay {
		return time.Time{}, false
	}
	return time.Unix(n*secondsPerDay, 0).UTC(), true
}
