// Package dateutil provides date and time helpers: parsing and formatting
// with sensible defaults, day arithmetic, inclusive date ranges, day-of-week
// checks and Unix timestamp conversions.
//
// Calendar dates use date.Date from github.com/rickb777/date/v2, a
// day-precision type that avoids the timezone pitfalls of using time.Time
// for whole days. Instants stay time.Time.
package dateutil

import (
	"time"

	"github.com/rickb777/date/v2"
)

// Default layouts, in Go reference-time notation.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)

// Now returns the current local time.
func Now() time.Time {
	return time.Now()
}

// NowTimestamp returns the current Unix time in seconds, with fractional
// precision.
func NowTimestamp() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Second)
}

// NowTimestampMillis returns the current Unix time in milliseconds.
func NowTimestampMillis() int64 {
	return time.Now().UnixMilli()
}

// Today returns the current date.
func Today() date.Date {
	return date.Today()
}

// ParseDate parses a date string. An empty layout defaults to ISO-8601
// ("2006-01-02").
func ParseDate(s, layout string) (date.Date, error) {
	if layout == "" {
		return date.ParseISO(s)
	}
	return date.Parse(layout, s)
}

// ParseDateTime parses a datetime string. An empty layout defaults to
// "2006-01-02 15:04:05".
func ParseDateTime(s, layout string) (time.Time, error) {
	if layout == "" {
		layout = DateTimeLayout
	}
	return time.Parse(layout, s)
}

// FormatDate formats a date. An empty layout defaults to ISO-8601.
func FormatDate(d date.Date, layout string) string {
	if layout == "" {
		layout = DateLayout
	}
	return d.Format(layout)
}

// FormatDateTime formats a datetime. An empty layout defaults to
// "2006-01-02 15:04:05".
func FormatDateTime(t time.Time, layout string) string {
	if layout == "" {
		layout = DateTimeLayout
	}
	return t.Format(layout)
}

// DateRange returns every date from start to end inclusive. An empty slice
// is returned when start is after end.
func DateRange(start, end date.Date) []date.Date {
	dates := []date.Date{}
	for d := start; d <= end; d++ {
		dates = append(dates, d)
	}
	return dates
}

// DaysBetween returns the absolute number of days between two dates.
func DaysBetween(a, b date.Date) int {
	days := int(b - a)
	if days < 0 {
		days = -days
	}
	return days
}

// AddDays returns the date n days after d (before, when n is negative).
func AddDays(d date.Date, n int) date.Date {
	return d + date.Date(n)
}

// StartOfDay returns midnight at the start of t's day, in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's day, in t's
// location.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// IsWeekend reports whether the date falls on a Saturday or Sunday.
func IsWeekend(d date.Date) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// FromTimestamp converts Unix seconds into a time.Time.
func FromTimestamp(seconds float64) time.Time {
	return time.Unix(0, int64(seconds*float64(time.Second)))
}

// ToTimestamp converts a time.Time into Unix seconds with fractional
// precision.
func ToTimestamp(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
