package domain

import "time"

// Record is the minimal activity view the metrics operate on.
type Record struct {
	Type            string
	DurationMinutes int
	LoggedAt        time.Time
}

// Minutes returns the record's duration with negative values coerced to 0,
// so degenerate input degrades to zero contribution instead of failing.
func (r Record) Minutes() int {
	if r.DurationMinutes < 0 {
		return 0
	}
	return r.DurationMinutes
}

// DateKey returns the record's local calendar date as YYYY-MM-DD.
func (r Record) DateKey() string {
	return DateKey(r.LoggedAt)
}

// DateKey formats a time as its local calendar date, YYYY-MM-DD.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
