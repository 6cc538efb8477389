package domain

import "time"

// DefaultWindowDays is the day-window size used by the dashboard series.
const DefaultWindowDays = 7

// DayBucket holds one calendar day's per-type minute totals.
type DayBucket struct {
	Date         string         `json:"date"`          // YYYY-MM-DD
	Totals       map[string]int `json:"totals"`        // per-type minutes, zero-filled for known types
	TotalMinutes int            `json:"total_minutes"` // grand total including unknown types
}

// AggregateDaily buckets records into windowDays consecutive calendar days
// ending at now's day, oldest first. Days without activity produce all-zero
// buckets so downstream series always have exactly windowDays points.
// Records outside the window are excluded.
func AggregateDaily(records []Record, windowDays int, now time.Time) []DayBucket {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}

	buckets := make([]DayBucket, windowDays)
	index := make(map[string]*DayBucket, windowDays)
	for i := 0; i < windowDays; i++ {
		day := StartOfDay(now).AddDate(0, 0, i-windowDays+1)
		bucket := &buckets[i]
		bucket.Date = DateKey(day)
		bucket.Totals = make(map[string]int, len(KnownTypes))
		for _, activityType := range KnownTypes {
			bucket.Totals[activityType] = 0
		}
		index[bucket.Date] = bucket
	}

	for _, record := range records {
		bucket, ok := index[record.DateKey()]
		if !ok {
			continue
		}
		bucket.Totals[record.Type] += record.Minutes()
		bucket.TotalMinutes += record.Minutes()
	}

	return buckets
}

// FilterDay returns the records whose local calendar date equals day's.
func FilterDay(records []Record, day time.Time) []Record {
	key := DateKey(day)
	var filtered []Record
	for _, record := range records {
		if record.DateKey() == key {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// FilterSince returns the records logged at or after cutoff.
func FilterSince(records []Record, cutoff time.Time) []Record {
	var filtered []Record
	for _, record := range records {
		if !record.LoggedAt.Before(cutoff) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}
