package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(yearDay int, hour int) time.Time {
	return time.Date(2026, 3, yearDay, hour, 0, 0, 0, time.UTC)
}

func TestAggregateDaily_EmptyInput(t *testing.T) {
	now := day(14, 12)

	buckets := AggregateDaily(nil, 7, now)

	require.Len(t, buckets, 7)
	assert.Equal(t, "2026-03-08", buckets[0].Date)
	assert.Equal(t, "2026-03-14", buckets[6].Date)
	for _, bucket := range buckets {
		assert.Equal(t, 0, bucket.TotalMinutes)
		for _, activityType := range KnownTypes {
			assert.Contains(t, bucket.Totals, activityType)
			assert.Equal(t, 0, bucket.Totals[activityType])
		}
	}
}

func TestAggregateDaily_GroupsByDayAndType(t *testing.T) {
	now := day(14, 12)
	records := []Record{
		{Type: "coding", DurationMinutes: 30, LoggedAt: day(13, 9)},
		{Type: "coding", DurationMinutes: 45, LoggedAt: day(13, 14)},
		{Type: "learning", DurationMinutes: 20, LoggedAt: day(14, 10)},
	}

	buckets := AggregateDaily(records, 7, now)

	require.Len(t, buckets, 7)
	assert.Equal(t, 75, buckets[5].Totals["coding"])
	assert.Equal(t, 75, buckets[5].TotalMinutes)
	assert.Equal(t, 20, buckets[6].Totals["learning"])
}

func TestAggregateDaily_ExcludesOutOfWindowRecords(t *testing.T) {
	now := day(14, 12)
	records := []Record{
		{Type: "coding", DurationMinutes: 30, LoggedAt: day(1, 9)},  // before window
		{Type: "coding", DurationMinutes: 40, LoggedAt: day(20, 9)}, // after window
		{Type: "coding", DurationMinutes: 50, LoggedAt: day(12, 9)},
	}

	buckets := AggregateDaily(records, 7, now)

	total := 0
	for _, bucket := range buckets {
		total += bucket.TotalMinutes
	}
	assert.Equal(t, 50, total)
}

func TestAggregateDaily_UnknownTypesCountTowardGrandTotal(t *testing.T) {
	now := day(14, 12)
	records := []Record{
		{Type: "gardening", DurationMinutes: 25, LoggedAt: day(14, 9)},
	}

	buckets := AggregateDaily(records, 7, now)

	last := buckets[6]
	assert.Equal(t, 25, last.TotalMinutes)
	assert.Equal(t, 25, last.Totals["gardening"])
	assert.Equal(t, 0, last.Totals["coding"])
}

func TestAggregateDaily_CoercesNegativeDurations(t *testing.T) {
	now := day(14, 12)
	records := []Record{
		{Type: "coding", DurationMinutes: -30, LoggedAt: day(14, 9)},
	}

	buckets := AggregateDaily(records, 7, now)

	assert.Equal(t, 0, buckets[6].TotalMinutes)
}

func TestAggregateDaily_DefaultWindow(t *testing.T) {
	buckets := AggregateDaily(nil, 0, day(14, 12))

	assert.Len(t, buckets, DefaultWindowDays)
}

func TestFilterDay(t *testing.T) {
	records := []Record{
		{Type: "coding", DurationMinutes: 30, LoggedAt: day(14, 9)},
		{Type: "coding", DurationMinutes: 30, LoggedAt: day(13, 23)},
	}

	filtered := FilterDay(records, day(14, 0))

	require.Len(t, filtered, 1)
	assert.Equal(t, day(14, 9), filtered[0].LoggedAt)
}

func TestFilterSince(t *testing.T) {
	records := []Record{
		{Type: "coding", DurationMinutes: 30, LoggedAt: day(10, 9)},
		{Type: "coding", DurationMinutes: 30, LoggedAt: day(14, 9)},
	}

	filtered := FilterSince(records, day(12, 0))

	require.Len(t, filtered, 1)
	assert.Equal(t, day(14, 9), filtered[0].LoggedAt)
}
