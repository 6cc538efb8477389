package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFocusScore_EmptyInput(t *testing.T) {
	assert.Equal(t, 100, FocusScore(nil))
}

func TestFocusScore_OnlyNeutralTypes(t *testing.T) {
	records := []Record{
		{Type: "break", DurationMinutes: 30},
		{Type: "gardening", DurationMinutes: 60},
	}

	assert.Equal(t, 100, FocusScore(records))
}

func TestFocusScore_AllFocused(t *testing.T) {
	records := []Record{
		{Type: "coding", DurationMinutes: 60},
		{Type: "meeting", DurationMinutes: 30},
	}

	assert.Equal(t, 100, FocusScore(records))
}

func TestFocusScore_AllDistracted(t *testing.T) {
	records := []Record{
		{Type: "youtube", DurationMinutes: 45},
		{Type: "reddit", DurationMinutes: 15},
	}

	assert.Equal(t, 0, FocusScore(records))
}

func TestFocusScore_MixedRoundsToNearest(t *testing.T) {
	records := []Record{
		{Type: "coding", DurationMinutes: 60},
		{Type: "browsing", DurationMinutes: 30},
	}

	// 60 / 90 = 66.67 -> 67
	assert.Equal(t, 67, FocusScore(records))
}

func TestFocusScore_NeutralTypesIgnored(t *testing.T) {
	records := []Record{
		{Type: "coding", DurationMinutes: 30},
		{Type: "browsing", DurationMinutes: 30},
		{Type: "break", DurationMinutes: 500},
	}

	assert.Equal(t, 50, FocusScore(records))
}

func TestDistractionBreakdown_ZeroFilled(t *testing.T) {
	breakdown := DistractionBreakdown(nil)

	assert.Equal(t, map[string]int{
		"youtube":   0,
		"instagram": 0,
		"reddit":    0,
		"browsing":  0,
	}, breakdown)
}

func TestDistractionBreakdown_SumsPerSource(t *testing.T) {
	records := []Record{
		{Type: "youtube", DurationMinutes: 20},
		{Type: "youtube", DurationMinutes: 10},
		{Type: "coding", DurationMinutes: 90},
	}

	breakdown := DistractionBreakdown(records)

	assert.Equal(t, 30, breakdown["youtube"])
	assert.Equal(t, 0, breakdown["reddit"])
}
