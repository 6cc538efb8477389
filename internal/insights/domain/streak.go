package domain

import "time"

// DefaultStreakLookbackDays bounds the backward scan so streak cost stays
// constant. Days beyond the bound are treated as non-qualifying.
const DefaultStreakLookbackDays = 30

// Streak counts consecutive qualifying calendar days scanning backward from
// today. Today itself is exempt from breaking the run: a streak still in
// progress survives until tomorrow even if nothing qualifying was logged yet.
func Streak(qualifies func(day time.Time) bool, now time.Time, lookbackDays int) int {
	if lookbackDays <= 0 {
		lookbackDays = DefaultStreakLookbackDays
	}

	streak := 0
	today := StartOfDay(now)
	for i := 0; i < lookbackDays; i++ {
		day := today.AddDate(0, 0, -i)
		if qualifies(day) {
			streak++
		} else if i > 0 {
			break
		}
	}
	return streak
}

// CurrentProductiveStreak counts consecutive days with at least one minute of
// productive activity, scanning backward from now with the default lookback.
func CurrentProductiveStreak(records []Record, now time.Time) int {
	productiveDays := make(map[string]bool)
	for _, record := range records {
		if IsProductive(record.Type) && record.Minutes() > 0 {
			productiveDays[record.DateKey()] = true
		}
	}

	return Streak(func(day time.Time) bool {
		return productiveDays[DateKey(day)]
	}, now, DefaultStreakLookbackDays)
}
