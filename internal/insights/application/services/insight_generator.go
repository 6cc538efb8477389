// Package services contains the insight generation engine.
package services

import (
	"fmt"
	"math"
	"time"

	"github.com/felixgeelhaar/cadence/internal/insights/domain"
)

// detector inspects the record list and returns one insight or nil.
type detector func(records []domain.Record, now time.Time) *domain.Insight

// InsightGenerator runs a fixed battery of independent pattern detectors
// over the activity log. Each detector is pure; the output is sorted by
// priority, critical first.
type InsightGenerator struct {
	detectors []detector
}

// NewInsightGenerator creates a new InsightGenerator.
func NewInsightGenerator() *InsightGenerator {
	g := &InsightGenerator{}
	g.detectors = []detector{
		g.detectPeakCodingHours,
		g.detectMeetingImpact,
		g.detectBurnoutRisk,
		g.detectDistractionPattern,
		g.detectProductivityStreak,
		g.detectWeeklyTrend,
		g.detectLearningHabits,
		g.detectSessionLength,
	}
	return g
}

// Generate runs every detector and returns the priority-sorted insights.
// An empty result is a valid state, not an error.
func (g *InsightGenerator) Generate(records []domain.Record, now time.Time) []domain.Insight {
	insights := make([]domain.Insight, 0, len(g.detectors))
	for _, detect := range g.detectors {
		if insight := detect(records, now); insight != nil {
			insights = append(insights, *insight)
		}
	}

	domain.SortByPriority(insights)
	return insights
}

// detectPeakCodingHours finds the hour of day with the most coding minutes
// and reports a two-hour window starting there.
func (g *InsightGenerator) detectPeakCodingHours(records []domain.Record, _ time.Time) *domain.Insight {
	codingByHour := make(map[int]int)
	for _, record := range records {
		if record.Type == "coding" {
			codingByHour[record.LoggedAt.Hour()] += record.Minutes()
		}
	}
	if len(codingByHour) == 0 {
		return nil
	}

	bestHour, bestMinutes := maxByValue(codingByHour)

	confidence := 60 + bestMinutes/10
	if confidence > 95 {
		confidence = 95
	}

	return &domain.Insight{
		Kind:           "peak-performance",
		Icon:           "🧠",
		Title:          "Peak Coding Hours",
		Message:        fmt.Sprintf("You code best between %s – %s", formatHour(bestHour), formatHour(bestHour+2)),
		Recommendation: "Schedule your most complex tasks during this time window for maximum productivity.",
		Confidence:     confidence,
		Priority:       domain.PriorityHigh,
	}
}

// detectMeetingImpact compares average coding minutes on heavy-meeting days
// (>60 min) against light ones (<=30 min). Needs at least two distinct days
// of data.
func (g *InsightGenerator) detectMeetingImpact(records []domain.Record, _ time.Time) *domain.Insight {
	type dayLoad struct {
		meetingMinutes int
		codingMinutes  int
	}

	days := make(map[string]*dayLoad)
	for _, record := range records {
		key := record.DateKey()
		load, ok := days[key]
		if !ok {
			load = &dayLoad{}
			days[key] = load
		}
		switch record.Type {
		case "meeting":
			load.meetingMinutes += record.Minutes()
		case "coding":
			load.codingMinutes += record.Minutes()
		}
	}
	if len(days) < 2 {
		return nil
	}

	var highDays, lowDays, highCoding, lowCoding int
	for _, load := range days {
		if load.meetingMinutes > 60 {
			highDays++
			highCoding += load.codingMinutes
		} else if load.meetingMinutes <= 30 {
			lowDays++
			lowCoding += load.codingMinutes
		}
	}

	var avgHigh, avgLow float64
	if highDays > 0 {
		avgHigh = float64(highCoding) / float64(highDays)
	}
	if lowDays > 0 {
		avgLow = float64(lowCoding) / float64(lowDays)
	}

	if avgHigh < avgLow*0.7 && highDays > 0 {
		return &domain.Insight{
			Kind:           "meeting-impact",
			Icon:           "📉",
			Title:          "Meeting Impact Detected",
			Message:        "Productivity drops by ~30% after long meetings (>1 hour)",
			Recommendation: "Try to batch meetings together and protect focus time blocks.",
			Confidence:     78,
			Priority:       domain.PriorityMedium,
		}
	}

	return &domain.Insight{
		Kind:           "meeting-balance",
		Icon:           "✅",
		Title:          "Good Meeting Balance",
		Message:        "Your meetings don't significantly impact your coding productivity",
		Recommendation: "Keep maintaining this healthy balance between meetings and deep work.",
		Confidence:     72,
		Priority:       domain.PriorityLow,
	}
}

// detectBurnoutRisk rates the break-to-coding ratio over the trailing seven
// days. The daily average always divides by seven, not by days logged.
func (g *InsightGenerator) detectBurnoutRisk(records []domain.Record, now time.Time) *domain.Insight {
	lastWeek := domain.FilterSince(records, now.AddDate(0, 0, -7))

	var totalCoding, totalBreaks int
	for _, record := range lastWeek {
		switch record.Type {
		case "coding":
			totalCoding += record.Minutes()
		case "break":
			totalBreaks += record.Minutes()
		}
	}

	breakRatio := 1.0
	if totalCoding > 0 {
		breakRatio = float64(totalBreaks) / float64(totalCoding)
	}
	avgDailyCoding := float64(totalCoding) / 7

	if breakRatio < 0.1 && avgDailyCoding > 180 {
		return &domain.Insight{
			Kind:           "burnout-risk",
			Icon:           "🔥",
			Title:          "High Burnout Risk",
			Message:        "Break frequency too low with high coding hours",
			Recommendation: "Take a 5-10 min break every 90 minutes. Your long-term productivity depends on it!",
			Confidence:     85,
			Priority:       domain.PriorityCritical,
		}
	}

	if breakRatio < 0.15 && avgDailyCoding > 120 {
		return &domain.Insight{
			Kind:           "burnout-warning",
			Icon:           "⚠️",
			Title:          "Burnout Warning",
			Message:        "You're coding a lot with few breaks",
			Recommendation: "Consider adding short breaks. The Pomodoro technique (25 min work, 5 min break) can help.",
			Confidence:     75,
			Priority:       domain.PriorityMedium,
		}
	}

	if breakRatio >= 0.15 {
		return &domain.Insight{
			Kind:           "healthy-habits",
			Icon:           "💚",
			Title:          "Healthy Work Habits",
			Message:        "Good balance between work and breaks",
			Recommendation: "You're maintaining a sustainable pace. Keep it up!",
			Confidence:     80,
			Priority:       domain.PriorityLow,
		}
	}

	return nil
}

// detectDistractionPattern reports the peak distraction hour and top source,
// or celebrates a distraction-free log.
func (g *InsightGenerator) detectDistractionPattern(records []domain.Record, _ time.Time) *domain.Insight {
	var distractions []domain.Record
	for _, record := range records {
		if domain.IsDistracted(record.Type) {
			distractions = append(distractions, record)
		}
	}

	if len(distractions) == 0 {
		return &domain.Insight{
			Kind:           "focus-master",
			Icon:           "🎯",
			Title:          "Focus Master",
			Message:        "No significant distractions detected!",
			Recommendation: "Excellent focus discipline. You're a productivity champion!",
			Confidence:     90,
			Priority:       domain.PriorityLow,
		}
	}

	byHour := make(map[int]int)
	bySource := make(map[string]int)
	for _, record := range distractions {
		byHour[record.LoggedAt.Hour()] += record.Minutes()
		bySource[record.Type] += record.Minutes()
	}

	peakHour, _ := maxByValue(byHour)
	topSource, _ := maxByStringKey(bySource)

	return &domain.Insight{
		Kind:           "distraction-pattern",
		Icon:           "📱",
		Title:          "Distraction Pattern Found",
		Message:        fmt.Sprintf("You get most distracted around %s (mainly %s)", formatHour(peakHour), topSource),
		Recommendation: fmt.Sprintf("Try blocking %s during work hours or use website blockers.", topSource),
		Confidence:     82,
		Priority:       domain.PriorityMedium,
	}
}

// detectProductivityStreak reports streaks of three days or more.
func (g *InsightGenerator) detectProductivityStreak(records []domain.Record, now time.Time) *domain.Insight {
	streak := domain.CurrentProductiveStreak(records, now)

	if streak >= 7 {
		return &domain.Insight{
			Kind:           "streak-achievement",
			Icon:           "🔥",
			Title:          fmt.Sprintf("%d-Day Productivity Streak!", streak),
			Message:        "You've been consistently productive for over a week",
			Recommendation: "Amazing consistency! Momentum is your superpower. Keep the streak alive!",
			Confidence:     95,
			Priority:       domain.PriorityLow,
		}
	}

	if streak >= 3 {
		return &domain.Insight{
			Kind:           "streak-building",
			Icon:           "⚡",
			Title:          fmt.Sprintf("%d-Day Streak Building", streak),
			Message:        "You're building good momentum",
			Recommendation: "Just a few more days to reach a week-long streak!",
			Confidence:     85,
			Priority:       domain.PriorityLow,
		}
	}

	return nil
}

// detectWeeklyTrend compares productive minutes in the trailing seven days
// against the seven days before. No signal without a prior week baseline.
func (g *InsightGenerator) detectWeeklyTrend(records []domain.Record, now time.Time) *domain.Insight {
	thisWeek := productiveMinutesInWindow(records, now.AddDate(0, 0, -7), now)
	lastWeek := productiveMinutesInWindow(records, now.AddDate(0, 0, -14), now.AddDate(0, 0, -7))

	if lastWeek == 0 {
		return nil
	}

	change := float64(thisWeek-lastWeek) / float64(lastWeek) * 100

	if change > 20 {
		return &domain.Insight{
			Kind:           "improvement",
			Icon:           "📈",
			Title:          "Productivity Up!",
			Message:        fmt.Sprintf("You're %d%% more productive than last week", int(math.Round(change))),
			Recommendation: "Great improvement! Keep the momentum going.",
			Confidence:     88,
			Priority:       domain.PriorityLow,
		}
	}

	if change < -20 {
		return &domain.Insight{
			Kind:           "decline",
			Icon:           "📉",
			Title:          "Productivity Dip",
			Message:        fmt.Sprintf("Productivity is down %d%% from last week", int(math.Abs(math.Round(change)))),
			Recommendation: "Review what changed this week. External factors? Try resetting your routine.",
			Confidence:     85,
			Priority:       domain.PriorityMedium,
		}
	}

	return &domain.Insight{
		Kind:           "stable",
		Icon:           "📊",
		Title:          "Consistent Performance",
		Message:        "Your productivity is stable week over week",
		Recommendation: "Stability is good! Consider small improvements to level up.",
		Confidence:     80,
		Priority:       domain.PriorityLow,
	}
}

// detectLearningHabits rates learning time against coding time.
func (g *InsightGenerator) detectLearningHabits(records []domain.Record, _ time.Time) *domain.Insight {
	var totalLearning, totalCoding int
	for _, record := range records {
		switch record.Type {
		case "learning":
			totalLearning += record.Minutes()
		case "coding":
			totalCoding += record.Minutes()
		}
	}

	learningRatio := 0.0
	if totalCoding > 0 {
		learningRatio = float64(totalLearning) / float64(totalCoding)
	}

	if learningRatio >= 0.2 {
		return &domain.Insight{
			Kind:           "learning-champion",
			Icon:           "📚",
			Title:          "Learning Champion",
			Message:        "Great learning-to-coding ratio (20%+)",
			Recommendation: "Your investment in learning will compound over time. Keep growing!",
			Confidence:     85,
			Priority:       domain.PriorityLow,
		}
	}

	if learningRatio < 0.05 && totalCoding > 300 {
		return &domain.Insight{
			Kind:           "learning-gap",
			Icon:           "📖",
			Title:          "Learning Opportunity",
			Message:        "You're coding a lot but learning time is low",
			Recommendation: "Dedicate 15-30 mins daily to learning. It boosts long-term productivity.",
			Confidence:     78,
			Priority:       domain.PriorityMedium,
		}
	}

	return nil
}

// detectSessionLength rates the average coding session. Needs at least five
// coding records for a signal.
func (g *InsightGenerator) detectSessionLength(records []domain.Record, _ time.Time) *domain.Insight {
	var sessions, totalMinutes int
	for _, record := range records {
		if record.Type == "coding" {
			sessions++
			totalMinutes += record.Minutes()
		}
	}
	if sessions < 5 {
		return nil
	}

	avg := float64(totalMinutes) / float64(sessions)
	rounded := int(math.Round(avg))

	if avg > 120 {
		return &domain.Insight{
			Kind:           "long-sessions",
			Icon:           "⏱️",
			Title:          "Long Coding Sessions",
			Message:        fmt.Sprintf("Average session: %d mins", rounded),
			Recommendation: "Try breaking into 90-min focused blocks with breaks for better sustained focus.",
			Confidence:     75,
			Priority:       domain.PriorityMedium,
		}
	}

	if avg < 25 {
		return &domain.Insight{
			Kind:           "short-sessions",
			Icon:           "⚡",
			Title:          "Short Sessions Detected",
			Message:        fmt.Sprintf("Average session: %d mins", rounded),
			Recommendation: "Longer focused sessions (45-90 mins) help achieve deep work state.",
			Confidence:     70,
			Priority:       domain.PriorityMedium,
		}
	}

	return &domain.Insight{
		Kind:           "optimal-sessions",
		Icon:           "✨",
		Title:          "Optimal Session Length",
		Message:        fmt.Sprintf("Average session: %d mins (ideal range)", rounded),
		Recommendation: "Your session lengths are in the sweet spot for deep work!",
		Confidence:     85,
		Priority:       domain.PriorityLow,
	}
}

// productiveMinutesInWindow sums productive-type minutes logged in [start, end).
func productiveMinutesInWindow(records []domain.Record, start, end time.Time) int {
	var minutes int
	for _, record := range records {
		if !domain.IsProductive(record.Type) {
			continue
		}
		if record.LoggedAt.Before(start) || !record.LoggedAt.Before(end) {
			continue
		}
		minutes += record.Minutes()
	}
	return minutes
}

// maxByValue returns the int key with the highest value, lowest key on ties.
func maxByValue(totals map[int]int) (int, int) {
	bestKey, bestValue, found := 0, 0, false
	for key, value := range totals {
		if !found || value > bestValue || (value == bestValue && key < bestKey) {
			bestKey, bestValue, found = key, value, true
		}
	}
	return bestKey, bestValue
}

// maxByStringKey returns the string key with the highest value,
// lexicographically first on ties.
func maxByStringKey(totals map[string]int) (string, int) {
	bestKey, bestValue, found := "", 0, false
	for key, value := range totals {
		if !found || value > bestValue || (value == bestValue && key < bestKey) {
			bestKey, bestValue, found = key, value, true
		}
	}
	return bestKey, bestValue
}

// formatHour formats an hour of day as "9 AM" / "2 PM".
func formatHour(hour int) string {
	hour = hour % 24
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return fmt.Sprintf("%d %s", hour12, period)
}
