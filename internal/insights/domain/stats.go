package domain

import "math"

// Stats holds cumulative per-type minute totals for a record subset.
type Stats struct {
	TotalActivities int `json:"total_activities"`
	TotalMinutes    int `json:"total_minutes"`
	CodingMinutes   int `json:"coding_minutes"`
	LearningMinutes int `json:"learning_minutes"`
	MeetingMinutes  int `json:"meeting_minutes"`
	BreakMinutes    int `json:"break_minutes"`
	BrowsingMinutes int `json:"browsing_minutes"`
}

// BuildStats reduces records into cumulative totals. Unknown types count
// toward the grand totals only.
func BuildStats(records []Record) Stats {
	stats := Stats{TotalActivities: len(records)}

	for _, record := range records {
		minutes := record.Minutes()
		stats.TotalMinutes += minutes

		switch record.Type {
		case "coding":
			stats.CodingMinutes += minutes
		case "learning":
			stats.LearningMinutes += minutes
		case "meeting":
			stats.MeetingMinutes += minutes
		case "break":
			stats.BreakMinutes += minutes
		case "browsing":
			stats.BrowsingMinutes += minutes
		}
	}

	return stats
}

// ProductivityScore rates coding and learning time against the grand total,
// 0-100. An empty total scores 0.
func ProductivityScore(stats Stats) int {
	if stats.TotalMinutes <= 0 {
		return 0
	}
	score := int(math.Round(float64(stats.CodingMinutes+stats.LearningMinutes) / float64(stats.TotalMinutes) * 100))
	if score > 100 {
		score = 100
	}
	return score
}
