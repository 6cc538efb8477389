package domain

import "sort"

// Priority ranks an insight for display ordering.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Rank returns the sort rank of the priority, critical first.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

// Insight is one structured recommendation produced by a pattern detector.
type Insight struct {
	Kind           string   `json:"kind"`
	Icon           string   `json:"icon"`
	Title          string   `json:"title"`
	Message        string   `json:"message"`
	Recommendation string   `json:"recommendation"`
	Confidence     int      `json:"confidence"` // 0-100
	Priority       Priority `json:"priority"`
}

// SortByPriority orders insights ascending by priority rank, keeping the
// original order for ties.
func SortByPriority(insights []Insight) {
	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].Priority.Rank() < insights[j].Priority.Rank()
	})
}
