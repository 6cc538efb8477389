// Package queries contains the read-side handlers for derived metrics.
// Every metric is recomputed from the raw records on each call.
package queries

import (
	"context"
	"math"
	"time"

	"github.com/felixgeelhaar/cadence/internal/insights/domain"
)

// recordFetchLimit bounds how much history the metrics look at. All lookback
// windows are 30 days or shorter, so this is comfortably enough.
const recordFetchLimit = 1000

// GoalTargets holds the configurable daily goal targets, in minutes.
type GoalTargets struct {
	CodingMinutes   int
	LearningMinutes int
	BreakMinutes    int
}

// GoalProgress is one daily goal with its progress.
type GoalProgress struct {
	Type            string `json:"type"`
	TargetMinutes   int    `json:"target_minutes"`
	LoggedMinutes   int    `json:"logged_minutes"`
	ProgressPercent int    `json:"progress_percent"` // clamped to 100
}

// DashboardResult is the aggregate view backing the dashboard.
type DashboardResult struct {
	TodayStats      domain.Stats       `json:"today_stats"`
	TodayFocusScore int                `json:"today_focus_score"`
	CurrentStreak   int                `json:"current_streak"`
	WeeklyBuckets   []domain.DayBucket `json:"weekly_buckets"`
	Goals           []GoalProgress     `json:"goals"`
}

// GetDashboardHandler assembles the dashboard metrics.
type GetDashboardHandler struct {
	source domain.RecordSource
	goals  GoalTargets
}

// NewGetDashboardHandler creates a new GetDashboardHandler.
func NewGetDashboardHandler(source domain.RecordSource, goals GoalTargets) *GetDashboardHandler {
	return &GetDashboardHandler{source: source, goals: goals}
}

// Handle computes today's totals, focus score, streak, the trailing week's
// day buckets, and daily goal progress.
func (h *GetDashboardHandler) Handle(ctx context.Context, now time.Time) (*DashboardResult, error) {
	records, err := h.source.RecentRecords(ctx, recordFetchLimit)
	if err != nil {
		return nil, err
	}

	today := domain.FilterDay(records, now)
	todayStats := domain.BuildStats(today)

	return &DashboardResult{
		TodayStats:      todayStats,
		TodayFocusScore: domain.FocusScore(today),
		CurrentStreak:   domain.CurrentProductiveStreak(records, now),
		WeeklyBuckets:   domain.AggregateDaily(records, domain.DefaultWindowDays, now),
		Goals:           h.goalProgress(todayStats),
	}, nil
}

func (h *GetDashboardHandler) goalProgress(stats domain.Stats) []GoalProgress {
	return []GoalProgress{
		goalProgress("coding", h.goals.CodingMinutes, stats.CodingMinutes),
		goalProgress("learning", h.goals.LearningMinutes, stats.LearningMinutes),
		goalProgress("break", h.goals.BreakMinutes, stats.BreakMinutes),
	}
}

func goalProgress(goalType string, target, logged int) GoalProgress {
	percent := 0
	if target > 0 {
		percent = int(math.Round(float64(logged) / float64(target) * 100))
		if percent > 100 {
			percent = 100
		}
	}
	return GoalProgress{
		Type:            goalType,
		TargetMinutes:   target,
		LoggedMinutes:   logged,
		ProgressPercent: percent,
	}
}
