package queries

import (
	"context"
	"time"

	"github.com/felixgeelhaar/cadence/internal/insights/domain"
)

// WeeklyResult is the weekly trend view: day buckets plus summary totals.
type WeeklyResult struct {
	Buckets           []domain.DayBucket `json:"buckets"`
	Stats             domain.Stats       `json:"stats"`
	ProductivityScore int                `json:"productivity_score"`
	CurrentStreak     int                `json:"current_streak"`
}

// GetWeeklyHandler assembles the weekly metrics.
type GetWeeklyHandler struct {
	source domain.RecordSource
}

// NewGetWeeklyHandler creates a new GetWeeklyHandler.
func NewGetWeeklyHandler(source domain.RecordSource) *GetWeeklyHandler {
	return &GetWeeklyHandler{source: source}
}

// Handle computes day buckets and summary totals for the trailing week.
func (h *GetWeeklyHandler) Handle(ctx context.Context, now time.Time) (*WeeklyResult, error) {
	records, err := h.source.RecentRecords(ctx, recordFetchLimit)
	if err != nil {
		return nil, err
	}

	weekStart := domain.StartOfDay(now).AddDate(0, 0, -domain.DefaultWindowDays+1)
	weekRecords := domain.FilterSince(records, weekStart)
	stats := domain.BuildStats(weekRecords)

	return &WeeklyResult{
		Buckets:           domain.AggregateDaily(records, domain.DefaultWindowDays, now),
		Stats:             stats,
		ProductivityScore: domain.ProductivityScore(stats),
		CurrentStreak:     domain.CurrentProductiveStreak(records, now),
	}, nil
}
