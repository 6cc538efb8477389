package queries

import (
	"context"

	"github.com/felixgeelhaar/cadence/internal/insights/domain"
)

// RewardsResult is the rewards view: points, level, badges, and the
// productivity score.
type RewardsResult struct {
	Stats             domain.Stats   `json:"stats"`
	Points            int            `json:"points"`
	Level             domain.Level   `json:"level"`
	NextLevel         *domain.Level  `json:"next_level,omitempty"`
	ProgressPercent   float64        `json:"progress_percent"`
	EarnedBadges      []domain.Badge `json:"earned_badges"`
	LockedBadges      []domain.Badge `json:"locked_badges"`
	ProductivityScore int            `json:"productivity_score"`
}

// GetRewardsHandler assembles the rewards metrics.
type GetRewardsHandler struct {
	source domain.RecordSource
}

// NewGetRewardsHandler creates a new GetRewardsHandler.
func NewGetRewardsHandler(source domain.RecordSource) *GetRewardsHandler {
	return &GetRewardsHandler{source: source}
}

// Handle evaluates the badge and level tables against cumulative stats.
func (h *GetRewardsHandler) Handle(ctx context.Context) (*RewardsResult, error) {
	records, err := h.source.RecentRecords(ctx, recordFetchLimit)
	if err != nil {
		return nil, err
	}

	stats := domain.BuildStats(records)
	rewards := domain.ComputeRewards(stats)

	return &RewardsResult{
		Stats:             stats,
		Points:            rewards.Points,
		Level:             rewards.Level,
		NextLevel:         rewards.NextLevel,
		ProgressPercent:   rewards.ProgressPercent,
		EarnedBadges:      rewards.EarnedBadges,
		LockedBadges:      rewards.LockedBadges,
		ProductivityScore: domain.ProductivityScore(stats),
	}, nil
}
