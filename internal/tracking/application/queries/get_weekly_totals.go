package queries

import (
	"context"
	"time"

	"github.com/felixgeelhaar/cadence/internal/tracking/domain"
)

// GetWeeklyTotalsHandler handles the server-side weekly aggregation.
type GetWeeklyTotalsHandler struct {
	repo domain.ActivityRepository
}

// NewGetWeeklyTotalsHandler creates a new GetWeeklyTotalsHandler.
func NewGetWeeklyTotalsHandler(repo domain.ActivityRepository) *GetWeeklyTotalsHandler {
	return &GetWeeklyTotalsHandler{repo: repo}
}

// Handle returns per-day, per-type totals for the trailing seven days
// ending at now, grouped by calendar date.
func (h *GetWeeklyTotalsHandler) Handle(ctx context.Context, now time.Time) ([]domain.DailyTypeTotal, error) {
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	start := end.AddDate(0, 0, -7)
	return h.repo.WeeklyTotals(ctx, start, end)
}
