package queries

import (
	"context"
	"time"

	"github.com/felixgeelhaar/cadence/internal/tracking/domain"
)

// ListTodayHandler handles listing today's activities.
type ListTodayHandler struct {
	repo domain.ActivityRepository
}

// NewListTodayHandler creates a new ListTodayHandler.
func NewListTodayHandler(repo domain.ActivityRepository) *ListTodayHandler {
	return &ListTodayHandler{repo: repo}
}

// Handle returns activities logged today, oldest first. Day boundaries are
// midnight-to-midnight in now's location.
func (h *ListTodayHandler) Handle(ctx context.Context, now time.Time) ([]*domain.Activity, error) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 0, 1)
	return h.repo.ListByDateRange(ctx, start, end)
}
