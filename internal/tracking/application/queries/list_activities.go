// Package queries contains the read-side handlers for the activity log.
package queries

import (
	"context"

	"github.com/felixgeelhaar/cadence/internal/tracking/domain"
)

// ListActivitiesQuery contains parameters for listing activities.
type ListActivitiesQuery struct {
	Limit int
}

// ListActivitiesHandler handles listing recent activities.
type ListActivitiesHandler struct {
	repo         domain.ActivityRepository
	defaultLimit int
}

// NewListActivitiesHandler creates a new ListActivitiesHandler.
func NewListActivitiesHandler(repo domain.ActivityRepository, defaultLimit int) *ListActivitiesHandler {
	if defaultLimit <= 0 {
		defaultLimit = 100
	}
	return &ListActivitiesHandler{repo: repo, defaultLimit: defaultLimit}
}

// Handle returns the most recent activities, newest first.
func (h *ListActivitiesHandler) Handle(ctx context.Context, query ListActivitiesQuery) ([]*domain.Activity, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = h.defaultLimit
	}
	return h.repo.List(ctx, limit)
}
