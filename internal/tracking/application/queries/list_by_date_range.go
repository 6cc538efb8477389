package queries

import (
	"context"
	"errors"
	"time"

	"github.com/felixgeelhaar/cadence/internal/tracking/domain"
)

// ErrInvalidRange is returned when the end of a range precedes its start.
var ErrInvalidRange = errors.New("range end precedes start")

// ListByDateRangeQuery contains parameters for a date range listing.
type ListByDateRangeQuery struct {
	Start time.Time
	End   time.Time
}

// ListByDateRangeHandler handles date range listings.
type ListByDateRangeHandler struct {
	repo domain.ActivityRepository
}

// NewListByDateRangeHandler creates a new ListByDateRangeHandler.
func NewListByDateRangeHandler(repo domain.ActivityRepository) *ListByDateRangeHandler {
	return &ListByDateRangeHandler{repo: repo}
}

// Handle returns activities logged in [start, end), oldest first.
func (h *ListByDateRangeHandler) Handle(ctx context.Context, query ListByDateRangeQuery) ([]*domain.Activity, error) {
	if query.End.Before(query.Start) {
		return nil, ErrInvalidRange
	}
	return h.repo.ListByDateRange(ctx, query.Start, query.End)
}
