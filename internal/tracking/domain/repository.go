package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ActivityRepository defines operations for the activity log.
type ActivityRepository interface {
	// Create persists a new activity.
	Create(ctx context.Context, activity *Activity) error

	// GetByID retrieves an activity by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*Activity, error)

	// List retrieves the most recent activities, newest first.
	List(ctx context.Context, limit int) ([]*Activity, error)

	// ListByDateRange retrieves activities logged in [start, end), oldest first.
	ListByDateRange(ctx context.Context, start, end time.Time) ([]*Activity, error)

	// Delete removes an activity by ID. Returns ErrNotFound if absent.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteAll wipes the activity log and returns the number of rows removed.
	DeleteAll(ctx context.Context) (int64, error)

	// WeeklyTotals returns per-day, per-type duration totals for activities
	// logged in [start, end), grouped by calendar date.
	WeeklyTotals(ctx context.Context, start, end time.Time) ([]DailyTypeTotal, error)
}

// DailyTypeTotal is one row of the grouped weekly aggregation.
type DailyTypeTotal struct {
	Date         string // YYYY-MM-DD
	ActivityType string
	TotalMinutes int
	Count        int
}
