// Package persistence adapts the tracking store into the record view the
// metrics consume.
package persistence

import (
	"context"
	"time"

	"github.com/felixgeelhaar/cadence/internal/insights/domain"
	trackingDomain "github.com/felixgeelhaar/cadence/internal/tracking/domain"
)

// ActivityDataSource implements domain.RecordSource on top of the tracking
// repository.
type ActivityDataSource struct {
	repo trackingDomain.ActivityRepository
}

// NewActivityDataSource creates a new ActivityDataSource.
func NewActivityDataSource(repo trackingDomain.ActivityRepository) *ActivityDataSource {
	return &ActivityDataSource{repo: repo}
}

// RecentRecords returns up to limit of the most recent records.
func (s *ActivityDataSource) RecentRecords(ctx context.Context, limit int) ([]domain.Record, error) {
	activities, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	return toRecords(activities), nil
}

// RecordsInRange returns records logged in [start, end).
func (s *ActivityDataSource) RecordsInRange(ctx context.Context, start, end time.Time) ([]domain.Record, error) {
	activities, err := s.repo.ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return toRecords(activities), nil
}

func toRecords(activities []*trackingDomain.Activity) []domain.Record {
	records := make([]domain.Record, 0, len(activities))
	for _, activity := range activities {
		records = append(records, domain.Record{
			Type:            activity.Type,
			DurationMinutes: activity.DurationMinutes,
			LoggedAt:        activity.LoggedAt,
		})
	}
	return records
}
