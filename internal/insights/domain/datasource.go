package domain

import (
	"context"
	"time"
)

// RecordSource supplies activity records to the metrics. Implementations
// read from the tracking context's store.
type RecordSource interface {
	// RecentRecords returns up to limit of the most recent records.
	RecentRecords(ctx context.Context, limit int) ([]Record, error)

	// RecordsInRange returns records logged in [start, end).
	RecordsInRange(ctx context.Context, start, end time.Time) ([]Record, error)
}
