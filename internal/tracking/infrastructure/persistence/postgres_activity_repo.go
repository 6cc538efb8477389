package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/felixgeelhaar/cadence/internal/tracking/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresActivityRepository implements domain.ActivityRepository using PostgreSQL.
type PostgresActivityRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresActivityRepository creates a new PostgreSQL activity repository.
func NewPostgresActivityRepository(pool *pgxpool.Pool) *PostgresActivityRepository {
	return &PostgresActivityRepository{pool: pool}
}

// Create persists a new activity.
func (r *PostgresActivityRepository) Create(ctx context.Context, activity *domain.Activity) error {
	query := `
		INSERT INTO activities (id, activity_type, duration_minutes, note, logged_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		activity.ID,
		activity.Type,
		activity.DurationMinutes,
		activity.Note,
		activity.LoggedAt,
		activity.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create activity: %w", err)
	}

	return nil
}

// GetByID retrieves an activity by ID.
func (r *PostgresActivityRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Activity, error) {
	query := `
		SELECT id, activity_type, duration_minutes, note, logged_at, created_at
		FROM activities
		WHERE id = $1
	`

	var activity domain.Activity
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&activity.ID,
		&activity.Type,
		&activity.DurationMinutes,
		&activity.Note,
		&activity.LoggedAt,
		&activity.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}

	return &activity, nil
}

// List retrieves the most recent activities, newest first.
func (r *PostgresActivityRepository) List(ctx context.Context, limit int) ([]*domain.Activity, error) {
	query := `
		SELECT id, activity_type, duration_minutes, note, logged_at, created_at
		FROM activities
		ORDER BY logged_at DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	return collectPgxActivities(rows)
}

// ListByDateRange retrieves activities logged in [start, end), oldest first.
func (r *PostgresActivityRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]*domain.Activity, error) {
	query := `
		SELECT id, activity_type, duration_minutes, note, logged_at, created_at
		FROM activities
		WHERE logged_at >= $1 AND logged_at < $2
		ORDER BY logged_at ASC
	`

	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities by range: %w", err)
	}
	defer rows.Close()

	return collectPgxActivities(rows)
}

// Delete removes an activity by ID.
func (r *PostgresActivityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM activities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// DeleteAll wipes the activity log.
func (r *PostgresActivityRepository) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.pool.Exec(ctx, `DELETE FROM activities`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear activities: %w", err)
	}

	return result.RowsAffected(), nil
}

// WeeklyTotals returns per-day, per-type duration totals for [start, end).
func (r *PostgresActivityRepository) WeeklyTotals(ctx context.Context, start, end time.Time) ([]domain.DailyTypeTotal, error) {
	query := `
		SELECT to_char(logged_at, 'YYYY-MM-DD') AS day, activity_type,
		       SUM(duration_minutes)::int, COUNT(*)::int
		FROM activities
		WHERE logged_at >= $1 AND logged_at < $2
		GROUP BY day, activity_type
		ORDER BY day ASC, activity_type ASC
	`

	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate weekly totals: %w", err)
	}
	defer rows.Close()

	var totals []domain.DailyTypeTotal
	for rows.Next() {
		var t domain.DailyTypeTotal
		if err := rows.Scan(&t.Date, &t.ActivityType, &t.TotalMinutes, &t.Count); err != nil {
			return nil, fmt.Errorf("failed to scan weekly total: %w", err)
		}
		totals = append(totals, t)
	}

	return totals, rows.Err()
}

func collectPgxActivities(rows pgx.Rows) ([]*domain.Activity, error) {
	var activities []*domain.Activity
	for rows.Next() {
		var activity domain.Activity
		err := rows.Scan(
			&activity.ID,
			&activity.Type,
			&activity.DurationMinutes,
			&activity.Note,
			&activity.LoggedAt,
			&activity.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		activities = append(activities, &activity)
	}
	return activities, rows.Err()
}
