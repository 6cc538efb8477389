// Package persistence contains the database-backed activity repositories.
package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/felixgeelhaar/cadence/internal/tracking/domain"
	"github.com/google/uuid"
)

// SQLiteActivityRepository implements domain.ActivityRepository using SQLite.
type SQLiteActivityRepository struct {
	db *sql.DB
}

// NewSQLiteActivityRepository creates a new SQLite activity repository.
func NewSQLiteActivityRepository(db *sql.DB) *SQLiteActivityRepository {
	return &SQLiteActivityRepository{db: db}
}

// Create persists a new activity.
func (r *SQLiteActivityRepository) Create(ctx context.Context, activity *domain.Activity) error {
	query := `
		INSERT INTO activities (id, activity_type, duration_minutes, note, logged_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		activity.ID.String(),
		activity.Type,
		activity.DurationMinutes,
		activity.Note,
		activity.LoggedAt.Format(time.RFC3339),
		activity.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to create activity: %w", err)
	}

	return nil
}

// GetByID retrieves an activity by ID.
func (r *SQLiteActivityRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Activity, error) {
	query := `
		SELECT id, activity_type, duration_minutes, note, logged_at, created_at
		FROM activities
		WHERE id = ?
	`

	row := r.db.QueryRowContext(ctx, query, id.String())
	activity, err := scanActivity(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}

	return activity, nil
}

// List retrieves the most recent activities, newest first.
func (r *SQLiteActivityRepository) List(ctx context.Context, limit int) ([]*domain.Activity, error) {
	query := `
		SELECT id, activity_type, duration_minutes, note, logged_at, created_at
		FROM activities
		ORDER BY logged_at DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	return collectActivities(rows)
}

// ListByDateRange retrieves activities logged in [start, end), oldest first.
func (r *SQLiteActivityRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]*domain.Activity, error) {
	query := `
		SELECT id, activity_type, duration_minutes, note, logged_at, created_at
		FROM activities
		WHERE logged_at >= ? AND logged_at < ?
		ORDER BY logged_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query,
		start.Format(time.RFC3339),
		end.Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities by range: %w", err)
	}
	defer rows.Close()

	return collectActivities(rows)
}

// Delete removes an activity by ID.
func (r *SQLiteActivityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM activities WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// DeleteAll wipes the activity log.
func (r *SQLiteActivityRepository) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM activities`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear activities: %w", err)
	}

	return result.RowsAffected()
}

// WeeklyTotals returns per-day, per-type duration totals for [start, end).
// Dates group on the stored local date (the first ten characters of the
// RFC3339 timestamp).
func (r *SQLiteActivityRepository) WeeklyTotals(ctx context.Context, start, end time.Time) ([]domain.DailyTypeTotal, error) {
	query := `
		SELECT substr(logged_at, 1, 10) AS day, activity_type,
		       SUM(duration_minutes), COUNT(*)
		FROM activities
		WHERE logged_at >= ? AND logged_at < ?
		GROUP BY day, activity_type
		ORDER BY day ASC, activity_type ASC
	`

	rows, err := r.db.QueryContext(ctx, query,
		start.Format(time.RFC3339),
		end.Format(time.RFC3339),
	)
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

// scanner abstracts *sql.Row and *sql.Rows for the scan helper.
type scanner interface {
	Scan(dest ...any) error
}

func scanActivity(s scanner) (*domain.Activity, error) {
	var (
		idStr    string
		logged   string
		created  string
		activity domain.Activity
	)

	if err := s.Scan(&idStr, &activity.Type, &activity.DurationMinutes, &activity.Note, &logged, &created); err != nil {
		return nil, err
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("invalid activity id %q: %w", idStr, err)
	}
	activity.ID = id

	if activity.LoggedAt, err = time.Parse(time.RFC3339, logged); err != nil {
		return nil, fmt.Errorf("invalid logged_at %q: %w", logged, err)
	}
	if activity.CreatedAt, err = time.Parse(time.RFC3339, created); err != nil {
		return nil, fmt.Errorf("invalid created_at %q: %w", created, err)
	}

	return &activity, nil
}

func collectActivities(rows *sql.Rows) ([]*domain.Activity, error) {
	var activities []*domain.Activity
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, activity)
	}
	return activities, rows.Err()
}
