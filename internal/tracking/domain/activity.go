// Package domain contains the activity log aggregate and its contracts.
package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Errors
var (
	ErrEmptyType       = errors.New("activity type is required")
	ErrInvalidDuration = errors.New("duration must be at least one minute")
	ErrNotFound        = errors.New("activity not found")
)

// Activity represents a single logged block of time.
//
// The type vocabulary is open: metrics recognize a fixed set of types
// (coding, learning, meeting, break, browsing, youtube, instagram, reddit)
// but any non-empty type is accepted and stored.
type Activity struct {
	ID              uuid.UUID
	Type            string
	DurationMinutes int
	Note            string
	LoggedAt        time.Time
	CreatedAt       time.Time
}

// NewActivity creates a new activity, validating type and duration.
// A zero loggedAt defaults to the current time.
func NewActivity(activityType string, durationMinutes int, note string, loggedAt time.Time) (*Activity, error) {
	activityType = strings.TrimSpace(activityType)
	if activityType == "" {
		return nil, ErrEmptyType
	}
	if durationMinutes < 1 {
		return nil, ErrInvalidDuration
	}

	now := time.Now()
	if loggedAt.IsZero() {
		loggedAt = now
	}

	return &Activity{
		ID:              uuid.New(),
		Type:            strings.ToLower(activityType),
		DurationMinutes: durationMinutes,
		Note:            note,
		LoggedAt:        loggedAt,
		CreatedAt:       now,
	}, nil
}
