package domain

import (
	"time"

	sharedDomain "github.com/felixgeelhaar/cadence/internal/shared/domain"
	"github.com/google/uuid"
)

const aggregateType = "Activity"

// ActivityLogged is emitted when an activity is logged.
type ActivityLogged struct {
	sharedDomain.BaseEvent
	ActivityID      uuid.UUID `json:"activity_id"`
	ActivityType    string    `json:"activity_type"`
	DurationMinutes int       `json:"duration_minutes"`
	LoggedAt        time.Time `json:"logged_at"`
}

// NewActivityLogged creates an ActivityLogged event.
func NewActivityLogged(a *Activity) *ActivityLogged {
	return &ActivityLogged{
		BaseEvent:       sharedDomain.NewBaseEvent(a.ID, aggregateType, "tracking.activity.logged"),
		ActivityID:      a.ID,
		ActivityType:    a.Type,
		DurationMinutes: a.DurationMinutes,
		LoggedAt:        a.LoggedAt,
	}
}

// ActivityDeleted is emitted when an activity is deleted.
type ActivityDeleted struct {
	sharedDomain.BaseEvent
	ActivityID uuid.UUID `json:"activity_id"`
}

// NewActivityDeleted creates an ActivityDeleted event.
func NewActivityDeleted(id uuid.UUID) *ActivityDeleted {
	return &ActivityDeleted{
		BaseEvent:  sharedDomain.NewBaseEvent(id, aggregateType, "tracking.activity.deleted"),
		ActivityID: id,
	}
}

// ActivitiesCleared is emitted when the activity log is wiped.
type ActivitiesCleared struct {
	sharedDomain.BaseEvent
	Deleted int64 `json:"deleted"`
}

// NewActivitiesCleared creates an ActivitiesCleared event.
func NewActivitiesCleared(deleted int64) *ActivitiesCleared {
	return &ActivitiesCleared{
		BaseEvent: sharedDomain.NewBaseEvent(uuid.Nil, aggregateType, "tracking.activities.cleared"),
		Deleted:   deleted,
	}
}
