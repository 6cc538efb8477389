// Package commands contains the write-side handlers for the activity log.
package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/felixgeelhaar/cadence/internal/shared/infrastructure/eventbus"
	"github.com/felixgeelhaar/cadence/internal/tracking/domain"
	"github.com/google/uuid"
)

// LogActivityCommand contains the data needed to log an activity.
type LogActivityCommand struct {
	Type            string
	DurationMinutes int
	Note            string
	LoggedAt        time.Time // zero means now
}

// LogActivityResult contains the result of logging an activity.
type LogActivityResult struct {
	ActivityID uuid.UUID
	LoggedAt   time.Time
}

// LogActivityHandler handles the LogActivityCommand.
type LogActivityHandler struct {
	repo      domain.ActivityRepository
	publisher eventbus.Publisher
	logger    *slog.Logger
}

// NewLogActivityHandler creates a new LogActivityHandler.
func NewLogActivityHandler(repo domain.ActivityRepository, publisher eventbus.Publisher, logger *slog.Logger) *LogActivityHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogActivityHandler{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// Handle executes the LogActivityCommand.
func (h *LogActivityHandler) Handle(ctx context.Context, cmd LogActivityCommand) (*LogActivityResult, error) {
	activity, err := domain.NewActivity(cmd.Type, cmd.DurationMinutes, cmd.Note, cmd.LoggedAt)
	if err != nil {
		return nil, err
	}

	if err := h.repo.Create(ctx, activity); err != nil {
		return nil, err
	}

	// Event delivery is best-effort; the activity is already persisted
	if err := eventbus.PublishDomainEvent(ctx, h.publisher, domain.NewActivityLogged(activity)); err != nil {
		h.logger.Warn("failed to publish activity logged event",
			"activity_id", activity.ID,
			"error", err,
		)
	}

	return &LogActivityResult{
		ActivityID: activity.ID,
		LoggedAt:   activity.LoggedAt,
	}, nil
}
