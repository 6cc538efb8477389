package commands

import (
	"context"
	"log/slog"

	"github.com/felixgeelhaar/cadence/internal/shared/infrastructure/eventbus"
	"github.com/felixgeelhaar/cadence/internal/tracking/domain"
	"github.com/google/uuid"
)

// DeleteActivityCommand contains the data needed to delete an activity.
type DeleteActivityCommand struct {
	ActivityID uuid.UUID
}

// DeleteActivityHandler handles the DeleteActivityCommand.
type DeleteActivityHandler struct {
	repo      domain.ActivityRepository
	publisher eventbus.Publisher
	logger    *slog.Logger
}

// NewDeleteActivityHandler creates a new DeleteActivityHandler.
func NewDeleteActivityHandler(repo domain.ActivityRepository, publisher eventbus.Publisher, logger *slog.Logger) *DeleteActivityHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DeleteActivityHandler{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// Handle executes the DeleteActivityCommand.
func (h *DeleteActivityHandler) Handle(ctx context.Context, cmd DeleteActivityCommand) error {
	if err := h.repo.Delete(ctx, cmd.ActivityID); err != nil {
		return err
	}

	if err := eventbus.PublishDomainEvent(ctx, h.publisher, domain.NewActivityDeleted(cmd.ActivityID)); err != nil {
		h.logger.Warn("failed to publish activity deleted event",
			"activity_id", cmd.ActivityID,
			"error", err,
		)
	}

	return nil
}
