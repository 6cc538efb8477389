package commands

import (
	"context"
	"log/slog"

	"github.com/felixgeelhaar/cadence/internal/shared/infrastructure/eventbus"
	"github.com/felixgeelhaar/cadence/internal/tracking/domain"
)

// ClearActivitiesResult contains the result of wiping the activity log.
type ClearActivitiesResult struct {
	Deleted int64
}

// ClearActivitiesHandler handles wiping the activity log.
type ClearActivitiesHandler struct {
	repo      domain.ActivityRepository
	publisher eventbus.Publisher
	logger    *slog.Logger
}

// NewClearActivitiesHandler creates a new ClearActivitiesHandler.
func NewClearActivitiesHandler(repo domain.ActivityRepository, publisher eventbus.Publisher, logger *slog.Logger) *ClearActivitiesHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ClearActivitiesHandler{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// Handle wipes the activity log.
func (h *ClearActivitiesHandler) Handle(ctx context.Context) (*ClearActivitiesResult, error) {
	deleted, err := h.repo.DeleteAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := eventbus.PublishDomainEvent(ctx, h.publisher, domain.NewActivitiesCleared(deleted)); err != nil {
		h.logger.Warn("failed to publish activities cleared event", "error", err)
	}

	return &ClearActivitiesResult{Deleted: deleted}, nil
}
