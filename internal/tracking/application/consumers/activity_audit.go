// Package consumers contains event consumers for the activity log.
package consumers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/felixgeelhaar/cadence/internal/shared/infrastructure/eventbus"
)

// ActivityAuditConsumer writes an audit trail of activity log changes.
type ActivityAuditConsumer struct {
	logger *slog.Logger
}

// NewActivityAuditConsumer creates a new ActivityAuditConsumer.
func NewActivityAuditConsumer(logger *slog.Logger) *ActivityAuditConsumer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ActivityAuditConsumer{logger: logger}
}

// EventTypes returns the routing keys this consumer handles.
func (c *ActivityAuditConsumer) EventTypes() []string {
	return []string{
		"tracking.activity.logged",
		"tracking.activity.deleted",
		"tracking.activities.cleared",
	}
}

// Handle records the event in the audit log.
func (c *ActivityAuditConsumer) Handle(ctx context.Context, event *eventbus.ConsumedEvent) error {
	switch event.RoutingKey {
	case "tracking.activity.logged":
		var payload struct {
			ActivityType    string `json:"activity_type"`
			DurationMinutes int    `json:"duration_minutes"`
		}
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			return fmt.Errorf("failed to decode payload: %w", err)
		}
		c.logger.Info("activity logged",
			"activity_id", event.AggregateID,
			"type", payload.ActivityType,
			"duration_minutes", payload.DurationMinutes,
			"occurred_at", event.OccurredAt,
		)

	case "tracking.activity.deleted":
		c.logger.Info("activity deleted",
			"activity_id", event.AggregateID,
			"occurred_at", event.OccurredAt,
		)

	case "tracking.activities.cleared":
		var payload struct {
			Deleted int64 `json:"deleted"`
		}
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			return fmt.Errorf("failed to decode payload: %w", err)
		}
		c.logger.Info("activity log cleared",
			"deleted", payload.Deleted,
			"occurred_at", event.OccurredAt,
		)
	}

	return nil
}
