package consumers

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/cadence/internal/shared/infrastructure/eventbus"
)

func TestActivityAuditConsumer_EventTypes(t *testing.T) {
	consumer := NewActivityAuditConsumer(slog.New(slog.DiscardHandler))

	assert.ElementsMatch(t, []string{
		"tracking.activity.logged",
		"tracking.activity.deleted",
		"tracking.activities.cleared",
	}, consumer.EventTypes())
}

func TestActivityAuditConsumer_Handle(t *testing.T) {
	consumer := NewActivityAuditConsumer(slog.New(slog.DiscardHandler))

	payload, err := json.Marshal(map[string]any{
		"activity_type":    "coding",
		"duration_minutes": 90,
	})
	require.NoError(t, err)

	err = consumer.Handle(context.Background(), &eventbus.ConsumedEvent{
		EventID:       uuid.New(),
		AggregateID:   uuid.New(),
		AggregateType: "Activity",
		RoutingKey:    "tracking.activity.logged",
		OccurredAt:    time.Now(),
		Payload:       payload,
	})
	assert.NoError(t, err)
}

func TestActivityAuditConsumer_Handle_BadPayload(t *testing.T) {
	consumer := NewActivityAuditConsumer(slog.New(slog.DiscardHandler))

	err := consumer.Handle(context.Background(), &eventbus.ConsumedEvent{
		EventID:    uuid.New(),
		RoutingKey: "tracking.activity.logged",
		Payload:    json.RawMessage(`{not json`),
	})
	assert.Error(t, err)
}
