package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingConsumer struct {
	eventTypes []string
	received   []*ConsumedEvent
	err        error
}

func (c *recordingConsumer) EventTypes() []string {
	return c.eventTypes
}

func (c *recordingConsumer) Handle(ctx context.Context, event *ConsumedEvent) error {
	c.received = append(c.received, event)
	return c.err
}

func TestInProcessEventBus_Publish_DispatchesToConsumer(t *testing.T) {
	bus := NewInProcessEventBus(nil)
	consumer := &recordingConsumer{eventTypes: []string{"tracking.activity.logged"}}
	bus.RegisterConsumer(consumer)

	event := &ConsumedEvent{
		EventID:       uuid.New(),
		AggregateID:   uuid.New(),
		AggregateType: "activity",
		RoutingKey:    "tracking.activity.logged",
	}
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	err = bus.Publish(context.Background(), "tracking.activity.logged", payload)
	require.NoError(t, err)

	require.Len(t, consumer.received, 1)
	assert.Equal(t, event.EventID, consumer.received[0].EventID)
}

func TestInProcessEventBus_Publish_NoConsumers(t *testing.T) {
	bus := NewInProcessEventBus(nil)

	err := bus.Publish(context.Background(), "tracking.activity.deleted", []byte(`{}`))

	assert.NoError(t, err)
}

func TestInProcessEventBus_Publish_ConsumerErrorDoesNotFailPublish(t *testing.T) {
	bus := NewInProcessEventBus(nil)
	consumer := &recordingConsumer{
		eventTypes: []string{"tracking.activity.logged"},
		err:        errors.New("handler failed"),
	}
	bus.RegisterConsumer(consumer)

	err := bus.Publish(context.Background(), "tracking.activity.logged", []byte(`{"routing_key":"tracking.activity.logged"}`))

	assert.NoError(t, err)
	assert.Len(t, consumer.received, 1)
}

func TestConsumerRegistry_Dispatch_MultipleConsumers(t *testing.T) {
	registry := NewConsumerRegistry(nil)
	first := &recordingConsumer{eventTypes: []string{"tracking.activity.logged"}}
	second := &recordingConsumer{eventTypes: []string{"tracking.activity.logged"}}
	registry.Register(first)
	registry.Register(second)

	assert.Equal(t, 2, registry.ConsumerCount())

	event := &ConsumedEvent{EventID: uuid.New(), RoutingKey: "tracking.activity.logged"}
	err := registry.Dispatch(context.Background(), event)
	require.NoError(t, err)

	assert.Len(t, first.received, 1)
	assert.Len(t, second.received, 1)
}

func TestConsumerRegistry_Dispatch_ContinuesAfterFailure(t *testing.T) {
	registry := NewConsumerRegistry(nil)
	failing := &recordingConsumer{
		eventTypes: []string{"tracking.activity.logged"},
		err:        errors.New("boom"),
	}
	healthy := &recordingConsumer{eventTypes: []string{"tracking.activity.logged"}}
	registry.Register(failing)
	registry.Register(healthy)

	event := &ConsumedEvent{EventID: uuid.New(), RoutingKey: "tracking.activity.logged"}
	err := registry.Dispatch(context.Background(), event)

	assert.Error(t, err)
	assert.Len(t, healthy.received, 1)
}
