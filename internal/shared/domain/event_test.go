package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewBaseEvent(t *testing.T) {
	aggregateID := uuid.New()

	event := NewBaseEvent(aggregateID, "activity", "activity.logged")

	assert.NotEqual(t, uuid.Nil, event.EventID())
	assert.Equal(t, aggregateID, event.AggregateID())
	assert.Equal(t, "activity", event.AggregateType())
	assert.Equal(t, "activity.logged", event.RoutingKey())
	assert.False(t, event.OccurredAt().IsZero())
}

func TestNewBaseEvent_UniqueEventIDs(t *testing.T) {
	aggregateID := uuid.New()

	first := NewBaseEvent(aggregateID, "activity", "activity.logged")
	second := NewBaseEvent(aggregateID, "activity", "activity.logged")

	assert.NotEqual(t, first.EventID(), second.EventID())
}
