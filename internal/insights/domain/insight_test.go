package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortByPriority(t *testing.T) {
	insights := []Insight{
		{Kind: "a", Priority: PriorityLow},
		{Kind: "b", Priority: PriorityCritical},
		{Kind: "c", Priority: PriorityMedium},
		{Kind: "d", Priority: PriorityHigh},
	}

	SortByPriority(insights)

	kinds := make([]string, len(insights))
	for i, insight := range insights {
		kinds[i] = insight.Kind
	}
	assert.Equal(t, []string{"b", "d", "c", "a"}, kinds)
}

func TestSortByPriority_StableForTies(t *testing.T) {
	insights := []Insight{
		{Kind: "first", Priority: PriorityMedium},
		{Kind: "second", Priority: PriorityMedium},
		{Kind: "third", Priority: PriorityMedium},
	}

	SortByPriority(insights)

	assert.Equal(t, "first", insights[0].Kind)
	assert.Equal(t, "second", insights[1].Kind)
	assert.Equal(t, "third", insights[2].Kind)
}

func TestPriority_Rank(t *testing.T) {
	assert.Less(t, PriorityCritical.Rank(), PriorityHigh.Rank())
	assert.Less(t, PriorityHigh.Rank(), PriorityMedium.Rank())
	assert.Less(t, PriorityMedium.Rank(), PriorityLow.Rank())
	assert.Greater(t, Priority("unknown").Rank(), PriorityLow.Rank())
}
