package queries

import (
	"context"
	"time"

	"github.com/felixgeelhaar/cadence/internal/insights/application/services"
	"github.com/felixgeelhaar/cadence/internal/insights/domain"
)

// GetInsightsHandler runs the insight generator over the activity log.
type GetInsightsHandler struct {
	source    domain.RecordSource
	generator *services.InsightGenerator
}

// NewGetInsightsHandler creates a new GetInsightsHandler.
func NewGetInsightsHandler(source domain.RecordSource, generator *services.InsightGenerator) *GetInsightsHandler {
	return &GetInsightsHandler{source: source, generator: generator}
}

// Handle generates the priority-sorted insights. An empty list is a valid
// "not enough data yet" state.
func (h *GetInsightsHandler) Handle(ctx context.Context, now time.Time) ([]domain.Insight, error) {
	records, err := h.source.RecentRecords(ctx, recordFetchLimit)
	if err != nil {
		return nil, err
	}

	return h.generator.Generate(records, now), nil
}
