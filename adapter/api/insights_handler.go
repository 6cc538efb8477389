package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/felixgeelhaar/cadence/internal/insights/application/queries"
)

// InsightsHandler handles derived-metrics API requests.
type InsightsHandler struct {
	dashboard   *queries.GetDashboardHandler
	weekly      *queries.GetWeeklyHandler
	focusReport *queries.GetFocusReportHandler
	rewards     *queries.GetRewardsHandler
	insights    *queries.GetInsightsHandler
	logger      *slog.Logger
}

// InsightsHandlerConfig holds dependencies for the insights handler.
type InsightsHandlerConfig struct {
	Dashboard   *queries.GetDashboardHandler
	Weekly      *queries.GetWeeklyHandler
	FocusReport *queries.GetFocusReportHandler
	Rewards     *queries.GetRewardsHandler
	Insights    *queries.GetInsightsHandler
	Logger      *slog.Logger
}

// NewInsightsHandler creates a new insights handler.
func NewInsightsHandler(cfg InsightsHandlerConfig) *InsightsHandler {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &InsightsHandler{
		dashboard:   cfg.Dashboard,
		weekly:      cfg.Weekly,
		focusReport: cfg.FocusReport,
		rewards:     cfg.Rewards,
		insights:    cfg.Insights,
		logger:      cfg.Logger,
	}
}

// Dashboard handles GET /api/v1/dashboard
func (h *InsightsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboard.Handle(r.Context(), time.Now())
	if err != nil {
		h.logger.Error("failed to build dashboard", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to build dashboard")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Weekly handles GET /api/v1/reports/weekly
func (h *InsightsHandler) Weekly(w http.ResponseWriter, r *http.Request) {
	result, err := h.weekly.Handle(r.Context(), time.Now())
	if err != nil {
		h.logger.Error("failed to build weekly report", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to build weekly report")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// FocusReport handles GET /api/v1/reports/focus
func (h *InsightsHandler) FocusReport(w http.ResponseWriter, r *http.Request) {
	result, err := h.focusReport.Handle(r.Context(), time.Now())
	if err != nil {
		h.logger.Error("failed to build focus report", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to build focus report")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Rewards handles GET /api/v1/rewards
func (h *InsightsHandler) Rewards(w http.ResponseWriter, r *http.Request) {
	result, err := h.rewards.Handle(r.Context())
	if err != nil {
		h.logger.Error("failed to build rewards", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to build rewards")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Insights handles GET /api/v1/insights
func (h *InsightsHandler) Insights(w http.ResponseWriter, r *http.Request) {
	insights, err := h.insights.Handle(r.Context(), time.Now())
	if err != nil {
		h.logger.Error("failed to generate insights", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to generate insights")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"insights": insights,
		"count":    len(insights),
	})
}
