package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/cadence/internal/tracking/application/commands"
	"github.com/felixgeelhaar/cadence/internal/tracking/application/queries"
	"github.com/felixgeelhaar/cadence/internal/tracking/domain"
)

// ActivityHandler handles activity log API requests.
type ActivityHandler struct {
	logActivity     *commands.LogActivityHandler
	deleteActivity  *commands.DeleteActivityHandler
	clearActivities *commands.ClearActivitiesHandler
	listActivities  *queries.ListActivitiesHandler
	listToday       *queries.ListTodayHandler
	listByRange     *queries.ListByDateRangeHandler
	weeklyTotals    *queries.GetWeeklyTotalsHandler
	logger          *slog.Logger
}

// ActivityHandlerConfig holds dependencies for the activity handler.
type ActivityHandlerConfig struct {
	LogActivity     *commands.LogActivityHandler
	DeleteActivity  *commands.DeleteActivityHandler
	ClearActivities *commands.ClearActivitiesHandler
	ListActivities  *queries.ListActivitiesHandler
	ListToday       *queries.ListTodayHandler
	ListByRange     *queries.ListByDateRangeHandler
	WeeklyTotals    *queries.GetWeeklyTotalsHandler
	Logger          *slog.Logger
}

// NewActivityHandler creates a new activity handler.
func NewActivityHandler(cfg ActivityHandlerConfig) *ActivityHandler {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &ActivityHandler{
		logActivity:     cfg.LogActivity,
		deleteActivity:  cfg.DeleteActivity,
		clearActivities: cfg.ClearActivities,
		listActivities:  cfg.ListActivities,
		listToday:       cfg.ListToday,
		listByRange:     cfg.ListByRange,
		weeklyTotals:    cfg.WeeklyTotals,
		logger:          cfg.Logger,
	}
}

// ActivityDTO is the JSON representation of an activity.
type ActivityDTO struct {
	ID              string `json:"id"`
	Type            string `json:"type"`
	DurationMinutes int    `json:"duration_minutes"`
	Note            string `json:"note,omitempty"`
	LoggedAt        string `json:"logged_at"`
	CreatedAt       string `json:"created_at"`
}

func toActivityDTO(activity *domain.Activity) *ActivityDTO {
	return &ActivityDTO{
		ID:              activity.ID.String(),
		Type:            activity.Type,
		DurationMinutes: activity.DurationMinutes,
		Note:            activity.Note,
		LoggedAt:        activity.LoggedAt.Format(time.RFC3339),
		CreatedAt:       activity.CreatedAt.Format(time.RFC3339),
	}
}

func toActivityDTOs(activities []*domain.Activity) []*ActivityDTO {
	dtos := make([]*ActivityDTO, len(activities))
	for i, activity := range activities {
		dtos[i] = toActivityDTO(activity)
	}
	return dtos
}

type logActivityRequest struct {
	Type            string `json:"type"`
	DurationMinutes int    `json:"duration_minutes"`
	Note            string `json:"note"`
	LoggedAt        string `json:"logged_at"` // RFC3339, optional
}

// LogActivity handles POST /api/v1/activities
func (h *ActivityHandler) LogActivity(w http.ResponseWriter, r *http.Request) {
	var req logActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	var loggedAt time.Time
	if req.LoggedAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.LoggedAt)
		if err != nil {
			writeError(w, http.StatusBadRequest, "logged_at must be RFC3339")
			return
		}
		loggedAt = parsed
	}

	result, err := h.logActivity.Handle(r.Context(), commands.LogActivityCommand{
		Type:            req.Type,
		DurationMinutes: req.DurationMinutes,
		Note:            req.Note,
		LoggedAt:        loggedAt,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmptyType) || errors.Is(err, domain.ErrInvalidDuration) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("failed to log activity", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to log activity")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"id":        result.ActivityID.String(),
		"logged_at": result.LoggedAt.Format(time.RFC3339),
	})
}

// ListActivities handles GET /api/v1/activities. With both "from" and "to"
// query parameters it returns the range [from, to) oldest first; otherwise
// the most recent activities, bounded by "limit".
func (h *ActivityHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	fromParam := r.URL.Query().Get("from")
	toParam := r.URL.Query().Get("to")

	if fromParam != "" || toParam != "" {
		h.listRange(w, r, fromParam, toParam)
		return
	}

	activities, err := h.listActivities.Handle(r.Context(), queries.ListActivitiesQuery{
		Limit: parseIntParam(r, "limit", 0),
	})
	if err != nil {
		h.logger.Error("failed to list activities", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list activities")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"activities": toActivityDTOs(activities),
		"count":      len(activities),
	})
}

func (h *ActivityHandler) listRange(w http.ResponseWriter, r *http.Request, fromParam, toParam string) {
	from, err := time.Parse(time.RFC3339, fromParam)
	if err != nil {
		writeError(w, http.StatusBadRequest, "from must be RFC3339")
		return
	}
	to, err := time.Parse(time.RFC3339, toParam)
	if err != nil {
		writeError(w, http.StatusBadRequest, "to must be RFC3339")
		return
	}

	activities, err := h.listByRange.Handle(r.Context(), queries.ListByDateRangeQuery{
		Start: from,
		End:   to,
	})
	if err != nil {
		if errors.Is(err, queries.ErrInvalidRange) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("failed to list activities by range", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list activities")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"activities": toActivityDTOs(activities),
		"count":      len(activities),
	})
}

// ListToday handles GET /api/v1/activities/today
func (h *ActivityHandler) ListToday(w http.ResponseWriter, r *http.Request) {
	activities, err := h.listToday.Handle(r.Context(), time.Now())
	if err != nil {
		h.logger.Error("failed to list today's activities", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list today's activities")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"activities": toActivityDTOs(activities),
		"count":      len(activities),
	})
}

// DeleteActivity handles DELETE /api/v1/activities/{activityID}
func (h *ActivityHandler) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	activityID, err := uuid.Parse(r.PathValue("activityID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid activity ID")
		return
	}

	if err := h.deleteActivity.Handle(r.Context(), commands.DeleteActivityCommand{ActivityID: activityID}); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Activity not found")
			return
		}
		h.logger.Error("failed to delete activity", "activity_id", activityID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete activity")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ClearActivities handles DELETE /api/v1/activities
func (h *ActivityHandler) ClearActivities(w http.ResponseWriter, r *http.Request) {
	result, err := h.clearActivities.Handle(r.Context())
	if err != nil {
		h.logger.Error("failed to clear activities", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to clear activities")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"deleted": result.Deleted,
	})
}

// WeeklyTotalDTO is one day/type aggregation row.
type WeeklyTotalDTO struct {
	Date         string `json:"date"`
	Type         string `json:"type"`
	TotalMinutes int    `json:"total_minutes"`
	Count        int    `json:"count"`
}

// WeeklyTotals handles GET /api/v1/stats/weekly
func (h *ActivityHandler) WeeklyTotals(w http.ResponseWriter, r *http.Request) {
	totals, err := h.weeklyTotals.Handle(r.Context(), time.Now())
	if err != nil {
		h.logger.Error("failed to get weekly totals", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to get weekly totals")
		return
	}

	dtos := make([]WeeklyTotalDTO, len(totals))
	for i, total := range totals {
		dtos[i] = WeeklyTotalDTO{
			Date:         total.Date,
			Type:         total.ActivityType,
			TotalMinutes: total.TotalMinutes,
			Count:        total.Count,
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"totals": dtos,
	})
}

// Helper functions

func parseIntParam(r *http.Request, key string, defaultVal int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return i
}
