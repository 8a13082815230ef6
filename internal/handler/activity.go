package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"docuforge/internal/domain"
	"docuforge/internal/httputil"
	"docuforge/internal/service"
)

// ActivityHandler serves the activity feed.
type ActivityHandler struct {
	activity *service.ActivityService
	logger   *slog.Logger
}

// NewActivityHandler creates a new activity handler.
func NewActivityHandler(activity *service.ActivityService, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{
		activity: activity,
		logger:   logger,
	}
}

// List handles GET /activities.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			handleError(w, domain.Validation("Limit must be a positive integer."))
			return
		}
		limit = parsed
	}

	events, err := h.activity.List(r.Context(), limit)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondData(w, http.StatusOK, events)
}
