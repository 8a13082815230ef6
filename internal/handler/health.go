package handler

import (
	"net/http"

	"docuforge/internal/httputil"
)

// HealthHandler answers liveness probes.
type HealthHandler struct {
	service string
}

// NewHealthHandler creates a health handler reporting the given
// service name.
func NewHealthHandler(service string) *HealthHandler {
	return &HealthHandler{service: service}
}

type healthResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
}

// Check handles GET /health.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, healthResponse{OK: true, Service: h.service})
}
