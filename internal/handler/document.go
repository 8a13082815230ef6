package handler

import (
	"log/slog"
	"net/http"

	"docuforge/internal/httputil"
	"docuforge/internal/query"
	"docuforge/internal/service"
)

// DocumentHandler serves the read-only document listing.
type DocumentHandler struct {
	documents *service.DocumentService
	logger    *slog.Logger
}

// NewDocumentHandler creates a new document handler.
func NewDocumentHandler(documents *service.DocumentService, logger *slog.Logger) *DocumentHandler {
	return &DocumentHandler{
		documents: documents,
		logger:    logger,
	}
}

// List handles GET /documents.
func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	params := query.ParseParams(r.URL.Query())

	documents, meta, err := h.documents.List(r.Context(), params)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondList(w, documents, meta)
}
