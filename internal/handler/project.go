package handler

import (
	"log/slog"
	"net/http"

	"docuforge/internal/httputil"
	"docuforge/internal/query"
	"docuforge/internal/service"
)

// ProjectHandler handles project HTTP requests.
type ProjectHandler struct {
	projects *service.ProjectService
	logger   *slog.Logger
}

// NewProjectHandler creates a new project handler.
func NewProjectHandler(projects *service.ProjectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{
		projects: projects,
		logger:   logger,
	}
}

// List handles GET /projects.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	params := query.ParseParams(r.URL.Query())

	projects, meta, err := h.projects.List(r.Context(), params)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondList(w, projects, meta)
}

// Get handles GET /projects/{id}.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	project, err := h.projects.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondData(w, http.StatusOK, project)
}

// Create handles POST /projects.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateProjectRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		handleError(w, err)
		return
	}

	project, err := h.projects.Create(r.Context(), &req, httputil.ActorFrom(r))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondData(w, http.StatusOK, project)
}

// Update handles PATCH /projects/{id}. The id is resolved before the
// body is parsed so a missing project is a 404 even when the body is
// malformed.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := h.projects.Get(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	var req service.UpdateProjectRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		handleError(w, err)
		return
	}

	project, err := h.projects.Update(r.Context(), id, &req, httputil.ActorFrom(r))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondData(w, http.StatusOK, project)
}

type deletedProject struct {
	ID string `json:"id"`
}

// Delete handles DELETE /projects/{id}. Like Update, the 404 wins
// over a malformed body.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := h.projects.Get(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	var req service.DeleteProjectRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		handleError(w, err)
		return
	}

	if err := h.projects.Delete(r.Context(), id, &req, httputil.ActorFrom(r)); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondData(w, http.StatusOK, deletedProject{ID: id})
}
