package handler

import "net/http"

// Handlers groups every endpoint handler for route registration.
type Handlers struct {
	Health   *HealthHandler
	Auth     *AuthHandler
	Project  *ProjectHandler
	Document *DocumentHandler
	Activity *ActivityHandler
}

// NewRouter builds the HTTP route table (Go 1.22+ method patterns).
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Check)

	mux.HandleFunc("POST /auth/login", h.Auth.Login)
	mux.HandleFunc("POST /auth/signup", h.Auth.Signup)
	mux.HandleFunc("GET /me", h.Auth.Me)

	mux.HandleFunc("GET /projects", h.Project.List)
	mux.HandleFunc("POST /projects", h.Project.Create)
	mux.HandleFunc("GET /projects/{id}", h.Project.Get)
	mux.HandleFunc("PATCH /projects/{id}", h.Project.Update)
	mux.HandleFunc("DELETE /projects/{id}", h.Project.Delete)

	mux.HandleFunc("GET /documents", h.Document.List)

	mux.HandleFunc("GET /activities", h.Activity.List)

	return mux
}
