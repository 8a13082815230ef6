package handler

import (
	"log/slog"
	"net/http"

	"docuforge/internal/domain/models"
	"docuforge/internal/httputil"
	"docuforge/internal/service"
)

// AuthHandler handles login, signup, and session introspection.
type AuthHandler struct {
	auth   *service.AuthService
	logger *slog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(auth *service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		auth:   auth,
		logger: logger,
	}
}

type authResponse struct {
	OK    bool         `json:"ok"`
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		handleError(w, err)
		return
	}

	user, token, err := h.auth.Login(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, authResponse{OK: true, User: user, Token: token})
}

// Signup handles POST /auth/signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req service.SignupRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		handleError(w, err)
		return
	}

	user, token, err := h.auth.Signup(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, authResponse{OK: true, User: user, Token: token})
}

// Me handles GET /me. Unlike mutations, it has no system-actor
// fallback: a missing or unknown token is a 401.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := httputil.UserFrom(r)
	if user == nil {
		httputil.RespondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	httputil.RespondData(w, http.StatusOK, user)
}
