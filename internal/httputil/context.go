package httputil

import (
	"context"
	"net/http"

	"docuforge/internal/domain/models"
)

// Context key type to avoid collisions
type contextKey string

const userKey contextKey = "user"

// WithUser attaches the session user to the request context.
func WithUser(r *http.Request, user *models.User) *http.Request {
	ctx := context.WithValue(r.Context(), userKey, user)
	return r.WithContext(ctx)
}

// UserFrom returns the session user, or nil when the request carried
// no live session.
func UserFrom(r *http.Request) *models.User {
	user, _ := r.Context().Value(userKey).(*models.User)
	return user
}

// ActorFrom resolves the mutation actor: the session user when
// present, the fixed system actor otherwise.
func ActorFrom(r *http.Request) models.Actor {
	return models.ActorFor(UserFrom(r))
}
