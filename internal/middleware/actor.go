package middleware

import (
	"net/http"

	"docuforge/internal/httputil"
	"docuforge/internal/service"
)

// Actor resolves the bearer token (if any) to a session user and
// stores it on the request context. Requests without a live session
// pass through unauthenticated; protected handlers decide whether
// that is a 401 or a system-actor fallback.
func Actor(auth *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := httputil.BearerToken(r)
			if user := auth.Resolve(r.Context(), token); user != nil {
				r = httputil.WithUser(r, user)
			}
			next.ServeHTTP(w, r)
		})
	}
}
