package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"docuforge/internal/httputil"
)

// Recovery converts handler panics into a generic 400 envelope. A bad
// request must never take the process down.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic recovered",
						"error", err,
						"path", r.URL.Path,
						"method", r.Method,
						"stack", string(debug.Stack()),
					)

					httputil.RespondError(w, http.StatusBadRequest, "Unexpected error.")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
