package middleware

import "net/http"

// Options answers every OPTIONS request with 204 and no body. The
// CORS layer terminates preflight OPTIONS itself but passes plain
// OPTIONS through, and the mux registers no OPTIONS patterns, so
// without this the fallthrough would be a 405.
func Options(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
