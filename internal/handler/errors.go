package handler

import (
	"errors"
	"net/http"

	"docuforge/internal/domain"
	"docuforge/internal/httputil"
)

// handleError converts domain errors to HTTP responses. Anything
// without an HTTP mapping is reported as a generic bad request; no
// error escapes the endpoint boundary.
func handleError(w http.ResponseWriter, err error) {
	var httpErr domain.HTTPError
	if errors.As(err, &httpErr) {
		httputil.RespondError(w, httpErr.StatusCode(), httpErr.Error())
		return
	}

	httputil.RespondError(w, http.StatusBadRequest, "Unexpected error.")
}
