package httputil

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"docuforge/internal/domain"
)

// maxBodyBytes caps request bodies at 1MB; every payload in this API
// is a small JSON object.
const maxBodyBytes = 1 << 20

// ParseJSON decodes the request body into dest. An empty body decodes
// to the zero value; a malformed body is a validation error.
// Unknown fields are ignored so clients may send extra keys.
func ParseJSON(w http.ResponseWriter, r *http.Request, dest interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		if err == io.EOF {
			return nil
		}
		return domain.Validation("Invalid JSON body.")
	}
	return nil
}

// BearerToken extracts the token from an Authorization header,
// returning "" when the header is absent or not a bearer scheme.
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
