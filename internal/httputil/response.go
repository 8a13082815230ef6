package httputil

import (
	"encoding/json"
	"net/http"
)

// Envelope is the uniform success response body.
type Envelope struct {
	OK   bool        `json:"ok"`
	Data interface{} `json:"data,omitempty"`
	Meta interface{} `json:"meta,omitempty"`
}

// ErrorEnvelope is the uniform failure response body.
type ErrorEnvelope struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// RespondJSON writes a JSON response with the given status code. It
// marshals first so an encoding failure never produces a partial body
// after headers are sent.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		RespondError(w, http.StatusInternalServerError, "Failed to encode response.")
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	w.Write(payload)
}

// RespondData writes `{ok:true, data:...}`.
func RespondData(w http.ResponseWriter, status int, data interface{}) {
	RespondJSON(w, status, Envelope{OK: true, Data: data})
}

// RespondList writes `{ok:true, data:..., meta:...}`.
func RespondList(w http.ResponseWriter, data interface{}, meta interface{}) {
	RespondJSON(w, http.StatusOK, Envelope{OK: true, Data: data, Meta: meta})
}

// RespondError writes `{ok:false, error:...}`.
func RespondError(w http.ResponseWriter, status int, message string) {
	payload, err := json.Marshal(ErrorEnvelope{OK: false, Error: message})
	if err != nil {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("internal server error"))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	w.Write(payload)
}
