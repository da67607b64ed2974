package http

import (
	"encoding/json"
	"net/http"

	"expenso/internal/apperror"
)

// writeJSON encodes v as the JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeMessage writes a `{"message": ...}` body with the given status.
func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// writeError maps a service error to its HTTP status and message body.
func writeError(w http.ResponseWriter, err error) {
	writeMessage(w, apperror.HTTPStatus(err), apperror.Message(err))
}
