// Package handler provides HTTP handlers for the API.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Thomaslgrn/pdftotexte/internal/domain"
	apperrors "github.com/Thomaslgrn/pdftotexte/pkg/errors"
)

type contextKey string

const requestIDContextKey contextKey = "request_id"

// GetRequestIDFromContext extracts the request ID set by RequestLogger
func GetRequestIDFromContext(r *http.Request) (string, bool) {
	id, ok := r.Context().Value(requestIDContextKey).(string)
	return id, ok
}

// writeJSON writes v as a JSON response
func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes an error response (helper function)
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, domain.ErrorResponse{Detail: message})
}

// writeAppError maps err to its status code and client facing detail
func writeAppError(w http.ResponseWriter, err error) {
	if appErr, ok := apperrors.As(err); ok {
		writeError(w, appErr.StatusCode, appErr.Detail())
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}
