package handler

import (
	"context"
	"net/http"

	"github.com/Thomaslgrn/pdftotexte/internal/domain"

	"github.com/felixge/httpsnoop"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

const maxRequestIDLength = 128

// RequestLogger tags each request with an ID and logs its outcome
type RequestLogger struct {
	logger domain.Logger
}

// NewRequestLogger creates a new request logging middleware
func NewRequestLogger(logger domain.Logger) *RequestLogger {
	return &RequestLogger{logger: logger}
}

// Middleware wraps next
func (m *RequestLogger) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		ctx := context.WithValue(r.Context(), requestIDContextKey, requestID)
		metrics := httpsnoop.CaptureMetrics(next, w, r.WithContext(ctx))

		fields := []interface{}{
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", metrics.Code,
			"bytes", metrics.Written,
			"duration_ms", metrics.Duration.Milliseconds(),
		}
		if metrics.Code >= http.StatusInternalServerError {
			m.logger.Warn("Request failed", fields...)
			return
		}
		m.logger.Info("Request completed", fields...)
	})
}
