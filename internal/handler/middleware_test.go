package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldValue(fields []interface{}, key string) interface{} {
	for i := 0; i+1 < len(fields); i += 2 {
		if fields[i] == key {
			return fields[i+1]
		}
	}
	return nil
}

func TestRequestLogger_GeneratesRequestID(t *testing.T) {
	logger := NewMockHandlerLogger()

	var seen string
	h := NewRequestLogger(logger).Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetRequestIDFromContext(r)
		require.True(t, ok)
		seen = id
		w.WriteHeader(http.StatusCreated)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, seen, rr.Header().Get(RequestIDHeader))

	msg, fields := logger.last()
	assert.Equal(t, "INFO: Request completed", msg)
	assert.Equal(t, http.StatusCreated, fieldValue(fields, "status"))
	assert.Equal(t, seen, fieldValue(fields, "request_id"))
}

func TestRequestLogger_PropagatesIncomingID(t *testing.T) {
	logger := NewMockHandlerLogger()
	h := NewRequestLogger(logger).Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, _ := GetRequestIDFromContext(r)
		assert.Equal(t, "abc-123", id)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, "abc-123", rr.Header().Get(RequestIDHeader))
}

func TestRequestLogger_ReplacesOversizedID(t *testing.T) {
	h := NewRequestLogger(NewMockHandlerLogger()).Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, strings.Repeat("x", 500))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	_, err := uuid.Parse(rr.Header().Get(RequestIDHeader))
	assert.NoError(t, err)
}

func TestRequestLogger_ServerErrorsLoggedAsWarnings(t *testing.T) {
	logger := NewMockHandlerLogger()
	h := NewRequestLogger(logger).Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusInternalServerError, "boom")
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/extract", nil))

	msg, fields := logger.last()
	assert.Equal(t, "WARN: Request failed", msg)
	assert.Equal(t, "/extract", fieldValue(fields, "path"))
	assert.Equal(t, http.StatusInternalServerError, fieldValue(fields, "status"))
}
