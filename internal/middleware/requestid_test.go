// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/tomtom215/moodplay/internal/logging"
)

func captureIDs(requestID, correlationID *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*requestID = logging.RequestIDFromContext(r.Context())
		*correlationID = logging.CorrelationIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequestID_GeneratesNewID(t *testing.T) {
	t.Parallel()

	var requestID, correlationID string
	handler := RequestID(captureIDs(&requestID, &correlationID))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	responseID := rec.Header().Get(RequestIDHeader)
	if _, err := uuid.Parse(responseID); err != nil {
		t.Errorf("X-Request-ID %q is not a UUID: %v", responseID, err)
	}
	if requestID != responseID {
		t.Errorf("context request ID = %q, want %q", requestID, responseID)
	}
	if len(correlationID) != 8 {
		t.Errorf("correlation ID = %q, want 8 characters", correlationID)
	}
}

func TestRequestID_UpstreamHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		upstream string
		keep     bool
	}{
		{"plain id kept", "edge-1234", true},
		{"padded id trimmed", "  edge-5678 ", true},
		{"control characters replaced", "bad\nid", false},
		{"space inside replaced", "two words", false},
		{"too long replaced", strings.Repeat("a", maxRequestIDLen+1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var requestID, correlationID string
			handler := RequestID(captureIDs(&requestID, &correlationID))

			req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
			req.Header.Set(RequestIDHeader, tt.upstream)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			got := rec.Header().Get(RequestIDHeader)
			if kept := got == strings.TrimSpace(tt.upstream); kept != tt.keep {
				t.Errorf("X-Request-ID = %q, kept = %v, want kept = %v", got, kept, tt.keep)
			}
			if requestID != got {
				t.Errorf("context request ID = %q, want %q", requestID, got)
			}
		})
	}
}

func TestRequestID_UniquePerRequest(t *testing.T) {
	t.Parallel()

	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		id := rec.Header().Get(RequestIDHeader)
		if seen[id] {
			t.Fatalf("duplicate request ID %q", id)
		}
		seen[id] = true
	}
}
