// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/tomtom215/moodplay/internal/logging"
)

// Swaps the global logger, so it does not run in parallel.
func TestAccessLog(t *testing.T) {
	var buf bytes.Buffer
	original := logging.Logger()
	prevLevel := zerolog.GlobalLevel()
	logging.SetLogger(logging.NewTestLogger(&buf))
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() {
		logging.SetLogger(original)
		zerolog.SetGlobalLevel(prevLevel)
	})

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(AccessLog)
	r.Post("/api/feedback", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})
	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/feedback", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/health", nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d log lines, want 2:\n%s", len(lines), buf.String())
	}
	for _, want := range []string{`"level":"warn"`, `"route":"/api/feedback"`, `"status":400`, `"request_id":`} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("first line %s missing %s", lines[0], want)
		}
	}
	for _, want := range []string{`"level":"debug"`, `"status":200`, `"bytes":2`} {
		if !strings.Contains(lines[1], want) {
			t.Errorf("second line %s missing %s", lines[1], want)
		}
	}
}
