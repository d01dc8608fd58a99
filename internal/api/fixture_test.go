// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/moodplay/internal/catalog"
	"github.com/tomtom215/moodplay/internal/config"
	"github.com/tomtom215/moodplay/internal/feedback"
	"github.com/tomtom215/moodplay/internal/models"
	"github.com/tomtom215/moodplay/internal/recommend"
	"github.com/tomtom215/moodplay/internal/recommend/affinity"
)

type sourceFunc func(ctx context.Context) ([]catalog.Item, error)

func (f sourceFunc) Load(ctx context.Context) ([]catalog.Item, error) { return f(ctx) }

func testItems() []catalog.Item {
	w, r, c := catalog.DomainWorkout, catalog.DomainRecipe, catalog.DomainCourse
	mk := func(d catalog.Domain, id, title string, dur int, tags, moods string) catalog.Item {
		return catalog.NewItem(d, id, title, dur, catalog.SplitTags(tags), catalog.SplitTags(moods))
	}
	return []catalog.Item{
		mk(w, "1", "Morning Yoga", 20, "yoga,stretching,gentle", "calm"),
		mk(w, "2", "Gentle Flow", 25, "yoga,gentle,meditation", "calm"),
		mk(w, "3", "Evening Stretch", 15, "stretching,gentle", "calm,tired"),
		mk(w, "4", "Power Yoga", 30, "yoga,strength", "energized"),
		mk(w, "5", "HIIT Blast", 25, "hiit,cardio", "energized"),
		mk(r, "1", "Herbal Tea Latte", 10, "herbal,warm,soothing", "calm"),
		mk(r, "2", "Comfort Soup", 35, "comfort,warm", "calm,stressed"),
		mk(r, "3", "Protein Smoothie", 5, "protein,quick", "energized"),
		mk(c, "1", "Mindfulness 101", 30, "mindfulness,reflection", "calm"),
		mk(c, "2", "Productivity Hacks", 20, "productivity,skills", "energized"),
	}
}

type testEnv struct {
	cfg     *config.Config
	store   *catalog.Store
	events  *feedback.MemoryStore
	handler *Handler
	server  http.Handler
}

type envOption func(*config.Config, *Dependencies)

func withoutFeedback() envOption {
	return func(_ *config.Config, d *Dependencies) { d.Feedback = nil }
}

func withFeedback(f FeedbackService) envOption {
	return func(_ *config.Config, d *Dependencies) { d.Feedback = f }
}

func withRateLimit(reqs int) envOption {
	return func(c *config.Config, _ *Dependencies) {
		c.Security.RateLimitDisabled = false
		c.Security.RateLimitReqs = reqs
	}
}

// newTestEnv wires a loaded catalog, memory feedback and the neutral
// predictor behind the full router. Rate limiting is off unless requested.
func newTestEnv(t *testing.T, load bool, opts ...envOption) *testEnv {
	t.Helper()

	cfg := config.Default()
	cfg.Security.RateLimitDisabled = true

	store := catalog.NewStore(sourceFunc(func(context.Context) ([]catalog.Item, error) {
		return testItems(), nil
	}), zerolog.Nop())
	if load {
		if _, err := store.Reload(context.Background()); err != nil {
			t.Fatalf("Reload() error = %v", err)
		}
	}

	engine, err := recommend.NewEngine(recommend.DefaultConfig(), store, affinity.Neutral{}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	events := feedback.NewMemoryStore()
	deps := Dependencies{
		Config:   cfg,
		Engine:   engine,
		Catalog:  store,
		Feedback: feedback.NewRecorder(events, feedback.DefaultBreakerConfig(), nil),
	}
	for _, opt := range opts {
		opt(cfg, &deps)
	}

	h, err := NewHandler(deps)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	mw := NewChiMiddleware(NewChiMiddlewareConfig(cfg.Security))
	return &testEnv{
		cfg:     cfg,
		store:   store,
		events:  events,
		handler: h,
		server:  NewRouter(h, mw).SetupChi(),
	}
}

func (e *testEnv) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.server.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

// decodeEnvelope decodes the body and, when data is non-nil, the payload.
func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body %s)", err, rec.Body.String())
	}
	if data != nil {
		if err := json.Unmarshal(env.Data, data); err != nil {
			t.Fatalf("decode data: %v (body %s)", err, rec.Body.String())
		}
	}
	return env
}

func expectError(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) envelope {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, status, rec.Body.String())
	}
	env := decodeEnvelope(t, rec, nil)
	if env.Status != models.StatusError || env.Error == nil || env.Error.Code != code {
		t.Fatalf("envelope = %+v, want error code %s", env, code)
	}
	return env
}
