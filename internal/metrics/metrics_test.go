// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func TestRecordRecommendation(t *testing.T) {
	before := testutil.ToFloat64(RecommendRequests.WithLabelValues("calm"))
	RecordRecommendation("calm", 4, 2*time.Millisecond)
	after := testutil.ToFloat64(RecommendRequests.WithLabelValues("calm"))

	if after-before != 1 {
		t.Errorf("recommend counter delta = %v, want 1", after-before)
	}
}

func TestRecordCatalogReload(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		result string
	}{
		{"success", nil, "success"},
		{"failure", errors.New("bad header"), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(CatalogReloads.WithLabelValues(tt.result))
			RecordCatalogReload(tt.err)
			after := testutil.ToFloat64(CatalogReloads.WithLabelValues(tt.result))
			if after-before != 1 {
				t.Errorf("%s delta = %v, want 1", tt.result, after-before)
			}
		})
	}
}

func TestSetCatalogItems(t *testing.T) {
	SetCatalogItems(map[string]int{"workouts": 12, "recipes": 7})

	if got := testutil.ToFloat64(CatalogItems.WithLabelValues("workouts")); got != 12 {
		t.Errorf("workouts gauge = %v, want 12", got)
	}

	m := &dto.Metric{}
	if err := CatalogItems.WithLabelValues("recipes").Write(m); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := m.GetGauge().GetValue(); got != 7 {
		t.Errorf("recipes gauge = %v, want 7", got)
	}
}

func TestRecordFeedbackAndAffinity(t *testing.T) {
	before := testutil.ToFloat64(FeedbackEvents.WithLabelValues("like", "workout"))
	RecordFeedback("like", "workout")
	if got := testutil.ToFloat64(FeedbackEvents.WithLabelValues("like", "workout")) - before; got != 1 {
		t.Errorf("feedback delta = %v, want 1", got)
	}

	errBefore := testutil.ToFloat64(FeedbackStoreErrors)
	RecordFeedbackStoreError()
	if got := testutil.ToFloat64(FeedbackStoreErrors) - errBefore; got != 1 {
		t.Errorf("store error delta = %v, want 1", got)
	}

	refreshBefore := testutil.ToFloat64(AffinityRefreshes.WithLabelValues("error"))
	RecordAffinityRefresh(errors.New("breaker open"))
	if got := testutil.ToFloat64(AffinityRefreshes.WithLabelValues("error")) - refreshBefore; got != 1 {
		t.Errorf("affinity error delta = %v, want 1", got)
	}
}

func TestConcurrentHTTPRecording(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/health", "200"))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			RecordHTTPRequest("GET", "/api/health", "200", time.Millisecond)
		}()
	}
	wg.Wait()

	if got := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/health", "200")) - before; got != 50 {
		t.Errorf("http counter delta = %v, want 50", got)
	}
}
