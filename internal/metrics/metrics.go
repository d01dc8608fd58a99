// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Recommendation Metrics
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodplay_recommend_requests_total",
			Help: "Total playlist requests handled by the engine",
		},
		[]string{"mood"},
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "moodplay_recommend_duration_seconds",
			Help:    "Time spent scoring and curating a playlist",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		},
	)

	PlaylistItems = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "moodplay_playlist_items",
			Help:    "Number of entries in generated playlists",
			Buckets: []float64{0, 1, 2, 3, 4, 6, 8, 10, 15, 20},
		},
	)

	// Catalog Metrics
	CatalogItems = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "moodplay_catalog_items",
			Help: "Items in the active catalog snapshot",
		},
		[]string{"domain"},
	)

	CatalogReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodplay_catalog_reloads_total",
			Help: "Catalog reload attempts by result",
		},
		[]string{"result"}, // "success", "error"
	)

	// Feedback Metrics
	FeedbackEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodplay_feedback_events_total",
			Help: "Feedback events persisted",
		},
		[]string{"action", "domain"},
	)

	FeedbackStoreErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "moodplay_feedback_store_errors_total",
			Help: "Feedback store operations that failed or were rejected by the circuit breaker",
		},
	)

	AffinityRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodplay_affinity_refresh_total",
			Help: "Collaborative affinity model rebuilds by result",
		},
		[]string{"result"},
	)

	// HTTP Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodplay_http_requests_total",
			Help: "HTTP requests by method, route pattern and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "moodplay_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route pattern",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// RecordRecommendation records one engine invocation.
func RecordRecommendation(mood string, entries int, duration time.Duration) {
	RecommendRequests.WithLabelValues(mood).Inc()
	RecommendDuration.Observe(duration.Seconds())
	PlaylistItems.Observe(float64(entries))
}

// SetCatalogItems publishes per-domain item counts of the active snapshot.
func SetCatalogItems(counts map[string]int) {
	for domain, n := range counts {
		CatalogItems.WithLabelValues(domain).Set(float64(n))
	}
}

// RecordCatalogReload counts a reload attempt.
func RecordCatalogReload(err error) {
	if err != nil {
		CatalogReloads.WithLabelValues("error").Inc()
		return
	}
	CatalogReloads.WithLabelValues("success").Inc()
}

// RecordFeedback counts a persisted feedback event.
func RecordFeedback(action, domain string) {
	FeedbackEvents.WithLabelValues(action, domain).Inc()
}

// RecordFeedbackStoreError counts a failed store operation.
func RecordFeedbackStoreError() {
	FeedbackStoreErrors.Inc()
}

// RecordAffinityRefresh counts an affinity model rebuild.
func RecordAffinityRefresh(err error) {
	if err != nil {
		AffinityRefreshes.WithLabelValues("error").Inc()
		return
	}
	AffinityRefreshes.WithLabelValues("success").Inc()
}

// RecordHTTPRequest records an HTTP request metric.
func RecordHTTPRequest(method, route, status string, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
