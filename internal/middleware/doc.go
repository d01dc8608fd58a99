// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

/*
Package middleware provides the HTTP middleware specific to Moodplay. CORS,
rate limiting, panic recovery and compression come from the chi ecosystem
and are assembled in the api package.

Key Components:

  - RequestID: X-Request-ID propagation and logging context IDs
  - PrometheusMetrics: request counters and latency histograms per chi route
  - AccessLog: one structured log line per request

All three take and return http.Handler so they plug into chi's Use:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.AccessLog)

PrometheusMetrics and AccessLog label requests with the chi route pattern
("/api/similar/{item_id}") rather than the raw path, so metric cardinality
stays bounded. Outside a chi router they fall back to "unmatched".
*/
package middleware
