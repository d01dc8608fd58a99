// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

package models

import (
	"time"

	"github.com/tomtom215/moodplay/internal/catalog"
)

// HealthStatus is returned by GET /api/health.
type HealthStatus struct {
	Status        string              `json:"status"`
	Version       string              `json:"version"`
	AppName       string              `json:"app_name"`
	CatalogItems  int                 `json:"catalog_items"`
	CatalogLoaded *time.Time          `json:"catalog_loaded_at,omitempty"`
	Collaborative CollaborativeStatus `json:"collaborative"`
	FeedbackStore string              `json:"feedback_store"`
	Uptime        float64             `json:"uptime_seconds"`
}

// CollaborativeStatus reports which score source the engine uses.
type CollaborativeStatus struct {
	Enabled   bool   `json:"enabled"`
	Predictor string `json:"predictor"`
	Version   int    `json:"version,omitempty"`
	Events    int64  `json:"events,omitempty"`
}

// ProbeStatus is returned by the liveness and readiness probes.
type ProbeStatus struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// ServiceMetadata is returned by GET /api/metadata and by a catalog reload.
type ServiceMetadata struct {
	DataSummary   catalog.Metadata `json:"data_summary"`
	Configuration Configuration    `json:"configuration"`
	Features      Features         `json:"features"`
}

// Configuration lists the values clients may send.
type Configuration struct {
	MoodOptions        []string `json:"mood_options"`
	TimeOptions        []int    `json:"time_options"`
	InterestOptions    []string `json:"interest_options"`
	MaxRecommendations int      `json:"max_recommendations"`
}

// Features advertises the enabled scoring signals.
type Features struct {
	CollaborativeFiltering bool `json:"collaborative_filtering"`
	ContentFiltering       bool `json:"content_filtering"`
	MoodMapping            bool `json:"mood_mapping"`
	TimeOptimization       bool `json:"time_optimization"`
}

// FeedbackAck is returned by POST /api/feedback.
type FeedbackAck struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	ID      string `json:"id"`
}

// ReloadResult is returned by POST /api/admin/reload.
type ReloadResult struct {
	Version  uint64          `json:"version"`
	Metadata ServiceMetadata `json:"metadata"`
}

// RootInfo is returned by GET /.
type RootInfo struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Health  string `json:"health"`
}
