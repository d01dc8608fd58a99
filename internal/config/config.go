// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

/*
Package config provides layered configuration for Moodplay.

Values are resolved in order of increasing priority:

 1. Struct defaults (defaultConfig)
 2. YAML file at CONFIG_PATH, or the first of DefaultConfigPaths that exists
 3. Environment variables listed in envMappings

Unknown environment variables are ignored. List values given through the
environment are comma separated, for example:

	TIME_OPTIONS=5,10,30,60,120 CORS_ORIGINS=http://localhost:3006

The loaded Config is validated before it is returned.
*/
package config

import "time"

// Config is the complete application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Recommend RecommendConfig `koanf:"recommend"`
	Feedback  FeedbackConfig  `koanf:"feedback"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	AppName         string        `koanf:"app_name"`
	Version         string        `koanf:"version"`
}

// CatalogConfig locates the CSV files and controls hot reload.
//
// Environment Variables:
//   - DATA_DIR: directory holding the CSV files (default: data)
//   - CATALOG_WATCH: reload when a file changes (default: true)
//   - CATALOG_RELOAD_INTERVAL: periodic reload, 0 disables (default: 0)
type CatalogConfig struct {
	DataDir      string `koanf:"data_dir"`
	WorkoutsFile string `koanf:"workouts_file"`
	RecipesFile  string `koanf:"recipes_file"`
	CoursesFile  string `koanf:"courses_file"`

	Watch          bool          `koanf:"watch"`
	ReloadInterval time.Duration `koanf:"reload_interval"`

	// ReloadMinGap throttles reloads triggered by bursts of file events.
	ReloadMinGap time.Duration `koanf:"reload_min_gap"`
}

// RecommendConfig holds engine tunables and the values accepted at the
// HTTP boundary.
type RecommendConfig struct {
	DefaultLimit        int     `koanf:"default_limit"`
	MaxLimit            int     `koanf:"max_limit"`
	SimilarLimit        int     `koanf:"similar_limit"`
	ContentWeight       float64 `koanf:"content_weight"`
	CollaborativeWeight float64 `koanf:"collaborative_weight"`
	OverFetchFactor     int     `koanf:"overfetch_factor"`

	// SimilarCacheSize bounds the similar-item result cache; 0 disables it.
	SimilarCacheSize int `koanf:"similar_cache_size"`

	// CollaborativeEnabled uses the feedback affinity model. When false,
	// or when no feedback store is configured, collaborative scores are 0.5.
	CollaborativeEnabled    bool          `koanf:"collaborative_enabled"`
	AffinityRefreshInterval time.Duration `koanf:"affinity_refresh_interval"`
	AffinityPrior           float64       `koanf:"affinity_prior"`

	TimeOptions     []int    `koanf:"time_options"`
	MoodOptions     []string `koanf:"mood_options"`
	InterestOptions []string `koanf:"interest_options"`
}

// Feedback store backends.
const (
	FeedbackBackendDuckDB = "duckdb"
	FeedbackBackendBadger = "badger"
	FeedbackBackendMemory = "memory"
)

// FeedbackConfig selects and tunes the feedback store.
type FeedbackConfig struct {
	Backend string `koanf:"backend"`

	// Path is the DuckDB file or the Badger directory.
	Path string `koanf:"path"`

	BreakerFailureThreshold uint32        `koanf:"breaker_failure_threshold"`
	BreakerTimeout          time.Duration `koanf:"breaker_timeout"`

	// PublishEvents announces recorded feedback on the event bus.
	PublishEvents bool `koanf:"publish_events"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings for zerolog.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}
