// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/moodplay/config.yaml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns the built-in defaults.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            7017,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			AppName:         "Smart Lifestyle & Learning Recommender",
			Version:         "1.0.0",
		},
		Catalog: CatalogConfig{
			DataDir:        "data",
			WorkoutsFile:   "workouts.csv",
			RecipesFile:    "recipes.csv",
			CoursesFile:    "courses.csv",
			Watch:          true,
			ReloadInterval: 0,
			ReloadMinGap:   2 * time.Second,
		},
		Recommend: RecommendConfig{
			DefaultLimit:            6,
			MaxLimit:                20,
			SimilarLimit:            5,
			ContentWeight:           0.7,
			CollaborativeWeight:     0.3,
			OverFetchFactor:         2,
			SimilarCacheSize:        0,
			CollaborativeEnabled:    true,
			AffinityRefreshInterval: 5 * time.Minute,
			AffinityPrior:           2.0,
			TimeOptions:             []int{5, 10, 30, 60, 120},
			MoodOptions:             []string{"energized", "calm", "stressed", "happy", "tired"},
			InterestOptions:         []string{"lifestyle", "learning"},
		},
		Feedback: FeedbackConfig{
			Backend:                 FeedbackBackendDuckDB,
			Path:                    "data/feedback.duckdb",
			BreakerFailureThreshold: 5,
			BreakerTimeout:          30 * time.Second,
			PublishEvents:           true,
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"http://localhost:3006"},
			RateLimitReqs:     100,
			RateLimitWindow:   1 * time.Minute,
			RateLimitDisabled: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Default returns the default configuration without reading any file or
// environment variable.
func Default() *Config {
	return defaultConfig()
}

// LoadWithKoanf loads defaults, then the config file, then environment
// variables, and validates the result.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// findConfigFile returns CONFIG_PATH when it exists, else the first
// existing entry of DefaultConfigPaths, else "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths are parsed as comma separated lists when they arrive
// as strings.
var sliceConfigPaths = []string{
	"security.cors_origins",
	"recommend.time_options",
	"recommend.mood_options",
	"recommend.interest_options",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

var envMappings = map[string]string{
	// Server
	"http_port":        "server.port",
	"backend_port":     "server.port",
	"http_host":        "server.host",
	"server_timeout":   "server.timeout",
	"shutdown_timeout": "server.shutdown_timeout",
	"app_name":         "server.app_name",
	"app_version":      "server.version",

	// Catalog
	"data_dir":                "catalog.data_dir",
	"workouts_file":           "catalog.workouts_file",
	"recipes_file":            "catalog.recipes_file",
	"courses_file":            "catalog.courses_file",
	"catalog_watch":           "catalog.watch",
	"catalog_reload_interval": "catalog.reload_interval",
	"catalog_reload_min_gap":  "catalog.reload_min_gap",

	// Recommendation engine
	"default_recommendation_limit": "recommend.default_limit",
	"max_recommendation_limit":     "recommend.max_limit",
	"similar_limit":                "recommend.similar_limit",
	"similar_cache_size":           "recommend.similar_cache_size",
	"content_weight":               "recommend.content_weight",
	"collaborative_weight":         "recommend.collaborative_weight",
	"overfetch_factor":             "recommend.overfetch_factor",
	"collaborative_enabled":        "recommend.collaborative_enabled",
	"affinity_refresh_interval":    "recommend.affinity_refresh_interval",
	"affinity_prior":               "recommend.affinity_prior",
	"available_time_options":       "recommend.time_options",
	"time_options":                 "recommend.time_options",
	"mood_options":                 "recommend.mood_options",
	"interest_options":             "recommend.interest_options",

	// Feedback store
	"feedback_backend":          "feedback.backend",
	"feedback_path":             "feedback.path",
	"feedback_breaker_failures": "feedback.breaker_failure_threshold",
	"feedback_breaker_timeout":  "feedback.breaker_timeout",
	"feedback_publish_events":   "feedback.publish_events",

	// Security
	"allowed_origins":     "security.cors_origins",
	"cors_origins":        "security.cors_origins",
	"rate_limit_reqs":     "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"rate_limit_disabled": "security.rate_limit_disabled",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc maps an environment variable name to its koanf path.
// Unmapped names return "" so they are skipped.
//
// Examples:
//   - DATA_DIR -> catalog.data_dir
//   - CONTENT_WEIGHT -> recommend.content_weight
//   - LOG_LEVEL -> logging.level
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
