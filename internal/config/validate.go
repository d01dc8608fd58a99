// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

package config

import (
	"fmt"
	"strings"
)

var (
	knownMoods     = map[string]bool{"energized": true, "calm": true, "stressed": true, "happy": true, "tired": true}
	knownInterests = map[string]bool{"lifestyle": true, "learning": true}
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	if err := c.validateFeedback(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %v", c.Server.Timeout)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive, got %v", c.Server.ShutdownTimeout)
	}
	return nil
}

func (c *Config) validateCatalog() error {
	if c.Catalog.DataDir == "" {
		return fmt.Errorf("catalog.data_dir is required")
	}
	if c.Catalog.WorkoutsFile == "" || c.Catalog.RecipesFile == "" || c.Catalog.CoursesFile == "" {
		return fmt.Errorf("catalog file names must not be empty")
	}
	if c.Catalog.ReloadInterval < 0 {
		return fmt.Errorf("catalog.reload_interval must not be negative, got %v", c.Catalog.ReloadInterval)
	}
	if c.Catalog.ReloadMinGap < 0 {
		return fmt.Errorf("catalog.reload_min_gap must not be negative, got %v", c.Catalog.ReloadMinGap)
	}
	return nil
}

func (c *Config) validateRecommend() error {
	r := &c.Recommend
	if r.MaxLimit < 1 {
		return fmt.Errorf("recommend.max_limit must be positive, got %d", r.MaxLimit)
	}
	if r.DefaultLimit < 1 || r.DefaultLimit > r.MaxLimit {
		return fmt.Errorf("recommend.default_limit must be between 1 and %d, got %d", r.MaxLimit, r.DefaultLimit)
	}
	if r.SimilarLimit < 1 || r.SimilarLimit > r.MaxLimit {
		return fmt.Errorf("recommend.similar_limit must be between 1 and %d, got %d", r.MaxLimit, r.SimilarLimit)
	}
	if r.ContentWeight < 0 || r.ContentWeight > 1 {
		return fmt.Errorf("recommend.content_weight must be in [0, 1], got %v", r.ContentWeight)
	}
	if r.CollaborativeWeight < 0 || r.CollaborativeWeight > 1 {
		return fmt.Errorf("recommend.collaborative_weight must be in [0, 1], got %v", r.CollaborativeWeight)
	}
	if r.ContentWeight+r.CollaborativeWeight > 1+1e-9 {
		return fmt.Errorf("recommend.content_weight + collaborative_weight must not exceed 1, got %v",
			r.ContentWeight+r.CollaborativeWeight)
	}
	if r.OverFetchFactor < 1 {
		return fmt.Errorf("recommend.overfetch_factor must be at least 1, got %d", r.OverFetchFactor)
	}
	if r.SimilarCacheSize < 0 {
		return fmt.Errorf("recommend.similar_cache_size must not be negative, got %d", r.SimilarCacheSize)
	}
	if r.AffinityRefreshInterval < 0 {
		return fmt.Errorf("recommend.affinity_refresh_interval must not be negative, got %v", r.AffinityRefreshInterval)
	}
	if r.AffinityPrior <= 0 {
		return fmt.Errorf("recommend.affinity_prior must be positive, got %v", r.AffinityPrior)
	}
	if len(r.TimeOptions) == 0 {
		return fmt.Errorf("recommend.time_options must not be empty")
	}
	for _, t := range r.TimeOptions {
		if t < 1 {
			return fmt.Errorf("recommend.time_options must be positive minutes, got %d", t)
		}
	}
	if len(r.MoodOptions) == 0 {
		return fmt.Errorf("recommend.mood_options must not be empty")
	}
	for _, m := range r.MoodOptions {
		if !knownMoods[strings.ToLower(m)] {
			return fmt.Errorf("recommend.mood_options contains unknown mood %q", m)
		}
	}
	for _, i := range r.InterestOptions {
		if !knownInterests[strings.ToLower(i)] {
			return fmt.Errorf("recommend.interest_options contains unknown interest %q", i)
		}
	}
	return nil
}

func (c *Config) validateFeedback() error {
	switch c.Feedback.Backend {
	case FeedbackBackendDuckDB, FeedbackBackendBadger:
		if c.Feedback.Path == "" {
			return fmt.Errorf("feedback.path is required for the %s backend", c.Feedback.Backend)
		}
	case FeedbackBackendMemory:
	default:
		return fmt.Errorf("feedback.backend must be one of duckdb, badger, memory, got %q", c.Feedback.Backend)
	}
	if c.Feedback.BreakerFailureThreshold < 1 {
		return fmt.Errorf("feedback.breaker_failure_threshold must be positive")
	}
	if c.Feedback.BreakerTimeout <= 0 {
		return fmt.Errorf("feedback.breaker_timeout must be positive, got %v", c.Feedback.BreakerTimeout)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("security.rate_limit_reqs must be positive, got %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("security.rate_limit_window must be positive, got %v", c.Security.RateLimitWindow)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level must be one of trace, debug, info, warn, error, got %q", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
