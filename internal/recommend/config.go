// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

package recommend

import (
	"fmt"

	"github.com/tomtom215/moodplay/internal/config"
	"github.com/tomtom215/moodplay/internal/recommend/reranking"
	"github.com/tomtom215/moodplay/internal/recommend/scoring"
)

// Config contains the engine tunables.
type Config struct {
	// DefaultLimit applies to playlist requests with Limit <= 0.
	DefaultLimit int `json:"default_limit"`

	// SimilarLimit applies to similar-item queries with limit <= 0.
	SimilarLimit int `json:"similar_limit"`

	// OverFetchFactor multiplies the limit to size the candidate pool so
	// curation has room to drop items that do not fit the time budget.
	OverFetchFactor int `json:"overfetch_factor"`

	// ContentWeight and CollaborativeWeight blend the two score sources.
	ContentWeight       float64 `json:"content_weight"`
	CollaborativeWeight float64 `json:"collaborative_weight"`

	// CollaborativeEnabled false forces the neutral collaborative score.
	CollaborativeEnabled bool `json:"collaborative_enabled"`

	// MaxRun is the longest same-domain run diversity repair tolerates.
	MaxRun int `json:"max_run"`

	// QuickPerDomain and QuickMax bound quick suggestions.
	QuickPerDomain int `json:"quick_per_domain"`
	QuickMax       int `json:"quick_max"`
}

// DefaultConfig returns the production defaults.
func DefaultConfig() *Config {
	return &Config{
		DefaultLimit:         6,
		SimilarLimit:         5,
		OverFetchFactor:      2,
		ContentWeight:        scoring.DefaultContentWeight,
		CollaborativeWeight:  scoring.DefaultCollaborativeWeight,
		CollaborativeEnabled: true,
		MaxRun:               reranking.DefaultMaxRun,
		QuickPerDomain:       3,
		QuickMax:             10,
	}
}

// ConfigFromSettings overlays the recommend section of the service
// configuration on DefaultConfig.
func ConfigFromSettings(rc *config.RecommendConfig) *Config {
	cfg := DefaultConfig()
	if rc == nil {
		return cfg
	}
	if rc.DefaultLimit > 0 {
		cfg.DefaultLimit = rc.DefaultLimit
	}
	if rc.SimilarLimit > 0 {
		cfg.SimilarLimit = rc.SimilarLimit
	}
	if rc.OverFetchFactor > 0 {
		cfg.OverFetchFactor = rc.OverFetchFactor
	}
	if rc.ContentWeight != 0 || rc.CollaborativeWeight != 0 {
		cfg.ContentWeight = rc.ContentWeight
		cfg.CollaborativeWeight = rc.CollaborativeWeight
	}
	cfg.CollaborativeEnabled = rc.CollaborativeEnabled
	return cfg
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.DefaultLimit < 1 {
		return fmt.Errorf("default_limit must be positive, got %d", c.DefaultLimit)
	}
	if c.SimilarLimit < 1 {
		return fmt.Errorf("similar_limit must be positive, got %d", c.SimilarLimit)
	}
	if c.OverFetchFactor < 1 {
		return fmt.Errorf("overfetch_factor must be at least 1, got %d", c.OverFetchFactor)
	}
	if err := c.Combiner().Validate(); err != nil {
		return err
	}
	if c.MaxRun < 1 {
		return fmt.Errorf("max_run must be positive, got %d", c.MaxRun)
	}
	if c.QuickPerDomain < 1 || c.QuickMax < 1 {
		return fmt.Errorf("quick limits must be positive, got %d/%d", c.QuickPerDomain, c.QuickMax)
	}

	return nil
}

// Combiner returns the score combiner for the configured weights.
func (c *Config) Combiner() scoring.Combiner {
	return scoring.Combiner{
		ContentWeight:       c.ContentWeight,
		CollaborativeWeight: c.CollaborativeWeight,
	}
}

// Clone returns a copy of c.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}
