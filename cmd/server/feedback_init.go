// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tomtom215/moodplay/internal/config"
	"github.com/tomtom215/moodplay/internal/database"
	"github.com/tomtom215/moodplay/internal/events"
	"github.com/tomtom215/moodplay/internal/feedback"
	"github.com/tomtom215/moodplay/internal/logging"
)

// openFeedbackStore opens the configured backend. The caller closes it.
func openFeedbackStore(cfg *config.FeedbackConfig) (feedback.Store, error) {
	switch cfg.Backend {
	case config.FeedbackBackendDuckDB:
		if err := ensureParentDir(cfg.Path); err != nil {
			return nil, err
		}
		db, err := database.New(database.Config{Path: cfg.Path})
		if err != nil {
			return nil, fmt.Errorf("open duckdb feedback store: %w", err)
		}
		logging.Info().Str("path", cfg.Path).Msg("DuckDB feedback store opened")
		return db, nil

	case config.FeedbackBackendBadger:
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("create badger directory: %w", err)
		}
		bs, err := feedback.OpenBadger(feedback.BadgerConfig{Path: cfg.Path})
		if err != nil {
			return nil, fmt.Errorf("open badger feedback store: %w", err)
		}
		logging.Info().Str("path", cfg.Path).Msg("Badger feedback store opened")
		return bs, nil

	case config.FeedbackBackendMemory:
		logging.Warn().Msg("In-memory feedback store: feedback is lost on restart")
		return feedback.NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unknown feedback backend %q", cfg.Backend)
}

func ensureParentDir(path string) error {
	if path == database.MemoryPath {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	return nil
}

func closeFeedbackStore(s feedback.Store) {
	if err := s.Close(); err != nil {
		logging.Error().Err(err).Msg("Error closing feedback store")
	}
}

// newRecorder puts the store behind the circuit breaker. Events reach the
// bus only when publishing is enabled.
func newRecorder(cfg *config.Config, store feedback.Store, bus *events.Bus) *feedback.Recorder {
	var publisher events.Publisher
	if cfg.Feedback.PublishEvents {
		publisher = bus
	}
	return feedback.NewRecorder(store, feedback.BreakerConfig{
		Name:             "feedback-store",
		FailureThreshold: cfg.Feedback.BreakerFailureThreshold,
		Timeout:          cfg.Feedback.BreakerTimeout,
		MaxRequests:      1,
	}, publisher)
}
