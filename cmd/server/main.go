// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

// Package main is the Moodplay HTTP service.
//
// Moodplay builds short, time-boxed playlists of workouts, recipes and
// courses that suit the caller's mood, and learns from like/dislike
// feedback.
//
// # Startup
//
//  1. Configuration: defaults, config.yaml, environment (koanf)
//  2. Logging: zerolog with the configured level and format
//  3. Catalog: CSV files from DATA_DIR loaded into an atomic snapshot
//  4. Feedback: DuckDB, Badger or in-memory store behind a circuit breaker
//  5. Recommend engine: neutral or feedback-trained collaborative scores
//  6. Supervisor tree: catalog watch, affinity refresh, HTTP server
//
// # Example
//
//	export DATA_DIR=./data
//	export FEEDBACK_BACKEND=duckdb
//	export FEEDBACK_PATH=./data/feedback.duckdb
//	./moodplay
//
// SIGINT and SIGTERM stop the tree; the HTTP server drains in-flight
// requests for SERVER_SHUTDOWN_TIMEOUT.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/moodplay/internal/api"
	"github.com/tomtom215/moodplay/internal/catalog"
	"github.com/tomtom215/moodplay/internal/config"
	"github.com/tomtom215/moodplay/internal/events"
	"github.com/tomtom215/moodplay/internal/feedback"
	"github.com/tomtom215/moodplay/internal/logging"
)

func main() {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})
	logging.Info().
		Str("version", cfg.Server.Version).
		Str("data_dir", cfg.Catalog.DataDir).
		Str("feedback_backend", cfg.Feedback.Backend).
		Bool("collaborative_enabled", cfg.Recommend.CollaborativeEnabled).
		Msg("Starting Moodplay")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bus := events.NewBus(logging.Logger())
	defer func() {
		if err := bus.Close(); err != nil {
			logging.Warn().Err(err).Msg("Error closing event bus")
		}
	}()

	loader := catalog.NewCSVLoader(catalog.LoaderConfig{
		DataDir:      cfg.Catalog.DataDir,
		WorkoutsFile: cfg.Catalog.WorkoutsFile,
		RecipesFile:  cfg.Catalog.RecipesFile,
		CoursesFile:  cfg.Catalog.CoursesFile,
	}, logging.Logger())
	store := catalog.NewStore(loader, logging.Logger())
	if _, err := store.Reload(ctx); err != nil {
		// Readiness stays 503 until the watcher manages a load.
		logging.Error().Err(err).Msg("Initial catalog load failed")
	}

	var recorder *feedback.Recorder
	feedbackStore, err := openFeedbackStore(&cfg.Feedback)
	if err != nil {
		logging.Error().Err(err).Str("backend", cfg.Feedback.Backend).Msg("Feedback store unavailable, feedback disabled")
	} else {
		defer closeFeedbackStore(feedbackStore)
		recorder = newRecorder(cfg, feedbackStore, bus)
	}

	rec, err := initRecommend(cfg, store, recorder)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize recommendation engine")
	}

	deps := api.Dependencies{
		Config:  cfg,
		Engine:  rec.engine,
		Catalog: store,
	}
	if recorder != nil {
		deps.Feedback = recorder
	}
	if rec.model != nil {
		deps.Affinity = rec.model
	}
	handler, err := api.NewHandler(deps)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create API handler")
	}

	tree, err := buildSupervisorTree(cfg, treeDeps{
		handler:  handler,
		store:    store,
		loader:   loader,
		bus:      bus,
		recorder: recorder,
		model:    rec.model,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to build supervisor tree")
	}

	logging.Info().Msg("Starting supervisor tree")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree stopped with error")
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
		}
	}
	logging.Info().Msg("Moodplay stopped")
}
