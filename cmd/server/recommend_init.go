// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

package main

import (
	"github.com/tomtom215/moodplay/internal/catalog"
	"github.com/tomtom215/moodplay/internal/config"
	"github.com/tomtom215/moodplay/internal/feedback"
	"github.com/tomtom215/moodplay/internal/logging"
	"github.com/tomtom215/moodplay/internal/recommend"
	"github.com/tomtom215/moodplay/internal/recommend/affinity"
)

type recommendStack struct {
	engine *recommend.Engine

	// model is nil when collaborative scoring is off.
	model *affinity.FeedbackModel
}

// initRecommend selects the collaborative predictor: the feedback model
// when it is enabled and a feedback store is available, else neutral.
func initRecommend(cfg *config.Config, store *catalog.Store, recorder *feedback.Recorder) (*recommendStack, error) {
	engineCfg := recommend.ConfigFromSettings(&cfg.Recommend)

	var (
		predictor affinity.Predictor = affinity.Neutral{}
		model     *affinity.FeedbackModel
	)
	switch {
	case !cfg.Recommend.CollaborativeEnabled:
		logging.Info().Msg("Collaborative scoring disabled")
	case recorder == nil:
		logging.Warn().Msg("Collaborative scoring needs a feedback store, using neutral scores")
		engineCfg.CollaborativeEnabled = false
	default:
		model = affinity.NewFeedbackModel(cfg.Recommend.AffinityPrior)
		predictor = model
	}

	engine, err := recommend.NewEngine(engineCfg, store, predictor, logging.Logger())
	if err != nil {
		return nil, err
	}
	return &recommendStack{engine: engine, model: model}, nil
}
