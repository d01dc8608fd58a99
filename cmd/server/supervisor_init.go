// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

package main

import (
	"net"
	"net/http"
	"strconv"

	"github.com/tomtom215/moodplay/internal/api"
	"github.com/tomtom215/moodplay/internal/catalog"
	"github.com/tomtom215/moodplay/internal/config"
	"github.com/tomtom215/moodplay/internal/events"
	"github.com/tomtom215/moodplay/internal/feedback"
	"github.com/tomtom215/moodplay/internal/logging"
	"github.com/tomtom215/moodplay/internal/recommend/affinity"
	"github.com/tomtom215/moodplay/internal/supervisor"
	"github.com/tomtom215/moodplay/internal/supervisor/services"
)

type treeDeps struct {
	handler  *api.Handler
	store    *catalog.Store
	loader   *catalog.CSVLoader
	bus      *events.Bus
	recorder *feedback.Recorder
	model    *affinity.FeedbackModel
}

// buildSupervisorTree wires the data layer (catalog watch, affinity
// refresh) and the api layer (HTTP server).
func buildSupervisorTree(cfg *config.Config, deps treeDeps) (*supervisor.SupervisorTree, error) {
	treeCfg := supervisor.DefaultTreeConfig()
	treeCfg.ShutdownTimeout = cfg.Server.ShutdownTimeout + treeCfg.ShutdownTimeout

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), treeCfg)
	if err != nil {
		return nil, err
	}

	tree.AddDataService(services.NewCatalogWatchService(deps.store, deps.bus, services.CatalogWatchConfig{
		Paths:    deps.loader.Paths(),
		Watch:    cfg.Catalog.Watch,
		Interval: cfg.Catalog.ReloadInterval,
		MinGap:   cfg.Catalog.ReloadMinGap,
	}, logging.Logger()))

	if deps.model != nil && deps.recorder != nil {
		var sub services.Subscriber
		if cfg.Feedback.PublishEvents {
			sub = deps.bus
		}
		tree.AddDataService(services.NewAffinityRefreshService(
			deps.recorder, deps.model, sub, cfg.Recommend.AffinityRefreshInterval, logging.Logger()))
	}

	mw := api.NewChiMiddleware(api.NewChiMiddlewareConfig(cfg.Security))
	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           api.NewRouter(deps.handler, mw).SetupChi(),
		ReadHeaderTimeout: cfg.Server.Timeout,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       2 * cfg.Server.Timeout,
	}
	tree.AddAPIService(services.NewHTTPServerService(srv, cfg.Server.ShutdownTimeout, logging.Logger()))

	return tree, nil
}
