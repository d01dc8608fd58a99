// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

/*
Package supervisor runs the long-lived Moodplay services under a suture v4
supervisor tree.

# Overview

The tree has two layers, each with its own failure accounting:

	RootSupervisor ("moodplay")
	├── DataSupervisor ("data-layer")
	│   ├── CatalogWatchService
	│   └── AffinityRefreshService (collaborative scoring enabled)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A catalog watcher that keeps failing is restarted with backoff while the
HTTP server continues to answer from the last good snapshot.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewCatalogWatchService(store, bus, watchCfg, logger))
	tree.AddAPIService(services.NewHTTPServerService(srv, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    logging.Error().Err(err).Msg("Supervisor tree stopped")
	}

Supervisor events (restarts, backoff, timeouts) are logged through
sutureslog, which needs an *slog.Logger; logging.NewSlogLogger bridges it to
zerolog.
*/
package supervisor
