// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

/*
Package services adapts Moodplay components to suture.Service.

Each service blocks in Serve until its context is cancelled and returns an
error only for failures the supervisor should restart it for.

HTTPServerService:
  - runs *http.Server and shuts it down within a timeout

CatalogWatchService:
  - reloads the catalog when a CSV file changes (koanf file provider) or on
    a fixed interval
  - coalesces bursts of changes with a golang.org/x/time/rate limiter
  - publishes catalog.reloaded after each successful reload

AffinityRefreshService:
  - rebuilds the collaborative feedback model on start, on an interval and
    after feedback.recorded events
*/
package services
