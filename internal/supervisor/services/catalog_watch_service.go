// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

package services

import (
	"context"
	"time"

	"github.com/knadh/koanf/providers/file"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tomtom215/moodplay/internal/catalog"
	"github.com/tomtom215/moodplay/internal/events"
)

// CatalogReloader is implemented by *catalog.Store.
type CatalogReloader interface {
	Reload(ctx context.Context) (*catalog.Snapshot, error)
}

// CatalogWatchConfig controls what triggers a catalog reload.
type CatalogWatchConfig struct {
	// Paths are the CSV files to watch.
	Paths []string

	// Watch enables file change notifications.
	Watch bool

	// Interval reloads on a fixed schedule; 0 disables it.
	Interval time.Duration

	// MinGap is the minimum time between two reloads. Triggers arriving
	// sooner are coalesced into one reload.
	MinGap time.Duration
}

// FileWatcher starts watching path and calls onChange on every change.
// The returned stop function ends the watch.
type FileWatcher func(path string, onChange func()) (stop func(), err error)

// CatalogWatchService reloads the catalog when a watched file changes or
// the interval elapses, and publishes TopicCatalogReloaded after every
// successful reload.
type CatalogWatchService struct {
	store     CatalogReloader
	publisher events.Publisher
	config    CatalogWatchConfig
	watcher   FileWatcher
	logger    zerolog.Logger
	name      string
}

// NewCatalogWatchService creates the service. A nil publisher drops events.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewCatalogWatchService(store CatalogReloader, publisher events.Publisher, cfg CatalogWatchConfig, logger zerolog.Logger) *CatalogWatchService {
	if publisher == nil {
		publisher = events.Discard{}
	}
	return &CatalogWatchService{
		store:     store,
		publisher: publisher,
		config:    cfg,
		watcher:   KoanfFileWatcher,
		logger:    logger.With().Str("service", "catalog-watch").Logger(),
		name:      "catalog-watch",
	}
}

// WithWatcher replaces the file watcher.
func (s *CatalogWatchService) WithWatcher(w FileWatcher) *CatalogWatchService {
	s.watcher = w
	return s
}

// KoanfFileWatcher watches a single file with the koanf file provider.
func KoanfFileWatcher(path string, onChange func()) (func(), error) {
	provider := file.Provider(path)
	err := provider.Watch(func(_ interface{}, err error) {
		if err != nil {
			return
		}
		onChange()
	})
	if err != nil {
		return nil, err
	}
	return func() { _ = provider.Unwatch() }, nil
}

// Serve implements suture.Service.
func (s *CatalogWatchService) Serve(ctx context.Context) error {
	// One pending trigger is enough: a reload reads every file.
	trigger := make(chan string, 1)
	notify := func(reason string) {
		select {
		case trigger <- reason:
		default:
		}
	}

	if s.config.Watch {
		for _, path := range s.config.Paths {
			stop, err := s.watcher(path, func() { notify("file:" + path) })
			if err != nil {
				s.logger.Warn().Err(err).Str("path", path).Msg("Cannot watch catalog file")
				continue
			}
			defer stop()
		}
	}

	var tick <-chan time.Time
	if s.config.Interval > 0 {
		ticker := time.NewTicker(s.config.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	limit := rate.Inf
	if s.config.MinGap > 0 {
		limit = rate.Every(s.config.MinGap)
	}
	limiter := rate.NewLimiter(limit, 1)

	s.logger.Info().
		Bool("watch", s.config.Watch).
		Int("files", len(s.config.Paths)).
		Dur("interval", s.config.Interval).
		Msg("Catalog watch service started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick:
			notify("interval")
		case reason := <-trigger:
			if err := limiter.Wait(ctx); err != nil {
				return ctx.Err()
			}
			s.reload(ctx, reason)
		}
	}
}

func (s *CatalogWatchService) reload(ctx context.Context, reason string) {
	snap, err := s.store.Reload(ctx)
	if err != nil {
		// The store keeps serving the previous snapshot.
		s.logger.Warn().Err(err).Str("reason", reason).Msg("Catalog reload failed")
		return
	}
	payload := events.CatalogReloaded{Version: snap.Version(), TotalItems: snap.Len()}
	if err := s.publisher.PublishJSON(ctx, events.TopicCatalogReloaded, payload); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to publish catalog reload")
	}
	s.logger.Info().
		Str("reason", reason).
		Uint64("version", payload.Version).
		Int("total_items", payload.TotalItems).
		Msg("Catalog reloaded")
}

// String names the service in supervisor events.
func (s *CatalogWatchService) String() string {
	return s.name
}
