// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moodplay/internal/metrics"
)

// ErrNoSource is returned by Reload when the store was built without a Source.
var ErrNoSource = errors.New("catalog: no source configured")

// Source produces the full set of catalog items.
type Source interface {
	Load(ctx context.Context) ([]Item, error)
}

// Store holds the active Snapshot behind an atomic pointer. Readers call
// Snapshot and keep using the returned value for the whole request; a
// reload swaps in a new snapshot without blocking them.
type Store struct {
	source Source
	logger zerolog.Logger

	current atomic.Pointer[Snapshot]
	version atomic.Uint64
	loaded  atomic.Bool

	// loadMu serializes reloads; readers never take it.
	loadMu sync.Mutex

	hooksMu sync.RWMutex
	hooks   []func(*Snapshot)
}

// NewStore creates a store serving an empty snapshot until the first load.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewStore(source Source, logger zerolog.Logger) *Store {
	s := &Store{
		source: source,
		logger: logger.With().Str("component", "catalog").Logger(),
	}
	s.current.Store(emptySnapshot)
	return s
}

// Snapshot returns the active snapshot; never nil.
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// Ready reports whether at least one snapshot has been swapped in.
func (s *Store) Ready() bool {
	return s.loaded.Load()
}

// OnSwap registers fn to run after every successful swap.
func (s *Store) OnSwap(fn func(*Snapshot)) {
	s.hooksMu.Lock()
	defer s.hooksMu.Unlock()
	s.hooks = append(s.hooks, fn)
}

// Swap installs snap as the active snapshot and returns the stored copy.
func (s *Store) Swap(snap *Snapshot) *Snapshot {
	if snap == nil {
		snap = emptySnapshot
	}
	installed := *snap
	installed.version = s.version.Add(1)
	s.current.Store(&installed)
	s.loaded.Store(true)

	s.hooksMu.RLock()
	hooks := append([]func(*Snapshot){}, s.hooks...)
	s.hooksMu.RUnlock()
	for _, fn := range hooks {
		fn(&installed)
	}
	return &installed
}

// Reload loads a fresh snapshot from the source and swaps it in. On error
// the previous snapshot stays active.
func (s *Store) Reload(ctx context.Context) (*Snapshot, error) {
	if s.source == nil {
		return nil, ErrNoSource
	}

	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	start := time.Now()
	items, err := s.source.Load(ctx)
	metrics.RecordCatalogReload(err)
	if err != nil {
		s.logger.Error().Err(err).Msg("Catalog reload failed, keeping previous snapshot")
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	snap := s.Swap(NewSnapshot(items))
	md := snap.Metadata()
	metrics.SetCatalogItems(md.Domains)

	s.logger.Info().
		Int("total_items", md.TotalItems).
		Uint64("version", snap.Version()).
		Dur("duration", time.Since(start)).
		Msg("Catalog snapshot loaded")
	return snap, nil
}
