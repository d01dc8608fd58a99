// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

package api

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/moodplay/internal/cache"
	"github.com/tomtom215/moodplay/internal/catalog"
	"github.com/tomtom215/moodplay/internal/config"
	"github.com/tomtom215/moodplay/internal/feedback"
	"github.com/tomtom215/moodplay/internal/models"
	"github.com/tomtom215/moodplay/internal/recommend"
	"github.com/tomtom215/moodplay/internal/recommend/affinity"
)

// CatalogService is the part of catalog.Store the handlers use.
type CatalogService interface {
	Snapshot() *catalog.Snapshot
	Ready() bool
	Reload(ctx context.Context) (*catalog.Snapshot, error)
}

// FeedbackService records feedback events.
type FeedbackService interface {
	Record(ctx context.Context, e feedback.Event) (feedback.Event, error)
	BreakerState() string
}

// AffinityReporter exposes the state of the collaborative model.
type AffinityReporter interface {
	Status() affinity.Status
}

// Dependencies are the collaborators of a Handler. Feedback and Affinity
// are optional.
type Dependencies struct {
	Config   *config.Config
	Engine   *recommend.Engine
	Catalog  CatalogService
	Feedback FeedbackService
	Affinity AffinityReporter
}

// Handler serves the HTTP endpoints.
type Handler struct {
	cfg       *config.Config
	engine    *recommend.Engine
	catalog   CatalogService
	feedback  FeedbackService
	affinity  AffinityReporter
	startTime time.Time

	// similar memoizes similar-item results per catalog snapshot; nil when
	// recommend.similar_cache_size is 0.
	similar *cache.LRU[*recommend.SimilarResult]
}

const similarCacheTTL = 10 * time.Minute

// NewHandler validates deps and returns a Handler.
func NewHandler(deps Dependencies) (*Handler, error) {
	switch {
	case deps.Config == nil:
		return nil, errors.New("api: config is required")
	case deps.Engine == nil:
		return nil, errors.New("api: recommend engine is required")
	case deps.Catalog == nil:
		return nil, errors.New("api: catalog is required")
	}
	h := &Handler{
		cfg:       deps.Config,
		engine:    deps.Engine,
		catalog:   deps.Catalog,
		feedback:  deps.Feedback,
		affinity:  deps.Affinity,
		startTime: time.Now(),
	}
	if n := deps.Config.Recommend.SimilarCacheSize; n > 0 {
		h.similar = cache.NewLRU[*recommend.SimilarResult](n, similarCacheTTL)
	}
	return h, nil
}

// similarKey scopes a cached result to one snapshot, so entries from
// before a reload are never served.
func similarKey(snap *catalog.Snapshot, itemID string, limit int) string {
	return fmt.Sprintf("%d/%d/%s/%d", snap.Version(), snap.LoadedAt().UnixNano(), itemID, limit)
}

// serviceMetadata combines the snapshot summary with the accepted options.
func (h *Handler) serviceMetadata(snap *catalog.Snapshot) models.ServiceMetadata {
	rc := h.cfg.Recommend
	return models.ServiceMetadata{
		DataSummary: snap.Metadata(),
		Configuration: models.Configuration{
			MoodOptions:        append([]string{}, rc.MoodOptions...),
			TimeOptions:        append([]int{}, rc.TimeOptions...),
			InterestOptions:    append([]string{}, rc.InterestOptions...),
			MaxRecommendations: rc.MaxLimit,
		},
		Features: models.Features{
			CollaborativeFiltering: h.collaborativeActive(),
			ContentFiltering:       true,
			MoodMapping:            true,
			TimeOptimization:       true,
		},
	}
}

// collaborativeActive reports whether a non-neutral predictor is wired.
func (h *Handler) collaborativeActive() bool {
	return h.cfg.Recommend.CollaborativeEnabled && h.engine.PredictorName() != (affinity.Neutral{}).Name()
}
