// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

package recommend

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moodplay/internal/catalog"
	"github.com/tomtom215/moodplay/internal/metrics"
	"github.com/tomtom215/moodplay/internal/recommend/affinity"
	"github.com/tomtom215/moodplay/internal/recommend/mood"
	"github.com/tomtom215/moodplay/internal/recommend/reranking"
	"github.com/tomtom215/moodplay/internal/recommend/scoring"
	"github.com/tomtom215/moodplay/internal/recommend/similarity"
)

// SnapshotProvider returns the catalog snapshot to serve a request from.
// catalog.Store implements it.
type SnapshotProvider interface {
	Snapshot() *catalog.Snapshot
}

// Engine serves playlist, similar-item and quick-suggestion queries.
// It is safe for concurrent use.
type Engine struct {
	cfg       *Config
	combiner  scoring.Combiner
	catalog   SnapshotProvider
	predictor affinity.Predictor
	reranker  reranking.Reranker[ScoredCandidate]
	logger    zerolog.Logger
}

// NewEngine creates an engine. A nil cfg uses DefaultConfig; a nil
// predictor uses affinity.Neutral.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, store SnapshotProvider, predictor affinity.Predictor, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if store == nil {
		return nil, fmt.Errorf("snapshot provider is required")
	}
	if predictor == nil {
		predictor = affinity.Neutral{}
	}

	e := &Engine{
		cfg:       cfg.Clone(),
		combiner:  cfg.Combiner(),
		catalog:   store,
		predictor: predictor,
		reranker:  domainRunBreaker(cfg.MaxRun),
		logger:    logger.With().Str("component", "recommend").Logger(),
	}
	e.logger.Info().
		Str("predictor", predictor.Name()).
		Str("reranker", e.reranker.Name()).
		Bool("collaborative_enabled", cfg.CollaborativeEnabled).
		Float64("content_weight", cfg.ContentWeight).
		Float64("collaborative_weight", cfg.CollaborativeWeight).
		Msg("Recommendation engine initialized")
	return e, nil
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.cfg.Clone()
}

// PredictorName names the collaborative score source.
func (e *Engine) PredictorName() string {
	return e.predictor.Name()
}

// Recommend builds a playlist. It fails only when ctx is already done; an
// empty catalog or a budget nothing fits yields an empty playlist.
func (e *Engine) Recommend(ctx context.Context, req Request) (*Playlist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()

	limit := req.Limit
	if limit <= 0 {
		limit = e.cfg.DefaultLimit
	}
	profile := mood.Preferences(req.Mood)
	band := mood.DurationBucketFor(profile.Mood, req.AvailableMinutes)
	domains := ActiveDomains(req.Interests)
	snap := e.catalog.Snapshot()

	cands := e.selectCandidates(snap, domains, profile, band, limit, req.UserSession)
	picked := curate(cands, mood.DomainOrder(profile.Mood), domains, req.AvailableMinutes, limit, e.reranker)

	out := &Playlist{
		Playlist:         make([]PlaylistEntry, 0, len(picked)),
		Mood:             req.Mood,
		AvailableMinutes: req.AvailableMinutes,
		Interests:        append([]Interest{}, req.Interests...),
	}
	for i := range picked {
		out.Playlist = append(out.Playlist, picked[i].entry())
		out.TotalDuration += picked[i].Item.DurationMin
	}

	elapsed := time.Since(start)
	metrics.RecordRecommendation(string(profile.Mood), len(out.Playlist), elapsed)
	e.logger.Debug().
		Str("mood", string(req.Mood)).
		Int("available_minutes", req.AvailableMinutes).
		Int("limit", limit).
		Int("entries", len(out.Playlist)).
		Int("total_duration", out.TotalDuration).
		Uint64("catalog_version", snap.Version()).
		Dur("duration", elapsed).
		Msg("Playlist generated")

	if len(out.Playlist) == 0 {
		e.logger.Warn().
			Str("mood", string(req.Mood)).
			Int("available_minutes", req.AvailableMinutes).
			Msg("No recommendations found, returning empty playlist")
	}
	return out, nil
}

// Similar returns items of the same domain sharing tags with itemID. The
// score of each entry is its Jaccard similarity. An unknown itemID yields
// an empty result.
func (e *Engine) Similar(ctx context.Context, itemID string, limit int) (*SimilarResult, error) {
	return e.SimilarIn(ctx, e.catalog.Snapshot(), itemID, limit)
}

// SimilarIn is Similar against a caller-held snapshot, so a caller that
// keys a cache on the snapshot answers from that same snapshot.
func (e *Engine) SimilarIn(ctx context.Context, snap *catalog.Snapshot, itemID string, limit int) (*SimilarResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, fmt.Errorf("snapshot is required")
	}
	if limit <= 0 {
		limit = e.cfg.SimilarLimit
	}

	matches := similarity.Similar(snap, itemID, limit)
	out := &SimilarResult{
		ItemID:       itemID,
		SimilarItems: make([]PlaylistEntry, 0, len(matches)),
	}
	for _, m := range matches {
		entry := neutralEntry(m.Item)
		sim := round3(m.Similarity)
		entry.Score = sim
		entry.ScoreBreakdown.Overall = sim
		entry.ScoreBreakdown.Content = sim
		out.SimilarItems = append(out.SimilarItems, entry)
	}
	out.Count = len(out.SimilarItems)
	return out, nil
}

// Quick returns items of at least one minute that fit availableMinutes,
// longest first, QuickPerDomain per domain and QuickMax overall. A nil
// domain searches every domain. Each entry's score is the share of the
// budget it uses.
func (e *Engine) Quick(ctx context.Context, availableMinutes int, domain *catalog.Domain) (*QuickResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	domains := catalog.Domains
	if domain != nil {
		domains = []catalog.Domain{*domain}
	}
	snap := e.catalog.Snapshot()

	out := &QuickResult{
		AvailableMinutes: availableMinutes,
		Domain:           domain,
		Suggestions:      []PlaylistEntry{},
	}
	for _, d := range domains {
		var fits []*catalog.Item
		for _, it := range snap.Items(d) {
			if it.DurationMin >= 1 && it.DurationMin <= availableMinutes {
				fits = append(fits, it)
			}
		}
		sort.SliceStable(fits, func(i, j int) bool {
			return fits[i].DurationMin > fits[j].DurationMin
		})
		if len(fits) > e.cfg.QuickPerDomain {
			fits = fits[:e.cfg.QuickPerDomain]
		}
		for _, it := range fits {
			if len(out.Suggestions) >= e.cfg.QuickMax {
				break
			}
			entry := neutralEntry(it)
			share := round3(scoring.Clamp01(float64(it.DurationMin) / float64(availableMinutes)))
			entry.Score = share
			entry.ScoreBreakdown.Overall = share
			entry.ScoreBreakdown.Time = share
			out.Suggestions = append(out.Suggestions, entry)
		}
	}
	out.Count = len(out.Suggestions)
	return out, nil
}
