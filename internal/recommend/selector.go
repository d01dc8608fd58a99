// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

package recommend

import (
	"math"
	"sort"

	"github.com/tomtom215/moodplay/internal/catalog"
	"github.com/tomtom215/moodplay/internal/recommend/mood"
	"github.com/tomtom215/moodplay/internal/recommend/scoring"
)

// scoreItem computes every signal of one item for a request.
func (e *Engine) scoreItem(it *catalog.Item, p *mood.Profile, band mood.DurationBucket, user string) ScoredCandidate {
	content := scoring.Score(it, p, band)
	collab := e.collaborative(user, it.ItemID)
	return ScoredCandidate{
		Item:          it,
		Content:       content,
		Collaborative: collab,
		Final:         e.combiner.Combine(content.Content, collab),
	}
}

// collaborative returns the neutral score for anonymous callers or when the
// collaborative signal is disabled.
func (e *Engine) collaborative(user, itemID string) float64 {
	if user == "" || !e.cfg.CollaborativeEnabled {
		return scoring.Neutral
	}
	return scoring.Clamp01(e.predictor.Predict(user, itemID))
}

// rankDomain scores items and sorts them by final score descending. Ties
// keep catalog order.
func (e *Engine) rankDomain(items []*catalog.Item, p *mood.Profile, band mood.DurationBucket, user string) []ScoredCandidate {
	ranked := make([]ScoredCandidate, len(items))
	for i, it := range items {
		ranked[i] = e.scoreItem(it, p, band, user)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Final > ranked[j].Final
	})
	return ranked
}

// quota is the number of candidates a domain contributes. The sum over
// domains may exceed n.
func quota(n int, weight float64) int {
	return max(1, int(math.Floor(float64(n)*weight)))
}

// selectCandidates ranks each active domain and keeps its top quota.
func (e *Engine) selectCandidates(snap *catalog.Snapshot, domains []catalog.Domain, p *mood.Profile, band mood.DurationBucket, limit int, user string) map[catalog.Domain][]ScoredCandidate {
	pool := limit * e.cfg.OverFetchFactor
	out := make(map[catalog.Domain][]ScoredCandidate, len(domains))
	for _, d := range domains {
		items := snap.Items(d)
		if len(items) == 0 {
			continue
		}
		ranked := e.rankDomain(items, p, band, user)
		if q := quota(pool, p.Weight(d)); len(ranked) > q {
			ranked = ranked[:q]
		}
		out[d] = ranked
	}
	return out
}
