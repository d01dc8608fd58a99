// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

package recommend

import (
	"sort"

	"github.com/tomtom215/moodplay/internal/catalog"
	"github.com/tomtom215/moodplay/internal/recommend/reranking"
)

// curate picks at most limit candidates whose durations fit the budget in
// the order they are chosen, then hands them to rr for run repair.
//
// order is the mood's visit order for the seeding pass; domains is the
// active-domain order used to pool leftovers.
func curate(cands map[catalog.Domain][]ScoredCandidate, order, domains []catalog.Domain, available, limit int, rr reranking.Reranker[ScoredCandidate]) []ScoredCandidate {
	remainingTime := available
	remainingSlots := limit
	picked := make([]ScoredCandidate, 0, limit)
	taken := make(map[catalog.Domain]map[int]bool, len(cands))

	take := func(d catalog.Domain, i int) {
		c := cands[d][i]
		picked = append(picked, c)
		remainingTime -= c.Item.DurationMin
		remainingSlots--
		if taken[d] == nil {
			taken[d] = make(map[int]bool)
		}
		taken[d][i] = true
	}

	// Pass 1: one seed per domain in mood order.
	for _, d := range order {
		if remainingSlots <= 0 {
			break
		}
		for i, c := range cands[d] {
			if c.Item.DurationMin <= remainingTime {
				take(d, i)
				break
			}
		}
	}

	// Pass 2: best remaining across domains.
	type ref struct {
		domain catalog.Domain
		index  int
	}
	var rest []ref
	for _, d := range domains {
		for i := range cands[d] {
			if !taken[d][i] {
				rest = append(rest, ref{domain: d, index: i})
			}
		}
	}
	sort.SliceStable(rest, func(i, j int) bool {
		return cands[rest[i].domain][rest[i].index].Final > cands[rest[j].domain][rest[j].index].Final
	})
	for _, r := range rest {
		if remainingSlots <= 0 {
			break
		}
		if cands[r.domain][r.index].Item.DurationMin <= remainingTime {
			take(r.domain, r.index)
		}
	}

	return rr.Rerank(picked, limit)
}

// domainRunBreaker spreads out same-domain runs longer than maxRun.
func domainRunBreaker(maxRun int) reranking.Reranker[ScoredCandidate] {
	return reranking.NewRunBreaker(func(c ScoredCandidate) string {
		return string(c.Item.Domain)
	}, maxRun)
}
