// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

// Package recommend builds mood-aware, time-budgeted playlists of workouts,
// recipes and courses.
//
// # Pipeline
//
//	catalog snapshot -> content scoring (+ collaborative affinity)
//	                 -> per-domain ranking and quotas
//	                 -> two-pass budgeted curation
//	                 -> diversity repair
//
// Every request reads one immutable catalog snapshot and builds only
// request-scoped state, so the Engine is safe for concurrent use without
// per-request locking. Identical inputs against the same snapshot and
// affinity model produce identical playlists.
//
// # Curation
//
// Pass 1 walks the mood's domain order and seeds the playlist with the best
// fitting item of each domain. Pass 2 pools the remaining candidates, sorts
// them by final score and fills the leftover slots greedily while the time
// budget allows. Neither pass backtracks, so the result is not guaranteed
// to be score-optimal or to use the whole budget.
//
// Per-domain quotas floor(candidates * weight), with a minimum of one, may
// add up to more than the candidate count. Curation still caps the
// playlist at the requested limit.
//
// # Sub-packages
//
//   - mood: mood profiles and duration buckets
//   - scoring: content scorer and score combiner
//   - affinity: collaborative score sources
//   - reranking: run-breaking diversity repair
//   - similarity: Jaccard tag similarity
package recommend
