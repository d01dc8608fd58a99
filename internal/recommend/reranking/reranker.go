// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

package reranking

// Reranker reorders a selected list for a secondary objective. Rerank
// returns at most k entries; k <= 0 keeps all of them.
type Reranker[T any] interface {
	Name() string
	Rerank(items []T, k int) []T
}

// RunBreaker is a Reranker that spreads out same-group runs with
// BreakRuns. Membership is never changed beyond the k cut.
type RunBreaker[T any] struct {
	Group  func(T) string
	MaxRun int
}

// NewRunBreaker creates a RunBreaker. maxRun < 1 falls back to
// DefaultMaxRun.
func NewRunBreaker[T any](group func(T) string, maxRun int) *RunBreaker[T] {
	if maxRun < 1 {
		maxRun = DefaultMaxRun
	}
	return &RunBreaker[T]{Group: group, MaxRun: maxRun}
}

// Name returns the reranker name.
func (r *RunBreaker[T]) Name() string {
	return "run-breaker"
}

// Rerank implements Reranker.
func (r *RunBreaker[T]) Rerank(items []T, k int) []T {
	out := BreakRuns(items, r.Group, r.MaxRun)
	if k > 0 && len(out) > k {
		out = out[:k]
	}
	return out
}
