// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

// Package reranking reorders an already selected list without changing
// its membership.
package reranking

// DefaultMaxRun is the longest run of same-group entries a playlist may
// keep when a swap candidate exists.
const DefaultMaxRun = 2

// BreakRuns reorders items in place so that no more than maxRun
// consecutive entries share a group, as far as a single left-to-right pass
// allows.
//
// When a run of maxRun+1 is found ending at position p, the first later
// entry from a different group is swapped into p. Each detected run gets
// one swap attempt; the scan does not restart, so a run may survive when
// no later entry qualifies. The returned slice is items.
func BreakRuns[T any](items []T, group func(T) string, maxRun int) []T {
	if maxRun < 1 {
		maxRun = DefaultMaxRun
	}
	if len(items) <= maxRun {
		return items
	}

	for i := 0; i+maxRun < len(items); i++ {
		g := group(items[i])
		run := true
		for k := 1; k <= maxRun; k++ {
			if group(items[i+k]) != g {
				run = false
				break
			}
		}
		if !run {
			continue
		}

		p := i + maxRun
		for j := p + 1; j < len(items); j++ {
			if group(items[j]) != g {
				items[p], items[j] = items[j], items[p]
				break
			}
		}
	}
	return items
}

// LongestRun returns the length of the longest run of same-group entries.
func LongestRun[T any](items []T, group func(T) string) int {
	longest, cur := 0, 0
	for i := range items {
		if i > 0 && group(items[i]) == group(items[i-1]) {
			cur++
		} else {
			cur = 1
		}
		if cur > longest {
			longest = cur
		}
	}
	return longest
}
