// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

package recommend

import (
	"math"

	"github.com/tomtom215/moodplay/internal/catalog"
	"github.com/tomtom215/moodplay/internal/recommend/scoring"
)

// round3 rounds to three decimals.
func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}

// newEntry resolves an item into its public shape. Slices are copied so
// callers cannot reach the shared snapshot.
func newEntry(it *catalog.Item, b ScoreBreakdown) PlaylistEntry {
	b = ScoreBreakdown{
		Overall:       round3(scoring.Clamp01(b.Overall)),
		Content:       round3(scoring.Clamp01(b.Content)),
		Collaborative: round3(scoring.Clamp01(b.Collaborative)),
		Mood:          round3(scoring.Clamp01(b.Mood)),
		Time:          round3(scoring.Clamp01(b.Time)),
	}
	return PlaylistEntry{
		Domain:         it.Domain,
		ID:             it.ID,
		ItemID:         it.ItemID,
		Title:          it.Title,
		DurationMin:    it.DurationMin,
		Tags:           append([]string{}, it.Tags...),
		MoodMatch:      append([]string{}, it.MoodTags...),
		Image:          it.Image,
		Score:          b.Overall,
		Difficulty:     it.Difficulty,
		Description:    it.Description,
		ScoreBreakdown: b,
	}
}

// entry converts a scored candidate.
func (c *ScoredCandidate) entry() PlaylistEntry {
	return newEntry(c.Item, ScoreBreakdown{
		Overall:       c.Final,
		Content:       c.Content.Content,
		Collaborative: c.Collaborative,
		Mood:          c.Content.Mood,
		Time:          c.Content.Time,
	})
}

// neutralEntry is used by queries that score on a single signal; every
// other component reports scoring.Neutral.
func neutralEntry(it *catalog.Item) PlaylistEntry {
	return newEntry(it, ScoreBreakdown{
		Overall:       scoring.Neutral,
		Content:       scoring.Neutral,
		Collaborative: scoring.Neutral,
		Mood:          scoring.Neutral,
		Time:          scoring.Neutral,
	})
}
