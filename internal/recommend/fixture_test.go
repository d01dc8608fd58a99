// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

package recommend

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moodplay/internal/catalog"
	"github.com/tomtom215/moodplay/internal/recommend/affinity"
)

type staticCatalog struct {
	snap *catalog.Snapshot
}

func (s staticCatalog) Snapshot() *catalog.Snapshot { return s.snap }

func item(d catalog.Domain, id, title string, dur int, tags, moods string, diff catalog.Difficulty) catalog.Item {
	it := catalog.NewItem(d, id, title, dur, catalog.SplitTags(tags), catalog.SplitTags(moods))
	it.Difficulty = diff
	return it
}

func fixtureSnapshot() *catalog.Snapshot {
	w, r, c := catalog.DomainWorkout, catalog.DomainRecipe, catalog.DomainCourse
	return catalog.NewSnapshot([]catalog.Item{
		item(w, "1", "Morning Yoga", 20, "yoga,stretching,gentle", "calm", catalog.Beginner),
		item(w, "2", "HIIT Blast", 25, "hiit,cardio,intense", "energized", catalog.Advanced),
		item(w, "3", "Evening Stretch", 15, "stretching,relaxing,gentle", "calm,tired", catalog.Beginner),
		item(w, "4", "Power Yoga", 30, "yoga,strength", "energized", catalog.Intermediate),
		item(w, "5", "Dance Cardio", 40, "dance,fun,cardio", "happy", catalog.Intermediate),
		item(w, "6", "Gentle Flow", 25, "yoga,gentle,meditation", "calm", catalog.Beginner),
		item(w, "7", "Restorative Stretch", 10, "stretching,restorative", "tired", catalog.Beginner),
		item(r, "1", "Herbal Tea Latte", 10, "herbal,warm,soothing", "calm", catalog.Beginner),
		item(r, "2", "Protein Smoothie", 5, "protein,smoothie,quick", "energized", catalog.Beginner),
		item(r, "3", "Comfort Soup", 35, "comfort,warm", "calm,stressed", catalog.Intermediate),
		item(c, "1", "Mindfulness 101", 30, "mindfulness,reflection", "calm", catalog.Beginner),
		item(c, "2", "Watercolor Basics", 45, "art,creative", "happy", catalog.Beginner),
		item(c, "3", "Productivity Hacks", 20, "productivity,skills", "energized", catalog.Intermediate),
	})
}

func newTestEngine(t *testing.T, cfg *Config, p affinity.Predictor) *Engine {
	t.Helper()
	e, err := NewEngine(cfg, staticCatalog{snap: fixtureSnapshot()}, p, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e
}
