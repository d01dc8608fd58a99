// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

package catalog

import (
	"reflect"
	"testing"
)

func sampleItems() []Item {
	return []Item{
		NewItem(DomainWorkout, "1", "HIIT", 20, []string{"hiit"}, []string{"energized"}),
		NewItem(DomainWorkout, "2", "Yoga", 45, []string{"yoga"}, []string{"calm"}),
		NewItem(DomainRecipe, "1", "Smoothie", 5, []string{"smoothie"}, []string{"tired", "energized"}),
		NewItem(DomainWorkout, "1", "Duplicate", 99, nil, nil),
		{ID: "9", Domain: Domain("podcast"), Title: "Ignored"},
	}
}

func TestNewSnapshot(t *testing.T) {
	t.Parallel()

	s := NewSnapshot(sampleItems())

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	workouts := s.Items(DomainWorkout)
	if len(workouts) != 2 || workouts[0].Title != "HIIT" || workouts[1].Title != "Yoga" {
		t.Errorf("workouts = %v, want HIIT then Yoga", workouts)
	}
	if got, ok := s.ItemByID("workout_1"); !ok || got.Title != "HIIT" {
		t.Errorf("ItemByID(workout_1) = %v, %v; first row must win", got, ok)
	}
	if _, ok := s.ItemByID("podcast_9"); ok {
		t.Error("unknown domain should be dropped")
	}
	if len(s.Items(DomainCourse)) != 0 {
		t.Error("courses should be empty")
	}
}

func TestSnapshotMetadata(t *testing.T) {
	t.Parallel()

	md := NewSnapshot(sampleItems()).Metadata()

	if md.TotalItems != 3 {
		t.Errorf("TotalItems = %d, want 3", md.TotalItems)
	}
	wantDomains := map[string]int{"workouts": 2, "recipes": 1, "courses": 0}
	if !reflect.DeepEqual(md.Domains, wantDomains) {
		t.Errorf("Domains = %v, want %v", md.Domains, wantDomains)
	}
	wantMoods := []string{"calm", "energized", "tired"}
	if !reflect.DeepEqual(md.Moods, wantMoods) {
		t.Errorf("Moods = %v, want %v", md.Moods, wantMoods)
	}
	if md.DurationRange != (DurationRange{Min: 5, Max: 45}) {
		t.Errorf("DurationRange = %+v, want 5..45", md.DurationRange)
	}
}

func TestEmptySnapshotMetadata(t *testing.T) {
	t.Parallel()

	md := NewSnapshot(nil).Metadata()
	if md.TotalItems != 0 || md.DurationRange != (DurationRange{}) {
		t.Errorf("empty metadata = %+v", md)
	}
	if md.Moods == nil {
		t.Error("Moods should be an empty slice, not nil")
	}
}
