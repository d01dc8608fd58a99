// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

package catalog

import (
	"reflect"
	"testing"
)

func TestParseDomain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Domain
		ok   bool
	}{
		{"workout", DomainWorkout, true},
		{"Recipes", DomainRecipe, true},
		{" course ", DomainCourse, true},
		{"podcast", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseDomain(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseDomain(%q) = %q, %v, want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDomainDefaultImage(t *testing.T) {
	t.Parallel()

	if got := DomainRecipe.DefaultImage(); got != "/images/recipes/default.jpg" {
		t.Errorf("DefaultImage() = %q, want /images/recipes/default.jpg", got)
	}
}

func TestParseDifficulty(t *testing.T) {
	t.Parallel()

	tests := map[string]Difficulty{
		"beginner":  Beginner,
		"ADVANCED":  Advanced,
		"":          Intermediate,
		"expert":    Intermediate,
		" beginner": Beginner,
	}
	for in, want := range tests {
		if got := ParseDifficulty(in); got != want {
			t.Errorf("ParseDifficulty(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSplitTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want []string
	}{
		{"hiit, Cardio ,hiit", []string{"hiit", "cardio"}},
		{"", []string{}},
		{" , ,", []string{}},
		{"Yoga", []string{"yoga"}},
	}
	for _, tt := range tests {
		if got := SplitTags(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitTags(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewItemSubstitutions(t *testing.T) {
	t.Parallel()

	it := NewItem(DomainCourse, "7", "Intro", -5, nil, nil)

	if it.ItemID != "course_7" {
		t.Errorf("ItemID = %q, want course_7", it.ItemID)
	}
	if it.DurationMin != DefaultDuration {
		t.Errorf("DurationMin = %d, want %d", it.DurationMin, DefaultDuration)
	}
	if !reflect.DeepEqual(it.MoodTags, []string{"happy"}) {
		t.Errorf("MoodTags = %v, want [happy]", it.MoodTags)
	}
	if it.Tags == nil || len(it.Tags) != 0 {
		t.Errorf("Tags = %#v, want empty non-nil slice", it.Tags)
	}
	if it.Difficulty != Intermediate {
		t.Errorf("Difficulty = %q, want intermediate", it.Difficulty)
	}
	if it.Image != "/images/courses/default.jpg" {
		t.Errorf("Image = %q, want default course image", it.Image)
	}
}
