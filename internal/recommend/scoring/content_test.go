// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

package scoring

import (
	"math"
	"testing"

	"github.com/tomtom215/moodplay/internal/catalog"
	"github.com/tomtom215/moodplay/internal/recommend/mood"
)

const eps = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestMoodScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		tags      []string
		preferred []string
		want      float64
	}{
		{"empty item tags", nil, []string{"yoga"}, Neutral},
		{"empty preferred", []string{"yoga"}, nil, Neutral},
		{"no overlap", []string{"hiit"}, []string{"yoga", "gentle"}, 0},
		{"subset containment", []string{"yoga"}, []string{"yoga", "gentle", "stretching"}, 1},
		{"partial", []string{"yoga", "hiit", "cardio", "dance"}, []string{"yoga", "gentle"}, 0.5},
		{"duplicates ignored", []string{"yoga", "yoga"}, []string{"yoga", "gentle"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := MoodScore(tt.tags, tt.preferred); !almostEqual(got, tt.want) {
				t.Errorf("MoodScore(%v, %v) = %v, want %v", tt.tags, tt.preferred, got, tt.want)
			}
		})
	}
}

func TestDifficultyScore(t *testing.T) {
	t.Parallel()

	flexible := []catalog.Difficulty{catalog.Beginner, catalog.Intermediate}
	strict := []catalog.Difficulty{catalog.Beginner}

	tests := []struct {
		name      string
		d         catalog.Difficulty
		preferred []catalog.Difficulty
		want      float64
	}{
		{"preferred", catalog.Beginner, strict, 1.0},
		{"flexible mismatch", catalog.Advanced, flexible, 0.7},
		{"strict mismatch", catalog.Advanced, strict, 0.3},
		{"no preference", catalog.Advanced, nil, 0.3},
	}
	for _, tt := range tests {
		if got := DifficultyScore(tt.d, tt.preferred); got != tt.want {
			t.Errorf("%s: DifficultyScore = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestTimeScore(t *testing.T) {
	t.Parallel()

	band := mood.DurationBucket{Min: 15, Max: 45, Optimal: 30}
	tests := []struct {
		name     string
		duration int
		band     mood.DurationBucket
		want     float64
	}{
		{"optimal", 30, band, 1.0},
		{"below band", 10, band, 0.1},
		{"above band", 50, band, 0.1},
		{"lower edge floored", 15, band, 0.3},
		{"halfway", 37, band, 1 - 7.0/15.0},
		{"zero width band", 10, mood.DurationBucket{Min: 10, Max: 10, Optimal: 10}, 1.0},
		{"zero width outside", 11, mood.DurationBucket{Min: 10, Max: 10, Optimal: 10}, 0.1},
		{"asymmetric band", 5, mood.DurationBucket{Min: 5, Max: 120, Optimal: 45}, 1 - 40.0/75.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TimeScore(tt.duration, tt.band); !almostEqual(got, tt.want) {
				t.Errorf("TimeScore(%d, %+v) = %v, want %v", tt.duration, tt.band, got, tt.want)
			}
		})
	}
}

func TestTimeScoreUnimodal(t *testing.T) {
	t.Parallel()

	for _, m := range mood.All {
		for _, available := range []int{1, 5, 10, 30, 60, 120} {
			band := mood.DurationBucketFor(m, available)
			peak := TimeScore(band.Optimal, band)
			for d := band.Min; d <= band.Max; d++ {
				s := TimeScore(d, band)
				if s > peak+eps {
					t.Fatalf("%s/%d: score(%d)=%v exceeds score(optimal)=%v", m, available, d, s, peak)
				}
				if s < 0 || s > 1 {
					t.Fatalf("%s/%d: score(%d)=%v out of range", m, available, d, s)
				}
			}
		}
	}
}

func TestScore(t *testing.T) {
	t.Parallel()

	item := catalog.NewItem(catalog.DomainWorkout, "1", "Yoga", 30, []string{"yoga", "gentle"}, []string{"calm"})
	item.Difficulty = catalog.Beginner

	p := mood.Preferences(mood.Calm)
	band := mood.DurationBucketFor(mood.Calm, 60)
	got := Score(&item, p, band)

	if got.Mood != 1 || got.Difficulty != 1 || got.Time != 1 {
		t.Errorf("Score breakdown = %+v, want all 1", got)
	}
	if !almostEqual(got.Content, 1) {
		t.Errorf("Content = %v, want 1", got.Content)
	}

	item.Tags = nil
	item.Difficulty = catalog.Advanced
	got = Score(&item, p, band)
	want := ContentScore(Neutral, 0.7, 1)
	if !almostEqual(got.Content, want) {
		t.Errorf("Content = %v, want %v", got.Content, want)
	}
}
