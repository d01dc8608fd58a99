// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

package mood

import "testing"

func TestDurationBucketFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mood      Mood
		available int
		want      DurationBucket
	}{
		{"energized roomy budget", Energized, 120, DurationBucket{Min: 30, Max: 90, Optimal: 60}},
		{"energized tight budget", Energized, 10, DurationBucket{Min: 10, Max: 10, Optimal: 10}},
		{"calm hour", Calm, 60, DurationBucket{Min: 15, Max: 45, Optimal: 30}},
		{"calm half hour", Calm, 30, DurationBucket{Min: 15, Max: 30, Optimal: 30}},
		{"tired one minute", Tired, 1, DurationBucket{Min: 0, Max: 1, Optimal: 1}},
		{"stressed five", Stressed, 5, DurationBucket{Min: 5, Max: 5, Optimal: 5}},
		{"unknown mood uses flexible", Mood("x"), 60, DurationBucket{Min: 5, Max: 60, Optimal: 45}},
		{"zero budget", Happy, 0, DurationBucket{Min: 0, Max: 0, Optimal: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := DurationBucketFor(tt.mood, tt.available)
			if got != tt.want {
				t.Errorf("DurationBucketFor(%q, %d) = %+v, want %+v", tt.mood, tt.available, got, tt.want)
			}
			if got.Min > got.Max || got.Max > tt.available {
				t.Errorf("band %+v violates min <= max <= %d", got, tt.available)
			}
		})
	}
}

func TestBucketUnknownName(t *testing.T) {
	t.Parallel()

	if got := Bucket(BucketName("weekend")); got != Bucket(BucketFlexible) {
		t.Errorf("Bucket(unknown) = %+v, want flexible", got)
	}
}
