// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

package recommend

import (
	"testing"

	"github.com/tomtom215/moodplay/internal/config"
)

func TestConfigFromSettings(t *testing.T) {
	t.Parallel()

	t.Run("service defaults match engine defaults", func(t *testing.T) {
		t.Parallel()
		got := ConfigFromSettings(&config.Default().Recommend)
		if *got != *DefaultConfig() {
			t.Errorf("ConfigFromSettings(default) = %+v, want %+v", *got, *DefaultConfig())
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Parallel()
		rc := config.Default().Recommend
		rc.DefaultLimit = 8
		rc.SimilarLimit = 3
		rc.ContentWeight = 1
		rc.CollaborativeWeight = 0
		rc.CollaborativeEnabled = false

		got := ConfigFromSettings(&rc)
		if got.DefaultLimit != 8 || got.SimilarLimit != 3 {
			t.Errorf("limits = %d/%d, want 8/3", got.DefaultLimit, got.SimilarLimit)
		}
		if got.ContentWeight != 1 || got.CollaborativeWeight != 0 || got.CollaborativeEnabled {
			t.Errorf("weights = %v/%v enabled=%v", got.ContentWeight, got.CollaborativeWeight, got.CollaborativeEnabled)
		}
		if err := got.Validate(); err != nil {
			t.Errorf("Validate() = %v", err)
		}
	})

	t.Run("nil", func(t *testing.T) {
		t.Parallel()
		if got := ConfigFromSettings(nil); *got != *DefaultConfig() {
			t.Errorf("ConfigFromSettings(nil) = %+v", *got)
		}
	})
}
