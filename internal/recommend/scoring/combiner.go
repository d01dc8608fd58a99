// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

package scoring

import (
	"errors"
	"fmt"
	"math"
)

// Default blend weights.
const (
	DefaultContentWeight       = 0.7
	DefaultCollaborativeWeight = 0.3
)

// Combiner blends content and collaborative scores:
//
//	final = ContentWeight*content + CollaborativeWeight*collaborative
type Combiner struct {
	ContentWeight       float64
	CollaborativeWeight float64
}

// DefaultCombiner returns the 0.7 / 0.3 blend.
func DefaultCombiner() Combiner {
	return Combiner{ContentWeight: DefaultContentWeight, CollaborativeWeight: DefaultCollaborativeWeight}
}

// Validate checks that both weights lie in [0,1] and sum to at most 1 so
// that the blend of two [0,1] scores stays in [0,1].
func (c Combiner) Validate() error {
	if c.ContentWeight < 0 || c.ContentWeight > 1 {
		return fmt.Errorf("content weight must be in [0,1], got %v", c.ContentWeight)
	}
	if c.CollaborativeWeight < 0 || c.CollaborativeWeight > 1 {
		return fmt.Errorf("collaborative weight must be in [0,1], got %v", c.CollaborativeWeight)
	}
	if c.ContentWeight+c.CollaborativeWeight > 1+1e-9 {
		return errors.New("content and collaborative weights must sum to at most 1")
	}
	return nil
}

// Combine returns the blended score clamped to [0,1].
func (c Combiner) Combine(content, collaborative float64) float64 {
	return Clamp01(c.ContentWeight*content + c.CollaborativeWeight*collaborative)
}

// Clamp01 limits v to [0,1]; NaN becomes Neutral.
func Clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return Neutral
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
