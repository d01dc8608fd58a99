// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

// Package mood holds the static mood profile table: preferred tags and
// weights per domain, difficulty preferences, duration buckets and the
// domain visit order used by playlist curation.
//
// The table is built at package initialization and never modified.
// Unknown moods resolve to the Default profile instead of failing; input
// validation happens at the API boundary.
package mood

import (
	"strings"

	"github.com/tomtom215/moodplay/internal/catalog"
)

// Mood is an affective state that biases recommendations.
type Mood string

const (
	Energized Mood = "energized"
	Calm      Mood = "calm"
	Stressed  Mood = "stressed"
	Happy     Mood = "happy"
	Tired     Mood = "tired"
)

// Default is used for any mood missing from the table.
const Default = Happy

// All lists the supported moods.
var All = []Mood{Energized, Calm, Stressed, Happy, Tired}

// Parse returns the mood named by s and whether it is known.
func Parse(s string) (Mood, bool) {
	m := Mood(strings.ToLower(strings.TrimSpace(s)))
	_, ok := profiles[m]
	return m, ok
}

// NeutralWeight is the domain weight assumed when a profile omits a domain.
const NeutralWeight = 0.33

// Profile is the read-only preference record of one mood.
type Profile struct {
	Mood          Mood
	PreferredTags map[catalog.Domain][]string
	Weights       map[catalog.Domain]float64
	Difficulties  []catalog.Difficulty
	Bucket        BucketName
	Order         []catalog.Domain
}

// Tags returns the preferred tags for a domain (nil if none).
func (p *Profile) Tags(d catalog.Domain) []string {
	return p.PreferredTags[d]
}

// Weight returns the relative playlist share of a domain.
func (p *Profile) Weight(d catalog.Domain) float64 {
	if w, ok := p.Weights[d]; ok {
		return w
	}
	return NeutralWeight
}

// PrefersDifficulty reports whether d is in the preferred set.
func (p *Profile) PrefersDifficulty(d catalog.Difficulty) bool {
	for _, pd := range p.Difficulties {
		if pd == d {
			return true
		}
	}
	return false
}

var defaultOrder = []catalog.Domain{catalog.DomainWorkout, catalog.DomainRecipe, catalog.DomainCourse}

var profiles = map[Mood]*Profile{
	Energized: {
		Mood: Energized,
		PreferredTags: map[catalog.Domain][]string{
			catalog.DomainWorkout: {"hiit", "cardio", "strength", "intense", "dynamic"},
			catalog.DomainRecipe:  {"protein", "energy", "smoothie", "quick", "fresh"},
			catalog.DomainCourse:  {"productivity", "skills", "challenge", "active"},
		},
		Weights: map[catalog.Domain]float64{
			catalog.DomainWorkout: 0.4, catalog.DomainRecipe: 0.3, catalog.DomainCourse: 0.3,
		},
		Difficulties: []catalog.Difficulty{catalog.Intermediate, catalog.Advanced},
		Bucket:       BucketMediumToLong,
		Order:        []catalog.Domain{catalog.DomainWorkout, catalog.DomainRecipe, catalog.DomainCourse},
	},
	Calm: {
		Mood: Calm,
		PreferredTags: map[catalog.Domain][]string{
			catalog.DomainWorkout: {"yoga", "stretching", "meditation", "gentle", "relaxing"},
			catalog.DomainRecipe:  {"comfort", "warm", "herbal", "soothing", "mindful"},
			catalog.DomainCourse:  {"mindfulness", "art", "philosophy", "gentle", "reflection"},
		},
		Weights: map[catalog.Domain]float64{
			catalog.DomainWorkout: 0.3, catalog.DomainRecipe: 0.4, catalog.DomainCourse: 0.3,
		},
		Difficulties: []catalog.Difficulty{catalog.Beginner, catalog.Intermediate},
		Bucket:       BucketMedium,
		Order:        []catalog.Domain{catalog.DomainCourse, catalog.DomainRecipe, catalog.DomainWorkout},
	},
	Stressed: {
		Mood: Stressed,
		PreferredTags: map[catalog.Domain][]string{
			catalog.DomainWorkout: {"yoga", "breathing", "meditation", "stress-relief", "gentle"},
			catalog.DomainRecipe:  {"comfort", "simple", "quick", "healthy", "calming"},
			catalog.DomainCourse:  {"stress-management", "mindfulness", "simple", "practical"},
		},
		Weights: map[catalog.Domain]float64{
			catalog.DomainWorkout: 0.4, catalog.DomainRecipe: 0.3, catalog.DomainCourse: 0.3,
		},
		Difficulties: []catalog.Difficulty{catalog.Beginner},
		Bucket:       BucketShortToMedium,
		Order:        []catalog.Domain{catalog.DomainWorkout, catalog.DomainCourse, catalog.DomainRecipe},
	},
	Happy: {
		Mood: Happy,
		PreferredTags: map[catalog.Domain][]string{
			catalog.DomainWorkout: {"fun", "dance", "social", "energetic", "playful"},
			catalog.DomainRecipe:  {"colorful", "creative", "social", "celebration", "variety"},
			catalog.DomainCourse:  {"creative", "social", "fun", "exploration", "variety"},
		},
		Weights: map[catalog.Domain]float64{
			catalog.DomainWorkout: 0.35, catalog.DomainRecipe: 0.35, catalog.DomainCourse: 0.3,
		},
		Difficulties: []catalog.Difficulty{catalog.Beginner, catalog.Intermediate, catalog.Advanced},
		Bucket:       BucketFlexible,
		Order:        defaultOrder,
	},
	Tired: {
		Mood: Tired,
		PreferredTags: map[catalog.Domain][]string{
			catalog.DomainWorkout: {"gentle", "restorative", "stretching", "low-impact", "recovery"},
			catalog.DomainRecipe:  {"energizing", "nutritious", "simple", "vitamin", "boost"},
			catalog.DomainCourse:  {"light", "inspiring", "motivational", "easy", "short"},
		},
		Weights: map[catalog.Domain]float64{
			catalog.DomainWorkout: 0.2, catalog.DomainRecipe: 0.4, catalog.DomainCourse: 0.4,
		},
		Difficulties: []catalog.Difficulty{catalog.Beginner},
		Bucket:       BucketShort,
		Order:        []catalog.Domain{catalog.DomainRecipe, catalog.DomainCourse, catalog.DomainWorkout},
	},
}

// Preferences returns the profile for m, or the Default profile when m is
// not in the table. The returned profile is shared and must not be modified.
func Preferences(m Mood) *Profile {
	if p, ok := profiles[m]; ok {
		return p
	}
	return profiles[Default]
}

// DomainWeights returns a fresh map with the weight of every domain.
func DomainWeights(m Mood) map[catalog.Domain]float64 {
	p := Preferences(m)
	out := make(map[catalog.Domain]float64, len(catalog.Domains))
	for _, d := range catalog.Domains {
		out[d] = p.Weight(d)
	}
	return out
}

// DomainOrder returns the curation visit order for m.
func DomainOrder(m Mood) []catalog.Domain {
	if order := Preferences(m).Order; len(order) > 0 {
		return order
	}
	return defaultOrder
}
