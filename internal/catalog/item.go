// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

package catalog

import "strings"

// Domain is one of the three catalog categories.
type Domain string

const (
	DomainWorkout Domain = "workout"
	DomainRecipe  Domain = "recipe"
	DomainCourse  Domain = "course"
)

// Domains lists every domain in canonical order.
var Domains = []Domain{DomainWorkout, DomainRecipe, DomainCourse}

// ParseDomain accepts a singular or plural domain name.
func ParseDomain(s string) (Domain, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "workout", "workouts":
		return DomainWorkout, true
	case "recipe", "recipes":
		return DomainRecipe, true
	case "course", "courses":
		return DomainCourse, true
	}
	return "", false
}

// Valid reports whether d is one of Domains.
func (d Domain) Valid() bool {
	return d == DomainWorkout || d == DomainRecipe || d == DomainCourse
}

// Plural returns the collection name, e.g. "workouts".
func (d Domain) Plural() string {
	return string(d) + "s"
}

// DefaultImage is the image path substituted when a row has none.
func (d Domain) DefaultImage() string {
	return "/images/" + d.Plural() + "/default.jpg"
}

// Difficulty is the effort level of an item.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// ParseDifficulty normalizes s; unknown or empty values become Intermediate.
func ParseDifficulty(s string) Difficulty {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case Beginner, Intermediate, Advanced:
		return d
	}
	return Intermediate
}

// Substitution defaults applied once at ingestion.
const (
	DefaultDuration = 30
	DefaultMoodTag  = "happy"
)

// Item is a normalized catalog entry. Items are created by the loader and
// never mutated afterwards; treat every field as read-only.
type Item struct {
	ID          string     `json:"id"`
	ItemID      string     `json:"item_id"`
	Domain      Domain     `json:"domain"`
	Title       string     `json:"title"`
	DurationMin int        `json:"duration_min"`
	Tags        []string   `json:"tags"`
	MoodTags    []string   `json:"mood_tags"`
	Difficulty  Difficulty `json:"difficulty"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
	Type        string     `json:"type,omitempty"`
}

// ItemKey builds the catalog-wide identifier "{domain}_{id}".
func ItemKey(domain Domain, id string) string {
	return string(domain) + "_" + id
}

// NewItem builds an Item with every substitution default resolved. Tags
// and mood tags are lowercased, trimmed and de-duplicated in order.
func NewItem(domain Domain, id, title string, duration int, tags, moodTags []string) Item {
	it := Item{
		ID:          id,
		ItemID:      ItemKey(domain, id),
		Domain:      domain,
		Title:       title,
		DurationMin: duration,
		Tags:        NormalizeTags(tags),
		MoodTags:    NormalizeTags(moodTags),
		Difficulty:  Intermediate,
		Image:       domain.DefaultImage(),
	}
	if it.DurationMin < 0 {
		it.DurationMin = DefaultDuration
	}
	if len(it.MoodTags) == 0 {
		it.MoodTags = []string{DefaultMoodTag}
	}
	return it
}

// NormalizeTags lowercases and trims tags, dropping empties and repeats.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// SplitTags parses a comma-joined tag cell.
func SplitTags(cell string) []string {
	if strings.TrimSpace(cell) == "" {
		return []string{}
	}
	return NormalizeTags(strings.Split(cell, ","))
}
