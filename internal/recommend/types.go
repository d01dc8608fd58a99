// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

package recommend

import (
	"strings"

	"github.com/tomtom215/moodplay/internal/catalog"
	"github.com/tomtom215/moodplay/internal/recommend/mood"
	"github.com/tomtom215/moodplay/internal/recommend/scoring"
)

// Interest selects catalog domains.
type Interest string

const (
	// InterestLifestyle activates workouts and recipes.
	InterestLifestyle Interest = "lifestyle"

	// InterestLearning activates courses.
	InterestLearning Interest = "learning"
)

// AllInterests lists the supported interests.
var AllInterests = []Interest{InterestLifestyle, InterestLearning}

// ParseInterest normalizes s.
func ParseInterest(s string) (Interest, bool) {
	switch i := Interest(strings.ToLower(strings.TrimSpace(s))); i {
	case InterestLifestyle, InterestLearning:
		return i, true
	}
	return "", false
}

// ActiveDomains maps interests to domains in catalog order. No recognised
// interest activates every domain.
func ActiveDomains(interests []Interest) []catalog.Domain {
	want := make(map[catalog.Domain]bool, len(catalog.Domains))
	for _, in := range interests {
		switch in {
		case InterestLifestyle:
			want[catalog.DomainWorkout] = true
			want[catalog.DomainRecipe] = true
		case InterestLearning:
			want[catalog.DomainCourse] = true
		}
	}
	if len(want) == 0 {
		return append([]catalog.Domain(nil), catalog.Domains...)
	}
	out := make([]catalog.Domain, 0, len(want))
	for _, d := range catalog.Domains {
		if want[d] {
			out = append(out, d)
		}
	}
	return out
}

// Request is a playlist request. Inputs are expected to be validated at
// the boundary; the engine only applies its documented fallbacks (unknown
// mood uses mood.Default, non-positive Limit uses the configured default).
type Request struct {
	Mood             mood.Mood
	AvailableMinutes int
	Interests        []Interest
	Limit            int

	// UserSession identifies the caller for collaborative scoring. Empty
	// means anonymous.
	UserSession string
}

// ScoreBreakdown is the rounded per-entry score detail.
type ScoreBreakdown struct {
	Overall       float64 `json:"overall"`
	Content       float64 `json:"content"`
	Collaborative float64 `json:"collaborative"`
	Mood          float64 `json:"mood"`
	Time          float64 `json:"time"`
}

// PlaylistEntry is one item as returned to clients.
type PlaylistEntry struct {
	Domain         catalog.Domain     `json:"domain"`
	ID             string             `json:"id"`
	ItemID         string             `json:"item_id"`
	Title          string             `json:"title"`
	DurationMin    int                `json:"duration_min"`
	Tags           []string           `json:"tags"`
	MoodMatch      []string           `json:"mood_match"`
	Image          string             `json:"image"`
	Score          float64            `json:"score"`
	Difficulty     catalog.Difficulty `json:"difficulty"`
	Description    string             `json:"description"`
	ScoreBreakdown ScoreBreakdown     `json:"score_breakdown"`
}

// Playlist is the response of Engine.Recommend.
type Playlist struct {
	Playlist         []PlaylistEntry `json:"playlist"`
	TotalDuration    int             `json:"total_duration"`
	Mood             mood.Mood       `json:"mood"`
	AvailableMinutes int             `json:"available_minutes"`
	Interests        []Interest      `json:"interests"`
}

// SimilarResult is the response of Engine.Similar.
type SimilarResult struct {
	ItemID       string          `json:"item_id"`
	SimilarItems []PlaylistEntry `json:"similar_items"`
	Count        int             `json:"count"`
}

// Clone returns a copy whose entry slice can be modified independently.
func (r *SimilarResult) Clone() *SimilarResult {
	cp := *r
	cp.SimilarItems = make([]PlaylistEntry, len(r.SimilarItems))
	copy(cp.SimilarItems, r.SimilarItems)
	return &cp
}

// QuickResult is the response of Engine.Quick. Domain is nil when every
// domain was searched.
type QuickResult struct {
	AvailableMinutes int             `json:"available_minutes"`
	Domain           *catalog.Domain `json:"domain"`
	Suggestions      []PlaylistEntry `json:"suggestions"`
	Count            int             `json:"count"`
}

// ScoredCandidate is an item scored for one request. It is never shared
// between requests.
type ScoredCandidate struct {
	Item          *catalog.Item
	Content       scoring.Breakdown
	Collaborative float64
	Final         float64
}
