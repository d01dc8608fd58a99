// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

// Package scoring computes the per-item content score and blends it with
// the collaborative signal.
//
// The content score is a fixed blend of three metadata signals:
//
//	content = 0.4 * mood + 0.3 * difficulty + 0.3 * time
//
// Every function here is pure and returns values in [0, 1].
package scoring

import (
	"math"

	"github.com/tomtom215/moodplay/internal/catalog"
	"github.com/tomtom215/moodplay/internal/recommend/mood"
)

// Neutral is the score used when a signal has nothing to say.
const Neutral = 0.5

const (
	moodWeight       = 0.4
	difficultyWeight = 0.3
	timeWeight       = 0.3

	difficultyPreferred = 1.0
	difficultyFlexible  = 0.7
	difficultyMismatch  = 0.3

	timeOutsideBand = 0.1
	timeFloor       = 0.3
)

// MoodScore measures how much of the smaller tag set is covered by the
// other: |tags ∩ preferred| / min(|tags|, |preferred|). It is intentionally
// asymmetric; symmetric similarity lives in the similarity package. Either
// set being empty yields Neutral.
func MoodScore(itemTags, preferred []string) float64 {
	tags := toSet(itemTags)
	pref := toSet(preferred)
	if len(tags) == 0 || len(pref) == 0 {
		return Neutral
	}

	overlap := 0
	for t := range tags {
		if _, ok := pref[t]; ok {
			overlap++
		}
	}
	return float64(overlap) / float64(min(len(tags), len(pref)))
}

// DifficultyScore gives full credit to preferred difficulties, partial
// credit when the mood accepts more than one level, and a low score
// otherwise.
func DifficultyScore(d catalog.Difficulty, preferred []catalog.Difficulty) float64 {
	for _, p := range preferred {
		if p == d {
			return difficultyPreferred
		}
	}
	if len(preferred) > 1 {
		return difficultyFlexible
	}
	return difficultyMismatch
}

// TimeScore peaks at b.Optimal, decays linearly towards the band edges with
// a floor of 0.3, and drops to 0.1 outside [b.Min, b.Max]. A zero-width band
// scores 1.0 for any duration inside it.
func TimeScore(duration int, b mood.DurationBucket) float64 {
	if duration < b.Min || duration > b.Max {
		return timeOutsideBand
	}
	distance := math.Abs(float64(duration - b.Optimal))
	span := float64(max(b.Optimal-b.Min, b.Max-b.Optimal))
	if span <= 0 {
		return 1.0
	}
	return math.Max(timeFloor, 1.0-distance/span)
}

// Breakdown holds the components of a content score.
type Breakdown struct {
	Mood       float64
	Difficulty float64
	Time       float64
	Content    float64
}

// ContentScore blends the three metadata signals with fixed weights.
func ContentScore(moodScore, difficultyScore, timeScore float64) float64 {
	return moodScore*moodWeight + difficultyScore*difficultyWeight + timeScore*timeWeight
}

// Score computes the full content breakdown of item for a mood profile and
// an already clipped duration band.
func Score(item *catalog.Item, p *mood.Profile, band mood.DurationBucket) Breakdown {
	b := Breakdown{
		Mood:       MoodScore(item.Tags, p.Tags(item.Domain)),
		Difficulty: DifficultyScore(item.Difficulty, p.Difficulties),
		Time:       TimeScore(item.DurationMin, band),
	}
	b.Content = ContentScore(b.Mood, b.Difficulty, b.Time)
	return b
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
