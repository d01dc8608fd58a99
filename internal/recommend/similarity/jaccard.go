// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

// Package similarity finds catalog items that share tags with a given item.
// It ignores mood and time entirely.
package similarity

import (
	"sort"

	"github.com/tomtom215/moodplay/internal/catalog"
)

// MinSimilarity is the exclusive lower bound a candidate must exceed.
const MinSimilarity = 0.1

// Jaccard returns |A∩B| / |A∪B| treating a and b as sets. Two empty sets
// give 0.
func Jaccard(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}

	setA := make(map[string]struct{}, len(a))
	for _, s := range a {
		setA[s] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, s := range b {
		setB[s] = struct{}{}
	}

	intersection := 0
	for s := range setA {
		if _, ok := setB[s]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// Match is a similar item with its Jaccard similarity.
type Match struct {
	Item       *catalog.Item
	Similarity float64
}

// Catalog is the read side Similar needs.
type Catalog interface {
	ItemByID(itemID string) (*catalog.Item, bool)
	Items(domain catalog.Domain) []*catalog.Item
}

// Scores returns the tag similarity of every other item in itemID's
// domain, keyed by item ID. Items with no overlap are omitted; an unknown
// itemID yields nil.
func Scores(c Catalog, itemID string) map[string]float64 {
	src, ok := c.ItemByID(itemID)
	if !ok {
		return nil
	}

	candidates := c.Items(src.Domain)
	scores := make(map[string]float64, len(candidates))
	for _, cand := range candidates {
		if cand.ItemID == src.ItemID {
			continue
		}
		if score := Jaccard(src.Tags, cand.Tags); score > 0 {
			scores[cand.ItemID] = score
		}
	}
	return scores
}

// Similar returns up to limit items of the same domain as itemID whose tag
// similarity exceeds MinSimilarity, most similar first. Ties keep catalog
// order. An unknown itemID yields nil.
func Similar(c Catalog, itemID string, limit int) []Match {
	if limit <= 0 {
		return nil
	}
	src, ok := c.ItemByID(itemID)
	if !ok {
		return nil
	}
	scores := Scores(c, itemID)

	var matches []Match
	for _, cand := range c.Items(src.Domain) {
		if sim, ok := scores[cand.ItemID]; ok && sim > MinSimilarity {
			matches = append(matches, Match{Item: cand, Similarity: sim})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
