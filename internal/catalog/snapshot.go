// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

package catalog

import (
	"sort"
	"time"
)

// Snapshot is an immutable view of the catalog. A reload builds a new
// Snapshot; an existing one is never modified.
type Snapshot struct {
	byDomain map[Domain][]*Item
	byID     map[string]*Item
	total    int
	loadedAt time.Time
	version  uint64
}

// NewSnapshot groups items by domain preserving input order. When two items
// share an ItemID the first one wins.
func NewSnapshot(items []Item) *Snapshot {
	s := &Snapshot{
		byDomain: make(map[Domain][]*Item, len(Domains)),
		byID:     make(map[string]*Item, len(items)),
		loadedAt: time.Now().UTC(),
	}
	for i := range items {
		it := items[i]
		if !it.Domain.Valid() {
			continue
		}
		if it.ItemID == "" {
			it.ItemID = ItemKey(it.Domain, it.ID)
		}
		if _, dup := s.byID[it.ItemID]; dup {
			continue
		}
		p := &it
		s.byID[it.ItemID] = p
		s.byDomain[it.Domain] = append(s.byDomain[it.Domain], p)
		s.total++
	}
	return s
}

// emptySnapshot is served before the first successful load.
var emptySnapshot = NewSnapshot(nil)

// Items returns the items of a domain in ingestion order. The returned
// slice is shared and must not be modified.
func (s *Snapshot) Items(domain Domain) []*Item {
	return s.byDomain[domain]
}

// ItemByID looks up an item by its "{domain}_{id}" identifier.
func (s *Snapshot) ItemByID(itemID string) (*Item, bool) {
	it, ok := s.byID[itemID]
	return it, ok
}

// Len is the total number of items.
func (s *Snapshot) Len() int {
	return s.total
}

// LoadedAt is when the snapshot was built.
func (s *Snapshot) LoadedAt() time.Time {
	return s.loadedAt
}

// Version increases by one on every swap into a Store.
func (s *Snapshot) Version() uint64 {
	return s.version
}

// DurationRange is the min/max duration across the catalog.
type DurationRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Metadata summarizes a snapshot.
type Metadata struct {
	TotalItems    int            `json:"total_items"`
	Domains       map[string]int `json:"domains"`
	Moods         []string       `json:"moods"`
	DurationRange DurationRange  `json:"duration_range"`
}

// Metadata computes item counts per domain, the distinct mood tags (sorted)
// and the duration range. An empty catalog reports a 0..0 range.
func (s *Snapshot) Metadata() Metadata {
	md := Metadata{
		Domains: make(map[string]int, len(Domains)),
		Moods:   []string{},
	}
	moods := make(map[string]struct{})
	first := true
	for _, d := range Domains {
		items := s.byDomain[d]
		md.Domains[d.Plural()] = len(items)
		md.TotalItems += len(items)
		for _, it := range items {
			for _, m := range it.MoodTags {
				moods[m] = struct{}{}
			}
			if first || it.DurationMin < md.DurationRange.Min {
				md.DurationRange.Min = it.DurationMin
			}
			if first || it.DurationMin > md.DurationRange.Max {
				md.DurationRange.Max = it.DurationMin
			}
			first = false
		}
	}
	for m := range moods {
		md.Moods = append(md.Moods, m)
	}
	sort.Strings(md.Moods)
	return md
}
