// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

// Package feedback records like/dislike events and exposes aggregated
// tallies to the collaborative affinity model.
//
// Events are persisted through a Store. Three backends exist: DuckDB (in
// the database package), Badger, and an in-memory store for tests and
// ephemeral deployments. A Recorder guards the store with a circuit
// breaker and announces each persisted event on the event bus.
package feedback

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/moodplay/internal/catalog"
)

// Action is the user's reaction to an item.
type Action string

const (
	ActionLike    Action = "like"
	ActionDislike Action = "dislike"
)

var (
	// ErrInvalidAction is returned for actions other than like/dislike.
	ErrInvalidAction = errors.New("feedback: action must be like or dislike")

	// ErrInvalidDomain is returned for unknown domains.
	ErrInvalidDomain = errors.New("feedback: unknown domain")

	// ErrMissingItem is returned when the item id is empty.
	ErrMissingItem = errors.New("feedback: item_id is required")

	// ErrStoreClosed is returned by stores after Close.
	ErrStoreClosed = errors.New("feedback: store closed")
)

// ParseAction normalizes s into an Action.
func ParseAction(s string) (Action, error) {
	switch a := Action(strings.ToLower(strings.TrimSpace(s))); a {
	case ActionLike, ActionDislike:
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidAction, s)
}

// Event is one persisted feedback record.
type Event struct {
	ID          string         `json:"id"`
	ItemID      string         `json:"item_id"`
	Domain      catalog.Domain `json:"domain"`
	Action      Action         `json:"action"`
	UserSession string         `json:"user_session,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

// Validate checks the fields a caller supplies.
func (e *Event) Validate() error {
	if strings.TrimSpace(e.ItemID) == "" {
		return ErrMissingItem
	}
	if !e.Domain.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidDomain, e.Domain)
	}
	if _, err := ParseAction(string(e.Action)); err != nil {
		return err
	}
	return nil
}

// Tally aggregates the events of one (item, session) pair. UserSession is
// empty for anonymous feedback.
type Tally struct {
	ItemID      string `json:"item_id"`
	UserSession string `json:"user_session"`
	Likes       int64  `json:"likes"`
	Dislikes    int64  `json:"dislikes"`
}

// tallyKey identifies a Tally during aggregation.
type tallyKey struct {
	item    string
	session string
}

// Aggregate folds events into tallies ordered by first appearance.
func Aggregate(events []Event) []Tally {
	index := make(map[tallyKey]int)
	var out []Tally
	for i := range events {
		e := &events[i]
		k := tallyKey{item: e.ItemID, session: e.UserSession}
		idx, ok := index[k]
		if !ok {
			idx = len(out)
			index[k] = idx
			out = append(out, Tally{ItemID: e.ItemID, UserSession: e.UserSession})
		}
		switch e.Action {
		case ActionLike:
			out[idx].Likes++
		case ActionDislike:
			out[idx].Dislikes++
		}
	}
	return out
}
