// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

// Package affinity provides collaborative score sources: predicted
// user-item affinity in [0, 1] derived from behavioural data.
//
// A Predictor is chosen when the engine is constructed. Neutral is the
// no-op source; FeedbackModel learns from like/dislike tallies.
package affinity

import (
	"sync/atomic"
	"time"

	"github.com/tomtom215/moodplay/internal/feedback"
)

// NeutralScore is returned whenever no signal exists.
const NeutralScore = 0.5

// Predictor predicts the affinity of a user for an item.
type Predictor interface {
	// Name identifies the source in logs and health output.
	Name() string

	// Predict returns a score in [0, 1]. An empty user means anonymous.
	Predict(user, itemID string) float64
}

// Neutral always predicts NeutralScore.
type Neutral struct{}

func (Neutral) Name() string                  { return "neutral" }
func (Neutral) Predict(string, string) float64 { return NeutralScore }

// DefaultPrior is the number of pseudo-votes split evenly between like and
// dislike. It pulls sparse tallies towards NeutralScore.
const DefaultPrior = 2.0

type counts struct {
	likes, dislikes int64
}

// model is one immutable trained state.
type model struct {
	perUser   map[string]map[string]counts // user -> item -> counts
	perItem   map[string]counts
	version   int
	trainedAt time.Time
	events    int64
}

// FeedbackModel scores items with a smoothed like ratio:
//
//	(likes + prior/2) / (likes + dislikes + prior)
//
// The user's own tally for the item wins; without one the item's global
// tally is used; with neither the score is NeutralScore. Anonymous callers
// always get NeutralScore. Refresh swaps a new model in atomically so
// Predict never blocks.
type FeedbackModel struct {
	prior float64
	state atomic.Pointer[model]
}

var _ Predictor = (*FeedbackModel)(nil)

// NewFeedbackModel creates an untrained model. prior <= 0 uses DefaultPrior.
func NewFeedbackModel(prior float64) *FeedbackModel {
	if prior <= 0 {
		prior = DefaultPrior
	}
	m := &FeedbackModel{prior: prior}
	m.state.Store(&model{perUser: map[string]map[string]counts{}, perItem: map[string]counts{}})
	return m
}

func (m *FeedbackModel) Name() string { return "feedback" }

// Refresh rebuilds the model from tallies.
func (m *FeedbackModel) Refresh(tallies []feedback.Tally) {
	prev := m.state.Load()
	next := &model{
		perUser:   make(map[string]map[string]counts),
		perItem:   make(map[string]counts, len(tallies)),
		version:   prev.version + 1,
		trainedAt: time.Now().UTC(),
	}
	for _, t := range tallies {
		global := next.perItem[t.ItemID]
		global.likes += t.Likes
		global.dislikes += t.Dislikes
		next.perItem[t.ItemID] = global
		next.events += t.Likes + t.Dislikes

		if t.UserSession == "" {
			continue
		}
		items, ok := next.perUser[t.UserSession]
		if !ok {
			items = make(map[string]counts)
			next.perUser[t.UserSession] = items
		}
		c := items[t.ItemID]
		c.likes += t.Likes
		c.dislikes += t.Dislikes
		items[t.ItemID] = c
	}
	m.state.Store(next)
}

// Predict implements Predictor.
func (m *FeedbackModel) Predict(user, itemID string) float64 {
	if user == "" {
		return NeutralScore
	}
	s := m.state.Load()
	if c, ok := s.perUser[user][itemID]; ok {
		return m.ratio(c)
	}
	if c, ok := s.perItem[itemID]; ok {
		return m.ratio(c)
	}
	return NeutralScore
}

func (m *FeedbackModel) ratio(c counts) float64 {
	total := float64(c.likes+c.dislikes) + m.prior
	if total <= 0 {
		return NeutralScore
	}
	return (float64(c.likes) + m.prior/2) / total
}

// Status describes the current model.
type Status struct {
	Version   int       `json:"version"`
	TrainedAt time.Time `json:"trained_at"`
	Events    int64     `json:"events"`
	Items     int       `json:"items"`
	Users     int       `json:"users"`
}

// Status reports the model currently serving predictions.
func (m *FeedbackModel) Status() Status {
	s := m.state.Load()
	return Status{
		Version:   s.version,
		TrainedAt: s.trainedAt,
		Events:    s.events,
		Items:     len(s.perItem),
		Users:     len(s.perUser),
	}
}
