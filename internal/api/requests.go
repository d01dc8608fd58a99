// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

package api

import (
	"github.com/tomtom215/moodplay/internal/catalog"
	"github.com/tomtom215/moodplay/internal/config"
	"github.com/tomtom215/moodplay/internal/feedback"
	"github.com/tomtom215/moodplay/internal/recommend"
	"github.com/tomtom215/moodplay/internal/recommend/mood"
	"github.com/tomtom215/moodplay/internal/validation"
)

// RecommendRequest is the body of POST /api/recommend.
type RecommendRequest struct {
	Mood             string   `json:"mood" validate:"required"`
	AvailableMinutes int      `json:"available_minutes" validate:"required"`
	Interests        []string `json:"interests" validate:"required"`
	Limit            int      `json:"limit,omitempty" validate:"omitempty,min=1"`
	UserSession      string   `json:"user_session,omitempty" validate:"max=128"`
}

// Validate checks the struct tags, then the configured option sets.
func (req *RecommendRequest) Validate(cfg *config.RecommendConfig) *validation.RequestValidationError {
	if verr := validation.ValidateStruct(req); verr != nil {
		return verr
	}
	verr := validation.OneOf("mood", req.Mood, cfg.MoodOptions).
		Merge(validation.OneOf("available_minutes", req.AvailableMinutes, cfg.TimeOptions)).
		Merge(validation.EachOneOf("interests", req.Interests, cfg.InterestOptions))
	if req.Limit != 0 {
		verr = verr.Merge(validation.Between("limit", req.Limit, 1, cfg.MaxLimit))
	}
	return verr
}

// Engine converts a validated request. A zero Limit lets the engine apply
// its default.
func (req *RecommendRequest) Engine() recommend.Request {
	interests := make([]recommend.Interest, len(req.Interests))
	for i, s := range req.Interests {
		interests[i] = recommend.Interest(s)
	}
	return recommend.Request{
		Mood:             mood.Mood(req.Mood),
		AvailableMinutes: req.AvailableMinutes,
		Interests:        interests,
		Limit:            req.Limit,
		UserSession:      req.UserSession,
	}
}

// FeedbackRequest is the body of POST /api/feedback.
type FeedbackRequest struct {
	ItemID      string `json:"item_id" validate:"required,max=256,item_id"`
	Domain      string `json:"domain" validate:"required,catalog_domain"`
	Action      string `json:"action" validate:"required,oneof=like dislike"`
	UserSession string `json:"user_session,omitempty" validate:"max=128"`
}

// Event converts a validated request.
func (req *FeedbackRequest) Event() feedback.Event {
	domain, _ := catalog.ParseDomain(req.Domain)
	return feedback.Event{
		ItemID:      req.ItemID,
		Domain:      domain,
		Action:      feedback.Action(req.Action),
		UserSession: req.UserSession,
	}
}

// SimilarParams are the inputs of GET /api/similar/{item_id}.
type SimilarParams struct {
	ItemID string
	Limit  int
}

// parseSimilarParams reads the limit query parameter, defaulting to
// similar_limit and bounded by max_limit.
func parseSimilarParams(itemID, rawLimit string, cfg *config.RecommendConfig) (SimilarParams, *validation.RequestValidationError) {
	p := SimilarParams{ItemID: itemID, Limit: cfg.SimilarLimit}
	if itemID == "" {
		return p, validation.Required("item_id")
	}
	if rawLimit == "" {
		return p, nil
	}
	limit, verr := validation.Integer("limit", rawLimit)
	if verr != nil {
		return p, verr
	}
	p.Limit = limit
	return p, validation.Between("limit", limit, 1, cfg.MaxLimit)
}

// QuickParams are the inputs of GET /api/quick-suggestions.
type QuickParams struct {
	AvailableMinutes int
	Domain           *catalog.Domain
}

// parseQuickParams requires available_minutes from the time options and
// accepts an optional domain.
func parseQuickParams(rawMinutes, rawDomain string, cfg *config.RecommendConfig) (QuickParams, *validation.RequestValidationError) {
	var p QuickParams
	if rawMinutes == "" {
		return p, validation.Required("available_minutes")
	}
	minutes, verr := validation.Integer("available_minutes", rawMinutes)
	if verr != nil {
		return p, verr
	}
	if verr := validation.OneOf("available_minutes", minutes, cfg.TimeOptions); verr != nil {
		return p, verr
	}
	p.AvailableMinutes = minutes

	if rawDomain != "" {
		d, ok := catalog.ParseDomain(rawDomain)
		if !ok {
			return p, validation.OneOf("domain", rawDomain, []string{"workout", "recipe", "course"})
		}
		p.Domain = &d
	}
	return p, nil
}
