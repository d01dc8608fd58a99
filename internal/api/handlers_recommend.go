// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/moodplay/internal/logging"
	"github.com/tomtom215/moodplay/internal/models"
)

// Recommend handles POST /api/recommend.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req RecommendRequest
	if err := decodeJSON(w, r, &req); err != nil {
		decodeError(w, err)
		return
	}
	if verr := req.Validate(&h.cfg.Recommend); verr != nil {
		respondValidation(w, verr)
		return
	}

	playlist, err := h.engine.Recommend(r.Context(), req.Engine())
	if err != nil {
		respondError(w, http.StatusInternalServerError, models.CodeInternalError, "Error generating recommendations", err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Str("mood", req.Mood).
		Int("available_minutes", req.AvailableMinutes).
		Strs("interests", req.Interests).
		Int("entries", len(playlist.Playlist)).
		Msg("Generated playlist")

	respondSuccess(w, playlist, start)
}

// Similar handles GET /api/similar/{item_id}?limit=N.
func (h *Handler) Similar(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	params, verr := parseSimilarParams(chi.URLParam(r, "item_id"), r.URL.Query().Get("limit"), &h.cfg.Recommend)
	if verr != nil {
		respondValidation(w, verr)
		return
	}

	snap := h.catalog.Snapshot()
	key := similarKey(snap, params.ItemID, params.Limit)
	if h.similar != nil {
		if cached, ok := h.similar.Get(key); ok {
			respondSuccess(w, cached, start)
			return
		}
	}

	result, err := h.engine.SimilarIn(r.Context(), snap, params.ItemID, params.Limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, models.CodeInternalError, "Error getting similar items", err)
		return
	}
	if h.similar != nil {
		h.similar.Add(key, result.Clone())
	}
	respondSuccess(w, result, start)
}

// QuickSuggestions handles GET /api/quick-suggestions?available_minutes=N&domain=D.
func (h *Handler) QuickSuggestions(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	q := r.URL.Query()
	params, verr := parseQuickParams(q.Get("available_minutes"), q.Get("domain"), &h.cfg.Recommend)
	if verr != nil {
		respondValidation(w, verr)
		return
	}

	result, err := h.engine.Quick(r.Context(), params.AvailableMinutes, params.Domain)
	if err != nil {
		respondError(w, http.StatusInternalServerError, models.CodeInternalError, "Error getting quick suggestions", err)
		return
	}
	respondSuccess(w, result, start)
}
