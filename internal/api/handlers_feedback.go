// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/moodplay/internal/feedback"
	"github.com/tomtom215/moodplay/internal/models"
	"github.com/tomtom215/moodplay/internal/validation"
)

// Feedback handles POST /api/feedback.
func (h *Handler) Feedback(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if h.feedback == nil {
		respondError(w, http.StatusServiceUnavailable, models.CodeServiceUnavailable, "Feedback is disabled", nil)
		return
	}

	var req FeedbackRequest
	if err := decodeJSON(w, r, &req); err != nil {
		decodeError(w, err)
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidation(w, verr)
		return
	}

	event, err := h.feedback.Record(r.Context(), req.Event())
	switch {
	case err == nil:
	case errors.Is(err, feedback.ErrUnavailable):
		respondError(w, http.StatusServiceUnavailable, models.CodeServiceUnavailable,
			"Feedback store is temporarily unavailable", err)
		return
	case errors.Is(err, feedback.ErrInvalidAction),
		errors.Is(err, feedback.ErrInvalidDomain),
		errors.Is(err, feedback.ErrMissingItem):
		respondJSON(w, http.StatusBadRequest, models.NewError(models.CodeValidationError, err.Error(), nil))
		return
	default:
		respondError(w, http.StatusInternalServerError, models.CodeInternalError, "Error recording feedback", err)
		return
	}

	respondSuccess(w, models.FeedbackAck{
		Status:  "ok",
		Message: "Feedback recorded successfully",
		ID:      event.ID,
	}, start)
}
