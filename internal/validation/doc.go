// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

// Package validation validates API request structs with go-playground/validator v10.
//
// A single validator instance is shared process-wide. Field names in error
// messages use the json tag, so clients see "available_minutes", not
// "AvailableMinutes".
//
//	type FeedbackRequest struct {
//	    ItemID string `json:"item_id" validate:"required,item_id"`
//	    Domain string `json:"domain"  validate:"required,catalog_domain"`
//	    Action string `json:"action"  validate:"required,oneof=like dislike"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
//
// # Custom Tags
//
//   - catalog_domain: one of workout, recipe, course (case-insensitive)
//   - item_id: "{domain}_{id}" with a known domain and a non-empty id
//
// Values that depend on runtime configuration (mood, time and interest
// options) are checked by the caller with [OneOf], which produces the same
// error shape as a failed struct tag.
package validation
