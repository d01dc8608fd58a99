// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

/*
Package models defines the JSON envelope and payload types of the Moodplay
HTTP API.

Every endpoint answers with an APIResponse:

	{
	  "status": "success",
	  "data": {...},
	  "metadata": {"timestamp": "2026-03-01T12:00:00Z", "query_time_ms": 3}
	}

Errors carry an APIError instead of data:

	{
	  "status": "error",
	  "data": null,
	  "metadata": {"timestamp": "2026-03-01T12:00:00Z"},
	  "error": {"code": "VALIDATION_ERROR", "message": "mood must be one of: ..."}
	}

Playlist, similar and quick payloads are defined by the recommend package;
this package holds the service level payloads (health, metadata, feedback
acknowledgement, reload result).
*/
package models
