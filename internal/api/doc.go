// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

/*
Package api exposes the recommender over HTTP using the chi router.

Routes:

	GET  /                          service banner
	POST /api/recommend             mood aware playlist
	POST /api/feedback              like/dislike an item
	GET  /api/similar/{item_id}     same-domain items sharing tags
	GET  /api/quick-suggestions     longest items fitting a time budget
	GET  /api/metadata              catalog summary and accepted options
	POST /api/admin/reload          reload the catalog from disk
	GET  /api/health                service status
	GET  /api/health/live           liveness probe
	GET  /api/health/ready          readiness probe (catalog loaded)
	GET  /metrics                   Prometheus exposition

Middleware, outermost first: request ID, real IP, Prometheus metrics,
access log, panic recovery, CORS, compression. Rate limiting applies to the
/api routes except health probes.

Every JSON body is a models.APIResponse envelope. Request values whose
allowed set comes from configuration (moods, time options, interests,
limits) are checked here; the recommend engine assumes valid input.
*/
package api
