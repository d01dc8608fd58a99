// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/moodplay/internal/logging"
	"github.com/tomtom215/moodplay/internal/models"
)

// Root handles GET /.
func (h *Handler) Root(w http.ResponseWriter, _ *http.Request) {
	respondSuccess(w, models.RootInfo{
		Message: "Welcome to " + h.cfg.Server.AppName,
		Version: h.cfg.Server.Version,
		Health:  "/api/health",
	}, time.Now())
}

// Health handles GET /api/health. It always answers 200; degraded
// collaborators are reported in the body.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	start := time.Now()
	snap := h.catalog.Snapshot()

	status := models.HealthStatus{
		Status:       "ok",
		Version:      h.cfg.Server.Version,
		AppName:      h.cfg.Server.AppName,
		CatalogItems: snap.Len(),
		Collaborative: models.CollaborativeStatus{
			Enabled:   h.collaborativeActive(),
			Predictor: h.engine.PredictorName(),
		},
		FeedbackStore: "disabled",
		Uptime:        time.Since(h.startTime).Seconds(),
	}
	if h.catalog.Ready() {
		loaded := snap.LoadedAt()
		status.CatalogLoaded = &loaded
	}
	if h.affinity != nil {
		st := h.affinity.Status()
		status.Collaborative.Version = st.Version
		status.Collaborative.Events = st.Events
	}
	if h.feedback != nil {
		status.FeedbackStore = h.feedback.BreakerState()
	}

	respondSuccess(w, status, start)
}

// HealthLive handles GET /api/health/live.
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	respondSuccess(w, models.ProbeStatus{Status: "alive"}, time.Now())
}

// HealthReady handles GET /api/health/ready: 503 until the first catalog
// snapshot is loaded.
func (h *Handler) HealthReady(w http.ResponseWriter, _ *http.Request) {
	if !h.catalog.Ready() {
		respondJSON(w, http.StatusServiceUnavailable,
			models.NewError(models.CodeServiceUnavailable, "Catalog not loaded", nil))
		return
	}
	respondSuccess(w, models.ProbeStatus{Status: "ready"}, time.Now())
}

// Metadata handles GET /api/metadata.
func (h *Handler) Metadata(w http.ResponseWriter, _ *http.Request) {
	start := time.Now()
	respondSuccess(w, h.serviceMetadata(h.catalog.Snapshot()), start)
}

// AdminReload handles POST /api/admin/reload. A failed reload keeps the
// previous snapshot.
func (h *Handler) AdminReload(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	snap, err := h.catalog.Reload(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, models.CodeInternalError, "Catalog reload failed", err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Uint64("version", snap.Version()).
		Int("total_items", snap.Len()).
		Msg("Catalog reloaded on request")

	respondSuccess(w, models.ReloadResult{
		Version:  snap.Version(),
		Metadata: h.serviceMetadata(snap),
	}, start)
}

// NotFound answers unknown routes.
func (h *Handler) NotFound(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusNotFound, models.NewError(models.CodeNotFound, "Route not found", nil))
}

// MethodNotAllowed answers known routes called with the wrong method.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusMethodNotAllowed,
		models.NewError(models.CodeMethodNotAllowed, "Method not allowed", nil))
}
