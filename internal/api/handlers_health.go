// Forkful - Restaurant Listing and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkful

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/forkful/internal/logging"
)

// Health handles GET /api/v1/health. It answers 503 when the database does
// not respond to a ping.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:   "healthy",
		Database: "connected",
		Uptime:   time.Since(h.startTime).Seconds(),
	}

	if err := h.store.Ping(r.Context()); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Health check: database ping failed")
		resp.Status = "degraded"
		resp.Database = "disconnected"
		NewResponseWriter(w, r).ErrorWithDetails(http.StatusServiceUnavailable,
			ErrCodeServiceUnavailable, "Database unavailable", resp)
		return
	}

	WriteSuccess(w, r, resp)
}

// HealthLive handles GET /api/v1/health/live. It reports only that the
// process is serving requests.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, r, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}
