// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package api

import (
	"context"
	"net/http"
	"time"
)

// HealthLive handles GET /api/v1/health/live. It reports the process is up
// regardless of dependencies.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles GET /api/v1/health/ready. It returns 503 until the
// store answers a ping.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	dbConnected := h.store != nil && h.store.Ping(ctx) == nil
	if !dbConnected {
		rw.ErrorWithDetails(http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Service not ready",
			map[string]interface{}{"database_connected": false})
		return
	}

	stats := h.planner.Stats()
	rw.Success(map[string]interface{}{
		"ready":              true,
		"database_connected": true,
		"timezone":           h.planner.Location().String(),
		"requests":           stats.Requests,
		"errors":             stats.Errors,
	})
}
