// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

/*
Package api provides the HTTP REST API for Cadence.

Endpoints:

	GET  /api/v1/health/live
	GET  /api/v1/health/ready
	GET  /api/v1/channels
	POST /api/v1/channels/{channelID}/posts
	GET  /api/v1/channels/{channelID}/recommendations?days=N
	GET  /api/v1/channels/{channelID}/calendar?year=Y&month=M&days=N
	POST /api/v1/recommendations/analyze
	POST /api/v1/calendar/project
	GET  /metrics

Channel endpoints read from the DuckDB store through the planner. The two
stateless POST endpoints accept rollups computed elsewhere as loosely typed
JSON records (camelCase or snake_case keys, numbers or numeric strings) and
never touch the store.

Every JSON response uses the APIResponse envelope:

	{"success": true, "data": {...}, "meta": {"request_id": "...", "timestamp": "...", "duration_ms": 3}}
	{"success": false, "error": {"code": "VALIDATION_ERROR", "message": "...", "details": {...}}, "meta": {...}}

Middleware order: request ID, real IP, panic recovery, CORS, then per-group
rate limiting, security headers, Prometheus instrumentation and compression.

Usage:

	p := planner.New(db, planner.Options{Location: loc, DefaultLookbackDays: 90}, logger)
	h := api.NewHandler(db, p, cfg.Server.Timeout)
	mw := api.NewChiMiddleware(api.ChiMiddlewareConfigFrom(&cfg.Security))
	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: api.NewRouter(h, mw).SetupChi()}
*/
package api
