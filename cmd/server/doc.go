// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

// Package main is the entry point for the Cadence server.
//
// Cadence stores post engagement in DuckDB and answers two questions per
// channel: when to post next (ranked weekday/hour slots with confidence)
// and how each day of a month scores (history for past days, weekday
// predictions for today and the future).
//
// Startup order:
//
//  1. .env (optional, via godotenv), then config: defaults, config.yaml, env (koanf)
//  2. Logging (zerolog)
//  3. DuckDB store, optionally seeded with demo channels
//  4. Planner, API router and HTTP server
//  5. Supervisor tree (suture): checkpoint loop and HTTP server
//
// SIGINT or SIGTERM cancels the tree; the HTTP server drains for up to 10s
// and the database is checkpointed on Close.
//
// Example:
//
//	export DUCKDB_PATH=./data/cadence.duckdb
//	export ENGINE_TIMEZONE=America/New_York
//	export SEED_MOCK_DATA=true
//	export LOG_FORMAT=console
//	./cadence
//
//	curl localhost:8420/api/v1/channels/demo-tech/recommendations?days=30
//	curl 'localhost:8420/api/v1/channels/demo-tech/calendar?year=2026&month=10'
package main
