// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

/*
Package config provides centralized configuration management for Cadence.

# Configuration Sources

Configuration is layered with Koanf v2, later layers overriding earlier ones:

 1. Built-in defaults (defaultConfig)
 2. Optional YAML file: CONFIG_PATH, config.yaml, config.yml,
    /etc/cadence/config.yaml
 3. Environment variables, mapped explicitly by envTransformFunc

The server entry point loads a .env file (if present) before calling Load, so
.env values behave like ordinary environment variables.

# Environment Variables

HTTP Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8420)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - ENVIRONMENT: development, staging, production (default: development)

Database:
  - DUCKDB_PATH: Database file, or :memory: (default: /data/cadence.duckdb)
  - DUCKDB_MAX_MEMORY: DuckDB memory limit (default: 1GB)
  - DUCKDB_THREADS: Worker threads, 0 = NumCPU (default: 0)
  - SEED_MOCK_DATA: Seed demo channels on startup (default: false)
  - DUCKDB_CHECKPOINT_INTERVAL: Periodic CHECKPOINT, 0 = off (default: 5m)
  - DUCKDB_BREAKER_TIMEOUT: Circuit breaker open period for reads, 0 = off (default: 30s)

Engine:
  - ENGINE_TIMEZONE: IANA zone used for weekday/hour bucketing and "today" (default: UTC)
  - ENGINE_DEFAULT_LOOKBACK_DAYS: History window when a request omits one, 0 = all (default: 90)
  - ENGINE_MIN_POSTS_FULL_CONFIDENCE: Posts needed for full slot confidence (default: 5)
  - ENGINE_MAX_SLOTS: Maximum derived time slots per channel (default: 24)
  - ENGINE_CACHE_TTL: Response cache lifetime, 0 = off (default: 60s)

Security:
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS: Requests per window per client (default: 100)
  - RATE_LIMIT_WINDOW: Rate limit window (default: 1m)
  - DISABLE_RATE_LIMIT: Turn rate limiting off (default: false)

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json, console (default: json)
  - LOG_CALLER: Include caller file:line (default: false)

# Usage

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}
	loc := cfg.Engine.Location()

Config is immutable after Load and safe for concurrent reads.
*/
package config
