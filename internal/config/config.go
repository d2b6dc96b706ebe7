// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration loaded from defaults, an
// optional config file and environment variables.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Engine   EngineConfig   `koanf:"engine"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // development, staging, production
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig holds DuckDB settings
type DatabaseConfig struct {
	Path         string `koanf:"path"`
	MaxMemory    string `koanf:"max_memory"`
	Threads      int    `koanf:"threads"`        // 0 = use NumCPU
	SeedMockData bool   `koanf:"seed_mock_data"` // seed demo channels on startup

	// CheckpointInterval is how often the WAL is folded into the database
	// file. Zero disables periodic checkpoints; Close still checkpoints.
	CheckpointInterval time.Duration `koanf:"checkpoint_interval"`

	// BreakerTimeout is how long read queries are refused after repeated
	// failures before a probe is let through. Zero disables the breaker.
	// Default: 30s
	BreakerTimeout time.Duration `koanf:"breaker_timeout"`
}

// EngineConfig holds recommendation engine tuning.
type EngineConfig struct {
	// Timezone is the IANA zone used to bucket posts into weekdays and hours
	// and to decide which calendar day is "today".
	// Default: UTC
	Timezone string `koanf:"timezone"`

	// DefaultLookbackDays is the history window used when a request does not
	// specify one. Zero means all available history.
	// Default: 90
	DefaultLookbackDays int `koanf:"default_lookback_days"`

	// MinPostsForFullConfidence is the post count at which a slot's confidence
	// stops being scaled down.
	// Default: 5
	MinPostsForFullConfidence int `koanf:"min_posts_for_full_confidence"`

	// MaxSlots caps the number of derived time slots.
	// Default: 24
	MaxSlots int `koanf:"max_slots"`

	// CacheTTL keeps store-backed responses per channel. Ingest invalidates
	// the channel's entries. Zero disables caching.
	// Default: 60s
	CacheTTL time.Duration `koanf:"cache_ttl"`
}

// Location resolves Timezone, falling back to UTC. Validate rejects unknown
// zones, so the fallback only applies to unvalidated configs.
func (e EngineConfig) Location() *time.Location {
	if e.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(e.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings for zerolog.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Load reads configuration in priority order:
//  1. Built-in defaults
//  2. Config file (config.yaml if exists, or path specified in CONFIG_PATH env var)
//  3. Environment variables
func Load() (*Config, error) {
	return LoadWithKoanf()
}
