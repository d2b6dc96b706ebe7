// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package config

import (
	"strings"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"defaults are valid", func(c *Config) {}, ""},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, "HTTP_PORT"},
		{"zero timeout", func(c *Config) { c.Server.Timeout = 0 }, "HTTP_TIMEOUT"},
		{"unknown environment", func(c *Config) { c.Server.Environment = "qa" }, "ENVIRONMENT"},
		{"empty db path", func(c *Config) { c.Database.Path = " " }, "DUCKDB_PATH"},
		{"empty max memory", func(c *Config) { c.Database.MaxMemory = "" }, "DUCKDB_MAX_MEMORY"},
		{"negative threads", func(c *Config) { c.Database.Threads = -2 }, "DUCKDB_THREADS"},
		{"tiny checkpoint interval", func(c *Config) { c.Database.CheckpointInterval = time.Millisecond }, "DUCKDB_CHECKPOINT_INTERVAL"},
		{"checkpoints disabled", func(c *Config) { c.Database.CheckpointInterval = 0 }, ""},
		{"negative breaker timeout", func(c *Config) { c.Database.BreakerTimeout = -time.Second }, "DUCKDB_BREAKER_TIMEOUT"},
		{"breaker disabled", func(c *Config) { c.Database.BreakerTimeout = 0 }, ""},
		{"bad timezone", func(c *Config) { c.Engine.Timezone = "Nowhere/Land" }, "ENGINE_TIMEZONE"},
		{"negative lookback", func(c *Config) { c.Engine.DefaultLookbackDays = -1 }, "ENGINE_DEFAULT_LOOKBACK_DAYS"},
		{"all history lookback", func(c *Config) { c.Engine.DefaultLookbackDays = 0 }, ""},
		{"zero min posts", func(c *Config) { c.Engine.MinPostsForFullConfidence = 0 }, "ENGINE_MIN_POSTS_FULL_CONFIDENCE"},
		{"too many slots", func(c *Config) { c.Engine.MaxSlots = 200 }, "ENGINE_MAX_SLOTS"},
		{"cache ttl too long", func(c *Config) { c.Engine.CacheTTL = 2 * time.Hour }, "ENGINE_CACHE_TTL"},
		{"cache disabled", func(c *Config) { c.Engine.CacheTTL = 0 }, ""},
		{"no cors origins", func(c *Config) { c.Security.CORSOrigins = nil }, "CORS_ORIGINS"},
		{"rate limit zero", func(c *Config) { c.Security.RateLimitReqs = 0 }, "RATE_LIMIT_REQUESTS"},
		{"rate limit window tiny", func(c *Config) { c.Security.RateLimitWindow = time.Millisecond }, "RATE_LIMIT_WINDOW"},
		{"rate limit disabled skips bounds", func(c *Config) {
			c.Security.RateLimitDisabled = true
			c.Security.RateLimitReqs = 0
		}, ""},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, "LOG_LEVEL"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
		{"empty log format allowed", func(c *Config) { c.Logging.Format = "" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestEngineConfig_Location(t *testing.T) {
	tests := []struct {
		tz       string
		expected string
	}{
		{"", "UTC"},
		{"UTC", "UTC"},
		{"Asia/Tokyo", "Asia/Tokyo"},
		{"Not/AZone", "UTC"},
	}

	for _, tt := range tests {
		if got := (EngineConfig{Timezone: tt.tz}).Location().String(); got != tt.expected {
			t.Errorf("Location(%q) = %q, want %q", tt.tz, got, tt.expected)
		}
	}
}

func TestShouldWarnAboutCORS(t *testing.T) {
	cfg := defaultConfig()
	if cfg.ShouldWarnAboutCORS() {
		t.Error("development wildcard should not warn")
	}

	cfg.Server.Environment = "production"
	if !cfg.ShouldWarnAboutCORS() {
		t.Error("production wildcard should warn")
	}

	cfg.Security.CORSOrigins = []string{"https://dash.example"}
	if cfg.ShouldWarnAboutCORS() {
		t.Error("explicit origins should not warn")
	}
}

func TestServerConfig_Addr(t *testing.T) {
	s := ServerConfig{Host: "127.0.0.1", Port: 8420}
	if got := s.Addr(); got != "127.0.0.1:8420" {
		t.Errorf("Addr() = %q, want 127.0.0.1:8420", got)
	}
}
