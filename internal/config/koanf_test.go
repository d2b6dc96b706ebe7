// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 8420 {
		t.Errorf("Server.Port = %d, want 8420", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0", cfg.Server.Host)
	}
	if cfg.Database.Path != "/data/cadence.duckdb" {
		t.Errorf("Database.Path = %q, want /data/cadence.duckdb", cfg.Database.Path)
	}
	if cfg.Database.MaxMemory != "1GB" {
		t.Errorf("Database.MaxMemory = %q, want 1GB", cfg.Database.MaxMemory)
	}
	if cfg.Engine.Timezone != "UTC" {
		t.Errorf("Engine.Timezone = %q, want UTC", cfg.Engine.Timezone)
	}
	if cfg.Engine.DefaultLookbackDays != 90 {
		t.Errorf("Engine.DefaultLookbackDays = %d, want 90", cfg.Engine.DefaultLookbackDays)
	}
	if cfg.Engine.MinPostsForFullConfidence != 5 {
		t.Errorf("Engine.MinPostsForFullConfidence = %d, want 5", cfg.Engine.MinPostsForFullConfidence)
	}
	if cfg.Engine.MaxSlots != 24 {
		t.Errorf("Engine.MaxSlots = %d, want 24", cfg.Engine.MaxSlots)
	}
	if cfg.Security.RateLimitReqs != 100 || cfg.Security.RateLimitWindow != time.Minute {
		t.Errorf("rate limit = %d/%v, want 100/1m", cfg.Security.RateLimitReqs, cfg.Security.RateLimitWindow)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "*" {
		t.Errorf("Security.CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v, want info/json", cfg.Logging)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaultConfig().Validate() error = %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		env      string
		expected string
	}{
		{"HTTP_PORT", "server.port"},
		{"DUCKDB_PATH", "database.path"},
		{"SEED_MOCK_DATA", "database.seed_mock_data"},
		{"ENGINE_TIMEZONE", "engine.timezone"},
		{"ENGINE_MIN_POSTS_FULL_CONFIDENCE", "engine.min_posts_for_full_confidence"},
		{"RATE_LIMIT_REQUESTS", "security.rate_limit_reqs"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"LOG_LEVEL", "logging.level"},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			if got := envTransformFunc(tt.env); got != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.expected)
			}
		})
	}
}

func TestLoadWithKoanf_EnvOverrides(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("HTTP_PORT", "9001")
	t.Setenv("DUCKDB_PATH", ":memory:")
	t.Setenv("ENGINE_TIMEZONE", "America/New_York")
	t.Setenv("ENGINE_DEFAULT_LOOKBACK_DAYS", "0")
	t.Setenv("ENGINE_MAX_SLOTS", "12")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9001 {
		t.Errorf("Server.Port = %d, want 9001", cfg.Server.Port)
	}
	if cfg.Database.Path != ":memory:" {
		t.Errorf("Database.Path = %q, want :memory:", cfg.Database.Path)
	}
	if cfg.Engine.Location().String() != "America/New_York" {
		t.Errorf("Engine.Location() = %v, want America/New_York", cfg.Engine.Location())
	}
	if cfg.Engine.DefaultLookbackDays != 0 {
		t.Errorf("Engine.DefaultLookbackDays = %d, want 0", cfg.Engine.DefaultLookbackDays)
	}
	if cfg.Engine.MaxSlots != 12 {
		t.Errorf("Engine.MaxSlots = %d, want 12", cfg.Engine.MaxSlots)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[1] != "https://b.example" {
		t.Errorf("Security.CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if cfg.Security.RateLimitWindow != 30*time.Second {
		t.Errorf("Security.RateLimitWindow = %v, want 30s", cfg.Security.RateLimitWindow)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadWithKoanf_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: 7000
engine:
  timezone: Europe/Berlin
  min_posts_for_full_confidence: 3
security:
  cors_origins:
    - https://dash.example
logging:
  format: console
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("ENGINE_MIN_POSTS_FULL_CONFIDENCE", "8")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 7000 {
		t.Errorf("Server.Port = %d, want 7000 from file", cfg.Server.Port)
	}
	if cfg.Engine.Timezone != "Europe/Berlin" {
		t.Errorf("Engine.Timezone = %q, want Europe/Berlin", cfg.Engine.Timezone)
	}
	if cfg.Engine.MinPostsForFullConfidence != 8 {
		t.Errorf("Engine.MinPostsForFullConfidence = %d, want env override 8", cfg.Engine.MinPostsForFullConfidence)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "https://dash.example" {
		t.Errorf("Security.CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Logging.Format = %q, want console", cfg.Logging.Format)
	}
	if cfg.Database.MaxMemory != "1GB" {
		t.Errorf("Database.MaxMemory = %q, want default 1GB", cfg.Database.MaxMemory)
	}
}

func TestLoadWithKoanf_InvalidTimezone(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("ENGINE_TIMEZONE", "Mars/Olympus_Mons")

	if _, err := LoadWithKoanf(); err == nil {
		t.Error("LoadWithKoanf() expected error for unknown time zone")
	}
}
