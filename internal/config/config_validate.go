// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateDatabase(); err != nil {
		return err
	}

	if err := c.validateEngine(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

var validEnvironments = map[string]bool{
	"development": true,
	"staging":     true,
	"production":  true,
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if !validEnvironments[c.Server.Environment] {
		return fmt.Errorf("ENVIRONMENT must be one of: development, staging, production")
	}
	return nil
}

// validateDatabase validates database configuration
func (c *Config) validateDatabase() error {
	if strings.TrimSpace(c.Database.Path) == "" {
		return fmt.Errorf("DUCKDB_PATH is required")
	}
	if strings.TrimSpace(c.Database.MaxMemory) == "" {
		return fmt.Errorf("DUCKDB_MAX_MEMORY is required")
	}
	if c.Database.Threads < 0 {
		return fmt.Errorf("DUCKDB_THREADS must be non-negative")
	}
	if c.Database.CheckpointInterval != 0 && c.Database.CheckpointInterval < time.Second {
		return fmt.Errorf("DUCKDB_CHECKPOINT_INTERVAL must be 0 (disabled) or at least 1s, got %v", c.Database.CheckpointInterval)
	}
	if c.Database.BreakerTimeout < 0 || c.Database.BreakerTimeout > 10*time.Minute {
		return fmt.Errorf("DUCKDB_BREAKER_TIMEOUT must be between 0 (disabled) and 10m, got %v", c.Database.BreakerTimeout)
	}
	return nil
}

// Engine bounds
const (
	maxLookbackDays       = 3650
	maxPostsForConfidence = 1000
	maxSlots              = 7 * 24
	maxCacheTTL           = time.Hour
)

// validateEngine validates engine tuning
func (c *Config) validateEngine() error {
	if _, err := time.LoadLocation(c.Engine.Timezone); err != nil {
		return fmt.Errorf("ENGINE_TIMEZONE %q is not a valid IANA time zone: %w", c.Engine.Timezone, err)
	}
	if c.Engine.DefaultLookbackDays < 0 || c.Engine.DefaultLookbackDays > maxLookbackDays {
		return fmt.Errorf("ENGINE_DEFAULT_LOOKBACK_DAYS must be between 0 and %d", maxLookbackDays)
	}
	if c.Engine.MinPostsForFullConfidence < 1 || c.Engine.MinPostsForFullConfidence > maxPostsForConfidence {
		return fmt.Errorf("ENGINE_MIN_POSTS_FULL_CONFIDENCE must be between 1 and %d", maxPostsForConfidence)
	}
	if c.Engine.MaxSlots < 0 || c.Engine.MaxSlots > maxSlots {
		return fmt.Errorf("ENGINE_MAX_SLOTS must be between 0 and %d", maxSlots)
	}
	if c.Engine.CacheTTL < 0 || c.Engine.CacheTTL > maxCacheTTL {
		return fmt.Errorf("ENGINE_CACHE_TTL must be between 0 and %s", maxCacheTTL)
	}
	return nil
}

// validateSecurity validates security configuration
func (c *Config) validateSecurity() error {
	if err := c.validateCORS(); err != nil {
		return err
	}
	return c.validateRateLimits()
}

// validateCORS rejects empty origin lists; an empty list would block every
// browser client.
func (c *Config) validateCORS() error {
	if len(c.Security.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS must list at least one origin")
	}
	return nil
}

// HasWildcardCORS checks if CORS is configured with wildcard origins
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// ShouldWarnAboutCORS returns true if wildcard CORS is used in production
func (c *Config) ShouldWarnAboutCORS() bool {
	return c.IsProduction() && c.HasWildcardCORS()
}

// Rate limit constants
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}

	if err := c.validateRateLimitRequests(); err != nil {
		return err
	}
	return c.validateRateLimitWindow()
}

// validateRateLimitRequests validates the rate limit requests value
func (c *Config) validateRateLimitRequests() error {
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	return nil
}

// validateRateLimitWindow validates the rate limit window value
func (c *Config) validateRateLimitWindow() error {
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if err := c.validateLogLevel(); err != nil {
		return err
	}
	return c.validateLogFormat()
}

// validateLogLevel validates the log level configuration
func (c *Config) validateLogLevel() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	return nil
}

// validateLogFormat validates the log format configuration
func (c *Config) validateLogFormat() error {
	if c.Logging.Format == "" {
		return nil
	}
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
