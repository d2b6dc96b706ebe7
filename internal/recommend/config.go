// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package recommend

import (
	"fmt"
)

// Config contains tuning for slot derivation.
type Config struct {
	// MinPostsForFullConfidence is the number of posts a slot needs before its
	// confidence equals its score. Slots with fewer posts are scaled down
	// linearly.
	// Default: 5.
	MinPostsForFullConfidence int `json:"min_posts_for_full_confidence"`

	// MaxSlots caps the number of derived time slots returned.
	// Zero means no cap.
	// Default: 24.
	MaxSlots int `json:"max_slots"`
}

// DefaultConfig returns a configuration with production defaults.
func DefaultConfig() *Config {
	return &Config{
		MinPostsForFullConfidence: 5,
		MaxSlots:                  24,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.MinPostsForFullConfidence < 1 {
		return fmt.Errorf("min_posts_for_full_confidence must be positive, got %d", c.MinPostsForFullConfidence)
	}
	if c.MaxSlots < 0 {
		return fmt.Errorf("max_slots must be non-negative, got %d", c.MaxSlots)
	}
	if c.MaxSlots > 7*24 {
		return fmt.Errorf("max_slots must be at most %d, got %d", 7*24, c.MaxSlots)
	}
	return nil
}
