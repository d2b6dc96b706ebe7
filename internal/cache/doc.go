// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

// Package cache provides a bounded, thread-safe TTL cache used to hold
// per-channel planner responses between ingests.
//
// Keys are grouped by an owner string (the channel ID) so every entry for a
// channel can be dropped in one call when new posts arrive:
//
//	c := cache.New[*planner.RecommendationResponse](1024, time.Minute)
//	c.Set("demo-tech", "rec:90", resp)
//	c.InvalidateOwner("demo-tech")
package cache
