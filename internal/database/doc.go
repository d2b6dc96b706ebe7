// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

/*
Package database stores raw post facts in DuckDB and rolls them up into the
performance samples the recommendation engine consumes.

Only raw posts are persisted. Recommendations and calendar projections are
recomputed on every request.

# Schema

	posts (
	    channel_id   VARCHAR,
	    post_id      VARCHAR,
	    content_type VARCHAR,
	    posted_at    TIMESTAMP,   -- UTC
	    views, likes, comments, shares BIGINT,
	    ingested_at  TIMESTAMP,
	    PRIMARY KEY (channel_id, post_id)
	)

# Rollups

GetHourlySamples and GetDailySamples bucket posts by weekday, hour and date in
a caller-supplied *time.Location. Bucketing happens in Go because the ICU
extension (needed for zone-aware SQL) is never auto-loaded. GetContentTypeStats
aggregates in SQL since it is zone independent.

Engagement for a post is (likes + comments + shares) / views * 100, and zero
when a post has no views.
*/
package database
