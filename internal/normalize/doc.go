// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

/*
Package normalize maps loosely shaped JSON records onto the canonical model
types before any scoring runs.

Upstream producers disagree on field names (avgEngagement vs avg_engagement,
postCount vs count) and on number encoding (JSON numbers vs numeric strings).
Each converter accepts every known alias for a field and resolves the first
one present. Anything missing or malformed becomes zero; RelativePerformance
is the exception and stays nil so that "unknown" is preserved.

Accepted aliases:

	avgEngagement       avg_engagement, engagement
	avgViews            avg_views, views
	postCount           post_count, count, posts
	dayOfWeek           day_of_week, day        (number or weekday name)
	hour                hour_of_day
	relativePerformance relative_performance
	confidenceLevel     confidence_level
	dayName             day_name, day
	contentType         content_type, type

Hours and weekdays are clamped into range. Records are never dropped here.
*/
package normalize
