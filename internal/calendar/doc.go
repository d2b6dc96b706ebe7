// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

/*
Package calendar projects posting-time recommendations onto a month view.

Every day of the displayed month is classified against a single reference
instant supplied by the caller:

  - Past days with a historical sample keep the observed views, engagement and
    post count, and are bucketed by how they compare with the month's best day.
  - Today and future days get a predicted recommendation score and confidence,
    taken from the aggregator's per-weekday scores when available and otherwise
    estimated from same-weekday samples.
  - Past days without a sample are marked no-data.

The projector never reads the wall clock. Request.Now fixes "today" for the
whole pass, and dates are built in Now's location, so the same request always
produces the same projection.

# Grid

Projection.Grid is a Sunday-first weekly layout: FirstDayOffset nil
placeholders followed by one cell per day. Its length is always
FirstDayOffset + DaysInMonth.

# Recommended times

Each classified day resolves its recommended times through a fixed chain:
the weekday's own best times, then the most frequent times across all
weekdays, then 10:00, 15:00 and 20:00. Lists hold at most three entries.
*/
package calendar
