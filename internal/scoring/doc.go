// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

// Package scoring holds the thresholds, clamps, formatting and date helpers
// shared by the recommendation aggregator and the calendar projector.
//
// Everything here is a pure function of its arguments. Nothing reads the
// wall clock; callers pass time values in.
package scoring
