// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

/*
Package models defines the data contracts shared by the Cadence engine, its
store, and its HTTP API.

# Overview

The types fall into three groups:

  - Inputs: PerformanceSample, TimeSlotRecommendation, DayHourCombination,
    ContentTypeRecommendation, PostFact
  - Engine outputs: Insight, DayScore, DayPerformance, BestDay
  - Enumerations: ScoreCategory, ConfidenceLevel, InsightType

JSON tags use camelCase because the dashboard front end consumes these shapes
verbatim.

# Conventions

Weekdays are numbered 0 (Sunday) through 6 (Saturday) everywhere, matching
time.Weekday and DuckDB's DAYOFWEEK(). Hours are 0-23. Confidence, score and
recommendation score are percentages in [0,100].

Optional numeric fields are pointers so that "absent" can be told apart from
zero. RelativePerformance is the main example: a slot with no channel baseline
has no relative performance, which is not the same as performing exactly at
the average.
*/
package models
