// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

// Package recommend turns per-slot performance data into ranked posting-time
// recommendations, per-weekday scores and short insights.
//
// # Pipeline
//
//	PerformanceSample[] --DeriveTimeSlots--> TimeSlotRecommendation[]
//	                    --DeriveCombinations--> DayHourCombination[]
//	Input{slots, combinations, content types} --Aggregate--> Result
//
// Callers that already hold time slots (for example from another analytics
// source) skip derivation and call Aggregate directly.
//
// # Ranking
//
// Slots are ranked by a stable sort on descending confidence. The input
// slice is never reordered; Rank returns a new slice. The best slot is the
// first ranked element, so ties go to whichever slot appeared first.
//
// # Day scores
//
// When day-hour combinations are supplied they decide the per-weekday score:
// the highest-scoring combination per weekday wins, first one on ties. When
// none are usable the aggregator falls back to the best-ranked slot for each
// weekday, using its confidence as both score and confidence.
//
// # Failure behavior
//
// Nothing here returns an error. Empty or partial input degrades to empty
// output, and Result.Available reports whether a recommendation exists.
//
// # Usage
//
//	agg := recommend.NewAggregator(recommend.DefaultConfig(), logger)
//	slots := recommend.DeriveTimeSlots(samples, agg.Config())
//	res := agg.Aggregate(recommend.Input{TimeSlots: slots})
//	if res.Available {
//	    fmt.Println(res.Insights[0].Message)
//	}
//
// An Aggregator holds no mutable state and is safe for concurrent use.
package recommend
