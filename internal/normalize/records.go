// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package normalize

import (
	"strings"

	"github.com/tomtom215/cadence/internal/models"
	"github.com/tomtom215/cadence/internal/scoring"
)

var (
	keysEngagement  = []string{"avgEngagement", "avg_engagement", "engagement"}
	keysViews       = []string{"avgViews", "avg_views", "views"}
	keysPostCount   = []string{"postCount", "post_count", "count", "posts"}
	keysDayOfWeek   = []string{"dayOfWeek", "day_of_week", "day"}
	keysHour        = []string{"hour", "hour_of_day"}
	keysRelative    = []string{"relativePerformance", "relative_performance"}
	keysLevel       = []string{"confidenceLevel", "confidence_level"}
	keysDayName     = []string{"dayName", "day_name", "day"}
	keysContentType = []string{"contentType", "content_type", "type"}
)

// Sample converts one record into a PerformanceSample.
func Sample(rec Record) models.PerformanceSample {
	s := models.PerformanceSample{
		Hour:          scoring.ClampHour(Int(rec, keysHour...)),
		DayOfWeek:     Weekday(rec, keysDayOfWeek...),
		AvgEngagement: NonNegative(rec, keysEngagement...),
		AvgViews:      NonNegative(rec, keysViews...),
		PostCount:     max(0, Int(rec, keysPostCount...)),
		Date:          max(0, Int(rec, "date")),
		Month:         max(0, Int(rec, "month")),
		Year:          max(0, Int(rec, "year")),
	}
	if s.Date > 31 {
		s.Date = 0
	}
	if s.Month > 12 {
		s.Month = 0
	}
	return s
}

// Samples converts a record list.
func Samples(recs []Record) []models.PerformanceSample {
	out := make([]models.PerformanceSample, 0, len(recs))
	for _, rec := range recs {
		out = append(out, Sample(rec))
	}
	return out
}

// TimeSlot converts one record into a TimeSlotRecommendation. A missing or
// unknown confidenceLevel is derived from the confidence value.
func TimeSlot(rec Record) models.TimeSlotRecommendation {
	confidence := scoring.Clamp(Number(rec, "confidence"))

	level := models.ConfidenceLevel(strings.ToLower(String(rec, keysLevel...)))
	if !level.Valid() {
		level = scoring.ConfidenceLevelFor(confidence)
	}

	return models.TimeSlotRecommendation{
		Hour:                scoring.ClampHour(Int(rec, keysHour...)),
		DayOfWeek:           Weekday(rec, keysDayOfWeek...),
		Confidence:          confidence,
		AvgEngagement:       NonNegative(rec, keysEngagement...),
		AvgViews:            NonNegative(rec, keysViews...),
		RelativePerformance: OptionalNumber(rec, keysRelative...),
		ConfidenceLevel:     level,
	}
}

// TimeSlots converts a record list.
func TimeSlots(recs []Record) []models.TimeSlotRecommendation {
	out := make([]models.TimeSlotRecommendation, 0, len(recs))
	for _, rec := range recs {
		out = append(out, TimeSlot(rec))
	}
	return out
}

// Combination converts one record into a DayHourCombination. A numeric
// weekday is rendered as its day name so the aggregator can group it.
func Combination(rec Record) models.DayHourCombination {
	name := String(rec, keysDayName...)
	if _, ok := scoring.ParseDayName(name); !ok {
		if v, present := lookup(rec, "dayOfWeek", "day_of_week", "day"); present {
			if f, numeric := toFloat(v); numeric && f >= 0 && f <= 6 {
				name = scoring.DayName(int(f))
			}
		}
	}

	return models.DayHourCombination{
		DayName:             name,
		Hour:                scoring.ClampHour(Int(rec, keysHour...)),
		Score:               scoring.Clamp(Number(rec, "score")),
		Confidence:          scoring.Clamp(Number(rec, "confidence")),
		AvgViews:            NonNegative(rec, keysViews...),
		RelativePerformance: OptionalNumber(rec, keysRelative...),
	}
}

// Combinations converts a record list.
func Combinations(recs []Record) []models.DayHourCombination {
	out := make([]models.DayHourCombination, 0, len(recs))
	for _, rec := range recs {
		out = append(out, Combination(rec))
	}
	return out
}

// ContentType converts one record into a ContentTypeRecommendation.
func ContentType(rec Record) models.ContentTypeRecommendation {
	return models.ContentTypeRecommendation{
		ContentType:   String(rec, keysContentType...),
		AvgEngagement: NonNegative(rec, keysEngagement...),
		AvgViews:      NonNegative(rec, keysViews...),
		PostCount:     max(0, Int(rec, keysPostCount...)),
		Confidence:    scoring.Clamp(Number(rec, "confidence")),
	}
}

// ContentTypes converts a record list.
func ContentTypes(recs []Record) []models.ContentTypeRecommendation {
	out := make([]models.ContentTypeRecommendation, 0, len(recs))
	for _, rec := range recs {
		out = append(out, ContentType(rec))
	}
	return out
}
