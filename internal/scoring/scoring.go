// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package scoring

import (
	"math"
	"sort"

	"github.com/tomtom215/cadence/internal/models"
)

const (
	// DefaultScore substitutes for any score whose denominator is zero.
	DefaultScore = 50.0
	// DefaultConfidence is used when no same-weekday samples exist.
	DefaultConfidence = 50.0

	ExcellentThreshold = 80.0
	GoodThreshold      = 60.0
	AverageThreshold   = 40.0

	HighConfidenceThreshold   = 70.0
	MediumConfidenceThreshold = 40.0

	// RecommendedTimesLimit caps every recommendedTimes list.
	RecommendedTimesLimit = 3
)

var defaultRecommendedTimes = []string{"10:00", "15:00", "20:00"}

// DefaultRecommendedTimes returns a fresh copy of the last-resort time list.
func DefaultRecommendedTimes() []string {
	out := make([]string, len(defaultRecommendedTimes))
	copy(out, defaultRecommendedTimes)
	return out
}

// Clamp bounds v to [0,100]. NaN becomes 0.
func Clamp(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}

// Ratio returns num/den*100, or DefaultScore when den is not positive.
func Ratio(num, den float64) float64 {
	if den <= 0 || math.IsNaN(den) || math.IsInf(den, 0) {
		return DefaultScore
	}
	return Clamp(num / den * 100)
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// CategoryForScore maps a 0-100 score onto a calendar category.
func CategoryForScore(score float64) models.ScoreCategory {
	switch {
	case score >= ExcellentThreshold:
		return models.ScoreExcellent
	case score >= GoodThreshold:
		return models.ScoreGood
	case score >= AverageThreshold:
		return models.ScoreAverage
	default:
		return models.ScorePoor
	}
}

// ConfidenceForSampleCount tiers confidence by the number of same-weekday samples.
func ConfidenceForSampleCount(n int) float64 {
	switch {
	case n >= 4:
		return 85
	case n >= 2:
		return 70
	case n == 1:
		return 55
	default:
		return DefaultConfidence
	}
}

// ConfidenceLevelFor labels a numeric confidence.
func ConfidenceLevelFor(confidence float64) models.ConfidenceLevel {
	switch {
	case confidence >= HighConfidenceThreshold:
		return models.ConfidenceHigh
	case confidence >= MediumConfidenceThreshold:
		return models.ConfidenceMedium
	default:
		return models.ConfidenceLow
	}
}

// MostFrequentTimes flattens per-weekday time lists (scanned Sunday to
// Saturday) and returns up to limit distinct times ordered by descending
// frequency. Ties keep first-occurrence order.
func MostFrequentTimes(byDay map[int][]string, limit int) []string {
	if limit <= 0 || len(byDay) == 0 {
		return nil
	}

	counts := make(map[string]int)
	var order []string
	for day := 0; day < 7; day++ {
		for _, t := range byDay[day] {
			if t == "" {
				continue
			}
			if _, seen := counts[t]; !seen {
				order = append(order, t)
			}
			counts[t]++
		}
	}
	if len(order) == 0 {
		return nil
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > limit {
		order = order[:limit]
	}
	return order
}
