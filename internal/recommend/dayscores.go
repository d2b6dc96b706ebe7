// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package recommend

import (
	"github.com/tomtom215/cadence/internal/models"
	"github.com/tomtom215/cadence/internal/scoring"
)

// DayScores derives one score per weekday. Combinations take precedence;
// when none carry a recognizable day name the best ranked slot per weekday
// is used instead.
func DayScores(combinations []models.DayHourCombination, ranked []models.TimeSlotRecommendation) map[int]models.DayScore {
	if scores := scoresFromCombinations(combinations); len(scores) > 0 {
		return scores
	}
	return scoresFromSlots(ranked)
}

func scoresFromCombinations(combinations []models.DayHourCombination) map[int]models.DayScore {
	out := make(map[int]models.DayScore)
	best := make(map[int]float64)

	for i := range combinations {
		c := &combinations[i]
		day, ok := scoring.ParseDayName(c.DayName)
		if !ok {
			continue
		}
		if prev, seen := best[day]; seen && c.Score <= prev {
			continue
		}
		best[day] = c.Score
		out[day] = models.DayScore{
			Score:      scoring.Clamp(c.Score),
			Confidence: scoring.Clamp(c.Confidence),
			AvgViews:   c.AvgViews,
		}
	}
	return out
}

func scoresFromSlots(ranked []models.TimeSlotRecommendation) map[int]models.DayScore {
	out := make(map[int]models.DayScore)
	for i := range ranked {
		day := scoring.ClampWeekday(ranked[i].DayOfWeek)
		if _, seen := out[day]; seen {
			continue
		}
		confidence := scoring.Clamp(ranked[i].Confidence)
		out[day] = models.DayScore{
			Score:      confidence,
			Confidence: confidence,
			AvgViews:   ranked[i].AvgViews,
		}
	}
	return out
}
