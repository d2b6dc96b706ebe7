// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package recommend

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cadence/internal/models"
	"github.com/tomtom215/cadence/internal/scoring"
)

// Aggregator ranks time slots and derives per-weekday outputs.
type Aggregator struct {
	config Config
	logger zerolog.Logger
}

// NewAggregator creates an aggregator. A nil config uses DefaultConfig.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewAggregator(cfg *Config, logger zerolog.Logger) *Aggregator {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Aggregator{
		config: *cfg,
		logger: logger.With().Str("component", "recommend").Logger(),
	}
}

// Config returns a copy of the aggregator's configuration.
func (a *Aggregator) Config() Config {
	return a.config
}

// Aggregate ranks the input slots and builds insights, day scores, best
// times per weekday and ranked content types.
//
//nolint:gocritic // hugeParam: in passed by value for immutability
func (a *Aggregator) Aggregate(in Input) *Result {
	ranked := Rank(in.TimeSlots)

	res := &Result{
		Ranked:         ranked,
		Insights:       BuildInsights(ranked),
		DayScores:      DayScores(in.Combinations, ranked),
		BestTimesByDay: BestTimesByDay(ranked),
		ContentTypes:   RankContentTypes(in.ContentTypes),
	}
	if len(ranked) > 0 {
		best := ranked[0]
		res.Best = &best
		res.Available = true
	}

	a.logger.Debug().
		Int("slots", len(ranked)).
		Int("combinations", len(in.Combinations)).
		Int("day_scores", len(res.DayScores)).
		Int("insights", len(res.Insights)).
		Bool("available", res.Available).
		Msg("aggregated time slots")

	return res
}

// Rank returns a copy of slots stable-sorted by descending confidence.
// Confidence is clamped to [0,100], hour and weekday to their ranges, and a
// missing or unknown confidence level is derived from the clamped confidence.
func Rank(slots []models.TimeSlotRecommendation) []models.TimeSlotRecommendation {
	ranked := make([]models.TimeSlotRecommendation, len(slots))
	copy(ranked, slots)
	for i := range ranked {
		s := &ranked[i]
		s.Confidence = scoring.Clamp(s.Confidence)
		s.Hour = scoring.ClampHour(s.Hour)
		s.DayOfWeek = scoring.ClampWeekday(s.DayOfWeek)
		if !s.ConfidenceLevel.Valid() {
			s.ConfidenceLevel = scoring.ConfidenceLevelFor(s.Confidence)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Confidence > ranked[j].Confidence
	})
	return ranked
}

// BestTimesByDay groups ranked slots by weekday into up to three distinct
// "HH:00" strings each.
func BestTimesByDay(ranked []models.TimeSlotRecommendation) map[int][]string {
	out := make(map[int][]string)
	for i := range ranked {
		day := scoring.ClampWeekday(ranked[i].DayOfWeek)
		if len(out[day]) >= scoring.RecommendedTimesLimit {
			continue
		}
		t := scoring.FormatHour(ranked[i].Hour)
		if contains(out[day], t) {
			continue
		}
		out[day] = append(out[day], t)
	}
	return out
}

// RankContentTypes returns a copy stable-sorted by descending engagement.
func RankContentTypes(types []models.ContentTypeRecommendation) []models.ContentTypeRecommendation {
	ranked := make([]models.ContentTypeRecommendation, len(types))
	copy(ranked, types)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AvgEngagement > ranked[j].AvgEngagement
	})
	return ranked
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
