// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package recommend

import (
	"sort"

	"github.com/tomtom215/cadence/internal/models"
	"github.com/tomtom215/cadence/internal/scoring"
)

// derivedSlot is one sample scored against the channel baseline.
type derivedSlot struct {
	sample     models.PerformanceSample
	score      float64
	confidence float64
	relative   *float64
}

// deriveSlots scores every sample with posts. Samples are scored against the
// best sample's metric; confidence shrinks for slots with few posts.
func deriveSlots(samples []models.PerformanceSample, cfg Config) []derivedSlot {
	full := cfg.MinPostsForFullConfidence
	if full < 1 {
		full = 1
	}

	var usable []models.PerformanceSample
	var total, maxMetric float64
	for i := range samples {
		if samples[i].PostCount <= 0 {
			continue
		}
		m := samples[i].Metric()
		usable = append(usable, samples[i])
		total += m
		if m > maxMetric {
			maxMetric = m
		}
	}
	if len(usable) == 0 {
		return nil
	}
	channelAvg := total / float64(len(usable))

	out := make([]derivedSlot, 0, len(usable))
	for _, s := range usable {
		m := s.Metric()
		score := scoring.Ratio(m, maxMetric)
		weight := float64(min(s.PostCount, full)) / float64(full)

		d := derivedSlot{
			sample:     s,
			score:      scoring.Round1(score),
			confidence: scoring.Round1(scoring.Clamp(score * weight)),
		}
		if channelAvg > 0 {
			rel := scoring.Round1((m - channelAvg) / channelAvg * 100)
			d.relative = &rel
		}
		out = append(out, d)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].confidence > out[j].confidence
	})
	return out
}

// DeriveTimeSlots turns per-(weekday, hour) samples into ranked time slots,
// capped at cfg.MaxSlots. Samples without posts are ignored.
func DeriveTimeSlots(samples []models.PerformanceSample, cfg Config) []models.TimeSlotRecommendation {
	derived := deriveSlots(samples, cfg)
	if cfg.MaxSlots > 0 && len(derived) > cfg.MaxSlots {
		derived = derived[:cfg.MaxSlots]
	}

	out := make([]models.TimeSlotRecommendation, 0, len(derived))
	for _, d := range derived {
		out = append(out, models.TimeSlotRecommendation{
			Hour:                scoring.ClampHour(d.sample.Hour),
			DayOfWeek:           scoring.ClampWeekday(d.sample.DayOfWeek),
			Confidence:          d.confidence,
			AvgEngagement:       d.sample.AvgEngagement,
			AvgViews:            d.sample.AvgViews,
			RelativePerformance: d.relative,
			ConfidenceLevel:     scoring.ConfidenceLevelFor(d.confidence),
		})
	}
	return out
}

// DeriveCombinations turns the same samples into day-named combinations,
// one per sample with posts, ordered by descending confidence.
func DeriveCombinations(samples []models.PerformanceSample, cfg Config) []models.DayHourCombination {
	derived := deriveSlots(samples, cfg)

	out := make([]models.DayHourCombination, 0, len(derived))
	for _, d := range derived {
		out = append(out, models.DayHourCombination{
			DayName:             scoring.DayName(d.sample.DayOfWeek),
			Hour:                scoring.ClampHour(d.sample.Hour),
			Score:               d.score,
			Confidence:          d.confidence,
			AvgViews:            d.sample.AvgViews,
			RelativePerformance: d.relative,
		})
	}
	return out
}

// DeriveContentTypes fills in confidence from post counts.
func DeriveContentTypes(stats []models.ContentTypeRecommendation, cfg Config) []models.ContentTypeRecommendation {
	full := cfg.MinPostsForFullConfidence
	if full < 1 {
		full = 1
	}

	out := make([]models.ContentTypeRecommendation, len(stats))
	for i, s := range stats {
		s.Confidence = scoring.Round1(float64(min(max(s.PostCount, 0), full)) / float64(full) * 100)
		out[i] = s
	}
	return out
}
