// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package recommend

import (
	"github.com/tomtom215/cadence/internal/models"
)

// Input is everything the aggregator needs for one channel and window.
// Combinations and ContentTypes are optional.
type Input struct {
	TimeSlots    []models.TimeSlotRecommendation    `json:"timeSlots"`
	Combinations []models.DayHourCombination        `json:"combinations,omitempty"`
	ContentTypes []models.ContentTypeRecommendation `json:"contentTypes,omitempty"`
}

// Result is the aggregator output.
type Result struct {
	// Ranked holds the input slots stable-sorted by descending confidence.
	Ranked []models.TimeSlotRecommendation `json:"ranked"`

	// Best is Ranked[0], or nil when no slots were supplied.
	Best *models.TimeSlotRecommendation `json:"best,omitempty"`

	// Available is false when there is nothing to recommend.
	Available bool `json:"available"`

	Insights []models.Insight `json:"insights"`

	// DayScores is keyed by weekday (0 = Sunday). Weekdays with no data are absent.
	DayScores map[int]models.DayScore `json:"dayPerformanceScores"`

	// BestTimesByDay lists up to three "HH:00" times per weekday, best first.
	BestTimesByDay map[int][]string `json:"bestTimesByDay"`

	ContentTypes []models.ContentTypeRecommendation `json:"contentTypes"`
}
