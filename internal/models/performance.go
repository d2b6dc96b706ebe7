// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package models

// ConfidenceLevel is the coarse reliability label attached to a time slot.
type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "high"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceLow    ConfidenceLevel = "low"
)

// Valid reports whether the level is one of the known labels.
func (l ConfidenceLevel) Valid() bool {
	switch l {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
		return true
	default:
		return false
	}
}

// PerformanceSample is one aggregated observation of post performance.
//
// Hourly samples describe a (weekday, hour) bucket over a lookback window.
// Daily samples additionally carry Date/Month/Year and describe a single
// calendar day; Hour is meaningless for them and left at zero.
type PerformanceSample struct {
	Hour          int     `json:"hour"`
	DayOfWeek     int     `json:"dayOfWeek"`
	AvgEngagement float64 `json:"avgEngagement"`
	AvgViews      float64 `json:"avgViews"`
	PostCount     int     `json:"postCount"`

	// Date is the day of month (1-31); zero means the sample is not a daily rollup.
	Date int `json:"date,omitempty"`
	// Month is 1-12; zero means unset.
	Month int `json:"month,omitempty"`
	Year  int `json:"year,omitempty"`
}

// IsDaily reports whether the sample is tagged with a calendar day.
func (s PerformanceSample) IsDaily() bool {
	return s.Date > 0
}

// Metric returns the sample's comparable performance value: average views,
// or average engagement when the sample carries no views.
func (s PerformanceSample) Metric() float64 {
	if s.AvgViews > 0 {
		return s.AvgViews
	}
	return s.AvgEngagement
}

// TimeSlotRecommendation is a candidate posting slot with its confidence.
type TimeSlotRecommendation struct {
	Hour          int     `json:"hour"`
	DayOfWeek     int     `json:"dayOfWeek"`
	Confidence    float64 `json:"confidence"`
	AvgEngagement float64 `json:"avgEngagement"`
	AvgViews      float64 `json:"avgViews"`

	// RelativePerformance is the signed percent difference between the slot's
	// average views and the channel-wide average. Nil when unknown.
	RelativePerformance *float64 `json:"relativePerformance,omitempty"`

	ConfidenceLevel ConfidenceLevel `json:"confidenceLevel"`
}

// DayHourCombination is the day-named slot representation. When supplied it
// takes precedence over time slots for per-weekday scoring.
type DayHourCombination struct {
	DayName             string   `json:"dayName"`
	Hour                int      `json:"hour"`
	Score               float64  `json:"score"`
	Confidence          float64  `json:"confidence"`
	AvgViews            float64  `json:"avgViews"`
	RelativePerformance *float64 `json:"relativePerformance,omitempty"`
}

// ContentTypeRecommendation summarizes how one content format performs.
type ContentTypeRecommendation struct {
	ContentType   string  `json:"contentType"`
	AvgEngagement float64 `json:"avgEngagement"`
	AvgViews      float64 `json:"avgViews"`
	PostCount     int     `json:"postCount"`
	Confidence    float64 `json:"confidence"`
}

// DayScore is the per-weekday score handed from the aggregator to the
// calendar projector.
type DayScore struct {
	Score      float64 `json:"score"`
	Confidence float64 `json:"confidence"`
	AvgViews   float64 `json:"avgViews"`
}

// Ptr returns a pointer to a copy of v.
func Ptr[T any](v T) *T {
	return &v
}
