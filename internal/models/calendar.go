// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package models

// ScoreCategory buckets a calendar day's performance.
type ScoreCategory string

const (
	ScoreExcellent ScoreCategory = "excellent"
	ScoreGood      ScoreCategory = "good"
	ScoreAverage   ScoreCategory = "average"
	ScorePoor      ScoreCategory = "poor"
	ScoreNoData    ScoreCategory = "no-data"
)

// InsightType classifies a derived insight.
type InsightType string

const (
	InsightTime     InsightType = "time"
	InsightAudience InsightType = "audience"
	InsightContent  InsightType = "content"
	InsightTrend    InsightType = "trend"
)

// Insight is a short display-only observation about a channel's posting data.
type Insight struct {
	Type        InsightType `json:"type"`
	Title       string      `json:"title"`
	Message     string      `json:"message"`
	Description string      `json:"description"`
}

// DayPerformance is one cell of the projected calendar.
//
// Past days populate the historical fields (AvgViews, AvgEngagement,
// PostCount). Today and future days populate the predictive fields
// (RecommendationScore, Confidence) and carry a predicted AvgViews.
type DayPerformance struct {
	Date      int  `json:"date"`
	DayOfWeek int  `json:"dayOfWeek"`
	Month     int  `json:"month,omitempty"`
	Year      int  `json:"year,omitempty"`
	IsToday   bool `json:"isToday"`
	IsPast    bool `json:"isPast"`
	IsFuture  bool `json:"isFuture"`

	Score ScoreCategory `json:"score"`

	AvgViews      *float64 `json:"avgViews,omitempty"`
	AvgEngagement *float64 `json:"avgEngagement,omitempty"`
	PostCount     *int     `json:"postCount,omitempty"`

	RecommendationScore *float64 `json:"recommendationScore,omitempty"`
	Confidence          *float64 `json:"confidence,omitempty"`

	// RecommendedTimes holds "HH:00" strings in preference order.
	RecommendedTimes []string `json:"recommendedTimes,omitempty"`
}

// BestDay is one entry of the best-days summary.
type BestDay struct {
	DayOfWeek int     `json:"dayOfWeek"`
	DayName   string  `json:"dayName"`
	ShortName string  `json:"shortName"`
	Score     float64 `json:"score"`
	AvgViews  float64 `json:"avgViews"`
}
