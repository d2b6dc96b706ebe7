// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package recommend

import (
	"fmt"
	"math"
	"strconv"

	"github.com/tomtom215/cadence/internal/models"
	"github.com/tomtom215/cadence/internal/scoring"
)

// MaxInsights bounds the number of insights per result.
const MaxInsights = 4

// BuildInsights derives up to four insights from ranked slots. The first
// ranked slot is treated as the best. No slots means no insights.
func BuildInsights(ranked []models.TimeSlotRecommendation) []models.Insight {
	if len(ranked) == 0 {
		return []models.Insight{}
	}

	best := ranked[0]
	insights := make([]models.Insight, 0, MaxInsights)
	insights = append(insights,
		timeInsight(best),
		audienceInsight(best, len(ranked)),
		contentInsight(best),
	)
	if len(ranked) >= 2 {
		insights = append(insights, trendInsight(ranked))
	}
	return insights
}

func timeInsight(best models.TimeSlotRecommendation) models.Insight {
	when := fmt.Sprintf("%s at %s", scoring.DayName(best.DayOfWeek), scoring.FormatClock12(best.Hour))

	var message string
	if rel := best.RelativePerformance; rel != nil {
		direction := "more"
		if *rel < 0 {
			direction = "fewer"
		}
		message = fmt.Sprintf("Posting on %s gets %s%% %s views than your channel average.",
			when, formatPercent(math.Abs(*rel)), direction)
	} else {
		message = fmt.Sprintf("Posting on %s shows %s%% higher engagement.",
			when, formatPercent(best.Confidence))
	}

	level := best.ConfidenceLevel
	if !level.Valid() {
		level = scoring.ConfidenceLevelFor(best.Confidence)
	}

	return models.Insight{
		Type:        models.InsightTime,
		Title:       "Best Time to Post",
		Message:     message,
		Description: fmt.Sprintf("Your best time to post is %s (%s confidence).", when, level),
	}
}

func audienceInsight(best models.TimeSlotRecommendation, slotCount int) models.Insight {
	period := scoring.TimeOfDay(best.Hour)
	noun := "time slots"
	if slotCount == 1 {
		noun = "time slot"
	}
	return models.Insight{
		Type:        models.InsightAudience,
		Title:       "Audience Activity",
		Message:     fmt.Sprintf("Your audience is most active in the %s.", period),
		Description: fmt.Sprintf("Based on %d %s analyzed.", slotCount, noun),
	}
}

func contentInsight(best models.TimeSlotRecommendation) models.Insight {
	if scoring.IsWeekend(best.DayOfWeek) {
		return models.Insight{
			Type:        models.InsightContent,
			Title:       "Content Strategy",
			Message:     "Weekend posts perform best. Lean into entertainment and lifestyle content.",
			Description: fmt.Sprintf("Your strongest slot falls on %s, when audiences browse casually.", scoring.DayName(best.DayOfWeek)),
		}
	}
	return models.Insight{
		Type:        models.InsightContent,
		Title:       "Content Strategy",
		Message:     "Weekday posts perform best. Focus on professional and educational content.",
		Description: fmt.Sprintf("Your strongest slot falls on %s, when audiences look for useful content.", scoring.DayName(best.DayOfWeek)),
	}
}

func trendInsight(ranked []models.TimeSlotRecommendation) models.Insight {
	var total float64
	for i := range ranked {
		total += ranked[i].AvgViews
	}
	mean := total / float64(len(ranked))

	if mean > 0 {
		return models.Insight{
			Type:        models.InsightTrend,
			Title:       "Views Trend",
			Message:     fmt.Sprintf("Your recommended time slots average %s views per post.", strconv.FormatFloat(math.Round(mean), 'f', 0, 64)),
			Description: fmt.Sprintf("Averaged across %d time slots.", len(ranked)),
		}
	}
	return models.Insight{
		Type:        models.InsightTrend,
		Title:       "Views Trend",
		Message:     "Keep posting consistently to build a reliable views baseline.",
		Description: "Not enough view data yet to report an average.",
	}
}

// formatPercent renders a percentage with at most one decimal place.
func formatPercent(v float64) string {
	return strconv.FormatFloat(scoring.Round1(v), 'f', -1, 64)
}
