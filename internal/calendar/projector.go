// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package calendar

import (
	"math"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cadence/internal/models"
	"github.com/tomtom215/cadence/internal/scoring"
)

// BestDaysLimit is the number of entries in the best-days summary.
const BestDaysLimit = 3

// Projector classifies the days of a month. It holds no mutable state.
type Projector struct {
	logger zerolog.Logger
}

// NewProjector creates a projector.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewProjector(logger zerolog.Logger) *Projector {
	return &Projector{
		logger: logger.With().Str("component", "calendar").Logger(),
	}
}

// Project classifies every day of req.Year/req.Month against req.Now.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (p *Projector) Project(req Request) *Projection {
	loc := req.Now.Location()
	first := time.Date(req.Year, req.Month, 1, 0, 0, 0, 0, loc)
	year, month := first.Year(), first.Month()
	today := scoring.StartOfDay(req.Now)

	days := scoring.DaysInMonth(year, month)
	offset := int(first.Weekday())

	st := newMonthStats(req.Samples, year, month)
	times := newTimeResolver(req.BestTimesByDay)

	proj := &Projection{
		Year:           year,
		Month:          int(month),
		DaysInMonth:    days,
		FirstDayOffset: offset,
		Today:          today.Format("2006-01-02"),
		Days:           make([]models.DayPerformance, days),
		Grid:           make([]*models.DayPerformance, offset+days),
		BestDays:       BestDays(req.DayScores),
	}

	for d := 1; d <= days; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, loc)
		cell := models.DayPerformance{
			Date:      d,
			DayOfWeek: int(date.Weekday()),
			Month:     int(month),
			Year:      year,
			IsPast:    date.Before(today),
			IsToday:   date.Equal(today),
			IsFuture:  date.After(today),
		}

		switch {
		case cell.IsPast:
			if sample, ok := st.forDate(d); ok {
				classifyHistorical(&cell, sample, st.monthMax, times)
			} else {
				classifyEmpty(&cell)
			}
		default:
			classifyPredicted(&cell, req.DayScores, st, times)
		}

		proj.Days[d-1] = cell
	}

	for i := range proj.Days {
		proj.Grid[offset+i] = &proj.Days[i]
	}

	p.logger.Debug().
		Int("year", year).
		Int("month", int(month)).
		Str("today", proj.Today).
		Int("samples", len(req.Samples)).
		Int("day_scores", len(req.DayScores)).
		Msg("projected calendar")

	return proj
}

func classifyHistorical(cell *models.DayPerformance, s models.PerformanceSample, monthMax float64, times *timeResolver) {
	cell.AvgViews = models.Ptr(s.AvgViews)
	cell.AvgEngagement = models.Ptr(s.AvgEngagement)
	cell.PostCount = models.Ptr(s.PostCount)
	cell.RecommendedTimes = times.forWeekday(cell.DayOfWeek)

	if s.PostCount <= 0 {
		cell.Score = models.ScoreNoData
		return
	}
	cell.Score = scoring.CategoryForScore(scoring.Ratio(s.Metric(), monthMax))
}

func classifyEmpty(cell *models.DayPerformance) {
	cell.Score = models.ScoreNoData
	cell.PostCount = models.Ptr(0)
	cell.AvgEngagement = models.Ptr(0.0)
}

func classifyPredicted(cell *models.DayPerformance, dayScores map[int]models.DayScore, st *monthStats, times *timeResolver) {
	var score, confidence, views float64
	if ds, ok := dayScores[cell.DayOfWeek]; ok {
		score = scoring.Clamp(ds.Score)
		confidence = scoring.Clamp(ds.Confidence)
		views = ds.AvgViews
	} else {
		score, confidence, views = st.weekdayEstimate(cell.DayOfWeek)
	}

	score = math.Round(score)
	cell.RecommendationScore = models.Ptr(score)
	cell.Confidence = models.Ptr(confidence)
	cell.AvgViews = models.Ptr(views)
	cell.Score = scoring.CategoryForScore(score)
	cell.RecommendedTimes = times.forWeekday(cell.DayOfWeek)
}

// BestDays returns the top weekdays by score, ties broken by weekday index.
func BestDays(dayScores map[int]models.DayScore) []models.BestDay {
	out := make([]models.BestDay, 0, len(dayScores))
	for day := 0; day < 7; day++ {
		ds, ok := dayScores[day]
		if !ok {
			continue
		}
		out = append(out, models.BestDay{
			DayOfWeek: day,
			DayName:   scoring.DayName(day),
			ShortName: scoring.ShortDayName(day),
			Score:     scoring.Clamp(ds.Score),
			AvgViews:  ds.AvgViews,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if len(out) > BestDaysLimit {
		out = out[:BestDaysLimit]
	}
	return out
}
