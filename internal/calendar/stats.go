// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package calendar

import (
	"time"

	"github.com/tomtom215/cadence/internal/models"
	"github.com/tomtom215/cadence/internal/scoring"
)

// monthStats indexes the month's daily samples once per projection.
type monthStats struct {
	byDate map[int]models.PerformanceSample

	// monthMax is the best metric among this month's dated samples with
	// posts. Historical categories are relative to it.
	monthMax float64

	// windowMax is the best metric among all samples with posts, including
	// other months. Weekday estimates are relative to it.
	windowMax float64

	// weekday totals over all samples with posts
	weekdaySum   [7]float64
	weekdayCount [7]int
}

func newMonthStats(samples []models.PerformanceSample, year int, month time.Month) *monthStats {
	st := &monthStats{byDate: make(map[int]models.PerformanceSample)}

	for i := range samples {
		s := samples[i]

		inMonth := s.IsDaily() && matchesMonth(s, year, month)
		if inMonth {
			if _, seen := st.byDate[s.Date]; !seen {
				st.byDate[s.Date] = s
			}
		}

		if s.PostCount <= 0 {
			continue
		}
		m := s.Metric()
		if inMonth && m > st.monthMax {
			st.monthMax = m
		}
		if m > st.windowMax {
			st.windowMax = m
		}
		wd := sampleWeekday(s, year, month)
		st.weekdaySum[wd] += m
		st.weekdayCount[wd]++
	}
	return st
}

// forDate returns the first sample recorded for day d.
func (st *monthStats) forDate(d int) (models.PerformanceSample, bool) {
	s, ok := st.byDate[d]
	return s, ok
}

// weekdayEstimate predicts score, confidence and views for a weekday from
// same-weekday samples.
func (st *monthStats) weekdayEstimate(wd int) (score, confidence, views float64) {
	n := st.weekdayCount[wd]
	confidence = scoring.ConfidenceForSampleCount(n)
	if n == 0 {
		return scoring.DefaultScore, confidence, 0
	}
	views = st.weekdaySum[wd] / float64(n)
	return scoring.Ratio(views, st.windowMax), confidence, views
}

func matchesMonth(s models.PerformanceSample, year int, month time.Month) bool {
	if s.Month != 0 && s.Month != int(month) {
		return false
	}
	if s.Year != 0 && s.Year != year {
		return false
	}
	return true
}

// sampleWeekday derives the weekday from the calendar date when the sample
// is fully tagged, otherwise trusts the sample's own field.
func sampleWeekday(s models.PerformanceSample, year int, month time.Month) int {
	if s.IsDaily() && s.Month != 0 && s.Year != 0 {
		return int(time.Date(s.Year, time.Month(s.Month), s.Date, 0, 0, 0, 0, time.UTC).Weekday())
	}
	if s.IsDaily() && s.Month == 0 && s.Year == 0 {
		return int(time.Date(year, month, s.Date, 0, 0, 0, 0, time.UTC).Weekday())
	}
	return scoring.ClampWeekday(s.DayOfWeek)
}
