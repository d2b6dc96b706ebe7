// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package calendar

import (
	"time"

	"github.com/tomtom215/cadence/internal/models"
)

// Request is the input to one projection.
type Request struct {
	Year  int
	Month time.Month

	// Now is the reference instant. Its location decides day boundaries.
	Now time.Time

	// Samples are daily rollups scoped to the displayed month.
	Samples []models.PerformanceSample

	// BestTimesByDay maps weekday to "HH:00" times, best first.
	BestTimesByDay map[int][]string

	// DayScores maps weekday to the aggregator's per-weekday score.
	DayScores map[int]models.DayScore
}

// Projection is the classified month.
type Projection struct {
	Year           int    `json:"year"`
	Month          int    `json:"month"`
	DaysInMonth    int    `json:"daysInMonth"`
	FirstDayOffset int    `json:"firstDayOffset"`
	Today          string `json:"today"`

	// Days holds one cell per calendar day in ascending order.
	Days []models.DayPerformance `json:"days"`

	// Grid is the padded weekly layout; leading entries are nil.
	Grid []*models.DayPerformance `json:"grid"`

	BestDays []models.BestDay `json:"bestDays"`
}

// CategoryCounts tallies days per score category.
func (p *Projection) CategoryCounts() map[models.ScoreCategory]int {
	counts := make(map[models.ScoreCategory]int)
	for i := range p.Days {
		counts[p.Days[i].Score]++
	}
	return counts
}
