// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package planner

import (
	"time"

	"github.com/tomtom215/cadence/internal/calendar"
	"github.com/tomtom215/cadence/internal/metrics"
	"github.com/tomtom215/cadence/internal/normalize"
	"github.com/tomtom215/cadence/internal/recommend"
)

// AnalyzeRequest carries loosely typed records from a caller that computed
// its own rollups. When TimeSlots is empty, slots and combinations are
// derived from Samples.
type AnalyzeRequest struct {
	Samples      []normalize.Record
	TimeSlots    []normalize.Record
	Combinations []normalize.Record
	ContentTypes []normalize.Record
}

// Analyze aggregates caller-supplied records without touching the store.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (p *Planner) Analyze(req AnalyzeRequest) *RecommendationResponse {
	start := time.Now()
	p.requestCount.Add(1)
	now := p.now().In(p.loc)

	result, samples := p.analyze(req)

	elapsed := time.Since(start)
	metrics.RecordAggregation("inline", len(result.Ranked), elapsed)

	return &RecommendationResponse{
		Recommendation: result,
		Metadata:       p.metadata("", now, 0, samples, elapsed),
	}
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (p *Planner) analyze(req AnalyzeRequest) (*recommend.Result, int) {
	cfg := p.aggregator.Config()
	in := recommend.Input{
		TimeSlots:    normalize.TimeSlots(req.TimeSlots),
		Combinations: normalize.Combinations(req.Combinations),
		ContentTypes: normalize.ContentTypes(req.ContentTypes),
	}

	samples := normalize.Samples(req.Samples)
	if len(in.TimeSlots) == 0 && len(samples) > 0 {
		in.TimeSlots = recommend.DeriveTimeSlots(samples, cfg)
		if len(in.Combinations) == 0 {
			in.Combinations = recommend.DeriveCombinations(samples, cfg)
		}
	}

	return p.aggregator.Aggregate(in), len(samples) + len(req.TimeSlots)
}

// ProjectRequest is a stateless calendar request. Analyze supplies the
// weekday scores and times; CalendarSamples are the daily rollups for
// historical days.
type ProjectRequest struct {
	Year            int
	Month           time.Month
	Now             *time.Time
	Location        *time.Location
	CalendarSamples []normalize.Record
	Analyze         AnalyzeRequest
}

// Project projects a month from caller-supplied records. Now defaults to the
// planner clock; Location, when set, overrides the planner zone.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (p *Planner) Project(req ProjectRequest) *CalendarResponse {
	start := time.Now()
	p.requestCount.Add(1)

	loc := p.loc
	if req.Location != nil {
		loc = req.Location
	}
	now := p.now()
	if req.Now != nil {
		now = *req.Now
	}
	now = now.In(loc)

	result, n := p.analyze(req.Analyze)
	daily := normalize.Samples(req.CalendarSamples)

	projection := p.projector.Project(calendar.Request{
		Year:           req.Year,
		Month:          req.Month,
		Now:            now,
		Samples:        daily,
		BestTimesByDay: result.BestTimesByDay,
		DayScores:      result.DayScores,
	})

	elapsed := time.Since(start)
	metrics.RecordProjection("inline", categoryCounts(projection), elapsed)

	md := p.metadata("", now, 0, n+len(daily), elapsed)
	md.Timezone = loc.String()
	return &CalendarResponse{
		Calendar:       projection,
		BestTimesByDay: result.BestTimesByDay,
		Metadata:       md,
	}
}
