// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package calendar

import (
	"github.com/tomtom215/cadence/internal/scoring"
)

// timeResolver resolves recommended times through the weekday, cross-weekday
// and default fallbacks.
type timeResolver struct {
	byDay        map[int][]string
	crossWeekday []string
}

func newTimeResolver(byDay map[int][]string) *timeResolver {
	return &timeResolver{
		byDay:        byDay,
		crossWeekday: scoring.MostFrequentTimes(byDay, scoring.RecommendedTimesLimit),
	}
}

// forWeekday returns a fresh list so cells never share backing arrays.
func (r *timeResolver) forWeekday(wd int) []string {
	if own := dedupe(r.byDay[wd]); len(own) > 0 {
		return own
	}
	if len(r.crossWeekday) > 0 {
		out := make([]string, len(r.crossWeekday))
		copy(out, r.crossWeekday)
		return out
	}
	return scoring.DefaultRecommendedTimes()
}

// dedupe keeps the first occurrence of each non-empty time, up to the limit.
func dedupe(times []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(times))
	for _, t := range times {
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
		if len(out) == scoring.RecommendedTimesLimit {
			break
		}
	}
	return out
}
