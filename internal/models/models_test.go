// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package models

import "testing"

func TestPerformanceSample_Metric(t *testing.T) {
	tests := []struct {
		name     string
		sample   PerformanceSample
		expected float64
	}{
		{"views preferred", PerformanceSample{AvgViews: 420, AvgEngagement: 7}, 420},
		{"engagement when views absent", PerformanceSample{AvgEngagement: 7.5}, 7.5},
		{"all zero", PerformanceSample{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sample.Metric(); got != tt.expected {
				t.Errorf("Metric() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestPerformanceSample_IsDaily(t *testing.T) {
	if (PerformanceSample{Hour: 9}).IsDaily() {
		t.Error("hourly sample reported as daily")
	}
	if !(PerformanceSample{Date: 3}).IsDaily() {
		t.Error("dated sample not reported as daily")
	}
}

func TestPostFact_EngagementRate(t *testing.T) {
	p := PostFact{Views: 200, Likes: 10, Comments: 4, Shares: 6}
	if got := p.EngagementRate(); got != 10 {
		t.Errorf("EngagementRate() = %v, want 10", got)
	}
	if got := (PostFact{Likes: 5}).EngagementRate(); got != 0 {
		t.Errorf("EngagementRate() without views = %v, want 0", got)
	}
}

func TestConfidenceLevel_Valid(t *testing.T) {
	for _, l := range []ConfidenceLevel{ConfidenceHigh, ConfidenceMedium, ConfidenceLow} {
		if !l.Valid() {
			t.Errorf("%q.Valid() = false", l)
		}
	}
	if ConfidenceLevel("extreme").Valid() {
		t.Error(`"extreme".Valid() = true`)
	}
}

func TestPtr(t *testing.T) {
	p := Ptr(3.5)
	q := Ptr(3.5)
	if p == q || *p != *q {
		t.Errorf("Ptr() should return distinct pointers to equal values")
	}
}
