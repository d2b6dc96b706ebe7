// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package scoring

import (
	"math"
	"reflect"
	"testing"

	"github.com/tomtom215/cadence/internal/models"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"negative becomes zero", -12.5, 0},
		{"zero stays", 0, 0},
		{"in range stays", 63.2, 63.2},
		{"hundred stays", 100, 100},
		{"above range caps", 140, 100},
		{"NaN becomes zero", math.NaN(), 0},
		{"positive infinity caps", math.Inf(1), 100},
		{"negative infinity floors", math.Inf(-1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.input); got != tt.expected {
				t.Errorf("Clamp(%v) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRatio(t *testing.T) {
	tests := []struct {
		name     string
		num, den float64
		expected float64
	}{
		{"half", 50, 100, 50},
		{"equal", 300, 300, 100},
		{"zero denominator", 10, 0, DefaultScore},
		{"negative denominator", 10, -3, DefaultScore},
		{"NaN denominator", 10, math.NaN(), DefaultScore},
		{"overflow clamps", 200, 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Ratio(tt.num, tt.den); got != tt.expected {
				t.Errorf("Ratio(%v, %v) = %v, want %v", tt.num, tt.den, got, tt.expected)
			}
		})
	}
}

func TestCategoryForScore(t *testing.T) {
	tests := []struct {
		score    float64
		expected models.ScoreCategory
	}{
		{100, models.ScoreExcellent},
		{80, models.ScoreExcellent},
		{79.9, models.ScoreGood},
		{60, models.ScoreGood},
		{59.9, models.ScoreAverage},
		{50, models.ScoreAverage},
		{40, models.ScoreAverage},
		{39.9, models.ScorePoor},
		{0, models.ScorePoor},
	}

	for _, tt := range tests {
		if got := CategoryForScore(tt.score); got != tt.expected {
			t.Errorf("CategoryForScore(%v) = %q, want %q", tt.score, got, tt.expected)
		}
	}
}

func TestConfidenceForSampleCount(t *testing.T) {
	tests := []struct {
		count    int
		expected float64
	}{
		{0, 50},
		{1, 55},
		{2, 70},
		{3, 70},
		{4, 85},
		{12, 85},
		{-1, 50},
	}

	for _, tt := range tests {
		if got := ConfidenceForSampleCount(tt.count); got != tt.expected {
			t.Errorf("ConfidenceForSampleCount(%d) = %v, want %v", tt.count, got, tt.expected)
		}
	}
}

func TestConfidenceLevelFor(t *testing.T) {
	tests := []struct {
		confidence float64
		expected   models.ConfidenceLevel
	}{
		{95, models.ConfidenceHigh},
		{70, models.ConfidenceHigh},
		{69.99, models.ConfidenceMedium},
		{40, models.ConfidenceMedium},
		{39, models.ConfidenceLow},
		{0, models.ConfidenceLow},
	}

	for _, tt := range tests {
		if got := ConfidenceLevelFor(tt.confidence); got != tt.expected {
			t.Errorf("ConfidenceLevelFor(%v) = %q, want %q", tt.confidence, got, tt.expected)
		}
	}
}

func TestDefaultRecommendedTimes_ReturnsCopy(t *testing.T) {
	first := DefaultRecommendedTimes()
	first[0] = "mutated"

	second := DefaultRecommendedTimes()
	want := []string{"10:00", "15:00", "20:00"}
	if !reflect.DeepEqual(second, want) {
		t.Errorf("DefaultRecommendedTimes() = %v, want %v", second, want)
	}
}

func TestMostFrequentTimes(t *testing.T) {
	tests := []struct {
		name     string
		byDay    map[int][]string
		limit    int
		expected []string
	}{
		{
			name:     "nil map",
			byDay:    nil,
			limit:    3,
			expected: nil,
		},
		{
			name:     "frequency wins",
			byDay:    map[int][]string{1: {"09:00", "18:00"}, 2: {"18:00"}, 3: {"18:00", "12:00"}},
			limit:    3,
			expected: []string{"18:00", "09:00", "12:00"},
		},
		{
			name:     "ties keep Sunday-first order",
			byDay:    map[int][]string{6: {"21:00"}, 0: {"08:00"}, 3: {"13:00"}},
			limit:    3,
			expected: []string{"08:00", "13:00", "21:00"},
		},
		{
			name:     "limit applied after dedupe",
			byDay:    map[int][]string{0: {"01:00", "02:00"}, 1: {"03:00", "04:00"}},
			limit:    3,
			expected: []string{"01:00", "02:00", "03:00"},
		},
		{
			name:     "empty strings ignored",
			byDay:    map[int][]string{2: {"", ""}},
			limit:    3,
			expected: nil,
		},
		{
			name:     "zero limit",
			byDay:    map[int][]string{2: {"10:00"}},
			limit:    0,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MostFrequentTimes(tt.byDay, tt.limit)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("MostFrequentTimes() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRound1(t *testing.T) {
	if got := Round1(24.96); got != 25 {
		t.Errorf("Round1(24.96) = %v, want 25", got)
	}
	if got := Round1(-3.14); got != -3.1 {
		t.Errorf("Round1(-3.14) = %v, want -3.1", got)
	}
}
