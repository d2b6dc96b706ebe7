// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package planner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cadence/internal/database"
	"github.com/tomtom215/cadence/internal/models"
	"github.com/tomtom215/cadence/internal/normalize"
)

type fakeStore struct {
	hourly  []models.PerformanceSample
	daily   []models.PerformanceSample
	content []models.ContentTypeRecommendation
	err     error

	gotWindow database.LookbackWindow
	gotFrom   *time.Time
	gotLoc    *time.Location
	calls     int
}

func (f *fakeStore) GetHourlySamples(_ context.Context, _ string, window database.LookbackWindow, loc *time.Location) ([]models.PerformanceSample, error) {
	f.calls++
	f.gotWindow = window
	f.gotLoc = loc
	return f.hourly, f.err
}

func (f *fakeStore) GetDailySamples(_ context.Context, _ string, from, _ *time.Time, _ *time.Location) ([]models.PerformanceSample, error) {
	f.gotFrom = from
	return f.daily, nil
}

func (f *fakeStore) GetContentTypeStats(_ context.Context, _ string, _ database.LookbackWindow) ([]models.ContentTypeRecommendation, error) {
	return f.content, nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestPlanner(store DataProvider, now time.Time) *Planner {
	return New(store, Options{
		DefaultLookbackDays: 90,
		Now:                 fixedClock(now),
	}, zerolog.Nop())
}

func TestRecommendations(t *testing.T) {
	store := &fakeStore{
		hourly: []models.PerformanceSample{
			{DayOfWeek: 1, Hour: 18, AvgViews: 500, PostCount: 5},
			{DayOfWeek: 3, Hour: 9, AvgViews: 250, PostCount: 5},
			{DayOfWeek: 5, Hour: 12, AvgViews: 100, PostCount: 1},
		},
		content: []models.ContentTypeRecommendation{
			{ContentType: "video", AvgEngagement: 5, PostCount: 10},
		},
	}
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	p := newTestPlanner(store, now)

	resp, err := p.Recommendations(context.Background(), "chan-1", nil)
	if err != nil {
		t.Fatalf("Recommendations() error = %v", err)
	}

	rec := resp.Recommendation
	if !rec.Available || rec.Best == nil {
		t.Fatal("expected an available recommendation")
	}
	if rec.Best.DayOfWeek != 1 || rec.Best.Hour != 18 {
		t.Errorf("Best = day %d hour %d, want Monday 18", rec.Best.DayOfWeek, rec.Best.Hour)
	}
	if len(rec.Ranked) != 3 {
		t.Errorf("len(Ranked) = %d, want 3", len(rec.Ranked))
	}
	if len(rec.ContentTypes) != 1 || rec.ContentTypes[0].Confidence != 100 {
		t.Errorf("ContentTypes = %+v, want video at full confidence", rec.ContentTypes)
	}
	if got := rec.BestTimesByDay[1]; len(got) != 1 || got[0] != "18:00" {
		t.Errorf("BestTimesByDay[1] = %v, want [18:00]", got)
	}

	if store.gotWindow.Days != 90 || !store.gotWindow.Now.Equal(now) {
		t.Errorf("window = %+v, want 90 days at %v", store.gotWindow, now)
	}
	if store.gotLoc != time.UTC {
		t.Errorf("loc = %v, want UTC", store.gotLoc)
	}
	if resp.Metadata.ChannelID != "chan-1" || resp.Metadata.SampleCount != 3 || resp.Metadata.Timezone != "UTC" {
		t.Errorf("Metadata = %+v", resp.Metadata)
	}
}

func TestRecommendations_LookbackOverride(t *testing.T) {
	store := &fakeStore{}
	p := newTestPlanner(store, time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC))

	tests := []struct {
		name string
		days *int
		want int
	}{
		{"default", nil, 90},
		{"explicit", intPtr(7), 7},
		{"all history", intPtr(0), 0},
		{"negative clamps", intPtr(-3), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := p.Recommendations(context.Background(), "c", tt.days)
			if err != nil {
				t.Fatalf("Recommendations() error = %v", err)
			}
			if store.gotWindow.Days != tt.want {
				t.Errorf("window days = %d, want %d", store.gotWindow.Days, tt.want)
			}
			if resp.Recommendation.Available {
				t.Error("empty store should not produce a recommendation")
			}
		})
	}
}

func intPtr(v int) *int { return &v }

func TestRecommendations_Errors(t *testing.T) {
	p := newTestPlanner(&fakeStore{err: errors.New("db down")}, time.Now())
	if _, err := p.Recommendations(context.Background(), "c", nil); err == nil {
		t.Error("expected provider error to propagate")
	}

	noStore := newTestPlanner(nil, time.Now())
	if _, err := noStore.Recommendations(context.Background(), "c", nil); !errors.Is(err, ErrNoStore) {
		t.Errorf("error = %v, want ErrNoStore", err)
	}
	if _, err := noStore.Calendar(context.Background(), "c", 2024, time.March, nil); !errors.Is(err, ErrNoStore) {
		t.Errorf("Calendar error = %v, want ErrNoStore", err)
	}

	if s := p.Stats(); s.Requests != 1 || s.Errors != 1 {
		t.Errorf("Stats() = %+v, want 1/1", s)
	}
}

func TestCalendar(t *testing.T) {
	store := &fakeStore{
		hourly: []models.PerformanceSample{
			{DayOfWeek: 1, Hour: 18, AvgViews: 500, PostCount: 5},
			{DayOfWeek: 6, Hour: 10, AvgViews: 200, PostCount: 5},
		},
		daily: []models.PerformanceSample{
			{Date: 4, Month: 3, Year: 2024, DayOfWeek: 1, Hour: 18, AvgViews: 400, PostCount: 2},
			{Date: 9, Month: 3, Year: 2024, DayOfWeek: 6, Hour: 10, AvgViews: 100, PostCount: 1},
		},
	}
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	p := newTestPlanner(store, now)

	resp, err := p.Calendar(context.Background(), "chan-1", 2024, time.March, nil)
	if err != nil {
		t.Fatalf("Calendar() error = %v", err)
	}

	cal := resp.Calendar
	if cal.DaysInMonth != 31 || len(cal.Days) != 31 {
		t.Fatalf("days = %d/%d, want 31", cal.DaysInMonth, len(cal.Days))
	}
	if cal.Today != "2024-03-15" {
		t.Errorf("Today = %q, want 2024-03-15", cal.Today)
	}
	if got := cal.Days[3].Score; got != models.ScoreExcellent {
		t.Errorf("March 4 score = %q, want excellent (best historical day)", got)
	}
	if got := cal.Days[8].Score; got != models.ScorePoor {
		t.Errorf("March 9 score = %q, want poor (25%% of month max)", got)
	}
	if got := cal.Days[1].Score; got != models.ScoreNoData {
		t.Errorf("March 2 score = %q, want no-data", got)
	}
	if !cal.Days[14].IsToday || cal.Days[14].RecommendationScore == nil {
		t.Errorf("today cell = %+v, want predicted", cal.Days[14])
	}
	if got := resp.BestTimesByDay[1]; len(got) == 0 || got[0] != "18:00" {
		t.Errorf("BestTimesByDay[1] = %v", got)
	}

	// 90-day lookback from March 15 starts before March 1.
	wantFrom := now.AddDate(0, 0, -90)
	if store.gotFrom == nil || !store.gotFrom.Equal(wantFrom) {
		t.Errorf("daily from = %v, want %v", store.gotFrom, wantFrom)
	}
}

func TestDailyRangeStart(t *testing.T) {
	since := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	if got := dailyRangeStart(2024, time.March, time.UTC, nil); got != nil {
		t.Errorf("all history = %v, want nil", got)
	}
	if got := dailyRangeStart(2024, time.March, time.UTC, &since); !got.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("month before since = %v, want March 1", got)
	}
	if got := dailyRangeStart(2024, time.June, time.UTC, &since); !got.Equal(since) {
		t.Errorf("month after since = %v, want since", got)
	}
}

func TestAnalyze_DerivesFromSamples(t *testing.T) {
	p := newTestPlanner(nil, time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC))

	resp := p.Analyze(AnalyzeRequest{
		Samples: []normalize.Record{
			{"day_of_week": "Friday", "hour": 20, "avg_views": "900", "post_count": 6},
			{"dayOfWeek": 2, "hour": 8, "avgViews": 300, "postCount": 6},
		},
	})

	rec := resp.Recommendation
	if rec.Best == nil || rec.Best.DayOfWeek != 5 || rec.Best.Hour != 20 {
		t.Fatalf("Best = %+v, want Friday 20:00", rec.Best)
	}
	if _, ok := rec.DayScores[5]; !ok {
		t.Errorf("DayScores = %v, want Friday entry", rec.DayScores)
	}
}

func TestAnalyze_PrefersExplicitSlots(t *testing.T) {
	p := newTestPlanner(nil, time.Now())

	resp := p.Analyze(AnalyzeRequest{
		Samples: []normalize.Record{{"dayOfWeek": 0, "hour": 9, "avgViews": 999, "postCount": 9}},
		TimeSlots: []normalize.Record{
			{"dayOfWeek": 3, "hour": 14, "confidence": 80},
			{"dayOfWeek": 4, "hour": 15, "confidence": 90},
		},
	})

	rec := resp.Recommendation
	if len(rec.Ranked) != 2 || rec.Best.DayOfWeek != 4 {
		t.Errorf("Ranked = %+v, want explicit slots with Thursday first", rec.Ranked)
	}
}

func TestProject_ExplicitNowAndZone(t *testing.T) {
	p := newTestPlanner(nil, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))

	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	// 2024-03-14 20:00 UTC is already March 15 in Tokyo.
	now := time.Date(2024, 3, 14, 20, 0, 0, 0, time.UTC)

	resp := p.Project(ProjectRequest{
		Year:     2024,
		Month:    time.March,
		Now:      &now,
		Location: tokyo,
		Analyze: AnalyzeRequest{
			TimeSlots: []normalize.Record{{"dayOfWeek": 5, "hour": 18, "confidence": 90}},
		},
	})

	if resp.Calendar.Today != "2024-03-15" {
		t.Errorf("Today = %q, want 2024-03-15", resp.Calendar.Today)
	}
	if resp.Metadata.Timezone != "Asia/Tokyo" {
		t.Errorf("Timezone = %q, want Asia/Tokyo", resp.Metadata.Timezone)
	}
	friday := resp.Calendar.Days[14] // March 15 2024 is a Friday
	if friday.RecommendationScore == nil || *friday.RecommendationScore != 90 {
		t.Errorf("Friday recommendationScore = %v, want 90", friday.RecommendationScore)
	}
	if len(friday.RecommendedTimes) == 0 || friday.RecommendedTimes[0] != "18:00" {
		t.Errorf("Friday RecommendedTimes = %v, want 18:00 first", friday.RecommendedTimes)
	}
}

func TestRecommendations_Cache(t *testing.T) {
	store := &fakeStore{
		hourly: []models.PerformanceSample{{DayOfWeek: 2, Hour: 10, AvgViews: 100, PostCount: 5}},
	}
	p := New(store, Options{
		Now:      fixedClock(time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)),
		CacheTTL: time.Minute,
	}, zerolog.Nop())
	ctx := context.Background()

	first, err := p.Recommendations(ctx, "chan-1", nil)
	if err != nil {
		t.Fatalf("Recommendations() error = %v", err)
	}
	if first.Metadata.Cached {
		t.Error("first response should not be cached")
	}

	second, err := p.Recommendations(ctx, "chan-1", nil)
	if err != nil {
		t.Fatalf("Recommendations() error = %v", err)
	}
	if !second.Metadata.Cached {
		t.Error("second response should be cached")
	}
	if first.Metadata.Cached {
		t.Error("cache hit mutated the stored response")
	}
	if store.calls != 1 {
		t.Errorf("store calls = %d, want 1", store.calls)
	}

	// a different lookback is a different entry
	if _, err := p.Recommendations(ctx, "chan-1", intPtr(7)); err != nil {
		t.Fatal(err)
	}
	if store.calls != 2 {
		t.Errorf("store calls = %d, want 2", store.calls)
	}

	p.InvalidateChannel("chan-1")
	third, err := p.Recommendations(ctx, "chan-1", nil)
	if err != nil {
		t.Fatal(err)
	}
	if third.Metadata.Cached || store.calls != 3 {
		t.Errorf("after invalidate: cached = %v, calls = %d, want false, 3", third.Metadata.Cached, store.calls)
	}
}

func TestCalendar_CacheKeyedByDay(t *testing.T) {
	store := &fakeStore{}
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	p := New(store, Options{
		Now:      func() time.Time { return now },
		CacheTTL: time.Hour,
	}, zerolog.Nop())
	ctx := context.Background()

	if _, err := p.Calendar(ctx, "chan-1", 2024, time.March, nil); err != nil {
		t.Fatal(err)
	}
	resp, err := p.Calendar(ctx, "chan-1", 2024, time.March, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !resp.Metadata.Cached || store.calls != 1 {
		t.Errorf("same day: cached = %v, calls = %d, want true, 1", resp.Metadata.Cached, store.calls)
	}

	now = now.Add(24 * time.Hour)
	resp, err = p.Calendar(ctx, "chan-1", 2024, time.March, nil)
	if err != nil {
		t.Fatal(err)
	}
	if resp.Metadata.Cached || store.calls != 2 {
		t.Errorf("next day: cached = %v, calls = %d, want false, 2", resp.Metadata.Cached, store.calls)
	}
	if !resp.Calendar.Days[15].IsToday {
		t.Error("March 16 should be today after the clock moves")
	}
}

func TestCache_DisabledByDefault(t *testing.T) {
	store := &fakeStore{}
	p := newTestPlanner(store, time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC))
	for range 2 {
		resp, err := p.Recommendations(context.Background(), "chan-1", nil)
		if err != nil {
			t.Fatal(err)
		}
		if resp.Metadata.Cached {
			t.Error("cache should be disabled without CacheTTL")
		}
	}
	if store.calls != 2 {
		t.Errorf("store calls = %d, want 2", store.calls)
	}
	p.InvalidateChannel("chan-1")
}
