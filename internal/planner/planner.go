// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

// Package planner runs one recommendation or calendar request end to end:
// fetch rollups from a DataProvider, derive slots, aggregate, then project.
//
// The current time is read once per request from the injected clock and
// converted to the configured zone, so every step of a request agrees on
// what "today" is.
package planner

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cadence/internal/cache"
	"github.com/tomtom215/cadence/internal/calendar"
	"github.com/tomtom215/cadence/internal/database"
	"github.com/tomtom215/cadence/internal/metrics"
	"github.com/tomtom215/cadence/internal/models"
	"github.com/tomtom215/cadence/internal/recommend"
)

// DataProvider supplies sample rollups. *database.DB implements it.
type DataProvider interface {
	GetHourlySamples(ctx context.Context, channelID string, window database.LookbackWindow, loc *time.Location) ([]models.PerformanceSample, error)
	GetDailySamples(ctx context.Context, channelID string, from, to *time.Time, loc *time.Location) ([]models.PerformanceSample, error)
	GetContentTypeStats(ctx context.Context, channelID string, window database.LookbackWindow) ([]models.ContentTypeRecommendation, error)
}

// Options configures a Planner.
type Options struct {
	// Location decides weekday, hour and day boundaries. Nil means UTC.
	Location *time.Location

	// DefaultLookbackDays applies when a request gives none. Zero means all history.
	DefaultLookbackDays int

	// Recommend tunes slot derivation. Nil means recommend.DefaultConfig().
	Recommend *recommend.Config

	// Now is the clock. Nil means time.Now.
	Now func() time.Time

	// CacheTTL keeps store-backed responses for this long. Zero disables
	// the cache. Ingest must call InvalidateChannel.
	CacheTTL time.Duration

	// CacheSize caps cached responses per kind. Zero means 1024.
	CacheSize int
}

// Planner is safe for concurrent use.
type Planner struct {
	store        DataProvider
	aggregator   *recommend.Aggregator
	projector    *calendar.Projector
	loc          *time.Location
	lookbackDays int
	now          func() time.Time
	logger       zerolog.Logger

	// nil when caching is disabled
	recCache *cache.Cache[*RecommendationResponse]
	calCache *cache.Cache[*CalendarResponse]

	requestCount atomic.Int64
	errorCount   atomic.Int64
}

// New creates a planner. store may be nil when only the stateless
// Analyze and Project operations are used.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(store DataProvider, opts Options, logger zerolog.Logger) *Planner {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	p := &Planner{
		store:        store,
		aggregator:   recommend.NewAggregator(opts.Recommend, logger),
		projector:    calendar.NewProjector(logger),
		loc:          opts.Location,
		lookbackDays: max(opts.DefaultLookbackDays, 0),
		now:          opts.Now,
		logger:       logger.With().Str("component", "planner").Logger(),
	}
	if opts.CacheTTL > 0 {
		p.recCache = cache.New[*RecommendationResponse](opts.CacheSize, opts.CacheTTL)
		p.calCache = cache.New[*CalendarResponse](opts.CacheSize, opts.CacheTTL)
	}
	return p
}

// Metadata describes how a response was produced.
type Metadata struct {
	ChannelID    string    `json:"channelId,omitempty"`
	GeneratedAt  time.Time `json:"generatedAt"`
	Timezone     string    `json:"timezone"`
	LookbackDays int       `json:"lookbackDays"`
	SampleCount  int       `json:"sampleCount"`
	LatencyMS    int64     `json:"latencyMs"`

	// Cached marks a response served from the planner cache; GeneratedAt
	// and LatencyMS then describe the original computation.
	Cached bool `json:"cached,omitempty"`
}

// RecommendationResponse wraps an aggregation result.
type RecommendationResponse struct {
	Recommendation *recommend.Result `json:"recommendation"`
	Metadata       Metadata          `json:"metadata"`
}

// CalendarResponse wraps a month projection with the per-weekday times that
// fed it.
type CalendarResponse struct {
	Calendar       *calendar.Projection `json:"calendar"`
	BestTimesByDay map[int][]string     `json:"bestTimesByDay"`
	Metadata       Metadata             `json:"metadata"`
}

// Stats reports request and error counts since start.
type Stats struct {
	Requests int64 `json:"requests"`
	Errors   int64 `json:"errors"`
}

// Stats returns cumulative counters.
func (p *Planner) Stats() Stats {
	return Stats{Requests: p.requestCount.Load(), Errors: p.errorCount.Load()}
}

// Location returns the zone requests are evaluated in.
func (p *Planner) Location() *time.Location {
	return p.loc
}

// Now returns the planner clock's current time in its zone.
func (p *Planner) Now() time.Time {
	return p.now().In(p.loc)
}

// ErrNoStore is returned by channel operations on a planner built without a store.
var ErrNoStore = errors.New("planner has no data provider")

func (p *Planner) resolveLookback(days *int) int {
	if days == nil {
		return p.lookbackDays
	}
	return max(*days, 0)
}

// Recommendations builds recommendations for a stored channel. lookbackDays
// nil uses the default; zero means all history.
func (p *Planner) Recommendations(ctx context.Context, channelID string, lookbackDays *int) (*RecommendationResponse, error) {
	start := time.Now()
	p.requestCount.Add(1)

	now := p.now().In(p.loc)
	days := p.resolveLookback(lookbackDays)
	logger := p.logger.With().Str("channel_id", channelID).Int("lookback_days", days).Logger()

	key := fmt.Sprintf("rec:%d", days)
	if hit, ok := lookup(p.recCache, "recommendations", channelID, key); ok {
		resp := *hit
		resp.Metadata.Cached = true
		return &resp, nil
	}

	result, samples, err := p.recommendFromStore(ctx, channelID, database.LookbackWindow{Days: days, Now: now})
	if err != nil {
		p.errorCount.Add(1)
		return nil, err
	}

	elapsed := time.Since(start)
	metrics.RecordAggregation("store", len(result.Ranked), elapsed)
	logger.Debug().Int("samples", samples).Int("slots", len(result.Ranked)).Msg("recommendations built")

	resp := &RecommendationResponse{
		Recommendation: result,
		Metadata:       p.metadata(channelID, now, days, samples, elapsed),
	}
	if p.recCache != nil {
		p.recCache.Set(channelID, key, resp)
	}
	return resp, nil
}

// InvalidateChannel drops cached responses for channelID. Call it after
// the channel's posts change.
func (p *Planner) InvalidateChannel(channelID string) {
	if p.recCache == nil {
		return
	}
	n := p.recCache.InvalidateOwner(channelID) + p.calCache.InvalidateOwner(channelID)
	if n > 0 {
		p.logger.Debug().Str("channel_id", channelID).Int("entries", n).Msg("cache invalidated")
	}
}

func lookup[V any](c *cache.Cache[V], kind, owner, key string) (V, bool) {
	if c == nil {
		var zero V
		return zero, false
	}
	v, ok := c.Get(owner, key)
	metrics.RecordCacheLookup(kind, ok)
	return v, ok
}

func (p *Planner) recommendFromStore(ctx context.Context, channelID string, window database.LookbackWindow) (*recommend.Result, int, error) {
	if p.store == nil {
		return nil, 0, ErrNoStore
	}

	samples, err := p.store.GetHourlySamples(ctx, channelID, window, p.loc)
	if err != nil {
		return nil, 0, fmt.Errorf("load hourly samples: %w", err)
	}
	stats, err := p.store.GetContentTypeStats(ctx, channelID, window)
	if err != nil {
		return nil, 0, fmt.Errorf("load content type stats: %w", err)
	}

	cfg := p.aggregator.Config()
	result := p.aggregator.Aggregate(recommend.Input{
		TimeSlots:    recommend.DeriveTimeSlots(samples, cfg),
		Combinations: recommend.DeriveCombinations(samples, cfg),
		ContentTypes: recommend.DeriveContentTypes(stats, cfg),
	})
	return result, len(samples), nil
}

// Calendar projects year/month for a stored channel. Historical days use
// daily rollups; today and future days use the channel's weekday scores.
func (p *Planner) Calendar(ctx context.Context, channelID string, year int, month time.Month, lookbackDays *int) (*CalendarResponse, error) {
	start := time.Now()
	p.requestCount.Add(1)

	now := p.now().In(p.loc)
	days := p.resolveLookback(lookbackDays)
	window := database.LookbackWindow{Days: days, Now: now}

	// today's date is part of the key because it decides past vs predicted days
	key := fmt.Sprintf("cal:%04d-%02d:%d:%s", year, int(month), days, now.Format(time.DateOnly))
	if hit, ok := lookup(p.calCache, "calendar", channelID, key); ok {
		resp := *hit
		resp.Metadata.Cached = true
		return &resp, nil
	}

	result, hourly, err := p.recommendFromStore(ctx, channelID, window)
	if err != nil {
		p.errorCount.Add(1)
		return nil, err
	}

	from := dailyRangeStart(year, month, p.loc, window.Since())
	daily, err := p.store.GetDailySamples(ctx, channelID, from, nil, p.loc)
	if err != nil {
		p.errorCount.Add(1)
		return nil, fmt.Errorf("load daily samples: %w", err)
	}

	projection := p.projector.Project(calendar.Request{
		Year:           year,
		Month:          month,
		Now:            now,
		Samples:        daily,
		BestTimesByDay: result.BestTimesByDay,
		DayScores:      result.DayScores,
	})

	elapsed := time.Since(start)
	metrics.RecordProjection("store", categoryCounts(projection), elapsed)
	p.logger.Debug().
		Str("channel_id", channelID).
		Int("year", projection.Year).
		Int("month", projection.Month).
		Int("daily_samples", len(daily)).
		Msg("calendar projected")

	resp := &CalendarResponse{
		Calendar:       projection,
		BestTimesByDay: result.BestTimesByDay,
		Metadata:       p.metadata(channelID, now, days, hourly+len(daily), elapsed),
	}
	if p.calCache != nil {
		p.calCache.Set(channelID, key, resp)
	}
	return resp, nil
}

// dailyRangeStart is the earlier of the month start and the lookback bound,
// or nil when the lookback covers all history.
func dailyRangeStart(year int, month time.Month, loc *time.Location, since *time.Time) *time.Time {
	if since == nil {
		return nil
	}
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	if monthStart.Before(*since) {
		return &monthStart
	}
	return since
}

func (p *Planner) metadata(channelID string, now time.Time, days, samples int, elapsed time.Duration) Metadata {
	return Metadata{
		ChannelID:    channelID,
		GeneratedAt:  now,
		Timezone:     p.loc.String(),
		LookbackDays: days,
		SampleCount:  samples,
		LatencyMS:    elapsed.Milliseconds(),
	}
}

func categoryCounts(proj *calendar.Projection) map[string]int {
	counts := proj.CategoryCounts()
	out := make(map[string]int, len(counts))
	for k, v := range counts {
		out[string(k)] = v
	}
	return out
}
