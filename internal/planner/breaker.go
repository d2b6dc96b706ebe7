// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package planner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/cadence/internal/database"
	"github.com/tomtom215/cadence/internal/metrics"
	"github.com/tomtom215/cadence/internal/models"
)

// ErrStoreUnavailable is returned while the breaker is open.
var ErrStoreUnavailable = errors.New("data store temporarily unavailable")

// BreakerConfig tunes a BreakerProvider. Zero fields take defaults.
type BreakerConfig struct {
	Name string // default "duckdb"

	// MinRequests is the sample size before the failure ratio is considered.
	MinRequests uint32 // default 10

	// FailureRatio at or above which the breaker opens.
	FailureRatio float64 // default 0.6

	// Interval resets counts while closed.
	Interval time.Duration // default 1m

	// Timeout is how long the breaker stays open before probing.
	Timeout time.Duration // default 30s

	// MaxHalfOpen probes are allowed through while half-open.
	MaxHalfOpen uint32 // default 3
}

func (c *BreakerConfig) applyDefaults() {
	if c.Name == "" {
		c.Name = "duckdb"
	}
	if c.MinRequests == 0 {
		c.MinRequests = 10
	}
	if c.FailureRatio <= 0 || c.FailureRatio > 1 {
		c.FailureRatio = 0.6
	}
	if c.Interval <= 0 {
		c.Interval = time.Minute
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if c.MaxHalfOpen == 0 {
		c.MaxHalfOpen = 3
	}
}

// BreakerProvider wraps a DataProvider with a circuit breaker so a failing
// store sheds load instead of queueing requests behind slow queries.
//
// The breaker runs on wall-clock time; the planner clock does not affect it.
type BreakerProvider struct {
	next DataProvider
	cb   *gobreaker.CircuitBreaker[any]
	name string
}

var _ DataProvider = (*BreakerProvider)(nil)

// NewBreakerProvider wraps next.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewBreakerProvider(next DataProvider, cfg BreakerConfig, logger zerolog.Logger) *BreakerProvider {
	cfg.applyDefaults()
	logger = logger.With().Str("component", "circuit-breaker").Str("breaker", cfg.Name).Logger()

	metrics.CircuitBreakerState.WithLabelValues(cfg.Name).Set(stateValue(gobreaker.StateClosed))

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxHalfOpen,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return ratio >= cfg.FailureRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state change")
			metrics.RecordBreakerTransition(name, from.String(), to.String(), stateValue(to))
		},
		// a caller hanging up says nothing about the store
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	})

	return &BreakerProvider{next: next, cb: cb, name: cfg.Name}
}

// State reports the breaker state: closed, half-open or open.
func (b *BreakerProvider) State() string {
	return b.cb.State().String()
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}

func guarded[T any](b *BreakerProvider, fn func() (T, error)) (T, error) {
	var zero T
	out, err := b.cb.Execute(func() (any, error) {
		v, err := fn()
		return v, err
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.RecordBreakerRequest(b.name, "rejected")
			return zero, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
		metrics.RecordBreakerRequest(b.name, "failure")
		return zero, err
	}
	metrics.RecordBreakerRequest(b.name, "success")

	v, ok := out.(T)
	if !ok {
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", out)
	}
	return v, nil
}

// GetHourlySamples implements DataProvider.
func (b *BreakerProvider) GetHourlySamples(ctx context.Context, channelID string, window database.LookbackWindow, loc *time.Location) ([]models.PerformanceSample, error) {
	return guarded(b, func() ([]models.PerformanceSample, error) {
		return b.next.GetHourlySamples(ctx, channelID, window, loc)
	})
}

// GetDailySamples implements DataProvider.
func (b *BreakerProvider) GetDailySamples(ctx context.Context, channelID string, from, to *time.Time, loc *time.Location) ([]models.PerformanceSample, error) {
	return guarded(b, func() ([]models.PerformanceSample, error) {
		return b.next.GetDailySamples(ctx, channelID, from, to, loc)
	})
}

// GetContentTypeStats implements DataProvider.
func (b *BreakerProvider) GetContentTypeStats(ctx context.Context, channelID string, window database.LookbackWindow) ([]models.ContentTypeRecommendation, error) {
	return guarded(b, func() ([]models.ContentTypeRecommendation, error) {
		return b.next.GetContentTypeStats(ctx, channelID, window)
	})
}
