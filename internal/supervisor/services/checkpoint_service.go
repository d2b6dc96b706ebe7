// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
)

// Checkpointer flushes the DuckDB WAL. *database.DB implements it.
type Checkpointer interface {
	Checkpoint(ctx context.Context) error
}

// CheckpointService checkpoints the store on a fixed interval so the WAL
// stays small between restarts.
type CheckpointService struct {
	db       Checkpointer
	interval time.Duration
	logger   zerolog.Logger

	// timeout bounds a single checkpoint.
	timeout time.Duration
}

// NewCheckpointService creates the service. A non-positive interval makes
// Serve return suture.ErrDoNotRestart immediately.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCheckpointService(db Checkpointer, interval time.Duration, logger zerolog.Logger) *CheckpointService {
	return &CheckpointService{
		db:       db,
		interval: interval,
		logger:   logger.With().Str("service", "checkpoint").Logger(),
		timeout:  time.Minute,
	}
}

// Serve implements suture.Service. Checkpoint failures are logged and
// retried on the next tick rather than crashing the service.
func (s *CheckpointService) Serve(ctx context.Context) error {
	if s.interval <= 0 {
		s.logger.Info().Msg("periodic checkpoints disabled")
		return suture.ErrDoNotRestart
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Debug().Dur("interval", s.interval).Msg("checkpoint service running")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.checkpoint(ctx)
		}
	}
}

func (s *CheckpointService) checkpoint(ctx context.Context) {
	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	if err := s.db.Checkpoint(cctx); err != nil {
		s.logger.Warn().Err(err).Msg("checkpoint failed")
		return
	}
	s.logger.Debug().Dur("duration", time.Since(start)).Msg("checkpoint complete")
}

// String names the service in supervisor events.
func (s *CheckpointService) String() string {
	return "duckdb-checkpoint"
}
