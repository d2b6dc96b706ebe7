// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package api

import (
	"context"
	"time"

	"github.com/tomtom215/cadence/internal/models"
	"github.com/tomtom215/cadence/internal/planner"
)

// Store is the subset of the database used directly by handlers.
// *database.DB implements it.
type Store interface {
	Ping(ctx context.Context) error
	InsertPosts(ctx context.Context, posts []models.PostFact) (int, error)
	CountPosts(ctx context.Context, channelID string) (int, error)
	ListChannels(ctx context.Context) ([]models.ChannelSummary, error)
}

// Handler serves the HTTP API.
type Handler struct {
	store     Store
	planner   *planner.Planner
	startTime time.Time

	// requestTimeout bounds store-backed handlers.
	requestTimeout time.Duration
}

// NewHandler creates a handler. store may be nil, in which case only the
// stateless endpoints succeed and readiness reports not ready.
func NewHandler(store Store, p *planner.Planner, requestTimeout time.Duration) *Handler {
	if requestTimeout <= 0 {
		requestTimeout = 30 * time.Second
	}
	return &Handler{
		store:          store,
		planner:        p,
		startTime:      time.Now(),
		requestTimeout: requestTimeout,
	}
}
