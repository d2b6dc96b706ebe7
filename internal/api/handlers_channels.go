// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package api

import (
	"context"
	"net/http"

	"github.com/tomtom215/cadence/internal/logging"
)

// ListChannels handles GET /api/v1/channels.
func (h *Handler) ListChannels(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if h.store == nil {
		rw.ServiceUnavailable("Channel data is not available")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	channels, err := h.store.ListChannels(ctx)
	if err != nil {
		rw.DatabaseError(err)
		return
	}
	rw.SuccessList(channels, len(channels))
}

// IngestPosts handles POST /api/v1/channels/{channelID}/posts. Posts are
// upserted by (channel, post ID); the path channel overrides any channelId
// in the body.
func (h *Handler) IngestPosts(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if h.store == nil {
		rw.ServiceUnavailable("Channel data is not available")
		return
	}

	channelID, ok := channelIDParam(rw, r)
	if !ok {
		return
	}

	var req IngestRequest
	if !decodeJSON(rw, w, r, &req) {
		return
	}
	for i := range req.Posts {
		req.Posts[i].ChannelID = channelID
	}
	if !validateRequest(rw, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	accepted, err := h.store.InsertPosts(ctx, req.Posts)
	if err != nil {
		rw.DatabaseError(err)
		return
	}
	h.planner.InvalidateChannel(channelID)

	total, err := h.store.CountPosts(ctx, channelID)
	if err != nil {
		rw.DatabaseError(err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Str("channel_id", channelID).
		Int("accepted", accepted).
		Int("total", total).
		Msg("posts ingested")

	rw.Created(IngestResponse{ChannelID: channelID, Accepted: accepted, TotalPosts: total})
}
