// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/cadence/internal/logging"
	"github.com/tomtom215/cadence/internal/planner"
)

// ChannelRecommendations handles GET /api/v1/channels/{channelID}/recommendations.
func (h *Handler) ChannelRecommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	channelID, ok := channelIDParam(rw, r)
	if !ok {
		return
	}
	days, err := optionalIntParam(r, "days")
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}
	q := LookbackQuery{Days: days}
	if !validateRequest(rw, &q) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	resp, err := h.planner.Recommendations(ctx, channelID, q.Days)
	if err != nil {
		h.plannerError(rw, r, channelID, err)
		return
	}
	rw.Success(resp)
}

// ChannelCalendar handles GET /api/v1/channels/{channelID}/calendar.
// year and month default to the current month in the engine zone.
func (h *Handler) ChannelCalendar(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	channelID, ok := channelIDParam(rw, r)
	if !ok {
		return
	}

	now := h.planner.Now()
	q := CalendarQuery{Year: now.Year(), Month: int(now.Month())}
	for key, dst := range map[string]*int{"year": &q.Year, "month": &q.Month} {
		v, err := optionalIntParam(r, key)
		if err != nil {
			rw.BadRequest(err.Error())
			return
		}
		if v != nil {
			*dst = *v
		}
	}
	days, err := optionalIntParam(r, "days")
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}
	q.Days = days
	if !validateRequest(rw, &q) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	resp, err := h.planner.Calendar(ctx, channelID, q.Year, time.Month(q.Month), q.Days)
	if err != nil {
		h.plannerError(rw, r, channelID, err)
		return
	}
	rw.Success(resp)
}

// AnalyzeRecommendations handles POST /api/v1/recommendations/analyze.
func (h *Handler) AnalyzeRecommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req AnalyzeRequest
	if !decodeJSON(rw, w, r, &req) || !validateRequest(rw, &req) {
		return
	}

	rw.Success(h.planner.Analyze(req.toPlanner()))
}

// ProjectCalendar handles POST /api/v1/calendar/project.
func (h *Handler) ProjectCalendar(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req ProjectRequest
	if !decodeJSON(rw, w, r, &req) || !validateRequest(rw, &req) {
		return
	}

	preq := planner.ProjectRequest{
		Year:            req.Year,
		Month:           time.Month(req.Month),
		Now:             req.Now,
		CalendarSamples: req.CalendarSamples,
		Analyze:         req.AnalyzeRequest.toPlanner(),
	}
	if req.Timezone != "" {
		// already validated by iana_tz
		loc, err := time.LoadLocation(req.Timezone)
		if err != nil {
			rw.BadRequest("Invalid timezone")
			return
		}
		preq.Location = loc
	}

	rw.Success(h.planner.Project(preq))
}

func (h *Handler) plannerError(rw *ResponseWriter, r *http.Request, channelID string, err error) {
	switch {
	case errors.Is(err, planner.ErrNoStore):
		rw.ServiceUnavailable("Channel data is not available")
	case errors.Is(err, planner.ErrStoreUnavailable):
		rw.ServiceUnavailable("Channel data is temporarily unavailable")
	case errors.Is(err, context.DeadlineExceeded):
		logging.Ctx(r.Context()).Warn().Str("channel_id", sanitizeLogValue(channelID)).Msg("planner request timed out")
		rw.Error(http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Request timed out")
	default:
		rw.DatabaseError(err)
	}
}
