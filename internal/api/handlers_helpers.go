// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/cadence/internal/validation"
)

// maxBodyBytes caps request bodies for ingest and the stateless endpoints.
const maxBodyBytes = 4 << 20

// sanitizeLogValue escapes control characters so user input cannot forge
// log lines.
func sanitizeLogValue(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&b, "\\x%02x", r)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// decodeJSON reads a size-limited JSON body into dst and writes the error
// response itself when it fails.
func decodeJSON(rw *ResponseWriter, w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			rw.Error(http.StatusRequestEntityTooLarge, ErrCodePayloadTooLarge, "Request body too large")
			return false
		}
		rw.BadRequest("Invalid JSON body")
		return false
	}
	return true
}

// validateRequest runs struct validation and writes a VALIDATION_ERROR
// response on failure.
func validateRequest(rw *ResponseWriter, v interface{}) bool {
	if verr := validation.ValidateStruct(v); verr != nil {
		rw.ValidationError(verr.Error(), verr.Details())
		return false
	}
	return true
}

type channelParam struct {
	ChannelID string `json:"channelId" validate:"required,channelid"`
}

// channelIDParam reads and validates the {channelID} path segment.
func channelIDParam(rw *ResponseWriter, r *http.Request) (string, bool) {
	p := channelParam{ChannelID: chi.URLParam(r, "channelID")}
	if !validateRequest(rw, &p) {
		return "", false
	}
	return p.ChannelID, true
}

// optionalIntParam parses a query parameter. Absent yields nil; a value
// that is not an integer is an error.
func optionalIntParam(r *http.Request, key string) (*int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer", key)
	}
	return &v, nil
}
