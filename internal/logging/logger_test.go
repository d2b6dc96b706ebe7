// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warning", zerolog.WarnLevel},
		{" error ", zerolog.ErrorLevel},
		{"disabled", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"loud", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.expected {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestInit_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "debug", Format: "json", Output: &buf})
	t.Cleanup(func() { Init(Config{}) })

	logger := WithComponent("planner")
	logger.Info().Str("channel_id", "c1").Msg("built")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%s)", err, buf.String())
	}
	if entry["component"] != "planner" {
		t.Errorf("component = %v, want planner", entry["component"])
	}
	if entry["message"] != "built" {
		t.Errorf("message = %v, want built", entry["message"])
	}
	if _, ok := entry["time"]; !ok {
		t.Error("expected time field")
	}
}

func TestInit_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "warn", Output: &buf})
	t.Cleanup(func() { Init(Config{}) })

	Info().Msg("hidden")
	Warn().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info event written at warn level: %s", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn event missing: %s", out)
	}
}

func TestCtx_RequestID(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Output: &buf})
	t.Cleanup(func() { Init(Config{}) })

	id := NewRequestID()
	if len(id) != 36 {
		t.Fatalf("NewRequestID() length = %d, want 36", len(id))
	}

	ctx := ContextWithRequestID(context.Background(), id)
	if got := RequestIDFromContext(ctx); got != id {
		t.Errorf("RequestIDFromContext() = %q, want %q", got, id)
	}
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("RequestIDFromContext(empty) = %q, want empty", got)
	}

	Ctx(ctx).Info().Msg("scoped")
	if !strings.Contains(buf.String(), `"request_id":"`+id+`"`) {
		t.Errorf("request_id missing from %s", buf.String())
	}
}

func TestSlogHandler(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).Level(zerolog.InfoLevel)
	logger := NewSlogLogger(zl).With("service", "http").WithGroup("supervisor")

	logger.Debug("dropped")
	logger.Error("restart", "attempt", 2, "err", errors.New("boom"))

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("debug record written below level: %s", out)
	}

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%s)", err, out)
	}
	if entry["level"] != "error" {
		t.Errorf("level = %v, want error", entry["level"])
	}
	if entry["service"] != "http" {
		t.Errorf("service = %v, want http", entry["service"])
	}
	if entry["supervisor.attempt"] != float64(2) {
		t.Errorf("supervisor.attempt = %v, want 2", entry["supervisor.attempt"])
	}
	if entry["supervisor.err"] != "boom" {
		t.Errorf("supervisor.err = %v, want boom", entry["supervisor.err"])
	}
}

func TestSlogHandler_Enabled(t *testing.T) {
	h := NewSlogHandler(zerolog.Nop().Level(zerolog.WarnLevel))
	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be disabled for warn logger")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("error should be enabled for warn logger")
	}
}
