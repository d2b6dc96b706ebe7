// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package normalize

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cadence/internal/scoring"
)

// Record is one loosely shaped input object.
type Record = map[string]any

// Decode parses a JSON array of objects into records. Numbers are kept as
// json.Number so integer fields survive without float rounding.
func Decode(data []byte) ([]Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var records []Record
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	return records, nil
}

type float64er interface {
	Float64() (float64, error)
}

// lookup returns the value of the first alias present in rec.
func lookup(rec Record, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := rec[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// toFloat converts v to a finite float64.
func toFloat(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case int32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case float64er:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Number resolves a numeric field, defaulting to 0.
func Number(rec Record, keys ...string) float64 {
	v, ok := lookup(rec, keys...)
	if !ok {
		return 0
	}
	f, _ := toFloat(v)
	return f
}

// NonNegative is Number floored at zero.
func NonNegative(rec Record, keys ...string) float64 {
	return math.Max(0, Number(rec, keys...))
}

// OptionalNumber resolves a numeric field, returning nil when it is absent
// or malformed.
func OptionalNumber(rec Record, keys ...string) *float64 {
	v, ok := lookup(rec, keys...)
	if !ok {
		return nil
	}
	f, ok := toFloat(v)
	if !ok {
		return nil
	}
	return &f
}

// Int resolves an integer field, truncating fractional input.
func Int(rec Record, keys ...string) int {
	return int(Number(rec, keys...))
}

// String resolves a string field. Numbers are rendered in decimal.
func String(rec Record, keys ...string) string {
	v, ok := lookup(rec, keys...)
	if !ok {
		return ""
	}
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case fmt.Stringer:
		return s.String()
	default:
		if f, ok := toFloat(v); ok {
			return strconv.FormatFloat(f, 'f', -1, 64)
		}
		return ""
	}
}

// Weekday resolves a weekday given either as a number or a day name.
func Weekday(rec Record, keys ...string) int {
	v, ok := lookup(rec, keys...)
	if !ok {
		return 0
	}
	if f, ok := toFloat(v); ok {
		return scoring.ClampWeekday(int(f))
	}
	if s, ok := v.(string); ok {
		if day, ok := scoring.ParseDayName(s); ok {
			return day
		}
	}
	return 0
}
