// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

// Package query builds parameterized WHERE clauses for the posts table.
// Values always travel as placeholders; only column names are spliced in.
package query

import (
	"fmt"
	"strings"
	"time"
)

// WhereBuilder accumulates AND-joined clauses and their arguments.
type WhereBuilder struct {
	clauses []string
	args    []interface{}
}

// NewWhereBuilder returns an empty builder.
func NewWhereBuilder() *WhereBuilder {
	return &WhereBuilder{}
}

// AddClause appends a raw clause with its placeholder arguments.
func (wb *WhereBuilder) AddClause(clause string, args ...interface{}) *WhereBuilder {
	wb.clauses = append(wb.clauses, clause)
	wb.args = append(wb.args, args...)
	return wb
}

// AddChannel restricts to one channel. An empty ID adds nothing.
func (wb *WhereBuilder) AddChannel(channelID string) *WhereBuilder {
	if channelID == "" {
		return wb
	}
	return wb.AddClause("channel_id = ?", channelID)
}

// AddPostedRange restricts posted_at to [since, until). Nil bounds are open.
// Bounds are compared in UTC, which is how posted_at is stored.
func (wb *WhereBuilder) AddPostedRange(since, until *time.Time) *WhereBuilder {
	if since != nil {
		wb.AddClause("posted_at >= ?", since.UTC())
	}
	if until != nil {
		wb.AddClause("posted_at < ?", until.UTC())
	}
	return wb
}

// AddContentTypes restricts to the given content types.
func (wb *WhereBuilder) AddContentTypes(types []string) *WhereBuilder {
	if len(types) == 0 {
		return wb
	}
	placeholders := make([]string, len(types))
	for i, t := range types {
		placeholders[i] = "?"
		wb.args = append(wb.args, t)
	}
	wb.clauses = append(wb.clauses, fmt.Sprintf("content_type IN (%s)", strings.Join(placeholders, ", ")))
	return wb
}

// Build returns the joined clause (or "1=1") and its arguments.
func (wb *WhereBuilder) Build() (string, []interface{}) {
	if len(wb.clauses) == 0 {
		return "1=1", []interface{}{}
	}
	return strings.Join(wb.clauses, " AND "), wb.args
}

// BuildWithPrefix is Build with a leading WHERE.
func (wb *WhereBuilder) BuildWithPrefix() (string, []interface{}) {
	clause, args := wb.Build()
	return "WHERE " + clause, args
}
