// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package database

import (
	"context"
	"fmt"
)

// No secondary index: DuckDB row-group zonemaps already prune on
// channel_id and posted_at, and ART indexes on upserted columns trip
// its over-eager constraint checks.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS posts (
		channel_id   VARCHAR NOT NULL,
		post_id      VARCHAR NOT NULL,
		content_type VARCHAR NOT NULL DEFAULT '',
		posted_at    TIMESTAMP NOT NULL,
		views        BIGINT NOT NULL DEFAULT 0,
		likes        BIGINT NOT NULL DEFAULT 0,
		comments     BIGINT NOT NULL DEFAULT 0,
		shares       BIGINT NOT NULL DEFAULT 0,
		ingested_at  TIMESTAMP NOT NULL,
		PRIMARY KEY (channel_id, post_id)
	)`,
}

func (db *DB) createTables(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}
