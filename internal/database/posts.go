// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/cadence/internal/database/query"
	"github.com/tomtom215/cadence/internal/metrics"
	"github.com/tomtom215/cadence/internal/models"
)

const upsertPostSQL = `INSERT INTO posts (
		channel_id, post_id, content_type, posted_at,
		views, likes, comments, shares, ingested_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (channel_id, post_id) DO UPDATE SET
		content_type = EXCLUDED.content_type,
		posted_at = EXCLUDED.posted_at,
		views = EXCLUDED.views,
		likes = EXCLUDED.likes,
		comments = EXCLUDED.comments,
		shares = EXCLUDED.shares,
		ingested_at = EXCLUDED.ingested_at`

const maxWriteRetries = 3

// InsertPosts upserts posts keyed by (channel, post ID) in one transaction and
// returns the number of distinct posts written. A post repeated within the
// batch keeps its last occurrence.
func (db *DB) InsertPosts(ctx context.Context, posts []models.PostFact) (int, error) {
	if db.conn == nil {
		return 0, ErrNilConnection
	}
	batch := dedupePosts(posts)
	if len(batch) == 0 {
		return 0, nil
	}

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	var err error
retry:
	for attempt := 0; attempt < maxWriteRetries; attempt++ {
		if err = db.insertBatch(ctx, batch); err == nil || !isTransactionConflict(err) {
			break
		}

		select {
		case <-time.After(time.Millisecond << uint(attempt)):
		case <-ctx.Done():
			err = ctx.Err()
			break retry
		}
	}
	metrics.RecordDBQuery("UPSERT", "posts", time.Since(start), err)
	if err != nil {
		return 0, err
	}

	metrics.RecordIngest(len(batch))
	return len(batch), nil
}

func (db *DB) insertBatch(ctx context.Context, batch []models.PostFact) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, upsertPostSQL)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer closeWithLog(stmt, "prepared statement")

	now := time.Now().UTC()
	for i := range batch {
		p := &batch[i]
		if _, err := stmt.ExecContext(ctx,
			p.ChannelID, p.PostID, p.ContentType, p.PostedAt.UTC(),
			p.Views, p.Likes, p.Comments, p.Shares, now,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to upsert post %s: %w", p.PostID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit posts: %w", err)
	}
	return nil
}

func dedupePosts(posts []models.PostFact) []models.PostFact {
	type key struct{ channel, post string }
	index := make(map[key]int, len(posts))
	out := make([]models.PostFact, 0, len(posts))
	for _, p := range posts {
		k := key{p.ChannelID, p.PostID}
		if i, ok := index[k]; ok {
			out[i] = p
			continue
		}
		index[k] = len(out)
		out = append(out, p)
	}
	return out
}

// CountPosts returns the number of stored posts for a channel, or for all
// channels when channelID is empty.
func (db *DB) CountPosts(ctx context.Context, channelID string) (int, error) {
	if db.conn == nil {
		return 0, ErrNilConnection
	}
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	where, args := query.NewWhereBuilder().AddChannel(channelID).BuildWithPrefix()

	var n int
	start := time.Now()
	err := db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM posts "+where, args...).Scan(&n)
	metrics.RecordDBQuery("COUNT", "posts", time.Since(start), err)
	if err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return n, nil
}

// ListChannels returns every channel with its post count and time span,
// ordered by channel ID.
func (db *DB) ListChannels(ctx context.Context) ([]models.ChannelSummary, error) {
	if db.conn == nil {
		return nil, ErrNilConnection
	}
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, `
		SELECT channel_id, COUNT(*), MIN(posted_at), MAX(posted_at)
		FROM posts
		GROUP BY channel_id
		ORDER BY channel_id`)
	if err != nil {
		metrics.RecordDBQuery("SELECT", "posts", time.Since(start), err)
		return nil, fmt.Errorf("failed to list channels: %w", err)
	}
	defer closeQuietly(rows)

	channels := []models.ChannelSummary{}
	for rows.Next() {
		var c models.ChannelSummary
		if err := rows.Scan(&c.ChannelID, &c.PostCount, &c.FirstPostAt, &c.LastPostAt); err != nil {
			return nil, fmt.Errorf("failed to scan channel: %w", err)
		}
		c.FirstPostAt = c.FirstPostAt.UTC()
		c.LastPostAt = c.LastPostAt.UTC()
		channels = append(channels, c)
	}
	err = rows.Err()
	metrics.RecordDBQuery("SELECT", "posts", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to iterate channels: %w", err)
	}
	return channels, nil
}
