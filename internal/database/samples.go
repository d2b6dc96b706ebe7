// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package database

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/tomtom215/cadence/internal/database/query"
	"github.com/tomtom215/cadence/internal/metrics"
	"github.com/tomtom215/cadence/internal/models"
)

// LookbackWindow bounds rollups to recent history.
type LookbackWindow struct {
	// Days of history before Now. Zero or less means all history.
	Days int
	Now  time.Time
}

// Since returns the lower bound, or nil for all history.
func (w LookbackWindow) Since() *time.Time {
	if w.Days <= 0 {
		return nil
	}
	since := w.Now.AddDate(0, 0, -w.Days)
	return &since
}

type postRow struct {
	postedAt time.Time
	views    int64
	likes    int64
	comments int64
	shares   int64
}

func (r postRow) engagement() float64 {
	if r.views <= 0 {
		return 0
	}
	return float64(r.likes+r.comments+r.shares) * 100 / float64(r.views)
}

type bucket struct {
	views      float64
	engagement float64
	count      int
}

func (b *bucket) add(r postRow) {
	b.views += float64(r.views)
	b.engagement += r.engagement()
	b.count++
}

func (b *bucket) avgViews() float64 {
	return round2(b.views / float64(b.count))
}

func (b *bucket) avgEngagement() float64 {
	return round2(b.engagement / float64(b.count))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (db *DB) scanPosts(ctx context.Context, wb *query.WhereBuilder) ([]postRow, error) {
	if db.conn == nil {
		return nil, ErrNilConnection
	}
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	where, args := wb.BuildWithPrefix()
	start := time.Now()
	rows, err := db.conn.QueryContext(ctx,
		"SELECT posted_at, views, likes, comments, shares FROM posts "+where+" ORDER BY posted_at", args...)
	if err != nil {
		metrics.RecordDBQuery("SELECT", "posts", time.Since(start), err)
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer closeQuietly(rows)

	var out []postRow
	for rows.Next() {
		var r postRow
		if err := rows.Scan(&r.postedAt, &r.views, &r.likes, &r.comments, &r.shares); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		out = append(out, r)
	}
	err = rows.Err()
	metrics.RecordDBQuery("SELECT", "posts", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}
	return out, nil
}

// GetHourlySamples returns one sample per (weekday, hour) that has posts,
// bucketed in loc and ordered by weekday then hour.
func (db *DB) GetHourlySamples(ctx context.Context, channelID string, window LookbackWindow, loc *time.Location) ([]models.PerformanceSample, error) {
	if channelID == "" {
		return nil, ErrChannelRequired
	}
	if loc == nil {
		loc = time.UTC
	}

	rows, err := db.scanPosts(ctx, query.NewWhereBuilder().
		AddChannel(channelID).
		AddPostedRange(window.Since(), nil))
	if err != nil {
		return nil, err
	}

	type slot struct{ day, hour int }
	buckets := make(map[slot]*bucket)
	for _, r := range rows {
		t := r.postedAt.In(loc)
		k := slot{int(t.Weekday()), t.Hour()}
		b, ok := buckets[k]
		if !ok {
			b = &bucket{}
			buckets[k] = b
		}
		b.add(r)
	}

	out := make([]models.PerformanceSample, 0, len(buckets))
	for k, b := range buckets {
		out = append(out, models.PerformanceSample{
			Hour:          k.hour,
			DayOfWeek:     k.day,
			AvgEngagement: b.avgEngagement(),
			AvgViews:      b.avgViews(),
			PostCount:     b.count,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DayOfWeek != out[j].DayOfWeek {
			return out[i].DayOfWeek < out[j].DayOfWeek
		}
		return out[i].Hour < out[j].Hour
	})
	return out, nil
}

// GetDailySamples returns one date-tagged sample per calendar day in
// [from, to) that has posts, bucketed in loc and ordered by date. Nil bounds
// are open. Hour is the local hour of the day's most viewed post.
func (db *DB) GetDailySamples(ctx context.Context, channelID string, from, to *time.Time, loc *time.Location) ([]models.PerformanceSample, error) {
	if channelID == "" {
		return nil, ErrChannelRequired
	}
	if loc == nil {
		loc = time.UTC
	}

	rows, err := db.scanPosts(ctx, query.NewWhereBuilder().
		AddChannel(channelID).
		AddPostedRange(from, to))
	if err != nil {
		return nil, err
	}

	type day struct {
		b        bucket
		date     time.Time
		topViews int64
		topHour  int
	}
	var order []string
	days := make(map[string]*day)
	for _, r := range rows {
		t := r.postedAt.In(loc)
		key := t.Format("2006-01-02")
		d, ok := days[key]
		if !ok {
			d = &day{date: t, topViews: -1}
			days[key] = d
			order = append(order, key)
		}
		d.b.add(r)
		if r.views > d.topViews {
			d.topViews = r.views
			d.topHour = t.Hour()
		}
	}

	out := make([]models.PerformanceSample, 0, len(order))
	for _, key := range order {
		d := days[key]
		out = append(out, models.PerformanceSample{
			Hour:          d.topHour,
			DayOfWeek:     int(d.date.Weekday()),
			AvgEngagement: d.b.avgEngagement(),
			AvgViews:      d.b.avgViews(),
			PostCount:     d.b.count,
			Date:          d.date.Day(),
			Month:         int(d.date.Month()),
			Year:          d.date.Year(),
		})
	}
	return out, nil
}

// GetContentTypeStats aggregates engagement per content type, best first.
// Posts without a content type are reported as "unknown".
func (db *DB) GetContentTypeStats(ctx context.Context, channelID string, window LookbackWindow) ([]models.ContentTypeRecommendation, error) {
	if channelID == "" {
		return nil, ErrChannelRequired
	}
	if db.conn == nil {
		return nil, ErrNilConnection
	}
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	where, args := query.NewWhereBuilder().
		AddChannel(channelID).
		AddPostedRange(window.Since(), nil).
		BuildWithPrefix()

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, `
		SELECT
			COALESCE(NULLIF(content_type, ''), 'unknown') AS ct,
			AVG(CASE WHEN views > 0 THEN (likes + comments + shares) * 100.0 / views ELSE 0 END) AS avg_engagement,
			AVG(views) AS avg_views,
			COUNT(*) AS post_count
		FROM posts `+where+`
		GROUP BY ct
		ORDER BY avg_engagement DESC, ct`, args...)
	if err != nil {
		metrics.RecordDBQuery("SELECT", "posts", time.Since(start), err)
		return nil, fmt.Errorf("failed to query content types: %w", err)
	}
	defer closeQuietly(rows)

	var out []models.ContentTypeRecommendation
	for rows.Next() {
		var c models.ContentTypeRecommendation
		if err := rows.Scan(&c.ContentType, &c.AvgEngagement, &c.AvgViews, &c.PostCount); err != nil {
			return nil, fmt.Errorf("failed to scan content type: %w", err)
		}
		c.AvgEngagement = round2(c.AvgEngagement)
		c.AvgViews = round2(c.AvgViews)
		out = append(out, c)
	}
	err = rows.Err()
	metrics.RecordDBQuery("SELECT", "posts", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to iterate content types: %w", err)
	}
	return out, nil
}
