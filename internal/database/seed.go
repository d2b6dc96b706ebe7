// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package database

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/cadence/internal/models"
)

// seedNamespace derives stable post IDs so reseeding upserts instead of duplicating.
var seedNamespace = uuid.MustParse("5b8f0d7e-4c1a-4e8b-9a51-2f6d3c7e1a90")

type seedChannel struct {
	id        string
	baseViews float64
	// peak hours and days get a multiplier so recommendations have a clear winner
	peakHours map[int]float64
	peakDays  map[time.Weekday]float64
	types     []string
}

var seedChannels = []seedChannel{
	{
		id:        "demo-lifestyle",
		baseViews: 1200,
		peakHours: map[int]float64{18: 1.9, 19: 1.7, 12: 1.3},
		peakDays:  map[time.Weekday]float64{time.Saturday: 1.5, time.Sunday: 1.4},
		types:     []string{"photo", "reel", "story"},
	},
	{
		id:        "demo-tech",
		baseViews: 800,
		peakHours: map[int]float64{9: 1.6, 10: 1.5, 15: 1.2},
		peakDays:  map[time.Weekday]float64{time.Tuesday: 1.4, time.Wednesday: 1.3},
		types:     []string{"video", "short", "article"},
	},
}

var seedHours = []int{7, 9, 10, 12, 15, 18, 19, 21}

// SeedDays is how much history SeedMockData generates.
const SeedDays = 120

// SeedMockData fills the store with demo channels covering the SeedDays days
// before now. Output depends only on now, so repeated seeding is stable.
// Channels that already have posts are left alone.
func (db *DB) SeedMockData(ctx context.Context, now time.Time) (int, error) {
	total := 0
	for i, ch := range seedChannels {
		existing, err := db.CountPosts(ctx, ch.id)
		if err != nil {
			return total, err
		}
		if existing > 0 {
			db.logger.Debug().Str("channel_id", ch.id).Int("posts", existing).Msg("Seed channel already populated")
			continue
		}

		posts := generateSeedPosts(ch, uint64(i+1), now)
		n, err := db.InsertPosts(ctx, posts)
		if err != nil {
			return total, fmt.Errorf("failed to seed %s: %w", ch.id, err)
		}
		total += n
	}

	db.logger.Info().Int("posts", total).Msg("Seeded mock data")
	return total, nil
}

func generateSeedPosts(ch seedChannel, seed uint64, now time.Time) []models.PostFact {
	rng := rand.New(rand.NewPCG(seed, uint64(now.UTC().Truncate(24*time.Hour).Unix())))
	start := now.UTC().Truncate(24*time.Hour).AddDate(0, 0, -SeedDays)

	var posts []models.PostFact
	for d := 0; d < SeedDays; d++ {
		day := start.AddDate(0, 0, d)
		perDay := 1 + rng.IntN(3)
		for p := 0; p < perDay; p++ {
			hour := seedHours[rng.IntN(len(seedHours))]
			postedAt := day.Add(time.Duration(hour)*time.Hour + time.Duration(rng.IntN(60))*time.Minute)

			mult := 1.0
			if m, ok := ch.peakHours[hour]; ok {
				mult *= m
			}
			if m, ok := ch.peakDays[postedAt.Weekday()]; ok {
				mult *= m
			}
			views := int64(ch.baseViews * mult * (0.75 + rng.Float64()*0.5))
			engagement := 0.03 + rng.Float64()*0.05

			posts = append(posts, models.PostFact{
				PostID:      uuid.NewSHA1(seedNamespace, []byte(fmt.Sprintf("%s/%d/%d", ch.id, d, p))).String(),
				ChannelID:   ch.id,
				ContentType: ch.types[rng.IntN(len(ch.types))],
				PostedAt:    postedAt,
				Views:       views,
				Likes:       int64(float64(views) * engagement * 0.7),
				Comments:    int64(float64(views) * engagement * 0.2),
				Shares:      int64(float64(views) * engagement * 0.1),
			})
		}
	}
	return posts
}
