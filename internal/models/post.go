// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package models

import "time"

// PostFact is a single published post with its engagement counters.
// Counters are cumulative snapshots; re-ingesting a post replaces them.
type PostFact struct {
	PostID      string    `json:"postId" validate:"required,max=128"`
	ChannelID   string    `json:"channelId" validate:"required,max=128"`
	ContentType string    `json:"contentType,omitempty" validate:"omitempty,max=64"`
	PostedAt    time.Time `json:"postedAt" validate:"required"`
	Views       int64     `json:"views" validate:"min=0"`
	Likes       int64     `json:"likes" validate:"min=0"`
	Comments    int64     `json:"comments" validate:"min=0"`
	Shares      int64     `json:"shares" validate:"min=0"`
}

// EngagementRate returns interactions per hundred views, or zero without views.
func (p PostFact) EngagementRate() float64 {
	if p.Views <= 0 {
		return 0
	}
	return float64(p.Likes+p.Comments+p.Shares) * 100 / float64(p.Views)
}

// ChannelSummary describes a channel known to the store.
type ChannelSummary struct {
	ChannelID   string    `json:"channelId"`
	PostCount   int       `json:"postCount"`
	FirstPostAt time.Time `json:"firstPostAt"`
	LastPostAt  time.Time `json:"lastPostAt"`
}
