// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package api

import (
	"time"

	"github.com/tomtom215/cadence/internal/models"
	"github.com/tomtom215/cadence/internal/normalize"
	"github.com/tomtom215/cadence/internal/planner"
)

// IngestRequest is the body of POST /channels/{channelID}/posts. Each
// post's channelId is overwritten with the path value.
type IngestRequest struct {
	Posts []models.PostFact `json:"posts" validate:"required,min=1,max=5000,dive"`
}

// IngestResponse reports what an ingest did.
type IngestResponse struct {
	ChannelID  string `json:"channelId"`
	Accepted   int    `json:"accepted"`
	TotalPosts int    `json:"totalPosts"`
}

// LookbackQuery validates the days query parameter.
type LookbackQuery struct {
	Days *int `json:"days" validate:"omitempty,min=0,max=3650"`
}

// CalendarQuery validates the calendar query parameters.
type CalendarQuery struct {
	Year  int  `json:"year" validate:"min=1970,max=2200"`
	Month int  `json:"month" validate:"min=1,max=12"`
	Days  *int `json:"days" validate:"omitempty,min=0,max=3650"`
}

// AnalyzeRequest is the body of POST /recommendations/analyze. Records use
// the loose field names accepted by the normalize package; each list is
// capped at 10000 entries.
type AnalyzeRequest struct {
	Samples      []normalize.Record `json:"samples" validate:"max=10000"`
	TimeSlots    []normalize.Record `json:"timeSlots" validate:"max=10000"`
	Combinations []normalize.Record `json:"combinations" validate:"max=10000"`
	ContentTypes []normalize.Record `json:"contentTypes" validate:"max=10000"`
}

func (a *AnalyzeRequest) toPlanner() planner.AnalyzeRequest {
	return planner.AnalyzeRequest{
		Samples:      a.Samples,
		TimeSlots:    a.TimeSlots,
		Combinations: a.Combinations,
		ContentTypes: a.ContentTypes,
	}
}

// ProjectRequest is the body of POST /calendar/project.
type ProjectRequest struct {
	AnalyzeRequest

	Year            int                `json:"year" validate:"min=1970,max=2200"`
	Month           int                `json:"month" validate:"min=1,max=12"`
	Now             *time.Time         `json:"now"`
	Timezone        string             `json:"timezone" validate:"omitempty,iana_tz"`
	CalendarSamples []normalize.Record `json:"calendarSamples" validate:"max=10000"`
}
