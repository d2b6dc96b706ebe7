// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package scoring

import (
	"fmt"
	"strings"
	"time"
)

var dayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

var shortDayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// DayName returns the full English name of a weekday (0 = Sunday).
func DayName(day int) string {
	return dayNames[ClampWeekday(day)]
}

// ShortDayName returns the three-letter abbreviation of a weekday.
func ShortDayName(day int) string {
	return shortDayNames[ClampWeekday(day)]
}

// ParseDayName resolves a full or abbreviated weekday name, case-insensitive.
func ParseDayName(name string) (int, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return 0, false
	}
	for i := range dayNames {
		if n == strings.ToLower(dayNames[i]) || n == strings.ToLower(shortDayNames[i]) {
			return i, true
		}
	}
	return 0, false
}

// ClampHour bounds h to [0,23].
func ClampHour(h int) int {
	if h < 0 {
		return 0
	}
	if h > 23 {
		return 23
	}
	return h
}

// ClampWeekday bounds d to [0,6].
func ClampWeekday(d int) int {
	if d < 0 {
		return 0
	}
	if d > 6 {
		return 6
	}
	return d
}

// FormatHour renders an hour as "HH:00".
func FormatHour(h int) string {
	return fmt.Sprintf("%02d:00", ClampHour(h))
}

// FormatClock12 renders an hour on the 12-hour clock, e.g. "6:00 PM".
func FormatClock12(h int) string {
	h = ClampHour(h)
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	display := h % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:00 %s", display, suffix)
}

// TimeOfDay buckets an hour into morning, afternoon or evening.
func TimeOfDay(h int) string {
	switch {
	case h < 12:
		return "morning"
	case h < 17:
		return "afternoon"
	default:
		return "evening"
	}
}

// IsWeekend reports whether the weekday is Saturday or Sunday.
func IsWeekend(day int) bool {
	return day == int(time.Saturday) || day == int(time.Sunday)
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekdayOffset returns the weekday index of the first of the month,
// which is also the number of leading blank cells in a Sunday-first grid.
func FirstWeekdayOffset(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
