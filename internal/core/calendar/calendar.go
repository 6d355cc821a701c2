// Package calendar expands weekly recurring schedules and one-off agenda
// items into concrete event instances inside a visible date window.
// Everything here is pure: inputs are snapshots, outputs are fresh values,
// and all composition is local wall-clock with no timezone conversion
package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Granularity selects the calendar unit of a view window
type Granularity string

const (
	// GranularityDay is a single calendar day
	GranularityDay Granularity = "day"
	// GranularityWeek is the week containing the anchor
	GranularityWeek Granularity = "week"
	// GranularityMonth is the calendar month containing the anchor
	GranularityMonth Granularity = "month"
	// GranularityYear is the calendar year containing the anchor
	GranularityYear Granularity = "year"
)

// ParseGranularity validates a wire-level view string
// unknown values are a caller error, not a default
func ParseGranularity(s string) (Granularity, error) {
	switch g := Granularity(strings.ToLower(strings.TrimSpace(s))); g {
	case GranularityDay, GranularityWeek, GranularityMonth, GranularityYear:
		return g, nil
	default:
		return "", fmt.Errorf("calendar: unknown granularity %q", s)
	}
}

// Clock is a wall-clock time of day with minute precision, no seconds
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses an "HH:MM" wire string. Both halves are parsed as plain
// integers with no range validation; out-of-range values flow untouched into
// time.Date, which normalizes them the way Go date arithmetic does
func ParseClock(s string) (Clock, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return Clock{}, fmt.Errorf("calendar: malformed clock %q", s)
	}
	h, err := strconv.Atoi(strings.TrimSpace(hh))
	if err != nil {
		return Clock{}, fmt.Errorf("calendar: malformed clock %q: %w", s, err)
	}
	m, err := strconv.Atoi(strings.TrimSpace(mm))
	if err != nil {
		return Clock{}, fmt.Errorf("calendar: malformed clock %q: %w", s, err)
	}
	return Clock{Hour: h, Minute: m}, nil
}

// String renders the zero-padded "HH:MM" wire form
func (c Clock) String() string { return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute) }

// Window is the inclusive [Start, End] instant range currently visible
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window, both bounds inclusive
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Schedule is a weekly repeating commitment: a weekday name plus start and
// end clocks. Day is matched case-insensitively against English weekday
// names; an unknown name simply never matches
type Schedule struct {
	ID    string
	Name  string
	Day   string
	Start Clock
	End   Clock
}

// Item is a one-off agenda entry tied to a specific calendar date.
// Date carries whatever time component was stored with it
type Item struct {
	ID    string
	Name  string
	Date  time.Time
	Start Clock
	End   Clock
}

// Event is a concrete dated occurrence ready for display. Start <= End is
// not guaranteed: inverted source clocks pass through as-is
type Event struct {
	SourceID string
	Title    string
	Start    time.Time
	End      time.Time
}

// at composes a calendar day with a wall-clock time, seconds and below zeroed
func at(day time.Time, c Clock) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), c.Hour, c.Minute, 0, 0, day.Location())
}
