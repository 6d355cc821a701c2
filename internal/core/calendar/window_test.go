package calendar

import (
	"testing"
	"time"

	kit "daydash/internal/platform/testkit"
)

func TestResolve_DaySpansFullDay(t *testing.T) {
	anchor := time.Date(2025, time.March, 14, 15, 4, 33, 123, time.Local)
	w := Resolve(GranularityDay, anchor)

	wantStart := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.Local)
	wantEnd := time.Date(2025, time.March, 14, 23, 59, 59, int(999*time.Millisecond), time.Local)
	if !w.Start.Equal(wantStart) {
		t.Fatalf("day start = %v, want %v", w.Start, wantStart)
	}
	if !w.End.Equal(wantEnd) {
		t.Fatalf("day end = %v, want %v", w.End, wantEnd)
	}
	if w.Start.Day() != anchor.Day() || w.End.Day() != anchor.Day() {
		t.Fatalf("day window left the anchor's calendar date")
	}
}

func TestResolve_WeekStartsSunday(t *testing.T) {
	// 2025-03-12 is a Wednesday; its week runs Sun 2025-03-09 .. Sat 2025-03-15
	anchor := time.Date(2025, time.March, 12, 9, 30, 0, 0, time.Local)
	w := Resolve(GranularityWeek, anchor)

	if w.Start.Weekday() != time.Sunday {
		t.Fatalf("week start weekday = %v, want Sunday", w.Start.Weekday())
	}
	if got := w.Start.Format("2006-01-02"); got != "2025-03-09" {
		t.Fatalf("week start = %s, want 2025-03-09", got)
	}
	if got := w.End.Format("2006-01-02"); got != "2025-03-15" {
		t.Fatalf("week end = %s, want 2025-03-15", got)
	}

	// anchoring on a Sunday keeps the window in place
	sun := Resolve(GranularityWeek, w.Start.Add(6*time.Hour))
	if !sun.Start.Equal(w.Start) {
		t.Fatalf("sunday anchor moved the week start to %v", sun.Start)
	}
}

func TestResolve_MonthSpansWholeMarch(t *testing.T) {
	for day := 1; day <= 31; day += 10 {
		anchor := time.Date(2025, time.March, day, 12, 0, 0, 0, time.Local)
		w := Resolve(GranularityMonth, anchor)

		wantStart := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.Local)
		wantEnd := time.Date(2025, time.March, 31, 23, 59, 59, int(999*time.Millisecond), time.Local)
		if !w.Start.Equal(wantStart) {
			t.Fatalf("anchor day %d: month start = %v, want %v", day, w.Start, wantStart)
		}
		if !w.End.Equal(wantEnd) {
			t.Fatalf("anchor day %d: month end = %v, want %v", day, w.End, wantEnd)
		}
	}
}

func TestResolve_MonthHandlesLeapFebruary(t *testing.T) {
	w := Resolve(GranularityMonth, time.Date(2024, time.February, 10, 0, 0, 0, 0, time.Local))
	if got := w.End.Day(); got != 29 {
		t.Fatalf("leap february end day = %d, want 29", got)
	}
	w = Resolve(GranularityMonth, time.Date(2025, time.February, 10, 0, 0, 0, 0, time.Local))
	if got := w.End.Day(); got != 28 {
		t.Fatalf("february end day = %d, want 28", got)
	}
}

func TestResolve_YearSpansCalendarYear(t *testing.T) {
	anchor := time.Date(2025, time.August, 20, 7, 0, 0, 0, time.Local)
	w := Resolve(GranularityYear, anchor)

	if w.Start.Month() != time.January || w.Start.Day() != 1 {
		t.Fatalf("year start = %v", w.Start)
	}
	if w.End.Month() != time.December || w.End.Day() != 31 {
		t.Fatalf("year end = %v", w.End)
	}
	if w.Start.Year() != 2025 || w.End.Year() != 2025 {
		t.Fatalf("year window escaped 2025: %v .. %v", w.Start, w.End)
	}
}

func TestResolve_UnknownGranularityPanics(t *testing.T) {
	kit.MustPanic(t, func() {
		Resolve(Granularity("fortnight"), time.Now())
	})
}

func TestParseGranularity(t *testing.T) {
	for _, s := range []string{"day", "week", "MONTH", " year "} {
		if _, err := ParseGranularity(s); err != nil {
			t.Fatalf("ParseGranularity(%q) unexpected error: %v", s, err)
		}
	}
	if _, err := ParseGranularity("quarter"); err == nil {
		t.Fatalf("expected error for unknown granularity")
	}
	if _, err := ParseGranularity(""); err == nil {
		t.Fatalf("expected error for empty granularity")
	}
}

func TestParseClock(t *testing.T) {
	c, err := ParseClock("09:30")
	if err != nil {
		t.Fatalf("ParseClock: %v", err)
	}
	if c.Hour != 9 || c.Minute != 30 {
		t.Fatalf("ParseClock = %+v", c)
	}

	// no range validation: 25:61 parses fine and is left to date arithmetic
	c, err = ParseClock("25:61")
	if err != nil {
		t.Fatalf("out-of-range clock should still parse: %v", err)
	}
	if c.Hour != 25 || c.Minute != 61 {
		t.Fatalf("out-of-range clock = %+v", c)
	}

	if _, err := ParseClock("nine thirty"); err == nil {
		t.Fatalf("expected error for non-numeric clock")
	}
	if _, err := ParseClock("0930"); err == nil {
		t.Fatalf("expected error for missing separator")
	}

	if got := (Clock{Hour: 7, Minute: 5}).String(); got != "07:05" {
		t.Fatalf("Clock.String = %q", got)
	}
}
