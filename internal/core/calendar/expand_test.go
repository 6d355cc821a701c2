package calendar

import (
	"reflect"
	"testing"
	"time"
)

// 2025-03-03 is a Monday
func fourWeeksOfMarch() Window {
	start := time.Date(2025, time.March, 2, 0, 0, 0, 0, time.Local) // Sunday
	return Window{Start: start, End: endOfDay(start.AddDate(0, 0, 27))}
}

func TestExpand_FourMondaysInFourWeeks(t *testing.T) {
	sched := []Schedule{{ID: "s1", Name: "standup", Day: "monday", Start: Clock{9, 0}, End: Clock{9, 15}}}
	got := Expand(sched, fourWeeksOfMarch())

	if len(got) != 4 {
		t.Fatalf("expected 4 instances over 4 weeks, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		// compare calendar dates, not wall durations, so a DST transition
		// inside the window can't skew the spacing
		prev, cur := got[i-1].Start, got[i].Start
		want := prev.AddDate(0, 0, 7)
		if cur.Year() != want.Year() || cur.YearDay() != want.YearDay() {
			t.Fatalf("instances %d and %d not a week apart: %v then %v", i-1, i, prev, cur)
		}
	}
	for _, ev := range got {
		if ev.Start.Weekday() != time.Monday {
			t.Fatalf("instance on %v, want Monday", ev.Start.Weekday())
		}
		if ev.SourceID != "s1" || ev.Title != "standup" {
			t.Fatalf("instance lost identity: %+v", ev)
		}
	}
}

func TestExpand_NoMatchingDayYieldsEmpty(t *testing.T) {
	// single Tuesday window, schedule wants Sunday
	anchor := time.Date(2025, time.March, 11, 10, 0, 0, 0, time.Local)
	w := Resolve(GranularityDay, anchor)

	got := Expand([]Schedule{{ID: "s1", Name: "rest", Day: "sunday"}}, w)
	if len(got) != 0 {
		t.Fatalf("expected no instances, got %d", len(got))
	}
}

func TestExpand_TimeComposition(t *testing.T) {
	anchor := time.Date(2025, time.March, 10, 18, 0, 0, 0, time.Local) // Monday evening
	w := Resolve(GranularityDay, anchor)

	got := Expand([]Schedule{{
		ID: "gym", Name: "gym", Day: "Monday",
		Start: Clock{9, 30}, End: Clock{10, 0},
	}}, w)
	if len(got) != 1 {
		t.Fatalf("expected 1 instance, got %d", len(got))
	}
	wantStart := time.Date(2025, time.March, 10, 9, 30, 0, 0, time.Local)
	wantEnd := time.Date(2025, time.March, 10, 10, 0, 0, 0, time.Local)
	if !got[0].Start.Equal(wantStart) {
		t.Fatalf("start = %v, want %v", got[0].Start, wantStart)
	}
	if !got[0].End.Equal(wantEnd) {
		t.Fatalf("end = %v, want %v", got[0].End, wantEnd)
	}
}

func TestExpand_CaseInsensitiveDayMatch(t *testing.T) {
	w := Resolve(GranularityWeek, time.Date(2025, time.March, 12, 0, 0, 0, 0, time.Local))
	for _, day := range []string{"friday", "FRIDAY", "Friday"} {
		got := Expand([]Schedule{{ID: "x", Name: "x", Day: day}}, w)
		if len(got) != 1 {
			t.Fatalf("day %q matched %d times, want 1", day, len(got))
		}
	}
	// unknown weekday names never match, they are not an error
	if got := Expand([]Schedule{{ID: "x", Name: "x", Day: "someday"}}, w); len(got) != 0 {
		t.Fatalf("unknown weekday produced %d instances", len(got))
	}
}

func TestExpand_ScheduleMajorOrdering(t *testing.T) {
	w := Resolve(GranularityWeek, time.Date(2025, time.March, 12, 0, 0, 0, 0, time.Local))
	sched := []Schedule{
		{ID: "b", Name: "second in input", Day: "wednesday"},
		{ID: "a", Name: "first weekday", Day: "monday"},
	}
	got := Expand(sched, w)
	if len(got) != 2 {
		t.Fatalf("expected 2 instances, got %d", len(got))
	}
	// input order wins over date order across schedules
	if got[0].SourceID != "b" || got[1].SourceID != "a" {
		t.Fatalf("ordering not schedule-major: %q then %q", got[0].SourceID, got[1].SourceID)
	}
}

func TestExpand_MonthWindowCountsEveryWeek(t *testing.T) {
	// March 2025 has 5 Saturdays
	w := Resolve(GranularityMonth, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.Local))
	got := Expand([]Schedule{{ID: "s", Name: "s", Day: "saturday"}}, w)
	if len(got) != 5 {
		t.Fatalf("expected 5 saturdays in March 2025, got %d", len(got))
	}
}

func TestExpand_IdempotentForValueEqualInputs(t *testing.T) {
	w := Resolve(GranularityMonth, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.Local))
	mk := func() []Schedule {
		return []Schedule{
			{ID: "s1", Name: "standup", Day: "monday", Start: Clock{9, 0}, End: Clock{9, 15}},
			{ID: "s2", Name: "review", Day: "friday", Start: Clock{16, 0}, End: Clock{17, 0}},
		}
	}
	first := Expand(mk(), w)
	second := Expand(mk(), w)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Expand is not deterministic for value-equal inputs")
	}
}

func TestExpand_InvertedClockPassesThrough(t *testing.T) {
	anchor := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.Local) // Monday
	w := Resolve(GranularityDay, anchor)

	got := Expand([]Schedule{{
		ID: "x", Name: "x", Day: "monday",
		Start: Clock{22, 0}, End: Clock{8, 0},
	}}, w)
	if len(got) != 1 {
		t.Fatalf("expected 1 instance, got %d", len(got))
	}
	if !got[0].End.Before(got[0].Start) {
		t.Fatalf("inverted clocks should survive composition: start=%v end=%v", got[0].Start, got[0].End)
	}
}

func TestExpand_OutOfRangeHourNormalizesForward(t *testing.T) {
	anchor := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.Local) // Monday
	w := Resolve(GranularityDay, anchor)

	got := Expand([]Schedule{{ID: "x", Name: "x", Day: "monday", Start: Clock{25, 0}, End: Clock{26, 0}}}, w)
	if len(got) != 1 {
		t.Fatalf("expected 1 instance, got %d", len(got))
	}
	// hour 25 rolls into the next day, exactly as time.Date resolves it
	want := time.Date(2025, time.March, 11, 1, 0, 0, 0, time.Local)
	if !got[0].Start.Equal(want) {
		t.Fatalf("start = %v, want %v", got[0].Start, want)
	}
}

func TestExpand_SubDayWindowStillVisitsItsDay(t *testing.T) {
	// a window narrower than one day still checks the day containing Start
	start := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.Local) // Monday
	w := Window{Start: start, End: start.Add(time.Hour)}

	got := Expand([]Schedule{{ID: "x", Name: "x", Day: "monday", Start: Clock{15, 0}, End: Clock{16, 0}}}, w)
	if len(got) != 1 {
		t.Fatalf("expected the containing day to be visited, got %d instances", len(got))
	}
}
