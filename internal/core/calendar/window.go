package calendar

import (
	"fmt"
	"time"
)

// WeekStart fixes the first day of a week window. The source UI leaned on a
// locale default; pinning Sunday keeps Resolve deterministic everywhere
const WeekStart = time.Sunday

// Resolve computes the inclusive view window for a granularity around an
// anchor instant. All bounds are local wall-clock in the anchor's Location;
// end bounds carry millisecond precision (23:59:59.999) to mirror the
// source's day arithmetic. An unknown granularity is a programming error
// and panics; wire input goes through ParseGranularity first
func Resolve(g Granularity, anchor time.Time) Window {
	switch g {
	case GranularityDay:
		return Window{Start: startOfDay(anchor), End: endOfDay(anchor)}
	case GranularityWeek:
		back := (int(anchor.Weekday()) - int(WeekStart) + 7) % 7
		first := anchor.AddDate(0, 0, -back)
		return Window{Start: startOfDay(first), End: endOfDay(first.AddDate(0, 0, 6))}
	case GranularityMonth:
		first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
		return Window{Start: first, End: endOfDay(first.AddDate(0, 1, -1))}
	case GranularityYear:
		first := time.Date(anchor.Year(), time.January, 1, 0, 0, 0, 0, anchor.Location())
		return Window{Start: first, End: endOfDay(first.AddDate(1, 0, -1))}
	}
	panic(fmt.Sprintf("calendar: unknown granularity %q", g))
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
