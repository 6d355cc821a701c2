package calendar

import (
	"sort"
	"time"
)

// dayKeyLayout is the local-time bucket key format
const dayKeyLayout = "2006-01-02"

// DayKey formats a local calendar day bucket key
func DayKey(t time.Time) string { return t.Format(dayKeyLayout) }

// Grouped buckets agenda items by local calendar day key ("YYYY-MM-DD").
// Only days with at least one item are present, no empty placeholders
type Grouped map[string][]Item

// Days returns the bucket keys in ascending date order
func (g Grouped) Days() []string {
	keys := make([]string, 0, len(g))
	for k := range g {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Filter selects items whose stored Date satisfies Start <= Date <= End,
// both bounds inclusive, and buckets them by calendar day. The Date is
// compared exactly as stored; unlike Expand's day stepping there is no
// time-of-day normalization, so an item timed after the window's end on
// the same calendar day falls outside it. Items inside a bucket keep
// their input order
func Filter(items []Item, w Window) Grouped {
	out := Grouped{}
	for _, it := range items {
		if !w.Contains(it.Date) {
			continue
		}
		k := DayKey(it.Date)
		out[k] = append(out[k], it)
	}
	return out
}

// Instances converts in-window items into render-ready events, composing
// each item's calendar day with its own start and end clocks the same way
// Expand composes schedule instances
func Instances(items []Item, w Window) []Event {
	var out []Event
	for _, it := range items {
		if !w.Contains(it.Date) {
			continue
		}
		out = append(out, Event{
			SourceID: it.ID,
			Title:    it.Name,
			Start:    at(it.Date, it.Start),
			End:      at(it.Date, it.End),
		})
	}
	return out
}
