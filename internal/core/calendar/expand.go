package calendar

import "strings"

// Expand walks every calendar day of the window and emits one Event per
// schedule whose weekday matches that day. The loop steps whole days, one
// check per date regardless of the window's time-of-day bounds; a window
// narrower than a day still visits the day containing its start. Date
// stepping (rather than a closed-form weekday formula) is deliberate: it
// absorbs variable month lengths and leap years for free.
//
// Output order is schedule-major: all instances of the first schedule in
// ascending date order, then the second, and so on. Clock fields are not
// validated; out-of-range hours or inverted start/end pairs land in the
// composed instants exactly as time.Date resolves them
func Expand(schedules []Schedule, w Window) []Event {
	var out []Event
	for _, s := range schedules {
		for d := startOfDay(w.Start); !d.After(w.End); d = d.AddDate(0, 0, 1) {
			if !strings.EqualFold(s.Day, d.Weekday().String()) {
				continue
			}
			out = append(out, Event{
				SourceID: s.ID,
				Title:    s.Name,
				Start:    at(d, s.Start),
				End:      at(d, s.End),
			})
		}
	}
	return out
}
