package service

import (
	"context"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"

	"daydash/internal/core/calendar"
)

var rruleDays = map[string]rrule.Weekday{
	"sunday":    rrule.SU,
	"monday":    rrule.MO,
	"tuesday":   rrule.TU,
	"wednesday": rrule.WE,
	"thursday":  rrule.TH,
	"friday":    rrule.FR,
	"saturday":  rrule.SA,
}

var weekdayIndex = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ExportICS renders the user's weekly schedules as an iCalendar feed, one
// VEVENT per schedule with a weekly RRULE. Each event's DTSTART is the next
// occurrence of its weekday from now. Schedules with an unrecognized weekday
// never occur and are left out of the feed
func (s *Svc) ExportICS(ctx context.Context, userID string) ([]byte, error) {
	rows, err := s.Repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//daydash//schedule//EN")

	for _, r := range rows {
		day := strings.ToLower(r.Day)
		wd, ok := weekdayIndex[day]
		if !ok {
			continue
		}
		start, err := calendar.ParseClock(r.StartTime)
		if err != nil {
			continue
		}
		end, err := calendar.ParseClock(r.EndTime)
		if err != nil {
			continue
		}

		first := nextWeekday(now, wd)
		dtStart := time.Date(first.Year(), first.Month(), first.Day(), start.Hour, start.Minute, 0, 0, time.Local)
		dtEnd := time.Date(first.Year(), first.Month(), first.Day(), end.Hour, end.Minute, 0, 0, time.Local)

		opt := rrule.ROption{Freq: rrule.WEEKLY, Byweekday: []rrule.Weekday{rruleDays[day]}}

		e := cal.AddEvent(r.ID + "@daydash")
		e.SetDtStampTime(now)
		e.SetStartAt(dtStart)
		e.SetEndAt(dtEnd)
		e.SetSummary(r.Name)
		if r.Location != "" {
			e.SetLocation(r.Location)
		}
		e.AddRrule(opt.RRuleString())
	}

	return []byte(cal.Serialize()), nil
}

// nextWeekday returns the first calendar day on or after t that falls on wd
func nextWeekday(t time.Time, wd time.Weekday) time.Time {
	ahead := (int(wd) - int(t.Weekday()) + 7) % 7
	return t.AddDate(0, 0, ahead)
}
