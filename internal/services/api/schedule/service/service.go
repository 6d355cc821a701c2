// Package service contains schedule workflows, window expansion and
// iCalendar export
package service

import (
	"context"
	"time"

	"daydash/internal/core/calendar"
	"daydash/internal/modkit/repokit"
	perr "daydash/internal/platform/errors"
	pstrings "daydash/internal/platform/strings"
	"daydash/internal/services/api/schedule/domain"
	"daydash/internal/services/api/schedule/repo"
)

// Service defines the service contract for schedules
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	now func() time.Time
}

// New creates a new schedule service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("schedule.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("schedule.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, now: time.Now}
}

// List returns all weekly schedules owned by the user
func (s *Svc) List(ctx context.Context, userID string) ([]domain.Schedule, error) {
	rows, err := s.Repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Schedule, 0, len(rows))
	for _, r := range rows {
		out = append(out, toView(r))
	}
	return out, nil
}

// Create inserts a weekly schedule for the user
func (s *Svc) Create(ctx context.Context, userID string, in domain.ScheduleInput) (domain.Schedule, error) {
	r, err := s.Repo.Create(ctx, userID, fromInput(in))
	if err != nil {
		return domain.Schedule{}, err
	}
	return toView(r), nil
}

// Get returns one schedule by id
func (s *Svc) Get(ctx context.Context, userID, id string) (domain.Schedule, error) {
	r, err := s.Repo.Get(ctx, userID, id)
	if err != nil {
		return domain.Schedule{}, err
	}
	return toView(r), nil
}

// Update replaces a schedule's fields
func (s *Svc) Update(ctx context.Context, userID, id string, in domain.ScheduleInput) (domain.Schedule, error) {
	r, err := s.Repo.Update(ctx, userID, id, fromInput(in))
	if err != nil {
		return domain.Schedule{}, err
	}
	return toView(r), nil
}

// Delete removes a schedule
func (s *Svc) Delete(ctx context.Context, userID, id string) error {
	return s.Repo.Delete(ctx, userID, id)
}

// Events resolves the view window around the anchor date and expands every
// schedule into its occurrences inside it. Output is schedule-major, each
// schedule's instances in ascending date order
func (s *Svc) Events(ctx context.Context, userID, view, date string) (domain.EventsView, error) {
	g, err := calendar.ParseGranularity(view)
	if err != nil {
		return domain.EventsView{}, perr.InvalidArgf("view must be one of day, week, month, year")
	}
	anchor, err := s.anchor(date)
	if err != nil {
		return domain.EventsView{}, err
	}
	w := calendar.Resolve(g, anchor)

	rows, err := s.Repo.List(ctx, userID)
	if err != nil {
		return domain.EventsView{}, err
	}
	schedules, err := toSchedules(rows)
	if err != nil {
		return domain.EventsView{}, err
	}

	events := calendar.Expand(schedules, w)
	out := make([]domain.EventView, 0, len(events))
	for _, e := range events {
		out = append(out, domain.EventView{
			SourceID: e.SourceID,
			Title:    e.Title,
			Start:    e.Start.Format(time.RFC3339),
			End:      e.End.Format(time.RFC3339),
		})
	}

	return domain.EventsView{
		View:   string(g),
		Start:  w.Start.Format(time.RFC3339),
		End:    w.End.Format(time.RFC3339),
		Events: out,
	}, nil
}

// anchor parses the window anchor, a bare date or a full timestamp.
// Empty means today
func (s *Svc) anchor(date string) (time.Time, error) {
	if date == "" {
		return s.now(), nil
	}
	if t, err := time.ParseInLocation("2006-01-02", date, time.Local); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, date)
	if err != nil {
		return time.Time{}, perr.InvalidArgf("date %q is not YYYY-MM-DD or RFC 3339", date)
	}
	return t, nil
}

func toSchedules(rows []repo.RowSchedule) ([]calendar.Schedule, error) {
	out := make([]calendar.Schedule, 0, len(rows))
	for _, r := range rows {
		start, err := calendar.ParseClock(r.StartTime)
		if err != nil {
			return nil, perr.Internalf("schedule %s: %v", r.ID, err)
		}
		end, err := calendar.ParseClock(r.EndTime)
		if err != nil {
			return nil, perr.Internalf("schedule %s: %v", r.ID, err)
		}
		out = append(out, calendar.Schedule{ID: r.ID, Name: r.Name, Day: r.Day, Start: start, End: end})
	}
	return out, nil
}

func fromInput(in domain.ScheduleInput) repo.RowSchedule {
	return repo.RowSchedule{
		Name:       in.Name,
		Day:        in.Day,
		StartTime:  in.StartTime,
		EndTime:    in.EndTime,
		Location:   in.Location,
		CategoryID: pstrings.Ptr(in.Category),
	}
}

func toView(r repo.RowSchedule) domain.Schedule {
	return domain.Schedule{
		ID:        r.ID,
		Name:      r.Name,
		Day:       r.Day,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Location:  r.Location,
		Category:  pstrings.Deref(r.CategoryID),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
