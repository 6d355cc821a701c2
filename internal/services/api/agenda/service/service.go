// Package service contains agenda workflows and the calendar view
package service

import (
	"context"
	"time"

	"daydash/internal/core/calendar"
	"daydash/internal/modkit/repokit"
	perr "daydash/internal/platform/errors"
	pstrings "daydash/internal/platform/strings"
	"daydash/internal/services/api/agenda/domain"
	"daydash/internal/services/api/agenda/repo"
)

// Service defines the service contract for agenda items
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	now func() time.Time
}

// New creates a new agenda service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("agenda.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("agenda.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, now: time.Now}
}

// List returns all agenda items owned by the user in date order
func (s *Svc) List(ctx context.Context, userID string) ([]domain.Agenda, error) {
	rows, err := s.Repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Agenda, 0, len(rows))
	for _, r := range rows {
		out = append(out, toView(r))
	}
	return out, nil
}

// Create inserts an agenda item for the user
func (s *Svc) Create(ctx context.Context, userID string, in domain.AgendaInput) (domain.Agenda, error) {
	row, err := fromInput(in)
	if err != nil {
		return domain.Agenda{}, err
	}
	r, err := s.Repo.Create(ctx, userID, row)
	if err != nil {
		return domain.Agenda{}, err
	}
	return toView(r), nil
}

// Get returns one agenda item by id
func (s *Svc) Get(ctx context.Context, userID, id string) (domain.Agenda, error) {
	r, err := s.Repo.Get(ctx, userID, id)
	if err != nil {
		return domain.Agenda{}, err
	}
	return toView(r), nil
}

// Update replaces an agenda item's fields
func (s *Svc) Update(ctx context.Context, userID, id string, in domain.AgendaInput) (domain.Agenda, error) {
	row, err := fromInput(in)
	if err != nil {
		return domain.Agenda{}, err
	}
	r, err := s.Repo.Update(ctx, userID, id, row)
	if err != nil {
		return domain.Agenda{}, err
	}
	return toView(r), nil
}

// Delete removes an agenda item
func (s *Svc) Delete(ctx context.Context, userID, id string) error {
	return s.Repo.Delete(ctx, userID, id)
}

// Calendar resolves the view window around the anchor date and returns the
// user's agenda items inside it, bucketed by day and flattened into events.
// Unknown views are a caller error; a missing date anchors on now
func (s *Svc) Calendar(ctx context.Context, userID, view, date string) (domain.CalendarView, error) {
	g, err := calendar.ParseGranularity(view)
	if err != nil {
		return domain.CalendarView{}, perr.InvalidArgf("view must be one of day, week, month, year")
	}
	anchor, err := s.anchor(date)
	if err != nil {
		return domain.CalendarView{}, err
	}
	w := calendar.Resolve(g, anchor)

	rows, err := s.Repo.List(ctx, userID)
	if err != nil {
		return domain.CalendarView{}, err
	}
	items, byID, err := toItems(rows)
	if err != nil {
		return domain.CalendarView{}, err
	}

	grouped := calendar.Filter(items, w)
	days := make(map[string][]domain.Agenda, len(grouped))
	for day, its := range grouped {
		views := make([]domain.Agenda, 0, len(its))
		for _, it := range its {
			views = append(views, toView(byID[it.ID]))
		}
		days[day] = views
	}

	events := calendar.Instances(items, w)
	out := make([]domain.EventView, 0, len(events))
	for _, e := range events {
		out = append(out, domain.EventView{
			SourceID: e.SourceID,
			Title:    e.Title,
			Start:    e.Start.Format(time.RFC3339),
			End:      e.End.Format(time.RFC3339),
		})
	}

	return domain.CalendarView{
		View:   string(g),
		Start:  w.Start.Format(time.RFC3339),
		End:    w.End.Format(time.RFC3339),
		Days:   days,
		Events: out,
	}, nil
}

// anchor parses the calendar anchor, a bare date or a full timestamp.
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

func toItems(rows []repo.RowAgenda) ([]calendar.Item, map[string]repo.RowAgenda, error) {
	items := make([]calendar.Item, 0, len(rows))
	byID := make(map[string]repo.RowAgenda, len(rows))
	for _, r := range rows {
		start, err := calendar.ParseClock(r.StartTime)
		if err != nil {
			return nil, nil, perr.Internalf("agenda %s: %v", r.ID, err)
		}
		end, err := calendar.ParseClock(r.EndTime)
		if err != nil {
			return nil, nil, perr.Internalf("agenda %s: %v", r.ID, err)
		}
		items = append(items, calendar.Item{ID: r.ID, Name: r.Name, Date: r.Date, Start: start, End: end})
		byID[r.ID] = r
	}
	return items, byID, nil
}

func fromInput(in domain.AgendaInput) (repo.RowAgenda, error) {
	date, err := time.Parse(time.RFC3339, in.Date)
	if err != nil {
		return repo.RowAgenda{}, perr.InvalidArgf("date %q is not RFC 3339", in.Date)
	}
	return repo.RowAgenda{
		Name:       in.Name,
		Date:       date,
		StartTime:  in.StartTime,
		EndTime:    in.EndTime,
		Location:   in.Location,
		CategoryID: pstrings.Ptr(in.Category),
	}, nil
}

func toView(r repo.RowAgenda) domain.Agenda {
	return domain.Agenda{
		ID:        r.ID,
		Name:      r.Name,
		Date:      r.Date.Format(time.RFC3339),
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Location:  r.Location,
		Category:  pstrings.Deref(r.CategoryID),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
