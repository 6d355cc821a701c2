package service

import (
	"context"
	"testing"

	perr "daydash/internal/platform/errors"
	"daydash/internal/services/api/todos/domain"
	"daydash/internal/services/api/todos/repo"
)

type fakeRepo struct {
	rows []repo.RowTodo
	last repo.RowTodo
	err  error
}

func (f *fakeRepo) List(ctx context.Context, userID string) ([]repo.RowTodo, error) {
	return f.rows, f.err
}

func (f *fakeRepo) Create(ctx context.Context, userID string, in repo.RowTodo) (repo.RowTodo, error) {
	f.last = in
	in.ID = "t1"
	return in, f.err
}

func (f *fakeRepo) Get(ctx context.Context, userID, id string) (repo.RowTodo, error) {
	if f.err != nil {
		return repo.RowTodo{}, f.err
	}
	return f.rows[0], nil
}

func (f *fakeRepo) Update(ctx context.Context, userID, id string, in repo.RowTodo) (repo.RowTodo, error) {
	f.last = in
	in.ID = id
	return in, f.err
}

func (f *fakeRepo) Delete(ctx context.Context, userID, id string) error { return f.err }

func TestCreateMapsEmptyOptionalsToNull(t *testing.T) {
	f := &fakeRepo{}
	s := &Svc{Repo: f}

	got, err := s.Create(context.Background(), "u1", domain.TodoInput{
		Name:   "Hand in report",
		Status: domain.StatusOngoing,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if f.last.CategoryID != nil || f.last.DueDate != nil {
		t.Fatalf("empty optionals should store as nil: %+v", f.last)
	}
	if got.ID != "t1" || got.Category != "" || got.DueDate != "" {
		t.Fatalf("view mismatch: %+v", got)
	}
}

func TestCreateKeepsOptionals(t *testing.T) {
	f := &fakeRepo{}
	s := &Svc{Repo: f}

	_, err := s.Create(context.Background(), "u1", domain.TodoInput{
		Name:     "Lab",
		Status:   domain.StatusNotStarted,
		Category: "6c1f6f1e-0000-4000-8000-000000000000",
		DueDate:  "2026-09-01T17:00:00Z",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if f.last.CategoryID == nil || *f.last.CategoryID == "" {
		t.Fatalf("category dropped: %+v", f.last)
	}
	if f.last.DueDate == nil || *f.last.DueDate != "2026-09-01T17:00:00Z" {
		t.Fatalf("due date dropped: %+v", f.last)
	}
}

func TestListMapsRows(t *testing.T) {
	cat := "c1"
	f := &fakeRepo{rows: []repo.RowTodo{
		{ID: "t1", Name: "a", Status: domain.StatusDone, CategoryID: &cat},
		{ID: "t2", Name: "b", Status: domain.StatusOngoing},
	}}
	s := &Svc{Repo: f}

	out, err := s.List(context.Background(), "u1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out) != 2 || out[0].Category != "c1" || out[1].Category != "" {
		t.Fatalf("view mapping mismatch: %+v", out)
	}
}

func TestErrorsPassThrough(t *testing.T) {
	f := &fakeRepo{err: perr.NotFoundf("todo x not found")}
	s := &Svc{Repo: f}

	if _, err := s.Get(context.Background(), "u1", "x"); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := s.Delete(context.Background(), "u1", "x"); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
