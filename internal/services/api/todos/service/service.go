// Package service contains todo workflows
package service

import (
	"context"

	"daydash/internal/modkit/repokit"
	pstrings "daydash/internal/platform/strings"
	"daydash/internal/services/api/todos/domain"
	"daydash/internal/services/api/todos/repo"
)

// Service defines the service contract for todos
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new todos service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("todos.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("todos.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// List returns all todos owned by the user
func (s *Svc) List(ctx context.Context, userID string) ([]domain.Todo, error) {
	rows, err := s.Repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Todo, 0, len(rows))
	for _, r := range rows {
		out = append(out, toView(r))
	}
	return out, nil
}

// Create inserts a todo for the user
func (s *Svc) Create(ctx context.Context, userID string, in domain.TodoInput) (domain.Todo, error) {
	r, err := s.Repo.Create(ctx, userID, fromInput(in))
	if err != nil {
		return domain.Todo{}, err
	}
	return toView(r), nil
}

// Get returns one todo by id
func (s *Svc) Get(ctx context.Context, userID, id string) (domain.Todo, error) {
	r, err := s.Repo.Get(ctx, userID, id)
	if err != nil {
		return domain.Todo{}, err
	}
	return toView(r), nil
}

// Update replaces a todo's fields
func (s *Svc) Update(ctx context.Context, userID, id string, in domain.TodoInput) (domain.Todo, error) {
	r, err := s.Repo.Update(ctx, userID, id, fromInput(in))
	if err != nil {
		return domain.Todo{}, err
	}
	return toView(r), nil
}

// Delete removes a todo
func (s *Svc) Delete(ctx context.Context, userID, id string) error {
	return s.Repo.Delete(ctx, userID, id)
}

func fromInput(in domain.TodoInput) repo.RowTodo {
	return repo.RowTodo{
		Name:        in.Name,
		Description: in.Description,
		CategoryID:  pstrings.Ptr(in.Category),
		Status:      in.Status,
		DueDate:     pstrings.Ptr(in.DueDate),
	}
}

func toView(r repo.RowTodo) domain.Todo {
	return domain.Todo{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Category:    pstrings.Deref(r.CategoryID),
		Status:      r.Status,
		DueDate:     pstrings.Deref(r.DueDate),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
