// Package service contains category workflows
package service

import (
	"context"

	"daydash/internal/modkit/repokit"
	"daydash/internal/services/api/categories/domain"
	"daydash/internal/services/api/categories/repo"
)

// Service defines the service contract for categories
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new categories service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("categories.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("categories.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// List returns all categories owned by the user
func (s *Svc) List(ctx context.Context, userID string) ([]domain.Category, error) {
	rows, err := s.Repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Category, 0, len(rows))
	for _, r := range rows {
		out = append(out, toView(r))
	}
	return out, nil
}

// Create inserts a category for the user
func (s *Svc) Create(ctx context.Context, userID string, in domain.CategoryInput) (domain.Category, error) {
	r, err := s.Repo.Create(ctx, userID, fromInput(in))
	if err != nil {
		return domain.Category{}, err
	}
	return toView(r), nil
}

// Get returns one category by id
func (s *Svc) Get(ctx context.Context, userID, id string) (domain.Category, error) {
	r, err := s.Repo.Get(ctx, userID, id)
	if err != nil {
		return domain.Category{}, err
	}
	return toView(r), nil
}

// Update replaces a category's fields
func (s *Svc) Update(ctx context.Context, userID, id string, in domain.CategoryInput) (domain.Category, error) {
	r, err := s.Repo.Update(ctx, userID, id, fromInput(in))
	if err != nil {
		return domain.Category{}, err
	}
	return toView(r), nil
}

// Delete removes a category; referencing rows keep living with a null category
func (s *Svc) Delete(ctx context.Context, userID, id string) error {
	return s.Repo.Delete(ctx, userID, id)
}

func fromInput(in domain.CategoryInput) repo.RowCategory {
	return repo.RowCategory{
		Name:        in.Name,
		Description: in.Description,
		Icon:        in.Icon,
		Color:       in.Color,
	}
}

func toView(r repo.RowCategory) domain.Category {
	return domain.Category{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Icon:        r.Icon,
		Color:       r.Color,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
