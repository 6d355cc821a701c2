// Package service contains note workflows
package service

import (
	"context"

	"daydash/internal/modkit/repokit"
	pstrings "daydash/internal/platform/strings"
	"daydash/internal/services/api/notes/domain"
	"daydash/internal/services/api/notes/repo"
)

// Service defines the service contract for notes
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new notes service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("notes.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("notes.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// List returns all notes owned by the user, most recently edited first
func (s *Svc) List(ctx context.Context, userID string) ([]domain.Note, error) {
	rows, err := s.Repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Note, 0, len(rows))
	for _, r := range rows {
		out = append(out, toView(r))
	}
	return out, nil
}

// Create inserts a note for the user
func (s *Svc) Create(ctx context.Context, userID string, in domain.NoteInput) (domain.Note, error) {
	r, err := s.Repo.Create(ctx, userID, fromInput(in))
	if err != nil {
		return domain.Note{}, err
	}
	return toView(r), nil
}

// Get returns one note by id
func (s *Svc) Get(ctx context.Context, userID, id string) (domain.Note, error) {
	r, err := s.Repo.Get(ctx, userID, id)
	if err != nil {
		return domain.Note{}, err
	}
	return toView(r), nil
}

// Update replaces a note's fields
func (s *Svc) Update(ctx context.Context, userID, id string, in domain.NoteInput) (domain.Note, error) {
	r, err := s.Repo.Update(ctx, userID, id, fromInput(in))
	if err != nil {
		return domain.Note{}, err
	}
	return toView(r), nil
}

// Delete removes a note
func (s *Svc) Delete(ctx context.Context, userID, id string) error {
	return s.Repo.Delete(ctx, userID, id)
}

func fromInput(in domain.NoteInput) repo.RowNote {
	return repo.RowNote{
		Title:      in.Title,
		CategoryID: pstrings.Ptr(in.Category),
		Content:    in.Content,
	}
}

func toView(r repo.RowNote) domain.Note {
	return domain.Note{
		ID:        r.ID,
		Title:     r.Title,
		Category:  pstrings.Deref(r.CategoryID),
		Content:   r.Content,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
