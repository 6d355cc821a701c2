// Package repo provides postgres access for notes
package repo

import (
	"context"

	"daydash/internal/modkit/repokit"
	perr "daydash/internal/platform/errors"
	"daydash/internal/platform/store"
	pstrings "daydash/internal/platform/strings"
)

// Repo defines the repository contract for notes
type Repo interface {
	List(ctx context.Context, userID string) ([]RowNote, error)
	Create(ctx context.Context, userID string, in RowNote) (RowNote, error)
	Get(ctx context.Context, userID, id string) (RowNote, error)
	Update(ctx context.Context, userID, id string, in RowNote) (RowNote, error)
	Delete(ctx context.Context, userID, id string) error
}

// RowNote is a note row from the database
type RowNote struct {
	ID         string
	Title      string
	CategoryID *string
	Content    string
	CreatedAt  string
	UpdatedAt  string
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

const cols = `id::text, title, category_id::text, coalesce(content, ''), created_at::text, updated_at::text`

func scanRow(r repokit.Row) (RowNote, error) {
	var n RowNote
	err := r.Scan(&n.ID, &n.Title, &n.CategoryID, &n.Content, &n.CreatedAt, &n.UpdatedAt)
	return n, err
}

func (r *queries) List(ctx context.Context, userID string) ([]RowNote, error) {
	const sql = `select ` + cols + ` from notes where user_id = $1 order by updated_at desc`
	out, err := store.Many(ctx, r.q, scanRow, sql, userID)
	if err != nil {
		return nil, perr.FromPostgres(err, "list notes")
	}
	return out, nil
}

func (r *queries) Create(ctx context.Context, userID string, in RowNote) (RowNote, error) {
	const sql = `
insert into notes (user_id, title, category_id, content)
values ($1, $2, $3, $4)
returning ` + cols
	n, err := scanRow(r.q.QueryRow(ctx, sql, userID, in.Title, pstrings.SQLNullPtr(in.CategoryID), in.Content))
	if err != nil {
		return RowNote{}, perr.FromPostgresWithField(err, "create note")
	}
	return n, nil
}

func (r *queries) Get(ctx context.Context, userID, id string) (RowNote, error) {
	const sql = `select ` + cols + ` from notes where user_id = $1 and id = $2`
	n, err := scanRow(r.q.QueryRow(ctx, sql, userID, id))
	if err != nil {
		return RowNote{}, perr.FromPostgres(err, "get note")
	}
	return n, nil
}

func (r *queries) Update(ctx context.Context, userID, id string, in RowNote) (RowNote, error) {
	const sql = `
update notes
set title = $3, category_id = $4, content = $5, updated_at = now()
where user_id = $1 and id = $2
returning ` + cols
	n, err := scanRow(r.q.QueryRow(ctx, sql, userID, id, in.Title, pstrings.SQLNullPtr(in.CategoryID), in.Content))
	if err != nil {
		return RowNote{}, perr.FromPostgresWithField(err, "update note")
	}
	return n, nil
}

func (r *queries) Delete(ctx context.Context, userID, id string) error {
	const sql = `delete from notes where user_id = $1 and id = $2`
	tag, err := r.q.Exec(ctx, sql, userID, id)
	if err != nil {
		return perr.FromPostgres(err, "delete note")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("note %s not found", id)
	}
	return nil
}
