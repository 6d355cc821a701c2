// Package repo provides postgres access for categories
package repo

import (
	"context"

	"daydash/internal/modkit/repokit"
	perr "daydash/internal/platform/errors"
	"daydash/internal/platform/store"
	pstrings "daydash/internal/platform/strings"
)

// Repo defines the repository contract for categories
type Repo interface {
	List(ctx context.Context, userID string) ([]RowCategory, error)
	Create(ctx context.Context, userID string, in RowCategory) (RowCategory, error)
	Get(ctx context.Context, userID, id string) (RowCategory, error)
	Update(ctx context.Context, userID, id string, in RowCategory) (RowCategory, error)
	Delete(ctx context.Context, userID, id string) error
}

// RowCategory is a category row from the database
type RowCategory struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Color       string
	CreatedAt   string
	UpdatedAt   string
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

const cols = `id::text, name, coalesce(description, ''), coalesce(icon, ''), coalesce(color, ''),
created_at::text, updated_at::text`

func scanRow(r repokit.Row) (RowCategory, error) {
	var c RowCategory
	err := r.Scan(&c.ID, &c.Name, &c.Description, &c.Icon, &c.Color, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *queries) List(ctx context.Context, userID string) ([]RowCategory, error) {
	const sql = `select ` + cols + ` from categories where user_id = $1 order by created_at asc`
	out, err := store.Many(ctx, r.q, scanRow, sql, userID)
	if err != nil {
		return nil, perr.FromPostgres(err, "list categories")
	}
	return out, nil
}

func (r *queries) Create(ctx context.Context, userID string, in RowCategory) (RowCategory, error) {
	const sql = `
insert into categories (user_id, name, description, icon, color)
values ($1, $2, $3, $4, $5)
returning ` + cols
	c, err := scanRow(r.q.QueryRow(ctx, sql, userID, in.Name,
		pstrings.SQLNull(in.Description), pstrings.SQLNull(in.Icon), pstrings.SQLNull(in.Color)))
	if err != nil {
		return RowCategory{}, perr.FromPostgresWithField(err, "create category")
	}
	return c, nil
}

func (r *queries) Get(ctx context.Context, userID, id string) (RowCategory, error) {
	const sql = `select ` + cols + ` from categories where user_id = $1 and id = $2`
	c, err := scanRow(r.q.QueryRow(ctx, sql, userID, id))
	if err != nil {
		return RowCategory{}, perr.FromPostgres(err, "get category")
	}
	return c, nil
}

func (r *queries) Update(ctx context.Context, userID, id string, in RowCategory) (RowCategory, error) {
	const sql = `
update categories
set name = $3, description = $4, icon = $5, color = $6, updated_at = now()
where user_id = $1 and id = $2
returning ` + cols
	c, err := scanRow(r.q.QueryRow(ctx, sql, userID, id, in.Name,
		pstrings.SQLNull(in.Description), pstrings.SQLNull(in.Icon), pstrings.SQLNull(in.Color)))
	if err != nil {
		return RowCategory{}, perr.FromPostgresWithField(err, "update category")
	}
	return c, nil
}

func (r *queries) Delete(ctx context.Context, userID, id string) error {
	const sql = `delete from categories where user_id = $1 and id = $2`
	tag, err := r.q.Exec(ctx, sql, userID, id)
	if err != nil {
		return perr.FromPostgres(err, "delete category")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("category %s not found", id)
	}
	return nil
}
