// Package repo provides postgres access for todos
package repo

import (
	"context"

	"daydash/internal/modkit/repokit"
	perr "daydash/internal/platform/errors"
	"daydash/internal/platform/store"
	pstrings "daydash/internal/platform/strings"
)

// Repo defines the repository contract for todos
type Repo interface {
	List(ctx context.Context, userID string) ([]RowTodo, error)
	Create(ctx context.Context, userID string, in RowTodo) (RowTodo, error)
	Get(ctx context.Context, userID, id string) (RowTodo, error)
	Update(ctx context.Context, userID, id string, in RowTodo) (RowTodo, error)
	Delete(ctx context.Context, userID, id string) error
}

// RowTodo is a todo row from the database
type RowTodo struct {
	ID          string
	Name        string
	Description string
	CategoryID  *string
	Status      string
	DueDate     *string
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

const cols = `id::text, name, coalesce(description, ''), category_id::text, status,
due_date::text, created_at::text, updated_at::text`

func scanRow(r repokit.Row) (RowTodo, error) {
	var t RowTodo
	err := r.Scan(&t.ID, &t.Name, &t.Description, &t.CategoryID, &t.Status, &t.DueDate, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (r *queries) List(ctx context.Context, userID string) ([]RowTodo, error) {
	const sql = `select ` + cols + ` from todos where user_id = $1 order by created_at asc`
	out, err := store.Many(ctx, r.q, scanRow, sql, userID)
	if err != nil {
		return nil, perr.FromPostgres(err, "list todos")
	}
	return out, nil
}

func (r *queries) Create(ctx context.Context, userID string, in RowTodo) (RowTodo, error) {
	const sql = `
insert into todos (user_id, name, description, category_id, status, due_date)
values ($1, $2, $3, $4, $5, $6::timestamptz)
returning ` + cols
	t, err := scanRow(r.q.QueryRow(ctx, sql,
		userID, in.Name, in.Description, pstrings.SQLNullPtr(in.CategoryID), in.Status, pstrings.SQLNullPtr(in.DueDate)))
	if err != nil {
		return RowTodo{}, perr.FromPostgresWithField(err, "create todo")
	}
	return t, nil
}

func (r *queries) Get(ctx context.Context, userID, id string) (RowTodo, error) {
	const sql = `select ` + cols + ` from todos where user_id = $1 and id = $2`
	t, err := scanRow(r.q.QueryRow(ctx, sql, userID, id))
	if err != nil {
		return RowTodo{}, perr.FromPostgres(err, "get todo")
	}
	return t, nil
}

func (r *queries) Update(ctx context.Context, userID, id string, in RowTodo) (RowTodo, error) {
	const sql = `
update todos
set name = $3, description = $4, category_id = $5, status = $6, due_date = $7::timestamptz, updated_at = now()
where user_id = $1 and id = $2
returning ` + cols
	t, err := scanRow(r.q.QueryRow(ctx, sql,
		userID, id, in.Name, in.Description, pstrings.SQLNullPtr(in.CategoryID), in.Status, pstrings.SQLNullPtr(in.DueDate)))
	if err != nil {
		return RowTodo{}, perr.FromPostgresWithField(err, "update todo")
	}
	return t, nil
}

func (r *queries) Delete(ctx context.Context, userID, id string) error {
	const sql = `delete from todos where user_id = $1 and id = $2`
	tag, err := r.q.Exec(ctx, sql, userID, id)
	if err != nil {
		return perr.FromPostgres(err, "delete todo")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("todo %s not found", id)
	}
	return nil
}
