// Package repo provides postgres access for agenda items
package repo

import (
	"context"
	"time"

	"daydash/internal/modkit/repokit"
	perr "daydash/internal/platform/errors"
	"daydash/internal/platform/store"
	pstrings "daydash/internal/platform/strings"
)

// Repo defines the repository contract for agenda items
type Repo interface {
	List(ctx context.Context, userID string) ([]RowAgenda, error)
	Create(ctx context.Context, userID string, in RowAgenda) (RowAgenda, error)
	Get(ctx context.Context, userID, id string) (RowAgenda, error)
	Update(ctx context.Context, userID, id string, in RowAgenda) (RowAgenda, error)
	Delete(ctx context.Context, userID, id string) error
}

// RowAgenda is an agenda row from the database. Date is scanned as an
// instant so the calendar can compare it exactly as stored
type RowAgenda struct {
	ID         string
	Name       string
	Date       time.Time
	StartTime  string
	EndTime    string
	Location   string
	CategoryID *string
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

const cols = `id::text, name, date, start_time, end_time, coalesce(location, ''),
category_id::text, created_at::text, updated_at::text`

func scanRow(r repokit.Row) (RowAgenda, error) {
	var a RowAgenda
	err := r.Scan(&a.ID, &a.Name, &a.Date, &a.StartTime, &a.EndTime, &a.Location,
		&a.CategoryID, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func (r *queries) List(ctx context.Context, userID string) ([]RowAgenda, error) {
	const sql = `select ` + cols + ` from agendas where user_id = $1 order by date asc, start_time asc`
	out, err := store.Many(ctx, r.q, scanRow, sql, userID)
	if err != nil {
		return nil, perr.FromPostgres(err, "list agenda")
	}
	return out, nil
}

func (r *queries) Create(ctx context.Context, userID string, in RowAgenda) (RowAgenda, error) {
	const sql = `
insert into agendas (user_id, name, date, start_time, end_time, location, category_id)
values ($1, $2, $3, $4, $5, $6, $7)
returning ` + cols
	a, err := scanRow(r.q.QueryRow(ctx, sql,
		userID, in.Name, in.Date, in.StartTime, in.EndTime, in.Location, pstrings.SQLNullPtr(in.CategoryID)))
	if err != nil {
		return RowAgenda{}, perr.FromPostgresWithField(err, "create agenda item")
	}
	return a, nil
}

func (r *queries) Get(ctx context.Context, userID, id string) (RowAgenda, error) {
	const sql = `select ` + cols + ` from agendas where user_id = $1 and id = $2`
	a, err := scanRow(r.q.QueryRow(ctx, sql, userID, id))
	if err != nil {
		return RowAgenda{}, perr.FromPostgres(err, "get agenda item")
	}
	return a, nil
}

func (r *queries) Update(ctx context.Context, userID, id string, in RowAgenda) (RowAgenda, error) {
	const sql = `
update agendas
set name = $3, date = $4, start_time = $5, end_time = $6, location = $7, category_id = $8, updated_at = now()
where user_id = $1 and id = $2
returning ` + cols
	a, err := scanRow(r.q.QueryRow(ctx, sql,
		userID, id, in.Name, in.Date, in.StartTime, in.EndTime, in.Location, pstrings.SQLNullPtr(in.CategoryID)))
	if err != nil {
		return RowAgenda{}, perr.FromPostgresWithField(err, "update agenda item")
	}
	return a, nil
}

func (r *queries) Delete(ctx context.Context, userID, id string) error {
	const sql = `delete from agendas where user_id = $1 and id = $2`
	tag, err := r.q.Exec(ctx, sql, userID, id)
	if err != nil {
		return perr.FromPostgres(err, "delete agenda item")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("agenda item %s not found", id)
	}
	return nil
}
