// Package repo provides postgres access for weekly schedules
package repo

import (
	"context"

	"daydash/internal/modkit/repokit"
	perr "daydash/internal/platform/errors"
	"daydash/internal/platform/store"
	pstrings "daydash/internal/platform/strings"
)

// Repo defines the repository contract for schedules
type Repo interface {
	List(ctx context.Context, userID string) ([]RowSchedule, error)
	Create(ctx context.Context, userID string, in RowSchedule) (RowSchedule, error)
	Get(ctx context.Context, userID, id string) (RowSchedule, error)
	Update(ctx context.Context, userID, id string, in RowSchedule) (RowSchedule, error)
	Delete(ctx context.Context, userID, id string) error
}

// RowSchedule is a schedule row from the database
type RowSchedule struct {
	ID         string
	Name       string
	Day        string
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

const cols = `id::text, name, day, start_time, end_time, coalesce(location, ''),
category_id::text, created_at::text, updated_at::text`

func scanRow(r repokit.Row) (RowSchedule, error) {
	var s RowSchedule
	err := r.Scan(&s.ID, &s.Name, &s.Day, &s.StartTime, &s.EndTime, &s.Location,
		&s.CategoryID, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

func (r *queries) List(ctx context.Context, userID string) ([]RowSchedule, error) {
	const sql = `select ` + cols + ` from schedules where user_id = $1 order by created_at asc`
	out, err := store.Many(ctx, r.q, scanRow, sql, userID)
	if err != nil {
		return nil, perr.FromPostgres(err, "list schedules")
	}
	return out, nil
}

func (r *queries) Create(ctx context.Context, userID string, in RowSchedule) (RowSchedule, error) {
	const sql = `
insert into schedules (user_id, name, day, start_time, end_time, location, category_id)
values ($1, $2, $3, $4, $5, $6, $7)
returning ` + cols
	s, err := scanRow(r.q.QueryRow(ctx, sql,
		userID, in.Name, in.Day, in.StartTime, in.EndTime, in.Location, pstrings.SQLNullPtr(in.CategoryID)))
	if err != nil {
		return RowSchedule{}, perr.FromPostgresWithField(err, "create schedule")
	}
	return s, nil
}

func (r *queries) Get(ctx context.Context, userID, id string) (RowSchedule, error) {
	const sql = `select ` + cols + ` from schedules where user_id = $1 and id = $2`
	s, err := scanRow(r.q.QueryRow(ctx, sql, userID, id))
	if err != nil {
		return RowSchedule{}, perr.FromPostgres(err, "get schedule")
	}
	return s, nil
}

func (r *queries) Update(ctx context.Context, userID, id string, in RowSchedule) (RowSchedule, error) {
	const sql = `
update schedules
set name = $3, day = $4, start_time = $5, end_time = $6, location = $7, category_id = $8, updated_at = now()
where user_id = $1 and id = $2
returning ` + cols
	s, err := scanRow(r.q.QueryRow(ctx, sql,
		userID, id, in.Name, in.Day, in.StartTime, in.EndTime, in.Location, pstrings.SQLNullPtr(in.CategoryID)))
	if err != nil {
		return RowSchedule{}, perr.FromPostgresWithField(err, "update schedule")
	}
	return s, nil
}

func (r *queries) Delete(ctx context.Context, userID, id string) error {
	const sql = `delete from schedules where user_id = $1 and id = $2`
	tag, err := r.q.Exec(ctx, sql, userID, id)
	if err != nil {
		return perr.FromPostgres(err, "delete schedule")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("schedule %s not found", id)
	}
	return nil
}
