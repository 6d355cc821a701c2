// Package repo provides postgres access for auth
package repo

import (
	"context"
	"time"

	"daydash/internal/modkit/repokit"
	perr "daydash/internal/platform/errors"
)

// Repo defines the repository contract for users and one-shot auth tokens
type Repo interface {
	CreateUser(ctx context.Context, name, username, email, passwordHash string) (RowUser, error)
	UserByEmail(ctx context.Context, email string) (RowUser, error)
	UserByID(ctx context.Context, id string) (RowUser, error)
	UpdateProfile(ctx context.Context, id, name, username string) (RowUser, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	SetVerified(ctx context.Context, id string) error
	SetPicture(ctx context.Context, id, path string) (RowUser, error)

	InsertToken(ctx context.Context, userID, purpose, token string, expiresAt time.Time) error
	// ConsumeToken marks an unused, unexpired token used and returns its user id
	ConsumeToken(ctx context.Context, token, purpose string) (string, error)
}

// RowUser is a user row from the database
type RowUser struct {
	ID           string
	Name         string
	Username     string
	Email        string
	PasswordHash string
	Verified     bool
	PicturePath  *string
	CreatedAt    string
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

const userCols = `id::text, name, username, email, password_hash, verified, picture_path, created_at::text`

func scanUser(r repokit.Row) (RowUser, error) {
	var u RowUser
	err := r.Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.PasswordHash, &u.Verified, &u.PicturePath, &u.CreatedAt)
	return u, err
}

func (r *queries) CreateUser(ctx context.Context, name, username, email, passwordHash string) (RowUser, error) {
	const sql = `
insert into users (name, username, email, password_hash)
values ($1, $2, $3, $4)
returning ` + userCols
	u, err := scanUser(r.q.QueryRow(ctx, sql, name, username, email, passwordHash))
	if err != nil {
		return RowUser{}, perr.FromPostgresWithField(err, "create user")
	}
	return u, nil
}

func (r *queries) UserByEmail(ctx context.Context, email string) (RowUser, error) {
	const sql = `select ` + userCols + ` from users where email = $1`
	u, err := scanUser(r.q.QueryRow(ctx, sql, email))
	if err != nil {
		return RowUser{}, perr.FromPostgres(err, "user by email")
	}
	return u, nil
}

func (r *queries) UserByID(ctx context.Context, id string) (RowUser, error) {
	const sql = `select ` + userCols + ` from users where id = $1`
	u, err := scanUser(r.q.QueryRow(ctx, sql, id))
	if err != nil {
		return RowUser{}, perr.FromPostgres(err, "user by id")
	}
	return u, nil
}

func (r *queries) UpdateProfile(ctx context.Context, id, name, username string) (RowUser, error) {
	const sql = `
update users set name = $2, username = $3, updated_at = now()
where id = $1
returning ` + userCols
	u, err := scanUser(r.q.QueryRow(ctx, sql, id, name, username))
	if err != nil {
		return RowUser{}, perr.FromPostgresWithField(err, "update profile")
	}
	return u, nil
}

func (r *queries) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	const sql = `update users set password_hash = $2, updated_at = now() where id = $1`
	_, err := r.q.Exec(ctx, sql, id, passwordHash)
	return perr.WrapIf(err, perr.ErrorCodeDB, "update password")
}

func (r *queries) SetVerified(ctx context.Context, id string) error {
	const sql = `update users set verified = true, updated_at = now() where id = $1`
	_, err := r.q.Exec(ctx, sql, id)
	return perr.WrapIf(err, perr.ErrorCodeDB, "set verified")
}

func (r *queries) SetPicture(ctx context.Context, id, path string) (RowUser, error) {
	const sql = `
update users set picture_path = $2, updated_at = now()
where id = $1
returning ` + userCols
	u, err := scanUser(r.q.QueryRow(ctx, sql, id, path))
	if err != nil {
		return RowUser{}, perr.FromPostgres(err, "set picture")
	}
	return u, nil
}

func (r *queries) InsertToken(ctx context.Context, userID, purpose, token string, expiresAt time.Time) error {
	const sql = `
insert into auth_tokens (user_id, purpose, token, expires_at)
values ($1, $2, $3, $4)`
	_, err := r.q.Exec(ctx, sql, userID, purpose, token, expiresAt)
	return perr.WrapIf(err, perr.ErrorCodeDB, "insert token")
}

func (r *queries) ConsumeToken(ctx context.Context, token, purpose string) (string, error) {
	const sql = `
update auth_tokens set used_at = now()
where token = $1 and purpose = $2 and used_at is null and expires_at > now()
returning user_id::text`
	var userID string
	if err := r.q.QueryRow(ctx, sql, token, purpose).Scan(&userID); err != nil {
		return "", perr.FromPostgres(err, "consume token")
	}
	return userID, nil
}
