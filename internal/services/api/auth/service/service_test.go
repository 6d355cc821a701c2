package service

import (
	"context"
	"testing"
	"time"

	"daydash/internal/modkit/repokit"
	perr "daydash/internal/platform/errors"
	"daydash/internal/services/api/auth/domain"
	"daydash/internal/services/api/auth/repo"

	"golang.org/x/crypto/bcrypt"
)

type fakeRepo struct {
	user     repo.RowUser
	userErr  error
	lastHash string

	consumeUID string
	consumeErr error

	verified bool
}

func (f *fakeRepo) CreateUser(ctx context.Context, name, username, email, passwordHash string) (repo.RowUser, error) {
	f.lastHash = passwordHash
	return repo.RowUser{ID: "u1", Name: name, Username: username, Email: email, PasswordHash: passwordHash}, f.userErr
}

func (f *fakeRepo) UserByEmail(ctx context.Context, email string) (repo.RowUser, error) {
	return f.user, f.userErr
}

func (f *fakeRepo) UserByID(ctx context.Context, id string) (repo.RowUser, error) {
	return f.user, f.userErr
}

func (f *fakeRepo) UpdateProfile(ctx context.Context, id, name, username string) (repo.RowUser, error) {
	return f.user, f.userErr
}

func (f *fakeRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	f.lastHash = passwordHash
	return nil
}

func (f *fakeRepo) SetVerified(ctx context.Context, id string) error {
	f.verified = true
	return nil
}

func (f *fakeRepo) SetPicture(ctx context.Context, id, path string) (repo.RowUser, error) {
	return f.user, f.userErr
}

func (f *fakeRepo) InsertToken(ctx context.Context, userID, purpose, token string, expiresAt time.Time) error {
	return nil
}

func (f *fakeRepo) ConsumeToken(ctx context.Context, token, purpose string) (string, error) {
	return f.consumeUID, f.consumeErr
}

// fakeDB satisfies repokit.TxRunner; Tx just runs fn with a nil queryer
// since the fake binder ignores it
type fakeDB struct{}

func (fakeDB) Exec(ctx context.Context, sql string, args ...any) (repokit.CommandTag, error) {
	return nil, nil
}

func (fakeDB) Query(ctx context.Context, sql string, args ...any) (repokit.Rows, error) {
	return nil, nil
}

func (fakeDB) QueryRow(ctx context.Context, sql string, args ...any) repokit.Row { return nil }

func (fakeDB) Tx(ctx context.Context, fn func(q repokit.Queryer) error) error { return fn(nil) }

type fakeBinder struct{ r repo.Repo }

func (b fakeBinder) Bind(repokit.Queryer) repo.Repo { return b.r }

type fakeMailer struct {
	verifies int
	resets   int
}

func (m *fakeMailer) SendVerification(ctx context.Context, email, token string) error {
	m.verifies++
	return nil
}

func (m *fakeMailer) SendPasswordReset(ctx context.Context, email, token string) error {
	m.resets++
	return nil
}

func authSvc(f *fakeRepo, m *fakeMailer) *Svc {
	s := New(fakeDB{}, fakeBinder{r: f}, Config{JWTSecret: "test-secret"}, m)
	s.now = func() time.Time { return time.Date(2026, 1, 7, 12, 0, 0, 0, time.UTC) }
	return s
}

func hashOf(t *testing.T, pw string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return string(h)
}

func TestRegisterHashesPassword(t *testing.T) {
	f := &fakeRepo{}
	s := authSvc(f, &fakeMailer{})

	_, err := s.Register(context.Background(), domain.RegisterInput{
		Name: "Ada", Username: "ada", Email: "ada@example.com", Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if f.lastHash == "hunter22" || f.lastHash == "" {
		t.Fatalf("password stored unhashed: %q", f.lastHash)
	}
	if bcrypt.CompareHashAndPassword([]byte(f.lastHash), []byte("hunter22")) != nil {
		t.Fatalf("stored hash does not match password")
	}
}

func TestLoginRoundtrip(t *testing.T) {
	f := &fakeRepo{user: repo.RowUser{ID: "u1", Email: "ada@example.com", PasswordHash: hashOf(t, "hunter22")}}
	s := authSvc(f, &fakeMailer{})

	out, err := s.Login(context.Background(), domain.LoginInput{Email: "ada@example.com", Password: "hunter22"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	uid, err := s.VerifyToken(out.Token)
	if err != nil || uid != "u1" {
		t.Fatalf("minted token did not verify: %q %v", uid, err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	f := &fakeRepo{user: repo.RowUser{ID: "u1", PasswordHash: hashOf(t, "hunter22")}}
	s := authSvc(f, &fakeMailer{})

	_, err := s.Login(context.Background(), domain.LoginInput{Email: "ada@example.com", Password: "nope"})
	if !perr.IsCode(err, perr.ErrorCodeUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestLoginUnknownEmailIsUnauthorized(t *testing.T) {
	f := &fakeRepo{userErr: perr.NotFoundf("no such user")}
	s := authSvc(f, &fakeMailer{})

	// not found must not leak; same answer as a wrong password
	_, err := s.Login(context.Background(), domain.LoginInput{Email: "ghost@example.com", Password: "x"})
	if !perr.IsCode(err, perr.ErrorCodeUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestChangePasswordChecksOld(t *testing.T) {
	f := &fakeRepo{user: repo.RowUser{ID: "u1", PasswordHash: hashOf(t, "old-pass")}}
	s := authSvc(f, &fakeMailer{})

	err := s.ChangePassword(context.Background(), "u1", domain.ChangePasswordInput{
		OldPassword: "wrong", NewPassword: "new-pass",
	})
	if !perr.IsCode(err, perr.ErrorCodeUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}

	err = s.ChangePassword(context.Background(), "u1", domain.ChangePasswordInput{
		OldPassword: "old-pass", NewPassword: "new-pass",
	})
	if err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(f.lastHash), []byte("new-pass")) != nil {
		t.Fatalf("new password not installed")
	}
}

func TestRequestVerifyUnknownEmailStaysSilent(t *testing.T) {
	f := &fakeRepo{userErr: perr.NotFoundf("no such user")}
	m := &fakeMailer{}
	s := authSvc(f, m)

	if err := s.RequestVerify(context.Background(), domain.VerifyRequestInput{Email: "ghost@example.com"}); err != nil {
		t.Fatalf("RequestVerify should not leak unknown emails: %v", err)
	}
	if m.verifies != 0 {
		t.Fatalf("mailer should not fire for unknown email")
	}
}

func TestRequestVerifySendsMail(t *testing.T) {
	f := &fakeRepo{user: repo.RowUser{ID: "u1", Email: "ada@example.com"}}
	m := &fakeMailer{}
	s := authSvc(f, m)

	if err := s.RequestVerify(context.Background(), domain.VerifyRequestInput{Email: "ada@example.com"}); err != nil {
		t.Fatalf("RequestVerify: %v", err)
	}
	if m.verifies != 1 {
		t.Fatalf("expected one verification mail, got %d", m.verifies)
	}
}

func TestConfirmVerify(t *testing.T) {
	f := &fakeRepo{consumeUID: "u1"}
	s := authSvc(f, &fakeMailer{})

	if err := s.ConfirmVerify(context.Background(), "tok"); err != nil {
		t.Fatalf("ConfirmVerify: %v", err)
	}
	if !f.verified {
		t.Fatalf("account not marked verified")
	}
}

func TestConfirmVerifyInvalidToken(t *testing.T) {
	f := &fakeRepo{consumeErr: perr.NotFoundf("token gone")}
	s := authSvc(f, &fakeMailer{})

	err := s.ConfirmVerify(context.Background(), "tok")
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestResetPasswordInstallsNewHash(t *testing.T) {
	f := &fakeRepo{consumeUID: "u1"}
	s := authSvc(f, &fakeMailer{})

	err := s.ResetPassword(context.Background(), "tok", domain.ResetPasswordInput{Password: "fresh-pass"})
	if err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(f.lastHash), []byte("fresh-pass")) != nil {
		t.Fatalf("reset password not installed")
	}
}
