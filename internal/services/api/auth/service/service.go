// Package service contains auth workflows
package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"daydash/internal/modkit/repokit"
	perr "daydash/internal/platform/errors"
	"daydash/internal/platform/logger"
	pstrings "daydash/internal/platform/strings"
	"daydash/internal/services/api/auth/domain"
	"daydash/internal/services/api/auth/repo"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Config carries the auth knobs read from env in the module
type Config struct {
	JWTSecret string
	TokenTTL  time.Duration
	UploadDir string
}

// Service defines the service contract for auth
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	cfg    Config
	mailer domain.MailerPort

	// now is a seam for clock-sensitive tests
	now func() time.Time
}

const (
	purposeVerify = "verify"
	purposeReset  = "reset"

	verifyTokenTTL = 24 * time.Hour
	resetTokenTTL  = time.Hour
)

// New creates a new auth service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], cfg Config, mailer domain.MailerPort) *Svc {
	if db == nil {
		panic("auth.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("auth.Service requires a non nil Repo binder")
	}
	if strings.TrimSpace(cfg.JWTSecret) == "" {
		panic("auth.Service requires a JWT secret")
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 72 * time.Hour
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "uploads"
	}
	if mailer == nil {
		mailer = logMailer{}
	}
	return &Svc{
		Repo:   binder.Bind(db),
		binder: binder,
		db:     db,
		cfg:    cfg,
		mailer: mailer,
		now:    time.Now,
	}
}

// Register creates a user with a bcrypt password hash
func (s *Svc) Register(ctx context.Context, in domain.RegisterInput) (domain.Profile, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Profile{}, perr.Wrap(err, perr.ErrorCodeUnknown, "hash password")
	}
	u, err := s.Repo.CreateUser(ctx, in.Name, in.Username, in.Email, string(hash))
	if err != nil {
		return domain.Profile{}, err
	}
	return toProfile(u), nil
}

// Login checks credentials and returns a signed bearer token
func (s *Svc) Login(ctx context.Context, in domain.LoginInput) (domain.TokenResponse, error) {
	u, err := s.Repo.UserByEmail(ctx, in.Email)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return domain.TokenResponse{}, perr.Unauthorizedf("invalid credentials")
		}
		return domain.TokenResponse{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)) != nil {
		return domain.TokenResponse{}, perr.Unauthorizedf("invalid credentials")
	}
	exp := s.now().Add(s.cfg.TokenTTL)
	tok, err := s.signToken(u.ID, exp)
	if err != nil {
		return domain.TokenResponse{}, err
	}
	return domain.TokenResponse{Token: tok, ExpiresAt: exp.UTC().Format(time.RFC3339)}, nil
}

// Profile returns the owner's account view
func (s *Svc) Profile(ctx context.Context, userID string) (domain.Profile, error) {
	u, err := s.Repo.UserByID(ctx, userID)
	if err != nil {
		return domain.Profile{}, err
	}
	return toProfile(u), nil
}

// UpdateProfile edits name and username
func (s *Svc) UpdateProfile(ctx context.Context, userID string, in domain.UpdateProfileInput) (domain.Profile, error) {
	u, err := s.Repo.UpdateProfile(ctx, userID, in.Name, in.Username)
	if err != nil {
		return domain.Profile{}, err
	}
	return toProfile(u), nil
}

// ChangePassword rotates the password after checking the old one
func (s *Svc) ChangePassword(ctx context.Context, userID string, in domain.ChangePasswordInput) error {
	u, err := s.Repo.UserByID(ctx, userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.OldPassword)) != nil {
		return perr.WithField(perr.Unauthorizedf("old password does not match"), "old_password")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "hash password")
	}
	return s.Repo.UpdatePassword(ctx, userID, string(hash))
}

// RequestVerify issues a verification token and hands it to the mailer.
// Unknown emails return success so the endpoint cannot be used to probe accounts
func (s *Svc) RequestVerify(ctx context.Context, in domain.VerifyRequestInput) error {
	u, err := s.Repo.UserByEmail(ctx, in.Email)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return nil
		}
		return err
	}
	token := uuid.NewString()
	if err := s.Repo.InsertToken(ctx, u.ID, purposeVerify, token, s.now().Add(verifyTokenTTL)); err != nil {
		return err
	}
	return s.mailer.SendVerification(ctx, u.Email, token)
}

// ConfirmVerify consumes a verification token and marks the account verified
func (s *Svc) ConfirmVerify(ctx context.Context, token string) error {
	return s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		userID, err := r.ConsumeToken(ctx, token, purposeVerify)
		if err != nil {
			if perr.IsCode(err, perr.ErrorCodeNotFound) {
				return perr.InvalidArgf("verification token is invalid or expired")
			}
			return err
		}
		return r.SetVerified(ctx, userID)
	})
}

// ResetPassword consumes a reset token and installs the new password
func (s *Svc) ResetPassword(ctx context.Context, token string, in domain.ResetPasswordInput) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "hash password")
	}
	return s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		userID, err := r.ConsumeToken(ctx, token, purposeReset)
		if err != nil {
			if perr.IsCode(err, perr.ErrorCodeNotFound) {
				return perr.InvalidArgf("reset token is invalid or expired")
			}
			return err
		}
		return r.UpdatePassword(ctx, userID, string(hash))
	})
}

// SetProfilePicture stores the upload on disk and records the path
func (s *Svc) SetProfilePicture(ctx context.Context, userID, filename string, data []byte) (domain.Profile, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
	default:
		return domain.Profile{}, perr.WithField(perr.InvalidArgf("unsupported image type %q", ext), "picture")
	}
	if err := os.MkdirAll(s.cfg.UploadDir, 0o755); err != nil {
		return domain.Profile{}, perr.Wrap(err, perr.ErrorCodeUnknown, "create upload dir")
	}
	name := uuid.NewString() + ext
	path := filepath.Join(s.cfg.UploadDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return domain.Profile{}, perr.Wrap(err, perr.ErrorCodeUnknown, "store upload")
	}
	u, err := s.Repo.SetPicture(ctx, userID, path)
	if err != nil {
		// best effort cleanup of the orphaned file
		_ = os.Remove(path)
		return domain.Profile{}, err
	}
	return toProfile(u), nil
}

func toProfile(u repo.RowUser) domain.Profile {
	return domain.Profile{
		ID:          u.ID,
		Name:        u.Name,
		Username:    u.Username,
		Email:       u.Email,
		Verified:    u.Verified,
		PicturePath: pstrings.Deref(u.PicturePath),
		CreatedAt:   u.CreatedAt,
	}
}

// logMailer is the default MailerPort: it logs instead of sending.
// Good enough for local development where no SMTP relay exists
type logMailer struct{}

func (logMailer) SendVerification(ctx context.Context, email, token string) error {
	logger.C(ctx).Info().Str("email", email).Str("token", token).Msg("verification mail (log only)")
	return nil
}

func (logMailer) SendPasswordReset(ctx context.Context, email, token string) error {
	logger.C(ctx).Info().Str("email", email).Str("token", token).Msg("password reset mail (log only)")
	return nil
}
