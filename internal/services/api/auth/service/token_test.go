package service

import (
	"testing"
	"time"

	perr "daydash/internal/platform/errors"
)

func tokenSvc(now time.Time) *Svc {
	return &Svc{
		cfg: Config{JWTSecret: "test-secret", TokenTTL: 72 * time.Hour},
		now: func() time.Time { return now },
	}
}

func TestSignVerifyRoundtrip(t *testing.T) {
	now := time.Date(2026, 1, 7, 12, 0, 0, 0, time.UTC)
	s := tokenSvc(now)

	tok, err := s.signToken("user-1", now.Add(s.cfg.TokenTTL))
	if err != nil {
		t.Fatalf("signToken: %v", err)
	}
	uid, err := s.VerifyToken(tok)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if uid != "user-1" {
		t.Fatalf("VerifyToken subject = %q, want user-1", uid)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	now := time.Date(2026, 1, 7, 12, 0, 0, 0, time.UTC)
	s := tokenSvc(now)

	tok, err := s.signToken("user-1", now.Add(time.Hour))
	if err != nil {
		t.Fatalf("signToken: %v", err)
	}

	// move the clock past expiry
	s.now = func() time.Time { return now.Add(2 * time.Hour) }

	if _, err := s.VerifyToken(tok); !perr.IsCode(err, perr.ErrorCodeUnauthorized) {
		t.Fatalf("expected unauthorized for expired token, got %v", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	now := time.Date(2026, 1, 7, 12, 0, 0, 0, time.UTC)
	s := tokenSvc(now)

	tok, err := s.signToken("user-1", now.Add(time.Hour))
	if err != nil {
		t.Fatalf("signToken: %v", err)
	}

	other := tokenSvc(now)
	other.cfg.JWTSecret = "a-different-secret"

	if _, err := other.VerifyToken(tok); !perr.IsCode(err, perr.ErrorCodeUnauthorized) {
		t.Fatalf("expected unauthorized for wrong secret, got %v", err)
	}
}

func TestVerifyGarbage(t *testing.T) {
	s := tokenSvc(time.Now())
	if _, err := s.VerifyToken("not.a.jwt"); !perr.IsCode(err, perr.ErrorCodeUnauthorized) {
		t.Fatalf("expected unauthorized for garbage token, got %v", err)
	}
}
