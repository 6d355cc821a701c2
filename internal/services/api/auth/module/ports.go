package module

import (
	"daydash/internal/services/api/auth/domain"
)

// TokenVerifier is the cross-module surface other modules protect routes with
type TokenVerifier interface {
	VerifyToken(token string) (string, error)
}

// Ports are the auth module's cross wiring points.
// Mailer may be injected by the composition root; Verifier is exported for
// protecting entity routes
type Ports struct {
	Verifier TokenVerifier
	Mailer   domain.MailerPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
