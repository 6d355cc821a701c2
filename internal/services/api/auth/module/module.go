// Package module wires auth into the API using modkit
package module

import (
	"net/http"
	"time"

	modkit "daydash/internal/modkit"
	"daydash/internal/modkit/httpkit"
	str "daydash/internal/platform/strings"
	"daydash/internal/services/api/auth/domain"
	authhttp "daydash/internal/services/api/auth/http"
	authrepo "daydash/internal/services/api/auth/repo"
	authsvc "daydash/internal/services/api/auth/service"
)

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc authsvc.Service
}

// New constructs an auth module with the provided dependencies and options.
// Reads AUTH_JWT_SECRET (required), AUTH_TOKEN_TTL, AUTH_UPLOAD_DIR from config
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("auth"), modkit.WithPrefix("/auth")}, opts...)...)

	var mailer domain.MailerPort
	if p, ok := b.Ports.(Ports); ok {
		mailer = p.Mailer
	}

	repo := authrepo.NewPG()
	svc := authsvc.New(deps.PG, repo, authsvc.Config{
		JWTSecret: deps.Cfg.MustString("AUTH_JWT_SECRET"),
		TokenTTL:  deps.Cfg.MayDuration("AUTH_TOKEN_TTL", 72*time.Hour),
		UploadDir: deps.Cfg.MayString("AUTH_UPLOAD_DIR", "uploads"),
	}, mailer)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Verifier: svc, Mailer: mailer}

	port := httpkit.NewPortFunc(svc.VerifyToken)
	external := b.Register
	m.register = func(r httpkit.Router) {
		authhttp.Register(r, m.svc, port)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
