// Package api provides the HTTP API for the application
package api

import (
	"daydash/internal/platform/config"
	"daydash/internal/platform/logger"
	phttp "daydash/internal/platform/net/http"
	"daydash/internal/platform/store"

	"daydash/internal/modkit"
	"daydash/internal/modkit/httpkit"
	"daydash/internal/modkit/module"
	"daydash/internal/modkit/swaggerkit"

	agendamod "daydash/internal/services/api/agenda/module"
	authmod "daydash/internal/services/api/auth/module"
	categoriesmod "daydash/internal/services/api/categories/module"
	metamod "daydash/internal/services/api/meta/module"
	notesmod "daydash/internal/services/api/notes/module"
	schedulemod "daydash/internal/services/api/schedule/module"
	todosmod "daydash/internal/services/api/todos/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}

	// Construct auth first and extract its token verifier port; every entity
	// module sits behind the bearer middleware built from it
	auth := authmod.New(deps)
	verifier := module.MustPortsOf[authmod.Ports](auth).Verifier
	protect := httpkit.Auth(httpkit.NewPortFunc(verifier.VerifyToken))

	mods := []module.Module{
		metamod.New(deps),
		auth,
		categoriesmod.New(deps, modkit.WithMiddlewares(protect)),
		todosmod.New(deps, modkit.WithMiddlewares(protect)),
		agendamod.New(deps, modkit.WithMiddlewares(protect)),
		schedulemod.New(deps, modkit.WithMiddlewares(protect)),
		notesmod.New(deps, modkit.WithMiddlewares(protect)),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
