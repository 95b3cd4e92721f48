// Package api provides the HTTP API for the application
package api

import (
	"context"
	"net/http"

	"github.com/FFlyyy/bot/internal/platform/config"
	"github.com/FFlyyy/bot/internal/platform/logger"
	phttp "github.com/FFlyyy/bot/internal/platform/net/http"
	"github.com/FFlyyy/bot/internal/platform/net/middleware"
	"github.com/FFlyyy/bot/internal/platform/store"

	"github.com/FFlyyy/bot/internal/modkit"
	"github.com/FFlyyy/bot/internal/modkit/httpkit"
	"github.com/FFlyyy/bot/internal/modkit/module"
	"github.com/FFlyyy/bot/internal/modkit/repokit"
	"github.com/FFlyyy/bot/internal/modkit/swaggerkit"

	auditmod "github.com/FFlyyy/bot/internal/services/api/audit/module"
	auditrepo "github.com/FFlyyy/bot/internal/services/api/audit/repo"
	auditsvc "github.com/FFlyyy/bot/internal/services/api/audit/service"
	charinfomod "github.com/FFlyyy/bot/internal/services/api/charinfo/module"
	metamod "github.com/FFlyyy/bot/internal/services/api/meta/module"
	pollmod "github.com/FFlyyy/bot/internal/services/api/poll/module"
	snowflakemod "github.com/FFlyyy/bot/internal/services/api/snowflake/module"
	unfurlmod "github.com/FFlyyy/bot/internal/services/api/unfurl/module"
	unfurlrepo "github.com/FFlyyy/bot/internal/services/api/unfurl/repo"
	zenmod "github.com/FFlyyy/bot/internal/services/api/zen/module"
)

// BasePath is where versioned routes are mounted
const BasePath = "/api/v1"

// Options are the API options
type Options struct {
	// Config is the API scoped view (BOT_API_*)
	Config config.Conf
	// Root is the unscoped view used by shared sections such as UNFURL_*
	Root           config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mounted exposes background work the caller must run alongside the server
type Mounted struct {
	AuditFlusher auditmod.Runner
}

// schemaLockKey serialises DDL across the api, bot and cli processes
const schemaLockKey int64 = 0x7574696c626f74

// EnsureSchema creates the tables the API modules own
func EnsureSchema(ctx context.Context, st *store.Store) error {
	if st == nil {
		return nil
	}
	if st.PG != nil {
		tx := repokit.WithBeginHooks(st.PG, repokit.AdvisoryLock(schemaLockKey))
		err := repokit.WithTx(ctx, tx, func(q repokit.Queryer) error {
			return unfurlrepo.EnsureSchema(ctx, q)
		})
		if err != nil {
			return err
		}
	}
	if st.CH != nil {
		if err := auditrepo.NewCH(st.CH).EnsureSchema(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) Mounted {
	// shared deps for modules
	deps := modkit.Deps{Cfg: opt.Config}
	if opt.Store != nil {
		deps.PG = opt.Store.PG
		deps.CH = opt.Store.CH
	}

	audit := auditmod.New(deps, auditsvc.Config{
		BatchSize:  opt.Config.MayInt("AUDIT_BATCH", 256),
		FlushEvery: opt.Config.MayDuration("AUDIT_FLUSH_EVERY", 0),
	})

	uo := unfurlmod.FromConfig(opt.Root)
	uo.AllowBypass = opt.Config.MayBool("ALLOW_CACHE_BYPASS", false)

	mods := []module.Module{
		metamod.New(deps),
		zenmod.New(deps),
		charinfomod.New(deps),
		snowflakemod.New(deps),
		pollmod.New(deps),
		unfurlmod.New(deps, uo),
		audit,
	}

	stack := append(httpkit.CommonStack(),
		httpkit.Identity(middleware.HeaderIdentity{}),
		audit.Middleware(BasePath),
	)

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})

	// Swagger + profiler
	swaggerkit.Mount(r, BasePath, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	return Mounted{AuditFlusher: module.MustPortsOf[auditmod.Ports](audit).Flusher}
}

// Handler is a convenience for tests that need a bare http.Handler
func Handler(opt Options) (http.Handler, Mounted) {
	srv := phttp.NewServer(opt.Config)
	m := Mount(srv.Router(), opt)
	return srv.Router().Mux(), m
}
