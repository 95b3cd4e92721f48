
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/FFlyyy/bot/internal/modkit/repokit"
	"github.com/FFlyyy/bot/internal/platform/config"
	"github.com/FFlyyy/bot/internal/platform/logger"
	phttp "github.com/FFlyyy/bot/internal/platform/net/http"
	"github.com/FFlyyy/bot/internal/platform/store"

	"github.com/FFlyyy/bot/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (BOT_API_*)
	root := config.New()
	apiCfg := root.Prefix("BOT_API_")

	// bring up logging early
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// open the platform store; each backend is optional
	st, err := store.Open(ctx, store.FromConfig(root, "api"), store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	repokit.MustGuard(ctx, st)

	if err := api.EnsureSchema(ctx, st); err != nil {
		l.Panic().Err(err).Msg("schema setup failed")
	}

	// http server (reads BOT_API_PORT / BOT_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	mounted := api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Root:           root,
			Store:          st,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	// run the server and the audit flusher until a signal arrives
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(gctx) })
	g.Go(func() error { return mounted.AuditFlusher.Run(gctx) })
	if err := g.Wait(); err != nil {
		l.Error().Err(err).Msg("api stopped with error")
		return
	}
	l.Info().Msg("api stopped")
}
