package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/FFlyyy/bot/internal/modkit"
	"github.com/FFlyyy/bot/internal/modkit/module"
	"github.com/FFlyyy/bot/internal/platform/config"
	perr "github.com/FFlyyy/bot/internal/platform/errors"
	"github.com/FFlyyy/bot/internal/platform/logger"
	"github.com/FFlyyy/bot/internal/platform/store"

	"github.com/FFlyyy/bot/internal/services/api"
	auditmod "github.com/FFlyyy/bot/internal/services/api/audit/module"
	auditsvc "github.com/FFlyyy/bot/internal/services/api/audit/service"
	charinfosvc "github.com/FFlyyy/bot/internal/services/api/charinfo/service"
	pollsvc "github.com/FFlyyy/bot/internal/services/api/poll/service"
	snowflakesvc "github.com/FFlyyy/bot/internal/services/api/snowflake/service"
	unfurldom "github.com/FFlyyy/bot/internal/services/api/unfurl/domain"
	unfurlmod "github.com/FFlyyy/bot/internal/services/api/unfurl/module"
	zensvc "github.com/FFlyyy/bot/internal/services/api/zen/service"
)

func main() {
	os.Exit(run())
}

func run() int {
	root := config.New()
	cliCfg := root.Prefix("BOT_CLI_")
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// storage is optional here: unfurl falls back to an in-memory cache and audit is skipped
	st, err := store.Open(ctx, store.FromConfig(root, "cli"), store.WithLogger(*l))
	if err != nil {
		fmt.Fprintln(os.Stderr, "store:", err)
		return 1
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	if err := api.EnsureSchema(ctx, st); err != nil {
		fmt.Fprintln(os.Stderr, "schema:", err)
		return 1
	}

	deps := modkit.Deps{Cfg: cliCfg, PG: st.PG, CH: st.CH, Log: *l}
	a := &app{
		zen:       zensvc.New(),
		charinfo:  charinfosvc.New(),
		snowflake: snowflakesvc.New(),
		poll:      pollsvc.New(),
		unfurl:    module.MustPortsOf[unfurldom.ServicePort](unfurlmod.New(deps, unfurlmod.FromConfig(root))),
		user:      cliCfg.MayString("USER", os.Getenv("USER")),
	}

	var flush auditmod.Runner
	if st.CH != nil {
		ports := module.MustPortsOf[auditmod.Ports](auditmod.New(deps, auditsvc.Config{}))
		a.audit = ports.Usage
		flush = ports.Flusher
	}

	err = newRootCmd(a).ExecuteContext(ctx)

	if flush != nil {
		// a done context makes Run flush once and return
		done, cancel := context.WithCancel(context.Background())
		cancel()
		_ = flush.Run(done)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, perr.WireFrom(err).Message)
		return 1
	}
	return 0
}
