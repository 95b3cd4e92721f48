package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/FFlyyy/bot/internal/adapters/discord"
	"github.com/FFlyyy/bot/internal/adapters/paste"
	"github.com/FFlyyy/bot/internal/modkit"
	"github.com/FFlyyy/bot/internal/modkit/module"
	"github.com/FFlyyy/bot/internal/modkit/repokit"
	"github.com/FFlyyy/bot/internal/platform/config"
	"github.com/FFlyyy/bot/internal/platform/logger"
	phttp "github.com/FFlyyy/bot/internal/platform/net/http"
	"github.com/FFlyyy/bot/internal/platform/store"

	"github.com/FFlyyy/bot/internal/services/api"
	auditmod "github.com/FFlyyy/bot/internal/services/api/audit/module"
	auditsvc "github.com/FFlyyy/bot/internal/services/api/audit/service"
	chardom "github.com/FFlyyy/bot/internal/services/api/charinfo/domain"
	charinfomod "github.com/FFlyyy/bot/internal/services/api/charinfo/module"
	metamod "github.com/FFlyyy/bot/internal/services/api/meta/module"
	polldom "github.com/FFlyyy/bot/internal/services/api/poll/domain"
	pollmod "github.com/FFlyyy/bot/internal/services/api/poll/module"
	snowdom "github.com/FFlyyy/bot/internal/services/api/snowflake/domain"
	snowflakemod "github.com/FFlyyy/bot/internal/services/api/snowflake/module"
	unfurldom "github.com/FFlyyy/bot/internal/services/api/unfurl/domain"
	unfurlmod "github.com/FFlyyy/bot/internal/services/api/unfurl/module"
	zendom "github.com/FFlyyy/bot/internal/services/api/zen/domain"
	zenmod "github.com/FFlyyy/bot/internal/services/api/zen/module"
)

func main() {
	root := config.New()
	botCfg := root.Prefix("BOT_DISCORD_")

	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, store.FromConfig(root, "discord"), store.WithLogger(*l))
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

	deps := modkit.Deps{Cfg: botCfg, PG: st.PG, CH: st.CH, Log: *l}

	// the bot reuses the API modules for their ports only; no routes are mounted
	zen := zenmod.New(deps)
	chars := charinfomod.New(deps)
	snow := snowflakemod.New(deps)
	polls := pollmod.New(deps)
	unfurl := unfurlmod.New(deps, unfurlmod.FromConfig(root))
	audit := auditmod.New(deps, auditsvc.Config{
		BatchSize:  botCfg.MayInt("AUDIT_BATCH", 256),
		FlushEvery: botCfg.MayDuration("AUDIT_FLUSH_EVERY", 0),
	})
	for _, m := range []module.Module{zen, chars, snow, polls, unfurl, audit} {
		module.Register(m.Name(), m.Ports())
	}
	auditPorts := module.MustPortsOf[auditmod.Ports](audit)

	bot, err := discord.New(discord.FromConfig(root), discord.Services{
		Zen:       module.MustPortsOf[zendom.ServicePort](zen),
		Charinfo:  module.MustPortsOf[chardom.ServicePort](chars),
		Snowflake: module.MustPortsOf[snowdom.ServicePort](snow),
		Poll:      module.MustPortsOf[polldom.ServicePort](polls),
		Unfurl:    module.MustPortsOf[unfurldom.ServicePort](unfurl),
		Paste:     paste.NewClient(paste.FromConfig(root)),
		Audit:     auditPorts.Recorder,
	})
	if err != nil {
		l.Panic().Err(err).Msg("discord setup failed")
	}

	// health and readiness for the orchestrator (reads BOT_DISCORD_API_PORT)
	health := phttp.NewServer(botCfg)
	metamod.NewFor(deps, "discord").MountRoutes(health.Router())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return bot.Run(gctx) })
	g.Go(func() error { return health.Run(gctx) })
	g.Go(func() error { return auditPorts.Flusher.Run(gctx) })
	if err := g.Wait(); err != nil {
		l.Error().Err(err).Msg("discord bot stopped with error")
		return
	}
	l.Info().Msg("discord bot stopped")
}
