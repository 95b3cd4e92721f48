// Package discord runs the utility commands as Discord slash commands
//
// The Bot owns the gateway session. The Handler is transport-free apart from the
// discordgo types so it can be driven by a fake Session in tests.
package discord

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/FFlyyy/bot/internal/platform/config"
	"github.com/FFlyyy/bot/internal/platform/logger"
)

// ErrNoToken is returned by New without a bot token
var ErrNoToken = errors.New("discord token is empty")

// Config is the gateway configuration
type Config struct {
	Token string
	Guild config.Guild

	Cooldown time.Duration
	Timeout  time.Duration

	// SyncCommands overwrites the guild's slash commands on ready
	SyncCommands bool
}

// FromConfig reads BOT_DISCORD_* from root
func FromConfig(root config.Conf) Config {
	c := root.Prefix("BOT_DISCORD_")
	return Config{
		Token:        c.MustString("TOKEN"),
		Guild:        c.MustGuild("GUILD_FILE"),
		Cooldown:     c.MayDuration("UNFURL_COOLDOWN", defaultCooldown),
		Timeout:      c.MayDuration("COMMAND_TIMEOUT", defaultTimeout),
		SyncCommands: c.MayBool("SYNC_COMMANDS", true),
	}
}

// Bot is a gateway connection serving slash commands
type Bot struct {
	cfg     Config
	session *discordgo.Session
	handler *Handler
	log     logger.Logger
}

// New prepares a session; nothing connects until Run
func New(cfg Config, svc Services) (*Bot, error) {
	if cfg.Token == "" {
		return nil, ErrNoToken
	}
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, err
	}
	s.Identify.Intents = discordgo.IntentsGuilds

	return &Bot{
		cfg:     cfg,
		session: s,
		handler: NewHandler(svc, Options{Guild: cfg.Guild, Cooldown: cfg.Cooldown, Timeout: cfg.Timeout}),
		log:     *logger.Named("discord"),
	}, nil
}

// Run connects, serves interactions until ctx is done, then disconnects
func (b *Bot) Run(ctx context.Context) error {
	removeReady := b.session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		b.log.Info().Str("user", r.User.Username).Int("guilds", len(r.Guilds)).Msg("discord session ready")
		if !b.cfg.SyncCommands {
			return
		}
		cmds, err := s.ApplicationCommandBulkOverwrite(r.User.ID, b.cfg.Guild.ID, Commands())
		if err != nil {
			b.log.Error().Err(err).Str("guild_id", b.cfg.Guild.ID).Msg("slash command sync failed")
			return
		}
		b.log.Info().Int("commands", len(cmds)).Str("guild_id", b.cfg.Guild.ID).Msg("slash commands synced")
	})
	defer removeReady()

	removeInteraction := b.session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		b.handler.Handle(ctx, s, i)
	})
	defer removeInteraction()

	if err := b.session.Open(); err != nil {
		return err
	}
	b.log.Info().Msg("discord gateway connected")

	<-ctx.Done()
	b.log.Info().Msg("discord gateway closing")
	return b.session.Close()
}
