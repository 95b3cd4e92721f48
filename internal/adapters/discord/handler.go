package discord

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"

	"github.com/FFlyyy/bot/internal/core/poll"
	"github.com/FFlyyy/bot/internal/platform/config"
	perr "github.com/FFlyyy/bot/internal/platform/errors"
	"github.com/FFlyyy/bot/internal/platform/logger"
	pnet "github.com/FFlyyy/bot/internal/platform/net"
	auditdom "github.com/FFlyyy/bot/internal/services/api/audit/domain"
	chardom "github.com/FFlyyy/bot/internal/services/api/charinfo/domain"
	polldom "github.com/FFlyyy/bot/internal/services/api/poll/domain"
	snowdom "github.com/FFlyyy/bot/internal/services/api/snowflake/domain"
	unfurldom "github.com/FFlyyy/bot/internal/services/api/unfurl/domain"
	unfurlsvc "github.com/FFlyyy/bot/internal/services/api/unfurl/service"
	zendom "github.com/FFlyyy/bot/internal/services/api/zen/domain"
)

const (
	maxChoices    = 25
	maxChoiceName = 100

	defaultTimeout  = 30 * time.Second
	defaultCooldown = 60 * time.Second
)

// Session is the part of *discordgo.Session the handler talks to
type Session interface {
	InteractionRespond(i *discordgo.Interaction, r *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseEdit(i *discordgo.Interaction, e *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	FollowupMessageCreate(i *discordgo.Interaction, wait bool, p *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
	MessageReactionAdd(channelID, messageID, emojiID string, options ...discordgo.RequestOption) error
}

// Services are the command backends
type Services struct {
	Zen       zendom.ServicePort
	Charinfo  chardom.ServicePort
	Snowflake snowdom.ServicePort
	Poll      polldom.ServicePort
	Unfurl    unfurldom.ServicePort
	Paste     Paster
	Audit     auditdom.Recorder
}

// Options tune the Handler
type Options struct {
	Guild config.Guild
	// Cooldown is the per-user unfurl cooldown; staff bypass it
	Cooldown time.Duration
	// Timeout bounds one command
	Timeout time.Duration
}

// Handler turns interactions into service calls and replies
type Handler struct {
	svc        Services
	gates      Gates
	cooldown   *Cooldown
	devContrib string
	timeout    time.Duration
	now        func() time.Time
	log        logger.Logger
}

// NewHandler builds a Handler; zero durations pick the defaults
func NewHandler(svc Services, o Options) *Handler {
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.Cooldown == 0 {
		o.Cooldown = defaultCooldown
	}
	return &Handler{
		svc:        svc,
		gates:      NewGates(o.Guild),
		cooldown:   NewCooldown(o.Cooldown),
		devContrib: o.Guild.Channels.DevContrib,
		timeout:    o.Timeout,
		now:        time.Now,
		log:        *logger.Named("discord"),
	}
}

// reply is what a command posts
//
// The first embed edits the deferred response and the rest follow up.
type reply struct {
	content   string
	embeds    []*discordgo.MessageEmbed
	reactions []string
}

type options map[string]*discordgo.ApplicationCommandInteractionDataOption

func (o options) str(name string) string {
	if v, ok := o[name]; ok {
		return v.StringValue()
	}
	return ""
}

func (o options) integer(name string) int {
	if v, ok := o[name]; ok {
		return int(v.IntValue())
	}
	return 0
}

func (o options) boolean(name string, def bool) bool {
	if v, ok := o[name]; ok {
		return v.BoolValue()
	}
	return def
}

func optionsOf(data discordgo.ApplicationCommandInteractionData) options {
	out := make(options, len(data.Options))
	for _, o := range data.Options {
		out[o.Name] = o
	}
	return out
}

// Handle routes one interaction
func (h *Handler) Handle(ctx context.Context, s Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommandAutocomplete:
		h.autocomplete(ctx, s, i)
	case discordgo.InteractionApplicationCommand:
		h.command(ctx, s, i)
	}
}

func callerOf(i *discordgo.InteractionCreate) Caller {
	c := Caller{GuildID: i.GuildID, ChannelID: i.ChannelID}
	switch {
	case i.Member != nil:
		c.Roles = i.Member.Roles
		if i.Member.User != nil {
			c.UserID = i.Member.User.ID
		}
	case i.User != nil:
		c.UserID = i.User.ID
	}
	return c
}

func withCaller(ctx context.Context, id string, c Caller) context.Context {
	ctx = pnet.WithRequest(ctx, id, c.GuildID)
	ctx = pnet.WithUser(ctx, c.UserID)
	return logger.WithRequest(ctx, id, c.GuildID)
}

func (h *Handler) command(ctx context.Context, s Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	name := Canonical(data.Name)
	c := callerOf(i)
	ctx = withCaller(ctx, i.ID, c)

	start := h.now()
	err := h.run(ctx, s, i, name, c, optionsOf(data))
	h.record(ctx, name, c, start, err)

	l := logger.C(ctx)
	switch {
	case err == nil:
		l.Debug().Str("command", name).Str("user_id", c.UserID).Msg("command handled")
	case isUserError(err):
		l.Debug().Err(err).Str("command", name).Str("user_id", c.UserID).Msg("command rejected")
	default:
		l.Error().Err(err).Str("command", name).Str("user_id", c.UserID).Msg("command failed")
	}
}

func (h *Handler) run(ctx context.Context, s Session, i *discordgo.InteractionCreate, name string, c Caller, opts options) error {
	if err := h.gates.Check(name, c); err != nil {
		h.deny(s, i, perr.WireFrom(err).Message)
		return err
	}
	if name == "unfurl" && !h.gates.IsStaff(c) {
		if ok, wait := h.cooldown.Allow(c.UserID, h.now()); !ok {
			err := perr.Newf(perr.ErrorCodeTooManyRequests, "This command is on cooldown. Try again in %s.", wait.Round(time.Second))
			h.deny(s, i, perr.WireFrom(err).Message)
			return err
		}
	}

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "discord ack failed")
	}

	cctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	r, err := h.exec(cctx, name, c, opts)
	if err != nil {
		msg := h.userMessage(err)
		if _, eerr := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{Content: &msg}); eerr != nil {
			logger.C(ctx).Warn().Err(eerr).Msg("discord error reply failed")
		}
		return err
	}
	return h.deliver(ctx, s, i, r)
}

func (h *Handler) exec(ctx context.Context, name string, c Caller, opts options) (reply, error) {
	switch name {
	case "zen":
		r, err := h.svc.Zen.Select(ctx, zendom.SelectInput{Search: opts.str("search_value")})
		if err != nil {
			return reply{}, err
		}
		return reply{embeds: []*discordgo.MessageEmbed{zenEmbed(r)}}, nil

	case "charinfo":
		r, err := h.svc.Charinfo.Describe(ctx, chardom.DescribeInput{Characters: opts.str("characters")})
		if err != nil {
			return reply{}, err
		}
		return reply{embeds: charinfoEmbeds(r)}, nil

	case "snowflake":
		r, err := h.svc.Snowflake.Decode(ctx, snowdom.DecodeInput{Snowflakes: strings.Fields(opts.str("snowflakes"))})
		if err != nil {
			return reply{}, err
		}
		return reply{embeds: snowflakeEmbeds(r)}, nil

	case "vote":
		in := polldom.CreateInput{Title: opts.str("title")}
		for n := 1; n <= poll.MaxOptions; n++ {
			if v := opts.str(fmt.Sprintf("option%d", n)); v != "" {
				in.Options = append(in.Options, v)
			}
		}
		p, err := h.svc.Poll.Create(ctx, in)
		if err != nil {
			return reply{}, err
		}
		r := reply{embeds: []*discordgo.MessageEmbed{pollEmbed(p)}}
		for _, o := range p.Options {
			r.reactions = append(r.reactions, o.Emoji)
		}
		return r, nil

	case "unfurl":
		url := opts.str("url")
		in := unfurldom.UnfurlInput{URL: url, MaxContinues: opts.integer("max_continues")}
		useCache := opts.boolean("use_cache", true)
		in.UseCache = &useCache
		if err := unfurlsvc.CheckBypass(in, h.gates.IsStaff(c)); err != nil {
			return reply{}, err
		}
		res, err := h.svc.Unfurl.Unfurl(ctx, in)
		if err != nil {
			return reply{}, err
		}
		return reply{embeds: []*discordgo.MessageEmbed{unfurlEmbed(ctx, url, res, h.svc.Paste)}}, nil
	}
	return reply{}, perr.Newf(perr.ErrorCodeNotFound, "Unknown command %q.", name)
}

func (h *Handler) deliver(ctx context.Context, s Session, i *discordgo.InteractionCreate, r reply) error {
	edit := &discordgo.WebhookEdit{}
	if r.content != "" {
		edit.Content = &r.content
	}
	if len(r.embeds) > 0 {
		first := r.embeds[:1]
		edit.Embeds = &first
	}
	msg, err := s.InteractionResponseEdit(i.Interaction, edit)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "discord reply failed")
	}

	for _, e := range r.reactions {
		if msg == nil {
			break
		}
		if err := s.MessageReactionAdd(msg.ChannelID, msg.ID, e); err != nil {
			return perr.Wrapf(err, perr.ErrorCodeUnavailable, "discord add reaction %s failed", e)
		}
	}
	for n, e := range r.embeds[min(1, len(r.embeds)):] {
		if _, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
			Embeds: []*discordgo.MessageEmbed{e},
		}); err != nil {
			return perr.Wrapf(err, perr.ErrorCodeUnavailable, "discord followup page %d failed", n+2)
		}
	}
	logger.C(ctx).Debug().Int("pages", len(r.embeds)).Int("reactions", len(r.reactions)).Msg("command reply sent")
	return nil
}

func (h *Handler) deny(s Session, i *discordgo.InteractionCreate, msg string) {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: msg, Flags: discordgo.MessageFlagsEphemeral},
	}); err != nil {
		h.log.Warn().Err(err).Msg("discord denial failed")
	}
}

func (h *Handler) autocomplete(ctx context.Context, s Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	if Canonical(data.Name) != "zen" {
		return
	}
	var query string
	for _, o := range data.Options {
		if o.Focused {
			query = o.StringValue()
		}
	}

	cands, err := h.svc.Zen.Search(ctx, zendom.SearchInput{Query: query, Limit: maxChoices})
	if err != nil {
		h.log.Warn().Err(err).Str("query", query).Msg("zen autocomplete failed")
		cands = nil
	}
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(cands))
	for _, c := range cands {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  truncate(fmt.Sprintf("%d: %s", c.Index, c.Line), maxChoiceName),
			Value: strconv.Itoa(c.Index),
		})
	}
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{Choices: choices},
	}); err != nil {
		h.log.Warn().Err(err).Msg("discord autocomplete reply failed")
	}
}

func (h *Handler) record(ctx context.Context, name string, c Caller, start time.Time, err error) {
	if h.svc.Audit == nil {
		return
	}
	inv := auditdom.Invocation{
		At:      start,
		Command: name,
		Surface: auditdom.SurfaceDiscord,
		GuildID: c.GuildID,
		UserID:  c.UserID,
		OK:      err == nil,
		Latency: h.now().Sub(start),
	}
	if err != nil {
		inv.ErrorCode = strconv.Itoa(perr.HTTPStatus(err))
	}
	h.svc.Audit.Record(ctx, inv)
}

// userMessage is the text shown for a failed command
func (h *Handler) userMessage(err error) string {
	switch {
	case errors.Is(err, unfurlsvc.ErrUnresolvable):
		return unresolvableMessage(h.devContrib)
	case errors.Is(err, context.DeadlineExceeded):
		return "That took too long, please try again later."
	case isUserError(err):
		return perr.WireFrom(err).Message
	default:
		return "Something went wrong while running that command."
	}
}

func isUserError(err error) bool {
	switch perr.CodeOf(err) {
	case perr.ErrorCodeValidation, perr.ErrorCodeInvalidArgument, perr.ErrorCodeForbidden,
		perr.ErrorCodeTooManyRequests, perr.ErrorCodeNotFound:
		return true
	}
	return false
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	rs := []rune(s)
	return string(rs[:n-1]) + "…"
}
