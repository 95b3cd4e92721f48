package discord

import (
	"fmt"
	"strings"

	"github.com/FFlyyy/bot/internal/platform/config"
	perr "github.com/FFlyyy/bot/internal/platform/errors"
)

// MissingRoleMessage is shown when a role-gated command is denied
const MissingRoleMessage = "You do not have the required role to use this command."

// Caller is who invoked a command and where
type Caller struct {
	UserID    string
	GuildID   string
	ChannelID string
	Roles     []string
}

// rule allows a command in any of channels or for any of roles
//
// A rule with no channels is role-only.
type rule struct {
	channels []string
	roles    config.RoleSet
}

// Gates decides who may run which command
type Gates struct {
	rules map[string]rule
	staff config.RoleSet
}

// NewGates derives per-command rules from the guild layout
func NewGates(g config.Guild) Gates {
	spc := g.StaffPartnersCommunity()
	return Gates{
		rules: map[string]rule{
			"charinfo":  {channels: nonEmpty(g.Channels.BotCommands, g.Channels.DiscordPy), roles: spc},
			"snowflake": {channels: nonEmpty(g.Channels.BotCommands), roles: spc},
			"vote":      {roles: g.PollRoles()},
		},
		staff: g.StaffRoles(),
	}
}

// Check returns a Forbidden error when c may not run command
func (g Gates) Check(command string, c Caller) error {
	r, ok := g.rules[command]
	if !ok {
		return nil
	}
	if r.roles.HasAny(c.Roles) {
		return nil
	}
	if len(r.channels) == 0 {
		return perr.Forbiddenf(MissingRoleMessage)
	}
	for _, ch := range r.channels {
		if ch == c.ChannelID {
			return nil
		}
	}
	mentions := make([]string, len(r.channels))
	for i, ch := range r.channels {
		mentions[i] = "<#" + ch + ">"
	}
	return perr.Newf(perr.ErrorCodeForbidden, "Sorry, but you may only use this command within %s.", strings.Join(mentions, ", "))
}

// IsStaff reports whether c holds a staff role
func (g Gates) IsStaff(c Caller) bool { return g.staff.HasAny(c.Roles) }

func nonEmpty(ids ...string) []string {
	out := ids[:0:0]
	for _, id := range ids {
		if id != "" {
			out = append(out, id)
		}
	}
	return out
}

func channelMention(id string) string {
	if id == "" {
		return "the development channel"
	}
	return fmt.Sprintf("<#%s>", id)
}
