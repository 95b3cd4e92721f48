package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/FFlyyy/bot/internal/platform/logger"
)

// ErrNoGuildFile is returned by LoadGuild when path is empty
var ErrNoGuildFile = errors.New("guild file path is empty")

// Channels are the text channels command gating refers to
type Channels struct {
	BotCommands string `yaml:"bot_commands"`
	DiscordPy   string `yaml:"discord_py"`
	DevContrib  string `yaml:"dev_contrib"`
}

// Roles lists role ids per group; a member may hold several
type Roles struct {
	Staff           []string `yaml:"staff"`
	Moderation      []string `yaml:"moderation"`
	Partners        []string `yaml:"partners"`
	PythonCommunity []string `yaml:"python_community"`
	ProjectLeads    []string `yaml:"project_leads"`
	DomainLeads     []string `yaml:"domain_leads"`
}

// Guild holds the ids of one Discord server
type Guild struct {
	ID       string   `yaml:"id"`
	Channels Channels `yaml:"channels"`
	Roles    Roles    `yaml:"roles"`
}

// RoleSet is a set of role ids
type RoleSet map[string]struct{}

func newRoleSet(groups ...[]string) RoleSet {
	s := RoleSet{}
	for _, g := range groups {
		for _, id := range g {
			if id = strings.TrimSpace(id); id != "" {
				s[id] = struct{}{}
			}
		}
	}
	return s
}

// HasAny reports whether any of roles is in the set
func (s RoleSet) HasAny(roles []string) bool {
	for _, r := range roles {
		if _, ok := s[r]; ok {
			return true
		}
	}
	return false
}

// StaffRoles may bypass cooldowns and skip the unfurl cache
func (g Guild) StaffRoles() RoleSet { return newRoleSet(g.Roles.Staff) }

// StaffPartnersCommunity may use charinfo and snowflake outside whitelisted channels
func (g Guild) StaffPartnersCommunity() RoleSet {
	return newRoleSet(g.Roles.Staff, g.Roles.Partners, g.Roles.PythonCommunity)
}

// PollRoles may start a vote
func (g Guild) PollRoles() RoleSet {
	return newRoleSet(g.Roles.Moderation, g.Roles.ProjectLeads, g.Roles.DomainLeads,
		g.Roles.Partners, g.Roles.PythonCommunity)
}

// Validate checks the ids needed for gating are present
func (g Guild) Validate() error {
	var missing []string
	if g.ID == "" {
		missing = append(missing, "id")
	}
	if g.Channels.BotCommands == "" {
		missing = append(missing, "channels.bot_commands")
	}
	if g.Channels.DevContrib == "" {
		missing = append(missing, "channels.dev_contrib")
	}
	if len(g.Roles.Staff) == 0 {
		missing = append(missing, "roles.staff")
	}
	if len(missing) > 0 {
		return fmt.Errorf("guild config missing %s", strings.Join(missing, ", "))
	}
	return nil
}

// ParseGuild decodes and validates a guild document
func ParseGuild(data []byte) (Guild, error) {
	var g Guild
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&g); err != nil {
		return Guild{}, fmt.Errorf("parse guild config: %w", err)
	}
	if err := g.Validate(); err != nil {
		return Guild{}, err
	}
	return g, nil
}

// LoadGuild reads the guild document at path
func LoadGuild(path string) (Guild, error) {
	if strings.TrimSpace(path) == "" {
		return Guild{}, ErrNoGuildFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Guild{}, fmt.Errorf("read guild config: %w", err)
	}
	return ParseGuild(data)
}

// MustGuild loads the guild file named by key and panics through the logger on failure
func (c Conf) MustGuild(key string) Guild {
	path := c.MustString(key)
	g, err := LoadGuild(path)
	if err != nil {
		logger.Get().Panic().Err(err).Str("key", c.key(key)).Str("path", path).Msg("invalid guild config")
	}
	return g
}
