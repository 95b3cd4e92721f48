package discord

import (
	"fmt"
	"maps"
	"slices"

	"github.com/bwmarrin/discordgo"

	"github.com/FFlyyy/bot/internal/core/poll"
)

// Aliases maps alternate slash command names to the command they run
var Aliases = map[string]string{
	"snf":  "snowflake",
	"snfl": "snowflake",
	"sf":   "snowflake",
	"poll": "vote",
}

// Canonical resolves an alias to its command name
func Canonical(name string) string {
	if c, ok := Aliases[name]; ok {
		return c
	}
	return name
}

// Commands are the slash command definitions, aliases included
func Commands() []*discordgo.ApplicationCommand {
	zero := 0.0
	base := []*discordgo.ApplicationCommand{
		{
			Name:        "zen",
			Description: "Show the Zen of Python, a line of it by index, or the line that best matches a search.",
			Options: []*discordgo.ApplicationCommandOption{{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         "search_value",
				Description:  "Line index or search text",
				Autocomplete: true,
			}},
		},
		{
			Name:        "charinfo",
			Description: "Shows you information on up to 50 unicode characters.",
			Options: []*discordgo.ApplicationCommandOption{{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "characters",
				Description: "Characters to describe",
				Required:    true,
			}},
		},
		{
			Name:        "snowflake",
			Description: "Get Discord snowflake creation time.",
			Options: []*discordgo.ApplicationCommandOption{{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "snowflakes",
				Description: "One or more snowflakes separated by spaces",
				Required:    true,
			}},
		},
		voteCommand("vote"),
		{
			Name:        "unfurl",
			Description: "Unfurl a url to find where it redirects to.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "url",
					Description: "The url to follow",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "max_continues",
					Description: "Keep going this many times when the worker hits its limit",
					MinValue:    &zero,
				},
				{
					Type:        discordgo.ApplicationCommandOptionBoolean,
					Name:        "use_cache",
					Description: "Serve a cached result when one exists",
				},
			},
		},
	}

	out := base
	for _, alias := range slices.Sorted(maps.Keys(Aliases)) {
		target := Aliases[alias]
		for _, c := range base {
			if c.Name != target {
				continue
			}
			cp := *c
			cp.Name = alias
			out = append(out, &cp)
		}
	}
	return out
}

func voteCommand(name string) *discordgo.ApplicationCommand {
	opts := []*discordgo.ApplicationCommandOption{{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "title",
		Description: "What to vote on",
		Required:    true,
		MaxLength:   poll.MaxTitle,
	}}
	for i := 1; i <= poll.MaxOptions; i++ {
		opts = append(opts, &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        fmt.Sprintf("option%d", i),
			Description: fmt.Sprintf("Choice %d", i),
			Required:    i <= poll.MinOptions,
		})
	}
	return &discordgo.ApplicationCommand{
		Name:        name,
		Description: "Build a quick voting poll with matching reactions.",
		Options:     opts,
	}
}
