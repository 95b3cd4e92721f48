package discord

import (
	"context"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"

	"github.com/FFlyyy/bot/internal/platform/logger"
	tim "github.com/FFlyyy/bot/internal/platform/time"
	chardom "github.com/FFlyyy/bot/internal/services/api/charinfo/domain"
	polldom "github.com/FFlyyy/bot/internal/services/api/poll/domain"
	snowdom "github.com/FFlyyy/bot/internal/services/api/snowflake/domain"
	unfurldom "github.com/FFlyyy/bot/internal/services/api/unfurl/domain"
	unfurlsvc "github.com/FFlyyy/bot/internal/services/api/unfurl/service"
	zendom "github.com/FFlyyy/bot/internal/services/api/zen/domain"
)

// embed colours
const (
	colourBlurple = 0x7289DA
	colourBlue    = 0x3498DB
	colourGreen   = 0x2ECC71
	colourRed     = 0xE74C3C
)

const (
	fieldValueMax   = 1024
	titleURLMax     = 50
	alignFillerUpTo = 30
	zeroWidth       = "\u200b"
)

// Paster uploads long text and returns a link to it
type Paster interface {
	Upload(ctx context.Context, contents, extension string) (string, error)
}

func zenEmbed(r zendom.Reply) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{Title: r.Title, Description: r.Text, Color: colourBlurple}
}

func charinfoEmbeds(r chardom.Reply) []*discordgo.MessageEmbed {
	base := discordgo.MessageEmbed{Author: &discordgo.MessageEmbedAuthor{Name: "Character Info"}}
	if r.RawText != "" {
		base.Fields = []*discordgo.MessageEmbedField{{Name: "Full Raw Text", Value: "`" + r.RawText + "`"}}
	}
	return paged(base, r.Pages)
}

func snowflakeEmbeds(r snowdom.Reply) []*discordgo.MessageEmbed {
	base := discordgo.MessageEmbed{
		Color:  colourBlue,
		Author: &discordgo.MessageEmbedAuthor{Name: r.Heading, IconURL: r.IconURL},
	}
	return paged(base, r.Pages)
}

func pollEmbed(p polldom.Poll) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{Title: p.Title, Description: p.Description}
}

// paged clones base once per page and numbers them when there is more than one
func paged(base discordgo.MessageEmbed, pages []string) []*discordgo.MessageEmbed {
	out := make([]*discordgo.MessageEmbed, len(pages))
	for i, p := range pages {
		e := base
		e.Description = p
		if len(pages) > 1 {
			e.Footer = &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Page %d/%d", i+1, len(pages))}
		}
		out[i] = &e
	}
	return out
}

// unfurlEmbed renders where url led; destinations too long for a field go to paste
func unfurlEmbed(ctx context.Context, url string, r unfurldom.Result, paste Paster) *discordgo.MessageEmbed {
	title := url
	if rs := []rune(url); len(rs) > titleURLMax {
		title = string(rs[:titleURLMax]) + "..."
	}
	e := &discordgo.MessageEmbed{Title: "`" + title + "`", Color: colourGreen}
	if r.Error != "" {
		e.Color = colourRed
	}

	if r.Depth != nil {
		e.Fields = append(e.Fields, &discordgo.MessageEmbedField{Name: "Redirects", Value: strconv.Itoa(*r.Depth), Inline: true})
	}
	if r.Error == "" {
		if r.CreatedAt != nil {
			expiry := r.CreatedAt.Add(unfurlsvc.CacheLength)
			if r.ExpiresAt != nil {
				expiry = *r.ExpiresAt
			}
			e.Fields = append(e.Fields,
				&discordgo.MessageEmbedField{Name: "Fetched", Value: tim.Since(*r.CreatedAt), Inline: true},
				&discordgo.MessageEmbedField{Name: "Expiry", Value: tim.Since(expiry), Inline: true},
			)
		}
	} else {
		e.Fields = append(e.Fields, &discordgo.MessageEmbedField{Name: "Error", Value: r.Error})
	}

	if r.Destination != "" {
		dest := "`" + r.Destination + "`"
		if utf8.RuneCountInString(dest) > fieldValueMax {
			dest = pasteLink(ctx, r.Destination, paste)
		}
		e.Fields = append(e.Fields, &discordgo.MessageEmbedField{Name: "Destination", Value: dest, Inline: true})
		if utf8.RuneCountInString(dest) < alignFillerUpTo {
			e.Fields = append(e.Fields, &discordgo.MessageEmbedField{Name: zeroWidth, Value: zeroWidth, Inline: true})
		}
	}
	return e
}

func pasteLink(ctx context.Context, contents string, paste Paster) string {
	if paste != nil {
		link, err := paste.Upload(ctx, contents, "txt")
		if err == nil {
			return fmt.Sprintf("Result was too long to display, you can find it [here](%s).", link)
		}
		logger.C(ctx).Warn().Err(err).Msg("unfurl destination upload failed")
	}
	return "Result was too long to display and could not be uploaded."
}

// unresolvableMessage points users at the channel where broken unfurls are reported
func unresolvableMessage(devContrib string) string {
	return "Could not resolve this URL. If you believe this to be an error, please report it in " +
		channelMention(devContrib) + "."
}
