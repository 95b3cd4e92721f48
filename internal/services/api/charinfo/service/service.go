// Package service contains charinfo workflows
package service

import (
	"context"
	"errors"

	"github.com/FFlyyy/bot/internal/core/charinfo"
	"github.com/FFlyyy/bot/internal/core/paginate"
	perr "github.com/FFlyyy/bot/internal/platform/errors"
	"github.com/FFlyyy/bot/internal/services/api/charinfo/domain"
)

// CustomEmojiMessage is shown when custom emoji markup is submitted
const CustomEmojiMessage = "**Non-Character Detected**\n" +
	"Only unicode characters can be processed, but a custom Discord emoji " +
	"was found. Please remove it and try again."

// PageLimits bound one page of character lines
var PageLimits = paginate.Limits{MaxLines: 10, MaxSize: 2000}

// Service defines the service contract for charinfo
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct{}

// New creates a charinfo service
func New() *Svc { return &Svc{} }

// Describe explains every code point in in.Characters
func (s *Svc) Describe(_ context.Context, in domain.DescribeInput) (domain.Reply, error) {
	info, err := charinfo.Describe(in.Characters)
	if err != nil {
		var tm *charinfo.TooManyError
		switch {
		case errors.Is(err, charinfo.ErrCustomEmoji):
			return domain.Reply{}, perr.Wrap(err, perr.ErrorCodeValidation, CustomEmojiMessage)
		case errors.As(err, &tm):
			return domain.Reply{}, perr.Wrap(err, perr.ErrorCodeValidation, tm.Error())
		default:
			return domain.Reply{}, perr.Wrapf(err, perr.ErrorCodeUnknown, "charinfo describe failed")
		}
	}
	return domain.Reply{
		Chars:   info.Chars,
		RawText: info.RawText,
		Pages:   paginate.Lines(info.Lines(), PageLimits),
	}, nil
}
