// Package service contains snowflake workflows
package service

import (
	"context"
	"errors"
	"time"

	"github.com/FFlyyy/bot/internal/core/paginate"
	"github.com/FFlyyy/bot/internal/core/snowflake"
	perr "github.com/FFlyyy/bot/internal/platform/errors"
	"github.com/FFlyyy/bot/internal/services/api/snowflake/domain"
)

// PageLimits bound one page of snowflake lines
var PageLimits = paginate.Limits{MaxLines: 5, MaxSize: 1000}

// Service defines the service contract for snowflake
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	now func() time.Time
}

// New creates a snowflake service on the wall clock
func New() *Svc { return &Svc{now: time.Now} }

// NewWithClock creates a snowflake service with a fixed clock, for tests and replays
func NewWithClock(now func() time.Time) *Svc { return &Svc{now: now} }

// Decode reports the creation time of every snowflake in order
func (s *Svc) Decode(_ context.Context, in domain.DecodeInput) (domain.Reply, error) {
	if len(in.Snowflakes) == 0 {
		return domain.Reply{}, perr.Newf(perr.ErrorCodeValidation, "At least one snowflake must be provided.")
	}
	now := s.now()
	out := domain.Reply{
		Heading: snowflake.Heading(len(in.Snowflakes)),
		IconURL: snowflake.IconURL,
		Entries: make([]domain.Entry, 0, len(in.Snowflakes)),
	}
	lines := make([]string, 0, len(in.Snowflakes))
	for _, raw := range in.Snowflakes {
		id, err := snowflake.Parse(raw, now)
		if err != nil {
			var inv *snowflake.InvalidError
			if errors.As(err, &inv) {
				return domain.Reply{}, perr.Wrap(err, perr.ErrorCodeValidation, inv.Error())
			}
			return domain.Reply{}, perr.Wrapf(err, perr.ErrorCodeUnknown, "snowflake parse failed")
		}
		ts := id.Time()
		line := snowflake.Line(id, now)
		out.Entries = append(out.Entries, domain.Entry{
			ID:        id.String(),
			CreatedAt: ts,
			Since:     snowflake.Since(ts, now),
			Line:      line,
		})
		lines = append(lines, line)
	}
	out.Pages = paginate.Lines(lines, PageLimits)
	return out, nil
}
