// Package service contains zen workflows
package service

import (
	"context"
	"errors"

	"github.com/FFlyyy/bot/internal/core/lineselect"
	"github.com/FFlyyy/bot/internal/core/zen"
	perr "github.com/FFlyyy/bot/internal/platform/errors"
	"github.com/FFlyyy/bot/internal/services/api/zen/domain"
)

// NoMatchMessage is shown when a search finds nothing
const NoMatchMessage = "I didn't get a match! Please try again with a different search term."

// Service defines the service contract for zen
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	corpus lineselect.Corpus
}

// New creates a zen service over the built-in corpus
func New() *Svc { return &Svc{corpus: zen.Corpus()} }

// Select resolves in.Search against the corpus
func (s *Svc) Select(_ context.Context, in domain.SelectInput) (domain.Reply, error) {
	sel := lineselect.ParseSelector(in.Search)
	if sel.Kind() == lineselect.KindUnset {
		return domain.Reply{Title: zen.FullTitle(), Text: s.corpus.Text()}, nil
	}
	m, err := lineselect.Resolve(s.corpus, sel)
	if err != nil {
		return domain.Reply{}, MapError(err)
	}
	idx := m.Index
	return domain.Reply{Title: zen.LineTitle(m.Index), Text: m.Line, Index: &idx}, nil
}

// MapError turns selector failures into validation errors with user-facing text
func MapError(err error) error {
	var oor *lineselect.OutOfRangeError
	switch {
	case errors.As(err, &oor):
		return perr.Wrap(err, perr.ErrorCodeValidation, oor.Error())
	case errors.Is(err, lineselect.ErrNoMatch):
		return perr.Wrap(err, perr.ErrorCodeValidation, NoMatchMessage)
	default:
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "zen select failed")
	}
}
