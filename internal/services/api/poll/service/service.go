// Package service contains poll workflows
package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/FFlyyy/bot/internal/core/poll"
	perr "github.com/FFlyyy/bot/internal/platform/errors"
	"github.com/FFlyyy/bot/internal/services/api/poll/domain"
)

// Service defines the service contract for poll
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	newID func() uuid.UUID
}

// New creates a poll service
func New() *Svc { return &Svc{newID: uuid.New} }

// Create validates and builds a poll
func (s *Svc) Create(_ context.Context, in domain.CreateInput) (domain.Poll, error) {
	p, err := poll.Build(in.Title, in.Options)
	if err != nil {
		// every Build failure is a user input problem
		return domain.Poll{}, perr.Wrap(err, perr.ErrorCodeValidation, err.Error())
	}
	return domain.Poll{
		ID:          s.newID().String(),
		Title:       p.Title,
		Description: p.Description(),
		Options:     p.Options,
	}, nil
}
