// Package http provides http transport for poll
package http

import (
	stdhttp "net/http"

	"github.com/FFlyyy/bot/internal/modkit/httpkit"
	"github.com/FFlyyy/bot/internal/services/api/poll/domain"
	svc "github.com/FFlyyy/bot/internal/services/api/poll/service"
)

// Register mounts poll endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.CreateInput](r, "/", h.create)
}

type handlers struct{ svc svc.Service }

func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	p, err := h.svc.Create(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(p), nil
}
