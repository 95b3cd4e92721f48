// Package http provides http transport for snowflake
package http

import (
	stdhttp "net/http"

	"github.com/FFlyyy/bot/internal/modkit/httpkit"
	"github.com/FFlyyy/bot/internal/services/api/snowflake/domain"
	svc "github.com/FFlyyy/bot/internal/services/api/snowflake/service"
)

// Register mounts snowflake endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.DecodeInput](r, "/", h.decode)
}

type handlers struct{ svc svc.Service }

func (h *handlers) decode(r *stdhttp.Request, in domain.DecodeInput) (any, error) {
	return h.svc.Decode(r.Context(), in)
}
