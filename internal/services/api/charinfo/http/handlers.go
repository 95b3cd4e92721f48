// Package http provides http transport for charinfo
package http

import (
	stdhttp "net/http"

	"github.com/FFlyyy/bot/internal/modkit/httpkit"
	"github.com/FFlyyy/bot/internal/services/api/charinfo/domain"
	svc "github.com/FFlyyy/bot/internal/services/api/charinfo/service"
)

// Register mounts charinfo endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.DescribeInput](r, "/", h.describe)
}

type handlers struct{ svc svc.Service }

func (h *handlers) describe(r *stdhttp.Request, in domain.DescribeInput) (any, error) {
	return h.svc.Describe(r.Context(), in)
}
