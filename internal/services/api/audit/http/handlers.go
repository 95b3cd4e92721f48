// Package http provides http transport for audit
package http

import (
	stdhttp "net/http"
	"time"

	"github.com/FFlyyy/bot/internal/modkit/httpkit"
	perr "github.com/FFlyyy/bot/internal/platform/errors"
	"github.com/FFlyyy/bot/internal/services/api/audit/domain"
	svc "github.com/FFlyyy/bot/internal/services/api/audit/service"
)

// Register mounts audit endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.usage)
}

type handlers struct{ svc svc.Service }

func (h *handlers) usage(r *stdhttp.Request) (any, error) {
	var in domain.UsageInput
	if raw := r.URL.Query().Get("since"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d < 0 {
			return nil, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "since must be a positive duration like 24h"), "since")
		}
		in.Since = d
	}
	return h.svc.Usage(r.Context(), in)
}
