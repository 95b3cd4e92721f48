// Package http provides http transport for unfurl
package http

import (
	stdhttp "net/http"

	"github.com/FFlyyy/bot/internal/modkit/httpkit"
	"github.com/FFlyyy/bot/internal/services/api/unfurl/domain"
	svc "github.com/FFlyyy/bot/internal/services/api/unfurl/service"
)

// Register mounts unfurl endpoints on the given router
//
// allowBypass controls whether callers may set use_cache=false.
func Register(r httpkit.Router, s svc.Service, allowBypass bool) {
	h := &handlers{svc: s, allowBypass: allowBypass}
	httpkit.PostJSON[domain.UnfurlInput](r, "/", h.unfurl)
}

type handlers struct {
	svc         svc.Service
	allowBypass bool
}

func (h *handlers) unfurl(r *stdhttp.Request, in domain.UnfurlInput) (any, error) {
	if err := svc.CheckBypass(in, h.allowBypass); err != nil {
		return nil, err
	}
	return h.svc.Unfurl(r.Context(), in)
}
