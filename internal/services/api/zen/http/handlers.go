// Package http provides http transport for zen
package http

import (
	stdhttp "net/http"
	"strconv"

	"github.com/FFlyyy/bot/internal/modkit/httpkit"
	perr "github.com/FFlyyy/bot/internal/platform/errors"
	"github.com/FFlyyy/bot/internal/platform/net/http/bind"
	"github.com/FFlyyy/bot/internal/services/api/zen/domain"
	svc "github.com/FFlyyy/bot/internal/services/api/zen/service"
)

// Register mounts zen endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.selectLine)
	httpkit.Get(r, "/search", h.search)
}

type handlers struct{ svc svc.Service }

func (h *handlers) selectLine(r *stdhttp.Request) (any, error) {
	in := domain.SelectInput{Search: r.URL.Query().Get("search")}
	if err := bind.Validate(in); err != nil {
		return nil, err
	}
	return h.svc.Select(r.Context(), in)
}

func (h *handlers) search(r *stdhttp.Request) (any, error) {
	q := r.URL.Query()
	in := domain.SearchInput{Query: q.Get("q")}
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "limit must be an integer"), "limit")
		}
		in.Limit = n
	}
	if err := bind.Validate(in); err != nil {
		return nil, err
	}
	return h.svc.Search(r.Context(), in)
}
