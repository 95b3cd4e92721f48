package modkit

import (
	"net/http"

	"github.com/FFlyyy/bot/internal/modkit/httpkit"
)

// Built is the resolved option set a module keeps around
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler

	extra []func(httpkit.Router)
}

// Build applies defaults first and then caller options
func Build(defaults []Option, opts ...Option) Built {
	var c buildCfg
	for _, o := range append(append([]Option(nil), defaults...), opts...) {
		o(&c)
	}
	return Built{
		Name:   c.name,
		Prefix: c.prefix,
		Mw:     append([]func(http.Handler) http.Handler(nil), c.mw...),
		extra:  append([]func(httpkit.Router)(nil), c.extra...),
	}
}

// Mount registers the module's routes and any extras under its prefix
func (b Built) Mount(r httpkit.Router, register func(httpkit.Router)) {
	httpkit.MountUnder(r, b.Prefix, b.Mw, func(sub httpkit.Router) {
		register(sub)
		for _, fn := range b.extra {
			fn(sub)
		}
	})
}
