// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	"github.com/FFlyyy/bot/internal/core/version"
	modkit "github.com/FFlyyy/bot/internal/modkit"
	"github.com/FFlyyy/bot/internal/modkit/httpkit"
	str "github.com/FFlyyy/bot/internal/platform/strings"

	metahttp "github.com/FFlyyy/bot/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	b    modkit.Built
	deps metahttp.Deps
}

// Catalog lists the commands served by this build
var Catalog = []metahttp.Command{
	{Name: "zen", Description: "Show the Zen of Python, one line by index or by search", Surfaces: []string{"api", "discord", "cli"}},
	{Name: "charinfo", Description: "Show unicode names and escapes for up to 50 characters", Surfaces: []string{"api", "discord", "cli"}},
	{Name: "snowflake", Description: "Decode discord snowflake ids into creation times", Surfaces: []string{"api", "discord", "cli"}},
	{Name: "vote", Description: "Build a reaction poll with up to 20 options", Surfaces: []string{"api", "discord", "cli"}},
	{Name: "unfurl", Description: "Follow a URL's redirects to the final destination", Surfaces: []string{"api", "discord", "cli"}},
}

// New constructs the meta module for the HTTP API
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	return NewFor(deps, "api", opts...)
}

// NewFor constructs a meta module reporting as the given process role, e.g. "discord"
func NewFor(deps modkit.Deps, role string, opts ...modkit.Option) modkit.Module {
	d := metahttp.Deps{
		ServiceName: version.Info().Service + "-" + role,
		StartedAt:   time.Now(),
		Commands:    Catalog,
	}
	// typed nils would read as configured
	if deps.PG != nil {
		d.PG = deps.PG
	}
	if deps.CH != nil {
		d.CH = deps.CH
	}
	return &Module{
		b:    modkit.Build([]modkit.Option{modkit.WithName("meta"), modkit.WithPrefix("/meta")}, opts...),
		deps: d,
	}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { metahttp.Register(rr, m.deps) })
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.b.Name, "meta") }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
