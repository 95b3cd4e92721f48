// Package module exposes snowflake as a modkit module
package module

import (
	modkit "github.com/FFlyyy/bot/internal/modkit"
	"github.com/FFlyyy/bot/internal/modkit/httpkit"
	str "github.com/FFlyyy/bot/internal/platform/strings"
	snowflakehttp "github.com/FFlyyy/bot/internal/services/api/snowflake/http"
	snowflakesvc "github.com/FFlyyy/bot/internal/services/api/snowflake/service"
)

// Module serves /snowflake and exports the snowflake service port
type Module struct {
	b   modkit.Built
	svc snowflakesvc.Service
}

// New constructs the module; snowflake needs no storage
func New(_ modkit.Deps, opts ...modkit.Option) modkit.Module {
	return &Module{
		b:   modkit.Build([]modkit.Option{modkit.WithName("snowflake"), modkit.WithPrefix("/snowflake")}, opts...),
		svc: snowflakesvc.New(),
	}
}

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { snowflakehttp.Register(rr, m.svc) })
}

// Ports returns the domain.ServicePort
func (m *Module) Ports() any { return m.svc }

// Name implements modkit.Module
func (m *Module) Name() string { return str.MustString(m.b.Name, "module name") }
