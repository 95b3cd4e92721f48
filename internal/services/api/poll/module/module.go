// Package module exposes poll as a modkit module
package module

import (
	modkit "github.com/FFlyyy/bot/internal/modkit"
	"github.com/FFlyyy/bot/internal/modkit/httpkit"
	str "github.com/FFlyyy/bot/internal/platform/strings"
	pollhttp "github.com/FFlyyy/bot/internal/services/api/poll/http"
	pollsvc "github.com/FFlyyy/bot/internal/services/api/poll/service"
)

// Module serves /polls and exports the poll service port
type Module struct {
	b   modkit.Built
	svc pollsvc.Service
}

// New constructs the module; poll needs no storage
func New(_ modkit.Deps, opts ...modkit.Option) modkit.Module {
	return &Module{
		b:   modkit.Build([]modkit.Option{modkit.WithName("poll"), modkit.WithPrefix("/polls")}, opts...),
		svc: pollsvc.New(),
	}
}

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { pollhttp.Register(rr, m.svc) })
}

// Ports returns the domain.ServicePort
func (m *Module) Ports() any { return m.svc }

// Name implements modkit.Module
func (m *Module) Name() string { return str.MustString(m.b.Name, "module name") }
