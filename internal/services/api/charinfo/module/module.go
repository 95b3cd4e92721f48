// Package module exposes charinfo as a modkit module
package module

import (
	modkit "github.com/FFlyyy/bot/internal/modkit"
	"github.com/FFlyyy/bot/internal/modkit/httpkit"
	str "github.com/FFlyyy/bot/internal/platform/strings"
	charinfohttp "github.com/FFlyyy/bot/internal/services/api/charinfo/http"
	charinfosvc "github.com/FFlyyy/bot/internal/services/api/charinfo/service"
)

// Module serves /charinfo and exports the charinfo service port
type Module struct {
	b   modkit.Built
	svc charinfosvc.Service
}

// New constructs the module; charinfo needs no storage
func New(_ modkit.Deps, opts ...modkit.Option) modkit.Module {
	return &Module{
		b:   modkit.Build([]modkit.Option{modkit.WithName("charinfo"), modkit.WithPrefix("/charinfo")}, opts...),
		svc: charinfosvc.New(),
	}
}

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { charinfohttp.Register(rr, m.svc) })
}

// Ports returns the domain.ServicePort
func (m *Module) Ports() any { return m.svc }

// Name implements modkit.Module
func (m *Module) Name() string { return str.MustString(m.b.Name, "module name") }
