// Package module exposes zen as a modkit module
package module

import (
	modkit "github.com/FFlyyy/bot/internal/modkit"
	"github.com/FFlyyy/bot/internal/modkit/httpkit"
	str "github.com/FFlyyy/bot/internal/platform/strings"
	zenhttp "github.com/FFlyyy/bot/internal/services/api/zen/http"
	zensvc "github.com/FFlyyy/bot/internal/services/api/zen/service"
)

// Module serves /zen and exports the zen service port
type Module struct {
	b   modkit.Built
	svc zensvc.Service
}

// New constructs the module; zen needs no storage
func New(_ modkit.Deps, opts ...modkit.Option) modkit.Module {
	return &Module{
		b:   modkit.Build([]modkit.Option{modkit.WithName("zen"), modkit.WithPrefix("/zen")}, opts...),
		svc: zensvc.New(),
	}
}

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { zenhttp.Register(rr, m.svc) })
}

// Ports returns the domain.ServicePort
func (m *Module) Ports() any { return m.svc }

// Name implements modkit.Module
func (m *Module) Name() string { return str.MustString(m.b.Name, "module name") }
