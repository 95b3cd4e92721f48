// Package module wires command auditing into the API using modkit
package module

import (
	"net/http"

	modkit "github.com/FFlyyy/bot/internal/modkit"
	"github.com/FFlyyy/bot/internal/modkit/httpkit"
	str "github.com/FFlyyy/bot/internal/platform/strings"
	audithttp "github.com/FFlyyy/bot/internal/services/api/audit/http"
	auditrepo "github.com/FFlyyy/bot/internal/services/api/audit/repo"
	auditsvc "github.com/FFlyyy/bot/internal/services/api/audit/service"
)

// Module implements the modkit.Module interface
type Module struct {
	b   modkit.Built
	svc auditsvc.Service
}

// New constructs the audit module
//
// Rows go to ClickHouse when deps.CH is set and are discarded otherwise.
func New(deps modkit.Deps, cfg auditsvc.Config, opts ...modkit.Option) *Module {
	var r auditrepo.Repo = auditrepo.Null{}
	if deps.CH != nil {
		r = auditrepo.NewCH(deps.CH)
	}
	return &Module{
		b:   modkit.Build([]modkit.Option{modkit.WithName("audit"), modkit.WithPrefix("/usage")}, opts...),
		svc: auditsvc.New(r, cfg),
	}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { audithttp.Register(rr, m.svc) })
}

// Middleware records API requests through this module's recorder
func (m *Module) Middleware(base string) func(http.Handler) http.Handler {
	return audithttp.Middleware(m.svc, base)
}

// Ports returns the audit Ports
func (m *Module) Ports() any { return Ports{Recorder: m.svc, Usage: m.svc, Flusher: m.svc} }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.b.Name, "module name") }
