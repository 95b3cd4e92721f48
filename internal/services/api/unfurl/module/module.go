// Package module wires unfurl into the API using modkit
package module

import (
	"github.com/FFlyyy/bot/internal/adapters/unfurler"
	modkit "github.com/FFlyyy/bot/internal/modkit"
	"github.com/FFlyyy/bot/internal/modkit/httpkit"
	"github.com/FFlyyy/bot/internal/modkit/repokit"
	str "github.com/FFlyyy/bot/internal/platform/strings"
	unfurlhttp "github.com/FFlyyy/bot/internal/services/api/unfurl/http"
	unfurlrepo "github.com/FFlyyy/bot/internal/services/api/unfurl/repo"
	unfurlsvc "github.com/FFlyyy/bot/internal/services/api/unfurl/service"
)

// Module implements the modkit.Module interface
type Module struct {
	b           modkit.Built
	svc         unfurlsvc.Service
	allowBypass bool
}

// New constructs an unfurl module
//
// The cache lives in Postgres when deps.PG is set and in memory otherwise.
func New(deps modkit.Deps, o Options, opts ...modkit.Option) modkit.Module {
	worker := o.Worker
	if worker == nil {
		worker = unfurler.NewClient(unfurler.Options{
			URL:       o.WorkerURL,
			UserAgent: o.UserAgent,
			Timeout:   o.Timeout,
			Attempts:  o.Attempts,
		})
	}
	cache := o.Cache
	if cache == nil {
		if deps.PG != nil {
			cache = repokit.MustBind(unfurlrepo.NewPG(), deps.PG)
		} else {
			cache = unfurlrepo.NewMemory()
		}
	}

	return &Module{
		b:           modkit.Build([]modkit.Option{modkit.WithName("unfurl"), modkit.WithPrefix("/unfurl")}, opts...),
		svc:         unfurlsvc.New(worker, cache),
		allowBypass: o.AllowBypass,
	}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { unfurlhttp.Register(rr, m.svc, m.allowBypass) })
}

// Ports returns the unfurl domain.ServicePort
func (m *Module) Ports() any { return m.svc }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.b.Name, "module name") }
