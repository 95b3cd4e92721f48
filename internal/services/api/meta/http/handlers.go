// Package http serves health, readiness, build and command catalog endpoints
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/FFlyyy/bot/internal/core/version"
	"github.com/FFlyyy/bot/internal/modkit/httpkit"
)

// Pinger is satisfied by stores that can report liveness
type Pinger interface {
	Ping(context.Context) error
}

// Command describes one command exposed by the bot
type Command struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Surfaces    []string `json:"surfaces"`
}

// Deps are the handler dependencies; PG and CH stay nil when not configured
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	PG          any
	CH          any
	Commands    []Command
}

// HealthResponse reports liveness and uptime
type HealthResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
	Started string `json:"started"`
	Uptime  int64  `json:"uptime_seconds"`
	Since   string `json:"since"`
}

// ReadyCheck is one dependency probe: ok, fail, skipped or unknown
type ReadyCheck struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// ReadyResponse is ok, degraded (an unprobeable store) or fail
type ReadyResponse struct {
	Status string       `json:"status"`
	Checks []ReadyCheck `json:"checks"`
}

const readyTimeout = 2 * time.Second

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	if d.Commands == nil {
		d.Commands = []Command{}
	}
	httpkit.Get(r, "/health", func(*http.Request) (any, error) { return health(d, time.Now()), nil })
	httpkit.Get(r, "/ready", func(req *http.Request) (any, error) { return ready(req.Context(), d), nil })
	httpkit.Get(r, "/version", func(*http.Request) (any, error) { return version.Info(), nil })
	httpkit.Get(r, "/commands", func(*http.Request) (any, error) { return d.Commands, nil })
}

func health(d Deps, now time.Time) HealthResponse {
	return HealthResponse{
		OK:      true,
		Service: d.ServiceName,
		Started: d.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(now.Sub(d.StartedAt) / time.Second),
		Since:   humanize.RelTime(d.StartedAt, now, "ago", "from now"),
	}
}

func ready(ctx context.Context, d Deps) ReadyResponse {
	ctx, cancel := context.WithTimeout(ctx, readyTimeout)
	defer cancel()

	targets := []struct {
		name string
		dep  any
	}{{"pg", d.PG}, {"ch", d.CH}}
	checks := make([]ReadyCheck, len(targets))

	var g errgroup.Group
	for i, t := range targets {
		g.Go(func() error {
			checks[i] = probe(ctx, t.name, t.dep)
			return nil
		})
	}
	_ = g.Wait()

	// skipped stores do not degrade readiness
	status := "ok"
	for _, c := range checks {
		switch {
		case c.Status == "fail":
			status = "fail"
		case c.Status == "unknown" && status == "ok":
			status = "degraded"
		}
	}
	return ReadyResponse{Status: status, Checks: checks}
}

func probe(ctx context.Context, name string, dep any) ReadyCheck {
	if dep == nil {
		return ReadyCheck{Name: name, Status: "skipped"}
	}
	p, ok := dep.(Pinger)
	if !ok {
		return ReadyCheck{Name: name, Status: "unknown"}
	}
	if err := p.Ping(ctx); err != nil {
		return ReadyCheck{Name: name, Status: "fail", Error: err.Error()}
	}
	return ReadyCheck{Name: name, Status: "ok"}
}
