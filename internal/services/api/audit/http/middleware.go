package http

import (
	stdhttp "net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	pnet "github.com/FFlyyy/bot/internal/platform/net"
	"github.com/FFlyyy/bot/internal/services/api/audit/domain"
)

// skipped route roots are not commands
var skipped = map[string]bool{"meta": true, "usage": true, "docs": true}

type statusWriter struct {
	stdhttp.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Middleware records every routed API request as an invocation
func Middleware(rec domain.Recorder, base string) func(stdhttp.Handler) stdhttp.Handler {
	return func(next stdhttp.Handler) stdhttp.Handler {
		return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
			sw := &statusWriter{ResponseWriter: w, status: stdhttp.StatusOK}
			start := time.Now()

			next.ServeHTTP(sw, r)

			cmd := CommandName(r, base)
			if cmd == "" {
				return
			}
			inv := domain.Invocation{
				At:      start,
				Command: cmd,
				Surface: domain.SurfaceAPI,
				GuildID: pnet.GuildID(r.Context()),
				UserID:  pnet.UserID(r.Context()),
				OK:      sw.status < 400,
				Latency: time.Since(start),
			}
			if !inv.OK {
				inv.ErrorCode = strconv.Itoa(sw.status)
			}
			rec.Record(r.Context(), inv)
		})
	}
}

// CommandName derives the command from the matched chi route, e.g. "zen/search"
func CommandName(r *stdhttp.Request, base string) string {
	rc := chi.RouteContext(r.Context())
	if rc == nil {
		return ""
	}
	p := rc.RoutePattern()
	if p == "" {
		return ""
	}
	p = strings.TrimPrefix(p, base)
	p = strings.Trim(p, "/")
	p = strings.TrimSuffix(p, "/*")
	if p == "" {
		return ""
	}
	if root, _, _ := strings.Cut(p, "/"); skipped[root] {
		return ""
	}
	return p
}
