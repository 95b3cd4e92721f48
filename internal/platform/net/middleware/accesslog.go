package middleware

import (
	"net/http"
	"time"

	"github.com/FFlyyy/bot/internal/platform/logger"
	pnet "github.com/FFlyyy/bot/internal/platform/net"
)

// AccessLogOptions configures AccessLog
type AccessLogOptions struct {
	// Slow requests log at warn; 0 disables
	Slow time.Duration
	// Logger defaults to the root logger
	Logger *logger.Logger
}

type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// AccessLog writes one structured line per request once the handler returns
func AccessLog(opt AccessLogOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusWriter{ResponseWriter: w}
			start := time.Now()
			next.ServeHTTP(sw, r)
			elapsed := time.Since(start)

			log := opt.Logger
			if log == nil {
				log = logger.Get()
			}
			evt := log.Info()
			if opt.Slow > 0 && elapsed >= opt.Slow {
				evt = log.Warn()
			}
			if sw.status == 0 {
				sw.status = http.StatusOK
			}
			if id := pnet.RequestID(r.Context()); id != "" {
				evt = evt.Str("request_id", id)
			}
			if gid := pnet.GuildID(r.Context()); gid != "" {
				evt = evt.Str("guild_id", gid)
			}
			evt.Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", sw.status).
				Int("bytes", sw.bytes).
				Dur("elapsed", elapsed).
				Msg("request")
		})
	}
}
