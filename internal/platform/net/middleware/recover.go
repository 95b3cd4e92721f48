package middleware

import (
	"net/http"
	"runtime/debug"

	perr "github.com/FFlyyy/bot/internal/platform/errors"
	"github.com/FFlyyy/bot/internal/platform/logger"
	pnet "github.com/FFlyyy/bot/internal/platform/net"
)

// Recover turns a handler panic into a logged 500 envelope written by write
func Recover(write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				// chi uses this sentinel to abort a response; it must keep unwinding
				if v == http.ErrAbortHandler {
					panic(v)
				}
				reqID := pnet.RequestID(r.Context())
				logger.Named("http").Error().
					Str("request_id", reqID).
					Interface("panic", v).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				status, body := pnet.Error(perr.PanicErrf("internal error"), reqID)
				write(w, status, body)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
