package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	phttp "github.com/FFlyyy/bot/internal/platform/net/http"
	"github.com/FFlyyy/bot/internal/platform/net/middleware"
)

// CommonStack is the middleware every versioned route runs behind, outermost first
func CommonStack() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.AccessLog(middleware.AccessLogOptions{Slow: 500 * time.Millisecond}),
		middleware.Recover(phttp.JSON),
		middleware.NoCache(),
		middleware.CORS(middleware.CORSOptions{}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.StripSlashes(),
		middleware.Timeout(30 * time.Second),
	}
}

// Identity attributes requests to the discord caller named in the identity headers
func Identity(p middleware.IdentityPort) func(http.Handler) http.Handler {
	return middleware.Identity(p, phttp.JSON)
}
