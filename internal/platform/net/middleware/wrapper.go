// Package middleware holds the HTTP middleware the API stack is built from
package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"

	pstrings "github.com/FFlyyy/bot/internal/platform/strings"
)

// Middleware is the net/http middleware shape
type Middleware = func(http.Handler) http.Handler

// RequestID propagates or mints X-Request-Id
func RequestID() Middleware { return chimw.RequestID }

// RealIP trusts X-Forwarded-For and X-Real-IP
func RealIP() Middleware { return chimw.RealIP }

func NoCache() Middleware { return chimw.NoCache }

func Timeout(d time.Duration) Middleware { return chimw.Timeout(d) }

// Compress gzips/deflates responses at level
func Compress(level int) Middleware { return chimw.Compress(level) }

// Heartbeat answers GET path with 200 before routing
func Heartbeat(path string) Middleware { return chimw.Heartbeat(path) }

// StripSlashes routes /zen/ as /zen
func StripSlashes() Middleware { return chimw.StripSlashes }

// CORSOptions narrows go-chi/cors to what the API configures
type CORSOptions struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	MaxAge         int
}

// CORS allows any origin for GET and POST unless told otherwise
func CORS(o CORSOptions) Middleware {
	return chicors.Handler(chicors.Options{
		AllowedOrigins: pstrings.IfEmpty(o.AllowedOrigins, []string{"*"}),
		AllowedMethods: pstrings.IfEmpty(o.AllowedMethods, []string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		AllowedHeaders: pstrings.IfEmpty(o.AllowedHeaders, []string{
			"Accept", "Content-Type", "X-Request-Id", HeaderUserID, HeaderGuildID,
		}),
		ExposedHeaders: []string{"X-Request-Id", "Retry-After"},
		MaxAge:         o.MaxAge,
	})
}
