package modkit

import (
	"net/http"

	phttp "github.com/FFlyyy/bot/internal/platform/net/http"
)

// Option mutates build configuration for a module
type Option func(*buildCfg)

type buildCfg struct {
	name   string
	prefix string
	mw     []func(http.Handler) http.Handler
	extra  []func(phttp.Router)
}

// WithName sets the name used in logs and the port registry
func WithName(name string) Option {
	return func(c *buildCfg) { c.name = name }
}

// WithPrefix mounts a module under a path prefix
func WithPrefix(prefix string) Option {
	return func(c *buildCfg) { c.prefix = prefix }
}

// WithMiddlewares attaches per module middleware, applied in order
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(c *buildCfg) { c.mw = append(c.mw, mw...) }
}

// WithRoutes registers extra endpoints next to the module's own
func WithRoutes(fn func(phttp.Router)) Option {
	return func(c *buildCfg) {
		if fn != nil {
			c.extra = append(c.extra, fn)
		}
	}
}
