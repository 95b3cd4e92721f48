// Package config reads settings from environment variables
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/FFlyyy/bot/internal/platform/logger"
)

// Conf is a namespaced view over the environment, e.g. Prefix("BOT_API_")
type Conf struct{ prefix string }

// New creates a root Conf (no prefix)
func New() Conf { return Conf{} }

// Prefix returns a child view with p appended to the current prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) get(key string) (string, string) {
	k := c.prefix + key
	return k, strings.TrimSpace(os.Getenv(k))
}

// may parses key with parse, falling back to def when unset or malformed
func may[T any](c Conf, key string, def T, parse func(string) (T, error)) T {
	k, s := c.get(key)
	if s == "" {
		return def
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Warn().Str("key", k).Str("value", s).Interface("default", def).Msg("invalid config value; using default")
		return def
	}
	return v
}

// MustString panics if key is unset or blank
func (c Conf) MustString(key string) string {
	k, s := c.get(key)
	if s == "" {
		logger.Get().Panic().Str("key", k).Msg("missing required env")
	}
	return s
}

// MayString returns the value or def if unset
func (c Conf) MayString(key, def string) string {
	return may(c, key, def, func(s string) (string, error) { return s, nil })
}

// MayInt returns the value or def if unset or not an integer
func (c Conf) MayInt(key string, def int) int { return may(c, key, def, strconv.Atoi) }

// MayBool returns the value or def if unset or not a bool
func (c Conf) MayBool(key string, def bool) bool { return may(c, key, def, strconv.ParseBool) }

// MayDuration returns the value or def if unset or not a duration like 250ms or 2s
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return may(c, key, def, time.ParseDuration)
}
