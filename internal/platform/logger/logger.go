// Package logger holds the process-wide zerolog logger and request-scoped children
package logger

import (
	"context"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"

	"github.com/FFlyyy/bot/internal/core/version"
)

// Logger is the project-wide logging type
type Logger = zerolog.Logger

// Options configures the root logger
type Options struct {
	Level      string
	Format     string // "json" or "console"
	Service    string
	Writer     io.Writer
	WithCaller bool
}

// FromEnv reads LOG_LEVEL, LOG_FORMAT, LOG_SERVICE and LOG_CALLER
//
// It reads os.Getenv directly since the config package logs through this one.
func FromEnv() Options {
	env := func(k, def string) string {
		if v := strings.TrimSpace(os.Getenv("LOG_" + k)); v != "" {
			return v
		}
		return def
	}
	caller, _ := strconv.ParseBool(env("CALLER", "false"))
	return Options{
		Level:      env("LEVEL", "debug"),
		Format:     strings.ToLower(env("FORMAT", "console")),
		Service:    env("SERVICE", version.Info().Service),
		WithCaller: caller,
	}
}

var (
	once sync.Once
	root zerolog.Logger
)

// Init builds the root logger; only the first call has any effect
func Init(opt Options) {
	once.Do(func() {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
		zerolog.TimeFieldFormat = time.RFC3339Nano
		root = build(opt)
	})
}

func build(opt Options) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(opt.Level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.DebugLevel
	}

	w := opt.Writer
	if w == nil {
		w = os.Stdout
	}
	if opt.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: opt.Writer != nil}
	}

	ctx := zerolog.New(w).Level(lvl).With().Timestamp()
	if opt.Service != "" {
		ctx = ctx.Str("service", opt.Service)
	}
	if opt.WithCaller {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

// Get returns the root logger, building it from the environment on first use
func Get() *Logger {
	Init(FromEnv())
	return &root
}

type ctxKey uint8

const (
	keyRequestID ctxKey = iota
	keyGuildID
)

// WithRequest stores the request and guild ids that C adds to every line
func WithRequest(ctx context.Context, reqID, guildID string) context.Context {
	if reqID != "" {
		ctx = context.WithValue(ctx, keyRequestID, reqID)
	}
	if guildID != "" {
		ctx = context.WithValue(ctx, keyGuildID, guildID)
	}
	return ctx
}

// C returns a child logger carrying the ids stored by WithRequest
func C(ctx context.Context) *Logger {
	b := Get().With()
	if s, _ := ctx.Value(keyRequestID).(string); s != "" {
		b = b.Str("request_id", s)
	}
	if s, _ := ctx.Value(keyGuildID).(string); s != "" {
		b = b.Str("guild_id", s)
	}
	l := b.Logger()
	return &l
}

// Named returns a child logger with a component field
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	l := Get().With().Str("component", component).Logger()
	return &l
}
