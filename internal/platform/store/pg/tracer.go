package pg

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/FFlyyy/bot/internal/platform/logger"
)

// QueryEvent describes one finished statement
type QueryEvent struct {
	SQL     string
	Args    []any
	Elapsed time.Duration
	Err     error
}

// QueryTracer observes statements run through the store
type QueryTracer interface {
	OnQuery(ctx context.Context, ev QueryEvent)
}

// LogTracer logs every statement, at warn once it takes Slow or longer
type LogTracer struct {
	log  logger.Logger
	slow time.Duration
}

// NewLogTracer logs regardless of the root level; LOG_SQL is an explicit opt in
func NewLogTracer(log logger.Logger, slow time.Duration) *LogTracer {
	return &LogTracer{
		log:  log.Level(zerolog.DebugLevel).With().Str("component", "pg").Logger(),
		slow: slow,
	}
}

// OnQuery implements QueryTracer
func (t *LogTracer) OnQuery(_ context.Context, ev QueryEvent) {
	slow := t.slow > 0 && ev.Elapsed >= t.slow
	evt := t.log.Info()
	if slow {
		evt = t.log.Warn()
	}
	evt.Str("sql", strings.Join(strings.Fields(ev.SQL), " ")).
		Interface("args", ev.Args).
		Dur("elapsed", ev.Elapsed).
		Bool("slow", slow).
		Err(ev.Err).
		Msg("pg query")
}
