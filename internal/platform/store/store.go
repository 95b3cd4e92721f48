// Package store opens the optional Postgres and ClickHouse backends behind small seams
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/FFlyyy/bot/internal/platform/logger"
)

// Store holds whichever backends were configured; a nil seam means disabled
type Store struct {
	Log logger.Logger

	PG TxRunner
	CH Clickhouse
}

// Row is a single result row
type Row interface {
	Scan(dest ...any) error
}

// Rows is a result set; callers must Close it
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
	Columns() []string
}

// CommandTag reports what an Exec did
type CommandTag interface {
	String() string
	RowsAffected() int64
}

// RowQuerier is the SQL surface repos are written against
type RowQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// TxRunner is a RowQuerier that can also run fn inside a transaction
type TxRunner interface {
	RowQuerier
	Tx(ctx context.Context, fn func(q RowQuerier) error) error
}

// Clickhouse is the columnar seam used for append only event data
type Clickhouse interface {
	Exec(ctx context.Context, sql string, args ...any) error
	Insert(ctx context.Context, table string, data any) error
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	Close() error
}

// Pinger is implemented by seams that can report liveness
type Pinger interface{ Ping(context.Context) error }

// Option customises Open
type Option func(*Store)

// WithLogger sets the logger SQL tracing writes to
func WithLogger(log logger.Logger) Option {
	return func(s *Store) { s.Log = log }
}

// Open connects the backends enabled in cfg; on error nothing is left open
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{}
	for _, o := range opts {
		o(s)
	}

	if cfg.PG.Enabled {
		pgr, err := openPG(ctx, cfg, s.Log)
		if err != nil {
			return nil, err
		}
		s.PG = pgr
	}
	if cfg.CH.Enabled {
		chc, err := openCH(ctx, cfg)
		if err != nil {
			_ = s.Close(ctx)
			return nil, err
		}
		s.CH = chc
	}
	return s, nil
}

func (s *Store) seams() []struct {
	name string
	v    any
} {
	return []struct {
		name string
		v    any
	}{{"pg", s.PG}, {"ch", s.CH}}
}

// Guard pings every configured seam that supports it
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("store: nil")
	}
	var errs []error
	for _, seam := range s.seams() {
		p, ok := seam.v.(Pinger)
		if !ok {
			continue
		}
		if err := p.Ping(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", seam.name, err))
		}
	}
	return errors.Join(errs...)
}

// Close releases every open backend
func (s *Store) Close(context.Context) error {
	var errs []error
	for _, seam := range s.seams() {
		if c, ok := seam.v.(interface{ Close() error }); ok {
			errs = append(errs, c.Close())
		}
	}
	return errors.Join(errs...)
}
