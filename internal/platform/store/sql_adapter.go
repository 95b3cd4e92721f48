package store

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/FFlyyy/bot/internal/platform/store/pg"
)

// pgxQuerier is the surface pgxpool.Pool and pgx.Tx share
type pgxQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// traced reports each statement to the tracer, if any
type traced struct {
	tracer pg.QueryTracer
	now    func() time.Time
}

func (t traced) emit(ctx context.Context, sql string, args []any, start time.Time, err error) {
	if t.tracer == nil {
		return
	}
	t.tracer.OnQuery(ctx, pg.QueryEvent{SQL: sql, Args: args, Elapsed: t.now().Sub(start), Err: err})
}

// queries implements RowQuerier over the pool or a tx
type queries struct {
	q pgxQuerier
	traced
}

func (x queries) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	start := x.now()
	ct, err := x.q.Exec(ctx, sql, args...)
	x.emit(ctx, sql, args, start, err)
	return ct, err
}

// Query is traced when the result set opens, not when it is drained
func (x queries) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	start := x.now()
	rs, err := x.q.Query(ctx, sql, args...)
	x.emit(ctx, sql, args, start, err)
	if err != nil {
		return nil, err
	}
	return rows{rs}, nil
}

// QueryRow is traced after Scan so the scan error is reported
func (x queries) QueryRow(ctx context.Context, sql string, args ...any) Row {
	start := x.now()
	return row{r: x.q.QueryRow(ctx, sql, args...), after: func(err error) {
		x.emit(ctx, sql, args, start, err)
	}}
}

// pgAdapter implements TxRunner over the pool
type pgAdapter struct {
	queries
	pool *pgxpool.Pool
}

func newPGAdapter(pool *pgxpool.Pool, tracer pg.QueryTracer) *pgAdapter {
	return &pgAdapter{
		queries: queries{q: pool, traced: traced{tracer: tracer, now: time.Now}},
		pool:    pool,
	}
}

func (a *pgAdapter) Ping(ctx context.Context) error { return a.pool.Ping(ctx) }

func (a *pgAdapter) Close() error { a.pool.Close(); return nil }

// Tx commits when fn returns nil and rolls back otherwise
func (a *pgAdapter) Tx(ctx context.Context, fn func(q RowQuerier) error) error {
	return pgx.BeginFunc(ctx, a.pool, func(tx pgx.Tx) error {
		return fn(queries{q: tx, traced: a.traced})
	})
}

type row struct {
	r     pgx.Row
	after func(error)
}

func (x row) Scan(dst ...any) error {
	err := x.r.Scan(dst...)
	if x.after != nil {
		x.after(err)
	}
	return err
}

type rows struct{ pgx.Rows }

func (x rows) Columns() []string {
	f := x.FieldDescriptions()
	out := make([]string, len(f))
	for i := range f {
		out[i] = f[i].Name
	}
	return out
}
