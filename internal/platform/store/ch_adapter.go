package store

import (
	"context"
	"fmt"

	"github.com/FFlyyy/bot/internal/platform/store/ch"
)

// chAdapter narrows *ch.CH to the Clickhouse seam
type chAdapter struct{ c *ch.CH }

var _ interface {
	Clickhouse
	Pinger
} = chAdapter{}

func (a chAdapter) Exec(ctx context.Context, sql string, args ...any) error {
	return a.c.Exec(ctx, sql, args...)
}

// Insert takes rows as [][]any in table column order
func (a chAdapter) Insert(ctx context.Context, table string, data any) error {
	rows, ok := data.([][]any)
	if !ok {
		return fmt.Errorf("store: clickhouse insert wants [][]any, got %T", data)
	}
	return a.c.Insert(ctx, table, rows)
}

func (a chAdapter) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	rs, err := a.c.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return chRows{rs}, nil
}

func (a chAdapter) Ping(ctx context.Context) error { return a.c.Ping(ctx) }

func (a chAdapter) Close() error { return a.c.Close() }

// chRows drops the Close error the seam does not surface
type chRows struct{ ch.Rows }

func (r chRows) Close() { _ = r.Rows.Close() }
