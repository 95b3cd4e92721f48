//go:build integration_pg

package store

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/FFlyyy/bot/internal/platform/testkit"
)

func TestPGAdapter_Integration_TxCommitAndRollback(t *testing.T) {
	dsn := testkit.Postgres(t)
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	st, err := Open(ctx, Config{PG: PGConfig{Enabled: true, URL: dsn, MaxConns: 2, LogSQL: true}},
		WithLogger(zerolog.New(io.Discard)))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close(context.Background()) })

	if err := st.Guard(ctx); err != nil {
		t.Fatalf("Guard: %v", err)
	}
	if _, err := st.PG.Exec(ctx, `create table polls_seen (id text primary key)`); err != nil {
		t.Fatalf("create table: %v", err)
	}

	if err := st.PG.Tx(ctx, func(q RowQuerier) error {
		_, err := q.Exec(ctx, `insert into polls_seen (id) values ('kept')`)
		return err
	}); err != nil {
		t.Fatalf("commit: %v", err)
	}

	rollback := errors.New("rollback")
	err = st.PG.Tx(ctx, func(q RowQuerier) error {
		if _, err := q.Exec(ctx, `insert into polls_seen (id) values ('dropped')`); err != nil {
			return err
		}
		return rollback
	})
	if !errors.Is(err, rollback) {
		t.Fatalf("want the fn error back, got %v", err)
	}

	rs, err := st.PG.Query(ctx, `select id from polls_seen order by id`)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	defer rs.Close()
	var ids []string
	for rs.Next() {
		var id string
		if err := rs.Scan(&id); err != nil {
			t.Fatalf("scan: %v", err)
		}
		ids = append(ids, id)
	}
	if len(ids) != 1 || ids[0] != "kept" || rs.Columns()[0] != "id" {
		t.Fatalf("unexpected rows %v", ids)
	}
}
