package repokit

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/FFlyyy/bot/internal/platform/store"
)

// recQ records every statement it sees; tx marks statements issued inside Tx
type recQ struct {
	log *[]string
	tx  bool
}

func (r recQ) note(sql string) {
	if r.tx {
		sql = "tx:" + sql
	}
	*r.log = append(*r.log, sql)
}

func (r recQ) Exec(_ context.Context, sql string, _ ...any) (store.CommandTag, error) {
	r.note(sql)
	return nil, nil
}

func (r recQ) Query(_ context.Context, sql string, _ ...any) (store.Rows, error) {
	r.note(sql)
	return nil, nil
}

func (r recQ) QueryRow(_ context.Context, sql string, _ ...any) store.Row {
	r.note(sql)
	return nil
}

// recTx is a TxRunner whose Tx hands fn a tx-marked recQ
type recTx struct {
	recQ
	txErr error
}

func (r recTx) Tx(_ context.Context, fn func(q Queryer) error) error {
	if r.txErr != nil {
		return r.txErr
	}
	return fn(recQ{log: r.log, tx: true})
}

func TestWithBeginHooks_RunsHooksBeforeFn(t *testing.T) {
	t.Parallel()

	var log []string
	inner := recTx{recQ: recQ{log: &log}}
	tx := WithBeginHooks(inner, AdvisoryLock(42), func(ctx context.Context, q Queryer) error {
		_, err := q.Exec(ctx, "set local lock_timeout = '5s'")
		return err
	})

	err := WithTx(context.Background(), tx, func(q Queryer) error {
		_, err := q.Exec(context.Background(), "create table t ()")
		return err
	})
	if err != nil {
		t.Fatalf("WithTx: %v", err)
	}

	want := []string{
		"tx:select pg_advisory_xact_lock($1)",
		"tx:set local lock_timeout = '5s'",
		"tx:create table t ()",
	}
	if diff := cmp.Diff(want, log); diff != "" {
		t.Fatalf("statements (-want +got):\n%s", diff)
	}
}

func TestWithBeginHooks_HookErrorSkipsFn(t *testing.T) {
	t.Parallel()

	var log []string
	boom := errors.New("lock wait")
	tx := WithBeginHooks(recTx{recQ: recQ{log: &log}}, func(context.Context, Queryer) error { return boom })

	called := false
	err := tx.Tx(context.Background(), func(Queryer) error {
		called = true
		return nil
	})
	if !errors.Is(err, boom) || called {
		t.Fatalf("want hook error and no fn call, got err=%v called=%v", err, called)
	}
}

func TestWithBeginHooks_PassThroughOutsideTx(t *testing.T) {
	t.Parallel()

	var log []string
	tx := WithBeginHooks(recTx{recQ: recQ{log: &log}}, AdvisoryLock(1))

	_, _ = tx.Exec(context.Background(), "select 1")
	_, _ = tx.Query(context.Background(), "select 2")
	_ = tx.QueryRow(context.Background(), "select 3")

	if diff := cmp.Diff([]string{"select 1", "select 2", "select 3"}, log); diff != "" {
		t.Fatalf("hooks must not run outside Tx (-want +got):\n%s", diff)
	}
}

func TestWithTx_PropagatesTxRunnerError(t *testing.T) {
	t.Parallel()

	var log []string
	boom := errors.New("begin failed")
	err := WithTx(context.Background(), recTx{recQ: recQ{log: &log}, txErr: boom}, func(Queryer) error {
		t.Fatalf("fn must not run when begin fails")
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("want begin error, got %v", err)
	}
}
