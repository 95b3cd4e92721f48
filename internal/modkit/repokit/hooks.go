package repokit

import "context"

// BeginHook runs at the start of a transaction with the tx bound Queryer
type BeginHook func(ctx context.Context, q Queryer) error

// WithBeginHooks wraps a TxRunner and runs hooks before fn inside the same tx
func WithBeginHooks(inner TxRunner, hooks ...BeginHook) TxRunner {
	return hookedTx{TxRunner: inner, hooks: hooks}
}

// hookedTx only intercepts Tx; plain Exec and Query go straight to the pool
type hookedTx struct {
	TxRunner
	hooks []BeginHook
}

// Tx starts a tx on the inner runner then runs all hooks before fn
func (h hookedTx) Tx(ctx context.Context, fn func(q Queryer) error) error {
	return h.TxRunner.Tx(ctx, func(q Queryer) error {
		for _, hk := range h.hooks {
			if err := hk(ctx, q); err != nil {
				return err
			}
		}
		return fn(q)
	})
}

// AdvisoryLock holds a transaction scoped Postgres advisory lock on key
//
// Processes that share a database serialise on the same key until commit.
func AdvisoryLock(key int64) BeginHook {
	return func(ctx context.Context, q Queryer) error {
		_, err := q.Exec(ctx, "select pg_advisory_xact_lock($1)", key)
		return err
	}
}
