// Package repo provides cache storage for unfurl results
package repo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/FFlyyy/bot/internal/modkit/repokit"
	perr "github.com/FFlyyy/bot/internal/platform/errors"
)

// Repo defines the cache contract for unfurl
type Repo interface {
	Get(ctx context.Context, url string) (Entry, bool, error)
	Put(ctx context.Context, e Entry) error
	Delete(ctx context.Context, url string) error
}

// Entry is one cached destination keyed by the url that was asked for
type Entry struct {
	URL         string
	Destination string
	Depth       int
	ExpiresAt   time.Time
}

// Expired reports whether e is stale at now
func (e Entry) Expired(now time.Time) bool { return !now.Before(e.ExpiresAt) }

// Schema creates the cache table
const Schema = `
create table if not exists unfurl_cache (
	url text primary key,
	destination text not null,
	depth integer not null,
	expires_at timestamptz not null
)
`

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

// EnsureSchema creates the cache table when missing
func EnsureSchema(ctx context.Context, q repokit.Queryer) error {
	_, err := q.Exec(ctx, Schema)
	return err
}

func (r *queries) Get(ctx context.Context, url string) (Entry, bool, error) {
	const sql = `select url, destination, depth, expires_at from unfurl_cache where url = $1`
	var e Entry
	err := r.q.QueryRow(ctx, sql, url).Scan(&e.URL, &e.Destination, &e.Depth, &e.ExpiresAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, perr.FromPostgres(err, "unfurl cache get")
	}
	return e, true, nil
}

func (r *queries) Put(ctx context.Context, e Entry) error {
	const sql = `
insert into unfurl_cache (url, destination, depth, expires_at)
values ($1, $2, $3, $4)
on conflict (url) do update
set destination = excluded.destination, depth = excluded.depth, expires_at = excluded.expires_at
`
	_, err := r.q.Exec(ctx, sql, e.URL, e.Destination, e.Depth, e.ExpiresAt)
	return perr.FromPostgres(err, "unfurl cache put")
}

func (r *queries) Delete(ctx context.Context, url string) error {
	_, err := r.q.Exec(ctx, `delete from unfurl_cache where url = $1`, url)
	return perr.FromPostgres(err, "unfurl cache delete")
}
