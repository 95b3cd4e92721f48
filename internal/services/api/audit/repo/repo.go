// Package repo provides clickhouse access for command audit rows
package repo

import (
	"context"
	"errors"
	"time"

	"github.com/FFlyyy/bot/internal/platform/store"
	"github.com/FFlyyy/bot/internal/services/api/audit/domain"
)

// Table holds one row per handled command
const Table = "command_invocations"

// Schema creates Table
const Schema = `
CREATE TABLE IF NOT EXISTS command_invocations (
	at         DateTime64(3, 'UTC'),
	command    LowCardinality(String),
	surface    LowCardinality(String),
	guild_id   String,
	user_id    String,
	ok         UInt8,
	error_code LowCardinality(String),
	latency_ms UInt32
)
ENGINE = MergeTree
ORDER BY (command, at)
TTL toDateTime(at) + INTERVAL 90 DAY
`

// ErrDisabled is returned by Summary when no columnar store is configured
var ErrDisabled = errors.New("audit storage disabled")

// Repo defines the storage contract for audit
type Repo interface {
	Insert(ctx context.Context, rows []domain.Invocation) error
	Summary(ctx context.Context, since time.Time) ([]domain.Usage, error)
}

// CH implements Repo on ClickHouse
type CH struct{ ch store.Clickhouse }

// NewCH binds a Repo to a clickhouse seam
func NewCH(ch store.Clickhouse) *CH { return &CH{ch: ch} }

// EnsureSchema creates the invocations table when missing
func (r *CH) EnsureSchema(ctx context.Context) error { return r.ch.Exec(ctx, Schema) }

// Insert writes rows as one batch
func (r *CH) Insert(ctx context.Context, rows []domain.Invocation) error {
	if len(rows) == 0 {
		return nil
	}
	data := make([][]any, 0, len(rows))
	for _, inv := range rows {
		var ok uint8
		if inv.OK {
			ok = 1
		}
		data = append(data, []any{
			inv.At.UTC(),
			inv.Command,
			string(inv.Surface),
			inv.GuildID,
			inv.UserID,
			ok,
			inv.ErrorCode,
			uint32(inv.Latency.Milliseconds()),
		})
	}
	return r.ch.Insert(ctx, Table, data)
}

// Summary rolls invocations since the given time up per command and surface
func (r *CH) Summary(ctx context.Context, since time.Time) ([]domain.Usage, error) {
	const sql = `
		SELECT
			command,
			surface,
			count()          AS n,
			countIf(ok = 0)  AS errors,
			avg(latency_ms)  AS avg_ms
		FROM command_invocations
		WHERE at >= ?
		GROUP BY command, surface
		ORDER BY n DESC, command ASC
	`
	rs, err := r.ch.Query(ctx, sql, since.UTC())
	if err != nil {
		return nil, err
	}
	defer rs.Close()

	var out []domain.Usage
	for rs.Next() {
		var u domain.Usage
		if err := rs.Scan(&u.Command, &u.Surface, &u.Count, &u.Errors, &u.AvgLatencyMs); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rs.Err()
}

// Null discards rows; used when ClickHouse is disabled
type Null struct{}

// Insert drops rows
func (Null) Insert(context.Context, []domain.Invocation) error { return nil }

// Summary reports ErrDisabled
func (Null) Summary(context.Context, time.Time) ([]domain.Usage, error) { return nil, ErrDisabled }
