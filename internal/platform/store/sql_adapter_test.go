package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/FFlyyy/bot/internal/platform/store/pg"
)

type fakeTracer struct{ got []pg.QueryEvent }

func (f *fakeTracer) OnQuery(_ context.Context, ev pg.QueryEvent) { f.got = append(f.got, ev) }

type fakeRow struct{ err error }

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*string) = "https://example.com"
	return nil
}

type fakeRows struct {
	pgx.Rows
	cols []string
}

func (r fakeRows) FieldDescriptions() []pgconn.FieldDescription {
	out := make([]pgconn.FieldDescription, len(r.cols))
	for i, c := range r.cols {
		out[i] = pgconn.FieldDescription{Name: c}
	}
	return out
}

// fakePgx answers every statement with canned results
type fakePgx struct {
	execErr  error
	queryErr error
	rowErr   error
}

func (f fakePgx) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag("DELETE 1"), f.execErr
}

func (f fakePgx) Query(context.Context, string, ...any) (pgx.Rows, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return fakeRows{cols: []string{"url", "destination"}}, nil
}

func (f fakePgx) QueryRow(context.Context, string, ...any) pgx.Row { return fakeRow{err: f.rowErr} }

// stepClock advances by step on every call
func stepClock(step time.Duration) func() time.Time {
	t := time.Unix(1_700_000_000, 0)
	return func() time.Time {
		now := t
		t = t.Add(step)
		return now
	}
}

func TestQueries_TracesEachStatement(t *testing.T) {
	tr := &fakeTracer{}
	q := queries{q: fakePgx{}, traced: traced{tracer: tr, now: stepClock(2 * time.Millisecond)}}
	ctx := context.Background()

	ct, err := q.Exec(ctx, "delete from unfurl_cache where url = $1", "https://a")
	if err != nil || ct.RowsAffected() != 1 {
		t.Fatalf("Exec = %v, %v", ct, err)
	}

	var dest string
	if err := q.QueryRow(ctx, "select destination from unfurl_cache where url = $1", "https://a").Scan(&dest); err != nil {
		t.Fatalf("QueryRow: %v", err)
	}
	if dest != "https://example.com" {
		t.Fatalf("scan dest %q", dest)
	}

	rs, err := q.Query(ctx, "select url, destination from unfurl_cache")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if diff := cmp.Diff([]string{"url", "destination"}, rs.Columns()); diff != "" {
		t.Fatalf("columns (-want +got):\n%s", diff)
	}

	if len(tr.got) != 3 {
		t.Fatalf("want 3 events, got %d", len(tr.got))
	}
	if ev := tr.got[0]; ev.Elapsed != 2*time.Millisecond || ev.Args[0] != "https://a" {
		t.Fatalf("exec event %+v", ev)
	}
}

func TestQueries_ReportsErrors(t *testing.T) {
	tr := &fakeTracer{}
	boom := errors.New("conn reset")
	q := queries{
		q:      fakePgx{execErr: boom, queryErr: boom, rowErr: pgx.ErrNoRows},
		traced: traced{tracer: tr, now: stepClock(10 * time.Millisecond)},
	}
	ctx := context.Background()

	if _, err := q.Exec(ctx, "insert"); !errors.Is(err, boom) {
		t.Fatalf("Exec err %v", err)
	}
	if rs, err := q.Query(ctx, "select"); rs != nil || !errors.Is(err, boom) {
		t.Fatalf("Query = %v, %v", rs, err)
	}
	var s string
	if err := q.QueryRow(ctx, "select").Scan(&s); !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("QueryRow err %v", err)
	}

	for i, ev := range tr.got {
		if ev.Elapsed != 10*time.Millisecond || ev.Err == nil {
			t.Fatalf("event %d should carry the elapsed time and error: %+v", i, ev)
		}
	}
}

func TestQueries_NoTracer(t *testing.T) {
	q := queries{q: fakePgx{}, traced: traced{now: time.Now}}
	if _, err := q.Exec(context.Background(), "select 1"); err != nil {
		t.Fatalf("Exec without tracer: %v", err)
	}
}
