package errors

import (
	stderrs "errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func pg(code string) *pgconn.PgError { return &pgconn.PgError{Code: code} }

func TestDBErrorCodeMappings(t *testing.T) {
	cases := []struct {
		code string
		want ErrorCode
	}{
		{"23505", ErrorCodeDuplicateKey},
		{"23503", ErrorCodeInvalidArgument},
		{"23502", ErrorCodeValidation},
		{"23514", ErrorCodeValidation},
		{"22001", ErrorCodeInvalidArgument},
		{"22P02", ErrorCodeInvalidArgument},
		{"25006", ErrorCodeUnavailable},
		{"57P03", ErrorCodeUnavailable},
		{"57014", ErrorCodeUnavailable},
		{"08006", ErrorCodeUnavailable},
		{"53300", ErrorCodeUnavailable},
		{"22003", ErrorCodeInvalidArgument},
		{"40P01", ErrorCodeDB},
		{"XXXXX", ErrorCodeDB},
	}
	for _, c := range cases {
		got, ok := DBErrorCode(fmt.Errorf("wrapped: %w", pg(c.code)))
		if !ok {
			t.Fatalf("expected ok for PgError code %s", c.code)
		}
		if got != c.want {
			t.Fatalf("DBErrorCode(%s) = %v, want %v", c.code, got, c.want)
		}
	}

	if _, ok := DBErrorCode(stderrs.New("nope")); ok {
		t.Fatalf("DBErrorCode should return ok=false for non-pg error")
	}
}

func TestFromPostgres(t *testing.T) {
	if FromPostgres(nil, "x") != nil {
		t.Fatalf("FromPostgres(nil) should be nil")
	}

	err := FromPostgres(pg("57P03"), "unfurl cache get")
	if CodeOf(err) != ErrorCodeUnavailable {
		t.Fatalf("FromPostgres code = %v", CodeOf(err))
	}
	var pe *pgconn.PgError
	if !stderrs.As(err, &pe) {
		t.Fatalf("the pg error should stay reachable")
	}

	if CodeOf(FromPostgres(stderrs.New("conn reset"), "x")) != ErrorCodeDB {
		t.Fatalf("non-pg errors map to DB")
	}
}
