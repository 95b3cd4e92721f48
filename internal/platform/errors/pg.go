package errors

import (
	stderrs "errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATEs with their own mapping; anything else falls back to its class
var pgStates = map[string]ErrorCode{
	"23505": ErrorCodeDuplicateKey,
	"23503": ErrorCodeInvalidArgument,
	"23502": ErrorCodeValidation,
	"23514": ErrorCodeValidation,
	"25006": ErrorCodeUnavailable, // read only transaction, e.g. a replica after failover
}

var pgClasses = map[string]ErrorCode{
	"08": ErrorCodeUnavailable,     // connection exception
	"22": ErrorCodeInvalidArgument, // data exception
	"53": ErrorCodeUnavailable,     // insufficient resources
	"57": ErrorCodeUnavailable,     // operator intervention, includes statement timeouts
}

// DBErrorCode maps a *pgconn.PgError anywhere in err's chain; ok is false for other errors
func DBErrorCode(err error) (code ErrorCode, ok bool) {
	var pgErr *pgconn.PgError
	if !stderrs.As(err, &pgErr) {
		return ErrorCodeUnknown, false
	}
	if c, found := pgStates[pgErr.Code]; found {
		return c, true
	}
	if len(pgErr.Code) == 5 {
		if c, found := pgClasses[pgErr.Code[:2]]; found {
			return c, true
		}
	}
	return ErrorCodeDB, true
}

// FromPostgres wraps err as msg with the mapped code, ErrorCodeDB when unmapped
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	code, ok := DBErrorCode(err)
	if !ok {
		code = ErrorCodeDB
	}
	return Wrap(err, code, msg)
}
