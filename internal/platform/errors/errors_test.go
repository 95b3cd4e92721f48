package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCodes_StatusAndName(t *testing.T) {
	cases := []struct {
		code   ErrorCode
		status int
		name   string
	}{
		{ErrorCodeValidation, http.StatusBadRequest, "validation"},
		{ErrorCodeJSON, http.StatusBadRequest, "json"},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity, "invalid_argument"},
		{ErrorCodeForbidden, http.StatusForbidden, "forbidden"},
		{ErrorCodeTooManyRequests, http.StatusTooManyRequests, "too_many_requests"},
		{ErrorCodeNotFound, http.StatusNotFound, "not_found"},
		{ErrorCodeDuplicateKey, http.StatusConflict, "duplicate_key"},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable, "unavailable"},
		{ErrorCodePanic, http.StatusInternalServerError, "panic"},
		{ErrorCode(999), http.StatusInternalServerError, "unknown"},
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.status {
			t.Errorf("HTTPStatusCode(%d) = %d, want %d", c.code, got, c.status)
		}
		if got := c.code.String(); got != c.name {
			t.Errorf("String(%d) = %q, want %q", c.code, got, c.name)
		}
	}
}

func TestError_WrapKeepsCauseAndCode(t *testing.T) {
	cause := stderrs.New("dial tcp: refused")
	err := Wrapf(cause, ErrorCodeUnavailable, "unfurl worker %s", "down")

	if err.Error() != "unfurl worker down: dial tcp: refused" {
		t.Fatalf("message %q", err.Error())
	}
	if !stderrs.Is(err, cause) || Root(fmt.Errorf("outer: %w", err)) != cause {
		t.Fatal("cause lost")
	}
	if !IsCode(fmt.Errorf("outer: %w", err), ErrorCodeUnavailable) || HTTPStatus(err) != http.StatusServiceUnavailable {
		t.Fatal("code lost through fmt wrapping")
	}
	if WrapIf(nil, ErrorCodeDB, "x") != nil || WrapIf(cause, ErrorCodeDB, "x") == nil {
		t.Fatal("WrapIf")
	}

	var nilErr *Error
	if nilErr.Error() != "<nil>" || Root(nil) != nil {
		t.Fatal("nil handling")
	}
}

func TestWireFrom(t *testing.T) {
	tagged := WithField(New(ErrorCodeValidation, "limit must be at most 25"), "limit")
	cases := []struct {
		name string
		err  error
		want Wire
	}{
		{"nil", nil, Wire{}},
		{"ours", tagged, Wire{Code: ErrorCodeValidation, Message: "limit must be at most 25", Field: "limit"}},
		{"wrapped message stays user facing", Wrap(stderrs.New("pq: boom"), ErrorCodeDB, "unfurl cache get"), Wire{Code: ErrorCodeDB, Message: "unfurl cache get"}},
		{"foreign", stderrs.New("plain"), Wire{Code: ErrorCodeUnknown, Message: "plain"}},
		{"sugar", Forbiddenf("You need the %s role.", "Helpers"), Wire{Code: ErrorCodeForbidden, Message: "You need the Helpers role."}},
	}
	for _, c := range cases {
		if diff := cmp.Diff(c.want, WireFrom(c.err)); diff != "" {
			t.Errorf("%s (-want +got):\n%s", c.name, diff)
		}
	}

	plain := stderrs.New("x")
	if WithField(plain, "f") != plain {
		t.Fatal("foreign errors pass through WithField")
	}
	if e, _ := As(tagged); e.Field() != "limit" || e.Code() != ErrorCodeValidation {
		t.Fatalf("accessors %+v", e)
	}
	if CodeOf(Internalf("bug %d", 1)) != ErrorCodeUnknown || CodeOf(PanicErrf("p")) != ErrorCodePanic ||
		CodeOf(JSONErrf("j")) != ErrorCodeJSON || CodeOf(Unavailablef("u")) != ErrorCodeUnavailable {
		t.Fatal("sugar codes")
	}
}
