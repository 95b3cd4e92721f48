package store

import (
	"context"
	"errors"
	"testing"

	"github.com/FFlyyy/bot/internal/platform/store/ch"
)

func TestCHAdapter_Unconnected(t *testing.T) {
	a := chAdapter{&ch.CH{}}
	ctx := context.Background()

	if err := a.Insert(ctx, "command_invocations", struct{}{}); err == nil {
		t.Fatal("insert should reject a non row shape")
	}
	if err := a.Insert(ctx, "command_invocations", [][]any{}); err != nil {
		t.Fatalf("empty insert is a no-op, got %v", err)
	}
	if err := a.Insert(ctx, "bad table", [][]any{{1}}); !errors.Is(err, ch.ErrBadTable) {
		t.Fatalf("want ErrBadTable, got %v", err)
	}
	if rs, err := a.Query(ctx, "SELECT 1"); err == nil || rs != nil {
		t.Fatalf("want error and nil rows, got %v %#v", err, rs)
	}
	if err := a.Ping(ctx); err == nil {
		t.Fatal("ping without a connection should fail")
	}
	if err := a.Close(); err != nil {
		t.Fatalf("close of an unconnected client: %v", err)
	}
}

type closeRows struct {
	ch.Rows
	closed bool
}

func (r *closeRows) Close() error { r.closed = true; return errors.New("already closed") }

func TestCHRows_CloseSwallowsError(t *testing.T) {
	inner := &closeRows{}
	chRows{inner}.Close()
	if !inner.closed {
		t.Fatal("close not delegated")
	}
}
