package repokit

import (
	"testing"

	"github.com/FFlyyy/bot/internal/platform/testkit"
)

type boundRepo struct{ q Queryer }

type repoBinder struct{}

func (repoBinder) Bind(q Queryer) boundRepo { return boundRepo{q: q} }

func TestMustBind(t *testing.T) {
	var log []string
	q := recQ{log: &log}

	got := MustBind[boundRepo](repoBinder{}, q)
	if got.q != q {
		t.Fatalf("binder should receive the given queryer")
	}

	testkit.MustPanic(t, func() { MustBind[boundRepo](repoBinder{}, nil) })
}
