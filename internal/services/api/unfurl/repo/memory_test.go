package repo

import (
	"context"
	"testing"
	"time"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	exp := time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)

	_ = m.Put(ctx, Entry{URL: "u", Destination: "d", Depth: 2, ExpiresAt: exp})
	e, ok, err := m.Get(ctx, "u")
	if err != nil || !ok || e.Destination != "d" {
		t.Fatalf("Get: %+v ok=%v err=%v", e, ok, err)
	}
	if e.Expired(exp.Add(-time.Second)) || !e.Expired(exp) {
		t.Fatalf("expiry boundary wrong")
	}
	_ = m.Delete(ctx, "u")
	if m.Len() != 0 {
		t.Fatalf("delete left %d entries", m.Len())
	}
}
