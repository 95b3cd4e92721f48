package time

import (
	"testing"
	"time"
)

func TestPtr(t *testing.T) {
	if Ptr(time.Time{}) != nil {
		t.Fatalf("zero time should be nil")
	}
	now := time.Unix(10, 0)
	if p := Ptr(now); p == nil || !p.Equal(now) {
		t.Fatalf("Ptr(now) = %v", p)
	}
}

func TestDiscord(t *testing.T) {
	at := time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := Since(at); got != "<t:1420070400:R>" {
		t.Fatalf("Since = %q", got)
	}
	if got := Discord(at.Add(1500*time.Millisecond), LongDateTime); got != "<t:1420070401:F>" {
		t.Fatalf("Discord = %q", got)
	}
}
