package config

import (
	"testing"
	"time"

	kit "github.com/FFlyyy/bot/internal/platform/testkit"
)

func TestPrefix_Nests(t *testing.T) {
	t.Setenv("BOT_DISCORD_AUDIT_BATCH", "64")
	c := New().Prefix("BOT_").Prefix("DISCORD_")
	if k, v := c.get("AUDIT_BATCH"); k != "BOT_DISCORD_AUDIT_BATCH" || v != "64" {
		t.Fatalf("get = %q %q", k, v)
	}
}

func TestMustString(t *testing.T) {
	t.Setenv("BOT_DISCORD_TOKEN", "  abc.def ")
	c := New().Prefix("BOT_DISCORD_")
	if got := c.MustString("TOKEN"); got != "abc.def" {
		t.Fatalf("MustString = %q", got)
	}

	t.Setenv("BOT_DISCORD_BLANK", "   ")
	kit.MustPanic(t, func() { _ = c.MustString("BLANK") })
	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
}

func TestMay(t *testing.T) {
	t.Setenv("U_WORKER_URL", " http://worker:8080 ")
	t.Setenv("U_ATTEMPTS", "3")
	t.Setenv("U_BAD_INT", "three")
	t.Setenv("U_BYPASS", "true")
	t.Setenv("U_BAD_BOOL", "sometimes")
	t.Setenv("U_TIMEOUT", "750ms")
	t.Setenv("U_BAD_TIMEOUT", "soon")
	c := New().Prefix("U_")

	if got := c.MayString("WORKER_URL", "x"); got != "http://worker:8080" {
		t.Errorf("MayString = %q", got)
	}
	if got := c.MayString("NOPE", "def"); got != "def" {
		t.Errorf("MayString default = %q", got)
	}
	if got := c.MayInt("ATTEMPTS", 1); got != 3 {
		t.Errorf("MayInt = %d", got)
	}
	if got := c.MayInt("BAD_INT", 1); got != 1 {
		t.Errorf("MayInt malformed = %d", got)
	}
	if !c.MayBool("BYPASS", false) || !c.MayBool("BAD_BOOL", true) || c.MayBool("NOPE", false) {
		t.Error("MayBool")
	}
	if got := c.MayDuration("TIMEOUT", time.Second); got != 750*time.Millisecond {
		t.Errorf("MayDuration = %v", got)
	}
	if got := c.MayDuration("BAD_TIMEOUT", time.Second); got != time.Second {
		t.Errorf("MayDuration malformed = %v", got)
	}
}
