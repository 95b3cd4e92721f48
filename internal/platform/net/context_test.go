package net_test

import (
	"context"
	"testing"

	pnet "github.com/FFlyyy/bot/internal/platform/net"
)

func TestContextIDs(t *testing.T) {
	base := context.Background()

	cases := []struct {
		name             string
		req, guild, user string
	}{
		{name: "all set", req: "req-1", guild: "81384788765712384", user: "80351110224678912"},
		{name: "direct message", req: "req-2", user: "80351110224678912"},
		{name: "anonymous", req: "req-3"},
		{name: "empty"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctx := pnet.WithUser(pnet.WithRequest(base, c.req, c.guild), c.user)
			if got := pnet.RequestID(ctx); got != c.req {
				t.Errorf("RequestID = %q, want %q", got, c.req)
			}
			if got := pnet.GuildID(ctx); got != c.guild {
				t.Errorf("GuildID = %q, want %q", got, c.guild)
			}
			if got := pnet.UserID(ctx); got != c.user {
				t.Errorf("UserID = %q, want %q", got, c.user)
			}
		})
	}

	if pnet.WithUser(pnet.WithRequest(base, "", ""), "") != base {
		t.Fatal("empty ids should leave the context untouched")
	}
}
