// Package net carries request scoped identity across transports
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type ctxKey int

const (
	guildKey ctxKey = iota
	userKey
)

// WithRequest stores the request id (under chi's key) and the guild id; empty values are skipped
func WithRequest(ctx context.Context, reqID, guildID string) context.Context {
	ctx = with(ctx, chimw.RequestIDKey, reqID)
	return with(ctx, guildKey, guildID)
}

// WithUser stores the calling user id
func WithUser(ctx context.Context, userID string) context.Context {
	return with(ctx, userKey, userID)
}

func with(ctx context.Context, key any, v string) context.Context {
	if v == "" {
		return ctx
	}
	return context.WithValue(ctx, key, v)
}

// RequestID is the id set by WithRequest or chi's RequestID middleware
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }

// GuildID is empty for direct messages and non discord callers
func GuildID(ctx context.Context) string { return value(ctx, guildKey) }

func UserID(ctx context.Context) string { return value(ctx, userKey) }

func value(ctx context.Context, k ctxKey) string {
	s, _ := ctx.Value(k).(string)
	return s
}
