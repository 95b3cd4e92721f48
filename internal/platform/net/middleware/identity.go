package middleware

import (
	"net/http"
	"regexp"

	perr "github.com/FFlyyy/bot/internal/platform/errors"
	pnet "github.com/FFlyyy/bot/internal/platform/net"
)

// Headers a trusted caller (usually the discord gateway process) sets to attribute a request
const (
	HeaderUserID  = "X-Discord-User-ID"
	HeaderGuildID = "X-Discord-Guild-ID"
)

var snowflakeRe = regexp.MustCompile(`^[0-9]{15,20}$`)

// IdentityPort extracts the calling discord user and guild from a request
type IdentityPort interface {
	Parse(r *http.Request) (userID string, guildID string, err error)
}

// HeaderIdentity reads HeaderUserID and HeaderGuildID; both are optional
type HeaderIdentity struct{}

// Parse implements IdentityPort
func (HeaderIdentity) Parse(r *http.Request) (string, string, error) {
	uid := r.Header.Get(HeaderUserID)
	gid := r.Header.Get(HeaderGuildID)
	if uid != "" && !snowflakeRe.MatchString(uid) {
		return "", "", perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s must be a discord snowflake id", HeaderUserID), HeaderUserID)
	}
	if gid != "" && !snowflakeRe.MatchString(gid) {
		return "", "", perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s must be a discord snowflake id", HeaderGuildID), HeaderGuildID)
	}
	return uid, gid, nil
}

// Identity annotates the request context with the caller; nil port passes through
func Identity(p IdentityPort, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}
			uid, gid, err := p.Parse(r)
			if err != nil {
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			ctx := pnet.WithUser(r.Context(), uid)
			ctx = pnet.WithRequest(ctx, pnet.RequestID(ctx), gid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
