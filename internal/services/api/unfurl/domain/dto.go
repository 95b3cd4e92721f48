// Package domain holds DTOs for unfurl http and service contracts
package domain

import "time"

// UnfurlInput asks for the final destination of URL
type UnfurlInput struct {
	URL string `json:"url" validate:"required,url,max=2048" example:"https://bit.ly/3abcdef"`
	// MaxContinues bounds how many times a depth-limited hop is resumed
	MaxContinues int `json:"max_continues" validate:"min=0" example:"1"`
	// UseCache defaults to true when omitted
	UseCache *bool `json:"use_cache,omitempty" example:"true"`
}

// CacheEnabled reports whether cached results may be served
func (in UnfurlInput) CacheEnabled() bool { return in.UseCache == nil || *in.UseCache }

// Result is where an unfurl ended up
//
// Depth is nil when the worker rejected the URL outright. CreatedAt is set only
// for successful lookups and marks when the chain was last followed.
type Result struct {
	URL         string     `json:"url"`
	Destination string     `json:"destination,omitempty"`
	Depth       *int       `json:"depth,omitempty"`
	Error       string     `json:"error,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	Cached      bool       `json:"cached"`
}

// OK reports whether the chain resolved without error
func (r Result) OK() bool { return r.Error == "" && r.Destination != "" }
