package http

import (
	"net/http"

	"github.com/FFlyyy/bot/internal/platform/net/http/bind"
)

// JSONHandler decodes and validates a body into T, then wraps fn's result
func JSONHandler[T any](fn func(*http.Request, T) (any, error)) Handler {
	return JSONHandlerNoBody(func(r *http.Request) (any, error) {
		in, err := bind.ParseJSON[T](r)
		if err != nil {
			return nil, err
		}
		return fn(r, in)
	})
}

// JSONHandlerNoBody wraps fn's result in the envelope
//
// A returned Response is written as is so handlers can pick their status.
func JSONHandlerNoBody(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		out, err := fn(r)
		if err != nil {
			return Error(err)
		}
		if resp, ok := out.(Response); ok {
			return resp
		}
		return OK(out)
	})
}
