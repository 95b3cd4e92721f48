package httpkit

import "net/http"

// Get mounts a handler that reads only the request (path, query, headers)
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Call(h))
}

// PostJSON mounts a handler that takes a decoded and validated JSON body
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, JSON(h))
}
