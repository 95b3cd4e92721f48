package httpkit

import "net/http"

// MountUnder mounts a subrouter at prefix and applies per-scope middleware
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route(prefix, func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		mount(sub)
	})
}

// MountAPIV1 mounts everything under /api/v1
//
//	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
//	  zen.MountRoutes(api)
//	})
func MountAPIV1(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountUnder(r, "/api/v1", mw, mount)
}
