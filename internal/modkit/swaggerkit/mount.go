// Package swaggerkit serves Swagger UI over an OpenAPI document derived from the mounted routes
package swaggerkit

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	phttp "github.com/FFlyyy/bot/internal/platform/net/http"
)

// Mount the Swagger UI and JSON spec if enabled
//
// Call it after the API routes are mounted; the document is rebuilt per request from r.
func Mount(r phttp.Router, basePath string, enabled bool) {
	if !enabled {
		return
	}
	r.Get("/api/docs", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/api/docs/", http.StatusPermanentRedirect)
	})
	r.Get("/api/docs/doc.json", serveDocJSON(r.Mux(), basePath))
	r.Handle("/api/docs/*", httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL("/api/docs/doc.json"),
	))
}
