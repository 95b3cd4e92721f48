package swaggerkit

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/FFlyyy/bot/internal/core/version"
)

func serveDocJSON(mux http.Handler, basePath string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		routes, ok := mux.(chi.Routes)
		if !ok {
			http.Error(w, "routes are not walkable", http.StatusInternalServerError)
			return
		}
		spec, err := buildSpec(routes, basePath)
		if err != nil {
			http.Error(w, "spec build error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// buildSpec lists every GET and POST route under basePath as an OAS3 operation
func buildSpec(routes chi.Routes, basePath string) (map[string]any, error) {
	paths := map[string]any{}
	var tags []string
	seen := map[string]bool{}

	err := chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if method != http.MethodGet && method != http.MethodPost {
			return nil
		}
		rest, ok := strings.CutPrefix(route, basePath)
		if !ok || strings.HasSuffix(rest, "*") {
			return nil
		}
		if len(rest) > 1 {
			rest = strings.TrimSuffix(rest, "/")
		}
		tag := strings.SplitN(strings.TrimPrefix(rest, "/"), "/", 2)[0]
		if !seen[tag] {
			seen[tag] = true
			tags = append(tags, tag)
		}

		node, _ := paths[rest].(map[string]any)
		if node == nil {
			node = map[string]any{}
			paths[rest] = node
		}
		node[strings.ToLower(method)] = operation(method, tag)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(tags)
	tagList := make([]any, len(tags))
	for i, t := range tags {
		tagList[i] = map[string]any{"name": t}
	}

	v := version.Info()
	return map[string]any{
		"openapi": "3.0.3",
		"info":    map[string]any{"title": v.Service + " API", "version": v.Version},
		"servers": []any{map[string]any{"url": basePath}},
		"tags":    tagList,
		"paths":   paths,
		"components": map[string]any{
			"schemas": map[string]any{"Envelope": envelopeSchema()},
		},
	}, nil
}

func operation(method, tag string) map[string]any {
	ref := map[string]any{"$ref": "#/components/schemas/Envelope"}
	body := func(desc string) map[string]any {
		return map[string]any{
			"description": desc,
			"content":     map[string]any{"application/json": map[string]any{"schema": ref}},
		}
	}
	op := map[string]any{
		"tags": []any{tag},
		"responses": map[string]any{
			"200": body("OK"),
			"400": body("Bad Request"),
			"500": body("Internal Server Error"),
		},
	}
	if method == http.MethodPost {
		op["requestBody"] = map[string]any{
			"required": true,
			"content":  map[string]any{"application/json": map[string]any{"schema": map[string]any{"type": "object"}}},
		}
	}
	return op
}

// envelopeSchema mirrors phttp.Envelope
func envelopeSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer", "format": "int32"},
			"status":      map[string]any{"type": "string"},
			"code":        map[string]any{"type": "integer", "format": "int32"},
			"error":       map[string]any{"type": "string"},
			"request_id":  map[string]any{"type": "string"},
			"data":        map[string]any{},
		},
		"required": []any{"status_code", "status"},
	}
}
