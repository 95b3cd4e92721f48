package swaggerkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/go-cmp/cmp"

	phttp "github.com/FFlyyy/bot/internal/platform/net/http"
)

func noop(http.ResponseWriter, *http.Request) {}

func TestMount_DocumentsAPIRoutes(t *testing.T) {
	mux := chi.NewRouter()
	r := phttp.AdaptChi(mux)
	r.Route("/api/v1", func(api phttp.Router) {
		api.Route("/zen", func(z phttp.Router) {
			z.Get("/", noop)
			z.Get("/search", noop)
		})
		api.Route("/vote", func(v phttp.Router) { v.Post("/", noop) })
	})
	r.Get("/debug/ignored", noop)
	Mount(r, "/api/v1", true)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}

	var spec struct {
		OpenAPI string                               `json:"openapi"`
		Paths   map[string]map[string]map[string]any `json:"paths"`
		Tags    []struct{ Name string }              `json:"tags"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &spec); err != nil {
		t.Fatalf("decode: %v", err)
	}

	got := map[string][]string{}
	for p, ops := range spec.Paths {
		for m := range ops {
			got[p] = append(got[p], m)
		}
	}
	want := map[string][]string{"/zen": {"get"}, "/zen/search": {"get"}, "/vote": {"post"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("paths (-want +got):\n%s", diff)
	}
	if _, ok := spec.Paths["/vote"]["post"]["requestBody"]; !ok {
		t.Fatal("POST operations document a body")
	}
	if spec.OpenAPI != "3.0.3" || len(spec.Tags) != 2 || spec.Tags[0].Name != "vote" {
		t.Fatalf("unexpected header %+v", spec)
	}
}

func TestMount_Disabled(t *testing.T) {
	mux := chi.NewRouter()
	Mount(phttp.AdaptChi(mux), "/api/v1", false)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d", rec.Code)
	}
}
