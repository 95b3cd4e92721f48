package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/FFlyyy/bot/internal/platform/config"
	phttp "github.com/FFlyyy/bot/internal/platform/net/http"
)

func hit(h http.Handler, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func header(k string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(k, "1")
			next.ServeHTTP(w, r)
		})
	}
}

func TestAdaptChi_ScopesAndVerbs(t *testing.T) {
	t.Parallel()

	r := phttp.AdaptChi(chi.NewRouter())
	r.Use(header("X-Root"))
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, "ok") })
	r.Route("/api", func(api phttp.Router) {
		api.Use(header("X-Api"))
		if api.Mux() == nil {
			t.Error("scoped Mux is nil")
		}
		api.Post("/vote", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusCreated) })
		api.Handle("/raw/*", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusAccepted) }))
	})

	rec := hit(r.Mux(), http.MethodGet, "/health")
	if rec.Body.String() != "ok" || rec.Header().Get("X-Root") != "1" || rec.Header().Get("X-Api") != "" {
		t.Fatalf("root route: %d %q %v", rec.Code, rec.Body.String(), rec.Header())
	}
	rec = hit(r.Mux(), http.MethodPost, "/api/vote")
	if rec.Code != http.StatusCreated || rec.Header().Get("X-Api") != "1" || rec.Header().Get("X-Root") != "1" {
		t.Fatalf("scoped route: %d %v", rec.Code, rec.Header())
	}
	if rec = hit(r.Mux(), http.MethodGet, "/api/vote"); rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("GET on a POST route: %d", rec.Code)
	}
	if rec = hit(r.Mux(), http.MethodDelete, "/api/raw/x"); rec.Code != http.StatusAccepted {
		t.Fatalf("Handle should accept any method: %d", rec.Code)
	}
}

func TestMountProfiler(t *testing.T) {
	t.Parallel()

	on := phttp.AdaptChi(chi.NewRouter())
	phttp.MountProfiler(on, "/debug", true)
	for _, p := range []string{"/debug/pprof/", "/debug/pprof/cmdline"} {
		if rec := hit(on.Mux(), http.MethodGet, p); rec.Code != http.StatusOK {
			t.Fatalf("%s: %d", p, rec.Code)
		}
	}

	off := phttp.AdaptChi(chi.NewRouter())
	phttp.MountProfiler(off, "/debug", false)
	if rec := hit(off.Mux(), http.MethodGet, "/debug/pprof/"); rec.Code != http.StatusNotFound {
		t.Fatalf("disabled profiler: %d", rec.Code)
	}
}

func TestNewServer_Addr(t *testing.T) {
	t.Setenv("BOT_API_API_PORT", ":12345")
	if got := phttp.NewServer(config.New().Prefix("BOT_API_")).Addr(); got != ":12345" {
		t.Fatalf("addr %q", got)
	}
	if got := phttp.NewServer(config.New().Prefix("BOT_NONE_")).Addr(); got != ":4000" {
		t.Fatalf("default addr %q", got)
	}
}

func TestServer_Run(t *testing.T) {
	t.Run("stops on cancel", func(t *testing.T) {
		t.Setenv("BOT_T_API_PORT", "127.0.0.1:0")
		srv := phttp.NewServer(config.New().Prefix("BOT_T_"))
		srv.Router().Get("/meta/health", func(w http.ResponseWriter, _ *http.Request) {})

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- srv.Run(ctx) }()
		time.Sleep(50 * time.Millisecond)
		cancel()

		select {
		case err := <-done:
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
		case <-time.After(3 * time.Second):
			t.Fatal("Run did not return after cancel")
		}
	})

	t.Run("listen error", func(t *testing.T) {
		t.Setenv("BOT_T_API_PORT", "127.0.0.1:abc")
		if err := phttp.NewServer(config.New().Prefix("BOT_T_")).Run(context.Background()); err == nil {
			t.Fatal("want listen error")
		}
	})
}
