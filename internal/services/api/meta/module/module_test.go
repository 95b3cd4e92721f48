package module_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	modkit "github.com/FFlyyy/bot/internal/modkit"
	phttp "github.com/FFlyyy/bot/internal/platform/net/http"
	"github.com/FFlyyy/bot/internal/platform/store"
	metahttp "github.com/FFlyyy/bot/internal/services/api/meta/http"
	metamod "github.com/FFlyyy/bot/internal/services/api/meta/module"
)

type downCH struct{}

func (downCH) Exec(context.Context, string, ...any) error                { return nil }
func (downCH) Insert(context.Context, string, any) error                 { return nil }
func (downCH) Query(context.Context, string, ...any) (store.Rows, error) { return nil, nil }
func (downCH) Close() error                                              { return nil }
func (downCH) Ping(context.Context) error                                { return errors.New("connection refused") }

func get(t *testing.T, deps modkit.Deps, path string, out any) int {
	t.Helper()
	mux := chi.NewRouter()
	metamod.New(deps).MountRoutes(phttp.AdaptChi(mux))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		t.Fatalf("decode data %s: %v", path, err)
	}
	return rec.Code
}

func TestMeta_ReadyWithoutStores(t *testing.T) {
	var ready metahttp.ReadyResponse
	if code := get(t, modkit.Deps{}, "/meta/ready", &ready); code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	if ready.Status != "ok" || len(ready.Checks) != 2 || ready.Checks[0].Status != "skipped" {
		t.Fatalf("unexpected ready %+v", ready)
	}
}

func TestMeta_ReadyFailsOnDeadStore(t *testing.T) {
	var ready metahttp.ReadyResponse
	get(t, modkit.Deps{CH: downCH{}}, "/meta/ready", &ready)
	if ready.Status != "fail" || ready.Checks[1].Error != "connection refused" {
		t.Fatalf("unexpected ready %+v", ready)
	}
}

func TestMeta_Commands(t *testing.T) {
	var cmds []metahttp.Command
	get(t, modkit.Deps{}, "/meta/commands", &cmds)
	if len(cmds) != len(metamod.Catalog) || cmds[0].Name != "zen" {
		t.Fatalf("unexpected catalog %+v", cmds)
	}

	var health metahttp.HealthResponse
	get(t, modkit.Deps{}, "/meta/health", &health)
	if !health.OK || health.Service != "utilbot-api" {
		t.Fatalf("unexpected health %+v", health)
	}
}

func TestMeta_NewForRole(t *testing.T) {
	mux := chi.NewRouter()
	metamod.NewFor(modkit.Deps{}, "discord").MountRoutes(phttp.AdaptChi(mux))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/meta/health", nil))

	var env struct {
		Data metahttp.HealthResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data.Service != "utilbot-discord" {
		t.Fatalf("service %q", env.Data.Service)
	}
}
