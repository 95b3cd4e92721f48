package module_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/FFlyyy/bot/internal/adapters/unfurler"
	modkit "github.com/FFlyyy/bot/internal/modkit"
	phttp "github.com/FFlyyy/bot/internal/platform/net/http"
	"github.com/FFlyyy/bot/internal/services/api/unfurl/domain"
	unfurlmod "github.com/FFlyyy/bot/internal/services/api/unfurl/module"
	unfurlsvc "github.com/FFlyyy/bot/internal/services/api/unfurl/service"
)

type stubWorker struct{}

func (stubWorker) Hop(_ context.Context, _ string) (unfurler.Hop, error) {
	return unfurler.Hop{Outcome: unfurler.Resolved, Destination: "https://dest", Depth: 1}, nil
}

type envelope struct {
	Error string          `json:"error"`
	Data  json.RawMessage `json:"data"`
}

func post(t *testing.T, allowBypass bool, body string) (int, envelope) {
	t.Helper()
	mux := chi.NewRouter()
	unfurlmod.New(modkit.Deps{}, unfurlmod.Options{Worker: stubWorker{}, AllowBypass: allowBypass}).
		MountRoutes(phttp.AdaptChi(mux))

	req := httptest.NewRequest(http.MethodPost, "/unfurl", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v (%s)", err, rec.Body.String())
	}
	return rec.Code, env
}

func TestUnfurlRoutes(t *testing.T) {
	code, env := post(t, false, `{"url":"https://a"}`)
	if code != http.StatusOK {
		t.Fatalf("status %d %+v", code, env)
	}
	var res domain.Result
	if err := json.Unmarshal(env.Data, &res); err != nil || res.Destination != "https://dest" {
		t.Fatalf("result %+v err %v", res, err)
	}

	code, env = post(t, false, `{"url":"https://a","use_cache":false}`)
	if code != http.StatusForbidden || env.Error != unfurlsvc.SkipCacheDenied {
		t.Fatalf("bypass got %d %q", code, env.Error)
	}
	if code, _ = post(t, true, `{"url":"https://a","use_cache":false}`); code != http.StatusOK {
		t.Fatalf("allowed bypass got %d", code)
	}

	if code, _ = post(t, false, `{"url":"not a url"}`); code != http.StatusBadRequest {
		t.Fatalf("invalid url got %d", code)
	}
	if code, env = post(t, false, `{"url":"https://a","max_continues":6}`); code != http.StatusBadRequest || env.Error != "Maximum of 5 redirects allowed." {
		t.Fatalf("max continues got %d %q", code, env.Error)
	}
}
