package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "github.com/FFlyyy/bot/internal/platform/errors"
)

type pollIn struct {
	Title   string   `json:"title" validate:"required,max=10"`
	Options []string `json:"options"`
}

func serveJSON(h Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/vote", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestJSONHandler(t *testing.T) {
	t.Parallel()

	count := func(_ *http.Request, in pollIn) (any, error) {
		if len(in.Options) == 1 {
			return nil, perr.New(perr.ErrorCodeValidation, "need two options")
		}
		if len(in.Options) == 0 {
			return Created(in.Title), nil
		}
		return map[string]int{"options": len(in.Options)}, nil
	}

	cases := []struct {
		name, body string
		code       int
		contains   string
	}{
		{"ok", `{"title":"lunch","options":["a","b"]}`, http.StatusOK, `"options":2`},
		{"response passthrough", `{"title":"lunch"}`, http.StatusCreated, `"lunch"`},
		{"handler error", `{"title":"lunch","options":["a"]}`, http.StatusBadRequest, "need two options"},
		{"malformed", `{`, http.StatusBadRequest, `"error"`},
		{"unknown field", `{"title":"x","colour":"red"}`, http.StatusBadRequest, `"error"`},
		{"validation", `{"title":"far too long a title"}`, http.StatusBadRequest, "title must be at most 10"},
	}
	h := JSONHandler(count)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := serveJSON(h, tc.body)
			if rec.Code != tc.code || !strings.Contains(rec.Body.String(), tc.contains) {
				t.Fatalf("got %d %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestJSONHandlerNoBody(t *testing.T) {
	t.Parallel()

	h := JSONHandlerNoBody(func(r *http.Request) (any, error) {
		if r.URL.Query().Get("fail") != "" {
			return nil, errors.New("boom")
		}
		return []string{"zen"}, nil
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/meta/commands", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"data":["zen"]`) {
		t.Fatalf("got %d %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/meta/commands?fail=1", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("plain errors should be 500, got %d", rec.Code)
	}
}
