package pg

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestLogTracer(t *testing.T) {
	cases := []struct {
		name    string
		elapsed time.Duration
		err     error
		level   string
	}{
		{"fast", 2 * time.Millisecond, nil, "info"},
		{"slow", 80 * time.Millisecond, nil, "warn"},
		{"failed", time.Millisecond, errors.New("duplicate key"), "info"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var buf bytes.Buffer
			tr := NewLogTracer(zerolog.New(&buf).Level(zerolog.ErrorLevel), 50*time.Millisecond)
			tr.OnQuery(context.Background(), QueryEvent{
				SQL:     "select destination\n\tfrom  unfurl_cache\n where url = $1",
				Args:    []any{"https://bit.ly/x"},
				Elapsed: c.elapsed,
				Err:     c.err,
			})

			var line map[string]any
			if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
				t.Fatalf("decode %q: %v", buf.String(), err)
			}
			if line["level"] != c.level || line["component"] != "pg" || line["message"] != "pg query" {
				t.Fatalf("unexpected line %v", line)
			}
			if line["sql"] != "select destination from unfurl_cache where url = $1" {
				t.Fatalf("sql %q", line["sql"])
			}
			if (c.err != nil) != (line["error"] != nil) {
				t.Fatalf("error field %v", line["error"])
			}
		})
	}
}
