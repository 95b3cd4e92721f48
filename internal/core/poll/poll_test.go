package poll

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func options(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("opt %d", i)
	}
	return out
}

func TestBuild(t *testing.T) {
	p, err := Build("Lunch?", []string{"pizza", "tacos"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got, want := p.Description(), "🇦 - pizza\n🇧 - tacos"; got != want {
		t.Fatalf("description got %q want %q", got, want)
	}
	if r := p.Reactions(); len(r) != 2 || r[0] != "🇦" || r[1] != "🇧" {
		t.Fatalf("reactions %v", r)
	}
}

func TestBuild_Limits(t *testing.T) {
	cases := []struct {
		name  string
		title string
		opts  []string
		want  error
	}{
		{"title too long", strings.Repeat("x", 257), options(2), ErrTitleTooLong},
		{"title at limit", strings.Repeat("é", 256), options(2), nil},
		{"one option", "t", options(1), ErrTooFewOptions},
		{"no options", "t", nil, ErrTooFewOptions},
		{"twenty options", "t", options(20), nil},
		{"twenty one options", "t", options(21), ErrTooManyOptions},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Build(c.title, c.opts)
			if !errors.Is(err, c.want) {
				t.Fatalf("got %v want %v", err, c.want)
			}
		})
	}
}

func TestEmoji_LastOption(t *testing.T) {
	if Emoji(19) != "🇹" {
		t.Fatalf("option 20 should be regional indicator T, got %q", Emoji(19))
	}
}
