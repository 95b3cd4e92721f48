package service

import (
	"context"
	"strings"
	"testing"
	"time"

	perr "github.com/FFlyyy/bot/internal/platform/errors"
	"github.com/FFlyyy/bot/internal/services/api/snowflake/domain"
)

var fixedNow = time.Date(2016, 4, 30, 14, 18, 25, 796_000_000, time.UTC)

func TestDecode(t *testing.T) {
	s := NewWithClock(func() time.Time { return fixedNow })
	got, err := s.Decode(context.Background(), domain.DecodeInput{Snowflakes: []string{"175928847299117063"}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Heading != "Snowflake" || len(got.Entries) != 1 || len(got.Pages) != 1 {
		t.Fatalf("unexpected reply %+v", got)
	}
	e := got.Entries[0]
	if e.Since != "3 hours ago" || !strings.HasPrefix(e.Line, "**175928847299117063**\nCreated at 2016-04-30 11:18:25.796000+00:00") {
		t.Fatalf("unexpected entry %+v", e)
	}
}

func TestDecode_PaginatesByFive(t *testing.T) {
	s := NewWithClock(func() time.Time { return fixedNow })
	ids := make([]string, 7)
	for i := range ids {
		ids[i] = "175928847299117063"
	}
	got, err := s.Decode(context.Background(), domain.DecodeInput{Snowflakes: ids})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Heading != "Snowflakes" || len(got.Pages) != 2 {
		t.Fatalf("want 2 pages, got %d", len(got.Pages))
	}
}

func TestDecode_Errors(t *testing.T) {
	s := NewWithClock(func() time.Time { return fixedNow })

	_, err := s.Decode(context.Background(), domain.DecodeInput{})
	if w := perr.WireFrom(err); w.Code != perr.ErrorCodeValidation || w.Message != "At least one snowflake must be provided." {
		t.Fatalf("empty input got %+v", w)
	}

	_, err = s.Decode(context.Background(), domain.DecodeInput{Snowflakes: []string{"9999999999999999999"}})
	if !perr.IsCode(err, perr.ErrorCodeValidation) || !strings.Contains(err.Error(), "in the future") {
		t.Fatalf("future id got %v", err)
	}
}
