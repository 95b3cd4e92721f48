package snowflake

import (
	"errors"
	"strings"
	"testing"
	"time"
)

const sample = "175928847299117063"

func TestID_Time(t *testing.T) {
	id, err := Parse(sample, time.Now())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := time.Date(2016, 4, 30, 11, 18, 25, 796_000_000, time.UTC)
	if !id.Time().Equal(want) {
		t.Fatalf("time got %v want %v", id.Time(), want)
	}
	if id.String() != sample {
		t.Fatalf("string %q", id.String())
	}
}

func TestFormatTime(t *testing.T) {
	withFrac := time.Date(2016, 4, 30, 11, 18, 25, 796_000_000, time.UTC)
	if got := FormatTime(withFrac); got != "2016-04-30 11:18:25.796000+00:00" {
		t.Fatalf("got %q", got)
	}
	whole := time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := FormatTime(whole); got != "2015-01-01 00:00:00+00:00" {
		t.Fatalf("got %q", got)
	}
}

func TestLine(t *testing.T) {
	id, _ := Parse(sample, time.Now())
	now := id.Time().Add(3 * time.Hour)
	got := Line(id, now)
	want := "**175928847299117063**\nCreated at 2016-04-30 11:18:25.796000+00:00 (3 hours ago)."
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestParse_Rejects(t *testing.T) {
	now := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		in     string
		reason string
	}{
		{"abc", "is not a valid snowflake"},
		{"123", "is not a valid snowflake"},
		{"-175928847299117063", "is not a valid snowflake"},
		{"99999999999999999999", "is not a valid snowflake"},
		// decodes to 2090
		{"9999999999999999999", "is in the future"},
	}
	for _, c := range cases {
		_, err := Parse(c.in, now)
		var inv *InvalidError
		if !errors.As(err, &inv) {
			t.Fatalf("%q want InvalidError, got %v", c.in, err)
		}
		if !strings.Contains(err.Error(), c.reason) {
			t.Fatalf("%q message %q missing %q", c.in, err.Error(), c.reason)
		}
	}
}

func TestHeading(t *testing.T) {
	if Heading(1) != "Snowflake" || Heading(2) != "Snowflakes" || Heading(0) != "Snowflakes" {
		t.Fatalf("pluralisation")
	}
}
