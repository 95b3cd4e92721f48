package lineselect

import (
	"math"
	"strings"
	"testing"
)

func TestRatio_KnownValues(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"both empty", "", "", 1},
		{"one empty", "abc", "", 0},
		{"shifted window", "abcd", "bcde", 0.75},
		{"identical", "zen", "zen", 1},
		{"disjoint", "abc", "xyz", 0},
		{"extends across leading space", " abcd", "abcd abcd", 10.0 / 14.0},
		{"two blocks", "qabxcd", "abycdf", 8.0 / 12.0},
		{"multibyte runes count once", "café", "cafe", 6.0 / 8.0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Ratio(tc.a, tc.b)
			if math.Abs(got-tc.want) > 1e-12 {
				t.Fatalf("Ratio(%q, %q) = %v want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestRatio_PopularRunesInLongSequences(t *testing.T) {
	long := strings.Repeat("a", 200)
	// 'a' is popular and cannot seed a block, the scan still extends from the origin
	if got, want := Ratio("aaa", long), 6.0/203.0; math.Abs(got-want) > 1e-12 {
		t.Fatalf("got %v want %v", got, want)
	}
	// below the threshold the same rune is indexed normally
	short := strings.Repeat("a", 199)
	if got, want := Ratio("aaa", short), 6.0/202.0; math.Abs(got-want) > 1e-12 {
		t.Fatalf("got %v want %v", got, want)
	}
	// a popular rune away from the origin is not found at all
	if got := Ratio("b", "x"+long); got != 0 {
		t.Fatalf("got %v want 0", got)
	}
	if got := Ratio("xa", "y"+long); got != 0 {
		t.Fatalf("got %v want 0", got)
	}
}

func TestScore_LengthWeighting(t *testing.T) {
	if s := Score("abc", "abc"); s != 0 {
		t.Fatalf("short line should score 0, got %v", s)
	}
	// "abcdefghi" has 9 runes: sqrt(4) * 1
	if s := Score("ABCDEFGHI", "abcdefghi"); math.Abs(s-2) > 1e-12 {
		t.Fatalf("got %v want 2", s)
	}
}
