// Package lineselect resolves a selector against an ordered corpus of lines
//
// A selector is either an absolute index (negative indexes count from the end)
// or a search query. Queries try an exact whole-word match first and fall back to
// a length-weighted fuzzy score.
package lineselect

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// ErrNoMatch is returned when a query scores zero against every line
var ErrNoMatch = errors.New("no match found")

// OutOfRangeError reports an index outside [Lower, Upper]
type OutOfRangeError struct {
	Lower int
	Upper int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("index must be between %d and %d", e.Lower, e.Upper)
}

// Corpus is an immutable ordered list of lines
type Corpus struct {
	lines []string
}

// NewCorpus copies lines into a corpus
func NewCorpus(lines []string) Corpus {
	cp := make([]string, len(lines))
	copy(cp, lines)
	return Corpus{lines: cp}
}

// FromText splits a multi-line block into a corpus, one line per newline
func FromText(text string) Corpus {
	return Corpus{lines: strings.Split(text, "\n")}
}

// Len returns the number of lines
func (c Corpus) Len() int { return len(c.lines) }

// Line returns line i; callers are expected to pass a normalized index
func (c Corpus) Line(i int) string { return c.lines[i] }

// Lines returns a copy of all lines
func (c Corpus) Lines() []string {
	cp := make([]string, len(c.lines))
	copy(cp, c.lines)
	return cp
}

// Text joins the corpus back into a single block
func (c Corpus) Text() string { return strings.Join(c.lines, "\n") }

// Kind tags the selector variant
type Kind uint8

const (
	// KindUnset means no selector was given
	KindUnset Kind = iota
	// KindIndex selects by absolute position
	KindIndex
	// KindQuery selects by search text
	KindQuery
)

func (k Kind) String() string {
	switch k {
	case KindIndex:
		return "index"
	case KindQuery:
		return "query"
	default:
		return "unset"
	}
}

// Selector is the tagged union Unset | Index(n) | Query(s)
type Selector struct {
	kind  Kind
	index int
	query string
}

// Unset returns the empty selector
func Unset() Selector { return Selector{} }

// Index returns a positional selector
func Index(n int) Selector { return Selector{kind: KindIndex, index: n} }

// Query returns a search selector
func Query(s string) Selector { return Selector{kind: KindQuery, query: s} }

// Kind reports which variant s holds
func (s Selector) Kind() Kind { return s.kind }

// IndexValue returns the index for KindIndex selectors
func (s Selector) IndexValue() (int, bool) { return s.index, s.kind == KindIndex }

// QueryValue returns the text for KindQuery selectors
func (s Selector) QueryValue() (string, bool) { return s.query, s.kind == KindQuery }

// Match is a resolved line and its normalized index
type Match struct {
	Index int    `json:"index"`
	Line  string `json:"line"`
}

// Resolve maps sel onto c
//
// Unset selectors are not resolved here; callers render the whole corpus and
// Resolve returns ErrNoMatch for them.
func Resolve(c Corpus, sel Selector) (Match, error) {
	switch sel.kind {
	case KindIndex:
		return resolveIndex(c, sel.index)
	case KindQuery:
		return resolveQuery(c, sel.query)
	default:
		return Match{}, ErrNoMatch
	}
}

func resolveIndex(c Corpus, n int) (Match, error) {
	l := len(c.lines)
	if n < -l || n > l-1 {
		return Match{}, &OutOfRangeError{Lower: -l, Upper: l - 1}
	}
	i := ((n % l) + l) % l
	return Match{Index: i, Line: c.lines[i]}, nil
}

func resolveQuery(c Corpus, q string) (Match, error) {
	lq := strings.ToLower(q)

	for i, line := range c.lines {
		for _, w := range strings.Fields(line) {
			if strings.ToLower(w) == lq {
				return Match{Index: i, Line: line}, nil
			}
		}
	}

	best, bestScore := -1, 0.0
	for i, line := range c.lines {
		s := Score(lq, line)
		if s > bestScore {
			best, bestScore = i, s
		}
	}
	if best < 0 {
		return Match{}, ErrNoMatch
	}
	return Match{Index: best, Line: c.lines[best]}, nil
}

// Score is the length-weighted fuzzy score of query against line
//
// Lines of five runes or fewer always score zero.
func Score(query, line string) float64 {
	n := utf8.RuneCountInString(line) - 5
	if n <= 0 {
		return 0
	}
	return math.Sqrt(float64(n)) * Ratio(strings.ToLower(query), strings.ToLower(line))
}
