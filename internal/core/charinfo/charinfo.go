// Package charinfo describes the unicode code points of a short string
package charinfo

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/runenames"

	pstrings "github.com/FFlyyy/bot/internal/platform/strings"
)

// MaxChars is the most code points a single request may describe
const MaxChars = 50

// ErrCustomEmoji is returned when the input contains custom emoji markup
var ErrCustomEmoji = errors.New("custom emoji found")

// TooManyError reports input longer than MaxChars code points
type TooManyError struct {
	Count int
}

func (e *TooManyError) Error() string {
	return fmt.Sprintf("Too many characters (%d/%d)", e.Count, MaxChars)
}

var customEmoji = regexp.MustCompile(`^<(a?):(\w+):(\d+)>`)

// Char is one described code point
type Char struct {
	Rune      rune   `json:"-"`
	Char      string `json:"char"`
	Codepoint string `json:"codepoint"`
	Escape    string `json:"escape"`
	Name      string `json:"name"`
	URL       string `json:"url"`
}

// Line renders the char as a single markdown line
func (c Char) Line() string {
	return fmt.Sprintf("`%-10s`: [%s](%s) - %s", c.Escape, c.Name, c.URL, pstrings.EscapeMarkdown(c.Char))
}

// Info is the description of a whole input
type Info struct {
	Chars []Char `json:"chars"`
	// RawText is the joined escapes, set only for more than one code point
	RawText string `json:"raw_text,omitempty"`
}

// Lines renders one markdown line per char
func (in Info) Lines() []string {
	out := make([]string, len(in.Chars))
	for i, c := range in.Chars {
		out[i] = c.Line()
	}
	return out
}

// Describe validates s and describes each code point in order
func Describe(s string) (Info, error) {
	if customEmoji.MatchString(s) {
		return Info{}, ErrCustomEmoji
	}
	if n := utf8.RuneCountInString(s); n > MaxChars {
		return Info{}, &TooManyError{Count: n}
	}

	info := Info{Chars: make([]Char, 0, len(s))}
	var raw strings.Builder
	for _, r := range s {
		c := describe(r)
		info.Chars = append(info.Chars, c)
		raw.WriteString(c.Escape)
	}
	if len(info.Chars) > 1 {
		info.RawText = raw.String()
	}
	return info, nil
}

func describe(r rune) Char {
	digit := fmt.Sprintf("%x", r)
	esc := fmt.Sprintf(`\u%04x`, r)
	if len(digit) > 4 {
		esc = fmt.Sprintf(`\U%08x`, r)
	}
	return Char{
		Rune:      r,
		Char:      string(r),
		Codepoint: digit,
		Escape:    esc,
		Name:      name(r),
		URL:       fmt.Sprintf("https://www.compart.com/en/unicode/U+%04x", r),
	}
}

func name(r rune) string {
	n := runenames.Name(r)
	// control and private-use code points have no real name
	if strings.HasPrefix(n, "<") {
		return ""
	}
	return n
}
