// Package paginate splits lines into pages bounded by line count and size
package paginate

import (
	"strings"
	"unicode/utf8"
)

// Limits bound a single page
type Limits struct {
	MaxLines int
	MaxSize  int
}

// Lines groups lines into pages joined by newlines
//
// A page closes when it holds MaxLines lines or when the next line would push it
// past MaxSize runes. A single line longer than MaxSize is cut to fit.
func Lines(lines []string, lim Limits) []string {
	if lim.MaxLines <= 0 {
		lim.MaxLines = len(lines)
	}
	var (
		pages []string
		cur   []string
		size  int
	)
	flush := func() {
		if len(cur) > 0 {
			pages = append(pages, strings.Join(cur, "\n"))
		}
		cur, size = nil, 0
	}
	for _, l := range lines {
		if lim.MaxSize > 0 && utf8.RuneCountInString(l) > lim.MaxSize {
			l = string([]rune(l)[:lim.MaxSize])
		}
		n := utf8.RuneCountInString(l)
		extra := n
		if len(cur) > 0 {
			extra++
		}
		if len(cur) > 0 && (len(cur) >= lim.MaxLines || (lim.MaxSize > 0 && size+extra > lim.MaxSize)) {
			flush()
			extra = n
		}
		cur = append(cur, l)
		size += extra
	}
	flush()
	return pages
}
