package strings

import std "strings"

var mdEscaper = std.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"~", `\~`,
	"|", `\|`,
	"`", "\\`",
)

// EscapeMarkdown backslash-escapes chat markdown control characters
func EscapeMarkdown(s string) string { return mdEscaper.Replace(s) }

// Truncate cuts s to at most n runes and appends suffix when it had to cut
func Truncate(s string, n int, suffix string) string {
	if n < 0 {
		n = 0
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos] + suffix
		}
		i++
	}
	return s
}

// RuneLen is the number of code points in s
func RuneLen(s string) int { return len([]rune(s)) }
