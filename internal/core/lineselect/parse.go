package lineselect

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ParseSelector turns raw user input into a Selector
//
// Blank input is Unset, integer input (with optional sign) is an Index and
// anything else is a Query. Integers too large for int clamp to the extreme of
// their sign so they still resolve to an out-of-range error.
func ParseSelector(raw string) Selector {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Unset()
	}
	n, err := strconv.Atoi(s)
	if err == nil {
		return Index(n)
	}
	if errors.Is(err, strconv.ErrRange) {
		if strings.HasPrefix(s, "-") {
			return Index(math.MinInt)
		}
		return Index(math.MaxInt)
	}
	return Query(s)
}
