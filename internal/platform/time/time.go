// Package time contains time related helpers
package time

import (
	"fmt"
	"time"
)

// Ptr returns a pointer to t or nil if t is zero
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// Style is a Discord timestamp markup style
type Style byte

// Discord timestamp styles
const (
	ShortTime     Style = 't'
	LongTime      Style = 'T'
	ShortDate     Style = 'd'
	LongDate      Style = 'D'
	ShortDateTime Style = 'f'
	LongDateTime  Style = 'F'
	Relative      Style = 'R'
)

// Discord renders t as client-localised markup, e.g. <t:1420070400:R>
func Discord(t time.Time, s Style) string {
	return fmt.Sprintf("<t:%d:%c>", t.Unix(), s)
}

// Since renders t relative to now in Discord markup
func Since(t time.Time) string { return Discord(t, Relative) }
