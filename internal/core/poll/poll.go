// Package poll builds reaction polls keyed by regional indicator emoji
package poll

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const (
	// MaxTitle is the longest title in code points
	MaxTitle = 256
	// MinOptions is the fewest options a poll accepts
	MinOptions = 2
	// MaxOptions is bounded by the reaction limit of a single message
	MaxOptions = 20
)

// regional indicator symbol letter A
const firstIndicator = 0x1F1E6

// Validation failures, worded for the end user
var (
	ErrTitleTooLong   = errors.New("The title cannot be longer than 256 characters.")
	ErrTooFewOptions  = errors.New("Please provide at least 2 options.")
	ErrTooManyOptions = errors.New("I can only handle 20 options!")
)

// Option is one choice and the reaction that votes for it
type Option struct {
	Emoji string `json:"emoji"`
	Text  string `json:"text"`
}

// Poll is a built poll ready to render
type Poll struct {
	Title   string   `json:"title"`
	Options []Option `json:"options"`
}

// Build validates title and options and assigns emoji in order
func Build(title string, options []string) (Poll, error) {
	if utf8.RuneCountInString(title) > MaxTitle {
		return Poll{}, ErrTitleTooLong
	}
	if len(options) < MinOptions {
		return Poll{}, ErrTooFewOptions
	}
	if len(options) > MaxOptions {
		return Poll{}, ErrTooManyOptions
	}
	p := Poll{Title: title, Options: make([]Option, len(options))}
	for i, o := range options {
		p.Options[i] = Option{Emoji: Emoji(i), Text: o}
	}
	return p, nil
}

// Emoji is the regional indicator for option i
func Emoji(i int) string { return string(rune(firstIndicator + i)) }

// Description renders "emoji - option" lines
func (p Poll) Description() string {
	lines := make([]string, len(p.Options))
	for i, o := range p.Options {
		lines[i] = o.Emoji + " - " + o.Text
	}
	return strings.Join(lines, "\n")
}

// Reactions lists the emoji to add, in option order
func (p Poll) Reactions() []string {
	out := make([]string, len(p.Options))
	for i, o := range p.Options {
		out[i] = o.Emoji
	}
	return out
}
