// Package zen holds the Zen of Python corpus and its rendering rules
package zen

import (
	"fmt"

	"github.com/FFlyyy/bot/internal/core/lineselect"
)

// Author of the text
const Author = "Tim Peters"

// Title is the base heading for every zen reply
const Title = "The Zen of Python"

// Text is the full poem, one aphorism per line
const Text = `Beautiful is better than ugly.
Explicit is better than implicit.
Simple is better than complex.
Complex is better than complicated.
Flat is better than nested.
Sparse is better than dense.
Readability counts.
Special cases aren't special enough to break the rules.
Although practicality beats purity.
Errors should never pass silently.
Unless explicitly silenced.
In the face of ambiguity, refuse the temptation to guess.
There should be one-- and preferably only one --obvious way to do it.
Although that way may not be obvious at first unless you're Dutch.
Now is better than never.
Although never is often better than *right* now.
If the implementation is hard to explain, it's a bad idea.
If the implementation is easy to explain, it may be a good idea.
Namespaces are one honking great idea -- let's do more of those!`

var corpus = lineselect.FromText(Text)

// Corpus returns the shared immutable corpus
func Corpus() lineselect.Corpus { return corpus }

// FullTitle is the heading used when the whole text is shown
func FullTitle() string { return Title + ", by " + Author }

// LineTitle is the heading used when a single line is shown
func LineTitle(index int) string { return fmt.Sprintf("%s (line %d):", Title, index) }
