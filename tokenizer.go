// Copyright 2017-2018 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package luthor

import (
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"

	"github.com/db47h/luthor/token"
)

// A Tokenizer holds the source text, the cursor and the tokens produced so far
// for a single scanning session.
//
// All positions are expressed in Unicode scalar units (rune indices), never byte
// offsets. The following invariant holds after every method call:
//
//	0 <= TokenStart() <= TokenPos() <= CharCount()
//
// A Tokenizer is not safe for concurrent use.
//
type Tokenizer struct {
	data   string
	runes  []rune // data decoded once for O(1) rune-indexed access
	offs   []int  // byte offset of each rune in data, plus len(data)
	lines  []int  // rune index of the first rune of each line
	ts     int    // token start position
	tp     int    // token position (cursor)
	tokens []token.Token
	log    logrus.FieldLogger
}

// New returns a new Tokenizer for the given text. Any string is valid input,
// including the empty string.
//
// Each byte of an invalid UTF-8 sequence counts as one character, reported by
// CurrentChar as utf8.RuneError. Lexemes are slices of the source text, so the
// concatenation of all lexemes of a fully tokenized input is always equal to
// Data(), even for invalid UTF-8.
//
func New(data string, opts ...Option) *Tokenizer {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	o.validate()

	n := utf8.RuneCountInString(data)
	t := &Tokenizer{
		data:  data,
		runes: make([]rune, 0, n),
		offs:  make([]int, 0, n+1),
		log:   o.logger,
	}
	for i, r := range data {
		t.runes = append(t.runes, r)
		t.offs = append(t.offs, i)
	}
	t.offs = append(t.offs, len(data))
	t.lines = lineStarts(t.runes)
	return t
}

// text returns the source text between rune indices i and j.
func (t *Tokenizer) text(i, j int) string {
	return t.data[t.offs[i]:t.offs[j]]
}

// debug returns true if the logger would write Debug entries.
func (t *Tokenizer) debug() bool {
	switch l := t.log.(type) {
	case *logrus.Logger:
		return l.IsLevelEnabled(logrus.DebugLevel)
	case *logrus.Entry:
		return l.Logger.IsLevelEnabled(logrus.DebugLevel)
	case interface{ IsLevelEnabled(logrus.Level) bool }:
		return l.IsLevelEnabled(logrus.DebugLevel)
	}
	return true
}

// Data returns the source text.
//
func (t *Tokenizer) Data() string {
	return t.data
}

// CharCount returns the number of Unicode scalar values in the source text.
//
func (t *Tokenizer) CharCount() int {
	return len(t.runes)
}

// TokenStart returns the position of the first character not yet part of a
// token.
//
func (t *Tokenizer) TokenStart() int {
	return t.ts
}

// TokenPos returns the cursor position, that is the position of the next
// character to be examined.
//
func (t *Tokenizer) TokenPos() int {
	return t.tp
}

// Tokens returns a copy of the tokens produced to date.
//
func (t *Tokenizer) Tokens() []token.Token {
	return slices.Clone(t.tokens)
}

// Advance moves the cursor to the next character. It does nothing if there is
// no more data to process.
//
func (t *Tokenizer) Advance() {
	if t.HasMoreData() {
		t.tp++
	}
}

// HasMoreData returns true if the cursor has not yet reached the end of the
// input.
//
func (t *Tokenizer) HasMoreData() bool {
	return t.tp < len(t.runes)
}

// CurrentChar returns the character at the cursor. The boolean result is false
// if all of the data has been processed.
//
func (t *Tokenizer) CurrentChar() (rune, bool) {
	if !t.HasMoreData() {
		return 0, false
	}
	return t.runes[t.tp], true
}

// Tokenize creates and stores a token of category c containing the characters
// consumed with Advance since the last call to Tokenize. If no character has
// been consumed, no token is created.
//
func (t *Tokenizer) Tokenize(c token.Category) {
	if t.ts == t.tp {
		return
	}
	tok := token.Token{
		Lexeme:   t.text(t.ts, t.tp),
		Category: c,
	}
	t.tokens = append(t.tokens, tok)
	if t.debug() {
		t.log.WithFields(logrus.Fields{
			"category": c,
			"lexeme":   tok.Lexeme,
			"start":    t.ts,
			"pos":      t.tp,
		}).Debug("tokenize")
	}
	t.ts = t.tp
}

// TokenizeNext creates and stores a token of category c with the next amount
// characters of the data. Before doing this, any pending characters are
// tokenized with the token.Text category.
//
// If fewer than amount characters remain, TokenizeNext takes what is left. A
// negative amount is treated as zero.
//
func (t *Tokenizer) TokenizeNext(amount int, c token.Category) {
	t.Tokenize(token.Text)
	if amount > 0 {
		if rem := len(t.runes) - t.tp; amount > rem {
			amount = rem
		}
		t.tp += amount
	}
	t.Tokenize(c)
}

// Pending returns the characters consumed since the last token was created.
//
func (t *Tokenizer) Pending() string {
	return t.text(t.ts, t.tp)
}

// Peek returns the next n characters starting at the cursor without consuming
// them. The result is shorter than n if the end of the input is reached.
//
func (t *Tokenizer) Peek(n int) string {
	if n <= 0 {
		return ""
	}
	end := t.tp + n
	if end > len(t.runes) || end < 0 {
		end = len(t.runes)
	}
	return t.text(t.tp, end)
}

// HasPrefix returns true if the input at the cursor starts with s. The cursor
// is not moved.
//
func (t *Tokenizer) HasPrefix(s string) bool {
	i := t.tp
	for len(s) > 0 {
		if i >= len(t.runes) {
			return false
		}
		_, w := utf8.DecodeRuneInString(s)
		if t.text(i, i+1) != s[:w] {
			return false
		}
		s = s[w:]
		i++
	}
	return true
}

// AcceptWhile advances the cursor while f returns true for the current
// character and returns the number of characters consumed.
//
// The first character for which f returns false is not consumed.
//
func (t *Tokenizer) AcceptWhile(f func(r rune) bool) int {
	n := 0
	for r, ok := t.CurrentChar(); ok && f(r); r, ok = t.CurrentChar() {
		t.tp++
		n++
	}
	return n
}
