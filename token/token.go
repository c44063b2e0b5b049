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

// Package token defines the Token value produced by a luthor.Tokenizer and the
// Category labels attached to it.
//
package token

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// A Category classifies the lexeme of a Token. Custom lexers can use any
// value >= 0. The engine assigns no meaning to categories beyond equality.
//
type Category int

// Text is the category for unclassified, plain text. It is the category used
// by Tokenizer.TokenizeNext when flushing pending input.
//
const Text Category = -1

func (c Category) String() string {
	if c == Text {
		return "Text"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Token is a lexeme and its category. Tokens are plain values; a Token
// obtained from a Tokenizer holds no reference back into it.
//
type Token struct {
	Lexeme   string
	Category Category
}

// String returns a string representation of the token. This should be used only
// for debugging purposes as the output format is not guaranteed to be stable.
//
func (t Token) String() string {
	return fmt.Sprintf("%s %q", t.Category, t.Lexeme)
}

// Len returns the number of Unicode scalar values in the lexeme.
//
func (t Token) Len() int {
	return utf8.RuneCountInString(t.Lexeme)
}

// Width returns the width of the lexeme in text cells, supposing rendering with
// a UTF-8 locale and a monospaced font. East Asian wide and fullwidth runes count
// as two cells, non-graphic runes as none.
//
func (t Token) Width() int {
	return Width(t.Lexeme)
}

// Width computes the width in text cells of s.
//
func Width(s string) int {
	w := 0
	for _, r := range s {
		if !unicode.IsGraphic(r) {
			continue
		}
		switch width.LookupRune(r).Kind() {
		case width.EastAsianFullwidth, width.EastAsianWide:
			w += 2
		default:
			// EastAsianAmbiguous depends on user locale. 2 if locale is CJK.
			w++
		}
	}
	return w
}
