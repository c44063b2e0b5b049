// Copyright 2017-2020 Denis Bernard <db047h@gmail.com>
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

/*
Package luthor provides the scanning engine shared by language and format
lexers. It turns source text into a flat list of tokens, each token being a
lexeme and a category label chosen by the lexer.

The engine knows no grammar. A lexer inspects the input with CurrentChar,
moves through it with Advance, and flushes the characters consumed so far into a
token with Tokenize:

	t := luthor.New("let x")
	for r, ok := t.CurrentChar(); ok && r != ' '; r, ok = t.CurrentChar() {
		t.Advance()
	}
	t.Tokenize(catKeyword)

TokenizeNext covers the common case of a fixed-length construct recognized by
lookahead: it flushes pending characters as token.Text then consumes the next n
characters as a single token:

	if t.HasPrefix("let") {
		t.TokenizeNext(3, catKeyword)
	}

Positions

All positions (TokenStart, TokenPos, CharCount) are rune indices, never byte
offsets. The input is decoded once by New so that rune-indexed access is O(1).
Position converts a rune index to a line:column pair.

Boundaries

No method fails. Advance at the end of the input does nothing, CurrentChar
reports absence, TokenizeNext takes at most what is left and Tokenize never
creates an empty token.

State functions

Like https://golang.org/src/text/template/parse/lex.go, a lexer can be written
as a set of state functions referencing each other:

	type StateFn func(t *Tokenizer) StateFn

A StateFn is both state and action. It scans some input, then returns the next
state, or nil when scanning is complete. Run drives such a chain until a state
returns nil or the input is exhausted.

Run does not flush pending input by itself. If the last state function returns
without calling Tokenize, the characters it consumed are silently dropped from
the result. Well-behaved state functions flush before returning nil.

The engine provides no step limit: a state function that never advances the
cursor and never returns nil will loop forever.

Logging

Token emission and Run completion are traced at Debug level through a
logrus.FieldLogger set with the Logger option.

*/
package luthor
