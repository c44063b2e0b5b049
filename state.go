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
	"reflect"
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/db47h/luthor/token"
)

// A StateFn is a state function. It scans input through the Tokenizer
// primitives and returns the next state function to run, or nil once scanning
// is complete.
//
type StateFn func(t *Tokenizer) StateFn

// Run drives the state machine that starts at init. State functions are called
// in turn until one returns nil or there is no more data to process. Run then
// returns a copy of the tokens.
//
// Run does not flush pending input: characters consumed by the last state
// function without a call to Tokenize are not part of the result. State
// functions must call Tokenize before returning nil.
//
func (t *Tokenizer) Run(init StateFn) []token.Token {
	debug := t.debug()
	steps := 0
	for s := init; s != nil && t.HasMoreData(); s = s(t) {
		if debug {
			t.log.WithFields(logrus.Fields{
				"step":  steps,
				"state": stateName(s),
				"start": t.ts,
				"pos":   t.tp,
			}).Debug("state")
		}
		steps++
	}
	if !debug {
		return t.Tokens()
	}
	t.log.WithFields(logrus.Fields{
		"steps":  steps,
		"tokens": len(t.tokens),
		"pos":    t.tp,
	}).Debug("run complete")
	if t.ts != t.tp {
		t.log.WithField("pending", t.Pending()).Debug("pending input dropped")
	}
	return t.Tokens()
}

// stateName returns the name of the function behind s, as reported by the
// runtime.
func stateName(s StateFn) string {
	if f := runtime.FuncForPC(reflect.ValueOf(s).Pointer()); f != nil {
		return f.Name()
	}
	return "?"
}
