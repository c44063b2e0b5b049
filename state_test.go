package luthor_test

import (
	"bytes"
	"testing"
	"unicode"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/luthor"
	"github.com/db47h/luthor/token"
)

const (
	catSpace token.Category = iota + 1
	catWord
)

func stateWord(t *luthor.Tokenizer) luthor.StateFn {
	t.AcceptWhile(func(r rune) bool { return !unicode.IsSpace(r) })
	t.Tokenize(catWord)
	return stateSpace
}

func stateSpace(t *luthor.Tokenizer) luthor.StateFn {
	t.AcceptWhile(unicode.IsSpace)
	t.Tokenize(catSpace)
	return stateWord
}

func TestTokenizer_Run(t *testing.T) {
	toks := luthor.New("déjà  vu").Run(stateWord)
	assert.Equal(t, []token.Token{
		tok("déjà", catWord),
		tok("  ", catSpace),
		tok("vu", catWord),
	}, toks)
}

func TestTokenizer_RunTerminates(t *testing.T) {
	calls := 0
	var once luthor.StateFn = func(t *luthor.Tokenizer) luthor.StateFn {
		calls++
		t.TokenizeNext(2, catWord)
		return nil
	}
	tz := luthor.New("luthor")
	toks := tz.Run(once)
	assert.Equal(t, 1, calls)
	assert.Equal(t, []token.Token{tok("lu", catWord)}, toks)
	assert.True(t, tz.HasMoreData())
}

func TestTokenizer_RunEmptyInput(t *testing.T) {
	called := false
	toks := luthor.New("").Run(func(t *luthor.Tokenizer) luthor.StateFn {
		called = true
		return nil
	})
	assert.False(t, called)
	assert.Empty(t, toks)
}

func TestTokenizer_RunNilState(t *testing.T) {
	assert.Empty(t, luthor.New("abc").Run(nil))
}

// Pending input left by the last state function is not flushed.
func TestTokenizer_RunDropsPending(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	tz := luthor.New("ab cd", luthor.Logger(logger))
	toks := tz.Run(func(t *luthor.Tokenizer) luthor.StateFn {
		t.AcceptWhile(func(r rune) bool { return r != ' ' })
		t.Tokenize(catWord)
		return func(t *luthor.Tokenizer) luthor.StateFn {
			for t.HasMoreData() {
				t.Advance()
			}
			return nil
		}
	})
	assert.Equal(t, []token.Token{tok("ab", catWord)}, toks)
	assert.Equal(t, " cd", tz.Pending())

	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, "pending input dropped", last.Message)
	assert.Equal(t, " cd", last.Data["pending"])
}

func TestLoggerOption(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	tz := luthor.New("luthor", luthor.Logger(logger))
	tz.TokenizeNext(3, catWord)
	assert.Contains(t, buf.String(), "lexeme=lut")
	assert.Contains(t, buf.String(), "msg=tokenize")

	// nil falls back to the default logger
	tz = luthor.New("luthor", luthor.Logger(nil))
	tz.TokenizeNext(3, catWord)
	assert.Len(t, tz.Tokens(), 1)
}

func TestTokenizer_RunLogsStates(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	luthor.New("ab cd", luthor.Logger(logger)).Run(stateWord)

	var states []interface{}
	for _, e := range hook.AllEntries() {
		if e.Message == "state" {
			states = append(states, e.Data["state"])
			assert.Equal(t, len(states)-1, e.Data["step"])
		}
	}
	require.Len(t, states, 3)
	assert.Contains(t, states[0], "stateWord")
	assert.Contains(t, states[1], "stateSpace")
	assert.Contains(t, states[2], "stateWord")
	assert.Equal(t, "run complete", hook.LastEntry().Message)
	assert.Equal(t, 3, hook.LastEntry().Data["steps"])
}

func TestTokenizer_RunNoTraceAtInfo(t *testing.T) {
	logger, hook := test.NewNullLogger()
	luthor.New("ab cd", luthor.Logger(logger)).Run(stateWord)
	assert.Empty(t, hook.AllEntries())
}
