package luthor

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/db47h/luthor/token"
)

var benchInput = strings.Repeat("déjà vu 世界 luthor\n", 4096)

func BenchmarkTokenizer(b *testing.B) {
	r := rand.New(rand.NewSource(123456))
	b.SetBytes(int64(len(benchInput)))
	b.ReportAllocs()

	for n := 0; n < b.N; n++ {
		t := New(benchInput)
		for t.HasMoreData() {
			if r.Intn(4) == 0 {
				t.TokenizeNext(r.Intn(8), token.Category(1))
			} else {
				t.Advance()
			}
		}
		t.Tokenize(token.Text)
	}
}

func BenchmarkTokenizer_CurrentChar(b *testing.B) {
	t := New(benchInput)
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		if !t.HasMoreData() {
			t.tp = 0
		}
		t.CurrentChar()
		t.Advance()
	}
}
