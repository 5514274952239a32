package wordidx_test

import (
	"testing"

	"github.com/katalvlaran/dictdash/wordidx"
)

// denseWords enumerates every 3-letter word over a k-letter alphabet,
// giving a dense one-substitution neighborhood graph.
func denseWords(k int) []string {
	words := make([]string, 0, k*k*k)
	for a := 0; a < k; a++ {
		for b := 0; b < k; b++ {
			for c := 0; c < k; c++ {
				words = append(words, string([]byte{'a' + byte(a), 'a' + byte(b), 'a' + byte(c)}))
			}
		}
	}

	return words
}

// BenchmarkNewIndex measures index construction over a dense dictionary.
func BenchmarkNewIndex(b *testing.B) {
	words := denseWords(8) // 512 words
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = wordidx.NewIndex(words)
	}
}

// BenchmarkSimilar measures a single neighborhood query.
func BenchmarkSimilar(b *testing.B) {
	ix := wordidx.NewIndex(denseWords(8))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = ix.Similar("abc", i%3)
	}
}
