// SPDX-License-Identifier: MIT

package lexicon_test

import (
	"testing"

	"github.com/pppaal/saju-astro-chat-sub036/lexicon"
)

// BenchmarkSibsinOf measures the table lookup over all 100 stem pairs.
func BenchmarkSibsinOf(b *testing.B) {
	var sink lexicon.Sibsin
	for i := 0; i < b.N; i++ {
		for d := lexicon.Stem(0); d < lexicon.NumStems; d++ {
			for o := lexicon.Stem(0); o < lexicon.NumStems; o++ {
				sink = lexicon.SibsinOf(d, o)
			}
		}
	}
	_ = sink
}

// BenchmarkParseFourPillars measures the boundary parser on mixed aliases.
func BenchmarkParseFourPillars(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := lexicon.ParseFourPillars("갑자 乙丑 병인 丁卯"); err != nil {
			b.Fatalf("parse failed: %v", err)
		}
	}
}
