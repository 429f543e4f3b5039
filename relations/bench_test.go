// SPDX-License-Identifier: MIT

package relations_test

import (
	"testing"

	"github.com/pppaal/saju-astro-chat-sub036/lexicon"
	"github.com/pppaal/saju-astro-chat-sub036/relations"
)

// BenchmarkAnalyze measures a full pass with every family enabled.
func BenchmarkAnalyze(b *testing.B) {
	fp := mustChart(b, "庚申 丙子 壬辰 甲寅")
	opts := relations.DefaultOptions()
	opts.GongmangPolicy = relations.GongmangDayAndYear
	opts.HeavenlyClashMode = lexicon.ClashMode5
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = relations.AnalyzeWithOptions(fp, opts)
	}
}

// BenchmarkBranchInteractions measures the two-branch path used per day.
func BenchmarkBranchInteractions(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = relations.BranchInteractions(lexicon.BranchJa, lexicon.BranchO)
	}
}
