// SPDX-License-Identifier: MIT

package relations_test

import (
	"fmt"

	"github.com/pppaal/saju-astro-chat-sub036/lexicon"
	"github.com/pppaal/saju-astro-chat-sub036/relations"
)

// ExampleAnalyze prints the relations of a simple chart.
func ExampleAnalyze() {
	fp, _ := lexicon.ParseFourPillars("갑자 을축 병인 정묘")
	for _, h := range relations.Analyze(fp) {
		fmt.Println(h.Kind.Korean(), h.Detail, h.Positions)
	}
	// Output:
	// 육합 子-丑 [year month]
	// 형 子-卯 [year time]
}

// ExampleBranchInteractions checks a candidate day branch against a natal one.
func ExampleBranchInteractions() {
	for _, h := range relations.BranchInteractions(lexicon.BranchChuk, lexicon.BranchJa) {
		fmt.Println(h.Kind, h.Detail, *h.Transform)
	}
	// Output:
	// six_combination 子-丑 earth
}
