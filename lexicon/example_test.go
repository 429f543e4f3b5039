// SPDX-License-Identifier: MIT

package lexicon_test

import (
	"fmt"

	"github.com/pppaal/saju-astro-chat-sub036/lexicon"
)

// ExampleVoidBranches shows the two void branches of the 甲子 decad.
func ExampleVoidBranches() {
	v := lexicon.VoidBranches(lexicon.CycleAt(0))
	fmt.Println(v[0], v[1])
	// Output:
	// 戌 亥
}

// ExampleSibsinOf lists the roles of every stem for a 甲 day master.
func ExampleSibsinOf() {
	for s := lexicon.Stem(0); s < lexicon.NumStems; s++ {
		fmt.Printf("%s:%s ", s, lexicon.SibsinOf(lexicon.StemGap, s))
	}
	fmt.Println()
	// Output:
	// 甲:비견 乙:겁재 丙:식신 丁:상관 戊:편재 己:정재 庚:편관 辛:정관 壬:편인 癸:정인
}

// ExampleNormalize shows alias normalization and the lenient passthrough.
func ExampleNormalize() {
	fmt.Println(lexicon.Normalize("갑"), lexicon.Normalize("亥"), lexicon.Normalize("??"))
	// Output:
	// 甲 亥 ??
}

// ExampleCycleAt demonstrates wraparound of the sixty cycle.
func ExampleCycleAt() {
	fmt.Println(lexicon.CycleAt(-1), lexicon.CycleAt(60), lexicon.CycleAt(54).Korean())
	// Output:
	// 癸亥 甲子 무오
}
