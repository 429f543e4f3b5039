// SPDX-License-Identifier: MIT

package profile_test

import (
	"fmt"

	"github.com/pppaal/saju-astro-chat-sub036/lexicon"
	"github.com/pppaal/saju-astro-chat-sub036/profile"
)

// ExampleAnalyze scores a 丙寅 day for a 甲 day master.
func ExampleAnalyze() {
	day, _ := lexicon.ParsePillar("병인")
	r := profile.Analyze(profile.Input{
		Profile: profile.Profile{
			DayMaster: lexicon.StemGap,
			DayBranch: lexicon.BranchJa,
			BirthYear: 1990,
			Yongsin:   []lexicon.Element{lexicon.Water},
		},
		Day:        day,
		TargetYear: 2024,
	})
	fmt.Println(r.Iljin.GanZhi, r.Iljin.Score, r.Iljin.FactorKeys, r.Iljin.Positive)
	// Output:
	// 丙寅 68 [식상운 건록 식신] true
}
