// SPDX-License-Identifier: MIT

package window_test

import (
	"fmt"
	"time"

	"github.com/pppaal/saju-astro-chat-sub036/lexicon"
	"github.com/pppaal/saju-astro-chat-sub036/profile"
	"github.com/pppaal/saju-astro-chat-sub036/window"
)

// ExampleScoreWindow scores a single day and shows the period score equals
// the day's score.
func ExampleScoreWindow() {
	p := profile.Profile{
		DayMaster: lexicon.StemGap,
		DayBranch: lexicon.BranchJa,
		BirthYear: 1990,
		Yongsin:   []lexicon.Element{lexicon.Water},
	}
	d := time.Date(2026, time.October, 16, 0, 0, 0, 0, time.UTC)
	ps, err := window.ScoreWindow(window.Subject{Profile: p}, d, d, window.EventTravel,
		window.DefaultConditions(window.EventTravel))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(len(ps.BestDays), ps.BestDay.Format(time.DateOnly), ps.Score == ps.BestDayScore)
	// Output:
	// 1 2026-10-16 true
}
