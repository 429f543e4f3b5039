// Package saju reads four-pillar (사주) charts and ranks calendar days for
// life events.
//
// The work is split across four packages, each usable on its own:
//
//	lexicon/   — stems, branches, elements, sibsin roles, twelve stages,
//	             pair and triad tables, special stars
//	calendar/  — solar-term calendar: year, month, day and hour pillars
//	relations/ — every combination, clash, punishment, break, harm,
//	             resentment and void inside a chart
//	profile/   — derived profile (yongsin, geokguk, decades) and the
//	             six-horizon analysis of one date
//	window/    — event condition tables and the parallel day scorer
//
// The saju command in cmd/saju exposes all of it as JSON.
//
// Quick example:
//
//	fp, _ := lexicon.ParseFourPillars("甲子 乙丑 丙寅 丁卯")
//	for _, h := range relations.Analyze(fp) {
//		fmt.Println(h.Kind.Korean(), h.Detail, h.Positions)
//	}
//
//	// 육합 子-丑 [year month]
//	// 형 子-卯 [year time]
package saju
