// SPDX-License-Identifier: MIT

package lexicon

// Stage is one of the twelve life-cycle positions (십이운성) of a stem
// on a branch.
type Stage uint8

const (
	StageJangsaeng Stage = iota // 장생 birth
	StageMogyok                 // 목욕 bath
	StageGwandae                // 관대 cap and belt
	StageGeonrok                // 건록 prime (peak)
	StageJewang                 // 제왕 emperor
	StageSoe                    // 쇠 decline
	StageByeong                 // 병 sickness
	StageSa                     // 사 death
	StageMyo                    // 묘 tomb
	StageJeol                   // 절 severance
	StageTae                    // 태 conception
	StageYang                   // 양 nurture
)

// NumStages is the number of life-cycle stages.
const NumStages = 12

var stageNames = [NumStages]string{"장생", "목욕", "관대", "건록", "제왕", "쇠", "병", "사", "묘", "절", "태", "양"}

// stageScore rates each stage on a 1..10 scale; 건록 is the peak.
var stageScore = [NumStages]int{8, 5, 7, 10, 9, 5, 3, 2, 3, 1, 4, 6}

// String returns the Korean name of the stage.
func (s Stage) String() string {
	if s >= NumStages {
		return "운성(?)"
	}
	return stageNames[s]
}

// Energy buckets a stage score.
type Energy uint8

const (
	EnergyWeak Energy = iota
	EnergyMedium
	EnergyStrong
)

// String returns "weak", "medium" or "strong".
func (e Energy) String() string {
	switch e {
	case EnergyStrong:
		return "strong"
	case EnergyMedium:
		return "medium"
	default:
		return "weak"
	}
}

// StageInfo is the result of TwelveStageOf.
type StageInfo struct {
	Stage  Stage
	Score  int
	Energy Energy
}

// birthBranch is the 장생 branch of each stem. Yang stems advance through
// the branches from there, yin stems move backwards.
var birthBranch = [NumStems]Branch{
	BranchHae, // 甲
	BranchO,   // 乙
	BranchIn,  // 丙
	BranchYu,  // 丁
	BranchIn,  // 戊
	BranchYu,  // 己
	BranchSa,  // 庚
	BranchJa,  // 辛
	BranchSin, // 壬
	BranchMyo, // 癸
}

// TwelveStageOf returns the life-cycle stage of dayMaster on branch b.
func TwelveStageOf(dayMaster Stem, b Branch) StageInfo {
	d := dayMaster % NumStems
	start := int(birthBranch[d])
	var offset int
	if d.Polarity() == Yang {
		offset = int(b%NumBranches) - start
	} else {
		offset = start - int(b%NumBranches)
	}
	st := Stage(wrap(offset, NumStages))
	score := stageScore[st]
	en := EnergyWeak
	switch {
	case score >= 7:
		en = EnergyStrong
	case score >= 4:
		en = EnergyMedium
	}
	return StageInfo{Stage: st, Score: score, Energy: en}
}
