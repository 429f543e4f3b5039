// SPDX-License-Identifier: MIT

package lexicon

// Static tables. Indexed by the enum value; never mutated after init.

var stemHanja = [NumStems]string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}
var stemKorean = [NumStems]string{"갑", "을", "병", "정", "무", "기", "경", "신", "임", "계"}

var branchHanja = [NumBranches]string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}
var branchKorean = [NumBranches]string{"자", "축", "인", "묘", "진", "사", "오", "미", "신", "유", "술", "해"}

var branchElement = [NumBranches]Element{
	Water, // 子
	Earth, // 丑
	Wood,  // 寅
	Wood,  // 卯
	Earth, // 辰
	Fire,  // 巳
	Fire,  // 午
	Earth, // 未
	Metal, // 申
	Metal, // 酉
	Earth, // 戌
	Water, // 亥
}

// hiddenStems lists 지장간 from residual (여기) to primary (정기).
var hiddenStems = [NumBranches][]HiddenStem{
	{{StemIm, QiResidual}, {StemGye, QiPrimary}},                            // 子
	{{StemGye, QiResidual}, {StemSin, QiMiddle}, {StemGi, QiPrimary}},       // 丑
	{{StemMu, QiResidual}, {StemByeong, QiMiddle}, {StemGap, QiPrimary}},    // 寅
	{{StemGap, QiResidual}, {StemEul, QiPrimary}},                           // 卯
	{{StemEul, QiResidual}, {StemGye, QiMiddle}, {StemMu, QiPrimary}},       // 辰
	{{StemMu, QiResidual}, {StemGyeong, QiMiddle}, {StemByeong, QiPrimary}}, // 巳
	{{StemByeong, QiResidual}, {StemGi, QiMiddle}, {StemJeong, QiPrimary}},  // 午
	{{StemJeong, QiResidual}, {StemEul, QiMiddle}, {StemGi, QiPrimary}},     // 未
	{{StemMu, QiResidual}, {StemIm, QiMiddle}, {StemGyeong, QiPrimary}},     // 申
	{{StemGyeong, QiResidual}, {StemSin, QiPrimary}},                        // 酉
	{{StemSin, QiResidual}, {StemJeong, QiMiddle}, {StemMu, QiPrimary}},     // 戌
	{{StemMu, QiResidual}, {StemGap, QiMiddle}, {StemIm, QiPrimary}},        // 亥
}

// nobility lists the 천을귀인 branches for each day stem.
// 甲戊庚 → 丑未, 乙己 → 子申, 丙丁 → 亥酉, 辛 → 寅午, 壬癸 → 巳卯.
var nobility = [NumStems][2]Branch{
	{BranchChuk, BranchMi}, // 甲
	{BranchJa, BranchSin},  // 乙
	{BranchHae, BranchYu},  // 丙
	{BranchHae, BranchYu},  // 丁
	{BranchChuk, BranchMi}, // 戊
	{BranchJa, BranchSin},  // 己
	{BranchChuk, BranchMi}, // 庚
	{BranchIn, BranchO},    // 辛
	{BranchSa, BranchMyo},  // 壬
	{BranchSa, BranchMyo},  // 癸
}

// Nobility returns the two 천을귀인 branches of a day stem.
func Nobility(s Stem) [2]Branch {
	return nobility[s%NumStems]
}

// IsNobility reports whether b is a 천을귀인 branch for day stem s.
func IsNobility(s Stem, b Branch) bool {
	n := Nobility(s)
	return n[0] == b || n[1] == b
}

// aliases maps every accepted token onto the canonical Hanja string.
// Built once at init from the name tables above.
var (
	stemAliases   = make(map[string]Stem, NumStems*2)
	branchAliases = make(map[string]Branch, NumBranches*2)
)

func init() {
	for i := 0; i < NumStems; i++ {
		stemAliases[stemHanja[i]] = Stem(i)
		stemAliases[stemKorean[i]] = Stem(i)
	}
	for i := 0; i < NumBranches; i++ {
		branchAliases[branchHanja[i]] = Branch(i)
		branchAliases[branchKorean[i]] = Branch(i)
	}
}
