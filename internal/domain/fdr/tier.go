package fdr

import "math"

// Tier is the difficulty label attached to a side's final rating.
type Tier string

const (
	TierVeryEasy Tier = "Very Easy"
	TierEasy     Tier = "Easy"
	TierModerate Tier = "Moderate"
	TierHard     Tier = "Hard"
	TierVeryHard Tier = "Very Hard"
)

func (t Tier) String() string {
	return string(t)
}

// DisplayLabel is the wording shown to fantasy managers.
func (t Tier) DisplayLabel() string {
	switch t {
	case TierModerate:
		return "Average Difficulty"
	case TierHard:
		return "Difficult"
	case TierVeryHard:
		return "Very Difficult"
	default:
		return string(t)
	}
}

// Competitiveness describes the gap between the two sides' ratings.
type Competitiveness string

const (
	CompetitivenessMinimal     Competitiveness = "Minimal"
	CompetitivenessMedium      Competitiveness = "Medium"
	CompetitivenessLarge       Competitiveness = "Large"
	CompetitivenessSubstantial Competitiveness = "Substantial"
	CompetitivenessMassive     Competitiveness = "Massive"
)

type band struct {
	maxDiff float64
	easier  Tier
	harder  Tier
	label   Competitiveness
}

var bands = []band{
	{maxDiff: 6, easier: TierHard, harder: TierHard, label: CompetitivenessMinimal},
	{maxDiff: 15, easier: TierModerate, harder: TierHard, label: CompetitivenessMedium},
	{maxDiff: 20, easier: TierEasy, harder: TierHard, label: CompetitivenessLarge},
	{maxDiff: 30, easier: TierEasy, harder: TierVeryHard, label: CompetitivenessSubstantial},
	{maxDiff: math.Inf(1), easier: TierVeryEasy, harder: TierVeryHard, label: CompetitivenessMassive},
}

// TierResult labels both sides of a fixture.
type TierResult struct {
	Home            Tier
	Away            Tier
	Difference      float64
	Competitiveness Competitiveness
}

// Tiers labels both sides from the gap between their final ratings. The side
// with the lower rating, home on ties, takes the easier label of the band.
func Tiers(home, away float64) TierResult {
	diff := math.Abs(home - away)
	b := bands[len(bands)-1]
	for _, candidate := range bands {
		if diff <= candidate.maxDiff {
			b = candidate
			break
		}
	}

	out := TierResult{Difference: Round(diff, 1), Competitiveness: b.label}
	if home <= away {
		out.Home, out.Away = b.easier, b.harder
	} else {
		out.Home, out.Away = b.harder, b.easier
	}
	return out
}
