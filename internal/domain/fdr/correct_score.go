package fdr

import "github.com/riskibarqy/fixture-points/internal/domain/scoreline"

// NeutralRating is reported for both sides when a market carries no usable prices.
const NeutralRating = 50.0

// SaturatedAttack is reported as the attack figure when a side's implied xG is negligible.
const SaturatedAttack = 999.0

// SideCorrectScore is one side's correct-score derived difficulty.
type SideCorrectScore struct {
	FDR            float64
	ExpectedPoints float64
	// Attack and Defence are nil when the market had no valid prices.
	Attack  *float64
	Defence *float64
}

// CorrectScoreResult is the correct-score view of one fixture, oriented to the fixture.
type CorrectScoreResult struct {
	Valid   bool
	Outcome scoreline.Outcome
	Home    SideCorrectScore
	Away    SideCorrectScore
}

// CorrectScore rates both sides from a market distribution already oriented to
// the fixture's home/away order. An invalid market yields the neutral outcome
// and NeutralRating for both sides.
func CorrectScore(market scoreline.Market) CorrectScoreResult {
	if !market.Valid {
		return CorrectScoreResult{
			Outcome: scoreline.NeutralOutcome,
			Home:    SideCorrectScore{FDR: NeutralRating},
			Away:    SideCorrectScore{FDR: NeutralRating},
		}
	}

	outcome := market.Distribution.Outcome()
	homePts := 3*outcome.Home + outcome.Draw
	awayPts := 3*outcome.Away + outcome.Draw

	xgHome, xgAway := market.Distribution.ExpectedGoals()
	homeAttack, homeDefence := attackDefence(xgHome, xgAway)
	awayAttack, awayDefence := attackDefence(xgAway, xgHome)

	return CorrectScoreResult{
		Valid:   true,
		Outcome: outcome,
		Home: SideCorrectScore{
			FDR:            ratingFromPoints(homePts),
			ExpectedPoints: homePts,
			Attack:         &homeAttack,
			Defence:        &homeDefence,
		},
		Away: SideCorrectScore{
			FDR:            ratingFromPoints(awayPts),
			ExpectedPoints: awayPts,
			Attack:         &awayAttack,
			Defence:        &awayDefence,
		},
	}
}

func ratingFromPoints(expectedPoints float64) float64 {
	return clamp(100-(expectedPoints/3)*100, MinRating, MaxRating)
}

func attackDefence(xgFor, xgAgainst float64) (attack, defence float64) {
	attack = SaturatedAttack
	if xgFor > 0.01 {
		attack = Round(100/xgFor, 1)
	}
	return attack, Round(xgAgainst*100, 1)
}
