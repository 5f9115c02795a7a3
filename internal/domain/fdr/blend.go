package fdr

// Method names how a final rating was produced.
type Method string

const (
	MethodCombined     Method = "combined"
	MethodOutrightOnly Method = "outright-only"
)

// Rating is the final difficulty of one fixture for both sides.
type Rating struct {
	Home   float64
	Away   float64
	Method Method
	Tiers  TierResult
}

// Blend merges the outright ratings with the correct-score ratings when a
// market was matched to the fixture, and labels the result.
func (c Config) Blend(outright OutrightResult, correctScore *CorrectScoreResult) Rating {
	home, away := outright.Home.FDR, outright.Away.FDR
	method := MethodOutrightOnly

	if correctScore != nil {
		home = c.BlendOutright*home + c.BlendCorrectScore*correctScore.Home.FDR
		away = c.BlendOutright*away + c.BlendCorrectScore*correctScore.Away.FDR
		method = MethodCombined
	}

	home = clamp(home, MinRating, MaxRating)
	away = clamp(away, MinRating, MaxRating)
	return Rating{
		Home:   home,
		Away:   away,
		Method: method,
		Tiers:  Tiers(home, away),
	}
}
