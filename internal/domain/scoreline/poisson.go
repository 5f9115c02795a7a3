package scoreline

import "math"

const (
	DefaultAverageTotalGoals = 2.7
	DefaultMaxGoals          = 6
	MinExpectedGoals         = 0.1
)

// EstimateExpectedGoals splits averageTotal between the sides in proportion to
// the inverse of their difficulty ratings. Each side gets at least MinExpectedGoals.
func EstimateExpectedGoals(homeFDR, awayFDR, averageTotal float64) (home, away float64) {
	if math.IsNaN(homeFDR) || math.IsNaN(awayFDR) {
		return averageTotal / 2, averageTotal / 2
	}

	homeProxy := 1 / (homeFDR + 0.1)
	awayProxy := 1 / (awayFDR + 0.1)
	totalProxy := homeProxy + awayProxy

	homeRatio := 0.5
	if totalProxy > 1e-9 && !math.IsInf(totalProxy, 0) {
		homeRatio = homeProxy / totalProxy
	}

	return math.Max(MinExpectedGoals, homeRatio*averageTotal), math.Max(MinExpectedGoals, (1-homeRatio)*averageTotal)
}

// PoissonPMF returns P(X = k) for X ~ Poisson(lambda).
func PoissonPMF(k int, lambda float64) float64 {
	if k < 0 || lambda < 0 {
		return 0
	}
	if lambda == 0 {
		if k == 0 {
			return 1
		}
		return 0
	}
	lgamma, _ := math.Lgamma(float64(k + 1))
	return math.Exp(float64(k)*math.Log(lambda) - lambda - lgamma)
}

// Poisson builds an independent-Poisson grid over 0..maxGoals goals per side,
// renormalised to absorb truncation loss. A degenerate grid collapses to 0-0.
func Poisson(homeXG, awayXG float64, maxGoals int) Distribution {
	if maxGoals < 0 {
		maxGoals = DefaultMaxGoals
	}
	if !finite(homeXG) || !finite(awayXG) || homeXG < 0 || awayXG < 0 {
		return Certain(Score{})
	}

	homePMF := make([]float64, maxGoals+1)
	awayPMF := make([]float64, maxGoals+1)
	for g := 0; g <= maxGoals; g++ {
		homePMF[g] = PoissonPMF(g, homeXG)
		awayPMF[g] = PoissonPMF(g, awayXG)
	}

	weights := make(map[Score]float64, (maxGoals+1)*(maxGoals+1))
	for h := 0; h <= maxGoals; h++ {
		for a := 0; a <= maxGoals; a++ {
			p := homePMF[h] * awayPMF[a]
			if !finite(p) {
				return Certain(Score{})
			}
			weights[Score{Home: h, Away: a}] = p
		}
	}
	return NewDistribution(weights)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
