package scoreline

import (
	"math"
	"sort"
)

// Market is the parsed result of one correct-score price list.
type Market struct {
	// Distribution holds the inverse-odds weights normalised to sum to one.
	// It is zero when Valid is false.
	Distribution Distribution
	Valid        bool
	// Skipped lists price labels that were ignored, in sorted order.
	Skipped []string
}

// FromOdds converts decimal correct-score prices keyed by "h-a" labels into a
// distribution. Prices at or below 1.0 and labels that are not "int-int" are skipped.
func FromOdds(prices map[string]float64) Market {
	labels := make([]string, 0, len(prices))
	for label := range prices {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	weights := make(map[Score]float64, len(labels))
	skipped := make([]string, 0)
	for _, label := range labels {
		price := prices[label]
		score, err := ParseScore(label)
		if err != nil || math.IsNaN(price) || price <= 1.0 {
			skipped = append(skipped, label)
			continue
		}
		// Two labels can parse to the same score ("01-0" and "1-0"); keep both weights.
		weights[score] += 1.0 / price
	}

	if len(weights) == 0 {
		return Market{Skipped: skipped}
	}

	total := 0.0
	for _, score := range sortedKeys(weights) {
		total += weights[score]
	}
	if total <= 1e-6 {
		return Market{Skipped: skipped}
	}

	return Market{
		Distribution: NewDistribution(weights),
		Valid:        true,
		Skipped:      skipped,
	}
}

func sortedKeys(weights map[Score]float64) []Score {
	keys := make([]Score, 0, len(weights))
	for score := range weights {
		keys = append(keys, score)
	}
	sortScores(keys)
	return keys
}
