package fdr

import (
	"math"
	"sort"
)

const (
	DefaultStrength = 10.0
	MinRating       = 1.0
	MaxRating       = 99.0
)

// OutrightPrice is one team's tournament-winner price.
type OutrightPrice struct {
	Team        string
	DecimalOdds float64
}

// Strengths maps canonical team to a strength score in [10, 100].
type Strengths map[string]float64

// Of returns the team's strength, or DefaultStrength when unknown.
func (s Strengths) Of(team string) float64 {
	if v, ok := s[team]; ok {
		return v
	}
	return DefaultStrength
}

// StrengthReport is the output of NormalizeStrengths.
type StrengthReport struct {
	Strengths Strengths
	// Defaulted lists fixture teams without a usable price, sorted.
	Defaulted []string
	// Rejected lists priced teams whose odds were not above 1.0, in input order.
	Rejected []OutrightPrice
	// Duplicates lists later prices for an already-seen team, in input order.
	Duplicates []OutrightPrice
}

// NormalizeStrengths turns outright prices into strength scores. The first price
// per team wins. Implied probabilities are normalised to sum to one and scaled so
// the favourite scores 100 and the rest fall linearly towards 10. Every team in
// fixtureTeams receives a score.
func NormalizeStrengths(prices []OutrightPrice, fixtureTeams []string) StrengthReport {
	report := StrengthReport{Strengths: make(Strengths, len(fixtureTeams))}

	seen := make(map[string]struct{}, len(prices))
	teams := make([]string, 0, len(prices))
	implied := make(map[string]float64, len(prices))
	for _, p := range prices {
		if _, dup := seen[p.Team]; dup {
			report.Duplicates = append(report.Duplicates, p)
			continue
		}
		seen[p.Team] = struct{}{}
		if math.IsNaN(p.DecimalOdds) || p.DecimalOdds <= 1.0 {
			report.Rejected = append(report.Rejected, p)
			continue
		}
		teams = append(teams, p.Team)
		implied[p.Team] = 1 / p.DecimalOdds
	}

	total := 0.0
	for _, team := range teams {
		total += implied[team]
	}

	if total > 0 {
		maxNorm := 0.0
		for _, team := range teams {
			maxNorm = math.Max(maxNorm, implied[team]/total)
		}
		for _, team := range teams {
			report.Strengths[team] = implied[team]/total/maxNorm*90 + 10
		}
	}

	for _, team := range fixtureTeams {
		if _, ok := report.Strengths[team]; ok {
			continue
		}
		report.Strengths[team] = DefaultStrength
		report.Defaulted = append(report.Defaulted, team)
	}
	sort.Strings(report.Defaulted)
	return report
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Min(hi, math.Max(lo, v))
}

// Round rounds v to the given number of decimal places, half away from zero.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
