package points

import (
	"math"
	"sort"
)

// PlayerMatchPoints is one player's projection for one fixture.
type PlayerMatchPoints struct {
	PlayerID       *string
	ExternalID     *string
	Name           string
	FixtureID      string
	Team           string
	TeamExternalID *int64
	Opponent       string
	Home           bool
	Expected       float64
	Bonus          int
	Total          float64
}

func (p PlayerMatchPoints) sortID() string {
	if p.PlayerID != nil {
		return *p.PlayerID
	}
	return ""
}

// AssignBonus ranks one fixture's players by expected points and awards the
// bonus ladder to the top ranks. Ties break on player id, then name, then
// input order. Totals are rounded to two decimals. The returned slice is in
// rank order; the input is not modified.
func (sc Scoring) AssignBonus(players []PlayerMatchPoints) []PlayerMatchPoints {
	ranked := make([]PlayerMatchPoints, len(players))
	copy(ranked, players)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Expected != b.Expected {
			return a.Expected > b.Expected
		}
		if a.sortID() != b.sortID() {
			return a.sortID() < b.sortID()
		}
		return a.Name < b.Name
	})

	for i := range ranked {
		ranked[i].Bonus = 0
		if i < len(sc.Bonus) {
			ranked[i].Bonus = sc.Bonus[i]
		}
		ranked[i].Total = round2(ranked[i].Expected + float64(ranked[i].Bonus))
	}
	return ranked
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
