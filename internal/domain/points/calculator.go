package points

import (
	"github.com/riskibarqy/fixture-points/internal/domain/player"
	"github.com/riskibarqy/fixture-points/internal/domain/playerstats"
	"github.com/riskibarqy/fixture-points/internal/domain/scoreline"
)

// Scoring stores fantasy point values used for projections.
type Scoring struct {
	Appearance float64
	Assist     float64
	GoalBy     map[player.Position]float64
	CleanSheet map[player.Position]float64
	// ConcededEvery is the number of goals conceded per point lost by positions in ConcedePenalty.
	ConcededEvery  int
	ConcedePenalty map[player.Position]bool
	Bonus          []int
}

func DefaultScoring() Scoring {
	return Scoring{
		Appearance: 2,
		Assist:     3,
		GoalBy: map[player.Position]float64{
			player.PositionGoalkeeper: 10,
			player.PositionDefender:   6,
			player.PositionMidfielder: 5,
			player.PositionForward:    4,
		},
		CleanSheet: map[player.Position]float64{
			player.PositionGoalkeeper: 4,
			player.PositionDefender:   4,
			player.PositionMidfielder: 1,
			player.PositionForward:    0,
		},
		ConcededEvery: 2,
		ConcedePenalty: map[player.Position]bool{
			player.PositionGoalkeeper: true,
			player.PositionDefender:   true,
		},
		Bonus: []int{3, 2, 1},
	}
}

// Share is a player's fraction of the team's season output.
type Share struct {
	Goals   float64
	Assists float64
}

// ShareOf returns the player's share of team goals and assists. A zero team
// total gives a zero share.
func ShareOf(stats playerstats.SeasonStats, team playerstats.TeamTotals) Share {
	var s Share
	if team.Goals > 0 {
		s.Goals = float64(stats.Goals) / float64(team.Goals)
	}
	if team.Assists > 0 {
		s.Assists = float64(stats.Assists) / float64(team.Assists)
	}
	return s
}

// ForScore returns the points a player is expected to earn if the team
// scores goalsFor and concedes goalsAgainst.
func (sc Scoring) ForScore(pos player.Position, share Share, goalsFor, goalsAgainst int) float64 {
	pts := sc.Appearance

	scored := float64(goalsFor)
	xg := share.Goals * scored
	xa := share.Assists * scored
	xa = max(0, min(xa, scored-xg))

	pts += xg * sc.goalValue(pos)
	pts += xa * sc.Assist

	if goalsAgainst == 0 {
		pts += sc.CleanSheet[pos]
	}
	if sc.ConcedePenalty[pos] && sc.ConcededEvery > 0 {
		pts -= float64(goalsAgainst / sc.ConcededEvery)
	}
	return pts
}

func (sc Scoring) goalValue(pos player.Position) float64 {
	if v, ok := sc.GoalBy[pos]; ok {
		return v
	}
	return sc.GoalBy[player.PositionForward]
}

// Expected weights ForScore by every scoreline of a distribution oriented to
// the fixture. When home is false the scorelines are read from the away side.
func (sc Scoring) Expected(pos player.Position, share Share, dist scoreline.Distribution, home bool) float64 {
	total := 0.0
	for _, e := range dist.Entries() {
		goalsFor, goalsAgainst := e.Score.Home, e.Score.Away
		if !home {
			goalsFor, goalsAgainst = goalsAgainst, goalsFor
		}
		total += sc.ForScore(pos, share, goalsFor, goalsAgainst) * e.Probability
	}
	return total
}
