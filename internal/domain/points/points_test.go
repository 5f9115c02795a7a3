package points

import (
	"math"
	"testing"

	"github.com/riskibarqy/fixture-points/internal/domain/player"
	"github.com/riskibarqy/fixture-points/internal/domain/playerstats"
	"github.com/riskibarqy/fixture-points/internal/domain/scoreline"
)

func TestShareOf(t *testing.T) {
	t.Parallel()

	share := ShareOf(playerstats.SeasonStats{Goals: 10, Assists: 2}, playerstats.TeamTotals{Goals: 20, Assists: 8})
	if share.Goals != 0.5 || share.Assists != 0.25 {
		t.Fatalf("unexpected share: %+v", share)
	}

	zero := ShareOf(playerstats.SeasonStats{Goals: 0, Assists: 0}, playerstats.TeamTotals{})
	if zero.Goals != 0 || zero.Assists != 0 {
		t.Fatalf("expected zero share for empty team: %+v", zero)
	}
}

func TestScoring_ForScore(t *testing.T) {
	t.Parallel()

	sc := DefaultScoring()
	tests := []struct {
		name         string
		pos          player.Position
		share        Share
		goalsFor     int
		goalsAgainst int
		want         float64
	}{
		{
			name:     "half the goals at two scored",
			pos:      player.PositionForward,
			share:    Share{Goals: 10.0 / 20.0},
			goalsFor: 2, goalsAgainst: 1,
			want: 2 + 1.0*4,
		},
		{
			name:     "assists capped by remaining goals",
			pos:      player.PositionMidfielder,
			share:    Share{Goals: 0.5, Assists: 0.9},
			goalsFor: 2, goalsAgainst: 0,
			want: 2 + 1.0*5 + 1.0*3 + 1,
		},
		{
			name:     "goalkeeper clean sheet",
			pos:      player.PositionGoalkeeper,
			goalsFor: 0, goalsAgainst: 0,
			want: 2 + 4,
		},
		{
			name:     "defender concedes three",
			pos:      player.PositionDefender,
			share:    Share{Goals: 0.1},
			goalsFor: 1, goalsAgainst: 3,
			want: 2 + 0.1*6 - 1,
		},
		{
			name:     "forward unaffected by conceding",
			pos:      player.PositionForward,
			goalsFor: 0, goalsAgainst: 4,
			want: 2,
		},
		{
			name:     "goalkeeper concedes four",
			pos:      player.PositionGoalkeeper,
			goalsFor: 0, goalsAgainst: 4,
			want: 2 - 2,
		},
	}

	for _, tc := range tests {
		got := sc.ForScore(tc.pos, tc.share, tc.goalsFor, tc.goalsAgainst)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("%s: got=%v want=%v", tc.name, got, tc.want)
		}
	}
}

func TestScoring_Expected_ZeroTeamGoals(t *testing.T) {
	t.Parallel()

	sc := DefaultScoring()
	share := ShareOf(playerstats.SeasonStats{Goals: 0}, playerstats.TeamTotals{Goals: 0})
	dist := scoreline.NewDistribution(map[scoreline.Score]float64{
		{Home: 3, Away: 0}: 1,
	})

	got := sc.Expected(player.PositionForward, share, dist, true)
	if got != sc.Appearance {
		t.Fatalf("expected appearance points only, got=%v", got)
	}
}

func TestScoring_Expected_WeightsBySide(t *testing.T) {
	t.Parallel()

	sc := DefaultScoring()
	dist := scoreline.NewDistribution(map[scoreline.Score]float64{
		{Home: 1, Away: 0}: 0.5,
		{Home: 0, Away: 2}: 0.5,
	})

	home := sc.Expected(player.PositionDefender, Share{}, dist, true)
	// 1-0: 2 + 4 clean sheet. 0-2: 2 - 1.
	if math.Abs(home-(0.5*6+0.5*1)) > 1e-9 {
		t.Fatalf("unexpected home expectation: %v", home)
	}

	away := sc.Expected(player.PositionDefender, Share{}, dist, false)
	// 1-0 from away: 2 + 0 conceded 1. 0-2 from away: 2 + 4 clean sheet.
	if math.Abs(away-(0.5*2+0.5*6)) > 1e-9 {
		t.Fatalf("unexpected away expectation: %v", away)
	}
}

func strPtr(v string) *string { return &v }

func TestScoring_AssignBonus(t *testing.T) {
	t.Parallel()

	sc := DefaultScoring()
	players := []PlayerMatchPoints{
		{Name: "Low", PlayerID: strPtr("p5"), Expected: 1.111},
		{Name: "Tie B", PlayerID: strPtr("p3"), Expected: 5.0},
		{Name: "Top", PlayerID: strPtr("p9"), Expected: 6.456},
		{Name: "Tie A", PlayerID: strPtr("p2"), Expected: 5.0},
		{Name: "No Id", Expected: 1.111},
	}

	ranked := sc.AssignBonus(players)
	wantNames := []string{"Top", "Tie A", "Tie B", "No Id", "Low"}
	wantBonus := []int{3, 2, 1, 0, 0}
	for i := range ranked {
		if ranked[i].Name != wantNames[i] || ranked[i].Bonus != wantBonus[i] {
			t.Fatalf("unexpected rank %d: got=%s/%d want=%s/%d", i, ranked[i].Name, ranked[i].Bonus, wantNames[i], wantBonus[i])
		}
	}
	if ranked[0].Total != 9.46 {
		t.Fatalf("unexpected total: %v", ranked[0].Total)
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i-1].Total < ranked[i].Total {
			t.Fatalf("totals not monotonic at %d: %v < %v", i, ranked[i-1].Total, ranked[i].Total)
		}
	}
	if players[0].Bonus != 0 {
		t.Fatalf("input must not be modified")
	}
}

func TestScoring_AssignBonus_FewerThanThree(t *testing.T) {
	t.Parallel()

	ranked := DefaultScoring().AssignBonus([]PlayerMatchPoints{{Name: "Solo", Expected: 2}})
	if len(ranked) != 1 || ranked[0].Bonus != 3 || ranked[0].Total != 5 {
		t.Fatalf("unexpected ranking: %+v", ranked)
	}
}
