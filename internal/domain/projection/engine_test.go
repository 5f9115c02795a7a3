package projection

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/riskibarqy/fixture-points/internal/domain/fdr"
	"github.com/riskibarqy/fixture-points/internal/domain/fixture"
	"github.com/riskibarqy/fixture-points/internal/domain/odds"
	"github.com/riskibarqy/fixture-points/internal/domain/player"
	"github.com/riskibarqy/fixture-points/internal/domain/playerstats"
	"github.com/riskibarqy/fixture-points/internal/domain/points"
	"github.com/riskibarqy/fixture-points/internal/domain/reference"
	"github.com/riskibarqy/fixture-points/internal/domain/scoreline"
	"github.com/riskibarqy/fixture-points/internal/domain/team"
)

func testTables(t *testing.T) reference.Tables {
	t.Helper()

	ids := []int64{1, 2, 3}
	dir, err := team.NewDirectory([]team.Team{
		{Name: "Alpha FC", ShortCode: "ALP", ExternalID: &ids[0]},
		{Name: "Beta FC", ShortCode: "BET", ExternalID: &ids[1]},
		{Name: "Gamma FC", ShortCode: "GAM", ExternalID: &ids[2]},
	})
	if err != nil {
		t.Fatalf("new directory: %v", err)
	}
	return reference.Tables{
		Teams: dir,
		Venues: fdr.VenueTable{
			HomeTeams: map[string]string{"Alpha Park": "Alpha FC"},
			Regions: map[string]fdr.Region{
				"Alpha Park": fdr.RegionEast,
				"West Bowl":  fdr.RegionWest,
			},
		},
	}
}

func at(day, hour int) time.Time {
	return time.Date(2025, 6, day, hour, 0, 0, 0, time.UTC)
}

func strPtr(v string) *string { return &v }

func testInputs() Inputs {
	return Inputs{
		Fixtures: []fixture.Fixture{
			{ID: "f2", Gameweek: "GW1", HomeTeam: "Gamma FC", AwayTeam: "Beta FC", KickoffAt: at(15, 18), Venue: "West Bowl", Group: "A"},
			{ID: "f1", Gameweek: "GW1", HomeTeam: "Alpha FC", AwayTeam: "Beta FC", KickoffAt: at(14, 20), Venue: "Alpha Park", Group: "A"},
			{ID: "f3", Gameweek: "GW2", HomeTeam: "Alpha FC", AwayTeam: "Gamma FC", KickoffAt: at(19, 12), Venue: "Alpha Park", Group: "A"},
			{ID: "f1", Gameweek: "GW1", HomeTeam: "Alpha FC", AwayTeam: "Beta FC", KickoffAt: at(14, 20), Venue: "Alpha Park", Group: "A"},
			{ID: "bad", HomeTeam: "Alpha FC", AwayTeam: "Alpha FC", KickoffAt: at(20, 12)},
		},
		Outrights: []fdr.OutrightPrice{
			{Team: "Alpha FC", DecimalOdds: 3},
			{Team: "Beta FC", DecimalOdds: 6},
			{Team: "Gamma FC", DecimalOdds: 12},
		},
		CorrectScores: []odds.CorrectScoreMarket{
			{HomeTeam: "Beta FC", AwayTeam: "Gamma FC", Date: "2025-06-15", Prices: map[string]float64{"2-0": 2, "1-1": 4, "0-1": 8}},
			{HomeTeam: "Alpha FC", AwayTeam: "Gamma FC", Date: "2025-06-19", Prices: map[string]float64{"Any Other": 4, "1-0": 1.0}},
		},
		Players: []playerstats.SeasonStats{
			{PlayerID: strPtr("a9"), Name: "Alpha Striker", Team: "Alpha FC", Position: player.PositionForward, Goals: 12, Assists: 2},
			{PlayerID: strPtr("a1"), Name: "Alpha Keeper", Team: "Alpha FC", Position: player.PositionGoalkeeper},
			{PlayerID: strPtr("a4"), Name: "Alpha Back", Team: "Alpha FC", Position: player.PositionDefender, Goals: 1, Assists: 3},
			{PlayerID: strPtr("a9"), Name: "Alpha Striker Again", Team: "Alpha FC", Position: player.PositionForward, Goals: 12},
			{PlayerID: strPtr("b7"), Name: "Beta Winger", Team: "Beta FC", Position: player.PositionMidfielder, Goals: 2, Assists: 1},
			{PlayerID: strPtr("b9"), Name: "Beta Forward", Team: "Beta FC", Position: player.PositionForward, Goals: 2, Assists: 1},
			{PlayerID: strPtr("b1"), Name: "Beta Keeper", Team: "Beta FC", Position: player.PositionGoalkeeper},
			{Name: "Gamma Only", Team: "Gamma FC", Position: player.PositionForward},
			{Name: "Gamma Mid", Team: "Gamma FC", Position: player.PositionMidfielder},
		},
	}
}

func hasWarning(warnings []Warning, code WarningCode) bool {
	for _, w := range warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}

func TestEngine_Run(t *testing.T) {
	t.Parallel()

	engine := NewEngine(testTables(t), DefaultOptions())
	report, err := engine.Run(testInputs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.Ratings) != 3 || len(report.Groups) != 3 {
		t.Fatalf("unexpected fixture count: ratings=%d groups=%d", len(report.Ratings), len(report.Groups))
	}
	wantOrder := []string{"f1", "f2", "f3"}
	for i, id := range wantOrder {
		if report.Ratings[i].Fixture.ID != id || report.Groups[i].FixtureID != id {
			t.Fatalf("unexpected order at %d: rating=%s group=%s", i, report.Ratings[i].Fixture.ID, report.Groups[i].FixtureID)
		}
	}

	for _, code := range []WarningCode{WarnInvalidFixture, WarnDuplicateFixture, WarnDuplicatePlayer, WarnInvalidScoreline, WarnInvalidMarket} {
		if !hasWarning(report.Warnings, code) {
			t.Fatalf("expected warning %s, got=%v", code, report.Warnings)
		}
	}

	for _, r := range report.Ratings {
		for _, v := range []float64{r.Rating.Home, r.Rating.Away, r.Outright.Home.FDR, r.Outright.Away.FDR} {
			if v < fdr.MinRating || v > fdr.MaxRating {
				t.Fatalf("rating out of bounds for %s: %v", r.Fixture.ID, v)
			}
		}
		if math.Abs(r.Distribution.Total()-1) > 1e-6 {
			t.Fatalf("distribution for %s sums to %v", r.Fixture.ID, r.Distribution.Total())
		}
		for _, e := range r.Distribution.Entries() {
			if e.Probability < 0 {
				t.Fatalf("negative probability for %s", r.Fixture.ID)
			}
		}
	}

	first := report.Ratings[0]
	if first.PointsMethod != PointsFromPoisson || first.Rating.Method != fdr.MethodOutrightOnly {
		t.Fatalf("unexpected first fixture methods: %s/%s", first.PointsMethod, first.Rating.Method)
	}
	if first.Outright.Home.VenueImpact != -12 || first.Outright.Away.VenueImpact != 8 {
		t.Fatalf("unexpected venue impact: %+v", first.Outright)
	}
	if first.MatchAPIIDs() != "1_vs_2" {
		t.Fatalf("unexpected match api ids: %s", first.MatchAPIIDs())
	}

	second := report.Ratings[1]
	if !second.MarketReversed || second.PointsMethod != PointsFromCorrectScore || second.Rating.Method != fdr.MethodCombined {
		t.Fatalf("expected reversed correct-score market: %+v", second)
	}
	if got := second.Distribution.Probability(scoreline.Score{Home: 0, Away: 2}); math.Abs(got-0.5/(0.5+0.25+0.125)) > 1e-9 {
		t.Fatalf("market not oriented to fixture: p(0-2)=%v", got)
	}
	if second.CorrectScore.Outcome.Away <= second.CorrectScore.Outcome.Home {
		t.Fatalf("away side should be favoured after flipping: %+v", second.CorrectScore.Outcome)
	}
	if second.Rating.Away >= second.Rating.Home {
		t.Fatalf("favoured away side should have the easier rating: %+v", second.Rating)
	}

	third := report.Ratings[2]
	if third.PointsMethod != PointsFromFallback || third.Rating.Method != fdr.MethodCombined {
		t.Fatalf("unexpected fallback methods: %s/%s", third.PointsMethod, third.Rating.Method)
	}
	if third.CorrectScore.Home.FDR != fdr.NeutralRating {
		t.Fatalf("expected neutral correct-score rating: %+v", third.CorrectScore)
	}
	if third.Outright.Away.RestDays == nil || *third.Outright.Away.RestDays != 4 || !third.Outright.Away.CrossCountry {
		t.Fatalf("unexpected gamma history: %+v", third.Outright.Away)
	}

	for _, g := range report.Groups {
		seen := map[string]bool{}
		for i, p := range g.Players {
			key := p.Team + p.Name
			if seen[key] {
				t.Fatalf("player %s appears twice in %s", p.Name, g.FixtureID)
			}
			seen[key] = true
			if i > 0 && g.Players[i-1].Total < p.Total {
				t.Fatalf("totals not ordered in %s", g.FixtureID)
			}
			wantBonus := 0
			if i < 3 {
				wantBonus = 3 - i
			}
			if p.Bonus != wantBonus {
				t.Fatalf("unexpected bonus at rank %d: %d", i, p.Bonus)
			}
		}
	}

	gammaOnly := findPlayer(t, report.Groups[1].Players, "Gamma Only")
	if math.Abs(gammaOnly.Expected-2) > 1e-9 {
		t.Fatalf("player on a team without goals should only earn appearance points: %v", gammaOnly.Expected)
	}
	if !gammaOnly.Home || gammaOnly.Opponent != "Beta FC" {
		t.Fatalf("unexpected gamma side: %+v", gammaOnly)
	}

	// The Beta vs Gamma market is published away-first: its 0-1 price is a
	// Gamma home win to nil, the only Gamma clean sheet.
	gammaMid := findPlayer(t, report.Groups[1].Players, "Gamma Mid")
	if want := 2 + 1.0/7; math.Abs(gammaMid.Expected-want) > 1e-9 {
		t.Fatalf("unexpected gamma clean sheet expectation: got=%v want=%v", gammaMid.Expected, want)
	}
}

func TestEngine_Rate_EmptyCorrectScoreMarket(t *testing.T) {
	t.Parallel()

	engine := NewEngine(testTables(t), DefaultOptions())
	ratings, err := engine.Rate(Inputs{
		Fixtures: []fixture.Fixture{{ID: "x", HomeTeam: "Alpha FC", AwayTeam: "Beta FC", KickoffAt: at(14, 12), Venue: "Alpha Park"}},
		Outrights: []fdr.OutrightPrice{
			{Team: "Alpha FC", DecimalOdds: 2},
			{Team: "Beta FC", DecimalOdds: 20},
		},
		CorrectScores: []odds.CorrectScoreMarket{
			{HomeTeam: "Alpha FC", AwayTeam: "Beta FC", Date: "2025-06-14", Prices: map[string]float64{}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := ratings.Fixtures[0]
	if r.CorrectScore != nil || r.MarketReversed {
		t.Fatalf("empty market must be treated as absent: %+v", r.CorrectScore)
	}
	if r.Rating.Method != fdr.MethodOutrightOnly || r.PointsMethod != PointsFromPoisson {
		t.Fatalf("unexpected methods: got=%s/%s want=%s/%s", r.Rating.Method, r.PointsMethod, fdr.MethodOutrightOnly, PointsFromPoisson)
	}
	if r.Rating.Home != r.Outright.Home.FDR || r.Rating.Away != r.Outright.Away.FDR {
		t.Fatalf("final rating must equal outright rating: final=%+v outright=%v/%v", r.Rating, r.Outright.Home.FDR, r.Outright.Away.FDR)
	}
	if hasWarning(ratings.Warnings, WarnInvalidMarket) {
		t.Fatalf("empty market must not warn as invalid: %v", ratings.Warnings)
	}
}

func TestEngine_Rate_PoissonUsesRoundedOutrightRatings(t *testing.T) {
	t.Parallel()

	engine := NewEngine(testTables(t), DefaultOptions())
	ratings, err := engine.Rate(Inputs{
		Fixtures: []fixture.Fixture{{ID: "x", HomeTeam: "Beta FC", AwayTeam: "Gamma FC", KickoffAt: at(14, 12), Venue: "West Bowl"}},
		Outrights: []fdr.OutrightPrice{
			{Team: "Beta FC", DecimalOdds: 3},
			{Team: "Gamma FC", DecimalOdds: 7},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := ratings.Fixtures[0]
	if fdr.Round(r.Outright.Home.FDR, 1) == r.Outright.Home.FDR {
		t.Fatalf("outright rating should carry more than one decimal: %v", r.Outright.Home.FDR)
	}
	wantHome, wantAway := scoreline.EstimateExpectedGoals(fdr.Round(r.Outright.Home.FDR, 1), fdr.Round(r.Outright.Away.FDR, 1), DefaultOptions().AverageTotalGoals)
	if r.HomeXG != wantHome || r.AwayXG != wantAway {
		t.Fatalf("unexpected xG: got=%v-%v want=%v-%v", r.HomeXG, r.AwayXG, wantHome, wantAway)
	}
}

func findPlayer(t *testing.T, players []points.PlayerMatchPoints, name string) points.PlayerMatchPoints {
	t.Helper()
	for _, p := range players {
		if p.Name == name {
			return p
		}
	}
	t.Fatalf("player %s not found", name)
	return points.PlayerMatchPoints{}
}

func TestEngine_Run_Idempotent(t *testing.T) {
	t.Parallel()

	engine := NewEngine(testTables(t), DefaultOptions())
	first, err := engine.Run(testInputs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := engine.Run(testInputs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated runs differ")
	}
}

func TestEngine_Run_NoFixtures(t *testing.T) {
	t.Parallel()

	engine := NewEngine(testTables(t), DefaultOptions())
	in := testInputs()
	in.Fixtures = []fixture.Fixture{{HomeTeam: "Alpha FC", AwayTeam: "Alpha FC", KickoffAt: at(14, 12)}}

	_, err := engine.Run(in)
	if !errors.Is(err, ErrNoFixtures) {
		t.Fatalf("expected ErrNoFixtures, got=%v", err)
	}
}

func TestEngine_Run_NoPlayers(t *testing.T) {
	t.Parallel()

	engine := NewEngine(testTables(t), DefaultOptions())
	in := testInputs()
	in.Players = nil

	if _, err := engine.Run(in); !errors.Is(err, ErrNoPlayerPoints) {
		t.Fatalf("expected ErrNoPlayerPoints, got=%v", err)
	}

	ratings, err := engine.Rate(in)
	if err != nil {
		t.Fatalf("ratings should not need players: %v", err)
	}
	if len(ratings.Fixtures) != 3 {
		t.Fatalf("unexpected rating count: %d", len(ratings.Fixtures))
	}
}

func TestEngine_Rate_OutrightScenario(t *testing.T) {
	t.Parallel()

	engine := NewEngine(testTables(t), DefaultOptions())
	ratings, err := engine.Rate(Inputs{
		Fixtures: []fixture.Fixture{{ID: "x", HomeTeam: "Beta FC", AwayTeam: "Gamma FC", KickoffAt: at(14, 12), Venue: "West Bowl"}},
		Outrights: []fdr.OutrightPrice{
			{Team: "Beta FC", DecimalOdds: 1 / 0.6},
			{Team: "Gamma FC", DecimalOdds: 1 / 0.4},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := ratings.Fixtures[0]
	if math.Abs(ratings.Strengths["Beta FC"]-100) > 1e-9 || math.Abs(ratings.Strengths["Gamma FC"]-70) > 1e-9 {
		t.Fatalf("unexpected strengths: %v", ratings.Strengths)
	}
	if r.Outright.Home.OpponentStrength != ratings.Strengths["Gamma FC"] {
		t.Fatalf("home side must be rated on the opponent's strength")
	}
	if r.Rating.Home >= r.Rating.Away {
		t.Fatalf("side facing the weaker opponent must be easier: home=%v away=%v", r.Rating.Home, r.Rating.Away)
	}
	if len(ratings.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", ratings.Warnings)
	}
}

func TestEngine_Run_StrongerStrikerGetsTopBonus(t *testing.T) {
	t.Parallel()

	engine := NewEngine(testTables(t), DefaultOptions())
	report, err := engine.Run(testInputs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	top := report.Groups[0].Players[0]
	if top.Name != "Alpha Striker" || top.Bonus != 3 {
		t.Fatalf("unexpected top player: %+v", top)
	}
	if math.Abs(top.Total-math.Round((top.Expected+3)*100)/100) > 1e-12 {
		t.Fatalf("unexpected total rounding: %+v", top)
	}
}
