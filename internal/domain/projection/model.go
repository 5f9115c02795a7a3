package projection

import (
	"errors"
	"fmt"

	"github.com/riskibarqy/fixture-points/internal/domain/fdr"
	"github.com/riskibarqy/fixture-points/internal/domain/fixture"
	"github.com/riskibarqy/fixture-points/internal/domain/odds"
	"github.com/riskibarqy/fixture-points/internal/domain/playerstats"
	"github.com/riskibarqy/fixture-points/internal/domain/points"
	"github.com/riskibarqy/fixture-points/internal/domain/scoreline"
	"github.com/riskibarqy/fixture-points/internal/domain/team"
)

var (
	ErrNoFixtures     = errors.New("no fixtures resolved")
	ErrNoPlayerPoints = errors.New("no player points calculated")
)

// Inputs is everything one projection run consumes. Team names must already
// be canonical.
type Inputs struct {
	Fixtures      []fixture.Fixture
	Outrights     []fdr.OutrightPrice
	CorrectScores []odds.CorrectScoreMarket
	Players       []playerstats.SeasonStats
}

// PointsMethod names how a fixture's scoreline distribution was produced.
type PointsMethod string

const (
	PointsFromCorrectScore PointsMethod = "CS_Odds"
	PointsFromPoisson      PointsMethod = "Poisson"
	PointsFromFallback     PointsMethod = "Poisson_Fallback_InvalidCS"
)

// FixtureRating is the full difficulty breakdown for one fixture.
type FixtureRating struct {
	Fixture  fixture.Fixture
	HomeTeam team.Team
	AwayTeam team.Team
	Outright fdr.OutrightResult
	// CorrectScore is nil when no market was matched to the fixture.
	CorrectScore *fdr.CorrectScoreResult
	// MarketReversed is set when the matched market listed the away team first.
	MarketReversed bool
	Rating         fdr.Rating
	Distribution   scoreline.Distribution
	PointsMethod   PointsMethod
	// HomeXG and AwayXG are the Poisson inputs; zero when the market was used.
	HomeXG float64
	AwayXG float64
}

// MatchAPIIDs renders "{homeExternalID}_vs_{awayExternalID}".
func (r FixtureRating) MatchAPIIDs() string {
	return fmt.Sprintf("%s_vs_%s", r.HomeTeam.ExternalIDLabel(), r.AwayTeam.ExternalIDLabel())
}

// PointsMethodLabel renders the method with the Poisson inputs when used.
func (r FixtureRating) PointsMethodLabel() string {
	if r.PointsMethod == PointsFromCorrectScore {
		return string(r.PointsMethod)
	}
	return fmt.Sprintf("%s (xG:%.1f-%.1f)", r.PointsMethod, r.HomeXG, r.AwayXG)
}

// FixtureGroup is the per-fixture player output.
type FixtureGroup struct {
	FixtureID   string
	Gameweek    string
	MatchLabel  string
	MatchAPIIDs string
	Date        string
	// Players are in rank order.
	Players []points.PlayerMatchPoints
}

// Ratings is the difficulty part of a run.
type Ratings struct {
	Fixtures  []FixtureRating
	Strengths fdr.Strengths
	Warnings  []Warning
}

// Report is the full output of a run.
type Report struct {
	Ratings  []FixtureRating
	Groups   []FixtureGroup
	Warnings []Warning
}

// PlayerCount returns the number of player records across all groups.
func (r Report) PlayerCount() int {
	n := 0
	for _, g := range r.Groups {
		n += len(g.Players)
	}
	return n
}

// WarningCode classifies non-fatal anomalies.
type WarningCode string

const (
	WarnInvalidFixture    WarningCode = "invalid_fixture"
	WarnDuplicateFixture  WarningCode = "duplicate_fixture"
	WarnUnknownTeam       WarningCode = "unknown_team"
	WarnInvalidOutright   WarningCode = "invalid_outright_odds"
	WarnDuplicateOutright WarningCode = "duplicate_outright_odds"
	WarnDefaultStrength   WarningCode = "default_strength"
	WarnNegativeRest      WarningCode = "negative_rest_days"
	WarnInvalidScoreline  WarningCode = "invalid_correct_score_entry"
	WarnInvalidMarket     WarningCode = "invalid_correct_score_market"
	WarnInvalidPlayer     WarningCode = "invalid_player"
	WarnDuplicatePlayer   WarningCode = "duplicate_player"
	WarnNoPlayers         WarningCode = "no_players_for_team"
	WarnUnmappedTeamName  WarningCode = "unmapped_team_name"
)

// Warning is a non-fatal anomaly recorded during a run.
type Warning struct {
	Code    WarningCode
	Message string
	Fixture string
	Team    string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}
