package httpapi

import (
	"github.com/riskibarqy/fixture-points/internal/domain/fdr"
	"github.com/riskibarqy/fixture-points/internal/domain/points"
	"github.com/riskibarqy/fixture-points/internal/domain/projection"
	"github.com/riskibarqy/fixture-points/internal/domain/scoreline"
	"github.com/riskibarqy/fixture-points/internal/domain/team"
	"github.com/riskibarqy/fixture-points/internal/usecase"
)

type serviceIndexDTO struct {
	Service   string        `json:"service"`
	Endpoints []endpointDTO `json:"endpoints"`
}

type endpointDTO struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

type fixtureGroupDTO struct {
	FixtureID   string                 `json:"fixture_id"`
	Gameweek    string                 `json:"gameweek"`
	Match       string                 `json:"match"`
	MatchAPIIDs string                 `json:"match_api_ids"`
	Date        string                 `json:"date"`
	Players     []playerMatchPointsDTO `json:"players"`
}

type playerMatchPointsDTO struct {
	Name           string  `json:"name"`
	PlayerID       *string `json:"player_id"`
	PlayerAPIID    *string `json:"player_api_id"`
	Team           string  `json:"team"`
	TeamAPIID      *int64  `json:"team_api_id"`
	Opponent       string  `json:"opponent"`
	Home           bool    `json:"home"`
	ExpectedPoints float64 `json:"expected_points"`
	Bonus          int     `json:"bonus"`
	TotalPoints    float64 `json:"total_points"`
}

type teamCardDTO struct {
	Name       string  `json:"name"`
	ShortCode  string  `json:"short_code"`
	ExternalID *int64  `json:"external_id"`
	ImageURL   *string `json:"image_url"`
}

type fixtureRatingDTO struct {
	FixtureID       string               `json:"fixture_id"`
	Gameweek        string               `json:"gameweek"`
	Group           string               `json:"group"`
	Date            string               `json:"date"`
	Time            string               `json:"time"`
	Stadium         string               `json:"stadium"`
	HomeTeam        teamCardDTO          `json:"home_team"`
	AwayTeam        teamCardDTO          `json:"away_team"`
	MatchAPIIDs     string               `json:"match_api_ids"`
	HomeFDR         float64              `json:"home_fdr"`
	AwayFDR         float64              `json:"away_fdr"`
	HomeDifficulty  string               `json:"home_difficulty"`
	AwayDifficulty  string               `json:"away_difficulty"`
	Difference      float64              `json:"fdr_difference"`
	Competitiveness string               `json:"competitiveness"`
	Method          string               `json:"calculation_method"`
	PointsMethod    string               `json:"points_calculation_method"`
	MarketReversed  bool                 `json:"market_reversed"`
	Outright        outrightBreakdownDTO `json:"outright"`
	CorrectScore    *correctScoreDTO     `json:"correct_score,omitempty"`
}

type outrightSideDTO struct {
	FDR              float64 `json:"fdr"`
	Strength         float64 `json:"strength"`
	OpponentStrength float64 `json:"opponent_strength"`
	VenueImpact      float64 `json:"venue_impact"`
	FatigueImpact    int     `json:"fatigue_impact"`
	RestDays         *int    `json:"rest_days"`
	CrossCountry     bool    `json:"cross_country_travel"`
}

type outrightBreakdownDTO struct {
	Home outrightSideDTO `json:"home"`
	Away outrightSideDTO `json:"away"`
}

type correctScoreSideDTO struct {
	FDR            float64  `json:"fdr"`
	ExpectedPoints float64  `json:"expected_points"`
	Attack         *float64 `json:"attack_strength"`
	Defence        *float64 `json:"defence_weakness"`
}

type outcomeDTO struct {
	HomeWin float64 `json:"home_win"`
	Draw    float64 `json:"draw"`
	AwayWin float64 `json:"away_win"`
}

type correctScoreDTO struct {
	Valid   bool                `json:"valid"`
	Outcome outcomeDTO          `json:"outcome"`
	Home    correctScoreSideDTO `json:"home"`
	Away    correctScoreSideDTO `json:"away"`
}

type scoreProbabilityDTO struct {
	Score       string  `json:"score"`
	Probability float64 `json:"probability"`
}

type correctScoreEvaluationDTO struct {
	correctScoreDTO
	Distribution []scoreProbabilityDTO `json:"distribution"`
	Skipped      []string              `json:"skipped"`
}

func fixtureGroupToDTO(g projection.FixtureGroup) fixtureGroupDTO {
	players := make([]playerMatchPointsDTO, 0, len(g.Players))
	for _, p := range g.Players {
		players = append(players, playerPointsToDTO(p))
	}
	return fixtureGroupDTO{
		FixtureID:   g.FixtureID,
		Gameweek:    g.Gameweek,
		Match:       g.MatchLabel,
		MatchAPIIDs: g.MatchAPIIDs,
		Date:        g.Date,
		Players:     players,
	}
}

func playerPointsToDTO(p points.PlayerMatchPoints) playerMatchPointsDTO {
	return playerMatchPointsDTO{
		Name:           p.Name,
		PlayerID:       p.PlayerID,
		PlayerAPIID:    p.ExternalID,
		Team:           p.Team,
		TeamAPIID:      p.TeamExternalID,
		Opponent:       p.Opponent,
		Home:           p.Home,
		ExpectedPoints: fdr.Round(p.Expected, 2),
		Bonus:          p.Bonus,
		TotalPoints:    p.Total,
	}
}

func teamCardToDTO(t team.Team) teamCardDTO {
	return teamCardDTO{
		Name:       t.Name,
		ShortCode:  t.ShortCode,
		ExternalID: t.ExternalID,
		ImageURL:   t.ImageURL,
	}
}

func fixtureRatingToDTO(r projection.FixtureRating) fixtureRatingDTO {
	f := r.Fixture
	out := fixtureRatingDTO{
		FixtureID:       f.ID,
		Gameweek:        f.Gameweek,
		Group:           f.Group,
		Date:            f.Date(),
		Time:            f.KickoffTime(),
		Stadium:         f.Venue,
		HomeTeam:        teamCardToDTO(r.HomeTeam),
		AwayTeam:        teamCardToDTO(r.AwayTeam),
		MatchAPIIDs:     r.MatchAPIIDs(),
		HomeFDR:         fdr.Round(r.Rating.Home, 1),
		AwayFDR:         fdr.Round(r.Rating.Away, 1),
		HomeDifficulty:  r.Rating.Tiers.Home.DisplayLabel(),
		AwayDifficulty:  r.Rating.Tiers.Away.DisplayLabel(),
		Difference:      r.Rating.Tiers.Difference,
		Competitiveness: string(r.Rating.Tiers.Competitiveness),
		Method:          string(r.Rating.Method),
		PointsMethod:    r.PointsMethodLabel(),
		MarketReversed:  r.MarketReversed,
		Outright: outrightBreakdownDTO{
			Home: outrightSideToDTO(r.Outright.Home),
			Away: outrightSideToDTO(r.Outright.Away),
		},
	}
	if r.CorrectScore != nil {
		cs := correctScoreToDTO(*r.CorrectScore)
		out.CorrectScore = &cs
	}
	return out
}

func outrightSideToDTO(s fdr.SideOutright) outrightSideDTO {
	return outrightSideDTO{
		FDR:              fdr.Round(s.FDR, 1),
		Strength:         fdr.Round(s.Strength, 1),
		OpponentStrength: fdr.Round(s.OpponentStrength, 1),
		VenueImpact:      s.VenueImpact,
		FatigueImpact:    s.FatigueImpact,
		RestDays:         s.RestDays,
		CrossCountry:     s.CrossCountry,
	}
}

func correctScoreToDTO(cs fdr.CorrectScoreResult) correctScoreDTO {
	return correctScoreDTO{
		Valid: cs.Valid,
		Outcome: outcomeDTO{
			HomeWin: fdr.Round(cs.Outcome.Home, 4),
			Draw:    fdr.Round(cs.Outcome.Draw, 4),
			AwayWin: fdr.Round(cs.Outcome.Away, 4),
		},
		Home: correctScoreSideToDTO(cs.Home),
		Away: correctScoreSideToDTO(cs.Away),
	}
}

func correctScoreSideToDTO(s fdr.SideCorrectScore) correctScoreSideDTO {
	return correctScoreSideDTO{
		FDR:            fdr.Round(s.FDR, 1),
		ExpectedPoints: fdr.Round(s.ExpectedPoints, 3),
		Attack:         s.Attack,
		Defence:        s.Defence,
	}
}

func correctScoreEvaluationToDTO(e usecase.CorrectScoreEvaluation) correctScoreEvaluationDTO {
	entries := e.Distribution.Entries()
	dist := make([]scoreProbabilityDTO, 0, len(entries))
	for _, entry := range entries {
		dist = append(dist, scoreProbabilityToDTO(entry))
	}
	skipped := e.Skipped
	if skipped == nil {
		skipped = []string{}
	}
	return correctScoreEvaluationDTO{
		correctScoreDTO: correctScoreToDTO(e.Result),
		Distribution:    dist,
		Skipped:         skipped,
	}
}

func scoreProbabilityToDTO(e scoreline.Entry) scoreProbabilityDTO {
	return scoreProbabilityDTO{Score: e.Score.String(), Probability: fdr.Round(e.Probability, 4)}
}
