package projection

import (
	"fmt"

	"github.com/riskibarqy/fixture-points/internal/domain/fdr"
	"github.com/riskibarqy/fixture-points/internal/domain/fixture"
	"github.com/riskibarqy/fixture-points/internal/domain/odds"
	"github.com/riskibarqy/fixture-points/internal/domain/playerstats"
	"github.com/riskibarqy/fixture-points/internal/domain/points"
	"github.com/riskibarqy/fixture-points/internal/domain/reference"
	"github.com/riskibarqy/fixture-points/internal/domain/scoreline"
)

// Options tunes the numerical models.
type Options struct {
	Difficulty        fdr.Config
	Scoring           points.Scoring
	AverageTotalGoals float64
	MaxGoals          int
}

func DefaultOptions() Options {
	return Options{
		Difficulty:        fdr.DefaultConfig(),
		Scoring:           points.DefaultScoring(),
		AverageTotalGoals: scoreline.DefaultAverageTotalGoals,
		MaxGoals:          scoreline.DefaultMaxGoals,
	}
}

// Engine runs the fixture difficulty and expected-points models. It holds no
// mutable state; the same inputs always produce the same report.
type Engine struct {
	tables reference.Tables
	opts   Options
}

func NewEngine(tables reference.Tables, opts Options) *Engine {
	if opts.AverageTotalGoals <= 0 {
		opts.AverageTotalGoals = scoreline.DefaultAverageTotalGoals
	}
	if opts.MaxGoals <= 0 {
		opts.MaxGoals = scoreline.DefaultMaxGoals
	}
	return &Engine{tables: tables, opts: opts}
}

// Rate computes the difficulty ratings and scoreline distributions of every fixture.
func (e *Engine) Rate(in Inputs) (Ratings, error) {
	var warnings warningLog

	fixtures := e.prepareFixtures(in.Fixtures, &warnings)
	if len(fixtures) == 0 {
		return Ratings{}, ErrNoFixtures
	}

	teams := fixture.Teams(fixtures)
	for _, name := range teams {
		if _, ok := e.tables.Teams.Lookup(name); !ok {
			warnings.add(Warning{Code: WarnUnknownTeam, Team: name, Message: fmt.Sprintf("team %q has no reference card", name)})
		}
	}

	strengths := fdr.NormalizeStrengths(in.Outrights, teams)
	for _, p := range strengths.Duplicates {
		warnings.add(Warning{Code: WarnDuplicateOutright, Team: p.Team, Message: fmt.Sprintf("ignoring repeated outright price %.2f", p.DecimalOdds)})
	}
	for _, p := range strengths.Rejected {
		warnings.add(Warning{Code: WarnInvalidOutright, Team: p.Team, Message: fmt.Sprintf("outright price %.2f is not above 1.0", p.DecimalOdds)})
	}
	for _, name := range strengths.Defaulted {
		warnings.add(Warning{Code: WarnDefaultStrength, Team: name, Message: fmt.Sprintf("no outright price, default strength %.1f assigned", fdr.DefaultStrength)})
	}

	history := fixture.ResolveHistory(fixtures)
	book := odds.NewBook(in.CorrectScores)

	out := make([]FixtureRating, 0, len(fixtures))
	for i, f := range fixtures {
		out = append(out, e.rateFixture(f, history[i], strengths.Strengths, book, &warnings))
	}

	return Ratings{Fixtures: out, Strengths: strengths.Strengths, Warnings: warnings.list}, nil
}

// Run rates every fixture and projects player points with bonus allocation.
func (e *Engine) Run(in Inputs) (Report, error) {
	ratings, err := e.Rate(in)
	if err != nil {
		return Report{}, err
	}

	warnings := warningLog{list: ratings.Warnings}
	players := e.preparePlayers(in.Players, &warnings)
	byTeam := playerstats.ByTeam(players)
	totals := playerstats.Totals(players)

	groups := make([]FixtureGroup, 0, len(ratings.Fixtures))
	total := 0
	for _, r := range ratings.Fixtures {
		group := e.projectFixture(r, byTeam, totals, &warnings)
		total += len(group.Players)
		groups = append(groups, group)
	}
	if total == 0 {
		return Report{}, ErrNoPlayerPoints
	}

	return Report{Ratings: ratings.Fixtures, Groups: groups, Warnings: warnings.list}, nil
}

func (e *Engine) prepareFixtures(in []fixture.Fixture, warnings *warningLog) []fixture.Fixture {
	valid := make([]fixture.Fixture, 0, len(in))
	for _, f := range in {
		if err := f.Validate(); err != nil {
			warnings.add(Warning{Code: WarnInvalidFixture, Fixture: f.MatchLabel(), Message: err.Error()})
			continue
		}
		valid = append(valid, f)
	}

	sorted, duplicates := fixture.SortAndDedupe(valid)
	for _, f := range duplicates {
		warnings.add(Warning{Code: WarnDuplicateFixture, Fixture: f.MatchLabel(), Message: "duplicate fixture skipped"})
	}
	return sorted
}

func (e *Engine) rateFixture(f fixture.Fixture, history fixture.MatchContext, strengths fdr.Strengths, book odds.Book, warnings *warningLog) FixtureRating {
	cfg := e.opts.Difficulty
	label := f.MatchLabel()

	outright := cfg.Outright(f, strengths, history, e.tables.Venues)
	if outright.Home.Inconsistent {
		warnings.add(Warning{Code: WarnNegativeRest, Fixture: label, Team: f.HomeTeam, Message: "previous match dated after this one, max fatigue assigned"})
	}
	if outright.Away.Inconsistent {
		warnings.add(Warning{Code: WarnNegativeRest, Fixture: label, Team: f.AwayTeam, Message: "previous match dated after this one, max fatigue assigned"})
	}

	rating := FixtureRating{
		Fixture:  f,
		HomeTeam: e.tables.Teams.Card(f.HomeTeam),
		AwayTeam: e.tables.Teams.Card(f.AwayTeam),
		Outright: outright,
	}

	matched, ok := book.Match(f)
	var market scoreline.Market
	if ok {
		market = matched.Oriented()
		for _, skipped := range market.Skipped {
			warnings.add(Warning{Code: WarnInvalidScoreline, Fixture: label, Message: fmt.Sprintf("skipping correct-score entry %q", skipped)})
		}
		cs := fdr.CorrectScore(market)
		rating.CorrectScore = &cs
		rating.MarketReversed = matched.Reversed
	}
	rating.Rating = cfg.Blend(outright, rating.CorrectScore)

	switch {
	case ok && market.Valid:
		rating.Distribution = market.Distribution
		rating.PointsMethod = PointsFromCorrectScore
	default:
		// xG is estimated from the outright ratings as published, to one decimal.
		rating.HomeXG, rating.AwayXG = scoreline.EstimateExpectedGoals(fdr.Round(outright.Home.FDR, 1), fdr.Round(outright.Away.FDR, 1), e.opts.AverageTotalGoals)
		rating.Distribution = scoreline.Poisson(rating.HomeXG, rating.AwayXG, e.opts.MaxGoals)
		rating.PointsMethod = PointsFromPoisson
		if ok {
			rating.PointsMethod = PointsFromFallback
			warnings.add(Warning{Code: WarnInvalidMarket, Fixture: label, Message: "correct-score market has no usable prices, using Poisson model"})
		}
	}
	return rating
}

func (e *Engine) preparePlayers(in []playerstats.SeasonStats, warnings *warningLog) []playerstats.SeasonStats {
	seen := make(map[string]struct{}, len(in))
	out := make([]playerstats.SeasonStats, 0, len(in))
	for _, s := range in {
		if err := s.Validate(); err != nil {
			warnings.add(Warning{Code: WarnInvalidPlayer, Team: s.Team, Message: err.Error()})
			continue
		}
		key := s.Team + "|" + s.Key()
		if _, dup := seen[key]; dup {
			warnings.add(Warning{Code: WarnDuplicatePlayer, Team: s.Team, Message: fmt.Sprintf("duplicate player %q skipped", s.Name)})
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}

func (e *Engine) projectFixture(r FixtureRating, byTeam map[string][]playerstats.SeasonStats, totals map[string]playerstats.TeamTotals, warnings *warningLog) FixtureGroup {
	f := r.Fixture
	group := FixtureGroup{
		FixtureID:   f.ID,
		Gameweek:    f.Gameweek,
		MatchLabel:  f.MatchLabel(),
		MatchAPIIDs: r.MatchAPIIDs(),
		Date:        f.Date(),
	}

	candidates := make([]points.PlayerMatchPoints, 0, len(byTeam[f.HomeTeam])+len(byTeam[f.AwayTeam]))
	sides := []struct {
		team, opponent string
		externalID     *int64
		home           bool
	}{
		{team: f.HomeTeam, opponent: f.AwayTeam, externalID: r.HomeTeam.ExternalID, home: true},
		{team: f.AwayTeam, opponent: f.HomeTeam, externalID: r.AwayTeam.ExternalID, home: false},
	}
	for _, side := range sides {
		roster := byTeam[side.team]
		if len(roster) == 0 {
			warnings.add(Warning{Code: WarnNoPlayers, Fixture: group.MatchLabel, Team: side.team, Message: "no player stats for team"})
			continue
		}
		teamTotals := totals[side.team]
		for _, s := range roster {
			share := points.ShareOf(s, teamTotals)
			candidates = append(candidates, points.PlayerMatchPoints{
				PlayerID:       s.PlayerID,
				ExternalID:     s.ExternalID,
				Name:           s.Name,
				FixtureID:      f.ID,
				Team:           side.team,
				TeamExternalID: side.externalID,
				Opponent:       side.opponent,
				Home:           side.home,
				Expected:       e.opts.Scoring.Expected(s.Position, share, r.Distribution, side.home),
			})
		}
	}

	group.Players = e.opts.Scoring.AssignBonus(candidates)
	return group
}

type warningLog struct {
	list []Warning
}

func (w *warningLog) add(warning Warning) {
	w.list = append(w.list, warning)
}
