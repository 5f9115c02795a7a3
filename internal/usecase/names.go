package usecase

import (
	"fmt"

	"github.com/riskibarqy/fixture-points/internal/domain/fixture"
	"github.com/riskibarqy/fixture-points/internal/domain/odds"
	"github.com/riskibarqy/fixture-points/internal/domain/projection"
	"github.com/riskibarqy/fixture-points/internal/domain/team"
)

// nameResolver maps source team names onto the canonical reference names.
// Unmapped names are kept verbatim and reported once per source.
type nameResolver struct {
	normalizer *team.Normalizer
	seen       map[string]struct{}
	warnings   []projection.Warning
}

func newNameResolver(normalizer *team.Normalizer) *nameResolver {
	return &nameResolver{normalizer: normalizer, seen: make(map[string]struct{})}
}

func (r *nameResolver) resolve(source, raw string) string {
	result := r.normalizer.Resolve(raw)
	unmapped, ok := result.(team.Unmapped)
	if !ok || unmapped.Original == "" {
		return result.Canonical()
	}

	key := source + "|" + unmapped.Original
	if _, dup := r.seen[key]; !dup {
		r.seen[key] = struct{}{}
		r.warnings = append(r.warnings, projection.Warning{
			Code:    projection.WarnUnmappedTeamName,
			Team:    unmapped.Original,
			Message: fmt.Sprintf("%s team name %q has no alias, kept verbatim", source, unmapped.Original),
		})
	}
	return result.Canonical()
}

func (r *nameResolver) canonicalize(in projection.Inputs) projection.Inputs {
	out := projection.Inputs{
		Fixtures:      make([]fixture.Fixture, 0, len(in.Fixtures)),
		Outrights:     in.Outrights[:0:0],
		CorrectScores: make([]odds.CorrectScoreMarket, 0, len(in.CorrectScores)),
		Players:       in.Players[:0:0],
	}

	for _, f := range in.Fixtures {
		f.HomeTeam = r.resolve("fixtures", f.HomeTeam)
		f.AwayTeam = r.resolve("fixtures", f.AwayTeam)
		out.Fixtures = append(out.Fixtures, f)
	}
	for _, p := range in.Outrights {
		p.Team = r.resolve("outright odds", p.Team)
		out.Outrights = append(out.Outrights, p)
	}
	for _, m := range in.CorrectScores {
		m.HomeTeam = r.resolve("correct-score odds", m.HomeTeam)
		m.AwayTeam = r.resolve("correct-score odds", m.AwayTeam)
		out.CorrectScores = append(out.CorrectScores, m)
	}
	for _, s := range in.Players {
		s.Team = r.resolve("player stats", s.Team)
		out.Players = append(out.Players, s)
	}
	return out
}
