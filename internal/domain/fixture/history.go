package fixture

import "time"

// PriorMatch is a side's previous fixture as seen before the current one.
type PriorMatch struct {
	Date  time.Time
	Venue string
}

// MatchContext holds both sides' previous match, nil when it is their first.
type MatchContext struct {
	Home *PriorMatch
	Away *PriorMatch
}

// ResolveHistory walks fixtures once in the given order, which must already be
// ascending by kickoff, and returns one context per fixture at the same index.
// Each context is a copy of the tracker state immediately before that fixture.
func ResolveHistory(fixtures []Fixture) []MatchContext {
	last := make(map[string]PriorMatch)
	out := make([]MatchContext, len(fixtures))

	for i, f := range fixtures {
		out[i] = MatchContext{
			Home: snapshot(last, f.HomeTeam),
			Away: snapshot(last, f.AwayTeam),
		}

		played := PriorMatch{Date: f.Day(), Venue: f.Venue}
		last[f.HomeTeam] = played
		last[f.AwayTeam] = played
	}
	return out
}

func snapshot(last map[string]PriorMatch, team string) *PriorMatch {
	prior, ok := last[team]
	if !ok {
		return nil
	}
	return &prior
}
