package fdr

import (
	"time"

	"github.com/riskibarqy/fixture-points/internal/domain/fixture"
)

// Region groups venues for the long-haul travel penalty.
type Region int

const (
	RegionUnknown Region = iota
	RegionEast
	RegionWest
)

// VenueTable is the immutable stadium reference used by the outright calculator.
type VenueTable struct {
	// HomeTeams maps a stadium to the club that plays home matches there.
	HomeTeams map[string]string
	Regions   map[string]Region
}

// HomeTeam returns the club whose home the stadium is.
func (v VenueTable) HomeTeam(stadium string) (string, bool) {
	team, ok := v.HomeTeams[stadium]
	return team, ok
}

// CrossCountry reports whether travelling between the two stadiums crosses
// between the east and west regions.
func (v VenueTable) CrossCountry(from, to string) bool {
	a, b := v.Regions[from], v.Regions[to]
	return (a == RegionEast && b == RegionWest) || (a == RegionWest && b == RegionEast)
}

// OutrightWeights are the component weights of the raw outright score.
type OutrightWeights struct {
	OpponentStrength float64
	Venue            float64
	Fatigue          float64
}

// Config holds the tunable constants of the difficulty model.
type Config struct {
	Weights           OutrightWeights
	HomeVenueImpact   float64
	AwayVenueImpact   float64
	TravelPenalty     int
	NoHistoryFatigue  int
	OutrightScale     float64
	OutrightOffset    float64
	BlendOutright     float64
	BlendCorrectScore float64
}

func DefaultConfig() Config {
	return Config{
		Weights: OutrightWeights{
			OpponentStrength: 0.70,
			Venue:            0.20,
			Fatigue:          0.10,
		},
		HomeVenueImpact:   -12,
		AwayVenueImpact:   8,
		TravelPenalty:     5,
		NoHistoryFatigue:  15,
		OutrightScale:     1.5,
		OutrightOffset:    25,
		BlendOutright:     0.40,
		BlendCorrectScore: 0.60,
	}
}

// SideOutright is one side's outright rating with its components.
type SideOutright struct {
	Strength         float64
	OpponentStrength float64
	VenueImpact      float64
	FatigueImpact    int
	CrossCountry     bool
	// RestDays is nil when the side has no previous match.
	RestDays *int
	// Inconsistent is set when the previous match is dated after this one.
	Inconsistent bool
	FDR          float64
}

// OutrightResult holds both sides' outright ratings for one fixture.
type OutrightResult struct {
	Home SideOutright
	Away SideOutright
}

// FatigueImpact maps rest days to a difficulty adjustment. A negative count is
// a data inconsistency and is scored as maximum fatigue.
func FatigueImpact(restDays int) (impact int, inconsistent bool) {
	switch {
	case restDays < 0:
		return 15, true
	case restDays >= 7:
		return -10, false
	case restDays >= 5:
		return -5, false
	case restDays >= 3:
		return 0, false
	case restDays == 2:
		return 8, false
	default:
		return 15, false
	}
}

// VenueImpact returns (home, away) venue adjustments for a stadium.
func (c Config) VenueImpact(venues VenueTable, f fixture.Fixture) (home, away float64) {
	owner, ok := venues.HomeTeam(f.Venue)
	if !ok {
		return 0, 0
	}
	switch owner {
	case f.HomeTeam:
		return c.HomeVenueImpact, c.AwayVenueImpact
	case f.AwayTeam:
		return c.AwayVenueImpact, c.HomeVenueImpact
	default:
		return 0, 0
	}
}

// Outright computes both sides' outright difficulty for a fixture.
func (c Config) Outright(f fixture.Fixture, strengths Strengths, history fixture.MatchContext, venues VenueTable) OutrightResult {
	homeStrength, awayStrength := strengths.Of(f.HomeTeam), strengths.Of(f.AwayTeam)
	homeVenue, awayVenue := c.VenueImpact(venues, f)

	home := c.side(f, homeStrength, awayStrength, homeVenue, history.Home, venues)
	away := c.side(f, awayStrength, homeStrength, awayVenue, history.Away, venues)
	return OutrightResult{Home: home, Away: away}
}

func (c Config) side(f fixture.Fixture, own, opponent, venue float64, prior *fixture.PriorMatch, venues VenueTable) SideOutright {
	out := SideOutright{
		Strength:         own,
		OpponentStrength: opponent,
		VenueImpact:      venue,
		FatigueImpact:    c.NoHistoryFatigue,
	}

	if prior != nil {
		days := restDays(prior.Date, f.Day())
		out.RestDays = &days
		out.FatigueImpact, out.Inconsistent = FatigueImpact(days)
		if !out.Inconsistent && venues.CrossCountry(prior.Venue, f.Venue) {
			out.CrossCountry = true
			out.FatigueImpact += c.TravelPenalty
		}
	}

	raw := c.Weights.OpponentStrength*opponent +
		c.Weights.Venue*venue +
		c.Weights.Fatigue*float64(out.FatigueImpact)
	out.FDR = clamp(raw/c.OutrightScale+c.OutrightOffset, MinRating, MaxRating)
	return out
}

func restDays(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
