package odds

import (
	"context"
	"fmt"

	"github.com/riskibarqy/fixture-points/internal/domain/fdr"
	"github.com/riskibarqy/fixture-points/internal/domain/fixture"
	"github.com/riskibarqy/fixture-points/internal/domain/scoreline"
)

// CorrectScoreMarket is one fixture's correct-score prices as published. Team
// order is the bookmaker's and may be the reverse of the schedule.
type CorrectScoreMarket struct {
	HomeTeam string
	AwayTeam string
	// Date is the calendar date in fixture.DateLayout.
	Date   string
	Prices map[string]float64
}

func (m CorrectScoreMarket) Key() MarketKey {
	return MarketKey{HomeTeam: m.HomeTeam, AwayTeam: m.AwayTeam, Date: m.Date}
}

// MarketKey identifies a market by its published team order and date.
type MarketKey struct {
	HomeTeam string
	AwayTeam string
	Date     string
}

func (k MarketKey) String() string {
	return fmt.Sprintf("%s vs %s (%s)", k.HomeTeam, k.AwayTeam, k.Date)
}

// MatchedMarket is a correct-score market attached to a fixture. Reversed is
// set when the market lists the fixture's away team first.
type MatchedMarket struct {
	Market   CorrectScoreMarket
	Reversed bool
}

// Oriented parses the prices and orients the distribution to the fixture.
func (m MatchedMarket) Oriented() scoreline.Market {
	parsed := scoreline.FromOdds(m.Market.Prices)
	if m.Reversed && parsed.Valid {
		parsed.Distribution = parsed.Distribution.Flip()
	}
	return parsed
}

// Book indexes correct-score markets by key. Later markets with the same key
// replace earlier ones.
type Book struct {
	markets map[MarketKey]CorrectScoreMarket
}

func NewBook(markets []CorrectScoreMarket) Book {
	out := make(map[MarketKey]CorrectScoreMarket, len(markets))
	for _, m := range markets {
		out[m.Key()] = m
	}
	return Book{markets: out}
}

func (b Book) Len() int {
	return len(b.markets)
}

// Match finds the market for a fixture, first in fixture order and then
// reversed. A market without any prices counts as absent.
func (b Book) Match(f fixture.Fixture) (MatchedMarket, bool) {
	date := f.Date()
	if m, ok := b.markets[MarketKey{HomeTeam: f.HomeTeam, AwayTeam: f.AwayTeam, Date: date}]; ok && len(m.Prices) > 0 {
		return MatchedMarket{Market: m}, true
	}
	if m, ok := b.markets[MarketKey{HomeTeam: f.AwayTeam, AwayTeam: f.HomeTeam, Date: date}]; ok && len(m.Prices) > 0 {
		return MatchedMarket{Market: m, Reversed: true}, true
	}
	return MatchedMarket{}, false
}

// OutrightRepository provides tournament-winner prices keyed by canonical team.
type OutrightRepository interface {
	ListOutrights(ctx context.Context) ([]fdr.OutrightPrice, error)
}

// CorrectScoreRepository provides per-fixture correct-score markets.
type CorrectScoreRepository interface {
	ListCorrectScores(ctx context.Context) ([]CorrectScoreMarket, error)
}
