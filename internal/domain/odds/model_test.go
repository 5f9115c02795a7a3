package odds

import (
	"testing"
	"time"

	"github.com/riskibarqy/fixture-points/internal/domain/fixture"
	"github.com/riskibarqy/fixture-points/internal/domain/scoreline"
)

func TestBook_Match(t *testing.T) {
	t.Parallel()

	kickoff := time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC)
	book := NewBook([]CorrectScoreMarket{
		{HomeTeam: "A", AwayTeam: "B", Date: "2025-06-15", Prices: map[string]float64{"1-0": 2}},
		{HomeTeam: "D", AwayTeam: "C", Date: "2025-06-15", Prices: map[string]float64{"2-0": 4, "0-0": 4}},
	})

	m, ok := book.Match(fixture.Fixture{HomeTeam: "A", AwayTeam: "B", KickoffAt: kickoff})
	if !ok || m.Reversed {
		t.Fatalf("expected direct match, got ok=%v reversed=%v", ok, m.Reversed)
	}

	m, ok = book.Match(fixture.Fixture{HomeTeam: "C", AwayTeam: "D", KickoffAt: kickoff})
	if !ok || !m.Reversed {
		t.Fatalf("expected reversed match, got ok=%v reversed=%v", ok, m.Reversed)
	}
	oriented := m.Oriented()
	if got := oriented.Distribution.Probability(scoreline.Score{Home: 0, Away: 2}); got != 0.5 {
		t.Fatalf("expected flipped scoreline, got=%v", got)
	}

	if _, ok := book.Match(fixture.Fixture{HomeTeam: "A", AwayTeam: "B", KickoffAt: kickoff.AddDate(0, 0, 1)}); ok {
		t.Fatalf("expected no match on a different date")
	}
}

func TestBook_MatchSkipsEmptyMarkets(t *testing.T) {
	t.Parallel()

	kickoff := time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC)
	book := NewBook([]CorrectScoreMarket{
		{HomeTeam: "A", AwayTeam: "B", Date: "2025-06-15", Prices: map[string]float64{}},
		{HomeTeam: "B", AwayTeam: "A", Date: "2025-06-15", Prices: map[string]float64{"1-0": 2}},
		{HomeTeam: "C", AwayTeam: "D", Date: "2025-06-15"},
	})

	m, ok := book.Match(fixture.Fixture{HomeTeam: "A", AwayTeam: "B", KickoffAt: kickoff})
	if !ok || !m.Reversed {
		t.Fatalf("expected reversed match after empty direct market, got ok=%v reversed=%v", ok, m.Reversed)
	}

	if _, ok := book.Match(fixture.Fixture{HomeTeam: "C", AwayTeam: "D", KickoffAt: kickoff}); ok {
		t.Fatalf("market without prices must not match")
	}
}
