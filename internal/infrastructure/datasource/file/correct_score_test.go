package file

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/riskibarqy/fixture-points/internal/platform/logging"
)

func TestSplitMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in         string
		home, away string
		ok         bool
	}{
		{in: "Chelsea vs LAFC", home: "Chelsea", away: "LAFC", ok: true},
		{in: "Al Ahly - Inter Miami", home: "Al Ahly", away: "Inter Miami", ok: true},
		{in: "Seattle Sounders @ Botafogo", home: "Seattle Sounders", away: "Botafogo", ok: true},
		{in: "Real Madrid   Al Hilal", home: "Real Madrid", away: "Al Hilal", ok: true},
		{in: "Benfica", ok: false},
		{in: " vs LAFC", ok: false},
	}
	for _, tc := range tests {
		home, away, ok := SplitMatch(tc.in)
		if ok != tc.ok || home != tc.home || away != tc.away {
			t.Fatalf("unexpected split for %q: got=(%q,%q,%v) want=(%q,%q,%v)", tc.in, home, away, ok, tc.home, tc.away, tc.ok)
		}
	}
}

func TestParseCorrectScores(t *testing.T) {
	t.Parallel()

	raw := []byte(`{"matches":[
		{"match":"Chelsea vs LAFC","date":"2025-06-16","correct_score_odds":{"1-0":6.5,"2-0":"7.0","0-0":"n/a"}},
		{"match":"Benfica","date":"2025-06-16","correct_score_odds":{"1-0":6.5}},
		{"match":"Porto vs Al Ahly","date":"23/06/2025","correct_score_odds":{"1-0":6.5}},
		{"match":"Juventus vs Wydad","date":"2025-06-22"}
	]}`)

	markets, err := ParseCorrectScores(raw, logging.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(markets) != 1 {
		t.Fatalf("unexpected market count: got=%d want=1", len(markets))
	}

	m := markets[0]
	if m.HomeTeam != "Chelsea" || m.AwayTeam != "LAFC" || m.Date != "2025-06-16" {
		t.Fatalf("unexpected market: %+v", m)
	}
	if m.Prices["1-0"] != 6.5 || m.Prices["2-0"] != 7 {
		t.Fatalf("unexpected prices: %v", m.Prices)
	}
	if !math.IsNaN(m.Prices["0-0"]) {
		t.Fatalf("unreadable price should be NaN, got=%v", m.Prices["0-0"])
	}
}

func TestParseCorrectScores_MissingMatches(t *testing.T) {
	t.Parallel()

	if _, err := ParseCorrectScores([]byte(`{"fixtures":[]}`), logging.NewNop()); !errors.Is(err, ErrMissingMatches) {
		t.Fatalf("expected ErrMissingMatches, got=%v", err)
	}
}

func TestCorrectScoreSource_ListCorrectScores(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "cs.json")
	if err := os.WriteFile(path, []byte(`{"matches":[{"match":"Chelsea vs LAFC","date":"2025-06-16","correct_score_odds":{"1-0":6.5}}]}`), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	markets, err := NewCorrectScoreSource(path, logging.NewNop()).ListCorrectScores(context.Background())
	if err != nil || len(markets) != 1 {
		t.Fatalf("unexpected result: markets=%v err=%v", markets, err)
	}

	missing, err := NewCorrectScoreSource(filepath.Join(dir, "none.json"), logging.NewNop()).ListCorrectScores(context.Background())
	if err != nil || len(missing) != 0 {
		t.Fatalf("missing file should yield no markets: markets=%v err=%v", missing, err)
	}
}
