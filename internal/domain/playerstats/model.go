package playerstats

import (
	"errors"
	"fmt"

	"github.com/riskibarqy/fixture-points/internal/domain/player"
)

var (
	// ErrMissingColumn marks a stats source that lacks a required column. It is fatal.
	ErrMissingColumn = errors.New("player stats missing required column")
	ErrEmptySource   = errors.New("player stats source has no rows")
)

// SeasonStats is one player's season totals.
type SeasonStats struct {
	// PlayerID is the fantasy platform's own id, when known.
	PlayerID *string
	// ExternalID is the data provider id, when known.
	ExternalID *string
	Name       string
	Team       string
	Position   player.Position
	Goals      int
	Assists    int
}

// Key identifies a player within a team.
func (s SeasonStats) Key() string {
	if s.PlayerID != nil && *s.PlayerID != "" {
		return "id:" + *s.PlayerID
	}
	if s.ExternalID != nil && *s.ExternalID != "" {
		return "ext:" + *s.ExternalID
	}
	return "name:" + s.Name
}

func (s SeasonStats) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if s.Team == "" {
		return fmt.Errorf("player team is required: %s", s.Name)
	}
	if _, ok := player.AllPositions[s.Position]; !ok {
		return fmt.Errorf("invalid player position: %s", s.Position)
	}
	if s.Goals < 0 || s.Assists < 0 {
		return fmt.Errorf("negative season totals: %s", s.Name)
	}
	return nil
}

// TeamTotals sums season goals and assists per team.
type TeamTotals struct {
	Goals   int
	Assists int
}

func Totals(stats []SeasonStats) map[string]TeamTotals {
	out := make(map[string]TeamTotals)
	for _, s := range stats {
		t := out[s.Team]
		t.Goals += s.Goals
		t.Assists += s.Assists
		out[s.Team] = t
	}
	return out
}

// ByTeam groups stats per team preserving input order.
func ByTeam(stats []SeasonStats) map[string][]SeasonStats {
	out := make(map[string][]SeasonStats)
	for _, s := range stats {
		out[s.Team] = append(out[s.Team], s)
	}
	return out
}
