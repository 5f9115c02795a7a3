package fixture

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

var (
	ErrSameTeam       = errors.New("home and away team must differ")
	ErrMissingTeam    = errors.New("fixture team is required")
	ErrMissingKickoff = errors.New("fixture kickoff is required")
)

// DateLayout is the calendar date format used for fixture keys and output.
const DateLayout = "2006-01-02"

// Fixture represents one scheduled tournament match between canonical teams.
type Fixture struct {
	ID        string
	Gameweek  string
	HomeTeam  string
	AwayTeam  string
	KickoffAt time.Time
	Venue     string
	Group     string
}

func (f Fixture) Validate() error {
	if f.HomeTeam == "" || f.AwayTeam == "" {
		return ErrMissingTeam
	}
	if f.HomeTeam == f.AwayTeam {
		return fmt.Errorf("%w: %s", ErrSameTeam, f.HomeTeam)
	}
	if f.KickoffAt.IsZero() {
		return ErrMissingKickoff
	}
	return nil
}

// Date returns the calendar date of kickoff.
func (f Fixture) Date() string {
	return f.KickoffAt.Format(DateLayout)
}

// Day truncates kickoff to midnight so rest-day arithmetic ignores kickoff times.
func (f Fixture) Day() time.Time {
	y, m, d := f.KickoffAt.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// KickoffTime renders kickoff in 12-hour clock form, e.g. "8:00 PM".
func (f Fixture) KickoffTime() string {
	return f.KickoffAt.Format("3:04 PM")
}

// MatchLabel is the human-readable identifier "Home vs Away (date)".
func (f Fixture) MatchLabel() string {
	return fmt.Sprintf("%s vs %s (%s)", f.HomeTeam, f.AwayTeam, f.Date())
}

// DedupeKey identifies a fixture by id, falling back to home+away+date.
func (f Fixture) DedupeKey() string {
	if f.ID != "" {
		return "id:" + f.ID
	}
	return fmt.Sprintf("match:%s|%s|%s", f.HomeTeam, f.AwayTeam, f.Date())
}

// Involves reports whether team plays in the fixture.
func (f Fixture) Involves(team string) bool {
	return f.HomeTeam == team || f.AwayTeam == team
}

// SortAndDedupe orders fixtures by kickoff and drops later duplicates.
// Ties on kickoff keep input order. The input slice is not modified.
func SortAndDedupe(fixtures []Fixture) (out []Fixture, duplicates []Fixture) {
	sorted := make([]Fixture, len(fixtures))
	copy(sorted, fixtures)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].KickoffAt.Before(sorted[j].KickoffAt)
	})

	seen := make(map[string]struct{}, len(sorted))
	out = make([]Fixture, 0, len(sorted))
	for _, f := range sorted {
		key := f.DedupeKey()
		if _, ok := seen[key]; ok {
			duplicates = append(duplicates, f)
			continue
		}
		seen[key] = struct{}{}
		out = append(out, f)
	}
	return out, duplicates
}

// Teams returns every team appearing in fixtures, sorted.
func Teams(fixtures []Fixture) []string {
	set := make(map[string]struct{})
	for _, f := range fixtures {
		set[f.HomeTeam] = struct{}{}
		set[f.AwayTeam] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
