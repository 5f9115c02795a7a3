package scoreline

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

var ErrInvalidScore = errors.New("invalid scoreline")

// Score is one exact final result, keyed from the fixture's home/away order.
type Score struct {
	Home int
	Away int
}

func (s Score) String() string {
	return fmt.Sprintf("%d-%d", s.Home, s.Away)
}

// Flip swaps the orientation of the score.
func (s Score) Flip() Score {
	return Score{Home: s.Away, Away: s.Home}
}

// ParseScore parses the "h-a" form used by bookmaker correct-score markets.
func ParseScore(value string) (Score, error) {
	home, away, ok := strings.Cut(value, "-")
	if !ok || !isDigits(home) || !isDigits(away) {
		return Score{}, fmt.Errorf("%w: %q", ErrInvalidScore, value)
	}

	h, err := strconv.Atoi(home)
	if err != nil {
		return Score{}, fmt.Errorf("%w: %q", ErrInvalidScore, value)
	}
	a, err := strconv.Atoi(away)
	if err != nil {
		return Score{}, fmt.Errorf("%w: %q", ErrInvalidScore, value)
	}
	return Score{Home: h, Away: a}, nil
}

func isDigits(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Entry is a scoreline with its probability.
type Entry struct {
	Score       Score
	Probability float64
}

// Distribution is a probability mass function over scorelines.
// Entries are kept sorted by (Home, Away) so every iteration is deterministic.
type Distribution struct {
	entries []Entry
}

// NewDistribution normalises the given weights into a distribution.
// Non-finite and non-positive weights are dropped. When nothing usable
// remains the distribution puts all mass on 0-0.
func NewDistribution(weights map[Score]float64) Distribution {
	keys := make([]Score, 0, len(weights))
	for score := range weights {
		keys = append(keys, score)
	}
	sortScores(keys)

	total := 0.0
	entries := make([]Entry, 0, len(keys))
	for _, score := range keys {
		w := weights[score]
		if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
			continue
		}
		entries = append(entries, Entry{Score: score, Probability: w})
		total += w
	}

	if len(entries) == 0 || total <= 1e-9 || math.IsInf(total, 0) {
		return Certain(Score{})
	}

	for i := range entries {
		entries[i].Probability /= total
	}
	return Distribution{entries: entries}
}

// Certain returns a distribution with all mass on one score.
func Certain(score Score) Distribution {
	return Distribution{entries: []Entry{{Score: score, Probability: 1}}}
}

func sortScores(scores []Score) {
	sort.Slice(scores, func(i, j int) bool {
		return less(scores[i], scores[j])
	})
}

func less(a, b Score) bool {
	if a.Home != b.Home {
		return a.Home < b.Home
	}
	return a.Away < b.Away
}

// Entries returns a copy of the sorted entries.
func (d Distribution) Entries() []Entry {
	out := make([]Entry, len(d.entries))
	copy(out, d.entries)
	return out
}

func (d Distribution) Len() int {
	return len(d.entries)
}

func (d Distribution) IsZero() bool {
	return len(d.entries) == 0
}

func (d Distribution) Probability(score Score) float64 {
	for _, e := range d.entries {
		if e.Score == score {
			return e.Probability
		}
	}
	return 0
}

// Total sums all probabilities; a valid distribution returns 1 within rounding.
func (d Distribution) Total() float64 {
	total := 0.0
	for _, e := range d.entries {
		total += e.Probability
	}
	return total
}

// Flip re-orients the distribution, turning away-keyed scores into home-keyed ones.
func (d Distribution) Flip() Distribution {
	out := make([]Entry, len(d.entries))
	for i, e := range d.entries {
		out[i] = Entry{Score: e.Score.Flip(), Probability: e.Probability}
	}
	sort.Slice(out, func(i, j int) bool {
		return less(out[i].Score, out[j].Score)
	})
	return Distribution{entries: out}
}

// Outcome holds home-win, draw and away-win probabilities.
type Outcome struct {
	Home float64
	Draw float64
	Away float64
}

// NeutralOutcome is reported when a market carries no usable prices.
var NeutralOutcome = Outcome{Home: 0.333, Draw: 0.334, Away: 0.333}

// Outcome aggregates the distribution into 1X2 probabilities renormalised to sum to one.
func (d Distribution) Outcome() Outcome {
	var out Outcome
	for _, e := range d.entries {
		switch {
		case e.Score.Home > e.Score.Away:
			out.Home += e.Probability
		case e.Score.Home < e.Score.Away:
			out.Away += e.Probability
		default:
			out.Draw += e.Probability
		}
	}

	sum := out.Home + out.Draw + out.Away
	if sum <= 1e-6 {
		return NeutralOutcome
	}
	out.Home /= sum
	out.Draw /= sum
	out.Away /= sum
	return out
}

// ExpectedGoals returns the probability-weighted goals for each side.
func (d Distribution) ExpectedGoals() (home, away float64) {
	for _, e := range d.entries {
		home += float64(e.Score.Home) * e.Probability
		away += float64(e.Score.Away) * e.Probability
	}
	return home, away
}
