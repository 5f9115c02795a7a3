package file

import (
	"context"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fixture-points/internal/domain/fixture"
	"github.com/riskibarqy/fixture-points/internal/domain/odds"
	"github.com/riskibarqy/fixture-points/internal/platform/logging"
)

var (
	ErrMissingMatches = crerr.New("correct score document has no matches key")

	matchSeparators = []string{" vs ", " - ", " @ "}
	wideGap         = regexp.MustCompile(`\s{2,}`)
)

type correctScoreEntry struct {
	Match string         `json:"match"`
	Date  string         `json:"date"`
	Odds  map[string]any `json:"correct_score_odds"`
}

type correctScoreDocument struct {
	Matches *[]correctScoreEntry `json:"matches"`
}

// CorrectScoreSource reads per-fixture correct-score prices from a JSON export.
type CorrectScoreSource struct {
	path   string
	logger *logging.Logger
}

func NewCorrectScoreSource(path string, logger *logging.Logger) *CorrectScoreSource {
	return &CorrectScoreSource{path: path, logger: loggerOrDefault(logger)}
}

func (s *CorrectScoreSource) ListCorrectScores(ctx context.Context) ([]odds.CorrectScoreMarket, error) {
	raw, ok, err := readOptional(ctx, s.path)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.logger.InfoContext(ctx, "correct score file not found", "path", s.path)
		return nil, nil
	}

	markets, err := ParseCorrectScores(raw, s.logger)
	if err != nil {
		return nil, crerr.Wrapf(err, "load correct scores %s", s.path)
	}
	s.logger.InfoContext(ctx, "correct score odds loaded", "path", s.path, "count", len(markets))
	return markets, nil
}

// ParseCorrectScores decodes a {"matches": [...]} document. Entries with an
// unreadable match string or date are skipped. Prices may be numbers or
// numeric strings; anything else is kept as NaN so the engine reports it.
func ParseCorrectScores(raw []byte, logger *logging.Logger) ([]odds.CorrectScoreMarket, error) {
	logger = loggerOrDefault(logger)

	var doc correctScoreDocument
	if err := sonic.Unmarshal(raw, &doc); err != nil {
		return nil, crerr.Wrap(err, "decode correct score document")
	}
	if doc.Matches == nil {
		return nil, ErrMissingMatches
	}

	out := make([]odds.CorrectScoreMarket, 0, len(*doc.Matches))
	for _, entry := range *doc.Matches {
		if entry.Match == "" || entry.Date == "" || entry.Odds == nil {
			logger.Warn("skip correct score entry with missing fields", "match", entry.Match)
			continue
		}
		home, away, ok := SplitMatch(entry.Match)
		if !ok {
			logger.Warn("skip correct score entry", "match", entry.Match, "reason", "unreadable teams")
			continue
		}
		date := strings.TrimSpace(entry.Date)
		if _, err := time.Parse(fixture.DateLayout, date); err != nil {
			logger.Warn("skip correct score entry", "match", entry.Match, "date", entry.Date, "reason", "invalid date")
			continue
		}

		prices := make(map[string]float64, len(entry.Odds))
		for label, value := range entry.Odds {
			prices[strings.TrimSpace(label)] = priceValue(value)
		}
		out = append(out, odds.CorrectScoreMarket{HomeTeam: home, AwayTeam: away, Date: date, Prices: prices})
	}
	return out, nil
}

// SplitMatch splits "Home vs Away" style labels. " vs ", " - " and " @ " are
// tried in order, then a run of two or more spaces.
func SplitMatch(match string) (home, away string, ok bool) {
	for _, sep := range matchSeparators {
		if h, a, found := strings.Cut(match, sep); found {
			return trimPair(h, a)
		}
	}
	if parts := wideGap.Split(strings.TrimSpace(match), 2); len(parts) == 2 {
		return trimPair(parts[0], parts[1])
	}
	return "", "", false
}

func trimPair(h, a string) (string, string, bool) {
	h, a = strings.TrimSpace(h), strings.TrimSpace(a)
	return h, a, h != "" && a != ""
}

func priceValue(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case int64:
		return float64(x)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(x), 64); err == nil {
			return f
		}
	}
	return math.NaN()
}
