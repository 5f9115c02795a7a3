package file

import (
	"bytes"
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fixture-points/internal/domain/fdr"
	"github.com/riskibarqy/fixture-points/internal/platform/logging"
)

const (
	outrightRowSelector  = `div[data-testid="outrights-table-row"]`
	outrightNameSelector = `div[data-testid="outrights-participant-name"] p`
	outrightOddsSelector = `div[data-testid="add-to-coupon-button"] p`
)

var (
	ErrInvalidOdds = crerr.New("invalid odds")

	markdownOutrightPattern = regexp.MustCompile(`!\[(.*?)\]\(https?://.*?\)\s*\n*\s*(?:.*?)\s*\n*\s*(?:\d+)\s*\n*\s*(\+\d+)`)
)

// OutrightSource reads tournament-winner prices from a saved bookmaker page,
// falling back to a Markdown export when the page yields nothing.
type OutrightSource struct {
	htmlPath     string
	markdownPath string
	logger       *logging.Logger
}

func NewOutrightSource(htmlPath, markdownPath string, logger *logging.Logger) *OutrightSource {
	return &OutrightSource{htmlPath: htmlPath, markdownPath: markdownPath, logger: loggerOrDefault(logger)}
}

func (s *OutrightSource) ListOutrights(ctx context.Context) ([]fdr.OutrightPrice, error) {
	raw, ok, err := readOptional(ctx, s.htmlPath)
	if err != nil {
		return nil, err
	}
	if ok {
		prices, err := ParseOutrightHTML(raw, s.logger)
		if err != nil {
			s.logger.WarnContext(ctx, "parse outright html failed", "path", s.htmlPath, "error", err)
		}
		if len(prices) > 0 {
			s.logger.InfoContext(ctx, "outright odds loaded", "source", "html", "count", len(prices))
			return prices, nil
		}
	}

	raw, ok, err = readOptional(ctx, s.markdownPath)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.logger.WarnContext(ctx, "no outright odds available", "html_path", s.htmlPath, "markdown_path", s.markdownPath)
		return nil, nil
	}

	prices := ParseOutrightMarkdown(string(raw), s.logger)
	s.logger.InfoContext(ctx, "outright odds loaded", "source", "markdown", "count", len(prices))
	return prices, nil
}

// ParseOutrightHTML extracts team prices from the bookmaker outrights table.
// Rows with unreadable prices are skipped.
func ParseOutrightHTML(raw []byte, logger *logging.Logger) ([]fdr.OutrightPrice, error) {
	logger = loggerOrDefault(logger)
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, crerr.Wrap(err, "parse outright html")
	}

	var out []fdr.OutrightPrice
	doc.Find(outrightRowSelector).Each(func(_ int, row *goquery.Selection) {
		name := strings.TrimSpace(row.Find(outrightNameSelector).First().Text())
		text := strings.TrimSpace(row.Find(outrightOddsSelector).First().Text())
		if name == "" || text == "" {
			return
		}
		odds, err := ParseOdds(text)
		if err != nil {
			logger.Warn("skip outright row", "team", name, "odds", text, "error", err)
			return
		}
		out = append(out, fdr.OutrightPrice{Team: name, DecimalOdds: odds})
	})
	return out, nil
}

// ParseOutrightMarkdown extracts "![Team](logo) ... +odds" blocks. Only
// positive American prices are recognised in this format.
func ParseOutrightMarkdown(content string, logger *logging.Logger) []fdr.OutrightPrice {
	logger = loggerOrDefault(logger)
	var out []fdr.OutrightPrice
	for _, m := range markdownOutrightPattern.FindAllStringSubmatch(content, -1) {
		name, text := strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
		odds, err := ParseOdds(text)
		if err != nil {
			logger.Warn("skip outright entry", "team", name, "odds", text, "error", err)
			continue
		}
		out = append(out, fdr.OutrightPrice{Team: name, DecimalOdds: odds})
	}
	return out
}

// ParseOdds converts American ("+250", "-150"), fractional ("5/2") or decimal
// ("3.50") prices to decimal odds.
func ParseOdds(text string) (float64, error) {
	v := strings.TrimSpace(text)
	switch {
	case v == "":
		return 0, crerr.Wrap(ErrInvalidOdds, "empty price")
	case strings.HasPrefix(v, "+"):
		n, err := strconv.ParseFloat(v[1:], 64)
		if err != nil || n <= 0 {
			return 0, crerr.Wrapf(ErrInvalidOdds, "american price %q", text)
		}
		return n/100 + 1, nil
	case strings.HasPrefix(v, "-"):
		n, err := strconv.ParseFloat(v[1:], 64)
		if err != nil || n <= 0 {
			return 0, crerr.Wrapf(ErrInvalidOdds, "american price %q", text)
		}
		return 100/n + 1, nil
	case strings.Contains(v, "/"):
		num, den, _ := strings.Cut(v, "/")
		a, errA := strconv.ParseFloat(strings.TrimSpace(num), 64)
		b, errB := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if errA != nil || errB != nil || a < 0 || b <= 0 {
			return 0, crerr.Wrapf(ErrInvalidOdds, "fractional price %q", text)
		}
		return a/b + 1, nil
	case strings.EqualFold(v, "evs"), strings.EqualFold(v, "evens"):
		return 2, nil
	default:
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, crerr.Wrapf(ErrInvalidOdds, "decimal price %q", text)
		}
		return n, nil
	}
}
