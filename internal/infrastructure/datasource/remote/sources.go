package remote

import (
	"context"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/fixture-points/internal/domain/fdr"
	"github.com/riskibarqy/fixture-points/internal/domain/odds"
	"github.com/riskibarqy/fixture-points/internal/infrastructure/datasource/file"
	"github.com/riskibarqy/fixture-points/internal/platform/logging"
)

// OutrightSource reads the bookmaker outrights page from a URL.
type OutrightSource struct {
	client *Client
	url    string
	logger *logging.Logger
}

func NewOutrightSource(client *Client, url string, logger *logging.Logger) *OutrightSource {
	if logger == nil {
		logger = logging.Default()
	}
	return &OutrightSource{client: client, url: url, logger: logger}
}

func (s *OutrightSource) ListOutrights(ctx context.Context) ([]fdr.OutrightPrice, error) {
	raw, ok, err := s.client.Fetch(ctx, s.url)
	if err != nil {
		return nil, crerr.Wrap(err, "fetch outright odds")
	}
	if !ok {
		s.logger.WarnContext(ctx, "remote outright page not found", "url", s.url)
		return nil, nil
	}

	prices, err := file.ParseOutrightHTML(raw, s.logger)
	if err != nil {
		return nil, crerr.Wrapf(err, "parse outright odds %s", s.url)
	}
	s.logger.InfoContext(ctx, "outright odds loaded", "source", "remote", "url", s.url, "count", len(prices))
	return prices, nil
}

// CorrectScoreSource reads the correct-score JSON document from a URL.
type CorrectScoreSource struct {
	client *Client
	url    string
	logger *logging.Logger
}

func NewCorrectScoreSource(client *Client, url string, logger *logging.Logger) *CorrectScoreSource {
	if logger == nil {
		logger = logging.Default()
	}
	return &CorrectScoreSource{client: client, url: url, logger: logger}
}

func (s *CorrectScoreSource) ListCorrectScores(ctx context.Context) ([]odds.CorrectScoreMarket, error) {
	raw, ok, err := s.client.Fetch(ctx, s.url)
	if err != nil {
		return nil, crerr.Wrap(err, "fetch correct score odds")
	}
	if !ok {
		s.logger.InfoContext(ctx, "remote correct score document not found", "url", s.url)
		return nil, nil
	}

	markets, err := file.ParseCorrectScores(raw, s.logger)
	if err != nil {
		return nil, crerr.Wrapf(err, "parse correct score odds %s", s.url)
	}
	s.logger.InfoContext(ctx, "correct score odds loaded", "source", "remote", "url", s.url, "count", len(markets))
	return markets, nil
}
