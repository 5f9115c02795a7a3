package cache

import (
	"context"
	"maps"

	"github.com/riskibarqy/fixture-points/internal/domain/fdr"
	"github.com/riskibarqy/fixture-points/internal/domain/fixture"
	"github.com/riskibarqy/fixture-points/internal/domain/odds"
	"github.com/riskibarqy/fixture-points/internal/domain/playerstats"
	basecache "github.com/riskibarqy/fixture-points/internal/platform/cache"
)

const (
	keyFixtures      = "fixtures:list"
	keyOutrights     = "odds:outright"
	keyCorrectScores = "odds:correct_score"
	keySeasonStats   = "playerstats:season"
)

type FixtureRepository struct {
	next  fixture.Repository
	cache *basecache.Store[[]fixture.Fixture]
}

func NewFixtureRepository(next fixture.Repository, cache *basecache.Store[[]fixture.Fixture]) *FixtureRepository {
	return &FixtureRepository{next: next, cache: cache}
}

func (r *FixtureRepository) List(ctx context.Context) ([]fixture.Fixture, error) {
	items, err := r.cache.GetOrLoad(ctx, keyFixtures, r.next.List)
	if err != nil {
		return nil, err
	}
	return append([]fixture.Fixture(nil), items...), nil
}

type OutrightRepository struct {
	next  odds.OutrightRepository
	cache *basecache.Store[[]fdr.OutrightPrice]
}

func NewOutrightRepository(next odds.OutrightRepository, cache *basecache.Store[[]fdr.OutrightPrice]) *OutrightRepository {
	return &OutrightRepository{next: next, cache: cache}
}

func (r *OutrightRepository) ListOutrights(ctx context.Context) ([]fdr.OutrightPrice, error) {
	items, err := r.cache.GetOrLoad(ctx, keyOutrights, r.next.ListOutrights)
	if err != nil {
		return nil, err
	}
	return append([]fdr.OutrightPrice(nil), items...), nil
}

type CorrectScoreRepository struct {
	next  odds.CorrectScoreRepository
	cache *basecache.Store[[]odds.CorrectScoreMarket]
}

func NewCorrectScoreRepository(next odds.CorrectScoreRepository, cache *basecache.Store[[]odds.CorrectScoreMarket]) *CorrectScoreRepository {
	return &CorrectScoreRepository{next: next, cache: cache}
}

// ListCorrectScores returns copies so callers cannot mutate cached price maps.
func (r *CorrectScoreRepository) ListCorrectScores(ctx context.Context) ([]odds.CorrectScoreMarket, error) {
	items, err := r.cache.GetOrLoad(ctx, keyCorrectScores, r.next.ListCorrectScores)
	if err != nil {
		return nil, err
	}

	out := make([]odds.CorrectScoreMarket, len(items))
	for i, m := range items {
		m.Prices = maps.Clone(m.Prices)
		out[i] = m
	}
	return out, nil
}

type PlayerStatsRepository struct {
	next  playerstats.Repository
	cache *basecache.Store[[]playerstats.SeasonStats]
}

func NewPlayerStatsRepository(next playerstats.Repository, cache *basecache.Store[[]playerstats.SeasonStats]) *PlayerStatsRepository {
	return &PlayerStatsRepository{next: next, cache: cache}
}

func (r *PlayerStatsRepository) ListSeasonStats(ctx context.Context) ([]playerstats.SeasonStats, error) {
	items, err := r.cache.GetOrLoad(ctx, keySeasonStats, r.next.ListSeasonStats)
	if err != nil {
		return nil, err
	}
	return append([]playerstats.SeasonStats(nil), items...), nil
}
