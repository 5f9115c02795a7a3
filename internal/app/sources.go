package app

import (
	"context"

	"github.com/riskibarqy/fixture-points/internal/config"
	"github.com/riskibarqy/fixture-points/internal/domain/fdr"
	"github.com/riskibarqy/fixture-points/internal/domain/fixture"
	"github.com/riskibarqy/fixture-points/internal/domain/odds"
	"github.com/riskibarqy/fixture-points/internal/domain/playerstats"
	"github.com/riskibarqy/fixture-points/internal/infrastructure/datasource/file"
	"github.com/riskibarqy/fixture-points/internal/infrastructure/datasource/remote"
	cacherepo "github.com/riskibarqy/fixture-points/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/fixture-points/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fixture-points/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/fixture-points/internal/platform/cache"
	"github.com/riskibarqy/fixture-points/internal/platform/logging"
	"github.com/riskibarqy/fixture-points/internal/platform/resilience"
)

type sources struct {
	fixtures      fixture.Repository
	outrights     odds.OutrightRepository
	correctScores odds.CorrectScoreRepository
	stats         playerstats.Repository
}

func noopCleanup() error { return nil }

func buildSources(ctx context.Context, cfg config.Config, logger *logging.Logger) (sources, func() error, error) {
	src := sources{
		fixtures:      memory.NewFixtureRepository(memory.ClubWorldCup2025Fixtures()),
		outrights:     file.NewOutrightSource(cfg.OutrightHTMLPath, cfg.OutrightMarkdownPath, logger),
		correctScores: file.NewCorrectScoreSource(cfg.CorrectScorePath, logger),
		stats:         file.NewPlayerStatsSource(cfg.PlayerStatsPath, cfg.PlayerStatsSheet, logger),
	}
	if cfg.FixturesPath != "" {
		src.fixtures = file.NewFixtureSource(cfg.FixturesPath, logger)
	}
	if cfg.OutrightURL != "" || cfg.CorrectScoreURL != "" {
		client := remote.NewClient(remote.ClientConfig{
			Timeout:      cfg.RemoteTimeout,
			MaxBodyBytes: cfg.RemoteMaxBodyBytes,
			UserAgent:    cfg.ServiceName + "/" + cfg.ServiceVersion,
			Breaker:      breakerPolicy(cfg),
		}, logger)
		if cfg.OutrightURL != "" {
			src.outrights = remote.NewOutrightSource(client, cfg.OutrightURL, logger)
			logger.Info("outright odds source", "source", "remote", "url", cfg.OutrightURL)
		}
		if cfg.CorrectScoreURL != "" {
			src.correctScores = remote.NewCorrectScoreSource(client, cfg.CorrectScoreURL, logger)
			logger.Info("correct score odds source", "source", "remote", "url", cfg.CorrectScoreURL)
		}
	}

	cleanup := noopCleanup
	if cfg.PlayerStatsSource == config.StatsSourcePostgres {
		db, err := openDB(ctx, cfg)
		if err != nil {
			return sources{}, nil, err
		}
		breaker := resilience.NewBreaker(breakerPolicy(cfg))
		src.stats = postgres.NewPlayerStatsRepository(db, cfg.PlayerStatsSeason, breaker)
		cleanup = db.Close
		logger.Info("player stats source", "source", cfg.PlayerStatsSource, "season", cfg.PlayerStatsSeason, "db", dbNameFromURL(cfg.DBURL))
	} else {
		logger.Info("player stats source", "source", cfg.PlayerStatsSource, "path", cfg.PlayerStatsPath, "sheet", cfg.PlayerStatsSheet)
	}

	if cfg.CacheEnabled {
		src = withCache(src, cfg)
	}
	return src, cleanup, nil
}

// breakerPolicy is shared by every dependency that can fail at runtime; each
// gets its own Breaker.
func breakerPolicy(cfg config.Config) resilience.BreakerPolicy {
	return resilience.BreakerPolicy{
		Enabled:          cfg.StatsCircuitEnabled,
		FailureThreshold: cfg.StatsCircuitFailures,
		OpenTimeout:      cfg.StatsCircuitOpenTimeout,
		HalfOpenProbes:   1,
	}
}

func withCache(src sources, cfg config.Config) sources {
	return sources{
		fixtures:      cacherepo.NewFixtureRepository(src.fixtures, cache.NewStore[[]fixture.Fixture](cfg.CacheTTL)),
		outrights:     cacherepo.NewOutrightRepository(src.outrights, cache.NewStore[[]fdr.OutrightPrice](cfg.CacheTTL)),
		correctScores: cacherepo.NewCorrectScoreRepository(src.correctScores, cache.NewStore[[]odds.CorrectScoreMarket](cfg.CacheTTL)),
		stats:         cacherepo.NewPlayerStatsRepository(src.stats, cache.NewStore[[]playerstats.SeasonStats](cfg.CacheTTL)),
	}
}
