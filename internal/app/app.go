package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/fixture-points/internal/config"
	"github.com/riskibarqy/fixture-points/internal/domain/fdr"
	"github.com/riskibarqy/fixture-points/internal/domain/points"
	"github.com/riskibarqy/fixture-points/internal/domain/projection"
	"github.com/riskibarqy/fixture-points/internal/domain/reference"
	"github.com/riskibarqy/fixture-points/internal/interfaces/httpapi"
	"github.com/riskibarqy/fixture-points/internal/platform/cache"
	"github.com/riskibarqy/fixture-points/internal/platform/logging"
	"github.com/riskibarqy/fixture-points/internal/usecase"
)

// NewHTTPServer builds the API server. The returned cleanup releases the
// resources opened for the input sources and must be called after shutdown.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	tables, err := reference.ClubWorldCup2025()
	if err != nil {
		return nil, nil, fmt.Errorf("build reference tables: %w", err)
	}

	src, cleanup, err := buildSources(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	engine := projection.NewEngine(tables, projection.Options{
		Difficulty:        fdr.DefaultConfig(),
		Scoring:           points.DefaultScoring(),
		AverageTotalGoals: cfg.AverageTotalGoals,
		MaxGoals:          cfg.MaxGoals,
	})

	var snapshots *cache.Store[usecase.Snapshot]
	if cfg.CacheEnabled {
		snapshots = cache.NewStore[usecase.Snapshot](cfg.CacheTTL)
	}

	pointsSvc := usecase.NewPointsService(
		src.fixtures,
		src.outrights,
		src.correctScores,
		src.stats,
		tables,
		engine,
		snapshots,
		usecase.PointsServiceConfig{LoadTimeout: cfg.LoadTimeout},
		logger,
	)

	handler := httpapi.NewHandler(pointsSvc, cfg.ServiceName, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return server, cleanup, nil
}
