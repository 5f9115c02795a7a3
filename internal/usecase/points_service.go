package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/fixture-points/internal/domain/fdr"
	"github.com/riskibarqy/fixture-points/internal/domain/fixture"
	"github.com/riskibarqy/fixture-points/internal/domain/odds"
	"github.com/riskibarqy/fixture-points/internal/domain/playerstats"
	"github.com/riskibarqy/fixture-points/internal/domain/projection"
	"github.com/riskibarqy/fixture-points/internal/domain/reference"
	"github.com/riskibarqy/fixture-points/internal/domain/scoreline"
	"github.com/riskibarqy/fixture-points/internal/domain/team"
	"github.com/riskibarqy/fixture-points/internal/platform/cache"
	"github.com/riskibarqy/fixture-points/internal/platform/logging"
	"github.com/riskibarqy/fixture-points/internal/platform/resilience"
	"github.com/sourcegraph/conc/pool"
)

const snapshotCacheKey = "projection:snapshot"

// Snapshot is one complete projection run.
type Snapshot struct {
	Ratings  []projection.FixtureRating
	Groups   []projection.FixtureGroup
	Warnings []projection.Warning
	// PointsErr is set when fixtures were rated but no player points could be produced.
	PointsErr   error
	GeneratedAt time.Time
}

// FixtureQuery narrows results to one gameweek and/or one team. Empty fields match everything.
type FixtureQuery struct {
	Gameweek string
	Team     string
}

// CorrectScoreEvaluation is the diagnostic view of a single correct-score market.
type CorrectScoreEvaluation struct {
	Result       fdr.CorrectScoreResult
	Distribution scoreline.Distribution
	Skipped      []string
}

type PointsServiceConfig struct {
	// LoadTimeout bounds loading all input sources; zero means no extra bound.
	LoadTimeout time.Duration
}

type PointsService struct {
	fixtureRepo      fixture.Repository
	outrightRepo     odds.OutrightRepository
	correctScoreRepo odds.CorrectScoreRepository
	statsRepo        playerstats.Repository
	normalizer       *team.Normalizer
	engine           *projection.Engine
	snapshots        *cache.Store[Snapshot]
	cfg              PointsServiceConfig
	logger           *logging.Logger
	now              func() time.Time
}

// NewPointsService wires the projection pipeline. A nil snapshots store
// recomputes on every call.
func NewPointsService(
	fixtureRepo fixture.Repository,
	outrightRepo odds.OutrightRepository,
	correctScoreRepo odds.CorrectScoreRepository,
	statsRepo playerstats.Repository,
	tables reference.Tables,
	engine *projection.Engine,
	snapshots *cache.Store[Snapshot],
	cfg PointsServiceConfig,
	logger *logging.Logger,
) *PointsService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PointsService{
		fixtureRepo:      fixtureRepo,
		outrightRepo:     outrightRepo,
		correctScoreRepo: correctScoreRepo,
		statsRepo:        statsRepo,
		normalizer:       tables.Normalizer(),
		engine:           engine,
		snapshots:        snapshots,
		cfg:              cfg,
		logger:           logger,
		now:              time.Now,
	}
}

// Snapshot returns the current projection, computing it when not memoised.
func (s *PointsService) Snapshot(ctx context.Context) (Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PointsService.Snapshot")
	defer span.End()

	if s.snapshots == nil {
		return s.compute(ctx)
	}
	return s.snapshots.GetOrLoad(ctx, snapshotCacheKey, s.compute)
}

// PlayerPoints returns the per-fixture player groups matching query, in kickoff order.
func (s *PointsService) PlayerPoints(ctx context.Context, query FixtureQuery) ([]projection.FixtureGroup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PointsService.PlayerPoints")
	defer span.End()

	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if snap.PointsErr != nil {
		return nil, snap.PointsErr
	}

	filter, err := s.compileQuery(query, snap.Ratings)
	if err != nil {
		return nil, err
	}

	out := make([]projection.FixtureGroup, 0, len(snap.Groups))
	for i, group := range snap.Groups {
		if filter(snap.Ratings[i].Fixture) {
			out = append(out, group)
		}
	}
	return out, nil
}

// FixtureRatings returns the difficulty breakdown of fixtures matching query, in kickoff order.
func (s *PointsService) FixtureRatings(ctx context.Context, query FixtureQuery) ([]projection.FixtureRating, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PointsService.FixtureRatings")
	defer span.End()

	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	filter, err := s.compileQuery(query, snap.Ratings)
	if err != nil {
		return nil, err
	}

	out := make([]projection.FixtureRating, 0, len(snap.Ratings))
	for _, r := range snap.Ratings {
		if filter(r.Fixture) {
			out = append(out, r)
		}
	}
	return out, nil
}

// EvaluateCorrectScore rates a single market given in home/away order.
func (s *PointsService) EvaluateCorrectScore(ctx context.Context, prices map[string]float64) (CorrectScoreEvaluation, error) {
	_, span := startUsecaseSpan(ctx, "usecase.PointsService.EvaluateCorrectScore")
	defer span.End()

	if len(prices) == 0 {
		return CorrectScoreEvaluation{}, fmt.Errorf("%w: correct-score prices are required", ErrInvalidInput)
	}

	market := scoreline.FromOdds(prices)
	return CorrectScoreEvaluation{
		Result:       fdr.CorrectScore(market),
		Distribution: market.Distribution,
		Skipped:      market.Skipped,
	}, nil
}

// Invalidate drops the memoised projection so the next call recomputes it.
func (s *PointsService) Invalidate(ctx context.Context) {
	if s.snapshots != nil {
		s.snapshots.Delete(ctx, snapshotCacheKey)
	}
}

func (s *PointsService) compute(ctx context.Context) (Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PointsService.compute")
	defer span.End()

	raw, err := s.loadInputs(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	names := newNameResolver(s.normalizer)
	inputs := names.canonicalize(raw)

	var snap Snapshot
	report, err := s.engine.Run(inputs)
	switch {
	case errors.Is(err, projection.ErrNoPlayerPoints):
		ratings, rateErr := s.engine.Rate(inputs)
		if rateErr != nil {
			return Snapshot{}, fmt.Errorf("rate fixtures: %w", rateErr)
		}
		snap = Snapshot{Ratings: ratings.Fixtures, Warnings: ratings.Warnings, PointsErr: err}
	case err != nil:
		return Snapshot{}, fmt.Errorf("run projection: %w", err)
	default:
		snap = Snapshot{Ratings: report.Ratings, Groups: report.Groups, Warnings: report.Warnings}
	}
	snap.Warnings = append(names.warnings, snap.Warnings...)
	snap.GeneratedAt = s.now().UTC()

	for _, w := range snap.Warnings {
		s.logger.WarnContext(ctx, "projection warning",
			"code", string(w.Code),
			"fixture", w.Fixture,
			"team", w.Team,
			"message", w.Message,
		)
	}
	if snap.PointsErr != nil {
		s.logger.WarnContext(ctx, "fixtures rated without player points", "fixtures", len(snap.Ratings), "error", snap.PointsErr)
	}
	s.logger.InfoContext(ctx, "projection computed",
		"fixtures", len(snap.Ratings),
		"groups", len(snap.Groups),
		"warnings", len(snap.Warnings),
	)
	return snap, nil
}

func (s *PointsService) loadInputs(ctx context.Context) (projection.Inputs, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PointsService.loadInputs")
	defer span.End()

	if s.cfg.LoadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.LoadTimeout)
		defer cancel()
	}

	var in projection.Inputs
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		items, err := s.fixtureRepo.List(ctx)
		if err != nil {
			return loadError("fixtures", err)
		}
		in.Fixtures = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.outrightRepo.ListOutrights(ctx)
		if err != nil {
			return loadError("outright odds", err)
		}
		in.Outrights = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.correctScoreRepo.ListCorrectScores(ctx)
		if err != nil {
			return loadError("correct-score odds", err)
		}
		in.CorrectScores = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.statsRepo.ListSeasonStats(ctx)
		if err != nil {
			return loadError("player stats", err)
		}
		in.Players = items
		return nil
	})
	if err := p.Wait(); err != nil {
		return projection.Inputs{}, err
	}
	return in, nil
}

func loadError(source string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, resilience.ErrCircuitOpen) {
		return fmt.Errorf("%w: load %s: %w", ErrDependencyUnavailable, source, err)
	}
	return fmt.Errorf("load %s: %w", source, err)
}

func (s *PointsService) compileQuery(query FixtureQuery, ratings []projection.FixtureRating) (func(fixture.Fixture) bool, error) {
	gameweek := strings.TrimSpace(query.Gameweek)
	teamName := strings.TrimSpace(query.Team)
	if teamName != "" {
		teamName = s.normalizer.Resolve(teamName).Canonical()
	}

	filter := func(f fixture.Fixture) bool {
		if gameweek != "" && !strings.EqualFold(f.Gameweek, gameweek) {
			return false
		}
		if teamName != "" && !f.Involves(teamName) {
			return false
		}
		return true
	}

	if gameweek != "" && !anyFixture(ratings, func(f fixture.Fixture) bool { return strings.EqualFold(f.Gameweek, gameweek) }) {
		return nil, fmt.Errorf("%w: gameweek=%s", ErrNotFound, gameweek)
	}
	if teamName != "" && !anyFixture(ratings, func(f fixture.Fixture) bool { return f.Involves(teamName) }) {
		return nil, fmt.Errorf("%w: team=%s", ErrNotFound, query.Team)
	}
	return filter, nil
}

func anyFixture(ratings []projection.FixtureRating, match func(fixture.Fixture) bool) bool {
	for _, r := range ratings {
		if match(r.Fixture) {
			return true
		}
	}
	return false
}
