package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fixture-points/internal/domain/playerstats"
	qb "github.com/riskibarqy/fixture-points/internal/platform/querybuilder"
	"github.com/riskibarqy/fixture-points/internal/platform/resilience"
)

const upsertSeasonStatsSuffix = `ON CONFLICT (season, team_name, player_key) DO UPDATE SET
	player_id = EXCLUDED.player_id,
	player_api_id = EXCLUDED.player_api_id,
	player_name = EXCLUDED.player_name,
	position = EXCLUDED.position,
	goals = EXCLUDED.goals,
	assists = EXCLUDED.assists,
	updated_at = NOW(),
	deleted_at = NULL`

// PlayerStatsRepository stores season totals per tournament season. Reads go
// through a circuit breaker so a failing database surfaces quickly.
type PlayerStatsRepository struct {
	db      *sqlx.DB
	season  string
	breaker *resilience.Breaker
}

func NewPlayerStatsRepository(db *sqlx.DB, season string, breaker *resilience.Breaker) *PlayerStatsRepository {
	if breaker == nil {
		breaker = resilience.NewBreaker(resilience.BreakerPolicy{Enabled: false})
	}
	return &PlayerStatsRepository{db: db, season: season, breaker: breaker}
}

func (r *PlayerStatsRepository) ListSeasonStats(ctx context.Context) ([]playerstats.SeasonStats, error) {
	query, args, err := listSeasonStatsQuery(r.season)
	if err != nil {
		return nil, fmt.Errorf("build list season stats query: %w", err)
	}

	var rows []playerSeasonStatsModel
	err = r.breaker.Execute(ctx, func(ctx context.Context) error {
		return r.db.SelectContext(ctx, &rows, query, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("list season stats season=%s: %w", r.season, err)
	}

	out := make([]playerstats.SeasonStats, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// UpsertSeasonStats writes stats in one statement, replacing existing rows for
// the same season, team and player key.
func (r *PlayerStatsRepository) UpsertSeasonStats(ctx context.Context, stats []playerstats.SeasonStats) error {
	if len(stats) == 0 {
		return nil
	}

	query, args, err := upsertSeasonStatsQuery(r.season, stats)
	if err != nil {
		return fmt.Errorf("build upsert season stats query: %w", err)
	}

	err = r.breaker.Execute(ctx, func(ctx context.Context) error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		return fmt.Errorf("upsert season stats season=%s rows=%d: %w", r.season, len(stats), err)
	}
	return nil
}

func listSeasonStatsQuery(season string) (string, []any, error) {
	cols, err := qb.Columns(playerSeasonStatsModel{})
	if err != nil {
		return "", nil, err
	}
	return qb.Select(cols...).
		From(playerSeasonStatsTable).
		Where(qb.Eq("season", season), qb.IsNull("deleted_at")).
		OrderBy("team_name ASC", "id ASC").
		ToSQL()
}

func upsertSeasonStatsQuery(season string, stats []playerstats.SeasonStats) (string, []any, error) {
	cols, err := qb.Columns(playerSeasonStatsModel{})
	if err != nil {
		return "", nil, err
	}

	// Later duplicates within one batch would make ON CONFLICT touch a row twice.
	seen := make(map[string]struct{}, len(stats))
	insert := qb.InsertInto(playerSeasonStatsTable).Columns(cols...)
	for _, s := range stats {
		model := toSeasonStatsModel(season, s)
		key := model.Team + "|" + model.PlayerKey
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		row, err := qb.Row(model)
		if err != nil {
			return "", nil, err
		}
		insert.Values(row...)
	}
	return insert.Suffix(upsertSeasonStatsSuffix).ToSQL()
}
