package postgres

import (
	"database/sql"

	"github.com/riskibarqy/fixture-points/internal/domain/player"
	"github.com/riskibarqy/fixture-points/internal/domain/playerstats"
)

const playerSeasonStatsTable = "player_season_stats"

type playerSeasonStatsModel struct {
	Season      string         `db:"season"`
	PlayerKey   string         `db:"player_key"`
	PlayerID    sql.NullString `db:"player_id"`
	PlayerAPIID sql.NullString `db:"player_api_id"`
	Name        string         `db:"player_name"`
	Team        string         `db:"team_name"`
	Position    string         `db:"position"`
	Goals       int            `db:"goals"`
	Assists     int            `db:"assists"`
}

func toSeasonStatsModel(season string, s playerstats.SeasonStats) playerSeasonStatsModel {
	return playerSeasonStatsModel{
		Season:      season,
		PlayerKey:   s.Key(),
		PlayerID:    nullString(s.PlayerID),
		PlayerAPIID: nullString(s.ExternalID),
		Name:        s.Name,
		Team:        s.Team,
		Position:    string(s.Position),
		Goals:       s.Goals,
		Assists:     s.Assists,
	}
}

func (m playerSeasonStatsModel) toDomain() playerstats.SeasonStats {
	return playerstats.SeasonStats{
		PlayerID:   stringPtr(m.PlayerID),
		ExternalID: stringPtr(m.PlayerAPIID),
		Name:       m.Name,
		Team:       m.Team,
		Position:   player.Position(m.Position),
		Goals:      m.Goals,
		Assists:    m.Assists,
	}
}

func nullString(v *string) sql.NullString {
	if v == nil || *v == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

func stringPtr(v sql.NullString) *string {
	if !v.Valid || v.String == "" {
		return nil
	}
	s := v.String
	return &s
}
