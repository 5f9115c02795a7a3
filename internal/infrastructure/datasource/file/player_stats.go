package file

import (
	"context"
	"errors"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fixture-points/internal/domain/player"
	"github.com/riskibarqy/fixture-points/internal/domain/playerstats"
	"github.com/riskibarqy/fixture-points/internal/platform/logging"
	"github.com/xuri/excelize/v2"
)

const (
	columnPlayerName  = "Player Name"
	columnTeamName    = "Team Name"
	columnTeam        = "Team"
	columnPosition    = "Position"
	columnGoals       = "Goals"
	columnAssists     = "Assists"
	columnExternalID  = "Player API ID"
	columnPlayerID    = "player_id"
	defaultStatsSheet = "Sheet1"
)

// PlayerStatsSource reads season totals from an xlsx workbook.
type PlayerStatsSource struct {
	path   string
	sheet  string
	logger *logging.Logger
}

func NewPlayerStatsSource(path, sheet string, logger *logging.Logger) *PlayerStatsSource {
	if strings.TrimSpace(sheet) == "" {
		sheet = defaultStatsSheet
	}
	return &PlayerStatsSource{path: path, sheet: sheet, logger: loggerOrDefault(logger)}
}

func (s *PlayerStatsSource) ListSeasonStats(ctx context.Context) ([]playerstats.SeasonStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		s.logger.WarnContext(ctx, "player stats file not found", "path", s.path)
		return nil, nil
	}

	book, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, crerr.Wrapf(err, "open player stats %s", s.path)
	}
	defer func() {
		_ = book.Close()
	}()

	rows, err := book.GetRows(s.sheet)
	if err != nil {
		return nil, crerr.Wrapf(err, "read sheet %s of %s", s.sheet, s.path)
	}

	stats, err := ParsePlayerStatsRows(rows, s.logger)
	if err != nil {
		return nil, crerr.Wrapf(err, "player stats %s", s.path)
	}
	s.logger.InfoContext(ctx, "player stats loaded", "path", s.path, "sheet", s.sheet, "count", len(stats))
	return stats, nil
}

// ParsePlayerStatsRows maps a header row plus data rows to season stats.
// A missing required column is fatal; non-numeric goal or assist cells count as zero.
func ParsePlayerStatsRows(rows [][]string, logger *logging.Logger) ([]playerstats.SeasonStats, error) {
	logger = loggerOrDefault(logger)
	if len(rows) == 0 {
		return nil, playerstats.ErrEmptySource
	}

	index := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		name = strings.TrimSpace(name)
		if _, dup := index[name]; !dup && name != "" {
			index[name] = i
		}
	}

	teamColumn := columnTeamName
	if _, ok := index[teamColumn]; !ok {
		teamColumn = columnTeam
	}
	available := strings.Join(rows[0], ", ")
	for _, col := range []string{columnPlayerName, teamColumn, columnPosition, columnGoals, columnAssists} {
		if _, ok := index[col]; !ok {
			if col == columnTeam {
				col = columnTeamName + "|" + columnTeam
			}
			return nil, crerr.Wrapf(playerstats.ErrMissingColumn, "%q (available: %s)", col, available)
		}
	}

	cell := func(row []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	out := make([]playerstats.SeasonStats, 0, len(rows)-1)
	for n, row := range rows[1:] {
		name := cell(row, columnPlayerName)
		if name == "" {
			continue
		}

		pos, ok := player.ParsePosition(cell(row, columnPosition))
		if !ok {
			logger.Warn("unrecognised position, using forward", "row", n+2, "player", name, "position", cell(row, columnPosition))
		}

		out = append(out, playerstats.SeasonStats{
			PlayerID:   optional(cell(row, columnPlayerID)),
			ExternalID: optional(cell(row, columnExternalID)),
			Name:       name,
			Team:       cell(row, teamColumn),
			Position:   pos,
			Goals:      count(cell(row, columnGoals)),
			Assists:    count(cell(row, columnAssists)),
		})
	}
	return out, nil
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func count(v string) int {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f > math.MaxInt32 {
		return 0
	}
	return int(f)
}
