package file

import (
	"context"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/fixture-points/internal/domain/fixture"
	"github.com/riskibarqy/fixture-points/internal/platform/logging"
)

// KickoffLayout is the date and 12-hour clock format of schedule exports.
const KickoffLayout = "2006-01-02 3:04 PM"

var ErrFixturesNotFound = crerr.New("fixtures file not found")

type fixtureRow struct {
	ID       string `json:"id"`
	Gameweek string `json:"gameweek"`
	HomeTeam string `json:"home_team" validate:"required"`
	AwayTeam string `json:"away_team" validate:"required"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	Time     string `json:"time" validate:"required"`
	Stadium  string `json:"stadium"`
	Group    string `json:"group"`
}

type fixtureDocument struct {
	Fixtures []fixtureRow `json:"fixtures"`
}

// FixtureSource reads the schedule from a JSON export. Team names are returned
// as published.
type FixtureSource struct {
	path     string
	validate *validator.Validate
	logger   *logging.Logger
}

func NewFixtureSource(path string, logger *logging.Logger) *FixtureSource {
	return &FixtureSource{path: path, validate: validator.New(), logger: loggerOrDefault(logger)}
}

func (s *FixtureSource) List(ctx context.Context) ([]fixture.Fixture, error) {
	raw, ok, err := readOptional(ctx, s.path)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, crerr.Wrapf(ErrFixturesNotFound, "path=%s", s.path)
	}

	var doc fixtureDocument
	if err := sonic.Unmarshal(raw, &doc); err != nil {
		return nil, crerr.Wrapf(err, "decode fixtures %s", s.path)
	}

	out := make([]fixture.Fixture, 0, len(doc.Fixtures))
	for i, row := range doc.Fixtures {
		f, err := s.toFixture(row)
		if err != nil {
			s.logger.WarnContext(ctx, "skip fixture row", "row", i, "home_team", row.HomeTeam, "away_team", row.AwayTeam, "error", err)
			continue
		}
		out = append(out, f)
	}

	s.logger.InfoContext(ctx, "fixtures loaded", "path", s.path, "count", len(out), "rows", len(doc.Fixtures))
	return out, nil
}

func (s *FixtureSource) toFixture(row fixtureRow) (fixture.Fixture, error) {
	row.HomeTeam = strings.TrimSpace(row.HomeTeam)
	row.AwayTeam = strings.TrimSpace(row.AwayTeam)
	if err := s.validate.Struct(row); err != nil {
		return fixture.Fixture{}, err
	}

	kickoff, err := ParseKickoff(row.Date, row.Time)
	if err != nil {
		return fixture.Fixture{}, err
	}
	return fixture.Fixture{
		ID:        strings.TrimSpace(row.ID),
		Gameweek:  strings.TrimSpace(row.Gameweek),
		HomeTeam:  row.HomeTeam,
		AwayTeam:  row.AwayTeam,
		KickoffAt: kickoff,
		Venue:     strings.TrimSpace(row.Stadium),
		Group:     strings.TrimSpace(row.Group),
	}, nil
}

// ParseKickoff combines a calendar date and a "3:04 PM" clock time. Times are
// taken as published, without a zone.
func ParseKickoff(date, clock string) (time.Time, error) {
	t, err := time.Parse(KickoffLayout, strings.TrimSpace(date)+" "+strings.ToUpper(strings.TrimSpace(clock)))
	if err != nil {
		return time.Time{}, crerr.Wrapf(err, "parse kickoff %q %q", date, clock)
	}
	return t, nil
}
