package playerstats

import "context"

// Repository provides season totals for every player in the tournament.
type Repository interface {
	ListSeasonStats(ctx context.Context) ([]SeasonStats, error)
}
