package fixture

import "context"

// Repository exposes the tournament schedule.
type Repository interface {
	List(ctx context.Context) ([]Fixture, error)
}
