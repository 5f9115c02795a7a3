package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/fixture-points/internal/domain/fixture"
)

type FixtureRepository struct {
	mu       sync.RWMutex
	fixtures []fixture.Fixture
}

func NewFixtureRepository(fixtures []fixture.Fixture) *FixtureRepository {
	return &FixtureRepository{fixtures: append([]fixture.Fixture(nil), fixtures...)}
}

func (r *FixtureRepository) List(_ context.Context) ([]fixture.Fixture, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fixture.Fixture, len(r.fixtures))
	copy(out, r.fixtures)
	return out, nil
}

// Replace swaps the schedule, e.g. after a reload from disk.
func (r *FixtureRepository) Replace(fixtures []fixture.Fixture) {
	r.mu.Lock()
	r.fixtures = append([]fixture.Fixture(nil), fixtures...)
	r.mu.Unlock()
}
