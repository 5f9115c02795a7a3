package usecase

import (
	"errors"

	"github.com/riskibarqy/fixture-points/internal/domain/projection"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")

	ErrNoFixtures     = projection.ErrNoFixtures
	ErrNoPlayerPoints = projection.ErrNoPlayerPoints
)
