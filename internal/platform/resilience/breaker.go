package resilience

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

type CircuitState string

const (
	CircuitStateClosed   CircuitState = "closed"
	CircuitStateOpen     CircuitState = "open"
	CircuitStateHalfOpen CircuitState = "half_open"
)

// BreakerPolicy controls when a Breaker trips and how it recovers.
type BreakerPolicy struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenProbes   int
}

func DefaultBreakerPolicy() BreakerPolicy {
	return BreakerPolicy{
		Enabled:          true,
		FailureThreshold: 3,
		OpenTimeout:      30 * time.Second,
		HalfOpenProbes:   1,
	}
}

func (p BreakerPolicy) normalize() BreakerPolicy {
	defaults := DefaultBreakerPolicy()
	if p.FailureThreshold < 1 {
		p.FailureThreshold = defaults.FailureThreshold
	}
	if p.OpenTimeout <= 0 {
		p.OpenTimeout = defaults.OpenTimeout
	}
	if p.HalfOpenProbes < 1 {
		p.HalfOpenProbes = defaults.HalfOpenProbes
	}
	return p
}

// Breaker stops calling a failing data source until it has had time to recover.
type Breaker struct {
	mu     sync.Mutex
	policy BreakerPolicy
	now    func() time.Time

	state     CircuitState
	failures  int
	openedAt  time.Time
	probes    int
	successes int
}

func NewBreaker(policy BreakerPolicy) *Breaker {
	return &Breaker{
		policy: policy.normalize(),
		now:    time.Now,
		state:  CircuitStateClosed,
	}
}

// Execute runs fn when the breaker admits the call and records its outcome.
// Context cancellation is not counted as a dependency failure.
func (b *Breaker) Execute(ctx context.Context, fn func(context.Context) error) error {
	if !b.policy.Enabled {
		return fn(ctx)
	}
	if err := b.admit(); err != nil {
		return err
	}

	err := fn(ctx)
	switch {
	case err == nil:
		b.succeeded()
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		b.released()
	default:
		b.failed()
	}
	return err
}

func (b *Breaker) State() CircuitState {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == CircuitStateOpen && b.now().Sub(b.openedAt) >= b.policy.OpenTimeout {
		return CircuitStateHalfOpen
	}
	return b.state
}

func (b *Breaker) admit() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == CircuitStateOpen {
		if b.now().Sub(b.openedAt) < b.policy.OpenTimeout {
			return ErrCircuitOpen
		}
		b.transition(CircuitStateHalfOpen)
	}
	if b.state == CircuitStateHalfOpen {
		if b.probes >= b.policy.HalfOpenProbes {
			return ErrCircuitOpen
		}
		b.probes++
	}
	return nil
}

func (b *Breaker) succeeded() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state != CircuitStateHalfOpen {
		b.failures = 0
		return
	}
	b.probes = max(0, b.probes-1)
	b.successes++
	if b.successes >= b.policy.HalfOpenProbes && b.probes == 0 {
		b.transition(CircuitStateClosed)
	}
}

func (b *Breaker) failed() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case CircuitStateClosed:
		b.failures++
		if b.failures >= b.policy.FailureThreshold {
			b.transition(CircuitStateOpen)
		}
	default:
		b.transition(CircuitStateOpen)
	}
}

func (b *Breaker) released() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == CircuitStateHalfOpen {
		b.probes = max(0, b.probes-1)
	}
}

func (b *Breaker) transition(to CircuitState) {
	b.state = to
	b.failures = 0
	b.probes = 0
	b.successes = 0
	b.openedAt = time.Time{}
	if to == CircuitStateOpen {
		b.openedAt = b.now()
	}
}
