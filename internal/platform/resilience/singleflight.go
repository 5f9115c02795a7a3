package resilience

import "sync"

// Group collapses concurrent loads of the same key into one call. Callers that
// arrive while a load is running share its result.
type Group[V any] struct {
	mu       sync.Mutex
	inflight map[string]*flight[V]
}

type flight[V any] struct {
	done  chan struct{}
	value V
	err   error
}

// Do runs fn once per key at a time. shared reports whether the result came
// from another caller's load.
func (g *Group[V]) Do(key string, fn func() (V, error)) (value V, err error, shared bool) {
	g.mu.Lock()
	if g.inflight == nil {
		g.inflight = make(map[string]*flight[V])
	}
	if f, ok := g.inflight[key]; ok {
		g.mu.Unlock()
		<-f.done
		return f.value, f.err, true
	}

	f := &flight[V]{done: make(chan struct{})}
	g.inflight[key] = f
	g.mu.Unlock()

	defer func() {
		g.mu.Lock()
		if g.inflight[key] == f {
			delete(g.inflight, key)
		}
		g.mu.Unlock()
		close(f.done)
	}()

	f.value, f.err = fn()
	return f.value, f.err, false
}

// Forget drops an in-flight entry so the next Do starts a fresh load.
func (g *Group[V]) Forget(key string) {
	g.mu.Lock()
	delete(g.inflight, key)
	g.mu.Unlock()
}
