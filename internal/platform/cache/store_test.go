package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore[string](time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (string, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "report", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for range workers {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "points:all", loader)
			if err != nil {
				errCh <- err
				return
			}
			if v != "report" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	store := NewStore[int](time.Minute)
	boom := errors.New("source unavailable")

	if _, err := store.GetOrLoad(context.Background(), "k", func(context.Context) (int, error) { return 0, boom }); !errors.Is(err, boom) {
		t.Fatalf("unexpected error: got=%v want=%v", err, boom)
	}
	got, err := store.GetOrLoad(context.Background(), "k", func(context.Context) (int, error) { return 42, nil })
	if err != nil || got != 42 {
		t.Fatalf("unexpected reload: got=%d err=%v", got, err)
	}
}

func TestStore_Expiry(t *testing.T) {
	t.Parallel()

	store := NewStore[string](time.Minute)
	now := time.Date(2025, 6, 14, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	ctx := context.Background()
	store.Set(ctx, "ratings", "v1")
	if v, ok := store.Get(ctx, "ratings"); !ok || v != "v1" {
		t.Fatalf("unexpected cached value: got=%q ok=%v", v, ok)
	}

	now = now.Add(2 * time.Minute)
	if _, ok := store.Get(ctx, "ratings"); ok {
		t.Fatalf("expected entry to expire")
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	store := NewStore[int](0)
	ctx := context.Background()
	store.Set(ctx, "points:GW1", 1)
	store.Set(ctx, "points:GW2", 2)
	store.Set(ctx, "ratings", 3)

	store.DeletePrefix(ctx, "points:")
	if _, ok := store.Get(ctx, "points:GW1"); ok {
		t.Fatalf("expected points:GW1 to be removed")
	}
	if v, ok := store.Get(ctx, "ratings"); !ok || v != 3 {
		t.Fatalf("unexpected ratings entry: got=%d ok=%v", v, ok)
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")
