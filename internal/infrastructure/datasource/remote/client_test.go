package remote

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/fixture-points/internal/platform/logging"
	"github.com/riskibarqy/fixture-points/internal/platform/resilience"
)

func newTestClient(policy resilience.BreakerPolicy, maxBody int64) *Client {
	return NewClient(ClientConfig{Timeout: 2 * time.Second, MaxBodyBytes: maxBody, Breaker: policy}, logging.NewNop())
}

func TestClient_Fetch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != "fixture-points" {
			t.Errorf("unexpected user agent: %q", got)
		}
		switch r.URL.Path {
		case "/odds.json":
			_, _ = w.Write([]byte(`{"matches":[]}`))
		case "/big.json":
			_, _ = w.Write([]byte(strings.Repeat("x", 64)))
		case "/bad":
			http.Error(w, "bad request", http.StatusBadRequest)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	client := newTestClient(resilience.BreakerPolicy{Enabled: false}, 32)
	ctx := context.Background()

	body, ok, err := client.Fetch(ctx, srv.URL+"/odds.json")
	if err != nil || !ok || string(body) != `{"matches":[]}` {
		t.Fatalf("unexpected fetch: body=%q ok=%v err=%v", body, ok, err)
	}

	_, ok, err = client.Fetch(ctx, srv.URL+"/missing.json")
	if err != nil || ok {
		t.Fatalf("expected not found without error: ok=%v err=%v", ok, err)
	}

	if _, _, err = client.Fetch(ctx, srv.URL+"/big.json"); !errors.Is(err, ErrDocumentTooLarge) {
		t.Fatalf("unexpected error: got=%v want=%v", err, ErrDocumentTooLarge)
	}

	if _, _, err = client.Fetch(ctx, srv.URL+"/bad"); err == nil || !strings.Contains(err.Error(), "status=400") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestClient_FetchRejectsInvalidURL(t *testing.T) {
	t.Parallel()

	client := newTestClient(resilience.DefaultBreakerPolicy(), 0)
	for _, raw := range []string{"", "ftp://example.com/odds.json", "https://"} {
		if _, _, err := client.Fetch(context.Background(), raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestClient_BreakerTripsOnlyOnTransientFailures(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.URL.Path == "/bad" {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	client := newTestClient(resilience.BreakerPolicy{Enabled: true, FailureThreshold: 2, OpenTimeout: time.Minute, HalfOpenProbes: 1}, 0)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, _, err := client.Fetch(ctx, srv.URL+"/bad"); err == nil {
			t.Fatalf("expected status error")
		}
	}
	if got := client.breaker.State(); got != resilience.CircuitStateClosed {
		t.Fatalf("unexpected breaker state after client errors: got=%s want=%s", got, resilience.CircuitStateClosed)
	}

	for i := 0; i < 2; i++ {
		if _, _, err := client.Fetch(ctx, srv.URL+"/odds.json"); !errors.Is(err, errTransient) {
			t.Fatalf("unexpected error: got=%v want transient", err)
		}
	}

	before := calls.Load()
	if _, _, err := client.Fetch(ctx, srv.URL+"/odds.json"); !errors.Is(err, resilience.ErrCircuitOpen) {
		t.Fatalf("unexpected error: got=%v want=%v", err, resilience.ErrCircuitOpen)
	}
	if calls.Load() != before {
		t.Fatalf("open breaker should not reach the server")
	}
}
