package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/fixture-points/internal/config"
	"github.com/riskibarqy/fixture-points/internal/platform/logging"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()

	dir := t.TempDir()
	return config.Config{
		AppEnv:             config.EnvDev,
		ServiceName:        "fixture-points-api",
		ServiceVersion:     "test",
		HTTPAddr:           ":0",
		ReadTimeout:        time.Second,
		WriteTimeout:       time.Second,
		CORSAllowedOrigins: []string{"*"},
		CacheEnabled:       true,
		CacheTTL:           time.Minute,
		DataDir:            dir,
		OutrightHTMLPath:   dir + "/outright_odds.html",
		CorrectScorePath:   dir + "/correct_score_odds.json",
		PlayerStatsPath:    dir + "/player_stats.xlsx",
		PlayerStatsSheet:   "Sheet1",
		PlayerStatsSource:  config.StatsSourceFile,
		PlayerStatsSeason:  "cwc-2025",
		LoadTimeout:        5 * time.Second,
		AverageTotalGoals:  2.7,
		MaxGoals:           6,
	}
}

func TestNewHTTPServer_EmptyDataDir(t *testing.T) {
	t.Parallel()

	srv, cleanup, err := NewHTTPServer(context.Background(), testConfig(t), logging.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() {
		if err := cleanup(); err != nil {
			t.Fatalf("cleanup: %v", err)
		}
	}()

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/fixture-ratings?gameweek=GW1", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d body=%s", rec.Code, rec.Body.String())
	}

	var body struct {
		Data []map[string]any `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if len(body.Data) != 16 {
		t.Fatalf("unexpected fixture count: got=%d want=16", len(body.Data))
	}
	for _, item := range body.Data {
		if item["calculation_method"] != "outright-only" {
			t.Fatalf("unexpected method without odds: %v", item["calculation_method"])
		}
	}

	rec = httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/player-points", nil))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("unexpected status without player stats: got=%d want=%d", rec.Code, http.StatusUnprocessableEntity)
	}
}

func TestNewHTTPServer_RemoteCorrectScores(t *testing.T) {
	t.Parallel()

	odds := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"matches":[{"match":"Chelsea vs LAFC","date":"2025-06-16","correct_score_odds":{
			"1-0":6.0,"2-0":7.0,"2-1":8.0,"0-0":9.0,"1-1":7.5,"0-1":15.0,"1-2":19.0,"3-0":10.0}}]}`))
	}))
	t.Cleanup(odds.Close)

	cfg := testConfig(t)
	cfg.CorrectScoreURL = odds.URL + "/correct_score_odds.json"
	cfg.RemoteTimeout = time.Second
	cfg.StatsCircuitEnabled = true

	srv, cleanup, err := NewHTTPServer(context.Background(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() { _ = cleanup() }()

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/fixture-ratings?team=Chelsea&gameweek=GW1", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d body=%s", rec.Code, rec.Body.String())
	}

	var body struct {
		Data []map[string]any `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if len(body.Data) != 1 {
		t.Fatalf("unexpected fixture count: got=%d want=1", len(body.Data))
	}
	if got := body.Data[0]["calculation_method"]; got != "combined" {
		t.Fatalf("unexpected calculation method: got=%v want=combined", got)
	}
	if got := body.Data[0]["points_calculation_method"]; got != "CS_Odds" {
		t.Fatalf("unexpected points method: got=%v want=CS_Odds", got)
	}
}

func TestNewHTTPServer_RequiresAddr(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.HTTPAddr = ""
	if _, _, err := NewHTTPServer(context.Background(), cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for empty addr")
	}
}
