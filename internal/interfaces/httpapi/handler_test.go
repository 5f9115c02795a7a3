package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/fixture-points/internal/domain/fdr"
	"github.com/riskibarqy/fixture-points/internal/domain/fixture"
	"github.com/riskibarqy/fixture-points/internal/domain/points"
	"github.com/riskibarqy/fixture-points/internal/domain/projection"
	"github.com/riskibarqy/fixture-points/internal/domain/scoreline"
	"github.com/riskibarqy/fixture-points/internal/domain/team"
	"github.com/riskibarqy/fixture-points/internal/platform/logging"
	"github.com/riskibarqy/fixture-points/internal/usecase"
)

type stubPointsService struct {
	lastQuery usecase.FixtureQuery
	groups    []projection.FixtureGroup
	ratings   []projection.FixtureRating
	err       error
}

func (s *stubPointsService) PlayerPoints(_ context.Context, query usecase.FixtureQuery) ([]projection.FixtureGroup, error) {
	s.lastQuery = query
	return s.groups, s.err
}

func (s *stubPointsService) FixtureRatings(_ context.Context, query usecase.FixtureQuery) ([]projection.FixtureRating, error) {
	s.lastQuery = query
	return s.ratings, s.err
}

func (s *stubPointsService) EvaluateCorrectScore(_ context.Context, prices map[string]float64) (usecase.CorrectScoreEvaluation, error) {
	market := scoreline.FromOdds(prices)
	return usecase.CorrectScoreEvaluation{Result: fdr.CorrectScore(market), Distribution: market.Distribution, Skipped: market.Skipped}, s.err
}

func newTestRouter(svc PointsService) http.Handler {
	return NewRouter(NewHandler(svc, "fixture-points-api", logging.NewNop()), logging.NewNop(), nil)
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) any {
	t.Helper()

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	return body["data"]
}

func TestHandler_ListPlayerPoints(t *testing.T) {
	t.Parallel()

	pid := "p-10"
	teamID := int64(18)
	svc := &stubPointsService{groups: []projection.FixtureGroup{
		{
			FixtureID:   "cwc25-09",
			Gameweek:    "GW1",
			MatchLabel:  "Chelsea FC vs LAFC (2025-06-16)",
			MatchAPIIDs: "18_vs_147671",
			Date:        "2025-06-16",
			Players: []points.PlayerMatchPoints{
				{PlayerID: &pid, Name: "Cole Palmer", Team: "Chelsea FC", TeamExternalID: &teamID, Opponent: "LAFC", Home: true, Expected: 6.4567, Bonus: 3, Total: 9.46},
			},
		},
	}}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/player-points?gameweek=GW1&team=Chelsea", nil)
	newTestRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d body=%s", rec.Code, rec.Body.String())
	}
	if svc.lastQuery.Gameweek != "GW1" || svc.lastQuery.Team != "Chelsea" {
		t.Fatalf("unexpected query forwarded: %+v", svc.lastQuery)
	}

	data, ok := decodeData(t, rec).([]any)
	if !ok || len(data) != 1 {
		t.Fatalf("unexpected data: %v", data)
	}
	group := data[0].(map[string]any)
	if group["match_api_ids"] != "18_vs_147671" {
		t.Fatalf("unexpected match api ids: %v", group["match_api_ids"])
	}
	player := group["players"].([]any)[0].(map[string]any)
	if player["expected_points"] != 6.46 || player["total_points"] != 9.46 || player["player_id"] != "p-10" {
		t.Fatalf("unexpected player payload: %v", player)
	}
	if player["player_api_id"] != nil {
		t.Fatalf("missing ids must encode as null: %v", player["player_api_id"])
	}
}

func TestHandler_ListPlayerPoints_InvalidQuery(t *testing.T) {
	t.Parallel()

	svc := &stubPointsService{}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/player-points?gameweek=GW-1!", nil)
	newTestRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandler_ListPlayerPoints_ServiceError(t *testing.T) {
	t.Parallel()

	svc := &stubPointsService{err: fmt.Errorf("%w: team=Nowhere", usecase.ErrNotFound)}
	rec := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/player-points?team=Nowhere", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusNotFound)
	}
}

func TestHandler_ListFixtureRatings(t *testing.T) {
	t.Parallel()

	homeID, awayID := int64(18), int64(147671)
	rest := 4
	svc := &stubPointsService{ratings: []projection.FixtureRating{
		{
			Fixture: fixture.Fixture{
				ID:        "cwc25-09",
				Gameweek:  "GW1",
				HomeTeam:  "Chelsea FC",
				AwayTeam:  "LAFC",
				KickoffAt: time.Date(2025, 6, 16, 15, 0, 0, 0, time.UTC),
				Venue:     "Mercedes-Benz Stadium, Atlanta, GA",
				Group:     "D",
			},
			HomeTeam: team.Team{Name: "Chelsea FC", ShortCode: "CHE", ExternalID: &homeID},
			AwayTeam: team.Team{Name: "LAFC", ShortCode: "LAF", ExternalID: &awayID},
			Outright: fdr.OutrightResult{
				Home: fdr.SideOutright{FDR: 28.04, Strength: 100, OpponentStrength: 10, FatigueImpact: 15},
				Away: fdr.SideOutright{FDR: 73.51, Strength: 10, OpponentStrength: 100, FatigueImpact: 0, RestDays: &rest},
			},
			Rating:       fdr.DefaultConfig().Blend(fdr.OutrightResult{Home: fdr.SideOutright{FDR: 28.04}, Away: fdr.SideOutright{FDR: 73.51}}, nil),
			PointsMethod: projection.PointsFromPoisson,
			HomeXG:       2.03,
			AwayXG:       0.67,
		},
	}}

	rec := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/fixture-ratings", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d body=%s", rec.Code, rec.Body.String())
	}

	data := decodeData(t, rec).([]any)
	item := data[0].(map[string]any)
	checks := map[string]any{
		"time":                      "3:00 PM",
		"home_fdr":                  28.0,
		"home_difficulty":           "Very Easy",
		"away_difficulty":           "Very Difficult",
		"competitiveness":           "Massive",
		"calculation_method":        "outright-only",
		"points_calculation_method": "Poisson (xG:2.0-0.7)",
		"match_api_ids":             "18_vs_147671",
	}
	for key, want := range checks {
		if item[key] != want {
			t.Fatalf("unexpected %s: got=%v want=%v", key, item[key], want)
		}
	}
	if _, ok := item["correct_score"]; ok {
		t.Fatalf("correct_score must be omitted without a market")
	}
	away := item["outright"].(map[string]any)["away"].(map[string]any)
	if away["rest_days"] != 4.0 {
		t.Fatalf("unexpected rest days: %v", away["rest_days"])
	}
}

func TestHandler_EvaluateCorrectScore(t *testing.T) {
	t.Parallel()

	svc := &stubPointsService{}
	body := `{"correct_score_odds":{"1-0":3.0,"0-0":4.0,"0-1":5.0,"Any Other":9.0}}`

	rec := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/correct-score/evaluate", strings.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d body=%s", rec.Code, rec.Body.String())
	}

	data := decodeData(t, rec).(map[string]any)
	if data["valid"] != true {
		t.Fatalf("expected a valid market: %v", data)
	}
	outcome := data["outcome"].(map[string]any)
	if outcome["home_win"] != 0.4255 || outcome["draw"] != 0.3191 {
		t.Fatalf("unexpected outcome: %v", outcome)
	}
	if len(data["distribution"].([]any)) != 3 {
		t.Fatalf("unexpected distribution: %v", data["distribution"])
	}
	if skipped := data["skipped"].([]any); len(skipped) != 1 || skipped[0] != "Any Other" {
		t.Fatalf("unexpected skipped labels: %v", skipped)
	}
}

func TestHandler_EvaluateCorrectScore_InvalidPayload(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"correct_score_odds":`},
		{name: "unknown field", body: `{"odds":{"1-0":3.0}}`},
		{name: "empty odds", body: `{"correct_score_odds":{}}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			newTestRouter(&stubPointsService{}).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/correct-score/evaluate", strings.NewReader(tc.body)))
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestHandler_SystemRoutes(t *testing.T) {
	t.Parallel()

	router := newTestRouter(&stubPointsService{})
	for _, path := range []string{"/healthz", "/"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("unexpected status for %s: got=%d", path, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/unknown", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unexpected status for unknown path: got=%d", rec.Code)
	}
}
