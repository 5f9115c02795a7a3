package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/fixture-points/internal/usecase"
)

type fixtureQueryRequest struct {
	Gameweek string `validate:"omitempty,max=16,alphanum"`
	Team     string `validate:"omitempty,max=100"`
}

type evaluateCorrectScoreRequest struct {
	Odds map[string]float64 `json:"correct_score_odds" validate:"required,min=1,max=100,dive,keys,required,max=16,endkeys,required"`
}

func (h *Handler) parseFixtureQuery(r *http.Request) (usecase.FixtureQuery, error) {
	req := fixtureQueryRequest{
		Gameweek: strings.TrimSpace(r.URL.Query().Get("gameweek")),
		Team:     strings.TrimSpace(r.URL.Query().Get("team")),
	}
	if err := h.validateRequest(r.Context(), req); err != nil {
		return usecase.FixtureQuery{}, err
	}
	return usecase.FixtureQuery{Gameweek: req.Gameweek, Team: req.Team}, nil
}

func (h *Handler) ListPlayerPoints(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerPoints")
	defer span.End()

	query, err := h.parseFixtureQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}

	groups, err := h.pointsService.PlayerPoints(ctx, query)
	if err != nil {
		h.logger.WarnContext(ctx, "list player points failed", "gameweek", query.Gameweek, "team", query.Team, "error", err)
		writeError(w, err)
		return
	}

	items := make([]fixtureGroupDTO, 0, len(groups))
	for _, g := range groups {
		items = append(items, fixtureGroupToDTO(g))
	}
	writeSuccess(w, http.StatusOK, items)
}

func (h *Handler) ListFixtureRatings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixtureRatings")
	defer span.End()

	query, err := h.parseFixtureQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}

	ratings, err := h.pointsService.FixtureRatings(ctx, query)
	if err != nil {
		h.logger.WarnContext(ctx, "list fixture ratings failed", "gameweek", query.Gameweek, "team", query.Team, "error", err)
		writeError(w, err)
		return
	}

	items := make([]fixtureRatingDTO, 0, len(ratings))
	for _, rating := range ratings {
		items = append(items, fixtureRatingToDTO(rating))
	}
	writeSuccess(w, http.StatusOK, items)
}

func (h *Handler) EvaluateCorrectScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.EvaluateCorrectScore")
	defer span.End()

	var req evaluateCorrectScoreRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(w, err)
		return
	}

	result, err := h.pointsService.EvaluateCorrectScore(ctx, req.Odds)
	if err != nil {
		h.logger.WarnContext(ctx, "evaluate correct score failed", "entries", len(req.Odds), "error", err)
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, correctScoreEvaluationToDTO(result))
}
