package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/fixture-points/internal/domain/projection"
	"github.com/riskibarqy/fixture-points/internal/platform/logging"
	"github.com/riskibarqy/fixture-points/internal/usecase"
)

// PointsService is the projection use case consumed by the handlers.
type PointsService interface {
	PlayerPoints(ctx context.Context, query usecase.FixtureQuery) ([]projection.FixtureGroup, error)
	FixtureRatings(ctx context.Context, query usecase.FixtureQuery) ([]projection.FixtureRating, error)
	EvaluateCorrectScore(ctx context.Context, prices map[string]float64) (usecase.CorrectScoreEvaluation, error)
}

type Handler struct {
	pointsService PointsService
	serviceName   string
	logger        *logging.Logger
	validator     *validator.Validate
}

func NewHandler(pointsService PointsService, serviceName string, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		pointsService: pointsService,
		serviceName:   serviceName,
		logger:        logger,
		validator:     validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	_, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	_, span := startSpan(r.Context(), "httpapi.Handler.Index")
	defer span.End()

	writeSuccess(w, http.StatusOK, serviceIndexDTO{
		Service: h.serviceName,
		Endpoints: []endpointDTO{
			{Method: http.MethodGet, Path: "/healthz", Description: "liveness probe"},
			{Method: http.MethodGet, Path: "/v1/player-points", Description: "expected fantasy points per player per fixture; filters: gameweek, team"},
			{Method: http.MethodGet, Path: "/v1/fixture-ratings", Description: "fixture difficulty breakdown; filters: gameweek, team"},
			{Method: http.MethodPost, Path: "/v1/correct-score/evaluate", Description: "rate a single correct-score market"},
		},
	})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}
