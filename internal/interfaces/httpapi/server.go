package httpapi

import (
	"net/http"

	"github.com/riskibarqy/fixture-points/internal/platform/logging"
)

func NewRouter(handler *Handler, logger *logging.Logger, corsAllowedOrigins []string) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler)
	registerProjectionRoutes(mux, handler)

	return RequestTracing(RequestLogging(logger, CORS(corsAllowedOrigins, recoverPanic(logger, mux))))
}

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /{$}", handler.Index)
}

func registerProjectionRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/player-points", handler.ListPlayerPoints)
	mux.HandleFunc("GET /v1/fixture-ratings", handler.ListFixtureRatings)
	mux.HandleFunc("POST /v1/correct-score/evaluate", handler.EvaluateCorrectScore)
}
