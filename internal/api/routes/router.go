package routes

import (
	"net/http"

	"github.com/carecompass/backend/internal/api/handlers"
	"github.com/carecompass/backend/internal/api/middleware"
	"github.com/carecompass/backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	recommendationHandler *handlers.RecommendationHandler
	facilityHandler       *handlers.FacilityHandler
	personaHandler        *handlers.PersonaHandler

	allowedOrigins []string
	metrics        *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	recommendationHandler *handlers.RecommendationHandler,
	facilityHandler *handlers.FacilityHandler,
	personaHandler *handlers.PersonaHandler,
	allowedOrigins []string,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux: http.NewServeMux(),

		recommendationHandler: recommendationHandler,
		facilityHandler:       facilityHandler,
		personaHandler:        personaHandler,

		allowedOrigins: allowedOrigins,
		metrics:        metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	r.mux.HandleFunc("GET /api/personas", r.personaHandler.ListPersonas)
	r.mux.HandleFunc("GET /api/facilities", r.facilityHandler.ListFacilities)
	r.mux.HandleFunc("POST /api/recommendations", r.recommendationHandler.Recommend)

	var handler http.Handler = r.mux
	handler = middleware.Observability(r.metrics)(handler)
	handler = middleware.Logging(handler)
	handler = middleware.CORS(r.allowedOrigins)(handler)
	return handler
}
