package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/carecompass/backend/internal/application/services"
	"github.com/carecompass/backend/internal/domain/entities"
	"github.com/carecompass/backend/internal/infrastructure/observability"
	apperrors "github.com/carecompass/backend/pkg/errors"
)

// RecommendationHandler handles recommendation HTTP requests
type RecommendationHandler struct {
	triage  *services.TriageService
	metrics *observability.Metrics
}

// NewRecommendationHandler creates a new recommendation handler
func NewRecommendationHandler(triage *services.TriageService, metrics *observability.Metrics) *RecommendationHandler {
	return &RecommendationHandler{triage: triage, metrics: metrics}
}

type recommendationRequest struct {
	Persona  string             `json:"persona"`
	Severity string             `json:"severity"`
	Hour     *int               `json:"hour,omitempty"`
	Origin   *entities.Location `json:"origin,omitempty"`
}

// Recommend handles POST /api/recommendations
func (h *RecommendationHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req recommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Persona == "" {
		respondWithError(w, http.StatusBadRequest, "persona is required")
		return
	}

	result, err := h.triage.Recommend(r.Context(), services.TriageRequest{
		PersonaID: req.Persona,
		Severity:  entities.Severity(req.Severity),
		Hour:      req.Hour,
		Origin:    req.Origin,
	})
	if err != nil {
		if apperrors.IsType(err, apperrors.ErrorTypeNoAvailableFacility) {
			observability.RecordNoAvailability(r.Context(), h.metrics, req.Persona)
		}
		respondWithAppError(w, r, err)
		return
	}

	observability.RecordRecommendation(r.Context(), h.metrics,
		string(result.Recommendation.Action), req.Persona)

	observability.LoggerFromContext(r.Context()).Info().
		Str("persona", req.Persona).
		Str("severity", req.Severity).
		Int("hour", result.Hour).
		Str("action", string(result.Recommendation.Action)).
		Str("facility", result.Recommendation.Facility.ID).
		Msg("recommendation issued")

	respondWithJSON(w, http.StatusOK, result)
}
