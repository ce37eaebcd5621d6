package handlers

import (
	"net/http"
	"strconv"

	"github.com/carecompass/backend/internal/application/services"
)

// FacilityHandler serves the projected facility snapshot for map rendering
type FacilityHandler struct {
	triage *services.TriageService
}

// NewFacilityHandler creates a new facility handler
func NewFacilityHandler(triage *services.TriageService) *FacilityHandler {
	return &FacilityHandler{triage: triage}
}

// ListFacilities handles GET /api/facilities. An optional hour query
// parameter simulates a time of day; absent means wall clock.
func (h *FacilityHandler) ListFacilities(w http.ResponseWriter, r *http.Request) {
	hour, ok := parseHourParam(w, r)
	if !ok {
		return
	}

	snapshot, err := h.triage.CurrentSnapshot(r.Context(), hour)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, snapshot)
}

// parseHourParam reads the optional ?hour= query value. Reports false
// after writing the error response when the value is malformed.
func parseHourParam(w http.ResponseWriter, r *http.Request) (*int, bool) {
	raw := r.URL.Query().Get("hour")
	if raw == "" {
		return nil, true
	}
	hour, err := strconv.Atoi(raw)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "hour must be an integer")
		return nil, false
	}
	return &hour, true
}
