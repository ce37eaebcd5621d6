package handlers

import (
	"net/http"

	"github.com/carecompass/backend/internal/domain/repositories"
)

// PersonaHandler lists the available patient personas
type PersonaHandler struct {
	personas repositories.PersonaRegistry
}

// NewPersonaHandler creates a new persona handler
func NewPersonaHandler(personas repositories.PersonaRegistry) *PersonaHandler {
	return &PersonaHandler{personas: personas}
}

// ListPersonas handles GET /api/personas
func (h *PersonaHandler) ListPersonas(w http.ResponseWriter, r *http.Request) {
	personas, err := h.personas.All(r.Context())
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"personas": personas,
		"count":    len(personas),
	})
}
