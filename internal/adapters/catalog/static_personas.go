package catalog

import (
	"context"
	"fmt"
	"sort"

	"github.com/carecompass/backend/internal/domain/entities"
	"github.com/carecompass/backend/internal/domain/repositories"
	apperrors "github.com/carecompass/backend/pkg/errors"
)

// StaticPersonaRegistry holds the fixed set of patient personas. Like the
// facility catalog it is built once and read-only afterwards.
type StaticPersonaRegistry struct {
	personas []entities.Persona
	byID     map[string]int
}

// NewStaticPersonaRegistry creates the four reference personas. Each
// persona's behavior lives entirely in its Rules record; the engine never
// branches on persona IDs.
func NewStaticPersonaRegistry() repositories.PersonaRegistry {
	personas := []entities.Persona{
		{
			ID:          "burn",
			DisplayName: "Burn Injury",
			RiskProfile: "Minor to moderate burns; urgent care handles most cases",
			SafetyNote:  "Cool the burn under running water and do not apply ice while you travel.",
			SeverityVocabulary: map[entities.Severity]string{
				entities.SeverityMild:     "Redness or small blister",
				entities.SeverityModerate: "Large blistering or charring",
				entities.SeveritySevere:   "Deep burn over a wide area",
			},
			Rules: entities.PersonaRules{
				WaitWeight:                0.5,
				TravelWeight:              0.3,
				UrgentCareBonus:           10,
				AllowUrgentCareAtModerate: true,
				SeverePolicy:              entities.SevereDispatchAmbulance,
			},
		},
		{
			ID:          "cardiac",
			DisplayName: "Chest Pain",
			RiskProfile: "Possible cardiac event; emergency-room care at every tier",
			SafetyNote:  "Chew an aspirin if available and avoid any physical exertion.",
			SeverityVocabulary: map[entities.Severity]string{
				entities.SeverityMild:     "Occasional tightness",
				entities.SeverityModerate: "Persistent pressure or pain",
				entities.SeveritySevere:   "Crushing pain, shortness of breath",
			},
			Rules: entities.PersonaRules{
				WaitWeight:         0.4,
				TravelWeight:       0.4,
				EmergencyRoomBonus: 15,
				EmergencyRoomOnly:  true,
				SeverePolicy:       entities.SevereDispatchAmbulance,
			},
		},
		{
			ID:          "pregnancy",
			DisplayName: "Pregnancy Complication",
			RiskProfile: "Time-critical; travel with a companion beats waiting for dispatch",
			SafetyNote:  "Bring your prenatal records and have someone drive you; do not drive yourself.",
			SeverityVocabulary: map[entities.Severity]string{
				entities.SeverityMild:     "Mild cramping",
				entities.SeverityModerate: "Bleeding or reduced movement",
				entities.SeveritySevere:   "Heavy bleeding or labor signs",
			},
			Rules: entities.PersonaRules{
				WaitWeight:         0.3,
				TravelWeight:       0.5,
				EmergencyRoomBonus: 10,
				SeverePolicy:       entities.SevereCompanionTransport,
			},
		},
		{
			ID:          "pediatric",
			DisplayName: "Child Fever",
			RiskProfile: "High fever in a child; clinics handle most non-severe cases",
			SafetyNote:  "Keep the child hydrated and dress them lightly on the way.",
			SeverityVocabulary: map[entities.Severity]string{
				entities.SeverityMild:     "Fever under 39°C, alert",
				entities.SeverityModerate: "Fever over 39°C or lethargy",
				entities.SeveritySevere:   "Seizure, unresponsive, or stiff neck",
			},
			Rules: entities.PersonaRules{
				WaitWeight:                0.4,
				TravelWeight:              0.3,
				UrgentCareBonus:           8,
				AllowUrgentCareAtModerate: true,
				SeverePolicy:              entities.SevereDispatchAmbulance,
			},
		},
	}

	sort.Slice(personas, func(i, j int) bool {
		return personas[i].ID < personas[j].ID
	})

	byID := make(map[string]int, len(personas))
	for i, p := range personas {
		byID[p.ID] = i
	}

	return &StaticPersonaRegistry{personas: personas, byID: byID}
}

// All returns every persona in stable ID order
func (r *StaticPersonaRegistry) All(ctx context.Context) ([]entities.Persona, error) {
	out := make([]entities.Persona, len(r.personas))
	copy(out, r.personas)
	return out, nil
}

// GetByID retrieves a persona by ID
func (r *StaticPersonaRegistry) GetByID(ctx context.Context, id string) (*entities.Persona, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("persona %q not found", id))
	}
	p := r.personas[i]
	return &p, nil
}
