package services_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carecompass/backend/internal/application/services"
	"github.com/carecompass/backend/internal/domain/entities"
	apperrors "github.com/carecompass/backend/pkg/errors"
)

func newEngine() *services.RecommendationService {
	return services.NewRecommendationService(services.NewTravelService())
}

func burnPersona() *entities.Persona {
	return &entities.Persona{
		ID:         "burn",
		SafetyNote: "Cool the burn under running water.",
		Rules: entities.PersonaRules{
			WaitWeight:                0.5,
			TravelWeight:              0.3,
			UrgentCareBonus:           10,
			AllowUrgentCareAtModerate: true,
			SeverePolicy:              entities.SevereDispatchAmbulance,
		},
	}
}

func cardiacPersona() *entities.Persona {
	return &entities.Persona{
		ID: "cardiac",
		Rules: entities.PersonaRules{
			WaitWeight:         0.4,
			TravelWeight:       0.4,
			EmergencyRoomBonus: 15,
			EmergencyRoomOnly:  true,
			SeverePolicy:       entities.SevereDispatchAmbulance,
		},
	}
}

func pregnancyPersona() *entities.Persona {
	return &entities.Persona{
		ID: "pregnancy",
		Rules: entities.PersonaRules{
			WaitWeight:         0.3,
			TravelWeight:       0.5,
			EmergencyRoomBonus: 10,
			SeverePolicy:       entities.SevereCompanionTransport,
		},
	}
}

// openER builds an open emergency-room view a short hop north of the test
// origin; the offset shifts it further out
func openER(id string, wait int, offsetMiles float64, trauma bool) entities.FacilityView {
	return entities.FacilityView{
		Facility: entities.Facility{
			ID:       id,
			Name:     "ER " + id,
			Category: entities.CategoryEmergencyRoom,
			Location: entities.Location{
				Latitude:  lagosIsland.Latitude + offsetMiles/69.0,
				Longitude: lagosIsland.Longitude,
			},
			TraumaCenter: trauma,
		},
		CurrentWaitMinutes: wait,
		IsOpen:             true,
		CapacityTier:       entities.CapacityMedium,
		WaitDisplay:        strconv.Itoa(wait) + " min",
	}
}

func openClinic(id string, wait int, offsetMiles float64) entities.FacilityView {
	v := openER(id, wait, offsetMiles, false)
	v.Category = entities.CategoryUrgentCare
	v.Name = "Clinic " + id
	return v
}

func closedClinic(id string) entities.FacilityView {
	return entities.FacilityView{
		Facility: entities.Facility{
			ID:       id,
			Name:     "Clinic " + id,
			Category: entities.CategoryUrgentCare,
			Location: lagosMarina,
		},
		IsOpen:       false,
		CapacityTier: entities.CapacityClosed,
		WaitDisplay:  services.ClosedWaitDisplay,
	}
}

func TestRecommend_SevereAlwaysStays(t *testing.T) {
	engine := newEngine()

	views := []entities.FacilityView{
		openER("er-a", 120, 1, false), // terrible wait, still wins nothing over staying
		openClinic("uc-a", 5, 0.5),
	}

	rec, err := engine.Recommend(burnPersona(), entities.SeveritySevere, views, lagosIsland, entities.TrafficLow)

	require.NoError(t, err)
	assert.Equal(t, entities.ActionStay, rec.Action)
	assert.Equal(t, "er-a", rec.Facility.ID)
}

func TestRecommend_SeverePrefersTraumaCenter(t *testing.T) {
	engine := newEngine()

	views := []entities.FacilityView{
		openER("er-fast", 5, 1, false),
		openER("er-trauma", 90, 4, true),
	}

	rec, err := engine.Recommend(burnPersona(), entities.SeveritySevere, views, lagosIsland, entities.TrafficLow)

	require.NoError(t, err)
	assert.Equal(t, entities.ActionStay, rec.Action)
	assert.Equal(t, "er-trauma", rec.Facility.ID)
	assert.Contains(t, strings.Join(rec.Reasoning, "\n"), "trauma center")
}

func TestRecommend_SevereNoTraumaCenterPicksLowestWait(t *testing.T) {
	engine := newEngine()

	views := []entities.FacilityView{
		openER("er-slow", 80, 1, false),
		openER("er-fast", 20, 5, false),
	}

	rec, err := engine.Recommend(cardiacPersona(), entities.SeveritySevere, views, lagosIsland, entities.TrafficLow)

	require.NoError(t, err)
	assert.Equal(t, "er-fast", rec.Facility.ID)
}

func TestRecommend_SevereCompanionTransportException(t *testing.T) {
	engine := newEngine()

	// score = (100-wait) + (50-2*travel)
	views := []entities.FacilityView{
		openER("er-near", 60, 0.5, false),
		openER("er-quiet", 10, 3, false),
	}

	rec, err := engine.Recommend(pregnancyPersona(), entities.SeveritySevere, views, lagosIsland, entities.TrafficLow)

	require.NoError(t, err)
	assert.Equal(t, entities.ActionHybrid, rec.Action)
	assert.Equal(t, "Move to ER with companion", rec.ActionLabel)
	// er-quiet: (100-10)+(50-2*6)=128 beats er-near: (100-60)+(50-2*1)=88
	assert.Equal(t, "er-quiet", rec.Facility.ID)
	assert.Contains(t, rec.Reasoning[0], "companion")
}

func TestRecommend_SevereNoOpenER(t *testing.T) {
	engine := newEngine()

	views := []entities.FacilityView{
		openClinic("uc-a", 5, 0.5),
		closedClinic("uc-b"),
	}

	_, err := engine.Recommend(cardiacPersona(), entities.SeveritySevere, views, lagosIsland, entities.TrafficLow)

	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNoAvailableFacility))
}

func TestRecommend_ModerateWeightedScore(t *testing.T) {
	engine := newEngine()

	// Burn persona allows urgent care at moderate and carries a +10 clinic
	// bonus; the clinic's shorter wait should carry it
	views := []entities.FacilityView{
		openER("er-a", 50, 1, false),
		openClinic("uc-a", 15, 2),
	}

	rec, err := engine.Recommend(burnPersona(), entities.SeverityModerate, views, lagosIsland, entities.TrafficLow)

	require.NoError(t, err)
	assert.Equal(t, entities.ActionMove, rec.Action)
	assert.Equal(t, "Move to Urgent Care", rec.ActionLabel)
	assert.Equal(t, "uc-a", rec.Facility.ID)
}

func TestRecommend_ModerateEROnlyIgnoresClinics(t *testing.T) {
	engine := newEngine()

	views := []entities.FacilityView{
		openER("er-a", 50, 1, false),
		openClinic("uc-a", 1, 0.5),
	}

	rec, err := engine.Recommend(cardiacPersona(), entities.SeverityModerate, views, lagosIsland, entities.TrafficLow)

	require.NoError(t, err)
	assert.Equal(t, "er-a", rec.Facility.ID)
	assert.Equal(t, "Move to Emergency Room", rec.ActionLabel)
}

func TestRecommend_ModerateTieBreaksDeterministic(t *testing.T) {
	engine := newEngine()

	// Identical wait and location: identical score and travel, so the
	// catalog ID decides
	views := []entities.FacilityView{
		openER("er-b", 30, 1, false),
		openER("er-a", 30, 1, false),
	}

	rec, err := engine.Recommend(cardiacPersona(), entities.SeverityModerate, views, lagosIsland, entities.TrafficLow)

	require.NoError(t, err)
	assert.Equal(t, "er-a", rec.Facility.ID)
}

func TestRecommend_MildPicksMinimumTotalTime(t *testing.T) {
	engine := newEngine()

	views := []entities.FacilityView{
		openClinic("uc-near-busy", 40, 0.5), // ~1 min travel, 41 total
		openClinic("uc-far-quiet", 10, 5),   // ~10 min travel, 20 total
		openER("er-a", 10, 1, false),
	}

	rec, err := engine.Recommend(burnPersona(), entities.SeverityMild, views, lagosIsland, entities.TrafficLow)

	require.NoError(t, err)
	assert.Equal(t, entities.ActionMove, rec.Action)
	assert.Equal(t, "Move to Urgent Care", rec.ActionLabel)
	assert.Equal(t, "uc-far-quiet", rec.Facility.ID)

	joined := strings.Join(rec.Reasoning, "\n")
	assert.Contains(t, joined, "10 minutes")
	assert.Contains(t, joined, "cost")
}

func TestRecommend_MildFallsBackWhenClinicsClosed(t *testing.T) {
	engine := newEngine()

	views := []entities.FacilityView{
		closedClinic("uc-a"),
		closedClinic("uc-b"),
		openER("er-a", 30, 1, false),
	}

	rec, err := engine.Recommend(burnPersona(), entities.SeverityMild, views, lagosIsland, entities.TrafficLow)

	require.NoError(t, err)
	assert.Equal(t, "Move to ER (Urgent Care closed)", rec.ActionLabel)
	assert.Equal(t, "er-a", rec.Facility.ID)
}

func TestRecommend_MildEROnlyPersonaSkipsClinics(t *testing.T) {
	engine := newEngine()

	views := []entities.FacilityView{
		openClinic("uc-a", 1, 0.5),
		openER("er-a", 30, 1, false),
	}

	rec, err := engine.Recommend(cardiacPersona(), entities.SeverityMild, views, lagosIsland, entities.TrafficLow)

	require.NoError(t, err)
	assert.Equal(t, "Move to Emergency Room", rec.ActionLabel)
	assert.Equal(t, "er-a", rec.Facility.ID)
}

func TestRecommend_MildNothingOpen(t *testing.T) {
	engine := newEngine()

	views := []entities.FacilityView{closedClinic("uc-a")}

	_, err := engine.Recommend(burnPersona(), entities.SeverityMild, views, lagosIsland, entities.TrafficLow)

	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNoAvailableFacility))
}

func TestRecommend_InvalidInputs(t *testing.T) {
	engine := newEngine()
	views := []entities.FacilityView{openER("er-a", 30, 1, false)}

	_, err := engine.Recommend(nil, entities.SeverityMild, views, lagosIsland, entities.TrafficLow)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))

	_, err = engine.Recommend(burnPersona(), entities.Severity("critical"), views, lagosIsland, entities.TrafficLow)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
}

func TestRecommend_ClosedFacilityNeverChosen(t *testing.T) {
	engine := newEngine()

	// The closed clinic has a zero wait that must not read as available
	views := []entities.FacilityView{
		closedClinic("uc-zero-wait"),
		openClinic("uc-open", 35, 2),
	}

	rec, err := engine.Recommend(burnPersona(), entities.SeverityMild, views, lagosIsland, entities.TrafficLow)

	require.NoError(t, err)
	assert.Equal(t, "uc-open", rec.Facility.ID)
}

func TestRecommend_ReasoningReflectsChosenFacility(t *testing.T) {
	engine := newEngine()

	views := []entities.FacilityView{openClinic("uc-a", 26, 2)}

	rec, err := engine.Recommend(burnPersona(), entities.SeverityMild, views, lagosIsland, entities.TrafficLow)

	require.NoError(t, err)
	joined := strings.Join(rec.Reasoning, "\n")
	assert.Contains(t, joined, "26 minutes")
	assert.Contains(t, joined, rec.Facility.Name)
	assert.Contains(t, joined, "Cool the burn")
}
