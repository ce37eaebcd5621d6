package services

import (
	"fmt"
	"sort"

	"github.com/carecompass/backend/internal/domain/entities"
	apperrors "github.com/carecompass/backend/pkg/errors"
)

// RecommendationService selects an action category and a target facility
// for a persona and severity over a projected facility snapshot. Each call
// is a pure decision over its inputs; there is no retry state and failures
// are terminal per call.
type RecommendationService struct {
	travel *TravelService
}

// NewRecommendationService creates a new recommendation service
func NewRecommendationService(travel *TravelService) *RecommendationService {
	return &RecommendationService{travel: travel}
}

// candidate pairs an open facility view with its travel estimate and the
// score assigned by the active branch. Higher scores win; ties fall back
// to lower wait, then lower travel, then catalog ID, which keeps
// recommendations reproducible.
type candidate struct {
	view   entities.FacilityView
	travel entities.TravelEstimate
	score  float64
}

// Recommend produces a recommendation for the given persona and severity.
// It fails with a validation error when persona or severity is
// unrecognized and with a no-available-facility error when every eligible
// facility is closed at the evaluated hour.
func (s *RecommendationService) Recommend(
	persona *entities.Persona,
	severity entities.Severity,
	views []entities.FacilityView,
	origin entities.Location,
	traffic entities.TrafficLevel,
) (*entities.Recommendation, error) {
	if persona == nil {
		return nil, apperrors.NewValidationError("persona is required")
	}
	if !severity.Valid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unrecognized severity %q", severity))
	}

	openERs, openClinics := s.partition(views, origin, traffic)

	switch severity {
	case entities.SeveritySevere:
		return s.recommendSevere(persona, openERs, traffic)
	case entities.SeverityModerate:
		return s.recommendModerate(persona, openERs, openClinics, traffic)
	default:
		return s.recommendMild(persona, openERs, openClinics, traffic)
	}
}

// partition splits the snapshot into open ERs and open urgent-care clinics
// with travel estimates attached. Closed facilities never become
// candidates regardless of their (undefined) wait.
func (s *RecommendationService) partition(
	views []entities.FacilityView,
	origin entities.Location,
	traffic entities.TrafficLevel,
) (ers, clinics []candidate) {
	for _, v := range views {
		if !v.IsOpen {
			continue
		}
		c := candidate{view: v, travel: s.travel.Estimate(origin, v.Location, traffic)}
		if v.Category == entities.CategoryEmergencyRoom {
			ers = append(ers, c)
		} else {
			clinics = append(clinics, c)
		}
	}
	return ers, clinics
}

func (s *RecommendationService) recommendSevere(
	persona *entities.Persona,
	openERs []candidate,
	traffic entities.TrafficLevel,
) (*entities.Recommendation, error) {
	if len(openERs) == 0 {
		return nil, apperrors.NewNoAvailableFacilityError("no emergency room is open")
	}

	if persona.Rules.SeverePolicy == entities.SevereCompanionTransport {
		// The sole case where severe severity does not force staying put
		for i := range openERs {
			c := &openERs[i]
			c.score = (100 - float64(c.view.CurrentWaitMinutes)) +
				(50 - 2*float64(c.travel.Minutes))
		}
		best := pickBest(openERs)

		reasoning := []string{
			"Severe symptoms: have a companion drive you now rather than waiting for dispatch",
			waitLine(best),
			travelLine(best, traffic),
		}
		reasoning = appendSafetyNote(reasoning, persona)

		return &entities.Recommendation{
			Action:      entities.ActionHybrid,
			ActionLabel: "Move to ER with companion",
			Facility:    &best.view,
			Travel:      best.travel,
			Reasoning:   reasoning,
		}, nil
	}

	// Default policy: stay put, dispatch an ambulance to the trauma center
	// when one is open, else the ER with the shortest current wait
	pool := openERs
	if trauma := traumaCenters(openERs); len(trauma) > 0 {
		pool = trauma
	}
	for i := range pool {
		pool[i].score = -float64(pool[i].view.CurrentWaitMinutes)
	}
	best := pickBest(pool)

	destination := fmt.Sprintf("Ambulance destination: %s", best.view.Name)
	if best.view.TraumaCenter {
		destination += " (regional trauma center)"
	}
	reasoning := []string{
		"Severe symptoms: stay where you are and call for an ambulance",
		destination,
		waitLine(best),
		fmt.Sprintf("%.1f miles away; traffic is %s", best.travel.DistanceMiles, traffic.Display()),
	}
	reasoning = appendSafetyNote(reasoning, persona)

	return &entities.Recommendation{
		Action:      entities.ActionStay,
		ActionLabel: "Stay and wait for ambulance",
		Facility:    &best.view,
		Travel:      best.travel,
		Reasoning:   reasoning,
	}, nil
}

func (s *RecommendationService) recommendModerate(
	persona *entities.Persona,
	openERs, openClinics []candidate,
	traffic entities.TrafficLevel,
) (*entities.Recommendation, error) {
	pool := append([]candidate(nil), openERs...)
	if persona.Rules.AllowUrgentCareAtModerate && !persona.Rules.EmergencyRoomOnly {
		pool = append(pool, openClinics...)
	}
	if len(pool) == 0 {
		return nil, apperrors.NewNoAvailableFacilityError("no eligible facility is open")
	}

	for i := range pool {
		c := &pool[i]
		bonus := persona.Rules.EmergencyRoomBonus
		if c.view.Category == entities.CategoryUrgentCare {
			bonus = persona.Rules.UrgentCareBonus
		}
		c.score = (100-float64(c.view.CurrentWaitMinutes))*persona.Rules.WaitWeight +
			(50-float64(c.travel.Minutes))*persona.Rules.TravelWeight +
			bonus
	}
	best := pickBest(pool)

	label := "Move to Emergency Room"
	reasoning := []string{
		fmt.Sprintf("Scored highest of %d open facilities on wait and travel time", len(pool)),
		waitLine(best),
		travelLine(best, traffic),
	}
	if best.view.Category == entities.CategoryUrgentCare {
		label = "Move to Urgent Care"
		reasoning = append(reasoning, costComparisonLine)
	}
	reasoning = appendSafetyNote(reasoning, persona)

	return &entities.Recommendation{
		Action:      entities.ActionMove,
		ActionLabel: label,
		Facility:    &best.view,
		Travel:      best.travel,
		Reasoning:   reasoning,
	}, nil
}

func (s *RecommendationService) recommendMild(
	persona *entities.Persona,
	openERs, openClinics []candidate,
	traffic entities.TrafficLevel,
) (*entities.Recommendation, error) {
	pool := openClinics
	label := "Move to Urgent Care"
	var contextLine string

	switch {
	case persona.Rules.EmergencyRoomOnly:
		pool = openERs
		label = "Move to Emergency Room"
		contextLine = "This condition should be seen in an emergency room even for mild symptoms"
	case len(openClinics) == 0:
		pool = openERs
		label = "Move to ER (Urgent Care closed)"
		contextLine = "All urgent care clinics are closed at this hour, so the nearest emergency room is recommended instead"
	default:
		contextLine = costComparisonLine
	}

	if len(pool) == 0 {
		return nil, apperrors.NewNoAvailableFacilityError("no eligible facility is open")
	}

	// Minimum door-to-care time: travel plus wait
	for i := range pool {
		c := &pool[i]
		c.score = -float64(c.travel.Minutes + c.view.CurrentWaitMinutes)
	}
	best := pickBest(pool)

	reasoning := []string{
		fmt.Sprintf("Shortest total time to care: %d minutes door to doctor",
			best.travel.Minutes+best.view.CurrentWaitMinutes),
		waitLine(best),
		travelLine(best, traffic),
		contextLine,
	}
	reasoning = appendSafetyNote(reasoning, persona)

	return &entities.Recommendation{
		Action:      entities.ActionMove,
		ActionLabel: label,
		Facility:    &best.view,
		Travel:      best.travel,
		Reasoning:   reasoning,
	}, nil
}

// pickBest returns the highest-scoring candidate with deterministic
// tie-breaking: lower wait, then lower travel, then catalog ID order
func pickBest(pool []candidate) candidate {
	sorted := append([]candidate(nil), pool...)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.score != b.score {
			return a.score > b.score
		}
		if a.view.CurrentWaitMinutes != b.view.CurrentWaitMinutes {
			return a.view.CurrentWaitMinutes < b.view.CurrentWaitMinutes
		}
		if a.travel.Minutes != b.travel.Minutes {
			return a.travel.Minutes < b.travel.Minutes
		}
		return a.view.ID < b.view.ID
	})
	return sorted[0]
}

func traumaCenters(pool []candidate) []candidate {
	var out []candidate
	for _, c := range pool {
		if c.view.TraumaCenter {
			out = append(out, c)
		}
	}
	return out
}

const costComparisonLine = "Urgent care typically costs a fraction of an emergency room visit for symptoms like these"

func waitLine(c candidate) string {
	return fmt.Sprintf("Current wait at %s is %d minutes", c.view.Name, c.view.CurrentWaitMinutes)
}

func travelLine(c candidate, traffic entities.TrafficLevel) string {
	return fmt.Sprintf("About %.1f miles away, roughly %d minutes in %s traffic",
		c.travel.DistanceMiles, c.travel.Minutes, traffic.Display())
}

func appendSafetyNote(reasoning []string, persona *entities.Persona) []string {
	if persona.SafetyNote != "" {
		reasoning = append(reasoning, persona.SafetyNote)
	}
	return reasoning
}
