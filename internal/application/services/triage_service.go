package services

import (
	"context"
	"time"

	"github.com/carecompass/backend/internal/domain/entities"
	"github.com/carecompass/backend/internal/domain/repositories"
	apperrors "github.com/carecompass/backend/pkg/errors"
)

// HourSource supplies the wall-clock hour. Injectable so tests and
// simulated-time queries stay deterministic.
type HourSource func() int

// WallClockHour reads the local hour of day
func WallClockHour() int {
	return time.Now().Hour()
}

// TriageRequest is one recommendation query as received from the caller
type TriageRequest struct {
	PersonaID string
	Severity  entities.Severity
	// Hour simulates a time of day when set; nil means wall clock
	Hour *int
	// Origin overrides the configured reference point when set
	Origin *entities.Location
}

// TriageResult bundles the recommendation with the full facility snapshot
// and ambient traffic level the UI renders on the map. The snapshot is the
// projector's output, not part of the recommendation contract itself.
type TriageResult struct {
	Recommendation *entities.Recommendation `json:"recommendation"`
	Facilities     []entities.FacilityView  `json:"facilities"`
	TrafficLevel   entities.TrafficLevel    `json:"traffic_level"`
	Hour           int                      `json:"hour"`
	Persona        *entities.Persona        `json:"persona"`
}

// Snapshot is the projector's standalone output for map rendering
type Snapshot struct {
	Facilities   []entities.FacilityView `json:"facilities"`
	TrafficLevel entities.TrafficLevel   `json:"traffic_level"`
	Hour         int                     `json:"hour"`
}

// TriageService orchestrates one recommendation request end to end. The
// hour is resolved exactly once per call and threaded explicitly through
// every component, so the traffic level and wait times within a single
// response always describe the same instant.
type TriageService struct {
	catalog       repositories.FacilityCatalog
	personas      repositories.PersonaRegistry
	temporal      *TemporalService
	projector     *ProjectionService
	travel        *TravelService
	engine        *RecommendationService
	defaultOrigin entities.Location
	hourSource    HourSource
}

// NewTriageService creates a new triage service
func NewTriageService(
	catalog repositories.FacilityCatalog,
	personas repositories.PersonaRegistry,
	temporal *TemporalService,
	projector *ProjectionService,
	travel *TravelService,
	engine *RecommendationService,
	defaultOrigin entities.Location,
	hourSource HourSource,
) *TriageService {
	if hourSource == nil {
		hourSource = WallClockHour
	}
	return &TriageService{
		catalog:       catalog,
		personas:      personas,
		temporal:      temporal,
		projector:     projector,
		travel:        travel,
		engine:        engine,
		defaultOrigin: defaultOrigin,
		hourSource:    hourSource,
	}
}

// Recommend runs the full pipeline: resolve hour, project the catalog,
// score candidates, emit the recommendation with reasoning.
func (s *TriageService) Recommend(ctx context.Context, req TriageRequest) (*TriageResult, error) {
	hour, err := s.resolveHour(req.Hour)
	if err != nil {
		return nil, err
	}

	persona, err := s.personas.GetByID(ctx, req.PersonaID)
	if err != nil {
		// Unknown persona is invalid input to the engine, not a missing
		// resource
		if apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
			return nil, apperrors.NewValidationError("unrecognized persona " + req.PersonaID)
		}
		return nil, err
	}

	origin := s.defaultOrigin
	if req.Origin != nil {
		origin = *req.Origin
	}

	facilities, err := s.catalog.All(ctx)
	if err != nil {
		return nil, err
	}

	traffic := s.temporal.TrafficLevelAt(hour)
	views := s.projector.Project(facilities, hour)

	rec, err := s.engine.Recommend(persona, req.Severity, views, origin, traffic)
	if err != nil {
		return nil, err
	}

	return &TriageResult{
		Recommendation: rec,
		Facilities:     views,
		TrafficLevel:   traffic,
		Hour:           hour,
		Persona:        persona,
	}, nil
}

// CurrentSnapshot returns the projected facility list and traffic level
// for map rendering, without a recommendation.
func (s *TriageService) CurrentSnapshot(ctx context.Context, simulatedHour *int) (*Snapshot, error) {
	hour, err := s.resolveHour(simulatedHour)
	if err != nil {
		return nil, err
	}

	facilities, err := s.catalog.All(ctx)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Facilities:   s.projector.Project(facilities, hour),
		TrafficLevel: s.temporal.TrafficLevelAt(hour),
		Hour:         hour,
	}, nil
}

// resolveHour reads the clock at most once per request
func (s *TriageService) resolveHour(simulated *int) (int, error) {
	if simulated == nil {
		return s.hourSource(), nil
	}
	if *simulated < 0 || *simulated > 23 {
		return 0, apperrors.NewValidationError("hour must be between 0 and 23")
	}
	return *simulated, nil
}
