package services

import (
	"fmt"

	"github.com/carecompass/backend/internal/domain/entities"
)

// ClosedWaitDisplay is the sentinel shown instead of a numeric wait when a
// facility is closed
const ClosedWaitDisplay = "Closed"

// ProjectionService derives the current view of every catalog facility for
// a given hour. It is called fresh for every request — the hour can differ
// per call (real-time vs. simulated), so nothing here is memoized.
type ProjectionService struct {
	temporal *TemporalService
}

// NewProjectionService creates a new projection service
func NewProjectionService(temporal *TemporalService) *ProjectionService {
	return &ProjectionService{temporal: temporal}
}

// Project computes a FacilityView for each facility at the given hour.
// Output order follows input order.
func (s *ProjectionService) Project(facilities []entities.Facility, hour int) []entities.FacilityView {
	views := make([]entities.FacilityView, 0, len(facilities))
	for _, f := range facilities {
		views = append(views, s.projectOne(f, hour))
	}
	return views
}

func (s *ProjectionService) projectOne(f entities.Facility, hour int) entities.FacilityView {
	view := entities.FacilityView{Facility: f}

	if f.Category == entities.CategoryEmergencyRoom {
		view.IsOpen = true
	} else {
		view.IsOpen = f.EffectiveHours().Spans(hour)
	}

	if !view.IsOpen {
		// Wait is undefined while closed; the zero value must never be
		// read as "no queue"
		view.CapacityTier = entities.CapacityClosed
		view.WaitDisplay = ClosedWaitDisplay
		return view
	}

	view.CurrentWaitMinutes = s.temporal.CurrentWait(f.BaseWaitMinutes, f.Category, hour)
	view.CapacityTier = capacityTier(view.CurrentWaitMinutes)
	view.WaitDisplay = fmt.Sprintf("%d min", view.CurrentWaitMinutes)
	return view
}

// capacityTier buckets a current wait into a display-only availability tier
func capacityTier(waitMinutes int) entities.CapacityTier {
	switch {
	case waitMinutes < 20:
		return entities.CapacityHigh
	case waitMinutes < 40:
		return entities.CapacityMedium
	default:
		return entities.CapacityLow
	}
}
