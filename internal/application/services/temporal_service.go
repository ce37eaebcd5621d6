package services

import (
	"math"

	"github.com/carecompass/backend/internal/domain/entities"
)

// TemporalService models time-of-day effects: road traffic level and
// per-category wait-time multipliers. Every method is a pure function of
// the hour argument; the service holds no clock and no cached "now".
type TemporalService struct{}

// NewTemporalService creates a new temporal service
func NewTemporalService() *TemporalService {
	return &TemporalService{}
}

// TrafficLevelAt returns the road congestion tier for an hour of day.
// Morning and evening rush windows dominate; midday stays moderate.
func (s *TemporalService) TrafficLevelAt(hour int) entities.TrafficLevel {
	switch {
	case hour >= 7 && hour < 10:
		return entities.TrafficSevere
	case hour >= 16 && hour < 19:
		return entities.TrafficSevere
	case hour >= 6 && hour < 7:
		return entities.TrafficHeavy
	case hour >= 10 && hour < 12:
		return entities.TrafficHeavy
	case hour >= 14 && hour < 16:
		return entities.TrafficHeavy
	case hour >= 12 && hour < 14:
		return entities.TrafficModerate
	default:
		return entities.TrafficLow
	}
}

// WaitMultiplier returns the wait-time multiplier for a facility category
// at an hour of day. A zero multiplier for urgent care overnight is a
// display convenience only; openness is decided by operating hours, never
// inferred from the multiplier.
func (s *TemporalService) WaitMultiplier(category entities.FacilityCategory, hour int) float64 {
	if category == entities.CategoryUrgentCare {
		switch {
		case hour >= 9 && hour < 12:
			return 1.6
		case hour >= 12 && hour < 14:
			return 1.3
		case hour >= 14 && hour < 18:
			return 1.8
		case hour >= 18 && hour < 20:
			return 1.4
		case hour >= 20 || hour < 8:
			return 0
		default:
			return 1.0
		}
	}

	switch {
	case hour >= 18 && hour < 23:
		return 1.8
	case hour >= 14 && hour < 18:
		return 1.5
	case hour >= 10 && hour < 14:
		return 1.0
	case hour >= 6 && hour < 10:
		return 1.2
	default:
		return 0.7
	}
}

// CurrentWait applies the category multiplier to a facility's base wait
func (s *TemporalService) CurrentWait(baseWaitMinutes int, category entities.FacilityCategory, hour int) int {
	return int(math.Round(float64(baseWaitMinutes) * s.WaitMultiplier(category, hour)))
}
