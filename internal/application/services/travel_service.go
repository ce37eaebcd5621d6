package services

import (
	"math"

	"github.com/carecompass/backend/internal/domain/entities"
)

const earthRadiusMiles = 3959.0

// fallbackSpeedMph covers an unknown or unset traffic level
const fallbackSpeedMph = 25.0

var speedByTraffic = map[entities.TrafficLevel]float64{
	entities.TrafficLow:      30,
	entities.TrafficModerate: 20,
	entities.TrafficHeavy:    15,
	entities.TrafficSevere:   10,
}

// TravelService estimates straight-line distance and traffic-adjusted
// travel time between two coordinates. Estimates feed display logic that
// must never crash the recommendation flow, so malformed coordinates
// degrade to a zero sentinel instead of an error.
type TravelService struct{}

// NewTravelService creates a new travel service
func NewTravelService() *TravelService {
	return &TravelService{}
}

// Estimate computes the great-circle distance between origin and dest and
// an estimated driving time at the speed implied by the traffic level.
// Time is clamped to a minimum of one minute so a nearby facility never
// reports zero travel.
func (s *TravelService) Estimate(origin, dest entities.Location, traffic entities.TrafficLevel) entities.TravelEstimate {
	if !validLocation(origin) || !validLocation(dest) {
		return entities.TravelEstimate{}
	}

	distance := haversineMiles(origin, dest)

	speed, ok := speedByTraffic[traffic]
	if !ok {
		speed = fallbackSpeedMph
	}

	minutes := int(math.Round(distance / speed * 60))
	if minutes < 1 {
		minutes = 1
	}

	return entities.TravelEstimate{
		DistanceMiles: distance,
		Minutes:       minutes,
	}
}

func haversineMiles(a, b entities.Location) float64 {
	dLat := degreesToRadians(b.Latitude - a.Latitude)
	dLon := degreesToRadians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(degreesToRadians(a.Latitude))*math.Cos(degreesToRadians(b.Latitude))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusMiles * c
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// validLocation rejects NaN, out-of-range, and unset (zero-value)
// coordinates. The null-island zero value is how a missing origin arrives
// from upstream.
func validLocation(l entities.Location) bool {
	if math.IsNaN(l.Latitude) || math.IsNaN(l.Longitude) {
		return false
	}
	if l.Latitude == 0 && l.Longitude == 0 {
		return false
	}
	return l.Latitude >= -90 && l.Latitude <= 90 &&
		l.Longitude >= -180 && l.Longitude <= 180
}
