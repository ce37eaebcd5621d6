package entities

// TrafficLevel is an hour-derived congestion tier used to adjust
// travel-speed assumptions
type TrafficLevel string

const (
	TrafficLow      TrafficLevel = "low"
	TrafficModerate TrafficLevel = "moderate"
	TrafficHeavy    TrafficLevel = "heavy"
	TrafficSevere   TrafficLevel = "severe"
)

// Display returns the human-readable label for the level
func (t TrafficLevel) Display() string {
	switch t {
	case TrafficLow:
		return "Light"
	case TrafficModerate:
		return "Moderate"
	case TrafficHeavy:
		return "Heavy"
	case TrafficSevere:
		return "Severe"
	}
	return "Unknown"
}
