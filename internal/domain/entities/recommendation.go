package entities

// ActionCategory is the high-level recommended response
type ActionCategory string

const (
	// ActionStay means stay in place and wait for an ambulance
	ActionStay ActionCategory = "stay"

	// ActionMove means self-transport to the chosen facility
	ActionMove ActionCategory = "move"

	// ActionHybrid means companion-assisted transport to the chosen facility
	ActionHybrid ActionCategory = "hybrid"
)

// TravelEstimate is a straight-line distance and traffic-adjusted travel
// time between the requester and a facility
type TravelEstimate struct {
	DistanceMiles float64 `json:"distance_miles"`
	Minutes       int     `json:"minutes"`
}

// Recommendation is the engine's output for a single request. Reasoning is
// an ordered list of short justifications carrying the concrete numbers the
// decision was made on; it is part of the contract, not cosmetic.
type Recommendation struct {
	Action      ActionCategory `json:"action"`
	ActionLabel string         `json:"action_label"`
	Facility    *FacilityView  `json:"facility"`
	Travel      TravelEstimate `json:"travel"`
	Reasoning   []string       `json:"reasoning"`
}
