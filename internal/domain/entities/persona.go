package entities

// Severity is the patient-reported urgency tier
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// Valid reports whether the severity is one of the three known tiers
func (s Severity) Valid() bool {
	switch s {
	case SeverityMild, SeverityModerate, SeveritySevere:
		return true
	}
	return false
}

// SeverePolicy selects how a persona's severe-severity branch behaves
type SeverePolicy string

const (
	// SevereDispatchAmbulance keeps the patient in place and dispatches an
	// ambulance to the target emergency room. Default for all personas.
	SevereDispatchAmbulance SeverePolicy = "dispatch_ambulance"

	// SevereCompanionTransport routes severe cases to self-transport with a
	// companion instead of an ambulance. Used only where waiting for
	// dispatch is considered riskier than immediate travel.
	SevereCompanionTransport SeverePolicy = "companion_transport"
)

// PersonaRules is the per-persona decision configuration. The engine
// dispatches on these fields, never on persona names, so adding a persona
// means adding one registry record.
type PersonaRules struct {
	// WaitWeight and TravelWeight parameterize the moderate-severity
	// scoring model. They sum to at most 1.
	WaitWeight   float64 `json:"wait_weight"`
	TravelWeight float64 `json:"travel_weight"`

	// Fixed score add-on by candidate category
	EmergencyRoomBonus float64 `json:"emergency_room_bonus"`
	UrgentCareBonus    float64 `json:"urgent_care_bonus"`

	// AllowUrgentCareAtModerate widens the moderate candidate set to
	// include open urgent-care clinics
	AllowUrgentCareAtModerate bool `json:"allow_urgent_care_at_moderate"`

	// EmergencyRoomOnly forces ER care at every severity tier
	EmergencyRoomOnly bool `json:"emergency_room_only"`

	SeverePolicy SeverePolicy `json:"severe_policy"`
}

// Persona is a named patient archetype. SeverityVocabulary maps the three
// abstract tiers to persona-specific display labels only; it never changes
// decision logic.
type Persona struct {
	ID                 string              `json:"id"`
	DisplayName        string              `json:"display_name"`
	RiskProfile        string              `json:"risk_profile"`
	SafetyNote         string              `json:"safety_note"`
	SeverityVocabulary map[Severity]string `json:"severity_vocabulary"`
	Rules              PersonaRules        `json:"rules"`
}
