package entities

// FacilityCategory identifies the kind of care facility
type FacilityCategory string

const (
	// CategoryEmergencyRoom is a hospital emergency room, open around the clock
	CategoryEmergencyRoom FacilityCategory = "emergency_room"

	// CategoryUrgentCare is an urgent-care clinic with limited operating hours
	CategoryUrgentCare FacilityCategory = "urgent_care"
)

// Location represents geographical coordinates
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// HourRange is a half-open [Open, Close) window of hours in [0,24].
// Open==0 && Close==24 means always open.
type HourRange struct {
	Open  int `json:"open"`
	Close int `json:"close"`
}

// AllDay reports whether the range covers every hour
func (h HourRange) AllDay() bool {
	return h.Open == 0 && h.Close == 24
}

// Spans reports whether the range contains the given hour
func (h HourRange) Spans(hour int) bool {
	if h.AllDay() {
		return true
	}
	return hour >= h.Open && hour < h.Close
}

// Facility represents a care facility in the static catalog.
// Catalog entries are immutable after process start.
type Facility struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Category          FacilityCategory `json:"category"`
	Location          Location         `json:"location"`
	BaseWaitMinutes   int              `json:"base_wait_minutes"`
	AcceptedInsurance []string         `json:"accepted_insurance"`
	Specialties       []string         `json:"specialties,omitempty"`
	OperatingHours    *HourRange       `json:"operating_hours,omitempty"`
	TraumaCenter      bool             `json:"trauma_center"`
}

// EffectiveHours returns the facility's operating hours, falling back to
// the category default when none are set: emergency rooms never close,
// urgent-care clinics run 8-20.
func (f *Facility) EffectiveHours() HourRange {
	if f.OperatingHours != nil {
		return *f.OperatingHours
	}
	if f.Category == CategoryEmergencyRoom {
		return HourRange{Open: 0, Close: 24}
	}
	return HourRange{Open: 8, Close: 20}
}

// CapacityTier is a coarse availability bucket derived from the current wait
type CapacityTier string

const (
	CapacityHigh   CapacityTier = "high"
	CapacityMedium CapacityTier = "medium"
	CapacityLow    CapacityTier = "low"
	CapacityClosed CapacityTier = "closed"
)

// FacilityView is a facility's computed state for a specific hour. It is
// recomputed per request and never persisted. CurrentWaitMinutes carries no
// meaning when IsOpen is false; WaitDisplay shows "Closed" in that case.
type FacilityView struct {
	Facility
	CurrentWaitMinutes int          `json:"current_wait_minutes"`
	IsOpen             bool         `json:"is_open"`
	CapacityTier       CapacityTier `json:"capacity_tier"`
	WaitDisplay        string       `json:"wait_display"`
}
