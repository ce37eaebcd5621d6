package catalog

import (
	"context"
	"fmt"
	"sort"

	"github.com/carecompass/backend/internal/domain/entities"
	"github.com/carecompass/backend/internal/domain/repositories"
	apperrors "github.com/carecompass/backend/pkg/errors"
)

// StaticCatalog is the in-memory facility catalog for the reference
// deployment. Entries are built once at construction and never mutated, so
// the catalog is safe for concurrent readers without locking.
type StaticCatalog struct {
	facilities []entities.Facility
	byID       map[string]int
}

// NewStaticCatalog creates the reference catalog: four emergency rooms
// (one regional trauma center) and three urgent-care clinics around the
// Lagos reference origin.
func NewStaticCatalog() repositories.FacilityCatalog {
	hours := func(open, close int) *entities.HourRange {
		return &entities.HourRange{Open: open, Close: close}
	}

	facilities := []entities.Facility{
		{
			ID:                "er-island-general",
			Name:              "Island General Emergency Department",
			Category:          entities.CategoryEmergencyRoom,
			Location:          entities.Location{Latitude: 6.5195, Longitude: 3.3842},
			BaseWaitMinutes:   45,
			AcceptedInsurance: []string{"All"},
			Specialties:       []string{"Trauma", "Cardiology", "Burn Unit"},
			TraumaCenter:      true,
		},
		{
			ID:                "er-lakeside",
			Name:              "Lakeside Medical Center ER",
			Category:          entities.CategoryEmergencyRoom,
			Location:          entities.Location{Latitude: 6.5330, Longitude: 3.3615},
			BaseWaitMinutes:   35,
			AcceptedInsurance: []string{"Axa", "Leadway", "Hygeia"},
			Specialties:       []string{"Pediatrics", "Obstetrics"},
		},
		{
			ID:                "er-st-marys",
			Name:              "St. Mary's Hospital Emergency Room",
			Category:          entities.CategoryEmergencyRoom,
			Location:          entities.Location{Latitude: 6.5102, Longitude: 3.3958},
			BaseWaitMinutes:   60,
			AcceptedInsurance: []string{"All"},
			Specialties:       []string{"Cardiology", "Neurology"},
		},
		{
			ID:                "er-crestview",
			Name:              "Crestview Teaching Hospital ER",
			Category:          entities.CategoryEmergencyRoom,
			Location:          entities.Location{Latitude: 6.5489, Longitude: 3.3710},
			BaseWaitMinutes:   50,
			AcceptedInsurance: []string{"Hygeia", "Avon"},
			Specialties:       []string{"Orthopedics", "General Surgery"},
		},
		{
			ID:                "uc-harbor-point",
			Name:              "Harbor Point Urgent Care",
			Category:          entities.CategoryUrgentCare,
			Location:          entities.Location{Latitude: 6.5261, Longitude: 3.3779},
			BaseWaitMinutes:   15,
			AcceptedInsurance: []string{"All"},
			Specialties:       []string{"Minor Burns", "Sprains", "Stitches"},
			OperatingHours:    hours(8, 20),
		},
		{
			ID:                "uc-palm-grove",
			Name:              "Palm Grove Walk-In Clinic",
			Category:          entities.CategoryUrgentCare,
			Location:          entities.Location{Latitude: 6.5150, Longitude: 3.3701},
			BaseWaitMinutes:   25,
			AcceptedInsurance: []string{"Axa", "Leadway"},
			Specialties:       []string{"Pediatrics", "Fevers", "Minor Injuries"},
			OperatingHours:    hours(9, 21),
		},
		{
			ID:                "uc-victoria-express",
			Name:              "Victoria Express Care",
			Category:          entities.CategoryUrgentCare,
			Location:          entities.Location{Latitude: 6.5398, Longitude: 3.3890},
			BaseWaitMinutes:   10,
			AcceptedInsurance: []string{"All"},
			Specialties:       []string{"X-Ray", "Lab Work", "Minor Injuries"},
			// No explicit hours: projector applies the 8-20 default
		},
	}

	sort.Slice(facilities, func(i, j int) bool {
		return facilities[i].ID < facilities[j].ID
	})

	byID := make(map[string]int, len(facilities))
	for i, f := range facilities {
		byID[f.ID] = i
	}

	return &StaticCatalog{facilities: facilities, byID: byID}
}

// All returns every catalog entry in stable ID order
func (c *StaticCatalog) All(ctx context.Context) ([]entities.Facility, error) {
	out := make([]entities.Facility, len(c.facilities))
	copy(out, c.facilities)
	return out, nil
}

// GetByID retrieves a facility by ID
func (c *StaticCatalog) GetByID(ctx context.Context, id string) (*entities.Facility, error) {
	i, ok := c.byID[id]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("facility %q not found", id))
	}
	f := c.facilities[i]
	return &f, nil
}

// ListByCategory returns facilities of a single category in stable ID order
func (c *StaticCatalog) ListByCategory(ctx context.Context, category entities.FacilityCategory) ([]entities.Facility, error) {
	var out []entities.Facility
	for _, f := range c.facilities {
		if f.Category == category {
			out = append(out, f)
		}
	}
	return out, nil
}
