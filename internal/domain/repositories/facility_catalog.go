package repositories

import (
	"context"

	"github.com/carecompass/backend/internal/domain/entities"
)

// FacilityCatalog defines read access to the facility catalog. The catalog
// is immutable after process start; implementations must be safe for
// concurrent readers.
type FacilityCatalog interface {
	// All returns every catalog entry in stable ID order
	All(ctx context.Context) ([]entities.Facility, error)

	// GetByID retrieves a facility by ID
	GetByID(ctx context.Context, id string) (*entities.Facility, error)

	// ListByCategory returns facilities of a single category in stable ID order
	ListByCategory(ctx context.Context, category entities.FacilityCategory) ([]entities.Facility, error)
}
