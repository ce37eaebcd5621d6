package repositories

import (
	"context"

	"github.com/carecompass/backend/internal/domain/entities"
)

// PersonaRegistry defines read access to the fixed set of patient personas
type PersonaRegistry interface {
	// All returns every persona in stable ID order
	All(ctx context.Context) ([]entities.Persona, error)

	// GetByID retrieves a persona by ID
	GetByID(ctx context.Context, id string) (*entities.Persona, error)
}
