package catalog_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carecompass/backend/internal/adapters/catalog"
	"github.com/carecompass/backend/internal/domain/entities"
	apperrors "github.com/carecompass/backend/pkg/errors"
)

func TestStaticCatalog_SeedIntegrity(t *testing.T) {
	ctx := context.Background()
	cat := catalog.NewStaticCatalog()

	facilities, err := cat.All(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, facilities)

	traumaCenters := 0
	for _, f := range facilities {
		assert.NotEmpty(t, f.ID)
		assert.NotEmpty(t, f.Name)
		assert.GreaterOrEqual(t, f.BaseWaitMinutes, 0)
		assert.NotEmpty(t, f.AcceptedInsurance)
		assert.NotZero(t, f.Location.Latitude)
		assert.NotZero(t, f.Location.Longitude)
		if f.TraumaCenter {
			traumaCenters++
			assert.Equal(t, entities.CategoryEmergencyRoom, f.Category)
		}
	}
	assert.Equal(t, 1, traumaCenters)

	assert.True(t, sort.SliceIsSorted(facilities, func(i, j int) bool {
		return facilities[i].ID < facilities[j].ID
	}))
}

func TestStaticCatalog_ListByCategory(t *testing.T) {
	ctx := context.Background()
	cat := catalog.NewStaticCatalog()

	ers, err := cat.ListByCategory(ctx, entities.CategoryEmergencyRoom)
	require.NoError(t, err)
	clinics, err := cat.ListByCategory(ctx, entities.CategoryUrgentCare)
	require.NoError(t, err)

	assert.Len(t, ers, 4)
	assert.Len(t, clinics, 3)

	for _, f := range ers {
		// ERs rely on the always-open category default
		assert.Nil(t, f.OperatingHours)
	}
}

func TestStaticCatalog_GetByID(t *testing.T) {
	ctx := context.Background()
	cat := catalog.NewStaticCatalog()

	f, err := cat.GetByID(ctx, "er-island-general")
	require.NoError(t, err)
	assert.True(t, f.TraumaCenter)

	_, err = cat.GetByID(ctx, "er-nowhere")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

func TestStaticPersonaRegistry_Seed(t *testing.T) {
	ctx := context.Background()
	reg := catalog.NewStaticPersonaRegistry()

	personas, err := reg.All(ctx)
	require.NoError(t, err)
	require.Len(t, personas, 4)

	companionPolicies := 0
	for _, p := range personas {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.DisplayName)
		assert.LessOrEqual(t, p.Rules.WaitWeight+p.Rules.TravelWeight, 1.0)
		assert.Len(t, p.SeverityVocabulary, 3)
		if p.Rules.SeverePolicy == entities.SevereCompanionTransport {
			companionPolicies++
		}
	}
	// Exactly one persona routes severe cases away from ambulance dispatch
	assert.Equal(t, 1, companionPolicies)
}

func TestStaticPersonaRegistry_GetByID(t *testing.T) {
	ctx := context.Background()
	reg := catalog.NewStaticPersonaRegistry()

	p, err := reg.GetByID(ctx, "cardiac")
	require.NoError(t, err)
	assert.True(t, p.Rules.EmergencyRoomOnly)

	_, err = reg.GetByID(ctx, "unknown")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}
