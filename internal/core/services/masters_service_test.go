package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sm8ta/webike_fleet_dashboard/internal/adapter/memory"
	"github.com/sm8ta/webike_fleet_dashboard/internal/core/domain"
)

func newMastersService(t *testing.T) (*MastersService, *MockEventPublisher) {
	t.Helper()
	events := &MockEventPublisher{}
	svc := NewMastersService(memory.NewDocumentStore(), events, nopLogger{}, nil)
	require.NoError(t, svc.Seed(context.Background()))
	return svc, events
}

func TestMastersService_SeedDefaults(t *testing.T) {
	ctx := context.Background()
	svc, _ := newMastersService(t)

	masters, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"BLR", "Del", "HYD", "MUM", "CHN"}, masters.Cities)
	assert.Len(t, masters.CityManagers["BLR"], 6)
	assert.Empty(t, masters.Parts)

	options, err := svc.CityOptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.CityOption{Code: "Del", Name: "Delhi"}, options[1])
}

func TestMastersService_SeedKeepsStoredDocuments(t *testing.T) {
	ctx := context.Background()
	store := memory.NewDocumentStore()
	require.NoError(t, saveDocument(ctx, store, keyCities, []string{"PUN"}))

	svc := NewMastersService(store, &MockEventPublisher{}, nopLogger{}, nil)
	require.NoError(t, svc.Seed(ctx))

	masters, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"PUN"}, masters.Cities)
	assert.Contains(t, masters.CityManagers, "BLR")
}

func TestMastersService_AddCity(t *testing.T) {
	ctx := context.Background()
	svc, events := newMastersService(t)
	events.On("Publish", mock.Anything, domain.EventCMDataUpdated, mock.Anything).Return(nil).Once()
	events.On("Publish", mock.Anything, domain.EventCitiesUpdated, mock.Anything).Return(nil).Once()

	cities, err := svc.AddCity(ctx, " PUN ")
	require.NoError(t, err)
	assert.Equal(t, "PUN", cities[len(cities)-1])

	managers, err := svc.Managers(ctx, "PUN")
	require.NoError(t, err)
	assert.Empty(t, managers)

	options, err := svc.CityOptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.CityOption{Code: "PUN", Name: "PUN"}, options[len(options)-1])

	_, err = svc.AddCity(ctx, "PUN")
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)

	_, err = svc.AddCity(ctx, "  ")
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "name")

	events.AssertExpectations(t)
}

func TestMastersService_AddCityManager(t *testing.T) {
	ctx := context.Background()
	svc, events := newMastersService(t)
	events.On("Publish", mock.Anything, domain.EventCMDataUpdated, mock.Anything).Return(nil)

	names, err := svc.AddCityManager(ctx, "MUM", "Mumbai CM 4")
	require.NoError(t, err)
	assert.Equal(t, "Mumbai CM 4", names[len(names)-1])

	_, err = svc.AddCityManager(ctx, "MUM", "Mumbai CM 4")
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)

	_, err = svc.Managers(ctx, "GOA")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	events.AssertNumberOfCalls(t, "Publish", 1)
}

func TestMastersService_AddPart(t *testing.T) {
	ctx := context.Background()
	svc, events := newMastersService(t)
	events.On("Publish", mock.Anything, domain.EventPartsUpdated, mock.Anything).Return(assert.AnError)

	parts, err := svc.AddPart(ctx, "Brake Pad", "BP-01")
	require.NoError(t, err, "publish failures are only logged")
	assert.Equal(t, []domain.CatalogPart{{Name: "Brake Pad", Number: "BP-01"}}, parts)

	_, err = svc.AddPart(ctx, "Brake Pad", "BP-02")
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	_, err = svc.AddPart(ctx, "Brake Shoe", "BP-01")
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)

	_, err = svc.AddPart(ctx, "Brake Shoe", "")
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "number")
}
