package memory

import (
	"context"
	"testing"
	"time"

	"github.com/sm8ta/webike_fleet_dashboard/internal/core/domain"
	"github.com/sm8ta/webike_fleet_dashboard/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentStore_CopiesValues(t *testing.T) {
	s := NewDocumentStore()
	ctx := context.Background()

	value := []byte(`["BLR"]`)
	require.NoError(t, s.Set(ctx, "cities", value))
	value[2] = 'X'

	got, err := s.Get(ctx, "cities")
	require.NoError(t, err)
	assert.Equal(t, `["BLR"]`, string(got))

	require.NoError(t, s.Delete(ctx, "cities", "missing"))
	_, err = s.Get(ctx, "cities")
	assert.ErrorIs(t, err, ports.ErrKeyNotFound)
}

func TestCache_Expires(t *testing.T) {
	c := NewCache()
	now := time.Date(2024, 11, 22, 9, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set("k", []byte("v"), time.Minute))
	got, err := c.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", string(got))

	now = now.Add(time.Minute)
	_, err = c.Get("k")
	assert.ErrorIs(t, err, ports.ErrCacheMiss)
}

func TestVehicleRepository_UpdateStatus(t *testing.T) {
	r := NewVehicleRepository()
	ctx := context.Background()
	require.NoError(t, r.ReplaceVehicles(ctx, domain.SampleVehicles()))

	v, err := r.UpdateVehicleStatus(ctx, "md9hapxf4gr710037", "In Service")
	require.NoError(t, err)
	assert.Equal(t, "In Service", v.Status)

	list, err := r.ListVehicles(ctx)
	require.NoError(t, err)
	assert.Equal(t, "In Service", list[0].Status)

	// returned copies do not alias the stored vehicles
	list[0].Status = "Changed"
	again, _ := r.ListVehicles(ctx)
	assert.Equal(t, "In Service", again[0].Status)

	_, err = r.UpdateVehicleStatus(ctx, "UNKNOWN", "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
