package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/sm8ta/webike_fleet_dashboard/internal/core/domain"
)

type VehicleRepository struct {
	mu       sync.RWMutex
	vehicles []*domain.Vehicle
}

func NewVehicleRepository() *VehicleRepository {
	return &VehicleRepository{}
}

func clone(v *domain.Vehicle) *domain.Vehicle {
	c := *v
	return &c
}

func (r *VehicleRepository) ListVehicles(_ context.Context) ([]*domain.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Vehicle, len(r.vehicles))
	for i, v := range r.vehicles {
		out[i] = clone(v)
	}
	return out, nil
}

func (r *VehicleRepository) ReplaceVehicles(_ context.Context, vehicles []*domain.Vehicle) error {
	next := make([]*domain.Vehicle, len(vehicles))
	for i, v := range vehicles {
		next[i] = clone(v)
	}
	r.mu.Lock()
	r.vehicles = next
	r.mu.Unlock()
	return nil
}

func (r *VehicleRepository) UpdateVehicleStatus(_ context.Context, chassisNo, status string) (*domain.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.vehicles {
		if strings.EqualFold(v.ChassisNo, chassisNo) {
			v.Status = status
			return clone(v), nil
		}
	}
	return nil, fmt.Errorf("vehicle %s: %w", chassisNo, domain.ErrNotFound)
}
