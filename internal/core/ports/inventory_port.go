package ports

import (
	"context"

	"github.com/sm8ta/webike_fleet_dashboard/internal/core/domain"
)

type VehicleRepository interface {
	ListVehicles(ctx context.Context) ([]*domain.Vehicle, error)
	ReplaceVehicles(ctx context.Context, vehicles []*domain.Vehicle) error
	UpdateVehicleStatus(ctx context.Context, chassisNo, status string) (*domain.Vehicle, error)
}
