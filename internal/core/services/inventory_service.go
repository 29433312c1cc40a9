package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/sm8ta/webike_fleet_dashboard/internal/core/domain"
	"github.com/sm8ta/webike_fleet_dashboard/internal/core/ports"
)

const inventoryViewTTL = 30 * time.Minute

type InventoryService struct {
	repo   ports.VehicleRepository
	logger ports.LoggerPort
	cache  ports.CachePort

	mu sync.Mutex // serializes imports against status updates
}

func NewInventoryService(
	repo ports.VehicleRepository,
	logger ports.LoggerPort,
	cache ports.CachePort,
) *InventoryService {
	return &InventoryService{
		repo:   repo,
		logger: logger,
		cache:  cache,
	}
}

// SeedSamples loads the sample bikes when the inventory is empty.
func (s *InventoryService) SeedSamples(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	vehicles, err := s.repo.ListVehicles(ctx)
	if err != nil {
		return fmt.Errorf("failed to list vehicles: %w", err)
	}
	if len(vehicles) > 0 {
		return nil
	}
	if err := s.repo.ReplaceVehicles(ctx, domain.SampleVehicles()); err != nil {
		s.logger.Error("Failed to seed sample vehicles", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}
	s.logger.Info("Inventory seeded with sample vehicles", map[string]interface{}{
		"count": len(domain.SampleVehicles()),
	})
	return nil
}

func (s *InventoryService) All(ctx context.Context) ([]*domain.Vehicle, error) {
	vehicles, err := s.repo.ListVehicles(ctx)
	if err != nil {
		s.logger.Error("Failed to list vehicles", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	return vehicles, nil
}

// Query runs a stateless filter, sort and page request.
func (s *InventoryService) Query(ctx context.Context, view domain.InventoryView) (domain.VehiclePage, error) {
	vehicles, err := s.All(ctx)
	if err != nil {
		return domain.VehiclePage{}, err
	}
	return ApplyView(vehicles, view)
}

func (s *InventoryService) FilterOptions(ctx context.Context) (domain.FilterOptions, error) {
	vehicles, err := s.All(ctx)
	if err != nil {
		return domain.FilterOptions{}, err
	}
	return BuildFilterOptions(vehicles), nil
}

func (s *InventoryService) Statistics(ctx context.Context) (domain.InventoryStats, error) {
	vehicles, err := s.All(ctx)
	if err != nil {
		return domain.InventoryStats{}, err
	}
	return BuildInventoryStats(vehicles), nil
}

func viewCacheKey(deviceID string) string {
	return "inventory_view:" + deviceID
}

func (s *InventoryService) loadView(deviceID string) domain.InventoryView {
	data, err := s.cache.Get(viewCacheKey(deviceID))
	if err != nil {
		if !errors.Is(err, ports.ErrCacheMiss) {
			s.logger.Warn("Failed to read inventory view", map[string]interface{}{
				"error":     err.Error(),
				"device_id": deviceID,
			})
		}
		return domain.NewInventoryView()
	}
	var view domain.InventoryView
	if err := json.Unmarshal(data, &view); err != nil {
		return domain.NewInventoryView()
	}
	return view
}

func (s *InventoryService) saveView(deviceID string, view domain.InventoryView) {
	data, err := json.Marshal(view)
	if err != nil {
		return
	}
	if err := s.cache.Set(viewCacheKey(deviceID), data, inventoryViewTTL); err != nil {
		s.logger.Warn("Failed to store inventory view", map[string]interface{}{
			"error":     err.Error(),
			"device_id": deviceID,
		})
	}
}

type ViewResult struct {
	View domain.InventoryView `json:"view"`
	Page domain.VehiclePage   `json:"page"`
}

func (s *InventoryService) renderView(ctx context.Context, deviceID string, view domain.InventoryView) (*ViewResult, error) {
	page, err := s.Query(ctx, view)
	if err != nil {
		return nil, err
	}
	view.Page = page.Page
	s.saveView(deviceID, view)
	return &ViewResult{View: view, Page: page}, nil
}

// View returns the device's current inventory page.
func (s *InventoryService) View(ctx context.Context, deviceID string) (*ViewResult, error) {
	return s.renderView(ctx, deviceID, s.loadView(deviceID))
}

// SetFilter replaces the filter and resets the view to page 1.
func (s *InventoryService) SetFilter(ctx context.Context, deviceID string, f domain.VehicleFilter) (*ViewResult, error) {
	return s.renderView(ctx, deviceID, s.loadView(deviceID).WithFilter(f))
}

// ToggleSort sorts by column, flipping direction if it is already the sort column.
func (s *InventoryService) ToggleSort(ctx context.Context, deviceID string, column domain.SortColumn) (*ViewResult, error) {
	if !column.Valid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidSortColumn, column)
	}
	return s.renderView(ctx, deviceID, s.loadView(deviceID).WithSort(column))
}

// Turn moves the view delta pages, staying within the first and last page.
func (s *InventoryService) Turn(ctx context.Context, deviceID string, delta int) (*ViewResult, error) {
	view := s.loadView(deviceID)
	current, err := s.Query(ctx, view)
	if err != nil {
		return nil, err
	}
	return s.renderView(ctx, deviceID, view.Turn(delta, current.TotalPages))
}

// ResetView drops the stored view of a device.
func (s *InventoryService) ResetView(deviceID string) {
	if err := s.cache.Delete(viewCacheKey(deviceID)); err != nil {
		s.logger.Warn("Failed to reset inventory view", map[string]interface{}{
			"error":     err.Error(),
			"device_id": deviceID,
		})
	}
}

// BikesForCity lists a city's vehicles ordered by registration number.
func (s *InventoryService) BikesForCity(ctx context.Context, city string) ([]*domain.Vehicle, error) {
	vehicles, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	out := FilterVehicles(vehicles, domain.VehicleFilter{City: city})
	if len(out) == 0 {
		return nil, domain.ErrNoVehiclesForCity
	}
	slices.SortStableFunc(out, func(a, b *domain.Vehicle) int {
		return strings.Compare(a.RegNo, b.RegNo)
	})
	return out, nil
}

// LookupByReg finds a vehicle by registration number for form autofill.
func (s *InventoryService) LookupByReg(ctx context.Context, regNo string) (*domain.Vehicle, error) {
	vehicles, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	for _, v := range vehicles {
		if strings.EqualFold(v.RegNo, strings.TrimSpace(regNo)) {
			return v, nil
		}
	}
	return nil, fmt.Errorf("vehicle %s: %w", regNo, domain.ErrNotFound)
}

func (s *InventoryService) UpdateStatus(ctx context.Context, chassisNo, status string) (*domain.Vehicle, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		verr := domain.NewValidationError("Status is required")
		verr.Add("status", msgFieldRequired)
		return nil, verr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	vehicle, err := s.repo.UpdateVehicleStatus(ctx, chassisNo, status)
	if err != nil {
		s.logger.Error("Failed to update vehicle status", map[string]interface{}{
			"error":      err.Error(),
			"chassis_no": chassisNo,
		})
		return nil, err
	}
	s.logger.Info("Vehicle status updated", map[string]interface{}{
		"chassis_no": chassisNo,
		"status":     status,
	})
	return vehicle, nil
}
