package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/sm8ta/webike_fleet_dashboard/internal/core/domain"
)

const InventoryExportFilename = "bikes_inventory.csv"

var inventoryHeaders = []string{"Chassis No", "Reg No", "Vehicle Model", "Received Date", "City", "Batch", "Status"}

// ParseInventoryCSV reads an inventory sheet. Columns are matched by header name,
// rows without a chassis number are skipped and a missing status becomes Received.
func ParseInventoryCSV(r io.Reader) ([]*domain.Vehicle, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("inventory file is empty")
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimPrefix(name, "\ufeff")
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range inventoryHeaders[:6] {
		if _, ok := columns[strings.ToLower(required)]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}

	cell := func(row []string, name string) string {
		i, ok := columns[strings.ToLower(name)]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var vehicles []*domain.Vehicle
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		chassis := cell(row, "Chassis No")
		if chassis == "" {
			continue
		}
		status := cell(row, "Status")
		if status == "" {
			status = domain.VehicleStatusReceived
		}
		vehicles = append(vehicles, &domain.Vehicle{
			ChassisNo:    chassis,
			RegNo:        cell(row, "Reg No"),
			VehicleModel: cell(row, "Vehicle Model"),
			ReceivedDate: cell(row, "Received Date"),
			City:         cell(row, "City"),
			Batch:        cell(row, "Batch"),
			Status:       status,
		})
	}
	return vehicles, nil
}

// ImportCSV replaces the inventory with the rows of an uploaded sheet.
func (s *InventoryService) ImportCSV(ctx context.Context, r io.Reader) (int, error) {
	vehicles, err := ParseInventoryCSV(r)
	if err != nil {
		verr := domain.NewValidationError("Invalid inventory file")
		verr.Add("file", err.Error())
		return 0, verr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.ReplaceVehicles(ctx, vehicles); err != nil {
		s.logger.Error("Failed to import inventory", map[string]interface{}{
			"error": err.Error(),
		})
		return 0, err
	}
	s.logger.Info("Inventory imported", map[string]interface{}{
		"count": len(vehicles),
	})
	return len(vehicles), nil
}

// Reconcile compares the chassis numbers of an uploaded sheet with the inventory.
func (s *InventoryService) Reconcile(ctx context.Context, r io.Reader) (*domain.ReconcileReport, error) {
	uploaded, err := ParseInventoryCSV(r)
	if err != nil {
		verr := domain.NewValidationError("Invalid inventory file")
		verr.Add("file", err.Error())
		return nil, verr
	}
	current, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	return ReconcileChassis(uploaded, current), nil
}

func chassisSet(list []*domain.Vehicle) map[string]struct{} {
	set := make(map[string]struct{}, len(list))
	for _, v := range list {
		set[strings.ToUpper(strings.TrimSpace(v.ChassisNo))] = struct{}{}
	}
	return set
}

func ReconcileChassis(uploaded, inventory []*domain.Vehicle) *domain.ReconcileReport {
	up := chassisSet(uploaded)
	inv := chassisSet(inventory)

	report := &domain.ReconcileReport{
		UploadCount:     len(up),
		InventoryCount:  len(inv),
		OnlyInUpload:    []string{},
		OnlyInInventory: []string{},
	}
	for chassis := range up {
		if _, ok := inv[chassis]; ok {
			report.Matching++
		} else {
			report.OnlyInUpload = append(report.OnlyInUpload, chassis)
		}
	}
	for chassis := range inv {
		if _, ok := up[chassis]; !ok {
			report.OnlyInInventory = append(report.OnlyInInventory, chassis)
		}
	}
	sort.Strings(report.OnlyInUpload)
	sort.Strings(report.OnlyInInventory)

	larger := max(len(up), len(inv))
	if larger > 0 {
		report.MatchPercentage = math.Round(float64(report.Matching)/float64(larger)*10000) / 100
	}
	return report
}

// ExportCSV serializes the filtered and sorted inventory.
func (s *InventoryService) ExportCSV(ctx context.Context, f domain.VehicleFilter, sortState domain.SortState) ([]byte, error) {
	vehicles, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	sorted, err := SortVehicles(FilterVehicles(vehicles, f), sortState)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writeCSVRow(&buf, inventoryHeaders)
	for _, v := range sorted {
		writeCSVRow(&buf, []string{v.ChassisNo, v.RegNo, v.VehicleModel, v.ReceivedDate, v.City, v.Batch, v.Status})
	}
	s.logger.Info("Inventory exported", map[string]interface{}{
		"rows": len(sorted),
	})
	return buf.Bytes(), nil
}
