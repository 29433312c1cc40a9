package domain

import (
	"strings"
	"time"
)

const VehicleStatusReceived = "Received"

// swagger:model domain.Vehicle
type Vehicle struct {
	ChassisNo    string `json:"chassis_no"`
	RegNo        string `json:"reg_no"`
	VehicleModel string `json:"vehicle_model"`
	ReceivedDate string `json:"received_date"` // 22-Nov-24
	City         string `json:"city"`
	Batch        string `json:"batch"`
	Status       string `json:"status"`
}

var receivedDateLayouts = []string{
	"02-Jan-06",
	"2-Jan-06",
	"02-Jan-2006",
	"2006-01-02",
}

// ReceivedAt parses ReceivedDate. ok is false for blank or unknown formats.
func (v *Vehicle) ReceivedAt() (t time.Time, ok bool) {
	raw := strings.TrimSpace(v.ReceivedDate)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range receivedDateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// SampleVehicles is the inventory used when nothing has been loaded yet.
func SampleVehicles() []*Vehicle {
	return []*Vehicle{
		{ChassisNo: "MD9HAPXF4GR710037", RegNo: "KA01AQ6937", VehicleModel: "Quantum", ReceivedDate: "22-Nov-24", City: "BLR", Batch: "BLR_Batch 2_200", Status: VehicleStatusReceived},
		{ChassisNo: "MD9HAPXF4GR710059", RegNo: "KA01AQ7030", VehicleModel: "Quantum", ReceivedDate: "22-Nov-24", City: "BLR", Batch: "BLR_Batch 2_200", Status: VehicleStatusReceived},
		{ChassisNo: "MZTL1P30624001196", RegNo: "KA01AQ5575", VehicleModel: "Lectrix", ReceivedDate: "20-Oct-24", City: "BLR", Batch: "BLR_Batch 1_120", Status: VehicleStatusReceived},
		{ChassisNo: "P6EBE1FCK24000002", RegNo: "UP16EQ6083", VehicleModel: "Bounce", ReceivedDate: "26-Nov-24", City: "Del", Batch: "Del_Batch 1_100", Status: VehicleStatusReceived},
		{ChassisNo: "MD9HAPXF4FR710102", RegNo: "TG13T1824", VehicleModel: "Quantum", ReceivedDate: "23-Aug-24", City: "HYD", Batch: "Hyd_Batch 1_180", Status: VehicleStatusReceived},
	}
}

type VehicleFilter struct {
	Model  string `json:"model" form:"model"`
	City   string `json:"city" form:"city"`
	Batch  string `json:"batch" form:"batch"`
	Status string `json:"status" form:"status"`
	Search string `json:"search" form:"q"`
}

func (f VehicleFilter) IsEmpty() bool {
	return f.Model == "" && f.City == "" && f.Batch == "" && f.Status == "" && strings.TrimSpace(f.Search) == ""
}

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

type SortColumn string

const (
	SortByChassisNo    SortColumn = "chassis_no"
	SortByRegNo        SortColumn = "reg_no"
	SortByVehicleModel SortColumn = "vehicle_model"
	SortByReceivedDate SortColumn = "received_date"
	SortByCity         SortColumn = "city"
	SortByBatch        SortColumn = "batch"
	SortByStatus       SortColumn = "status"
)

func (c SortColumn) Valid() bool {
	switch c {
	case SortByChassisNo, SortByRegNo, SortByVehicleModel, SortByReceivedDate,
		SortByCity, SortByBatch, SortByStatus:
		return true
	}
	return false
}

// SortState is the column/direction pair of an inventory table.
// An empty Column means unsorted.
type SortState struct {
	Column    SortColumn    `json:"column"`
	Direction SortDirection `json:"direction"`
}

// Toggle flips direction when the same column is chosen again,
// otherwise it switches to the new column ascending.
func (s SortState) Toggle(column SortColumn) SortState {
	if s.Column == column {
		if s.Direction == SortAsc {
			return SortState{Column: column, Direction: SortDesc}
		}
		return SortState{Column: column, Direction: SortAsc}
	}
	return SortState{Column: column, Direction: SortAsc}
}

// InventoryView is the per-device state of the inventory browser.
type InventoryView struct {
	Filter VehicleFilter `json:"filter"`
	Sort   SortState     `json:"sort"`
	Page   int           `json:"page"`
}

func NewInventoryView() InventoryView {
	return InventoryView{Page: 1}
}

// WithFilter replaces the filter and goes back to the first page.
func (v InventoryView) WithFilter(f VehicleFilter) InventoryView {
	v.Filter = f
	v.Page = 1
	return v
}

func (v InventoryView) WithSort(column SortColumn) InventoryView {
	v.Sort = v.Sort.Toggle(column)
	return v
}

// Turn moves delta pages, clamped to [1, totalPages].
func (v InventoryView) Turn(delta, totalPages int) InventoryView {
	v.Page += delta
	if v.Page > totalPages {
		v.Page = totalPages
	}
	if v.Page < 1 {
		v.Page = 1
	}
	return v
}

type VehiclePage struct {
	Items      []*Vehicle `json:"items"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	TotalPages int        `json:"total_pages"`
	TotalItems int        `json:"total_items"`
	HasPrev    bool       `json:"has_prev"`
	HasNext    bool       `json:"has_next"`
}

type FilterOptions struct {
	Models   []string `json:"models"`
	Cities   []string `json:"cities"`
	Batches  []string `json:"batches"`
	Statuses []string `json:"statuses"`
}

type InventoryStats struct {
	Total   int            `json:"total"`
	ByModel map[string]int `json:"by_model"`
	ByCity  map[string]int `json:"by_city"`
	ByBatch map[string]int `json:"by_batch"`
}

// ReconcileReport compares chassis numbers of an uploaded sheet against the inventory.
type ReconcileReport struct {
	UploadCount     int      `json:"upload_count"`
	InventoryCount  int      `json:"inventory_count"`
	Matching        int      `json:"matching"`
	OnlyInUpload    []string `json:"only_in_upload"`
	OnlyInInventory []string `json:"only_in_inventory"`
	MatchPercentage float64  `json:"match_percentage"`
}
