package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sm8ta/webike_fleet_dashboard/internal/core/domain"
)

func chassisOf(list []*domain.Vehicle) []string {
	out := make([]string, len(list))
	for i, v := range list {
		out[i] = v.ChassisNo
	}
	return out
}

func TestFilterVehicles(t *testing.T) {
	samples := domain.SampleVehicles()

	tests := []struct {
		name   string
		filter domain.VehicleFilter
		want   int
	}{
		{"empty filter keeps all", domain.VehicleFilter{}, 5},
		{"model", domain.VehicleFilter{Model: "Quantum"}, 3},
		{"model and city", domain.VehicleFilter{Model: "Quantum", City: "BLR"}, 2},
		{"batch", domain.VehicleFilter{Batch: "Del_Batch 1_100"}, 1},
		{"search is case-insensitive", domain.VehicleFilter{Search: "  ka01aq "}, 3},
		{"search matches batch", domain.VehicleFilter{Search: "hyd_batch"}, 1},
		{"no match", domain.VehicleFilter{City: "MUM"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, FilterVehicles(samples, tt.filter), tt.want)
		})
	}
}

func TestFilterVehicles_DoesNotModifyInput(t *testing.T) {
	samples := domain.SampleVehicles()
	before := chassisOf(samples)

	FilterVehicles(samples, domain.VehicleFilter{City: "BLR"})

	assert.Equal(t, before, chassisOf(samples))
}

func TestSortVehicles(t *testing.T) {
	samples := domain.SampleVehicles()

	sorted, err := SortVehicles(samples, domain.SortState{Column: domain.SortByRegNo, Direction: domain.SortAsc})
	require.NoError(t, err)
	assert.Equal(t, "KA01AQ5575", sorted[0].RegNo)
	assert.Equal(t, "UP16EQ6083", sorted[4].RegNo)

	sorted, err = SortVehicles(samples, domain.SortState{Column: domain.SortByRegNo, Direction: domain.SortDesc})
	require.NoError(t, err)
	assert.Equal(t, "UP16EQ6083", sorted[0].RegNo)

	// input order is untouched
	assert.Equal(t, "MD9HAPXF4GR710037", samples[0].ChassisNo)
}

func TestSortVehicles_ReceivedDateIsChronological(t *testing.T) {
	sorted, err := SortVehicles(domain.SampleVehicles(), domain.SortState{Column: domain.SortByReceivedDate, Direction: domain.SortAsc})
	require.NoError(t, err)

	var dates []string
	for _, v := range sorted {
		dates = append(dates, v.ReceivedDate)
	}
	assert.Equal(t, []string{"23-Aug-24", "20-Oct-24", "22-Nov-24", "22-Nov-24", "26-Nov-24"}, dates)
}

func TestSortVehicles_UnparseableDatesFirstAndStable(t *testing.T) {
	list := []*domain.Vehicle{
		{ChassisNo: "A", ReceivedDate: "01-Jan-24"},
		{ChassisNo: "B", ReceivedDate: ""},
		{ChassisNo: "C", ReceivedDate: "soon"},
	}
	sorted, err := SortVehicles(list, domain.SortState{Column: domain.SortByReceivedDate, Direction: domain.SortAsc})
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "A"}, chassisOf(sorted))
}

func TestSortVehicles_StableOnEqualKeys(t *testing.T) {
	sorted, err := SortVehicles(domain.SampleVehicles(), domain.SortState{Column: domain.SortByCity, Direction: domain.SortAsc})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"MD9HAPXF4GR710037", "MD9HAPXF4GR710059", "MZTL1P30624001196",
		"P6EBE1FCK24000002", "MD9HAPXF4FR710102",
	}, chassisOf(sorted))
}

func TestSortVehicles_InvalidColumn(t *testing.T) {
	_, err := SortVehicles(domain.SampleVehicles(), domain.SortState{Column: "colour"})
	assert.ErrorIs(t, err, domain.ErrInvalidSortColumn)
}

func TestPaginate(t *testing.T) {
	list := make([]*domain.Vehicle, 45)
	for i := range list {
		list[i] = &domain.Vehicle{ChassisNo: fmt.Sprintf("CH%02d", i)}
	}

	page := Paginate(list, 1, InventoryPageSize)
	assert.Len(t, page.Items, 20)
	assert.Equal(t, 3, page.TotalPages)
	assert.False(t, page.HasPrev)
	assert.True(t, page.HasNext)

	page = Paginate(list, 3, InventoryPageSize)
	assert.Len(t, page.Items, 5)
	assert.Equal(t, "CH40", page.Items[0].ChassisNo)
	assert.False(t, page.HasNext)

	page = Paginate(list, 9, InventoryPageSize)
	assert.Equal(t, 3, page.Page)

	page = Paginate(nil, 2, InventoryPageSize)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 0, page.TotalPages)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 20))
	assert.Equal(t, 1, TotalPages(20, 20))
	assert.Equal(t, 2, TotalPages(21, 20))
}

func TestBuildFilterOptions(t *testing.T) {
	opts := BuildFilterOptions(domain.SampleVehicles())
	assert.Equal(t, []string{"Bounce", "Lectrix", "Quantum"}, opts.Models)
	assert.Equal(t, []string{"BLR", "Del", "HYD"}, opts.Cities)
	assert.Equal(t, []string{"Received"}, opts.Statuses)
}

func TestBuildInventoryStats(t *testing.T) {
	stats := BuildInventoryStats(domain.SampleVehicles())
	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 3, stats.ByModel["Quantum"])
	assert.Equal(t, 3, stats.ByCity["BLR"])
	assert.Equal(t, 2, stats.ByBatch["BLR_Batch 2_200"])
}
