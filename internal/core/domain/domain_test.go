package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02T15:04", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestOverallStatus(t *testing.T) {
	tests := []struct {
		name  string
		parts []PartRepair
		want  PartStatus
	}{
		{"no parts", nil, PartPending},
		{"all completed", []PartRepair{{Status: PartCompleted}, {Status: PartCompleted}}, PartCompleted},
		{"any in progress", []PartRepair{{Status: PartCompleted}, {Status: PartInProgress}, {Status: PartPending}}, PartInProgress},
		{"mixed pending and completed", []PartRepair{{Status: PartCompleted}, {Status: PartPending}}, PartPending},
		{"all pending", []PartRepair{{Status: PartPending}}, PartPending},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OverallStatus(tt.parts))
		})
	}
}

func TestTotalCost(t *testing.T) {
	assert.Equal(t, 150.0, TotalCost(100, 50))
	assert.Equal(t, 0.3, TotalCost(0.1, 0.2))
	assert.Equal(t, 10.01, TotalCost(10.005, 0.004))
}

func TestClassifyAgeing(t *testing.T) {
	tests := []struct {
		name       string
		arrival    string
		completion string
		days       int
		tier       AgeingTier
	}{
		{"partial day rounds up", "2024-01-01T10:00", "2024-01-04T00:00", 3, AgeingDueSoon},
		{"four days", "2024-01-01T10:00", "2024-01-05T00:00", 4, AgeingNormal},
		{"exactly seven", "2024-01-01T00:00", "2024-01-08T00:00", 7, AgeingNormal},
		{"eight days", "2024-01-01T00:00", "2024-01-09T00:00", 8, AgeingLongDuration},
		{"completion before arrival", "2024-01-05T10:00", "2024-01-03T00:00", 2, AgeingDueSoon},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyAgeing(date(tt.arrival), date(tt.completion))
			assert.Equal(t, tt.days, got.Days)
			assert.Equal(t, tt.tier, got.Tier)
		})
	}
}

func TestComputeOverdue(t *testing.T) {
	completion := date("2024-01-10T00:00")
	open := []PartRepair{{Status: PartCompleted}, {Status: PartPending}}

	got := ComputeOverdue(completion.Add(25*time.Hour), completion, open)
	assert.Equal(t, Overdue{Days: 2, Show: true}, got)

	assert.False(t, ComputeOverdue(completion.Add(-time.Hour), completion, open).Show)
	assert.False(t, ComputeOverdue(completion, completion, open).Show)

	done := []PartRepair{{Status: PartCompleted}}
	assert.Equal(t, Overdue{}, ComputeOverdue(completion.Add(72*time.Hour), completion, done))
}

func TestSummarize(t *testing.T) {
	records := []*ServiceRecord{
		{
			TotalCost:     150,
			PaymentStatus: PaymentPaid,
			Parts:         []PartRepair{{Status: PartCompleted}, {Status: PartPending}},
		},
		{
			TotalCost:     99.99,
			PaymentStatus: "Partial",
			Parts:         []PartRepair{{Status: PartInProgress}},
		},
		{TotalCost: 10, PaymentStatus: "Unpaid"},
	}

	s := Summarize(records)
	assert.Equal(t, 3, s.TotalRecords)
	assert.Equal(t, 1, s.Completed)
	assert.Equal(t, 1, s.InProgress)
	assert.Equal(t, 1, s.Pending)
	assert.Equal(t, 1, s.Paid)
	assert.Equal(t, 2, s.Unpaid)
	assert.InDelta(t, 259.99, s.TotalCost, 0.001)
	assert.InDelta(t, 33.333, s.CompletionRate, 0.001)

	assert.Zero(t, Summarize(nil).CompletionRate)
}

func TestFilledParts(t *testing.T) {
	form := &MaintenanceForm{Parts: []PartRepair{
		{PartName: "Chain", DamageDescription: "worn", RepairAction: "Replace", Status: PartPending},
		{PartName: "Brakes", DamageDescription: " ", RepairAction: "Adjust", Status: PartPending},
		{},
	}}
	parts := form.FilledParts()
	require.Len(t, parts, 1)
	assert.Equal(t, "Chain", parts[0].PartName)
}

func TestRoleCapabilities(t *testing.T) {
	assert.Equal(t, Capabilities{CanAdd: true, CanEdit: true, CanDelete: true, CanExport: true}, RoleAdmin.Capabilities())
	assert.Equal(t, Capabilities{CanAdd: true, CanExport: true}, RoleManager.Capabilities())
	assert.Equal(t, Capabilities{}, RoleUser.Capabilities())
	assert.False(t, UserRole("guest").Can(CapabilityAdd))
}

func TestSortStateToggle(t *testing.T) {
	var s SortState
	s = s.Toggle(SortByCity)
	assert.Equal(t, SortState{Column: SortByCity, Direction: SortAsc}, s)
	s = s.Toggle(SortByCity)
	assert.Equal(t, SortDesc, s.Direction)
	s = s.Toggle(SortByCity)
	assert.Equal(t, SortAsc, s.Direction)
	s = s.Toggle(SortByRegNo)
	assert.Equal(t, SortState{Column: SortByRegNo, Direction: SortAsc}, s)
}

func TestInventoryViewTurn(t *testing.T) {
	v := NewInventoryView()
	assert.Equal(t, 1, v.Turn(-1, 3).Page)
	assert.Equal(t, 2, v.Turn(1, 3).Page)
	v.Page = 3
	assert.Equal(t, 3, v.Turn(1, 3).Page)

	v = v.WithFilter(VehicleFilter{City: "BLR"})
	assert.Equal(t, 1, v.Page)
	assert.Equal(t, "BLR", v.Filter.City)
}

func TestVehicleReceivedAt(t *testing.T) {
	got, ok := (&Vehicle{ReceivedDate: "22-Nov-24"}).ReceivedAt()
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.November, 22, 0, 0, 0, 0, time.UTC), got)

	_, ok = (&Vehicle{ReceivedDate: "someday"}).ReceivedAt()
	assert.False(t, ok)
	_, ok = (&Vehicle{}).ReceivedAt()
	assert.False(t, ok)
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("Please fill in all required fields")
	assert.True(t, err.Empty())
	err.Add("city", "required")
	err.Add("city", "ignored")
	err.Add("bike_type", "required")
	assert.Equal(t, "Please fill in all required fields (bike_type: required; city: required)", err.Error())
}

func TestCityDisplayName(t *testing.T) {
	assert.Equal(t, "Bangalore", CityDisplayName("BLR"))
	assert.Equal(t, "PUN", CityDisplayName("PUN"))
}
