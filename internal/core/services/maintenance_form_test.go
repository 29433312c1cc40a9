package services

import (
	"regexp"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sm8ta/webike_fleet_dashboard/internal/core/domain"
)

var ist = time.FixedZone("IST", 5*3600+1800)

func TestNewForm_Defaults(t *testing.T) {
	now := time.Date(2025, 3, 10, 6, 0, 0, 0, time.UTC)
	form := NewForm(now, ist)

	assert.Regexp(t, regexp.MustCompile(`^SRV-\d+-\d{1,3}$`), form.ServiceID)
	assert.Equal(t, "2025-03-10T11:30", form.ArrivalDateTime)
	assert.Equal(t, "2025-03-13", form.ExpectedCompletion)
	assert.Len(t, form.Parts, 1)
	assert.NotNil(t, form.Attachments)
}

func TestPartRows(t *testing.T) {
	form := &domain.MaintenanceForm{Parts: []domain.PartRepair{{PartName: "Chain"}}}
	AddPartRow(form)
	assert.Len(t, form.Parts, 2)

	require.NoError(t, RemovePartRow(form, 0))
	assert.Len(t, form.Parts, 1)
	assert.Empty(t, form.Parts[0].PartName)

	require.NoError(t, RemovePartRow(form, 0))
	assert.Len(t, form.Parts, 1, "the table keeps one empty row")

	assert.ErrorIs(t, RemovePartRow(form, 3), domain.ErrNotFound)
}

func TestNormalizeContact(t *testing.T) {
	tests := []struct {
		raw    string
		digits string
		ok     bool
	}{
		{"9876543210", "9876543210", true},
		{"98765-43210", "9876543210", true},
		{"+91 98765 43210", "919876543210", false},
		{"12345", "12345", false},
		{"", "", false},
	}
	for _, tt := range tests {
		digits, ok := NormalizeContact(tt.raw)
		assert.Equal(t, tt.digits, digits, tt.raw)
		assert.Equal(t, tt.ok, ok, tt.raw)
	}
}

func TestCheckContact(t *testing.T) {
	assert.True(t, CheckContact(" (987) 654-3210 ").Valid)
	check := CheckContact("98765")
	assert.False(t, check.Valid)
	assert.Equal(t, "Contact number must be exactly 10 digits", check.Message)
}

func TestDerive(t *testing.T) {
	form := &domain.MaintenanceForm{
		ArrivalDateTime:    "2025-01-10T09:30",
		ExpectedCompletion: "2025-01-13",
		LaborCost:          100,
		PartsCost:          50,
		Parts: []domain.PartRepair{
			{PartName: "Chain", DamageDescription: "rusted", RepairAction: "Replace", Status: domain.PartInProgress},
			{PartName: "Brakes"},
		},
	}
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, ist)

	d := Derive(form, now, ist)
	assert.Equal(t, 150.0, d.TotalCost)
	assert.Equal(t, domain.PartInProgress, d.OverallStatus)
	require.NotNil(t, d.Ageing)
	assert.Equal(t, domain.Ageing{Days: 3, Tier: domain.AgeingDueSoon}, *d.Ageing)
	assert.Equal(t, domain.Overdue{Days: 3, Show: true}, d.Overdue)
}

func TestDerive_UnparseableDates(t *testing.T) {
	d := Derive(&domain.MaintenanceForm{ArrivalDateTime: "tomorrow"}, time.Now(), ist)
	assert.Nil(t, d.Ageing)
	assert.False(t, d.Overdue.Show)
	assert.Equal(t, domain.PartPending, d.OverallStatus)
}

func TestNewValidator_RegistersCustomTags(t *testing.T) {
	var v *validator.Validate
	require.NotPanics(t, func() { v = NewValidator() })

	assert.NoError(t, v.Var("9876543210", "phone10"))
	assert.Error(t, v.Var("98765", "phone10"))
	assert.Error(t, v.Var("   ", "notblank"))
	assert.NoError(t, v.Var(string(domain.PartPending), "partstatus"))
	assert.Error(t, v.Var("Done", "partstatus"))
}
