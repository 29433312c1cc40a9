package services

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sm8ta/webike_fleet_dashboard/internal/core/domain"
)

type staticRecords []*domain.ServiceRecord

func (s staticRecords) List(context.Context) ([]*domain.ServiceRecord, error) {
	return s, nil
}

func newExportService(records staticRecords) (*ExportService, *MockMetrics) {
	metrics := newMockMetrics()
	svc := NewExportService(records, nopLogger{}, metrics, ist)
	svc.now = func() time.Time { return time.Date(2025, 2, 1, 8, 15, 30, 0, time.UTC) }
	return svc, metrics
}

func sampleRecords() staticRecords {
	arrival := time.Date(2025, 1, 10, 9, 30, 0, 0, ist)
	return staticRecords{
		{
			ID:                 "UM-SRV-1",
			Kind:               domain.MaintenanceRecordKind,
			ServiceID:          "SRV-1",
			ArrivalDateTime:    arrival,
			ExpectedCompletion: time.Date(2025, 1, 13, 0, 0, 0, 0, ist),
			PriorityLevel:      domain.PriorityHigh,
			City:               "BLR",
			CityName:           "Bangalore, Central",
			BikeRegNumber:      "KA01AQ6937",
			BikeBrandModel:     `5" wheel`,
			BikeType:           "Electric",
			ContactNumber:      "9876543210",
			LaborCost:          100,
			PartsCost:          50,
			TotalCost:          150,
			PaymentStatus:      "Paid",
			Parts: []domain.PartRepair{
				{PartName: "Chain", DamageDescription: "Snapped", RepairAction: "Replace", Status: domain.PartCompleted},
				{PartName: "Brakes", DamageDescription: "Worn", RepairAction: "Adjust", Status: domain.PartPending},
			},
			SubmittedAt: time.Date(2025, 1, 10, 4, 0, 0, 0, time.UTC),
		},
		{
			ID:            "UM-SRV-2",
			Kind:          domain.MaintenanceRecordKind,
			ServiceID:     "SRV-2",
			TotalCost:     20.5,
			PaymentStatus: "Unpaid",
		},
	}
}

func TestEscapeCSV(t *testing.T) {
	tests := map[string]string{
		"plain":              "plain",
		"Bangalore, Central": `"Bangalore, Central"`,
		`5" wheel`:           `"5"" wheel"`,
		"line\nbreak":        "\"line\nbreak\"",
		" leading space":     " leading space",
		"":                   "",
	}
	for in, want := range tests {
		assert.Equal(t, want, escapeCSV(in), in)
	}
}

func TestExportService_RecordsCSV(t *testing.T) {
	svc, metrics := newExportService(sampleRecords())

	file, err := svc.RecordsCSV(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "bike_maintenance_records_2025-02-01T08-15-30.csv", file.Filename)
	assert.Equal(t, ContentTypeCSV, file.ContentType)

	lines := strings.Split(strings.TrimSuffix(string(file.Data), "\n"), "\n")
	require.Len(t, lines, 4, "header, two part rows and one placeholder row")
	assert.True(t, strings.HasPrefix(lines[0], "Date & Time Received,Service ID,Priority Level,"))
	assert.True(t, strings.HasSuffix(lines[0], "Mechanic Comments,Submitted Date"))

	assert.Equal(t,
		`2025-01-10 09:30,SRV-1,High,2025-01-13,"Bangalore, Central",KA01AQ6937,"5"" wheel",Electric,N/A,N/A,9876543210,N/A,N/A,N/A,`+
			`Chain,Snapped,Replace,Completed,100.00,50.00,150.00,Paid,N/A,2025-01-10T04:00:00Z`,
		lines[1])
	assert.Contains(t, lines[2], ",Brakes,Worn,Adjust,Pending,")
	assert.True(t, strings.HasPrefix(lines[3], "N/A,SRV-2,N/A,N/A,N/A,"))
	assert.Contains(t, lines[3], ",N/A,N/A,N/A,N/A,0.00,0.00,20.50,Unpaid,")

	metrics.AssertCalled(t, "RecordExport", "records_csv")
}

func TestExportService_SummaryCSV(t *testing.T) {
	svc, _ := newExportService(sampleRecords())

	file, err := svc.SummaryCSV(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "bike_maintenance_summary_2025-02-01T08-15-30.csv", file.Filename)

	lines := strings.Split(strings.TrimSuffix(string(file.Data), "\n"), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, "Report Type,Value,Description", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Total Maintenance Records,2,"))
	assert.True(t, strings.HasPrefix(lines[2], "Completed Repairs,1,"))
	assert.True(t, strings.HasPrefix(lines[4], "Pending Repairs,1,"))
	assert.True(t, strings.HasPrefix(lines[5], "Total Cost,₹170.50,"))
	assert.True(t, strings.HasPrefix(lines[6], "Paid Records,1,"))
	assert.True(t, strings.HasPrefix(lines[7], "Unpaid Records,1,"))
	assert.True(t, strings.HasPrefix(lines[8], "Completion Rate,50.00%,"))
	assert.True(t, strings.HasPrefix(lines[9], "Export Date,2025-02-01 13:45:30,"))
}

func TestExportService_CompletionRateWithoutParts(t *testing.T) {
	svc, _ := newExportService(staticRecords{{ID: "UM-1", Kind: domain.MaintenanceRecordKind, PaymentStatus: "Paid"}})

	file, err := svc.SummaryCSV(context.Background())
	require.NoError(t, err)
	assert.Contains(t, string(file.Data), "Completion Rate,0.00%,")
}

func TestExportService_NoRecords(t *testing.T) {
	svc, metrics := newExportService(nil)

	_, err := svc.RecordsCSV(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoExportData)
	_, err = svc.SummaryCSV(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoExportData)
	_, err = svc.RecordsWorkbook(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoExportData)

	metrics.AssertNotCalled(t, "RecordExport", "records_csv")
}

func TestExportService_RecordsWorkbook(t *testing.T) {
	svc, _ := newExportService(sampleRecords())

	file, err := svc.RecordsWorkbook(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "bike_maintenance_records_2025-02-01T08-15-30.xlsx", file.Filename)
	assert.Equal(t, ContentTypeXLSX, file.ContentType)

	wb, err := excelize.OpenReader(bytes.NewReader(file.Data))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Date & Time Received", rows[0][0])
	assert.Equal(t, "Bangalore, Central", rows[1][4])
	assert.Equal(t, "Chain", rows[1][14])
}

func TestWriteCell(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	cell, err := writeCell(f, "Sheet1", 3, 2, "Chain")
	require.NoError(t, err)
	assert.Equal(t, "C2", cell)
	value, err := f.GetCellValue("Sheet1", "C2")
	require.NoError(t, err)
	assert.Equal(t, "Chain", value)

	_, err = writeCell(f, "Sheet1", 0, 1, "x")
	assert.Error(t, err)
	_, err = writeCell(f, "Missing", 1, 1, "x")
	assert.Error(t, err)
}
