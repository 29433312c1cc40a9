package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sm8ta/webike_fleet_dashboard/internal/core/domain"
	"github.com/sm8ta/webike_fleet_dashboard/internal/core/ports"
	"github.com/xuri/excelize/v2"
)

const (
	ContentTypeCSV  = "text/csv; charset=utf-8"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	notAvailable = "N/A"
	sheetName    = "Maintenance Records"
)

var recordExportHeaders = []string{
	"Date & Time Received", "Service ID", "Priority Level", "Expected Completion", "City",
	"Bike Registration", "Bike Brand/Model", "Bike Type", "Chassis Number", "Rider Name",
	"Contact Number", "Request ID", "City Manager", "Team Lead", "Part Name",
	"Damage Description", "Repair Action", "Part Status", "Labor Cost", "Parts Cost",
	"Total Cost", "Payment Status", "Mechanic Comments", "Submitted Date",
}

type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// RecordLister is the part of MaintenanceService the exporter reads from.
type RecordLister interface {
	List(ctx context.Context) ([]*domain.ServiceRecord, error)
}

type ExportService struct {
	records RecordLister
	logger  ports.LoggerPort
	metrics ports.MetricsPort
	loc     *time.Location
	now     func() time.Time
}

func NewExportService(records RecordLister, logger ports.LoggerPort, metrics ports.MetricsPort, loc *time.Location) *ExportService {
	if loc == nil {
		loc = time.Local
	}
	return &ExportService{
		records: records,
		logger:  logger,
		metrics: metrics,
		loc:     loc,
		now:     time.Now,
	}
}

// escapeCSV quotes a value holding a comma, quote or line break and doubles inner quotes.
func escapeCSV(v string) string {
	if strings.ContainsAny(v, ",\"\r\n") {
		return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
	}
	return v
}

func writeCSVRow(buf *bytes.Buffer, fields []string) {
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(escapeCSV(f))
	}
	buf.WriteByte('\n')
}

func orNA(v string) string {
	if strings.TrimSpace(v) == "" {
		return notAvailable
	}
	return v
}

func exportTimestamp(now time.Time) string {
	return now.UTC().Format("2006-01-02T15-04-05")
}

func (s *ExportService) maintenanceRecords(ctx context.Context) ([]*domain.ServiceRecord, error) {
	records, err := s.records.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, domain.ErrNoExportData
	}
	return records, nil
}

// recordRows flattens records into one row per part. A record without parts
// yields a single row with placeholder part cells.
func (s *ExportService) recordRows(records []*domain.ServiceRecord) [][]string {
	placeholder := domain.PartRepair{
		PartName:          notAvailable,
		DamageDescription: notAvailable,
		RepairAction:      notAvailable,
		Status:            notAvailable,
	}
	var rows [][]string
	for _, r := range records {
		parts := r.Parts
		if len(parts) == 0 {
			parts = []domain.PartRepair{placeholder}
		}
		for _, p := range parts {
			rows = append(rows, []string{
				orNA(formatTime(r.ArrivalDateTime, s.loc, "2006-01-02 15:04")),
				orNA(r.ServiceID),
				orNA(string(r.PriorityLevel)),
				orNA(formatTime(r.ExpectedCompletion, s.loc, domain.CompletionLayout)),
				orNA(r.CityName),
				orNA(r.BikeRegNumber),
				orNA(r.BikeBrandModel),
				orNA(r.BikeType),
				orNA(r.ChassisNumber),
				orNA(r.RiderName),
				orNA(r.ContactNumber),
				orNA(r.RequestID),
				orNA(r.CMName),
				orNA(r.TLName),
				orNA(p.PartName),
				orNA(p.DamageDescription),
				orNA(p.RepairAction),
				orNA(string(p.Status)),
				fmt.Sprintf("%.2f", r.LaborCost),
				fmt.Sprintf("%.2f", r.PartsCost),
				fmt.Sprintf("%.2f", r.TotalCost),
				orNA(r.PaymentStatus),
				orNA(r.MechanicComments),
				orNA(formatTime(r.SubmittedAt, time.UTC, time.RFC3339)),
			})
		}
	}
	return rows
}

func formatTime(t time.Time, loc *time.Location, layout string) string {
	if t.IsZero() {
		return ""
	}
	return t.In(loc).Format(layout)
}

// RecordsCSV is the full data export.
func (s *ExportService) RecordsCSV(ctx context.Context) (*ExportFile, error) {
	records, err := s.maintenanceRecords(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writeCSVRow(&buf, recordExportHeaders)
	rows := s.recordRows(records)
	for _, row := range rows {
		writeCSVRow(&buf, row)
	}

	s.metrics.RecordExport("records_csv")
	s.logger.Info("Maintenance records exported", map[string]interface{}{
		"records": len(records),
		"rows":    len(rows),
	})
	return &ExportFile{
		Filename:    fmt.Sprintf("bike_maintenance_records_%s.csv", exportTimestamp(s.now())),
		ContentType: ContentTypeCSV,
		Data:        buf.Bytes(),
	}, nil
}

func summaryRows(sum domain.MaintenanceSummary, exportedAt string) [][]string {
	return [][]string{
		{"Total Maintenance Records", fmt.Sprint(sum.TotalRecords), "Total number of part repair entries"},
		{"Completed Repairs", fmt.Sprint(sum.Completed), "Part repairs marked Completed"},
		{"In Progress Repairs", fmt.Sprint(sum.InProgress), "Part repairs currently In Progress"},
		{"Pending Repairs", fmt.Sprint(sum.Pending), "Part repairs awaiting work"},
		{"Total Cost", fmt.Sprintf("₹%.2f", sum.TotalCost), "Sum of total cost across all records"},
		{"Paid Records", fmt.Sprint(sum.Paid), "Records with payment status Paid"},
		{"Unpaid Records", fmt.Sprint(sum.Unpaid), "Records not marked as Paid"},
		{"Completion Rate", fmt.Sprintf("%.2f%%", sum.CompletionRate), "Completed repairs as a share of all entries"},
		{"Export Date", exportedAt, "Date and time of this export"},
	}
}

// SummaryCSV is the nine-row statistics export.
func (s *ExportService) SummaryCSV(ctx context.Context) (*ExportFile, error) {
	records, err := s.maintenanceRecords(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()

	var buf bytes.Buffer
	writeCSVRow(&buf, []string{"Report Type", "Value", "Description"})
	for _, row := range summaryRows(domain.Summarize(records), now.In(s.loc).Format("2006-01-02 15:04:05")) {
		writeCSVRow(&buf, row)
	}

	s.metrics.RecordExport("summary_csv")
	s.logger.Info("Maintenance summary exported", map[string]interface{}{
		"records": len(records),
	})
	return &ExportFile{
		Filename:    fmt.Sprintf("bike_maintenance_summary_%s.csv", exportTimestamp(now)),
		ContentType: ContentTypeCSV,
		Data:        buf.Bytes(),
	}, nil
}

// RecordsWorkbook writes the data export as an xlsx sheet with a styled header row.
func (s *ExportService) RecordsWorkbook(ctx context.Context) (*ExportFile, error) {
	records, err := s.maintenanceRecords(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range recordExportHeaders {
		cell, err := writeCell(f, sheetName, col+1, 1, header)
		if err == nil {
			err = f.SetCellStyle(sheetName, cell, cell, headerStyle)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	rows := s.recordRows(records)
	for i, row := range rows {
		for col, value := range row {
			if _, err := writeCell(f, sheetName, col+1, i+2, value); err != nil {
				return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
			}
		}
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("Failed to write workbook", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	s.metrics.RecordExport("records_xlsx")
	return &ExportFile{
		Filename:    fmt.Sprintf("bike_maintenance_records_%s.xlsx", exportTimestamp(s.now())),
		ContentType: ContentTypeXLSX,
		Data:        buffer.Bytes(),
	}, nil
}

// writeCell sets one cell by 1-based column and row and returns its name.
func writeCell(f *excelize.File, sheet string, col, row int, value interface{}) (string, error) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", err
	}
	return cell, f.SetCellValue(sheet, cell, value)
}
