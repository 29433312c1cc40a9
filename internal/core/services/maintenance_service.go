package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sm8ta/webike_fleet_dashboard/internal/core/domain"
	"github.com/sm8ta/webike_fleet_dashboard/internal/core/ports"
)

const (
	msgRequiredFields    = "Please fill in all required fields."
	msgNoParts           = "Please add at least one part to the repairs table."
	msgCompletionOrder   = "Expected completion date must be after arrival date."
	msgInvalidArrival    = "Invalid arrival date and time"
	msgInvalidCompletion = "Invalid expected completion date"
)

type MaintenanceOptions struct {
	SubmitDelay time.Duration
	Location    *time.Location
	// Now defaults to time.Now.
	Now func() time.Time
}

type MaintenanceService struct {
	store       ports.DocumentStore
	attachments ports.AttachmentStore
	logger      ports.LoggerPort
	metrics     ports.MetricsPort
	validate    *validator.Validate

	submitDelay time.Duration
	loc         *time.Location
	now         func() time.Time

	mu sync.Mutex // guards read-modify-write of the record and draft documents
}

func NewMaintenanceService(
	store ports.DocumentStore,
	attachments ports.AttachmentStore,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
	validate *validator.Validate,
	opts MaintenanceOptions,
) *MaintenanceService {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &MaintenanceService{
		store:       store,
		attachments: attachments,
		logger:      logger,
		metrics:     metrics,
		validate:    validate,
		submitDelay: opts.SubmitDelay,
		loc:         loc,
		now:         now,
	}
}

// Now is the clock records are dated and aged by.
func (s *MaintenanceService) Now() time.Time {
	return s.now()
}

func (s *MaintenanceService) Location() *time.Location {
	return s.loc
}

func (s *MaintenanceService) NewForm() *domain.MaintenanceForm {
	return NewForm(s.now(), s.loc)
}

func (s *MaintenanceService) Derive(form *domain.MaintenanceForm) domain.FormDerivation {
	return Derive(form, s.now(), s.loc)
}

// Validate checks a form before submission. It returns *domain.ValidationError
// with one message per offending field.
func (s *MaintenanceService) Validate(form *domain.MaintenanceForm) error {
	verr := domain.NewValidationError(msgRequiredFields)
	if err := s.validate.Struct(form); err != nil {
		converted := toValidationError(err, msgRequiredFields)
		var fields *domain.ValidationError
		if !errors.As(converted, &fields) {
			return fmt.Errorf("validation error: %w", err)
		}
		verr = fields
	}

	if len(form.Parts) == 0 {
		verr.Add("parts", msgNoParts)
	}

	arrival, aerr := parseArrival(form.ArrivalDateTime, s.loc)
	completion, cerr := parseCompletion(form.ExpectedCompletion, s.loc)
	if strings.TrimSpace(form.ArrivalDateTime) != "" && aerr != nil {
		verr.Add("arrival_date_time", msgInvalidArrival)
	}
	if strings.TrimSpace(form.ExpectedCompletion) != "" && cerr != nil {
		verr.Add("expected_completion", msgInvalidCompletion)
	}
	if aerr == nil && cerr == nil && !completion.After(arrival) {
		verr.Add("expected_completion", msgCompletionOrder)
	}

	if verr.Empty() {
		return nil
	}
	summarize(verr)
	return verr
}

func (s *MaintenanceService) wait(ctx context.Context) error {
	if s.submitDelay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.submitDelay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *MaintenanceService) buildRecord(form *domain.MaintenanceForm, now time.Time) *domain.ServiceRecord {
	arrival, _ := parseArrival(form.ArrivalDateTime, s.loc)
	completion, _ := parseCompletion(form.ExpectedCompletion, s.loc)
	contact, _ := NormalizeContact(form.ContactNumber)
	city := strings.TrimSpace(form.City)
	serviceID := strings.TrimSpace(form.ServiceID)

	attachments := form.Attachments
	if attachments == nil {
		attachments = []string{}
	}

	return &domain.ServiceRecord{
		ID:                 "UM-" + serviceID,
		Kind:               domain.MaintenanceRecordKind,
		ServiceID:          serviceID,
		ArrivalDateTime:    arrival,
		ExpectedCompletion: completion,
		PriorityLevel:      domain.Priority(strings.TrimSpace(form.PriorityLevel)),
		City:               city,
		CityName:           domain.CityDisplayName(city),
		BikeRegNumber:      strings.TrimSpace(form.BikeRegNumber),
		BikeBrandModel:     strings.TrimSpace(form.BikeBrandModel),
		BikeType:           strings.TrimSpace(form.BikeType),
		ChassisNumber:      strings.TrimSpace(form.ChassisNumber),
		RiderName:          strings.TrimSpace(form.RiderName),
		ContactNumber:      contact,
		RequestID:          strings.TrimSpace(form.RequestID),
		CMName:             strings.TrimSpace(form.CMName),
		TLName:             strings.TrimSpace(form.TLName),
		RiderAddress:       strings.TrimSpace(form.RiderAddress),
		LaborCost:          form.LaborCost,
		PartsCost:          form.PartsCost,
		TotalCost:          domain.TotalCost(form.LaborCost, form.PartsCost),
		PaymentStatus:      strings.TrimSpace(form.PaymentStatus),
		MechanicComments:   strings.TrimSpace(form.MechanicComments),
		Parts:              form.FilledParts(),
		Attachments:        attachments,
		SubmittedAt:        now.UTC(),
		LastUpdated:        now.In(s.loc).Format(domain.CompletionLayout),
	}
}

// Submit validates the form, waits the configured processing delay and prepends
// the resulting record to the stored list. On success it also returns a fresh form.
// Any storage failure is reported as domain.ErrSubmitFailed and the caller keeps its form.
func (s *MaintenanceService) Submit(ctx context.Context, form *domain.MaintenanceForm) (*domain.ServiceRecord, *domain.MaintenanceForm, error) {
	if err := s.Validate(form); err != nil {
		s.metrics.RecordSubmission("invalid")
		s.logger.Warn("Maintenance form validation failed", map[string]interface{}{
			"error":      err.Error(),
			"service_id": form.ServiceID,
		})
		return nil, nil, err
	}

	if err := s.wait(ctx); err != nil {
		s.metrics.RecordSubmission("cancelled")
		return nil, nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.loadRecords(ctx)
	if err != nil {
		s.metrics.RecordSubmission("failed")
		s.logger.Error("Failed to load maintenance records", map[string]interface{}{
			"error":      err.Error(),
			"service_id": form.ServiceID,
		})
		return nil, nil, fmt.Errorf("%w: %w", domain.ErrSubmitFailed, err)
	}

	now := s.now()
	record := s.buildRecord(form, now)
	for _, existing := range records {
		if existing.ID == record.ID {
			s.metrics.RecordSubmission("duplicate")
			return nil, nil, fmt.Errorf("service %s: %w", record.ServiceID, domain.ErrAlreadyExists)
		}
	}

	records = append([]*domain.ServiceRecord{record}, records...)
	if err := saveDocument(ctx, s.store, keyServiceRecords, records); err != nil {
		s.metrics.RecordSubmission("failed")
		s.logger.Error("Failed to store maintenance record", map[string]interface{}{
			"error":      err.Error(),
			"service_id": record.ServiceID,
		})
		return nil, nil, fmt.Errorf("%w: %w", domain.ErrSubmitFailed, err)
	}

	s.metrics.RecordSubmission("success")
	s.logger.Info("Maintenance record submitted", map[string]interface{}{
		"service_id": record.ServiceID,
		"city":       record.City,
		"parts":      len(record.Parts),
	})
	return record, NewForm(now, s.loc), nil
}

// loadRecords returns the stored list as is, foreign entries included.
func (s *MaintenanceService) loadRecords(ctx context.Context) ([]*domain.ServiceRecord, error) {
	var records []*domain.ServiceRecord
	if _, err := loadDocument(ctx, s.store, keyServiceRecords, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// List returns the maintenance records, most recent first.
func (s *MaintenanceService) List(ctx context.Context) ([]*domain.ServiceRecord, error) {
	records, err := s.loadRecords(ctx)
	if err != nil {
		s.logger.Error("Failed to list maintenance records", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	out := make([]*domain.ServiceRecord, 0, len(records))
	for _, r := range records {
		if r.IsMaintenance() {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *MaintenanceService) Get(ctx context.Context, id string) (*domain.ServiceRecord, error) {
	records, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range records {
		if r.ID == id || r.ServiceID == id {
			return r, nil
		}
	}
	return nil, fmt.Errorf("record %s: %w", id, domain.ErrNotFound)
}

func (s *MaintenanceService) Summary(ctx context.Context) (domain.MaintenanceSummary, error) {
	records, err := s.List(ctx)
	if err != nil {
		return domain.MaintenanceSummary{}, err
	}
	return domain.Summarize(records), nil
}

// UpdatePartStatus changes one repair row. The record status follows since it is derived.
func (s *MaintenanceService) UpdatePartStatus(ctx context.Context, id string, index int, status domain.PartStatus) (*domain.ServiceRecord, error) {
	if !status.Valid() {
		verr := domain.NewValidationError("Invalid part status")
		verr.Add("status", "Status must be one of: "+strings.Join(domain.PartStatusOptions, ", "))
		return nil, verr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.loadRecords(ctx)
	if err != nil {
		return nil, err
	}
	var target *domain.ServiceRecord
	for _, r := range records {
		if r.IsMaintenance() && (r.ID == id || r.ServiceID == id) {
			target = r
			break
		}
	}
	if target == nil {
		return nil, fmt.Errorf("record %s: %w", id, domain.ErrNotFound)
	}
	if index < 0 || index >= len(target.Parts) {
		return nil, fmt.Errorf("part %d of %s: %w", index, id, domain.ErrNotFound)
	}

	target.Parts[index].Status = status
	target.LastUpdated = s.now().In(s.loc).Format(domain.CompletionLayout)
	if err := saveDocument(ctx, s.store, keyServiceRecords, records); err != nil {
		s.logger.Error("Failed to update part status", map[string]interface{}{
			"error":     err.Error(),
			"record_id": id,
		})
		return nil, err
	}
	s.logger.Info("Part status updated", map[string]interface{}{
		"record_id": id,
		"part":      index,
		"status":    status,
	})
	return target, nil
}

func (s *MaintenanceService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.loadRecords(ctx)
	if err != nil {
		return err
	}
	kept := make([]*domain.ServiceRecord, 0, len(records))
	for _, r := range records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(records) {
		return fmt.Errorf("record %s: %w", id, domain.ErrNotFound)
	}
	if err := saveDocument(ctx, s.store, keyServiceRecords, kept); err != nil {
		s.logger.Error("Failed to delete maintenance record", map[string]interface{}{
			"error":     err.Error(),
			"record_id": id,
		})
		return err
	}
	s.logger.Info("Maintenance record deleted", map[string]interface{}{
		"record_id": id,
	})
	return nil
}

// Clear removes every stored record.
func (s *MaintenanceService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(ctx, keyServiceRecords); err != nil {
		s.logger.Error("Failed to clear maintenance records", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}
	s.logger.Info("Maintenance records cleared", nil)
	return nil
}

// PurgeForeign drops stored entries that are not maintenance records.
func (s *MaintenanceService) PurgeForeign(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.loadRecords(ctx)
	if err != nil {
		return 0, err
	}
	kept := make([]*domain.ServiceRecord, 0, len(records))
	for _, r := range records {
		if r.IsMaintenance() {
			kept = append(kept, r)
		}
	}
	removed := len(records) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	if err := saveDocument(ctx, s.store, keyServiceRecords, kept); err != nil {
		return 0, err
	}
	s.logger.Info("Removed non-maintenance entries", map[string]interface{}{
		"removed": removed,
	})
	return removed, nil
}

func (s *MaintenanceService) SaveDraft(ctx context.Context, form *domain.MaintenanceForm) (*domain.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var drafts []*domain.Draft
	if _, err := loadDocument(ctx, s.store, keyDrafts, &drafts); err != nil {
		return nil, err
	}
	draft := &domain.Draft{Timestamp: s.now().UTC(), Form: *form}
	drafts = append(drafts, draft)
	if err := saveDocument(ctx, s.store, keyDrafts, drafts); err != nil {
		s.logger.Error("Failed to save draft", map[string]interface{}{
			"error":      err.Error(),
			"service_id": form.ServiceID,
		})
		return nil, err
	}
	s.logger.Info("Draft saved", map[string]interface{}{
		"service_id": form.ServiceID,
	})
	return draft, nil
}

func (s *MaintenanceService) ListDrafts(ctx context.Context) ([]*domain.Draft, error) {
	drafts := []*domain.Draft{}
	if _, err := loadDocument(ctx, s.store, keyDrafts, &drafts); err != nil {
		return nil, err
	}
	return drafts, nil
}

// UploadAttachment stores one photo or document and returns its URL.
func (s *MaintenanceService) UploadAttachment(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	name := fmt.Sprintf("%s-%s%s", s.now().UTC().Format("20060102-150405"), uuid.New().String(), strings.ToLower(filepath.Ext(filename)))
	url, err := s.attachments.Save(ctx, name, contentType, r)
	if err != nil {
		s.logger.Error("Failed to store attachment", map[string]interface{}{
			"error":    err.Error(),
			"filename": filename,
		})
		return "", err
	}
	s.logger.Info("Attachment stored", map[string]interface{}{
		"filename": filename,
		"url":      url,
	})
	return url, nil
}
