package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sm8ta/webike_fleet_dashboard/internal/adapter/memory"
	"github.com/sm8ta/webike_fleet_dashboard/internal/core/domain"
	"github.com/sm8ta/webike_fleet_dashboard/internal/core/ports"
)

type fakeAttachments struct {
	names []string
	err   error
}

func (f *fakeAttachments) Save(_ context.Context, name, _ string, r io.Reader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if _, err := io.ReadAll(r); err != nil {
		return "", err
	}
	f.names = append(f.names, name)
	return "/uploads/" + name, nil
}

func newMaintenanceService(store ports.DocumentStore) (*MaintenanceService, *MockMetrics) {
	metrics := newMockMetrics()
	svc := NewMaintenanceService(store, &fakeAttachments{}, nopLogger{}, metrics, NewValidator(), MaintenanceOptions{
		Location: ist,
		Now:      func() time.Time { return time.Date(2025, 1, 10, 4, 0, 0, 0, time.UTC) },
	})
	return svc, metrics
}

func validForm() *domain.MaintenanceForm {
	return &domain.MaintenanceForm{
		ServiceID:          "SRV-1736480000000-42",
		ArrivalDateTime:    "2025-01-10T09:30",
		ExpectedCompletion: "2025-01-13",
		PriorityLevel:      "High",
		City:               "BLR",
		BikeRegNumber:      "KA01AQ6937",
		BikeBrandModel:     "Quantum",
		BikeType:           "Electric",
		ChassisNumber:      "MD9HAPXF4GR710037",
		RiderName:          "Ravi",
		ContactNumber:      "98765-43210",
		RequestID:          "REQ-7",
		CMName:             "Dinesh",
		TLName:             "Arun",
		LaborCost:          100,
		PartsCost:          50,
		PaymentStatus:      "Unpaid",
		Parts: []domain.PartRepair{
			{PartName: "Chain", DamageDescription: "Snapped", RepairAction: "Replace", Status: domain.PartPending},
		},
	}
}

func TestMaintenanceService_SubmitBangaloreRecord(t *testing.T) {
	ctx := context.Background()
	svc, metrics := newMaintenanceService(memory.NewDocumentStore())

	record, fresh, err := svc.Submit(ctx, validForm())
	require.NoError(t, err)

	assert.Equal(t, "UM-SRV-1736480000000-42", record.ID)
	assert.Equal(t, domain.MaintenanceRecordKind, record.Kind)
	assert.Equal(t, "Bangalore", record.CityName)
	assert.Equal(t, "9876543210", record.ContactNumber)
	assert.Equal(t, 150.0, record.TotalCost)
	assert.Equal(t, domain.PartPending, record.OverallStatus())
	assert.Equal(t, "2025-01-10", record.LastUpdated)

	require.NotNil(t, fresh)
	assert.NotEqual(t, record.ServiceID, fresh.ServiceID)
	assert.Len(t, fresh.Parts, 1)
	assert.Empty(t, fresh.Attachments)

	records, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, record.ID, records[0].ID)

	metrics.AssertCalled(t, "RecordSubmission", "success")
}

func TestMaintenanceService_SubmitPrependsNewest(t *testing.T) {
	ctx := context.Background()
	svc, _ := newMaintenanceService(memory.NewDocumentStore())

	_, _, err := svc.Submit(ctx, validForm())
	require.NoError(t, err)
	second := validForm()
	second.ServiceID = "SRV-2"
	_, _, err = svc.Submit(ctx, second)
	require.NoError(t, err)

	records, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "UM-SRV-2", records[0].ID)
}

func TestMaintenanceService_SubmitOnlyKeepsFilledParts(t *testing.T) {
	ctx := context.Background()
	svc, _ := newMaintenanceService(memory.NewDocumentStore())

	form := validForm()
	form.Parts = append(form.Parts, domain.PartRepair{PartName: "Tyres", DamageDescription: "Flat", RepairAction: "Repair", Status: domain.PartCompleted})

	record, _, err := svc.Submit(ctx, form)
	require.NoError(t, err)
	assert.Len(t, record.Parts, 2)
}

func TestMaintenanceService_SubmitDuplicate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newMaintenanceService(memory.NewDocumentStore())

	_, _, err := svc.Submit(ctx, validForm())
	require.NoError(t, err)
	_, _, err = svc.Submit(ctx, validForm())
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestMaintenanceService_SubmitStoreFailure(t *testing.T) {
	svc, metrics := newMaintenanceService(failingStore{err: errStoreDown})

	record, fresh, err := svc.Submit(context.Background(), validForm())
	assert.ErrorIs(t, err, domain.ErrSubmitFailed)
	assert.Nil(t, record)
	assert.Nil(t, fresh)
	metrics.AssertCalled(t, "RecordSubmission", "failed")
}

func TestMaintenanceService_SubmitWaitIsCancellable(t *testing.T) {
	svc, _ := newMaintenanceService(memory.NewDocumentStore())
	svc.submitDelay = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := svc.Submit(ctx, validForm())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMaintenanceService_Validate(t *testing.T) {
	svc, _ := newMaintenanceService(memory.NewDocumentStore())

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, svc.Validate(validForm()))
	})

	t.Run("missing fields", func(t *testing.T) {
		form := validForm()
		form.City = "  "
		form.Parts[0].RepairAction = ""
		form.ContactNumber = "12345"

		var verr *domain.ValidationError
		require.ErrorAs(t, svc.Validate(form), &verr)
		assert.Equal(t, "Please fill in all required fields.", verr.Message)
		assert.Contains(t, verr.Fields, "city")
		assert.Contains(t, verr.Fields, "parts[0].repair_action")
		assert.Equal(t, "Contact number must be exactly 10 digits", verr.Fields["contact_number"])
	})

	t.Run("completion must follow arrival", func(t *testing.T) {
		form := validForm()
		form.ExpectedCompletion = "2025-01-10"

		var verr *domain.ValidationError
		require.ErrorAs(t, svc.Validate(form), &verr)
		assert.Equal(t, "Expected completion date must be after arrival date.", verr.Message)
	})

	t.Run("no parts", func(t *testing.T) {
		form := validForm()
		form.Parts = nil

		var verr *domain.ValidationError
		require.ErrorAs(t, svc.Validate(form), &verr)
		assert.Equal(t, "Please add at least one part to the repairs table.", verr.Message)
	})

	t.Run("bad enums and costs", func(t *testing.T) {
		form := validForm()
		form.PriorityLevel = "Urgent"
		form.Parts[0].Status = "Done"
		form.LaborCost = -1

		var verr *domain.ValidationError
		require.ErrorAs(t, svc.Validate(form), &verr)
		assert.Contains(t, verr.Fields, "priority_level")
		assert.Contains(t, verr.Fields, "parts[0].status")
		assert.Equal(t, "Must not be negative", verr.Fields["labor_cost"])
		assert.Equal(t, "Please correct the highlighted fields", verr.Message)
	})

	t.Run("only contact number", func(t *testing.T) {
		form := validForm()
		form.ContactNumber = "12345"

		var verr *domain.ValidationError
		require.ErrorAs(t, svc.Validate(form), &verr)
		assert.Equal(t, "Contact number must be exactly 10 digits", verr.Message)
		assert.Len(t, verr.Fields, 1)
	})

	t.Run("only negative cost", func(t *testing.T) {
		form := validForm()
		form.PartsCost = -5

		var verr *domain.ValidationError
		require.ErrorAs(t, svc.Validate(form), &verr)
		assert.Equal(t, "Must not be negative", verr.Message)
	})

	t.Run("missing value alongside bad format", func(t *testing.T) {
		form := validForm()
		form.RiderName = ""
		form.ContactNumber = "12"

		var verr *domain.ValidationError
		require.ErrorAs(t, svc.Validate(form), &verr)
		assert.Equal(t, "Please fill in all required fields.", verr.Message)
	})
}

func TestMaintenanceService_Now(t *testing.T) {
	svc, _ := newMaintenanceService(memory.NewDocumentStore())
	assert.Equal(t, time.Date(2025, 1, 10, 4, 0, 0, 0, time.UTC), svc.Now())

	wall := NewMaintenanceService(memory.NewDocumentStore(), &fakeAttachments{}, nopLogger{}, newMockMetrics(), NewValidator(), MaintenanceOptions{})
	assert.WithinDuration(t, time.Now(), wall.Now(), time.Minute)
}

func TestMaintenanceService_InvalidSubmitDoesNotStore(t *testing.T) {
	ctx := context.Background()
	store := memory.NewDocumentStore()
	svc, metrics := newMaintenanceService(store)

	form := validForm()
	form.RiderName = ""
	_, _, err := svc.Submit(ctx, form)
	require.Error(t, err)

	_, err = store.Get(ctx, keyServiceRecords)
	assert.ErrorIs(t, err, ports.ErrKeyNotFound)
	metrics.AssertCalled(t, "RecordSubmission", "invalid")
}

func TestMaintenanceService_UpdatePartStatusDerivesOverall(t *testing.T) {
	ctx := context.Background()
	svc, _ := newMaintenanceService(memory.NewDocumentStore())
	record, _, err := svc.Submit(ctx, validForm())
	require.NoError(t, err)

	updated, err := svc.UpdatePartStatus(ctx, record.ID, 0, domain.PartCompleted)
	require.NoError(t, err)
	assert.Equal(t, domain.PartCompleted, updated.OverallStatus())

	stored, err := svc.Get(ctx, record.ServiceID)
	require.NoError(t, err)
	assert.Equal(t, domain.PartCompleted, stored.OverallStatus())

	_, err = svc.UpdatePartStatus(ctx, record.ID, 5, domain.PartCompleted)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.UpdatePartStatus(ctx, record.ID, 0, "Finished")
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestMaintenanceService_DeleteAndClear(t *testing.T) {
	ctx := context.Background()
	svc, _ := newMaintenanceService(memory.NewDocumentStore())
	record, _, err := svc.Submit(ctx, validForm())
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, "UM-missing"), domain.ErrNotFound)
	require.NoError(t, svc.Delete(ctx, record.ID))
	records, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	_, _, err = svc.Submit(ctx, validForm())
	require.NoError(t, err)
	require.NoError(t, svc.Clear(ctx))
	records, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestMaintenanceService_PurgeForeign(t *testing.T) {
	ctx := context.Background()
	store := memory.NewDocumentStore()
	require.NoError(t, store.Set(ctx, keyServiceRecords, []byte(
		`[{"id":"CAR-1","kind":"Car Service"},{"id":"UM-1","kind":"Bike Maintenance"},{"id":"X"}]`)))
	svc, _ := newMaintenanceService(store)

	removed, err := svc.PurgeForeign(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	records, err := svc.loadRecords(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "UM-1", records[0].ID)

	removed, err = svc.PurgeForeign(ctx)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestMaintenanceService_Drafts(t *testing.T) {
	ctx := context.Background()
	svc, _ := newMaintenanceService(memory.NewDocumentStore())

	drafts, err := svc.ListDrafts(ctx)
	require.NoError(t, err)
	assert.Empty(t, drafts)

	form := validForm()
	form.RiderName = ""
	_, err = svc.SaveDraft(ctx, form)
	require.NoError(t, err)
	_, err = svc.SaveDraft(ctx, validForm())
	require.NoError(t, err)

	drafts, err = svc.ListDrafts(ctx)
	require.NoError(t, err)
	require.Len(t, drafts, 2)
	assert.Empty(t, drafts[0].Form.RiderName)
}

func TestMaintenanceService_Summary(t *testing.T) {
	ctx := context.Background()
	svc, _ := newMaintenanceService(memory.NewDocumentStore())

	form := validForm()
	form.PaymentStatus = "Paid"
	form.Parts = append(form.Parts, domain.PartRepair{PartName: "Tyres", DamageDescription: "Flat", RepairAction: "Repair", Status: domain.PartCompleted})
	_, _, err := svc.Submit(ctx, form)
	require.NoError(t, err)

	sum, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.TotalRecords)
	assert.Equal(t, 1, sum.Completed)
	assert.Equal(t, 1, sum.Paid)
	assert.Equal(t, 50.0, sum.CompletionRate)
}

func TestMaintenanceService_UploadAttachment(t *testing.T) {
	ctx := context.Background()
	store := &fakeAttachments{}
	svc, _ := newMaintenanceService(memory.NewDocumentStore())
	svc.attachments = store

	url, err := svc.UploadAttachment(ctx, "Chain Photo.JPG", "image/jpeg", strings.NewReader("jpeg"))
	require.NoError(t, err)
	require.Len(t, store.names, 1)
	assert.True(t, strings.HasPrefix(store.names[0], "20250110-040000-"))
	assert.True(t, strings.HasSuffix(store.names[0], ".jpg"))
	assert.Equal(t, "/uploads/"+store.names[0], url)

	store.err = errors.New("disk full")
	_, err = svc.UploadAttachment(ctx, "a.png", "image/png", strings.NewReader("png"))
	assert.Error(t, err)
}
