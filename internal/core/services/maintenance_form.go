package services

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/sm8ta/webike_fleet_dashboard/internal/core/domain"
)

const defaultCompletionDays = 3

// NewServiceID returns SRV-<unix millis>-<0..999>.
func NewServiceID(now time.Time) string {
	return fmt.Sprintf("SRV-%d-%d", now.UnixMilli(), rand.IntN(1000))
}

// NewForm returns an intake form with fresh defaults: a new service id,
// arrival now, completion three days out and one empty repair row.
func NewForm(now time.Time, loc *time.Location) *domain.MaintenanceForm {
	local := now.In(loc)
	return &domain.MaintenanceForm{
		ServiceID:          NewServiceID(now),
		ArrivalDateTime:    local.Format(domain.ArrivalLayout),
		ExpectedCompletion: local.AddDate(0, 0, defaultCompletionDays).Format(domain.CompletionLayout),
		Parts:              []domain.PartRepair{{}},
		Attachments:        []string{},
	}
}

func AddPartRow(form *domain.MaintenanceForm) {
	form.Parts = append(form.Parts, domain.PartRepair{})
}

// RemovePartRow deletes row i. The table never drops below one row.
func RemovePartRow(form *domain.MaintenanceForm, i int) error {
	if i < 0 || i >= len(form.Parts) {
		return fmt.Errorf("part row %d: %w", i, domain.ErrNotFound)
	}
	form.Parts = append(form.Parts[:i], form.Parts[i+1:]...)
	if len(form.Parts) == 0 {
		form.Parts = []domain.PartRepair{{}}
	}
	return nil
}

// NormalizeContact strips everything but digits. ok is true for exactly 10 digits.
func NormalizeContact(raw string) (digits string, ok bool) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits = b.String()
	return digits, len(digits) == 10
}

type ContactCheck struct {
	Normalized string `json:"normalized"`
	Valid      bool   `json:"valid"`
	Message    string `json:"message"`
}

func CheckContact(raw string) ContactCheck {
	digits, ok := NormalizeContact(strings.TrimSpace(raw))
	if !ok {
		return ContactCheck{Normalized: digits, Message: "Contact number must be exactly 10 digits"}
	}
	return ContactCheck{Normalized: digits, Valid: true, Message: "Valid contact number"}
}

func parseArrival(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.ParseInLocation(domain.ArrivalLayout, raw, loc); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

func parseCompletion(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.ParseInLocation(domain.CompletionLayout, raw, loc); err == nil {
		return t, nil
	}
	return parseArrival(raw, loc)
}

// Derive computes the live values of a form being edited.
func Derive(form *domain.MaintenanceForm, now time.Time, loc *time.Location) domain.FormDerivation {
	d := domain.FormDerivation{
		TotalCost:     domain.TotalCost(form.LaborCost, form.PartsCost),
		OverallStatus: domain.OverallStatus(form.FilledParts()),
	}
	completion, cerr := parseCompletion(form.ExpectedCompletion, loc)
	if arrival, err := parseArrival(form.ArrivalDateTime, loc); err == nil && cerr == nil {
		ageing := domain.ClassifyAgeing(arrival, completion)
		d.Ageing = &ageing
	}
	if cerr == nil {
		d.Overdue = domain.ComputeOverdue(now, completion, form.Parts)
	}
	return d
}
