package domain

import (
	"math"
	"strings"
	"time"
)

const MaintenanceRecordKind = "Bike Maintenance"

const (
	ArrivalLayout    = "2006-01-02T15:04"
	CompletionLayout = "2006-01-02"
)

type PartStatus string

const (
	PartPending    PartStatus = "Pending"
	PartInProgress PartStatus = "In Progress"
	PartCompleted  PartStatus = "Completed"
)

func (s PartStatus) Valid() bool {
	return s == PartPending || s == PartInProgress || s == PartCompleted
}

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

const PaymentPaid = "Paid"

var (
	PartNameOptions      = []string{"Chain", "Brakes", "Tyres", "Gears", "Battery", "Engine", "Suspension", "Electrical", "Other"}
	RepairActionOptions  = []string{"Replace", "Repair", "Clean", "Adjust", "Service"}
	PartStatusOptions    = []string{string(PartPending), string(PartInProgress), string(PartCompleted)}
	PriorityOptions      = []string{string(PriorityHigh), string(PriorityMedium), string(PriorityLow)}
	PaymentStatusOptions = []string{PaymentPaid, "Unpaid", "Partial"}
)

// PartRepair is one row of the repairs table.
type PartRepair struct {
	PartName          string     `json:"part_name" validate:"notblank"`
	DamageDescription string     `json:"damage_description" validate:"notblank"`
	RepairAction      string     `json:"repair_action" validate:"notblank"`
	Status            PartStatus `json:"status" validate:"notblank,partstatus"`
}

// Filled reports whether all four cells of the row carry a value.
func (p PartRepair) Filled() bool {
	return strings.TrimSpace(p.PartName) != "" &&
		strings.TrimSpace(p.DamageDescription) != "" &&
		strings.TrimSpace(p.RepairAction) != "" &&
		strings.TrimSpace(string(p.Status)) != ""
}

// OverallStatus derives a record status from its parts:
// no parts or any mix without In Progress is Pending, all Completed is Completed.
func OverallStatus(parts []PartRepair) PartStatus {
	if len(parts) == 0 {
		return PartPending
	}
	allCompleted := true
	for _, p := range parts {
		if p.Status == PartInProgress {
			return PartInProgress
		}
		if p.Status != PartCompleted {
			allCompleted = false
		}
	}
	if allCompleted {
		return PartCompleted
	}
	return PartPending
}

// TotalCost is labor plus parts, rounded to two decimals.
func TotalCost(labor, parts float64) float64 {
	return math.Round((labor+parts)*100) / 100
}

// swagger:model domain.ServiceRecord
type ServiceRecord struct {
	ID                 string       `json:"id"`
	Kind               string       `json:"kind"`
	ServiceID          string       `json:"service_id"`
	ArrivalDateTime    time.Time    `json:"arrival_date_time"`
	ExpectedCompletion time.Time    `json:"expected_completion"`
	PriorityLevel      Priority     `json:"priority_level"`
	City               string       `json:"city"`
	CityName           string       `json:"city_name"`
	BikeRegNumber      string       `json:"bike_reg_number"`
	BikeBrandModel     string       `json:"bike_brand_model"`
	BikeType           string       `json:"bike_type"`
	ChassisNumber      string       `json:"chassis_number"`
	RiderName          string       `json:"rider_name"`
	ContactNumber      string       `json:"contact_number"`
	RequestID          string       `json:"request_id"`
	CMName             string       `json:"cm_name"`
	TLName             string       `json:"tl_name"`
	RiderAddress       string       `json:"rider_address,omitempty"`
	LaborCost          float64      `json:"labor_cost"`
	PartsCost          float64      `json:"parts_cost"`
	TotalCost          float64      `json:"total_cost"`
	PaymentStatus      string       `json:"payment_status"`
	MechanicComments   string       `json:"mechanic_comments,omitempty"`
	Parts              []PartRepair `json:"parts"`
	Attachments        []string     `json:"attachments,omitempty"`
	SubmittedAt        time.Time    `json:"submitted_at"`
	LastUpdated        string       `json:"last_updated"`
}

func (r *ServiceRecord) IsMaintenance() bool {
	return r != nil && r.Kind == MaintenanceRecordKind
}

// OverallStatus is computed from the parts on every call and never stored.
func (r *ServiceRecord) OverallStatus() PartStatus {
	return OverallStatus(r.Parts)
}

func (r *ServiceRecord) Ageing() Ageing {
	return ClassifyAgeing(r.ArrivalDateTime, r.ExpectedCompletion)
}

func (r *ServiceRecord) Overdue(now time.Time) Overdue {
	return ComputeOverdue(now, r.ExpectedCompletion, r.Parts)
}

type AgeingTier string

const (
	AgeingDueSoon      AgeingTier = "due-soon"
	AgeingNormal       AgeingTier = "normal"
	AgeingLongDuration AgeingTier = "long-duration"
)

const (
	dueSoonMaxDays = 3
	normalMaxDays  = 7
)

type Ageing struct {
	Days int        `json:"days"`
	Tier AgeingTier `json:"tier"`
}

func ceilDays(d time.Duration) int {
	return int(math.Ceil(d.Hours() / 24))
}

// ClassifyAgeing returns the expected service duration in whole days,
// rounded up. The tier is chosen on the signed value, the reported days are absolute.
func ClassifyAgeing(arrival, completion time.Time) Ageing {
	days := ceilDays(completion.Sub(arrival))
	tier := AgeingLongDuration
	switch {
	case days <= dueSoonMaxDays:
		tier = AgeingDueSoon
	case days <= normalMaxDays:
		tier = AgeingNormal
	}
	if days < 0 {
		days = -days
	}
	return Ageing{Days: days, Tier: tier}
}

type Overdue struct {
	Days int  `json:"days"`
	Show bool `json:"show"`
}

func ComputeOverdue(now, completion time.Time, parts []PartRepair) Overdue {
	unresolved := false
	for _, p := range parts {
		if p.Status != PartCompleted {
			unresolved = true
			break
		}
	}
	if !unresolved {
		return Overdue{}
	}
	days := ceilDays(now.Sub(completion))
	if days <= 0 {
		return Overdue{}
	}
	return Overdue{Days: days, Show: true}
}

// MaintenanceForm is the intake form as the client submits it.
type MaintenanceForm struct {
	ServiceID          string       `json:"service_id" validate:"notblank"`
	ArrivalDateTime    string       `json:"arrival_date_time" validate:"notblank"`
	ExpectedCompletion string       `json:"expected_completion" validate:"notblank"`
	PriorityLevel      string       `json:"priority_level" validate:"notblank,oneof=High Medium Low"`
	City               string       `json:"city" validate:"notblank"`
	BikeRegNumber      string       `json:"bike_reg_number" validate:"notblank"`
	BikeBrandModel     string       `json:"bike_brand_model" validate:"notblank"`
	BikeType           string       `json:"bike_type" validate:"notblank"`
	ChassisNumber      string       `json:"chassis_number" validate:"notblank"`
	RiderName          string       `json:"rider_name" validate:"notblank"`
	ContactNumber      string       `json:"contact_number" validate:"notblank,phone10"`
	RequestID          string       `json:"request_id" validate:"notblank"`
	CMName             string       `json:"cm_name" validate:"notblank"`
	TLName             string       `json:"tl_name" validate:"notblank"`
	RiderAddress       string       `json:"rider_address"`
	LaborCost          float64      `json:"labor_cost" validate:"gte=0"`
	PartsCost          float64      `json:"parts_cost" validate:"gte=0"`
	PaymentStatus      string       `json:"payment_status" validate:"notblank"`
	MechanicComments   string       `json:"mechanic_comments"`
	Parts              []PartRepair `json:"parts" validate:"dive"`
	Attachments        []string     `json:"attachments"`
}

// FilledParts keeps the rows with every cell set.
func (f *MaintenanceForm) FilledParts() []PartRepair {
	parts := make([]PartRepair, 0, len(f.Parts))
	for _, p := range f.Parts {
		if p.Filled() {
			parts = append(parts, p)
		}
	}
	return parts
}

// FormDerivation holds the values the form computes while it is edited.
type FormDerivation struct {
	TotalCost     float64    `json:"total_cost"`
	OverallStatus PartStatus `json:"overall_status"`
	Ageing        *Ageing    `json:"ageing,omitempty"`
	Overdue       Overdue    `json:"overdue"`
}

type Draft struct {
	Timestamp time.Time       `json:"timestamp"`
	Form      MaintenanceForm `json:"form"`
}

// MaintenanceSummary is shared by the dashboard counters and the summary export.
// Part counts are per part row, payment counts per record.
type MaintenanceSummary struct {
	TotalRecords   int     `json:"total_records"`
	Completed      int     `json:"completed"`
	InProgress     int     `json:"in_progress"`
	Pending        int     `json:"pending"`
	TotalCost      float64 `json:"total_cost"`
	Paid           int     `json:"paid"`
	Unpaid         int     `json:"unpaid"`
	CompletionRate float64 `json:"completion_rate"`
}

func Summarize(records []*ServiceRecord) MaintenanceSummary {
	var s MaintenanceSummary
	for _, r := range records {
		for _, p := range r.Parts {
			s.TotalRecords++
			switch p.Status {
			case PartCompleted:
				s.Completed++
			case PartInProgress:
				s.InProgress++
			case PartPending:
				s.Pending++
			}
		}
		s.TotalCost += r.TotalCost
		if r.PaymentStatus == PaymentPaid {
			s.Paid++
		} else {
			s.Unpaid++
		}
	}
	s.TotalCost = math.Round(s.TotalCost*100) / 100
	if s.TotalRecords > 0 {
		s.CompletionRate = float64(s.Completed) / float64(s.TotalRecords) * 100
	}
	return s
}
