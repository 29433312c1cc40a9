package services

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/sm8ta/webike_fleet_dashboard/internal/core/domain"
)

const InventoryPageSize = 20

// FilterVehicles keeps the vehicles matching every non-empty predicate.
// The input slice is never modified.
func FilterVehicles(list []*domain.Vehicle, f domain.VehicleFilter) []*domain.Vehicle {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]*domain.Vehicle, 0, len(list))
	for _, v := range list {
		if f.Model != "" && v.VehicleModel != f.Model {
			continue
		}
		if f.City != "" && v.City != f.City {
			continue
		}
		if f.Batch != "" && v.Batch != f.Batch {
			continue
		}
		if f.Status != "" && v.Status != f.Status {
			continue
		}
		if search != "" && !matchesSearch(v, search) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func matchesSearch(v *domain.Vehicle, needle string) bool {
	for _, field := range []string{v.ChassisNo, v.RegNo, v.VehicleModel, v.City, v.Batch} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// SortVehicles returns a sorted copy. Equal keys keep their input order.
// An empty column returns the list unchanged.
func SortVehicles(list []*domain.Vehicle, state domain.SortState) ([]*domain.Vehicle, error) {
	out := slices.Clone(list)
	if state.Column == "" {
		return out, nil
	}
	if !state.Column.Valid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidSortColumn, state.Column)
	}
	cmp := compareBy(state.Column)
	desc := state.Direction == domain.SortDesc
	slices.SortStableFunc(out, func(a, b *domain.Vehicle) int {
		if desc {
			return cmp(b, a)
		}
		return cmp(a, b)
	})
	return out, nil
}

func compareBy(column domain.SortColumn) func(a, b *domain.Vehicle) int {
	if column == domain.SortByReceivedDate {
		return func(a, b *domain.Vehicle) int {
			at, aok := a.ReceivedAt()
			bt, bok := b.ReceivedAt()
			switch {
			case !aok && !bok:
				return 0
			case !aok:
				return -1
			case !bok:
				return 1
			}
			return at.Compare(bt)
		}
	}
	field := textField(column)
	return func(a, b *domain.Vehicle) int {
		return strings.Compare(strings.ToLower(field(a)), strings.ToLower(field(b)))
	}
}

func textField(column domain.SortColumn) func(*domain.Vehicle) string {
	switch column {
	case domain.SortByChassisNo:
		return func(v *domain.Vehicle) string { return v.ChassisNo }
	case domain.SortByRegNo:
		return func(v *domain.Vehicle) string { return v.RegNo }
	case domain.SortByVehicleModel:
		return func(v *domain.Vehicle) string { return v.VehicleModel }
	case domain.SortByCity:
		return func(v *domain.Vehicle) string { return v.City }
	case domain.SortByBatch:
		return func(v *domain.Vehicle) string { return v.Batch }
	default:
		return func(v *domain.Vehicle) string { return v.Status }
	}
}

// TotalPages is ceil(n / pageSize); zero items give zero pages.
func TotalPages(n, pageSize int) int {
	if n <= 0 || pageSize <= 0 {
		return 0
	}
	return (n + pageSize - 1) / pageSize
}

// Paginate slices one page out of list. The page number is clamped into range.
func Paginate(list []*domain.Vehicle, page, pageSize int) domain.VehiclePage {
	if pageSize <= 0 {
		pageSize = InventoryPageSize
	}
	total := TotalPages(len(list), pageSize)
	if page > total {
		page = total
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(list) {
		start = len(list)
	}
	if end > len(list) {
		end = len(list)
	}
	items := list[start:end]
	if items == nil {
		items = []*domain.Vehicle{}
	}
	return domain.VehiclePage{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: total,
		TotalItems: len(list),
		HasPrev:    page > 1,
		HasNext:    page < total,
	}
}

// ApplyView runs filter, sort and pagination in that order.
func ApplyView(list []*domain.Vehicle, view domain.InventoryView) (domain.VehiclePage, error) {
	sorted, err := SortVehicles(FilterVehicles(list, view.Filter), view.Sort)
	if err != nil {
		return domain.VehiclePage{}, err
	}
	return Paginate(sorted, view.Page, InventoryPageSize), nil
}

func BuildFilterOptions(list []*domain.Vehicle) domain.FilterOptions {
	return domain.FilterOptions{
		Models:   distinct(list, func(v *domain.Vehicle) string { return v.VehicleModel }),
		Cities:   distinct(list, func(v *domain.Vehicle) string { return v.City }),
		Batches:  distinct(list, func(v *domain.Vehicle) string { return v.Batch }),
		Statuses: distinct(list, func(v *domain.Vehicle) string { return v.Status }),
	}
}

func distinct(list []*domain.Vehicle, field func(*domain.Vehicle) string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, v := range list {
		value := field(v)
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	sort.Strings(out)
	return out
}

func BuildInventoryStats(list []*domain.Vehicle) domain.InventoryStats {
	stats := domain.InventoryStats{
		Total:   len(list),
		ByModel: map[string]int{},
		ByCity:  map[string]int{},
		ByBatch: map[string]int{},
	}
	for _, v := range list {
		stats.ByModel[v.VehicleModel]++
		stats.ByCity[v.City]++
		stats.ByBatch[v.Batch]++
	}
	return stats
}
