package domain

var cityDisplayNames = map[string]string{
	"BLR": "Bangalore",
	"Del": "Delhi",
	"HYD": "Hyderabad",
	"MUM": "Mumbai",
	"CHN": "Chennai",
}

// CityDisplayName maps a city code to its label. Unknown codes are returned as is.
func CityDisplayName(code string) string {
	if name, ok := cityDisplayNames[code]; ok {
		return name
	}
	return code
}

type CatalogPart struct {
	Name   string `json:"name" yaml:"name"`
	Number string `json:"number" yaml:"number"`
}

type CityOption struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Masters are the admin-managed reference lists.
type Masters struct {
	Cities       []string            `json:"cities" yaml:"cities"`
	CityManagers map[string][]string `json:"city_managers" yaml:"city_managers"`
	Parts        []CatalogPart       `json:"parts" yaml:"parts"`
}

func DefaultMasters() *Masters {
	return &Masters{
		Cities: []string{"BLR", "Del", "HYD", "MUM", "CHN"},
		CityManagers: map[string][]string{
			"BLR": {"Dinesh", "Somashekar", "Prajwal S Patil", "Prashanth S", "Chetan GV", "RMP_Bhabhik"},
			"Del": {"Akram", "Salman Ahmed", "Harshit"},
			"HYD": {"Shaik Jakir Umar", "Mohd Abdul Hakeem", "Madhukar Kommu"},
			"MUM": {"Mumbai CM 1", "Mumbai CM 2", "Mumbai CM 3"},
			"CHN": {"Chennai CM 1", "Chennai CM 2", "Chennai CM 3"},
		},
		Parts: []CatalogPart{},
	}
}

// Events published after a masters document is rewritten.
const (
	EventCitiesUpdated = "citiesUpdated"
	EventCMDataUpdated = "cmDataUpdated"
	EventPartsUpdated  = "partsUpdated"
)

type FormOptions struct {
	PartNames       []string `json:"part_names"`
	RepairActions   []string `json:"repair_actions"`
	PartStatuses    []string `json:"part_statuses"`
	Priorities      []string `json:"priorities"`
	PaymentStatuses []string `json:"payment_statuses"`
}

func DefaultFormOptions() FormOptions {
	return FormOptions{
		PartNames:       PartNameOptions,
		RepairActions:   RepairActionOptions,
		PartStatuses:    PartStatusOptions,
		Priorities:      PriorityOptions,
		PaymentStatuses: PaymentStatusOptions,
	}
}
