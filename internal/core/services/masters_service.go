package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/sm8ta/webike_fleet_dashboard/internal/core/domain"
	"github.com/sm8ta/webike_fleet_dashboard/internal/core/ports"
)

// MastersService owns the cities, city managers and parts catalog documents.
type MastersService struct {
	store    ports.DocumentStore
	events   ports.EventPublisher
	logger   ports.LoggerPort
	defaults *domain.Masters

	mu sync.Mutex
}

func NewMastersService(
	store ports.DocumentStore,
	events ports.EventPublisher,
	logger ports.LoggerPort,
	defaults *domain.Masters,
) *MastersService {
	if defaults == nil {
		defaults = domain.DefaultMasters()
	}
	return &MastersService{
		store:    store,
		events:   events,
		logger:   logger,
		defaults: defaults,
	}
}

// Seed writes the default documents that are not stored yet.
func (s *MastersService) Seed(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seeds := []struct {
		key   string
		value interface{}
	}{
		{keyCities, s.defaults.Cities},
		{keyCMData, s.defaults.CityManagers},
		{keyParts, s.defaults.Parts},
	}
	for _, seed := range seeds {
		var existing interface{}
		found, err := loadDocument(ctx, s.store, seed.key, &existing)
		if err != nil {
			return err
		}
		if found {
			continue
		}
		if err := saveDocument(ctx, s.store, seed.key, seed.value); err != nil {
			return err
		}
		s.logger.Info("Seeded masters document", map[string]interface{}{
			"key": seed.key,
		})
	}
	return nil
}

func (s *MastersService) cities(ctx context.Context) ([]string, error) {
	cities := slices.Clone(s.defaults.Cities)
	if _, err := loadDocument(ctx, s.store, keyCities, &cities); err != nil {
		return nil, err
	}
	return cities, nil
}

func (s *MastersService) cityManagers(ctx context.Context) (map[string][]string, error) {
	var managers map[string][]string
	found, err := loadDocument(ctx, s.store, keyCMData, &managers)
	if err != nil {
		return nil, err
	}
	if !found || managers == nil {
		managers = make(map[string][]string, len(s.defaults.CityManagers))
		for city, names := range s.defaults.CityManagers {
			managers[city] = slices.Clone(names)
		}
	}
	return managers, nil
}

func (s *MastersService) parts(ctx context.Context) ([]domain.CatalogPart, error) {
	parts := slices.Clone(s.defaults.Parts)
	if _, err := loadDocument(ctx, s.store, keyParts, &parts); err != nil {
		return nil, err
	}
	if parts == nil {
		parts = []domain.CatalogPart{}
	}
	return parts, nil
}

func (s *MastersService) Get(ctx context.Context) (*domain.Masters, error) {
	cities, err := s.cities(ctx)
	if err != nil {
		return nil, err
	}
	managers, err := s.cityManagers(ctx)
	if err != nil {
		return nil, err
	}
	parts, err := s.parts(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.Masters{Cities: cities, CityManagers: managers, Parts: parts}, nil
}

func (s *MastersService) CityOptions(ctx context.Context) ([]domain.CityOption, error) {
	cities, err := s.cities(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.CityOption, 0, len(cities))
	for _, code := range cities {
		out = append(out, domain.CityOption{Code: code, Name: domain.CityDisplayName(code)})
	}
	return out, nil
}

func (s *MastersService) Managers(ctx context.Context, city string) ([]string, error) {
	managers, err := s.cityManagers(ctx)
	if err != nil {
		return nil, err
	}
	names, ok := managers[city]
	if !ok {
		return nil, fmt.Errorf("city %s: %w", city, domain.ErrNotFound)
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

func requiredField(field, value string) error {
	if strings.TrimSpace(value) == "" {
		verr := domain.NewValidationError(msgRequiredFields)
		verr.Add(field, msgFieldRequired)
		return verr
	}
	return nil
}

func (s *MastersService) publish(ctx context.Context, event string, payload interface{}) {
	if err := s.events.Publish(ctx, event, payload); err != nil {
		s.logger.Warn("Failed to publish masters event", map[string]interface{}{
			"error": err.Error(),
			"event": event,
		})
	}
}

// AddCity appends a city code and gives it an empty manager list.
func (s *MastersService) AddCity(ctx context.Context, name string) ([]string, error) {
	if err := requiredField("name", name); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)

	s.mu.Lock()
	defer s.mu.Unlock()

	cities, err := s.cities(ctx)
	if err != nil {
		return nil, err
	}
	if slices.Contains(cities, name) {
		return nil, fmt.Errorf("city %s: %w", name, domain.ErrAlreadyExists)
	}
	cities = append(cities, name)
	if err := saveDocument(ctx, s.store, keyCities, cities); err != nil {
		return nil, err
	}

	managers, err := s.cityManagers(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := managers[name]; !ok {
		managers[name] = []string{}
		if err := saveDocument(ctx, s.store, keyCMData, managers); err != nil {
			return nil, err
		}
		s.publish(ctx, domain.EventCMDataUpdated, managers)
	}

	s.logger.Info("City added", map[string]interface{}{
		"city": name,
	})
	s.publish(ctx, domain.EventCitiesUpdated, cities)
	return cities, nil
}

func (s *MastersService) AddCityManager(ctx context.Context, city, name string) ([]string, error) {
	if err := requiredField("city", city); err != nil {
		return nil, err
	}
	if err := requiredField("name", name); err != nil {
		return nil, err
	}
	city = strings.TrimSpace(city)
	name = strings.TrimSpace(name)

	s.mu.Lock()
	defer s.mu.Unlock()

	managers, err := s.cityManagers(ctx)
	if err != nil {
		return nil, err
	}
	if slices.Contains(managers[city], name) {
		return nil, fmt.Errorf("manager %s in %s: %w", name, city, domain.ErrAlreadyExists)
	}
	managers[city] = append(managers[city], name)
	if err := saveDocument(ctx, s.store, keyCMData, managers); err != nil {
		return nil, err
	}

	s.logger.Info("City manager added", map[string]interface{}{
		"city": city,
		"name": name,
	})
	s.publish(ctx, domain.EventCMDataUpdated, managers)
	return managers[city], nil
}

// AddPart adds a catalog entry unless its name or its number is already used.
func (s *MastersService) AddPart(ctx context.Context, name, number string) ([]domain.CatalogPart, error) {
	if err := requiredField("name", name); err != nil {
		return nil, err
	}
	if err := requiredField("number", number); err != nil {
		return nil, err
	}
	part := domain.CatalogPart{Name: strings.TrimSpace(name), Number: strings.TrimSpace(number)}

	s.mu.Lock()
	defer s.mu.Unlock()

	parts, err := s.parts(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range parts {
		if p.Name == part.Name || p.Number == part.Number {
			return nil, fmt.Errorf("part %s/%s: %w", part.Name, part.Number, domain.ErrAlreadyExists)
		}
	}
	parts = append(parts, part)
	if err := saveDocument(ctx, s.store, keyParts, parts); err != nil {
		return nil, err
	}

	s.logger.Info("Catalog part added", map[string]interface{}{
		"name":   part.Name,
		"number": part.Number,
	})
	s.publish(ctx, domain.EventPartsUpdated, parts)
	return parts, nil
}
