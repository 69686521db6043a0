package testutil

import (
	"context"

	"github.com/nouraboussaoud/Eco-Tourisme/internal/domain/entity"
)

// MockCatalog is a mock implementation of entity.Catalog
type MockCatalog struct {
	ActivityList      []entity.Entity
	AccommodationList []entity.Entity
	TransportList     []entity.Entity
	DestinationList   []entity.Entity

	ActivitiesError     error
	AccommodationsError error
	TransportsError     error
	DestinationsError   error
}

func NewMockCatalog() *MockCatalog {
	return &MockCatalog{}
}

func (m *MockCatalog) Activities(ctx context.Context) ([]entity.Entity, error) {
	if m.ActivitiesError != nil {
		return nil, m.ActivitiesError
	}
	return m.ActivityList, nil
}

func (m *MockCatalog) Accommodations(ctx context.Context) ([]entity.Entity, error) {
	if m.AccommodationsError != nil {
		return nil, m.AccommodationsError
	}
	return m.AccommodationList, nil
}

func (m *MockCatalog) Transports(ctx context.Context) ([]entity.Entity, error) {
	if m.TransportsError != nil {
		return nil, m.TransportsError
	}
	return m.TransportList, nil
}

func (m *MockCatalog) Destinations(ctx context.Context) ([]entity.Entity, error) {
	if m.DestinationsError != nil {
		return nil, m.DestinationsError
	}
	return m.DestinationList, nil
}

// SampleActivities returns a small activity fixture covering several
// compatibility categories.
func SampleActivities() []entity.Entity {
	return []entity.Entity{
		{ID: "rando1", Name: "Randonnée du Zaghouan", Category: "Randonnee", SustainabilityScore: 85},
		{ID: "musee1", Name: "Musée du Bardo", Category: "Musee", SustainabilityScore: 70},
		{ID: "spa1", Name: "Spa Korbous", Category: "Spa", SustainabilityScore: 65},
		{ID: "atelier1", Name: "Atelier poterie de Nabeul", Category: "Atelier_culinaire", SustainabilityScore: 75},
	}
}

// SampleAccommodations returns a lodging fixture spanning the eco thresholds
func SampleAccommodations() []entity.Entity {
	return []entity.Entity{
		{ID: "lodge1", Name: "Ecolodge Dar Zaghouan", SustainabilityScore: 92, Price: 75, Certifications: "Green Key"},
		{ID: "gite1", Name: "Gîte rural de Tabarka", SustainabilityScore: 78, Price: 55},
		{ID: "hotel1", Name: "Hôtel du Centre", SustainabilityScore: 55, Price: 60},
	}
}

// SampleTransports returns a transport fixture ordered by footprint
func SampleTransports() []entity.Entity {
	return []entity.Entity{
		{ID: "train1", Name: "Train Tunis-Sousse", CO2Kg: 12.5},
		{ID: "bus1", Name: "Bus régional", CO2Kg: 45},
		{ID: "voiture1", Name: "Voiture de location", CO2Kg: 180},
	}
}

// SampleDestinations returns a destination fixture with mixed certification
// coverage.
func SampleDestinations() []entity.Entity {
	return []entity.Entity{
		{ID: "ichkeul", Name: "Parc national Ichkeul", Category: "Destination", SustainabilityScore: 88, Certifications: "ISO 14001", Region: "Bizerte"},
		{ID: "medina", Name: "Médina de Tunis", Category: "PatrimoineCulturel", SustainabilityScore: 72, Region: "Tunis"},
		{ID: "tozeur", Name: "Oasis de Tozeur", Category: "Destination", SustainabilityScore: 81, Region: "Tozeur"},
		{ID: "sidibou", Name: "Sidi Bou Saïd", Category: "Ville", SustainabilityScore: 64, Region: "Tunis"},
	}
}
