package engine

import (
	"testing"

	"github.com/nouraboussaoud/Eco-Tourisme/internal/domain/entity"
)

func TestBuildItinerary(t *testing.T) {
	places := []entity.Entity{
		{Name: "Parc national Ichkeul", Category: "Randonnee", Description: "Réserve de biosphère", Activities: []string{"Observation des oiseaux", "Randonnée"}},
		{Name: "Médina de Tunis", Category: "VisiteHistorique"},
		{Name: "Oasis de Tozeur", Category: "ActiviteDetente", SustainabilityScore: 85},
	}

	itinerary := BuildItinerary(places, 3)

	if len(itinerary) != 3 {
		t.Fatalf("BuildItinerary() returned %d days, want 3", len(itinerary))
	}

	first := itinerary[0]
	if first.Day != 1 {
		t.Errorf("first day number = %d, want 1", first.Day)
	}
	if first.Title != "Jour 1: Parc national Ichkeul" {
		t.Errorf("first day title = %q", first.Title)
	}
	if first.Description != "Réserve de biosphère" {
		t.Errorf("first day description = %q, want the place description", first.Description)
	}
	if len(first.Activities) != 2 {
		t.Errorf("first day activities = %v, want the place activities", first.Activities)
	}

	second := itinerary[1]
	if second.Description != "Découverte de Médina de Tunis" {
		t.Errorf("second day description = %q, want generated fallback", second.Description)
	}
	if len(second.Activities) != 1 || second.Activities[0] != "VisiteHistorique" {
		t.Errorf("second day activities = %v, want the category as fallback", second.Activities)
	}
}

func TestBuildItinerary_Lengths(t *testing.T) {
	places := []entity.Entity{
		{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"},
	}

	tests := []struct {
		name         string
		places       []entity.Entity
		durationDays int
		wantDays     int
	}{
		{name: "more days than places", places: places, durationDays: 7, wantDays: 4},
		{name: "fewer days than places", places: places, durationDays: 2, wantDays: 2},
		{name: "no places", places: nil, durationDays: 5, wantDays: 0},
		{name: "zero duration", places: places, durationDays: 0, wantDays: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildItinerary(tt.places, tt.durationDays)
			if len(got) != tt.wantDays {
				t.Errorf("BuildItinerary() returned %d days, want %d", len(got), tt.wantDays)
			}
			for i, day := range got {
				if day.Day != i+1 {
					t.Errorf("day %d has number %d, want sequential numbering", i, day.Day)
				}
			}
		})
	}
}

func TestPlaceEcoHighlights(t *testing.T) {
	tests := []struct {
		name  string
		place entity.Entity
		want  []string
	}{
		{
			name:  "certified and very sustainable",
			place: entity.Entity{Certifications: "ISO 14001", SustainabilityScore: 88},
			want:  []string{"Certification: ISO 14001", "Très haute durabilité (88/100)"},
		},
		{
			name:  "high sustainability only",
			place: entity.Entity{SustainabilityScore: 72},
			want:  []string{"Haute durabilité (72/100)"},
		},
		{
			name:  "nothing to highlight gets generic line",
			place: entity.Entity{SustainabilityScore: 40},
			want:  []string{"Engagé dans le tourisme durable"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlaceEcoHighlights(tt.place)
			if len(got) != len(tt.want) {
				t.Fatalf("PlaceEcoHighlights() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("highlight %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
