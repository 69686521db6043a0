package engine

import (
	"testing"

	"github.com/nouraboussaoud/Eco-Tourisme/internal/domain/entity"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/domain/profile"
)

func TestFilterAccommodations(t *testing.T) {
	candidates := []entity.Entity{
		{Name: "Ecolodge Dar Zaghouan", SustainabilityScore: 92, Price: 75},
		{Name: "Hôtel du Centre", SustainabilityScore: 55, Price: 60},
		{Name: "Maison d'hôtes Sidi Bou", SustainabilityScore: 78, Price: 110},
		{Name: "Auberge du Parc", SustainabilityScore: 71, Price: 40},
	}

	tests := []struct {
		name        string
		budget      float64
		ecoPriority string
		wantNames   []string
	}{
		{
			// ceiling = (1000/5)*0.4 = 80
			name:        "very high priority keeps only certified-grade lodges",
			budget:      1000,
			ecoPriority: profile.EcoPriorityVeryHigh,
			wantNames:   []string{"Ecolodge Dar Zaghouan"},
		},
		{
			name:        "high priority adds the mid-tier auberge",
			budget:      1000,
			ecoPriority: profile.EcoPriorityHigh,
			wantNames:   []string{"Ecolodge Dar Zaghouan", "Auberge du Parc"},
		},
		{
			// ceiling = (2000/5)*0.4 = 160, price no longer binding
			name:        "larger budget admits pricier guesthouse",
			budget:      2000,
			ecoPriority: profile.EcoPriorityModerate,
			wantNames:   []string{"Ecolodge Dar Zaghouan", "Maison d'hôtes Sidi Bou", "Auberge du Parc"},
		},
		{
			// ceiling = (500/5)*0.4 = 40
			name:        "tight budget leaves only the cheapest option",
			budget:      500,
			ecoPriority: profile.EcoPriorityLow,
			wantNames:   []string{"Auberge du Parc"},
		},
		{
			name:        "no match is a valid empty result",
			budget:      100,
			ecoPriority: profile.EcoPriorityVeryHigh,
			wantNames:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterAccommodations(candidates, tt.budget, tt.ecoPriority)

			if len(got) != len(tt.wantNames) {
				t.Fatalf("FilterAccommodations() returned %d accommodations, want %d", len(got), len(tt.wantNames))
			}
			for i, want := range tt.wantNames {
				if got[i].Name != want {
					t.Errorf("position %d = %v, want %v", i, got[i].Name, want)
				}
			}
		})
	}
}

func TestFilterAccommodations_AllResultsMeetThreshold(t *testing.T) {
	candidates := []entity.Entity{
		{Name: "A", SustainabilityScore: 90, Price: 10},
		{Name: "B", SustainabilityScore: 69.9, Price: 10},
		{Name: "C", SustainabilityScore: 70, Price: 10},
	}

	got := FilterAccommodations(candidates, 1000, profile.EcoPriorityHigh)
	for _, acc := range got {
		if acc.SustainabilityScore < 70 {
			t.Errorf("accommodation %v has score %v below the high-priority threshold", acc.Name, acc.SustainabilityScore)
		}
	}
	if len(got) != 2 {
		t.Errorf("FilterAccommodations() kept %d accommodations, want 2", len(got))
	}
}

func TestFilterAccommodations_UnknownPriorityDefaultsToModerate(t *testing.T) {
	candidates := []entity.Entity{
		{Name: "A", SustainabilityScore: 65, Price: 10},
		{Name: "B", SustainabilityScore: 55, Price: 10},
	}

	got := FilterAccommodations(candidates, 1000, "unheard_of")
	if len(got) != 1 || got[0].Name != "A" {
		t.Errorf("FilterAccommodations() = %v, want only the 65-score entry", got)
	}
}
