package engine

import (
	"testing"

	"github.com/nouraboussaoud/Eco-Tourisme/internal/domain/entity"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/domain/profile"
)

func TestScorePlaces(t *testing.T) {
	places := []entity.Entity{
		{Name: "Randonnée du Zaghouan", Certifications: "ISO 14001", SustainabilityScore: 90},
		{Name: "Musée du Bardo", Certifications: "", SustainabilityScore: 60},
		{Name: "Atelier poterie", Certifications: "Label régional", SustainabilityScore: 75},
	}

	scored := ScorePlaces(places, profile.EcoPriorityVeryHigh)

	if len(scored) != len(places) {
		t.Fatalf("ScorePlaces() returned %d places, want %d", len(scored), len(places))
	}

	// very_high: 0.6*cert + 0.2*sustainability + 0.2*50
	wantFirst := 0.6*90 + 0.2*90 + 0.2*50
	if scored[0].Name != "Randonnée du Zaghouan" || scored[0].EcoMatchScore != wantFirst {
		t.Errorf("top place = %v (%v), want Randonnée du Zaghouan (%v)", scored[0].Name, scored[0].EcoMatchScore, wantFirst)
	}

	for i := 1; i < len(scored); i++ {
		if scored[i].EcoMatchScore > scored[i-1].EcoMatchScore {
			t.Errorf("ScorePlaces() not sorted descending at index %d: %v > %v", i, scored[i].EcoMatchScore, scored[i-1].EcoMatchScore)
		}
	}
}

func TestScorePlaces_UnknownPriorityUsesModerateWeights(t *testing.T) {
	places := []entity.Entity{{Name: "Ferme pédagogique", SustainabilityScore: 80}}

	got := ScorePlaces(places, "extreme")[0].EcoMatchScore
	want := ScorePlaces(places, profile.EcoPriorityModerate)[0].EcoMatchScore

	if got != want {
		t.Errorf("unknown priority score = %v, want moderate score %v", got, want)
	}
}

func TestScorePlaces_StableForEqualScores(t *testing.T) {
	// Identical scoring inputs must keep their input order.
	places := []entity.Entity{
		{Name: "Sentier A", SustainabilityScore: 70},
		{Name: "Sentier B", SustainabilityScore: 70},
		{Name: "Sentier C", SustainabilityScore: 70},
	}

	scored := ScorePlaces(places, profile.EcoPriorityLow)

	wantOrder := []string{"Sentier A", "Sentier B", "Sentier C"}
	for i, want := range wantOrder {
		if scored[i].Name != want {
			t.Errorf("position %d = %v, want %v", i, scored[i].Name, want)
		}
	}
}

func TestScorePlaces_DoesNotMutateInput(t *testing.T) {
	places := []entity.Entity{
		{Name: "Oasis de Chenini", SustainabilityScore: 40},
		{Name: "Parc Ichkeul", Certifications: "Green Key", SustainabilityScore: 95},
	}

	ScorePlaces(places, profile.EcoPriorityHigh)

	if places[0].Name != "Oasis de Chenini" || places[0].EcoMatchScore != 0 {
		t.Errorf("input slice was mutated: %+v", places[0])
	}
}

func TestCertificationScore(t *testing.T) {
	tests := []struct {
		name           string
		certifications string
		want           float64
	}{
		{name: "recognized ISO label", certifications: "ISO 14001", want: 90},
		{name: "recognized Green label", certifications: "Green Key", want: 90},
		{name: "recognized Eco label", certifications: "Ecolabel Européen", want: 90},
		{name: "recognized Bio label", certifications: "Agriculture Bio", want: 90},
		{name: "unrecognized label", certifications: "Label régional", want: 70},
		{name: "no certification", certifications: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := certificationScore(tt.certifications)
			if got != tt.want {
				t.Errorf("certificationScore(%q) = %v, want %v", tt.certifications, got, tt.want)
			}
		})
	}
}
