package engine

import "testing"

func TestMatchScore(t *testing.T) {
	tests := []struct {
		name     string
		profile  string
		category string
		want     float64
	}{
		{
			name:     "adventure loves sports",
			profile:  "Adventure",
			category: "ActiviteSportive",
			want:     100,
		},
		{
			name:     "adventure tolerates culture",
			profile:  "Adventure",
			category: "ActiviteCulturelle",
			want:     30,
		},
		{
			name:     "culture loves museums",
			profile:  "Culture",
			category: "Musee",
			want:     95,
		},
		{
			name:     "wellness loves spas",
			profile:  "BienEtre",
			category: "Spa",
			want:     100,
		},
		{
			name:     "family loves educational activities",
			profile:  "Famille",
			category: "ActiviteEducative",
			want:     100,
		},
		{
			name:     "unknown profile is neutral",
			profile:  "Backpacker",
			category: "ActiviteSportive",
			want:     50,
		},
		{
			name:     "unknown category is neutral",
			profile:  "Adventure",
			category: "Observation_des_etoiles",
			want:     50,
		},
		{
			name:     "empty inputs are neutral",
			profile:  "",
			category: "",
			want:     50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchScore(tt.profile, tt.category)
			if got != tt.want {
				t.Errorf("MatchScore(%q, %q) = %v, want %v", tt.profile, tt.category, got, tt.want)
			}
		})
	}
}

func TestMatchScore_Bounds(t *testing.T) {
	for p, categories := range compatibilityMatrix {
		for c := range categories {
			got := MatchScore(p, c)
			if got < 0 || got > 100 {
				t.Errorf("MatchScore(%q, %q) = %v, want within [0, 100]", p, c, got)
			}
		}
	}
}
