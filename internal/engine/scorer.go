package engine

import (
	"sort"
	"strings"

	"github.com/nouraboussaoud/Eco-Tourisme/internal/domain/entity"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/domain/profile"
)

// scoreWeights blends the three place-scoring components. The components sum
// to 1.0; higher eco-priority tiers shift weight towards certification.
type scoreWeights struct {
	certification  float64
	sustainability float64
	activities     float64
}

var weightsByEcoPriority = map[string]scoreWeights{
	profile.EcoPriorityVeryHigh: {certification: 0.6, sustainability: 0.2, activities: 0.2},
	profile.EcoPriorityHigh:     {certification: 0.5, sustainability: 0.3, activities: 0.2},
	profile.EcoPriorityModerate: {certification: 0.3, sustainability: 0.4, activities: 0.3},
	profile.EcoPriorityLow:      {certification: 0.2, sustainability: 0.5, activities: 0.3},
}

// certificationKeywords mark recognized eco labels in a certification string
var certificationKeywords = []string{"ISO", "Green", "Eco", "Bio"}

// activityBaselineScore is a fixed placeholder; no activity-specific signal
// is folded in at this stage.
const activityBaselineScore = 50

// ScorePlaces attaches an EcoMatchScore to every place and returns the list
// sorted descending by that score. The sort is stable: equal scores keep
// their input order. The input slice is not mutated.
func ScorePlaces(places []entity.Entity, ecoPriority string) []entity.Entity {
	w, ok := weightsByEcoPriority[ecoPriority]
	if !ok {
		w = weightsByEcoPriority[profile.EcoPriorityModerate]
	}

	scored := make([]entity.Entity, len(places))
	copy(scored, places)

	for i := range scored {
		score := certificationScore(scored[i].Certifications)*w.certification +
			scored[i].SustainabilityScore*w.sustainability +
			activityBaselineScore*w.activities
		scored[i].EcoMatchScore = round2(score)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].EcoMatchScore > scored[j].EcoMatchScore
	})

	return scored
}

// certificationScore rates a certification string: 90 when it carries a
// recognized eco label, 70 for any other non-empty value, 0 when absent.
func certificationScore(certifications string) float64 {
	if certifications == "" {
		return 0
	}
	for _, kw := range certificationKeywords {
		if strings.Contains(certifications, kw) {
			return 90
		}
	}
	return 70
}
