package engine

import (
	"sort"

	"github.com/nouraboussaoud/Eco-Tourisme/internal/domain/entity"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/domain/profile"
)

// minEcoScoreByPriority is the sustainability floor an accommodation must
// reach for each eco-priority tier.
var minEcoScoreByPriority = map[string]float64{
	profile.EcoPriorityVeryHigh: 85,
	profile.EcoPriorityHigh:     70,
	profile.EcoPriorityModerate: 60,
	profile.EcoPriorityLow:      50,
}

// Budget is treated as a multi-day total over an assumed 5-day trip; 40% of
// the daily share is allotted to lodging.
const (
	assumedTripDays    = 5
	lodgingBudgetShare = 0.4
)

// FilterAccommodations keeps accommodations whose sustainability score
// reaches the tier threshold and whose estimated nightly price fits the
// derived budget ceiling, sorted by sustainability descending. An empty
// result is valid; the caller owns the fallback policy.
func FilterAccommodations(candidates []entity.Entity, budget float64, ecoPriority string) []entity.Entity {
	minEcoScore, ok := minEcoScoreByPriority[ecoPriority]
	if !ok {
		minEcoScore = minEcoScoreByPriority[profile.EcoPriorityModerate]
	}

	maxNightly := (budget / assumedTripDays) * lodgingBudgetShare

	var suitable []entity.Entity
	for _, acc := range candidates {
		if acc.SustainabilityScore >= minEcoScore && acc.Price <= maxNightly {
			suitable = append(suitable, acc)
		}
	}

	sort.SliceStable(suitable, func(i, j int) bool {
		return suitable[i].SustainabilityScore > suitable[j].SustainabilityScore
	})

	return suitable
}
