package engine

import (
	"github.com/nouraboussaoud/Eco-Tourisme/internal/domain/entity"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/domain/recommendation"
)

// Per-trip and per-day cost constants, in euros.
const (
	fallbackDailyRate   = 100
	activityFeePerPlace = 25
	mealsPerDay         = 35
)

// transportCostByPreference is a flat per-trip estimate by preferred mode.
var transportCostByPreference = map[string]float64{
	"train": 150,
	"velo":  50,
	"bike":  50,
	"car":   200,
	"mixed": 180,
}

const defaultTransportCost = 180

// CalculateCosts estimates the trip budget. Accommodation is the summed
// nightly prices scaled by trip length, or a flat daily rate when no lodging
// was retained. The same inputs always yield the same breakdown.
func CalculateCosts(accommodations []entity.Entity, places []entity.Entity, durationDays int, transportPreference string) recommendation.CostBreakdown {
	var accommodationCost float64
	if len(accommodations) > 0 {
		for _, acc := range accommodations {
			accommodationCost += acc.Price
		}
		accommodationCost *= float64(durationDays)
	} else {
		accommodationCost = float64(durationDays) * fallbackDailyRate
	}

	activitiesCost := float64(len(places)) * activityFeePerPlace

	transportCost, ok := transportCostByPreference[transportPreference]
	if !ok {
		transportCost = defaultTransportCost
	}

	mealsCost := float64(durationDays) * mealsPerDay

	return recommendation.CostBreakdown{
		Accommodation: round2(accommodationCost),
		Activities:    round2(activitiesCost),
		Transport:     round2(transportCost),
		Meals:         round2(mealsCost),
		Total:         round2(accommodationCost + activitiesCost + transportCost + mealsCost),
	}
}
