// Package engine holds the pure scoring, filtering, pricing and sequencing
// logic of the recommendation core. Everything here is stateless and operates
// only on its inputs; fetching and orchestration live in internal/services.
package engine

import (
	"math"

	"github.com/nouraboussaoud/Eco-Tourisme/internal/domain/recommendation"
)

// CarbonScore rates a CO2 quantity in kilograms. The score is flat at 100 up
// to 50kg, decays linearly from 100 to 50 over the 50–150kg band, then from
// 50 towards 0 above 150kg, floored at 0. Callers must not pass negative
// values.
func CarbonScore(co2Kg float64) recommendation.CarbonScore {
	var level string
	var score float64

	switch {
	case co2Kg <= 50:
		level = recommendation.CarbonLevelLow
		score = 100
	case co2Kg <= 150:
		level = recommendation.CarbonLevelMedium
		score = math.Max(0, 100-((co2Kg-50)/100)*50)
	default:
		level = recommendation.CarbonLevelHigh
		score = math.Max(0, 50-((co2Kg-150)/100)*50)
	}

	return recommendation.CarbonScore{
		Level: level,
		Score: round2(score),
		KgCO2: co2Kg,
	}
}

// Emission factors in kg CO2 per km, by transport type
var emissionFactors = map[string]float64{
	"Avion":   0.255,
	"Train":   0.041,
	"Bus":     0.089,
	"Voiture": 0.192,
	"Velo":    0.0,
}

const defaultEmissionFactor = 0.2

// TransportCarbon computes the footprint of travelling distanceKm with the
// given transport type and proposes the train as a lower-carbon alternative.
func TransportCarbon(transportType string, distanceKm float64) recommendation.TransportCarbon {
	factor, ok := emissionFactors[transportType]
	if !ok {
		factor = defaultEmissionFactor
	}

	totalCO2 := distanceKm * factor
	carbon := CarbonScore(totalCO2)

	trainCO2 := distanceKm * emissionFactors["Train"]

	return recommendation.TransportCarbon{
		Transport:   transportType,
		DistanceKm:  distanceKm,
		TotalCO2Kg:  round2(totalCO2),
		CarbonLevel: carbon.Level,
		CarbonScore: carbon.Score,
		Alternatives: []recommendation.CarbonAlternative{
			{
				Transport: "Train",
				CO2Kg:     round2(trainCO2),
				Savings:   round2(totalCO2 - trainCO2),
			},
		},
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
