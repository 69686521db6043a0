// Package services wires the scoring engine, the knowledge store and the AI
// collaborators into the request-facing recommendation operations.
package services

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/nouraboussaoud/Eco-Tourisme/internal/domain/entity"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/domain/profile"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/domain/recommendation"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/engine"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/pkg/logger"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/pkg/metrics"
)

// Mode A recommendation score weights. They intentionally do not renormalize
// when a category is missing: a package without transport data scores lower.
const (
	weightActivities    = 0.4
	weightAccommodation = 0.3
	weightTransport     = 0.3
)

// ecoAccommodationThreshold is the sustainability floor for the preferred
// accommodation subset.
const ecoAccommodationThreshold = 70

// RecommendationService implements recommendation.Service
type RecommendationService struct {
	catalog entity.Catalog
	log     *logger.Logger
}

// NewRecommendationService creates the Mode A recommendation service
func NewRecommendationService(catalog entity.Catalog, log *logger.Logger) *RecommendationService {
	return &RecommendationService{
		catalog: catalog,
		log:     log,
	}
}

// ActivitiesForProfile fetches activities and ranks them by compatibility
// with the traveler profile. A failing store degrades to an empty list.
func (s *RecommendationService) ActivitiesForProfile(ctx context.Context, profileID string) ([]entity.Entity, error) {
	activities, err := s.catalog.Activities(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		s.log.WithError(err).Warn("activity fetch failed, continuing with empty list")
		return nil, nil
	}

	ranked := make([]entity.Entity, len(activities))
	copy(ranked, activities)
	for i := range ranked {
		ranked[i].MatchScore = engine.MatchScore(profileID, ranked[i].Category)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchScore > ranked[j].MatchScore
	})

	return ranked, nil
}

// AccommodationsForProfile fetches lodgings and prefers the eco-friendly
// subset, returning the full set when none reach the threshold.
func (s *RecommendationService) AccommodationsForProfile(ctx context.Context, profileID string) ([]entity.Entity, error) {
	accommodations, err := s.catalog.Accommodations(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		s.log.WithError(err).Warn("accommodation fetch failed, continuing with empty list")
		return nil, nil
	}

	var ecoFriendly []entity.Entity
	for _, acc := range accommodations {
		if acc.SustainabilityScore >= ecoAccommodationThreshold {
			ecoFriendly = append(ecoFriendly, acc)
		}
	}
	if len(ecoFriendly) > 0 {
		return ecoFriendly, nil
	}
	return accommodations, nil
}

// TransportOptions fetches transports with carbon ratings attached, cleanest
// first when carbonSensitive is set.
func (s *RecommendationService) TransportOptions(ctx context.Context, carbonSensitive bool) ([]recommendation.TransportOption, error) {
	transports, err := s.catalog.Transports(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		s.log.WithError(err).Warn("transport fetch failed, continuing with empty list")
		return nil, nil
	}

	options := make([]recommendation.TransportOption, 0, len(transports))
	for _, tr := range transports {
		options = append(options, recommendation.TransportOption{
			Entity: tr,
			Carbon: engine.CarbonScore(tr.CO2Kg),
		})
	}

	if carbonSensitive {
		sort.SliceStable(options, func(i, j int) bool {
			return options[i].Carbon.Score > options[j].Carbon.Score
		})
	}

	return options, nil
}

// GenerateRecommendation assembles a Mode A recommendation. Store failures
// degrade per category; the result always carries whatever data was
// reachable.
func (s *RecommendationService) GenerateRecommendation(ctx context.Context, p profile.TravelerProfile, destination string, carbonPriority bool) (*recommendation.Recommendation, error) {
	activities, err := s.ActivitiesForProfile(ctx, p.ProfileID)
	if err != nil {
		return nil, err
	}
	accommodations, err := s.AccommodationsForProfile(ctx, p.ProfileID)
	if err != nil {
		return nil, err
	}
	transports, err := s.TransportOptions(ctx, carbonPriority)
	if err != nil {
		return nil, err
	}

	days := p.DurationDays
	bestActivities := activities
	if len(activities) > days {
		bestActivities = activities[:days]
	}

	var bestAccommodation *entity.Entity
	if len(accommodations) > 0 {
		bestAccommodation = &accommodations[0]
	}
	var bestTransport *recommendation.TransportOption
	if len(transports) > 0 {
		bestTransport = &transports[0]
	}

	var totalCO2 float64
	if bestTransport != nil {
		totalCO2 = bestTransport.Carbon.KgCO2
	}

	var score float64
	if len(bestActivities) > 0 {
		var sum float64
		for _, a := range bestActivities {
			sum += a.MatchScore
		}
		score += (sum / float64(len(bestActivities))) * weightActivities
	}
	if bestAccommodation != nil {
		score += bestAccommodation.SustainabilityScore * weightAccommodation
	}
	if bestTransport != nil {
		score += bestTransport.Carbon.Score * weightTransport
	}
	score = math.Min(100, score)

	metrics.RecordRecommendation(p.ProfileID)
	s.log.WithFields(map[string]interface{}{
		"profile":     p.ProfileID,
		"destination": destination,
		"score":       round2(score),
	}).Info("recommendation generated")

	return &recommendation.Recommendation{
		Profile:             p.ProfileID,
		Destination:         destination,
		DurationDays:        days,
		RecommendationScore: round2(score),
		Activities:          bestActivities,
		Accommodation:       bestAccommodation,
		Transport:           bestTransport,
		TotalCarbonKg:       round2(totalCO2),
		Budget:              p.Budget,
		EcoFriendly:         carbonPriority,
		Reasons:             buildReasons(p.ProfileID, bestActivities, bestAccommodation, carbonPriority),
	}, nil
}

// TransportCarbon computes the footprint of a transport over a distance
func (s *RecommendationService) TransportCarbon(transportType string, distanceKm float64) recommendation.TransportCarbon {
	return engine.TransportCarbon(transportType, distanceKm)
}

// Compare ranks generated recommendations against each other. Eco scores are
// clamped for display, but totals use the raw value so extreme footprints
// still drag a package down.
func (s *RecommendationService) Compare(packages []*recommendation.Recommendation) recommendation.Comparison {
	comparison := recommendation.Comparison{
		Packages: make([]recommendation.PackageScore, 0, len(packages)),
	}

	for _, pkg := range packages {
		ecoScore := 100 - pkg.TotalCarbonKg/5

		var expScore float64
		if len(pkg.Activities) > 0 {
			for _, a := range pkg.Activities {
				expScore += a.MatchScore
			}
			expScore /= float64(len(pkg.Activities))
		}

		comparison.Packages = append(comparison.Packages, recommendation.PackageScore{
			Profile:         pkg.Profile,
			EcoScore:        round2(math.Max(0, math.Min(100, ecoScore))),
			ValueScore:      round2(pkg.RecommendationScore),
			ExperienceScore: round2(expScore),
			TotalScore:      round2((ecoScore + pkg.RecommendationScore + expScore) / 3),
		})
	}

	for i := range comparison.Packages {
		p := &comparison.Packages[i]
		if comparison.BestEco == nil || p.EcoScore > comparison.BestEco.EcoScore {
			comparison.BestEco = p
		}
		if comparison.BestValue == nil || p.ValueScore > comparison.BestValue.ValueScore {
			comparison.BestValue = p
		}
		if comparison.BestExperience == nil || p.ExperienceScore > comparison.BestExperience.ExperienceScore {
			comparison.BestExperience = p
		}
	}

	return comparison
}

// buildReasons produces the French explanation lines for a recommendation
func buildReasons(profileID string, activities []entity.Entity, accommodation *entity.Entity, eco bool) []string {
	reasons := []string{
		fmt.Sprintf("Recommandation adaptée au profil '%s'", profileID),
	}

	if len(activities) > 0 {
		reasons = append(reasons, fmt.Sprintf("%d activités suggérées basées sur vos préférences", len(activities)))
	}

	if accommodation != nil {
		score := accommodation.SustainabilityScore
		if score >= 80 {
			reasons = append(reasons, fmt.Sprintf("Hébergement très respectueux de l'environnement (%g/100)", score))
		} else if score >= 70 {
			reasons = append(reasons, fmt.Sprintf("Hébergement écologique (%g/100)", score))
		}
	}

	if eco {
		reasons = append(reasons, "Options de transport à faible empreinte carbone sélectionnées")
	}

	return reasons
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
