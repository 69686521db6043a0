package services

import (
	"context"
	"fmt"
	"math"

	"github.com/nouraboussaoud/Eco-Tourisme/internal/domain/entity"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/domain/profile"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/domain/recommendation"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/engine"
	apperrors "github.com/nouraboussaoud/Eco-Tourisme/internal/pkg/errors"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/pkg/logger"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/pkg/metrics"
)

// Defaults applied when the personality analysis left a preference unset
const (
	defaultPackageDuration = 5
	defaultPackageBudget   = 1200
)

// minPackagePlaces is the floor on selected destinations when enough exist
const minPackagePlaces = 3

// PackageService implements recommendation.PackageService (Mode B)
type PackageService struct {
	log *logger.Logger
}

// NewPackageService creates the trip package generator
func NewPackageService(log *logger.Logger) *PackageService {
	return &PackageService{log: log}
}

// GenerateTripPackage builds a full trip package from a personality profile.
// Destinations are mandatory: an empty places list is the one fatal input.
// Accommodations are optional and degrade to a flat lodging estimate.
func (s *PackageService) GenerateTripPackage(ctx context.Context, p profile.PersonalityProfile, places, accommodations []entity.Entity) (*recommendation.TripPackage, error) {
	if len(places) == 0 {
		metrics.RecordTripPackage("missing_data")
		return nil, apperrors.MissingMandatoryData("Aucune destination disponible dans la base de connaissances")
	}

	ecoPriority := p.Preferences.EcoPriority
	if ecoPriority == "" {
		ecoPriority = profile.EcoPriorityModerate
	}
	duration := p.Preferences.DurationDays
	if duration <= 0 {
		duration = defaultPackageDuration
	}
	budget := p.Preferences.BudgetRange
	if budget <= 0 {
		budget = defaultPackageBudget
	}

	scored := engine.ScorePlaces(places, ecoPriority)
	selected := selectPlaces(scored, duration)

	s.log.Infof("%d destinations sélectionnées pour le package", len(selected))

	var suitable []entity.Entity
	if len(accommodations) > 0 {
		suitable = engine.FilterAccommodations(accommodations, budget, ecoPriority)
		if len(suitable) == 0 {
			s.log.Info("aucun hébergement après filtrage budget/eco, utilisation des meilleurs disponibles")
			suitable = accommodations
			if len(suitable) > 3 {
				suitable = suitable[:3]
			}
		}
	} else {
		s.log.Info("aucun hébergement disponible, package basé uniquement sur les destinations")
	}

	itinerary := engine.BuildItinerary(selected, duration)

	var costLodging []entity.Entity
	if len(suitable) > 0 {
		costLodging = suitable[:1]
	}
	costs := engine.CalculateCosts(costLodging, selected, duration, p.Preferences.TransportPreference)

	topAccommodations := suitable
	if len(topAccommodations) > 2 {
		topAccommodations = topAccommodations[:2]
	}

	metrics.RecordTripPackage("ok")

	return &recommendation.TripPackage{
		PackageName:              fmt.Sprintf("Package %s", p.PersonalityType),
		PersonalityType:          p.PersonalityType,
		Description:              p.ProfileDescription,
		DurationDays:             duration,
		TotalBudget:              costs.Total,
		Breakdown:                costs,
		EcoScore:                 p.EcoScore,
		Itinerary:                itinerary,
		Places:                   selected,
		Accommodations:           topAccommodations,
		TransportRecommendations: engine.TransportModes(ecoPriority),
		SustainabilityHighlights: sustainabilityHighlights(selected, topAccommodations),
	}, nil
}

// selectPlaces keeps the duration+2 best places, at least 3 when available
func selectPlaces(scored []entity.Entity, duration int) []entity.Entity {
	n := duration + 2
	if n > len(scored) {
		n = len(scored)
	}
	if n < minPackagePlaces {
		n = minPackagePlaces
	}
	if n > len(scored) {
		n = len(scored)
	}
	return scored[:n]
}

// sustainabilityHighlights summarizes the ecological strengths of a package.
// Never empty: packages without measurable strengths get a generic line.
func sustainabilityHighlights(places, accommodations []entity.Entity) []string {
	var highlights []string

	certified := 0
	for _, place := range places {
		if place.Certifications != "" {
			certified++
		}
	}
	if certified > 0 {
		highlights = append(highlights, fmt.Sprintf("%d lieux avec certifications écologiques", certified))
	}

	if len(places) > 0 {
		var sum float64
		for _, place := range places {
			sum += place.SustainabilityScore
		}
		avg := sum / float64(len(places))
		if avg >= 80 {
			highlights = append(highlights, fmt.Sprintf("Score de durabilité moyen excellent: %g/100", round1(avg)))
		} else if avg >= 70 {
			highlights = append(highlights, fmt.Sprintf("Bon score de durabilité moyen: %g/100", round1(avg)))
		}
	}

	ecoLodgings := 0
	for _, acc := range accommodations {
		if acc.SustainabilityScore >= 75 {
			ecoLodgings++
		}
	}
	if ecoLodgings > 0 {
		highlights = append(highlights, fmt.Sprintf("%d hébergement(s) hautement écologique(s)", ecoLodgings))
	}

	if len(highlights) == 0 {
		return []string{"Package conçu avec attention à l'environnement"}
	}
	return highlights
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
