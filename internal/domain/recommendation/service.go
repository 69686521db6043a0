package recommendation

import (
	"context"

	"github.com/nouraboussaoud/Eco-Tourisme/internal/domain/entity"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/domain/profile"
)

// Service generates single-destination recommendations (Mode A)
type Service interface {
	// GenerateRecommendation assembles a full recommendation for a traveler
	// profile. Upstream fetch failures degrade to empty candidate lists; the
	// call itself only fails on context cancellation.
	GenerateRecommendation(ctx context.Context, p profile.TravelerProfile, destination string, carbonPriority bool) (*Recommendation, error)

	// ActivitiesForProfile returns activities ranked by profile compatibility
	ActivitiesForProfile(ctx context.Context, profileID string) ([]entity.Entity, error)

	// AccommodationsForProfile returns eco-friendly accommodations, falling
	// back to the unfiltered set when none reach the eco threshold
	AccommodationsForProfile(ctx context.Context, profileID string) ([]entity.Entity, error)

	// TransportOptions returns transports with carbon scores attached,
	// cleanest first when carbonSensitive is set
	TransportOptions(ctx context.Context, carbonSensitive bool) ([]TransportOption, error)

	// TransportCarbon computes the footprint of a transport over a distance
	TransportCarbon(transportType string, distanceKm float64) TransportCarbon

	// Compare ranks several generated recommendations against each other
	Compare(packages []*Recommendation) Comparison
}

// PackageService generates personality-driven trip packages (Mode B)
type PackageService interface {
	// GenerateTripPackage builds a full package from a personality profile and
	// the available entities. Fails with MISSING_MANDATORY_DATA when places is
	// empty; empty accommodations degrade to a flat nightly cost estimate.
	GenerateTripPackage(ctx context.Context, p profile.PersonalityProfile, places, accommodations []entity.Entity) (*TripPackage, error)
}
