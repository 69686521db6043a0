package entity

import "context"

// Catalog fetches candidate entities from the knowledge store.
// Implementations must be safe for concurrent use.
type Catalog interface {
	// Activities returns tourist activities (subclasses of ActiviteTouristique).
	Activities(ctx context.Context) ([]Entity, error)
	// Accommodations returns lodging candidates (subclasses of Hebergement).
	Accommodations(ctx context.Context) ([]Entity, error)
	// Transports returns transport options ordered by CO2 ascending.
	Transports(ctx context.Context) ([]Entity, error)
	// Destinations returns destination candidates ordered by sustainability.
	Destinations(ctx context.Context) ([]Entity, error)
}
