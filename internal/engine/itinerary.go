package engine

import (
	"fmt"

	"github.com/nouraboussaoud/Eco-Tourisme/internal/domain/entity"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/domain/recommendation"
)

// BuildItinerary assigns places to sequential days, one place per day,
// producing min(durationDays, len(places)) entries. An empty place list
// yields an empty itinerary.
func BuildItinerary(places []entity.Entity, durationDays int) []recommendation.DayPlan {
	n := durationDays
	if len(places) < n {
		n = len(places)
	}

	itinerary := make([]recommendation.DayPlan, 0, n)
	for day := 1; day <= n; day++ {
		place := places[day-1]

		name := place.Name
		if name == "" {
			name = "Activité"
		}

		activities := place.Activities
		if len(activities) == 0 {
			category := place.Category
			if category == "" {
				category = "Visite"
			}
			activities = []string{category}
		}

		description := place.Description
		if description == "" {
			description = fmt.Sprintf("Découverte de %s", name)
		}

		itinerary = append(itinerary, recommendation.DayPlan{
			Day:           day,
			Title:         fmt.Sprintf("Jour %d: %s", day, name),
			Place:         name,
			Activities:    activities,
			Description:   description,
			EcoHighlights: PlaceEcoHighlights(place),
		})
	}

	return itinerary
}

// PlaceEcoHighlights extracts the ecological selling points of a place.
// The result is never empty: places with no certification and a low
// sustainability score get a generic engagement line.
func PlaceEcoHighlights(place entity.Entity) []string {
	var highlights []string

	if place.Certifications != "" {
		highlights = append(highlights, fmt.Sprintf("Certification: %s", place.Certifications))
	}

	switch {
	case place.SustainabilityScore >= 80:
		highlights = append(highlights, fmt.Sprintf("Très haute durabilité (%g/100)", place.SustainabilityScore))
	case place.SustainabilityScore >= 70:
		highlights = append(highlights, fmt.Sprintf("Haute durabilité (%g/100)", place.SustainabilityScore))
	}

	if len(highlights) == 0 {
		return []string{"Engagé dans le tourisme durable"}
	}
	return highlights
}
