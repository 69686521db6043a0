package engine

import (
	"github.com/nouraboussaoud/Eco-Tourisme/internal/domain/profile"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/domain/recommendation"
)

// transportModes is the static catalogue of trip-level transport options.
var transportModes = []recommendation.TransportMode{
	{Type: "Train", EcoScore: 95, Description: "Transport écologique recommandé"},
	{Type: "Vélo", EcoScore: 100, Description: "Pour les courtes distances"},
	{Type: "Voiture électrique partagée", EcoScore: 80, Description: "Option flexible écologique"},
	{Type: "Bus électrique", EcoScore: 85, Description: "Transport collectif propre"},
}

// ecoTransportThreshold is the minimum eco-score kept for eco-focused
// travelers.
const ecoTransportThreshold = 85

// TransportModes returns the transport options for an eco-priority tier.
// High and very high tiers only see the cleanest modes.
func TransportModes(ecoPriority string) []recommendation.TransportMode {
	modes := make([]recommendation.TransportMode, len(transportModes))
	copy(modes, transportModes)

	if ecoPriority != profile.EcoPriorityHigh && ecoPriority != profile.EcoPriorityVeryHigh {
		return modes
	}

	var eco []recommendation.TransportMode
	for _, m := range modes {
		if m.EcoScore >= ecoTransportThreshold {
			eco = append(eco, m)
		}
	}
	return eco
}
