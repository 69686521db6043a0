package dto

// GenerateRecommendationRequest asks for a single-destination recommendation
type GenerateRecommendationRequest struct {
	Profile             string  `json:"profile" validate:"required,oneof=Adventure Culture BienEtre Famille"`
	Destination         string  `json:"destination,omitempty"`
	Budget              float64 `json:"budget" validate:"gte=0"`
	DurationDays        int     `json:"duration_days" validate:"gte=0,lte=60"`
	EcoPriority         string  `json:"eco_priority,omitempty" validate:"omitempty,oneof=low moderate high very_high"`
	TransportPreference string  `json:"transport_preference,omitempty"`
	CarbonPriority      bool    `json:"carbon_priority"`
}

// CarbonCalculatorRequest asks for the footprint of a transport over a distance
type CarbonCalculatorRequest struct {
	Transport  string  `json:"transport" validate:"required"`
	DistanceKm float64 `json:"distance_km" validate:"required,gt=0"`
}

// CompareRequest asks for a side-by-side comparison of recommendations
// generated for several traveler profiles under the same trip parameters
type CompareRequest struct {
	Profiles       []string `json:"profiles" validate:"required,min=2,max=4,dive,oneof=Adventure Culture BienEtre Famille"`
	Destination    string   `json:"destination,omitempty"`
	Budget         float64  `json:"budget" validate:"gte=0"`
	DurationDays   int      `json:"duration_days" validate:"gte=0,lte=60"`
	CarbonPriority bool     `json:"carbon_priority"`
}
