package recommendation

import "github.com/nouraboussaoud/Eco-Tourisme/internal/domain/entity"

// Carbon impact levels
const (
	CarbonLevelLow    = "Faible"
	CarbonLevelMedium = "Moyen"
	CarbonLevelHigh   = "Élevé"
)

// CarbonScore is the qualitative and numeric rating of a CO2 quantity.
// It is derived, stateless and recomputed on every call.
type CarbonScore struct {
	Level string  `json:"level"`
	Score float64 `json:"score"`
	KgCO2 float64 `json:"kg_co2"`
}

// TransportOption is a transport entity with its carbon rating attached
type TransportOption struct {
	entity.Entity
	Carbon CarbonScore `json:"carbon"`
}

// Recommendation is the single-destination recommendation (Mode A).
// Constructed fresh per request, never persisted.
type Recommendation struct {
	Profile             string           `json:"profile"`
	Destination         string           `json:"destination"`
	DurationDays        int              `json:"duration_days"`
	RecommendationScore float64          `json:"recommendation_score"`
	Activities          []entity.Entity  `json:"activities"`
	Accommodation       *entity.Entity   `json:"accommodation"`
	Transport           *TransportOption `json:"transport"`
	TotalCarbonKg       float64          `json:"total_carbon_kg"`
	Budget              float64          `json:"budget"`
	EcoFriendly         bool             `json:"eco_friendly"`
	Reasons             []string         `json:"reasons"`
}

// CostBreakdown aggregates per-category costs for a trip package
type CostBreakdown struct {
	Accommodation float64 `json:"accommodation"`
	Activities    float64 `json:"activities"`
	Transport     float64 `json:"transport"`
	Meals         float64 `json:"meals"`
	Total         float64 `json:"total"`
}

// DayPlan is one itinerary entry
type DayPlan struct {
	Day           int      `json:"day"`
	Title         string   `json:"title"`
	Place         string   `json:"place"`
	Activities    []string `json:"activities"`
	Description   string   `json:"description"`
	EcoHighlights []string `json:"eco_highlights"`
}

// TransportMode is a static transport recommendation entry
type TransportMode struct {
	Type        string  `json:"type"`
	EcoScore    float64 `json:"eco_score"`
	Description string  `json:"description"`
}

// TripPackage is the personality-driven full trip package (Mode B).
// Destinations are mandatory; accommodations are optional and may be empty.
type TripPackage struct {
	PackageName              string          `json:"package_name"`
	PersonalityType          string          `json:"personality_type"`
	Description              string          `json:"description"`
	DurationDays             int             `json:"duration_days"`
	TotalBudget              float64         `json:"total_budget"`
	Breakdown                CostBreakdown   `json:"breakdown"`
	EcoScore                 float64         `json:"eco_score"`
	Itinerary                []DayPlan       `json:"itinerary"`
	Places                   []entity.Entity `json:"places"`
	Accommodations           []entity.Entity `json:"accommodations"`
	TransportRecommendations []TransportMode `json:"transport_recommendations"`
	SustainabilityHighlights []string        `json:"sustainability_highlights"`
}

// TransportCarbon is the result of the transport carbon calculator
type TransportCarbon struct {
	Transport    string              `json:"transport"`
	DistanceKm   float64             `json:"distance_km"`
	TotalCO2Kg   float64             `json:"total_co2_kg"`
	CarbonLevel  string              `json:"carbon_level"`
	CarbonScore  float64             `json:"carbon_score"`
	Alternatives []CarbonAlternative `json:"alternatives"`
}

// CarbonAlternative is a lower-carbon substitute for a transport choice
type CarbonAlternative struct {
	Transport string  `json:"transport"`
	CO2Kg     float64 `json:"co2_kg"`
	Savings   float64 `json:"savings"`
}

// PackageScore is the normalized rating of one package in a comparison
type PackageScore struct {
	Profile         string  `json:"profile"`
	EcoScore        float64 `json:"eco_score"`
	ValueScore      float64 `json:"value_score"`
	ExperienceScore float64 `json:"experience_score"`
	TotalScore      float64 `json:"total_score"`
}

// Comparison ranks several recommendations against each other
type Comparison struct {
	Packages       []PackageScore `json:"packages"`
	BestEco        *PackageScore  `json:"best_eco"`
	BestValue      *PackageScore  `json:"best_value"`
	BestExperience *PackageScore  `json:"best_experience"`
}
