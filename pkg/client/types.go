package client

// Entity is a destination, accommodation, activity or transport from the
// knowledge store. Field names mirror the French ontology attributes.
type Entity struct {
	ID                  string   `json:"id,omitempty"`
	Name                string   `json:"nom"`
	Category            string   `json:"type,omitempty"`
	Description         string   `json:"description,omitempty"`
	Region              string   `json:"region,omitempty"`
	Certifications      string   `json:"certifications,omitempty"`
	SustainabilityScore float64  `json:"scoreDurabilite"`
	Price               float64  `json:"prix,omitempty"`
	CO2Kg               float64  `json:"kgCO2,omitempty"`
	Activities          []string `json:"activities,omitempty"`
	MatchScore          float64  `json:"match_score,omitempty"`
	EcoMatchScore       float64  `json:"eco_match_score,omitempty"`
}

// ProfileEntry describes one of the static traveler profiles
type ProfileEntry struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Preferences []string `json:"preferences"`
}

// CarbonScore is the qualitative and numeric rating of a CO2 quantity
type CarbonScore struct {
	Level string  `json:"level"`
	Score float64 `json:"score"`
	KgCO2 float64 `json:"kg_co2"`
}

// TransportOption is a transport entity with its carbon rating attached
type TransportOption struct {
	Entity
	Carbon CarbonScore `json:"carbon"`
}

// Recommendation is a single-destination recommendation
type Recommendation struct {
	Profile             string           `json:"profile"`
	Destination         string           `json:"destination"`
	DurationDays        int              `json:"duration_days"`
	RecommendationScore float64          `json:"recommendation_score"`
	Activities          []Entity         `json:"activities"`
	Accommodation       *Entity          `json:"accommodation"`
	Transport           *TransportOption `json:"transport"`
	TotalCarbonKg       float64          `json:"total_carbon_kg"`
	Budget              float64          `json:"budget"`
	EcoFriendly         bool             `json:"eco_friendly"`
	Reasons             []string         `json:"reasons"`
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

// Question is a personality quiz question
type Question struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Options  []Option `json:"options"`
}

// Option is one selectable quiz answer
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Preferences holds the preference block of a personality profile
type Preferences struct {
	ActivityLevel       string  `json:"activity_level"`
	EcoPriority         string  `json:"eco_priority"`
	AccommodationStyle  string  `json:"accommodation_style"`
	TransportPreference string  `json:"transport_preference"`
	BudgetRange         float64 `json:"budget_range"`
	DurationDays        int     `json:"duration_days"`
}

// PersonalityProfile is the result of the quiz analysis
type PersonalityProfile struct {
	PersonalityType       string            `json:"personality_type"`
	ProfileDescription    string            `json:"profile_description"`
	Preferences           Preferences       `json:"preferences"`
	RecommendedActivities []string          `json:"recommended_activities"`
	EcoScore              float64           `json:"eco_score"`
	TripDurationDays      int               `json:"trip_duration_days"`
	RawAnswers            map[string]string `json:"raw_answers,omitempty"`
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

// TripPackage is a personality-driven full trip package
type TripPackage struct {
	PackageName              string          `json:"package_name"`
	PersonalityType          string          `json:"personality_type"`
	Description              string          `json:"description"`
	DurationDays             int             `json:"duration_days"`
	TotalBudget              float64         `json:"total_budget"`
	Breakdown                CostBreakdown   `json:"breakdown"`
	EcoScore                 float64         `json:"eco_score"`
	Itinerary                []DayPlan       `json:"itinerary"`
	Places                   []Entity        `json:"places"`
	Accommodations           []Entity        `json:"accommodations"`
	TransportRecommendations []TransportMode `json:"transport_recommendations"`
	SustainabilityHighlights []string        `json:"sustainability_highlights"`
}

// QueryResult carries the results of a natural-language query
type QueryResult struct {
	Question        string              `json:"question"`
	SparqlQuery     string              `json:"sparql_query"`
	Results         []map[string]string `json:"results"`
	Count           int                 `json:"count"`
	ExecutionTimeMs int64               `json:"execution_time_ms"`
}

// SparqlResult carries the results of a raw SPARQL query
type SparqlResult struct {
	Results         []map[string]string `json:"results"`
	Count           int                 `json:"count"`
	ExecutionTimeMs int64               `json:"execution_time_ms"`
}
