package profile

// Eco-priority tiers, ordered from least to most demanding
const (
	EcoPriorityLow      = "low"
	EcoPriorityModerate = "moderate"
	EcoPriorityHigh     = "high"
	EcoPriorityVeryHigh = "very_high"
)

// Traveler profile identifiers used by the compatibility matrix
const (
	ProfileAdventure = "Adventure"
	ProfileCulture   = "Culture"
	ProfileBienEtre  = "BienEtre"
	ProfileFamille   = "Famille"
)

// TravelerProfile is the read-only descriptor consumed by the engine for
// single-destination recommendations.
type TravelerProfile struct {
	ProfileID           string  `json:"profile_id"`
	EcoPriority         string  `json:"eco_priority"`
	Budget              float64 `json:"budget"`
	DurationDays        int     `json:"duration_days"`
	TransportPreference string  `json:"transport_preference"`
}

// Preferences holds the preference block produced by the personality analyzer
type Preferences struct {
	ActivityLevel       string  `json:"activity_level"`
	EcoPriority         string  `json:"eco_priority"`
	AccommodationStyle  string  `json:"accommodation_style"`
	TransportPreference string  `json:"transport_preference"`
	BudgetRange         float64 `json:"budget_range"`
	DurationDays        int     `json:"duration_days"`
}

// PersonalityProfile is the analyzer output consumed by the package generator
type PersonalityProfile struct {
	PersonalityType       string            `json:"personality_type"`
	ProfileDescription    string            `json:"profile_description"`
	Preferences           Preferences       `json:"preferences"`
	RecommendedActivities []string          `json:"recommended_activities"`
	EcoScore              float64           `json:"eco_score"`
	TripDurationDays      int               `json:"trip_duration_days"`
	RawAnswers            map[string]string `json:"raw_answers,omitempty"`
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

// CatalogEntry describes one of the static traveler profiles exposed to
// clients for the single-destination recommendation mode.
type CatalogEntry struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Preferences []string `json:"preferences"`
}

// Catalog returns the static traveler profiles. The slice is rebuilt on every
// call so callers can not mutate shared state.
func Catalog() []CatalogEntry {
	return []CatalogEntry{
		{
			ID:          ProfileAdventure,
			Name:        "Aventurier",
			Description: "Préfère les activités sportives et la nature",
			Preferences: []string{"Randonnée", "Plongée", "Activités sportives"},
		},
		{
			ID:          ProfileCulture,
			Name:        "Culturel",
			Description: "Intéressé par la culture et le patrimoine",
			Preferences: []string{"Musées", "Visites historiques", "Ateliers d'artisanat"},
		},
		{
			ID:          ProfileBienEtre,
			Name:        "Bien-Être",
			Description: "Cherche relaxation et détente",
			Preferences: []string{"Spa", "Méditation", "Activités de détente"},
		},
		{
			ID:          ProfileFamille,
			Name:        "Famille",
			Description: "Voyage en famille",
			Preferences: []string{"Activités ludiques", "Lieux adaptés aux enfants"},
		},
	}
}
