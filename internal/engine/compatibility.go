package engine

// compatibilityMatrix scores (traveler profile × activity category) pairs.
// Categories are the local names of the ontology activity classes.
var compatibilityMatrix = map[string]map[string]float64{
	"Adventure": {
		"ActiviteSportive":   100,
		"Randonnee":          100,
		"Plongee":            90,
		"ActiviteEducative":  40,
		"ActiviteCulturelle": 30,
		"ActiviteDetente":    20,
	},
	"Culture": {
		"ActiviteCulturelle": 100,
		"VisiteHistorique":   100,
		"Musee":              95,
		"ActiviteEducative":  80,
		"Atelier_culinaire":  70,
		"ActiviteSportive":   30,
		"Randonnee":          20,
	},
	"BienEtre": {
		"ActiviteDetente":    100,
		"Spa":                100,
		"Meditation":         95,
		"ActiviteEducative":  60,
		"ActiviteCulturelle": 50,
		"ActiviteSportive":   30,
	},
	"Famille": {
		"ActiviteEducative":  100,
		"Atelier_culinaire":  90,
		"ActiviteCulturelle": 85,
		"ActiviteDetente":    70,
		"ActiviteSportive":   60,
	},
}

// neutralMatchScore is returned for any unknown (profile, category) pair
const neutralMatchScore = 50

// MatchScore returns the compatibility (0–100) between a traveler profile and
// an activity category. Unknown profiles or categories score a neutral 50.
func MatchScore(travelerProfile, activityCategory string) float64 {
	categories, ok := compatibilityMatrix[travelerProfile]
	if !ok {
		return neutralMatchScore
	}
	score, ok := categories[activityCategory]
	if !ok {
		return neutralMatchScore
	}
	return score
}
