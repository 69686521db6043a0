package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nouraboussaoud/Eco-Tourisme/internal/domain/entity"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/domain/profile"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/pkg/logger"
)

// Classifier turns quiz answers into a personality profile. Implementations
// must always succeed on well-formed answers.
type Classifier interface {
	Classify(ctx context.Context, answers map[string]string, destinations []entity.Entity) (*profile.PersonalityProfile, error)
}

// Answer-value → trip budget in euros
var budgetByAnswer = map[string]float64{
	"budget":      500,
	"moderate":    1200,
	"comfortable": 2500,
	"luxury":      4000,
}

// Answer-value → trip duration in days
var durationByAnswer = map[string]int{
	"short":    3,
	"medium":   5,
	"long":     10,
	"flexible": 5,
}

// Eco-concern answer → eco score
var ecoScoreByAnswer = map[string]float64{
	"very_high": 95,
	"high":      80,
	"moderate":  65,
	"low":       50,
}

// RuleBasedClassifier derives the profile from fixed answer mappings. It
// never fails and backs the generative classifier.
type RuleBasedClassifier struct{}

// NewRuleBasedClassifier creates the deterministic classifier
func NewRuleBasedClassifier() *RuleBasedClassifier {
	return &RuleBasedClassifier{}
}

// Classify maps the answers onto one of four personality archetypes
func (c *RuleBasedClassifier) Classify(_ context.Context, answers map[string]string, _ []entity.Entity) (*profile.PersonalityProfile, error) {
	activityPref := answerOrDefault(answers, "1", "nature")
	ecoConcern := answerOrDefault(answers, "2", "moderate")
	accommodation := answerOrDefault(answers, "3", "hotel")
	duration := answerOrDefault(answers, "4", "medium")
	budget := answerOrDefault(answers, "5", "moderate")
	transport := answerOrDefault(answers, "6", "mixed")
	priority := answerOrDefault(answers, "7", "learning")

	var personalityType, description string
	var activities []string

	switch {
	case activityPref == "adventure" && (ecoConcern == "high" || ecoConcern == "very_high"):
		personalityType = "Aventurier Écologique"
		description = "Vous aimez l'aventure tout en respectant l'environnement. Vous recherchez des expériences actives dans la nature avec un impact minimal."
		activities = []string{"Randonnée", "Escalade", "VTT", "Kayak écologique"}
	case activityPref == "culture" && priority == "learning":
		personalityType = "Explorateur Culturel"
		description = "Vous êtes passionné par la découverte de nouvelles cultures et l'apprentissage. Vous privilégiez l'authenticité et les rencontres locales."
		activities = []string{"Visite guidée", "Musée", "Atelier culinaire", "Visite historique"}
	case activityPref == "relaxation":
		personalityType = "Voyageur Zen"
		description = "Vous recherchez la détente et le bien-être. Vos vacances sont un moment de ressourcement dans un environnement paisible."
		activities = []string{"Yoga", "Spa", "Méditation", "Promenade nature"}
	default:
		personalityType = "Nature Conscient"
		description = "Vous appréciez la nature et cherchez un équilibre entre découverte et respect de l'environnement."
		activities = []string{"Observation faune", "Randonnée douce", "Visite éco-ferme", "Atelier environnement"}
	}

	activityLevel := "low"
	if activityPref == "adventure" {
		activityLevel = "high"
	} else if activityPref == "culture" || activityPref == "nature" {
		activityLevel = "medium"
	}

	budgetRange, ok := budgetByAnswer[budget]
	if !ok {
		budgetRange = budgetByAnswer["moderate"]
	}
	durationDays, ok := durationByAnswer[duration]
	if !ok {
		durationDays = durationByAnswer["medium"]
	}
	ecoScore, ok := ecoScoreByAnswer[ecoConcern]
	if !ok {
		ecoScore = ecoScoreByAnswer["moderate"]
	}

	return &profile.PersonalityProfile{
		PersonalityType:    personalityType,
		ProfileDescription: description,
		Preferences: profile.Preferences{
			ActivityLevel:       activityLevel,
			EcoPriority:         ecoConcern,
			AccommodationStyle:  accommodation,
			TransportPreference: transport,
			BudgetRange:         budgetRange,
			DurationDays:        durationDays,
		},
		RecommendedActivities: activities,
		EcoScore:              ecoScore,
		TripDurationDays:      durationDays,
		RawAnswers:            answers,
	}, nil
}

// GenerativeClassifier asks a chat-completion model to analyze the answers
// and falls back to the rule-based classifier on any failure.
type GenerativeClassifier struct {
	client   *openai.Client
	model    string
	fallback *RuleBasedClassifier
	log      *logger.Logger
}

// NewGenerativeClassifier creates a model-backed classifier. An empty model
// name selects gpt-4o-mini.
func NewGenerativeClassifier(apiKey, model string, log *logger.Logger) *GenerativeClassifier {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &GenerativeClassifier{
		client:   openai.NewClient(apiKey),
		model:    model,
		fallback: NewRuleBasedClassifier(),
		log:      log,
	}
}

type aiProfileResponse struct {
	PersonalityType    string `json:"personality_type"`
	ProfileDescription string `json:"profile_description"`
	Preferences        struct {
		ActivityLevel       string `json:"activity_level"`
		EcoPriority         string `json:"eco_priority"`
		AccommodationStyle  string `json:"accommodation_style"`
		TransportPreference string `json:"transport_preference"`
	} `json:"preferences"`
	RecommendedActivities []string `json:"recommended_activities"`
	EcoScore              float64  `json:"eco_score"`
	TripDurationDays      int      `json:"trip_duration_days"`
}

// Classify delegates to the model, degrading to the deterministic mapping
// when the call or the response parsing fails.
func (c *GenerativeClassifier) Classify(ctx context.Context, answers map[string]string, destinations []entity.Entity) (*profile.PersonalityProfile, error) {
	prompt := buildProfilePrompt(answers, destinations)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		c.log.WithError(err).Warn("generative profile analysis failed, using rule-based classifier")
		return c.fallback.Classify(ctx, answers, destinations)
	}

	parsed, err := parseProfileResponse(resp.Choices[0].Message.Content)
	if err != nil {
		c.log.WithError(err).Warn("unparseable model profile, using rule-based classifier")
		return c.fallback.Classify(ctx, answers, destinations)
	}

	// Budget and duration are derived from the raw answers: the model does
	// not see the euro amounts.
	budgetRange, ok := budgetByAnswer[answerOrDefault(answers, "5", "moderate")]
	if !ok {
		budgetRange = budgetByAnswer["moderate"]
	}
	durationDays := parsed.TripDurationDays
	if durationDays <= 0 {
		if durationDays, ok = durationByAnswer[answerOrDefault(answers, "4", "medium")]; !ok {
			durationDays = durationByAnswer["medium"]
		}
	}

	return &profile.PersonalityProfile{
		PersonalityType:    parsed.PersonalityType,
		ProfileDescription: parsed.ProfileDescription,
		Preferences: profile.Preferences{
			ActivityLevel:       parsed.Preferences.ActivityLevel,
			EcoPriority:         parsed.Preferences.EcoPriority,
			AccommodationStyle:  parsed.Preferences.AccommodationStyle,
			TransportPreference: answerOrDefault(answers, "6", "mixed"),
			BudgetRange:         budgetRange,
			DurationDays:        durationDays,
		},
		RecommendedActivities: parsed.RecommendedActivities,
		EcoScore:              parsed.EcoScore,
		TripDurationDays:      durationDays,
		RawAnswers:            answers,
	}, nil
}

// buildProfilePrompt assembles the French analysis prompt, listing the quiz
// answers and up to 20 known destinations.
func buildProfilePrompt(answers map[string]string, destinations []entity.Entity) string {
	var b strings.Builder
	b.WriteString("Tu es un expert en tourisme éco-responsable. Analyse ce profil de voyageur basé sur un test de personnalité:\n\nRéponses du test:\n")

	for _, q := range questionCatalog() {
		value, ok := answers[fmt.Sprintf("%d", q.ID)]
		if !ok {
			continue
		}
		for _, opt := range q.Options {
			if opt.Value == value {
				fmt.Fprintf(&b, "- %s: %s\n", q.Question, opt.Label)
				break
			}
		}
	}

	if len(destinations) > 0 {
		b.WriteString("\nDestinations éco-responsables disponibles dans notre système:\n")
		limit := len(destinations)
		if limit > 20 {
			limit = 20
		}
		for _, dest := range destinations[:limit] {
			fmt.Fprintf(&b, "- %s", dest.Name)
			if dest.Category != "" {
				fmt.Fprintf(&b, " (%s)", dest.Category)
			}
			fmt.Fprintf(&b, " - Score durabilité: %g/100", dest.SustainabilityScore)
			if dest.Certifications != "" {
				fmt.Fprintf(&b, " - Certifications: %s", dest.Certifications)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString(`
Réponds UNIQUEMENT avec un objet JSON valide (sans markdown) avec cette structure exacte:
{
  "personality_type": "Un type parmi: Aventurier Écologique, Explorateur Culturel, Voyageur Zen, Nature Conscient",
  "profile_description": "Description détaillée du profil (2-3 phrases)",
  "preferences": {
    "activity_level": "low/medium/high",
    "eco_priority": "low/moderate/high/very_high",
    "accommodation_style": "description",
    "transport_preference": "description"
  },
  "recommended_activities": ["activité1", "activité2", "activité3", "activité4"],
  "eco_score": 85,
  "trip_duration_days": 5
}
Réponds uniquement avec le JSON, sans texte avant ou après.
`)
	return b.String()
}

// parseProfileResponse extracts the JSON object from a model response that
// may be wrapped in fences or prose.
func parseProfileResponse(text string) (*aiProfileResponse, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in model response")
	}

	var parsed aiProfileResponse
	if err := json.Unmarshal([]byte(text[start:end+1]), &parsed); err != nil {
		return nil, fmt.Errorf("decoding model profile: %w", err)
	}
	if parsed.PersonalityType == "" {
		return nil, fmt.Errorf("model profile missing personality type")
	}
	return &parsed, nil
}

func answerOrDefault(answers map[string]string, key, fallback string) string {
	if v, ok := answers[key]; ok && v != "" {
		return v
	}
	return fallback
}
