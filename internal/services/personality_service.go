package services

import (
	"context"

	"github.com/nouraboussaoud/Eco-Tourisme/internal/domain/entity"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/domain/profile"
	apperrors "github.com/nouraboussaoud/Eco-Tourisme/internal/pkg/errors"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/pkg/logger"
)

// PersonalityService exposes the traveler personality quiz and its analysis
type PersonalityService struct {
	classifier Classifier
	log        *logger.Logger
}

// NewPersonalityService creates the quiz service around a classifier strategy
func NewPersonalityService(classifier Classifier, log *logger.Logger) *PersonalityService {
	return &PersonalityService{
		classifier: classifier,
		log:        log,
	}
}

// Questions returns the quiz. The slice is rebuilt on every call so callers
// can not mutate shared state.
func (s *PersonalityService) Questions() []profile.Question {
	return questionCatalog()
}

// AnalyzeAnswers derives a personality profile from quiz answers. The
// destinations, when available, enrich the generative analysis.
func (s *PersonalityService) AnalyzeAnswers(ctx context.Context, answers map[string]string, destinations []entity.Entity) (*profile.PersonalityProfile, error) {
	if len(answers) == 0 {
		return nil, apperrors.BadRequest("Aucune réponse fournie")
	}

	p, err := s.classifier.Classify(ctx, answers, destinations)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(map[string]interface{}{
		"personality_type": p.PersonalityType,
		"eco_priority":     p.Preferences.EcoPriority,
	}).Info("personality profile analyzed")

	return p, nil
}

// questionCatalog returns the seven-question French personality quiz
func questionCatalog() []profile.Question {
	return []profile.Question{
		{
			ID:       1,
			Question: "Quel type d'activité vous attire le plus pendant vos vacances ?",
			Options: []profile.Option{
				{Value: "adventure", Label: "Sports extrêmes et randonnées aventureuses"},
				{Value: "culture", Label: "Visites de musées et sites historiques"},
				{Value: "relaxation", Label: "Spa, méditation et détente"},
				{Value: "nature", Label: "Observation de la faune et promenades en nature"},
			},
		},
		{
			ID:       2,
			Question: "Quel est votre niveau de préoccupation environnementale ?",
			Options: []profile.Option{
				{Value: "very_high", Label: "Très élevé - Je choisis toujours l'option la plus écologique"},
				{Value: "high", Label: "Élevé - L'environnement est important pour moi"},
				{Value: "moderate", Label: "Modéré - J'essaie de faire attention quand c'est possible"},
				{Value: "low", Label: "Faible - Ce n'est pas ma priorité principale"},
			},
		},
		{
			ID:       3,
			Question: "Quel type d'hébergement préférez-vous ?",
			Options: []profile.Option{
				{Value: "eco_lodge", Label: "Éco-lodge ou hébergement durable"},
				{Value: "local_guesthouse", Label: "Maison d'hôtes locale ou chambre chez l'habitant"},
				{Value: "hotel", Label: "Hôtel confortable avec certifications vertes"},
				{Value: "camping", Label: "Camping ou glamping en pleine nature"},
			},
		},
		{
			ID:       4,
			Question: "Quelle durée de séjour préférez-vous ?",
			Options: []profile.Option{
				{Value: "short", Label: "Court séjour (2-3 jours)"},
				{Value: "medium", Label: "Séjour moyen (4-7 jours)"},
				{Value: "long", Label: "Long séjour (8+ jours)"},
				{Value: "flexible", Label: "Flexible selon les opportunités"},
			},
		},
		{
			ID:       5,
			Question: "Quel budget envisagez-vous pour votre voyage ?",
			Options: []profile.Option{
				{Value: "budget", Label: "Économique (moins de 500€)"},
				{Value: "moderate", Label: "Modéré (500-1500€)"},
				{Value: "comfortable", Label: "Confortable (1500-3000€)"},
				{Value: "luxury", Label: "Luxueux (3000€+)"},
			},
		},
		{
			ID:       6,
			Question: "Comment préférez-vous vous déplacer en voyage ?",
			Options: []profile.Option{
				{Value: "train", Label: "Train - écologique et confortable"},
				{Value: "bike", Label: "Vélo - actif et sans émissions"},
				{Value: "car", Label: "Voiture électrique/partagée"},
				{Value: "mixed", Label: "Combinaison de moyens de transport"},
			},
		},
		{
			ID:       7,
			Question: "Qu'est-ce qui est le plus important pour vous dans un voyage ?",
			Options: []profile.Option{
				{Value: "authentic", Label: "Authenticité et contact avec les locaux"},
				{Value: "comfort", Label: "Confort et services de qualité"},
				{Value: "adventure", Label: "Aventure et nouvelles expériences"},
				{Value: "learning", Label: "Apprendre et découvrir de nouvelles cultures"},
			},
		},
	}
}
