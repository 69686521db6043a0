package nlq

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nouraboussaoud/Eco-Tourisme/internal/pkg/logger"
)

// Generative translates questions with a chat-completion model and falls back
// to the rule-based translator when the model call fails or returns something
// that is not a query.
type Generative struct {
	client   *openai.Client
	model    string
	fallback *RuleBased
	ns       string
	log      *logger.Logger
}

// NewGenerative creates a model-backed translator. An empty model name
// selects gpt-4o-mini.
func NewGenerative(apiKey, model, ontologyNS string, log *logger.Logger) *Generative {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &Generative{
		client:   openai.NewClient(apiKey),
		model:    model,
		fallback: NewRuleBased(ontologyNS),
		ns:       ontologyNS,
		log:      log,
	}
}

// Translate asks the model for a SPARQL query, degrading to pattern matching
// on any failure.
func (g *Generative) Translate(ctx context.Context, question string) (string, error) {
	prompt := fmt.Sprintf(`Tu es un expert en SPARQL. Convertis cette question française en requête SPARQL valide.
Utilise le namespace: %s
Les classes principales sont: Destination, Montagne, Plage, PatrimoineCulturel, Ville, Hebergement, ActiviteTouristique, Transport, EmpreinteCarbone, Contribution
Les propriétés incluent: nom, description, scoreDurabilite, certifications, prix, localiseDans, aEmpreinte, kgCO2

Question: %s

Réponds UNIQUEMENT avec la requête SPARQL, sans explications.`, g.ns, question)

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		g.log.WithError(err).Warn("generative translation failed, using pattern matching")
		return g.fallback.Translate(ctx, question)
	}

	query := cleanModelOutput(resp.Choices[0].Message.Content)
	if !looksLikeSparql(query) {
		g.log.Warn("model output is not a SPARQL query, using pattern matching")
		return g.fallback.Translate(ctx, question)
	}
	return query, nil
}

// cleanModelOutput strips markdown code fences from a model response
func cleanModelOutput(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```sparql")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func looksLikeSparql(query string) bool {
	upper := strings.ToUpper(query)
	return strings.Contains(upper, "SELECT") || strings.Contains(upper, "ASK") ||
		strings.Contains(upper, "CONSTRUCT")
}
