package nlq

import (
	"context"
	"strings"
	"testing"
)

const testNS = "http://example.org/tourism-eco#"

func TestDetectQueryType(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     QueryType
	}{
		{name: "destinations", question: "Quelles destinations puis-je visiter ?", want: QueryDestinations},
		{name: "places to visit", question: "Quels sont les lieux à visiter ?", want: QueryDestinations},
		{name: "accommodations", question: "Où trouver des hébergements écologiques ?", want: QueryAccommodations},
		{name: "hotels", question: "Quels hôtels sont certifiés ?", want: QueryAccommodations},
		{name: "activities", question: "Quelles activités sont proposées ?", want: QueryActivities},
		{name: "what to do", question: "Que faire à Tozeur ?", want: QueryActivities},
		{name: "transports", question: "Comment se déplacer entre les villes ?", want: QueryTransports},
		{name: "certifications", question: "Quels labels écologiques existent ?", want: QueryCertifications},
		{name: "contributions", question: "Quelles sont les contributions récentes ?", want: QueryContributions},
		{name: "unrecognized", question: "Bonjour, comment ça va ?", want: QueryGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectQueryType(tt.question)
			if got != tt.want {
				t.Errorf("DetectQueryType(%q) = %v, want %v", tt.question, got, tt.want)
			}
		})
	}
}

func TestExtractCity(t *testing.T) {
	tests := []struct {
		question string
		want     string
	}{
		{question: "Quelles destinations près de Tunis ?", want: "Tunis"},
		{question: "que visiter à tozeur", want: "Tozeur"},
		{question: "Hébergements à Djerba", want: "Djerba"},
		{question: "Quelles destinations ?", want: ""},
	}

	for _, tt := range tests {
		if got := ExtractCity(tt.question); got != tt.want {
			t.Errorf("ExtractCity(%q) = %q, want %q", tt.question, got, tt.want)
		}
	}
}

func TestRuleBased_Translate(t *testing.T) {
	translator := NewRuleBased(testNS)

	tests := []struct {
		name     string
		question string
		contains []string
		excludes []string
	}{
		{
			name:     "destination query with city filter",
			question: "Quelles destinations à Zaghouan ?",
			contains: []string{"eco:Destination", `eco:nom "Zaghouan"`, "eco:localiseDans"},
		},
		{
			name:     "destination query without city",
			question: "Quelles destinations recommandez-vous ?",
			contains: []string{"eco:Destination", "rdfs:label"},
			excludes: []string{"localiseDans"},
		},
		{
			name:     "accommodation query targets the lodging hierarchy",
			question: "Quels hébergements durables ?",
			contains: []string{"eco:Hebergement", "scoreDurabilite", "prix"},
		},
		{
			name:     "transport query orders by footprint",
			question: "Quels transports sont disponibles ?",
			contains: []string{"eco:Transport", "ORDER BY ?kgCO2"},
		},
		{
			name:     "unrecognized question gets generic listing",
			question: "42",
			contains: []string{"?subject ?predicate ?object", "LIMIT 100"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := translator.Translate(context.Background(), tt.question)
			if err != nil {
				t.Fatalf("Translate() error = %v", err)
			}
			if !strings.Contains(got, testNS) {
				t.Errorf("query does not carry the configured namespace:\n%s", got)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("query missing %q:\n%s", want, got)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(got, unwanted) {
					t.Errorf("query unexpectedly contains %q:\n%s", unwanted, got)
				}
			}
		})
	}
}

func TestCleanModelOutput(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "SELECT * WHERE { ?s ?p ?o }", want: "SELECT * WHERE { ?s ?p ?o }"},
		{name: "fenced", in: "```sparql\nSELECT * WHERE { ?s ?p ?o }\n```", want: "SELECT * WHERE { ?s ?p ?o }"},
		{name: "bare fence", in: "```\nSELECT 1\n```", want: "SELECT 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanModelOutput(tt.in); got != tt.want {
				t.Errorf("cleanModelOutput() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLooksLikeSparql(t *testing.T) {
	if !looksLikeSparql("PREFIX eco: <x>\nSELECT ?s WHERE { ?s ?p ?o }") {
		t.Error("SELECT query not recognized")
	}
	if looksLikeSparql("Je ne peux pas répondre à cette question.") {
		t.Error("prose should not be recognized as a query")
	}
}
