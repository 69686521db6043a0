// Package nlq translates French natural-language questions into SPARQL
// queries over the tourism ontology.
package nlq

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// QueryType classifies a natural-language question
type QueryType string

const (
	QueryDestinations   QueryType = "destinations"
	QueryAccommodations QueryType = "hebergements"
	QueryActivities     QueryType = "activites"
	QueryTransports     QueryType = "transports"
	QueryCertifications QueryType = "certifications"
	QueryContributions  QueryType = "contributions"
	QueryGeneric        QueryType = "generic"
)

// Translator converts a French question into a SPARQL query
type Translator interface {
	Translate(ctx context.Context, question string) (string, error)
}

type pattern struct {
	re        *regexp.Regexp
	queryType QueryType
}

// Question patterns, checked in order; first match wins
var queryPatterns = []pattern{
	{regexp.MustCompile(`(?i)destination|où aller|lieux? à visiter|endroits?`), QueryDestinations},
	{regexp.MustCompile(`(?i)hébergements?|hôtels?|gîtes?|campings?|logements?|dormir`), QueryAccommodations},
	{regexp.MustCompile(`(?i)activités?|randonnées?|visites?|ateliers?|que faire`), QueryActivities},
	{regexp.MustCompile(`(?i)transports?|trains?|bus|se déplacer|vélos?`), QueryTransports},
	{regexp.MustCompile(`(?i)certifications?|labels?|écolabels?`), QueryCertifications},
	{regexp.MustCompile(`(?i)contributions?|participations?`), QueryContributions},
}

// knownCities are looked up in questions for destination filtering
var knownCities = []string{
	"tunis", "sousse", "sfax", "bizerte", "tozeur", "zaghouan",
	"djerba", "tabarka", "hammamet", "kairouan",
}

// RuleBased translates questions with regex patterns and fixed SPARQL
// templates. It always produces a query; unrecognized questions get a generic
// subject-predicate-object listing.
type RuleBased struct {
	ns string
}

// NewRuleBased creates a pattern-matching translator for an ontology namespace
func NewRuleBased(ontologyNS string) *RuleBased {
	return &RuleBased{ns: ontologyNS}
}

// Translate converts the question. The error is always nil; the signature
// matches the generative variant.
func (t *RuleBased) Translate(_ context.Context, question string) (string, error) {
	queryType := DetectQueryType(question)
	city := ExtractCity(question)
	return t.Build(queryType, city), nil
}

// DetectQueryType classifies a question against the pattern table
func DetectQueryType(question string) QueryType {
	lower := strings.ToLower(question)
	for _, p := range queryPatterns {
		if p.re.MatchString(lower) {
			return p.queryType
		}
	}
	return QueryGeneric
}

// ExtractCity finds a known city name in the question, capitalized, or ""
func ExtractCity(question string) string {
	lower := strings.ToLower(question)
	for _, city := range knownCities {
		if strings.Contains(lower, city) {
			return strings.ToUpper(city[:1]) + city[1:]
		}
	}
	return ""
}

// Build assembles the SPARQL query for a query type. The city parameter only
// applies to destination queries.
func (t *RuleBased) Build(queryType QueryType, city string) string {
	switch queryType {
	case QueryDestinations:
		if city != "" {
			return fmt.Sprintf(`PREFIX eco: <%s>
PREFIX rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#>
PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>
SELECT ?dest ?nom ?description ?scoreDurabilite
WHERE {
  ?dest rdf:type ?type .
  FILTER(?type IN (eco:Destination, eco:Montagne, eco:Plage, eco:PatrimoineCulturel, eco:Ville))
  ?dest rdfs:label ?nom .
  OPTIONAL { ?dest eco:description ?description }
  OPTIONAL { ?dest eco:scoreDurabilite ?scoreDurabilite }
  ?dest eco:localiseDans ?region .
  ?region eco:nom "%s" .
}`, t.ns, city)
		}
		return fmt.Sprintf(`PREFIX eco: <%s>
PREFIX rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#>
PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>
SELECT ?dest ?nom ?description ?scoreDurabilite
WHERE {
  ?dest rdf:type ?type .
  FILTER(?type IN (eco:Destination, eco:Montagne, eco:Plage, eco:PatrimoineCulturel, eco:Ville))
  ?dest rdfs:label ?nom .
  OPTIONAL { ?dest eco:description ?description }
  OPTIONAL { ?dest eco:scoreDurabilite ?scoreDurabilite }
}`, t.ns)

	case QueryAccommodations:
		return fmt.Sprintf(`PREFIX eco: <%s>
PREFIX rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#>
PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>
SELECT ?hebergement ?nom ?scoreDurabilite ?prix
WHERE {
  ?hebergement rdf:type ?type .
  ?type rdfs:subClassOf+ eco:Hebergement .
  ?hebergement eco:nom ?nom .
  OPTIONAL { ?hebergement eco:scoreDurabilite ?scoreDurabilite }
  OPTIONAL { ?hebergement eco:prix ?prix }
}`, t.ns)

	case QueryActivities:
		return fmt.Sprintf(`PREFIX eco: <%s>
PREFIX rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#>
PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>
SELECT ?activite ?nom ?description
WHERE {
  ?activite rdf:type ?type .
  ?type rdfs:subClassOf+ eco:ActiviteTouristique .
  ?activite eco:nom ?nom .
  OPTIONAL { ?activite eco:description ?description }
}`, t.ns)

	case QueryTransports:
		return fmt.Sprintf(`PREFIX eco: <%s>
PREFIX rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#>
PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>
SELECT ?transport ?nom ?kgCO2
WHERE {
  ?transport rdf:type ?type .
  ?type rdfs:subClassOf+ eco:Transport .
  ?transport eco:nom ?nom .
  OPTIONAL {
    ?transport eco:aEmpreinte ?empreinte .
    ?empreinte eco:kgCO2 ?kgCO2 .
  }
}
ORDER BY ?kgCO2`, t.ns)

	case QueryCertifications:
		return fmt.Sprintf(`PREFIX eco: <%s>
PREFIX rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#>
SELECT DISTINCT ?sujet ?nom ?certifications
WHERE {
  ?sujet eco:certifications ?certifications .
  OPTIONAL { ?sujet eco:nom ?nom }
}`, t.ns)

	case QueryContributions:
		return fmt.Sprintf(`PREFIX eco: <%s>
PREFIX rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#>
SELECT ?contribution ?description ?date ?utilisateur
WHERE {
  ?contribution rdf:type eco:Contribution .
  OPTIONAL { ?contribution eco:description ?description }
  OPTIONAL { ?contribution eco:dateCreation ?date }
  OPTIONAL { ?contribution eco:utilisateur ?utilisateur }
}`, t.ns)

	default:
		return fmt.Sprintf(`PREFIX eco: <%s>
SELECT ?subject ?predicate ?object
WHERE {
  ?subject ?predicate ?object .
}
LIMIT 100`, t.ns)
	}
}
