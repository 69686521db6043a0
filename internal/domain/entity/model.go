package entity

import (
	"strconv"
	"strings"
)

// Documented defaults applied when a numeric attribute is absent or
// unparseable in the knowledge-store bindings.
const (
	DefaultSustainability = 50.0
	DefaultLodgingPrice   = 80.0
	DefaultTransportCO2   = 100.0
)

// Kind identifies what a knowledge-store entity represents
type Kind string

const (
	KindDestination   Kind = "destination"
	KindAccommodation Kind = "accommodation"
	KindActivity      Kind = "activity"
	KindTransport     Kind = "transport"
)

// Entity is a record retrieved from the knowledge store. Numeric fields are
// normalized at the boundary so downstream components can assume well-typed
// input.
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

	// MatchScore is attached during profile-driven activity ranking.
	MatchScore float64 `json:"match_score,omitempty"`
	// EcoMatchScore is attached by the place scorer; never persisted upstream.
	EcoMatchScore float64 `json:"eco_match_score,omitempty"`
}

// FromBinding builds an Entity of the given kind from a flat variable→value
// row, applying the documented defaults for that kind.
func FromBinding(row map[string]string, kind Kind) Entity {
	e := Entity{
		Name:           first(row, "nom", "name"),
		Description:    row["description"],
		Region:         first(row, "region", "location"),
		Certifications: first(row, "certifications", "certification"),
		Category:       LocalName(row["type"]),
	}

	switch kind {
	case KindDestination:
		e.ID = first(row, "dest", "destination", "lieu")
		e.SustainabilityScore = parseFloat(first(row, "scoreDurabilite", "scoreDurabilité"), DefaultSustainability)
	case KindAccommodation:
		e.ID = row["hebergement"]
		e.SustainabilityScore = parseFloat(first(row, "scoreDurabilite", "scoreDurabilité"), DefaultSustainability)
		e.Price = parseFloat(first(row, "prix", "price"), DefaultLodgingPrice)
	case KindActivity:
		e.ID = row["activite"]
		e.SustainabilityScore = parseFloat(first(row, "scoreDurabilite", "scoreDurabilité"), DefaultSustainability)
	case KindTransport:
		e.ID = row["transport"]
		e.CO2Kg = parseFloat(row["kgCO2"], DefaultTransportCO2)
	}

	return e
}

// LocalName strips the namespace part of a URI, keeping the fragment after
// the last '#' or '/'.
func LocalName(uri string) string {
	if i := strings.LastIndexAny(uri, "#/"); i >= 0 {
		return uri[i+1:]
	}
	return uri
}

// parseFloat parses a literal defensively, returning the fallback on any
// failure. Store values arrive as strings regardless of their RDF datatype.
func parseFloat(s string, fallback float64) float64 {
	if s == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fallback
	}
	return v
}

func first(row map[string]string, keys ...string) string {
	for _, k := range keys {
		if v, ok := row[k]; ok && v != "" {
			return v
		}
	}
	return ""
}
