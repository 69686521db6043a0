package fuseki

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/nouraboussaoud/Eco-Tourisme/internal/pkg/logger"
)

const testNS = "http://example.org/tourism-eco#"

func TestCatalog_Activities(t *testing.T) {
	var gotQuery string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotQuery = string(body)
		w.Write([]byte(`{
  "head": {"vars": ["activite", "nom", "type", "description"]},
  "results": {"bindings": [
    {
      "activite": {"type": "uri", "value": "http://example.org/tourism-eco#rando1"},
      "nom": {"type": "literal", "value": "Randonnée du Zaghouan"},
      "type": {"type": "uri", "value": "http://example.org/tourism-eco#Randonnee"}
    }
  ]}
}`))
	})

	log := logger.New(logger.Config{Level: "error", Format: "json"})
	catalog := NewCatalog(client, testNS, log)

	activities, err := catalog.Activities(context.Background())
	if err != nil {
		t.Fatalf("Activities() error = %v", err)
	}

	if !strings.Contains(gotQuery, "eco:ActiviteTouristique") {
		t.Errorf("query does not target the activity class hierarchy: %s", gotQuery)
	}
	if !strings.Contains(gotQuery, testNS) {
		t.Errorf("query does not carry the configured namespace")
	}

	if len(activities) != 1 {
		t.Fatalf("Activities() returned %d entities, want 1", len(activities))
	}
	got := activities[0]
	if got.Name != "Randonnée du Zaghouan" {
		t.Errorf("name = %q", got.Name)
	}
	if got.Category != "Randonnee" {
		t.Errorf("category = %q, want the type local name Randonnee", got.Category)
	}
	if got.SustainabilityScore != 50 {
		t.Errorf("sustainability = %v, want the default 50 for an unbound score", got.SustainabilityScore)
	}
}

func TestCatalog_Accommodations_DefaultsPrice(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
  "head": {"vars": ["hebergement", "nom", "scoreDurabilite", "prix"]},
  "results": {"bindings": [
    {
      "hebergement": {"type": "uri", "value": "http://example.org/tourism-eco#lodge1"},
      "nom": {"type": "literal", "value": "Ecolodge Dar Zaghouan"},
      "scoreDurabilite": {"type": "literal", "value": "91"}
    },
    {
      "hebergement": {"type": "uri", "value": "http://example.org/tourism-eco#hotel1"},
      "nom": {"type": "literal", "value": "Hôtel du Centre"},
      "scoreDurabilite": {"type": "literal", "value": "pas un nombre"},
      "prix": {"type": "literal", "value": "65"}
    }
  ]}
}`))
	})

	log := logger.New(logger.Config{Level: "error", Format: "json"})
	catalog := NewCatalog(client, testNS, log)

	accommodations, err := catalog.Accommodations(context.Background())
	if err != nil {
		t.Fatalf("Accommodations() error = %v", err)
	}
	if len(accommodations) != 2 {
		t.Fatalf("Accommodations() returned %d entities, want 2", len(accommodations))
	}

	if accommodations[0].Price != 80 {
		t.Errorf("unbound price = %v, want default 80", accommodations[0].Price)
	}
	if accommodations[0].SustainabilityScore != 91 {
		t.Errorf("sustainability = %v, want 91", accommodations[0].SustainabilityScore)
	}
	if accommodations[1].SustainabilityScore != 50 {
		t.Errorf("unparseable sustainability = %v, want default 50", accommodations[1].SustainabilityScore)
	}
	if accommodations[1].Price != 65 {
		t.Errorf("price = %v, want 65", accommodations[1].Price)
	}
}

func TestCatalog_Transports_DefaultsCO2(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
  "head": {"vars": ["transport", "nom", "kgCO2"]},
  "results": {"bindings": [
    {
      "transport": {"type": "uri", "value": "http://example.org/tourism-eco#train1"},
      "nom": {"type": "literal", "value": "Train Tunis-Sousse"},
      "kgCO2": {"type": "literal", "value": "12.5"}
    },
    {
      "transport": {"type": "uri", "value": "http://example.org/tourism-eco#bus1"},
      "nom": {"type": "literal", "value": "Bus régional"}
    }
  ]}
}`))
	})

	log := logger.New(logger.Config{Level: "error", Format: "json"})
	catalog := NewCatalog(client, testNS, log)

	transports, err := catalog.Transports(context.Background())
	if err != nil {
		t.Fatalf("Transports() error = %v", err)
	}
	if len(transports) != 2 {
		t.Fatalf("Transports() returned %d entities, want 2", len(transports))
	}
	if transports[0].CO2Kg != 12.5 {
		t.Errorf("co2 = %v, want 12.5", transports[0].CO2Kg)
	}
	if transports[1].CO2Kg != 100 {
		t.Errorf("unbound co2 = %v, want default 100", transports[1].CO2Kg)
	}
}

func TestCatalog_AddContribution(t *testing.T) {
	var gotUpdate string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotUpdate = string(body)
		w.WriteHeader(http.StatusNoContent)
	})

	log := logger.New(logger.Config{Level: "error", Format: "json"})
	catalog := NewCatalog(client, testNS, log)

	id, err := catalog.AddContribution(context.Background(), Contribution{
		Utilisateur: "amira",
		Description: `Nettoyage de la plage "El Haouaria"`,
		Quantite:    12,
		Unite:       "kg",
	})
	if err != nil {
		t.Fatalf("AddContribution() error = %v", err)
	}

	if !strings.HasPrefix(id, "contribution_") {
		t.Errorf("contribution id = %q, want contribution_ prefix", id)
	}
	if !strings.Contains(gotUpdate, "INSERT DATA") {
		t.Errorf("update is not an INSERT DATA statement: %s", gotUpdate)
	}
	if !strings.Contains(gotUpdate, `\"El Haouaria\"`) {
		t.Errorf("literal quotes not escaped in update: %s", gotUpdate)
	}
	if strings.Contains(gotUpdate, "unité") {
		t.Errorf("explicit unit should be used instead of the fallback: %s", gotUpdate)
	}
}
