package fuseki

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/nouraboussaoud/Eco-Tourisme/internal/config"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/pkg/logger"
)

const sampleResults = `{
  "head": {"vars": ["nom", "scoreDurabilite"]},
  "results": {
    "bindings": [
      {
        "nom": {"type": "literal", "value": "Parc Ichkeul"},
        "scoreDurabilite": {"type": "literal", "value": "88"}
      },
      {
        "nom": {"type": "literal", "value": "Médina de Tunis"}
      }
    ]
  }
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	log := logger.New(logger.Config{Level: "error", Format: "json"})
	client := NewClient(config.StoreConfig{
		QueryEndpoint:  server.URL + "/sparql",
		UpdateEndpoint: server.URL + "/update",
		Timeout:        5 * time.Second,
	}, log)
	return client
}

func TestClient_Query(t *testing.T) {
	var gotContentType, gotAccept, gotBody string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotAccept = r.Header.Get("Accept")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)

		w.Header().Set("Content-Type", "application/sparql-results+json")
		w.Write([]byte(sampleResults))
	})

	result, err := client.Query(context.Background(), "SELECT * WHERE { ?s ?p ?o }")
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}

	if gotContentType != "application/sparql-query" {
		t.Errorf("content type = %q, want application/sparql-query", gotContentType)
	}
	if gotAccept != "application/sparql-results+json" {
		t.Errorf("accept = %q, want application/sparql-results+json", gotAccept)
	}
	if !strings.Contains(gotBody, "SELECT") {
		t.Errorf("request body = %q, want the raw query", gotBody)
	}
	if len(result.Results.Bindings) != 2 {
		t.Errorf("Query() returned %d bindings, want 2", len(result.Results.Bindings))
	}
}

func TestClient_Query_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "parse error", http.StatusBadRequest)
	})

	_, err := client.Query(context.Background(), "not sparql")
	if err == nil {
		t.Fatal("Query() expected error on non-2xx response")
	}
}

func TestClient_Update(t *testing.T) {
	var gotPath, gotContentType string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusNoContent)
	})

	err := client.Update(context.Background(), "INSERT DATA { <a> <b> <c> }")
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if gotPath != "/update" {
		t.Errorf("update path = %q, want /update", gotPath)
	}
	if gotContentType != "application/sparql-update" {
		t.Errorf("content type = %q, want application/sparql-update", gotContentType)
	}
}

func TestClient_Ping(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"head":{"vars":["count"]},"results":{"bindings":[]}}`))
	})

	if err := client.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
}

func TestParseResults(t *testing.T) {
	result := &SelectResult{}
	result.Results.Bindings = []map[string]Term{
		{
			"nom":  {Type: "literal", Value: "Parc Ichkeul"},
			"type": {Type: "uri", Value: "http://example.org/eco#Randonnee"},
		},
		{
			"nom": {Type: "literal", Value: "Spa Korbous"},
		},
	}

	rows := ParseResults(result)

	if len(rows) != 2 {
		t.Fatalf("ParseResults() returned %d rows, want 2", len(rows))
	}
	if rows[0]["nom"] != "Parc Ichkeul" {
		t.Errorf("row 0 nom = %q", rows[0]["nom"])
	}
	if _, ok := rows[1]["type"]; ok {
		t.Error("unbound variable should be absent from its row")
	}
}

func TestParseResults_Nil(t *testing.T) {
	if rows := ParseResults(nil); rows != nil {
		t.Errorf("ParseResults(nil) = %v, want nil", rows)
	}
}

func TestEscapeLiteral(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: `plain`, want: `plain`},
		{in: `with "quotes"`, want: `with \"quotes\"`},
		{in: `back\slash`, want: `back\\slash`},
		{in: "line\nbreak", want: `line\nbreak`},
	}

	for _, tt := range tests {
		if got := escapeLiteral(tt.in); got != tt.want {
			t.Errorf("escapeLiteral(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
