// Package fuseki implements the SPARQL knowledge-store access layer over an
// Apache Jena Fuseki dataset.
package fuseki

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/nouraboussaoud/Eco-Tourisme/internal/config"
	apperrors "github.com/nouraboussaoud/Eco-Tourisme/internal/pkg/errors"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/pkg/logger"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/pkg/metrics"
)

// Term is one RDF term in a SPARQL JSON results binding
type Term struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	Datatype string `json:"datatype,omitempty"`
	Lang     string `json:"xml:lang,omitempty"`
}

// SelectResult is the SPARQL 1.1 JSON results document for SELECT queries
type SelectResult struct {
	Head struct {
		Vars []string `json:"vars"`
	} `json:"head"`
	Results struct {
		Bindings []map[string]Term `json:"bindings"`
	} `json:"results"`
}

// Client talks to a Fuseki dataset over its query and update endpoints
type Client struct {
	queryEndpoint  string
	updateEndpoint string
	httpClient     *http.Client
	log            *logger.Logger
}

// NewClient creates a Fuseki client from the store configuration
func NewClient(cfg config.StoreConfig, log *logger.Logger) *Client {
	return &Client{
		queryEndpoint:  cfg.QueryEndpoint,
		updateEndpoint: cfg.UpdateEndpoint,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		log: log,
	}
}

// Query executes a SPARQL SELECT query and returns the parsed result document
func (c *Client) Query(ctx context.Context, sparql string) (*SelectResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.queryEndpoint, bytes.NewBufferString(sparql))
	if err != nil {
		return nil, apperrors.StoreQuery(err)
	}
	req.Header.Set("Content-Type", "application/sparql-query")
	req.Header.Set("Accept", "application/sparql-results+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordStoreQuery("select", "error")
		return nil, apperrors.StoreQuery(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.RecordStoreQuery("select", "error")
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, apperrors.StoreQuery(fmt.Errorf("fuseki returned status %d: %s", resp.StatusCode, string(body)))
	}

	var result SelectResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		metrics.RecordStoreQuery("select", "error")
		return nil, apperrors.StoreQuery(fmt.Errorf("decoding results: %w", err))
	}

	metrics.RecordStoreQuery("select", "ok")
	return &result, nil
}

// Update executes a SPARQL UPDATE statement against the update endpoint
func (c *Client) Update(ctx context.Context, sparql string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.updateEndpoint, bytes.NewBufferString(sparql))
	if err != nil {
		return apperrors.StoreUpdate(err)
	}
	req.Header.Set("Content-Type", "application/sparql-update")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordStoreQuery("update", "error")
		return apperrors.StoreUpdate(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.RecordStoreQuery("update", "error")
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return apperrors.StoreUpdate(fmt.Errorf("fuseki returned status %d: %s", resp.StatusCode, string(body)))
	}

	metrics.RecordStoreQuery("update", "ok")
	return nil
}

// Ping checks that the store answers a trivial query
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Query(ctx, "SELECT (COUNT(*) AS ?count) WHERE { ?s ?p ?o } LIMIT 1")
	return err
}

// ParseResults flattens a SELECT result document into variable→value rows.
// Unbound variables are simply absent from their row.
func ParseResults(result *SelectResult) []map[string]string {
	if result == nil {
		return nil
	}
	rows := make([]map[string]string, 0, len(result.Results.Bindings))
	for _, binding := range result.Results.Bindings {
		row := make(map[string]string, len(binding))
		for variable, term := range binding {
			row[variable] = term.Value
		}
		rows = append(rows, row)
	}
	return rows
}
