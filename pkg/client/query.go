package client

import "context"

// QueryService handles knowledge store query API calls
type QueryService struct {
	client *Client
}

// ContributionRequest is a community contribution to record
type ContributionRequest struct {
	Utilisateur string  `json:"utilisateur"`
	Description string  `json:"description"`
	Type        string  `json:"type,omitempty"`
	Quantite    float64 `json:"quantite"`
	Unite       string  `json:"unite,omitempty"`
}

// Ask answers a French natural-language question
func (s *QueryService) Ask(ctx context.Context, question string) (*QueryResult, error) {
	var result QueryResult
	req := map[string]string{"question": question}
	if err := s.client.doRequest(ctx, "POST", "/api/v1/query", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Sparql runs a raw SPARQL SELECT query
func (s *QueryService) Sparql(ctx context.Context, query string) (*SparqlResult, error) {
	var result SparqlResult
	req := map[string]string{"query": query}
	if err := s.client.doRequest(ctx, "POST", "/api/v1/sparql", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Contribute records a community contribution and returns its identifier
func (s *QueryService) Contribute(ctx context.Context, req ContributionRequest) (string, error) {
	var result struct {
		ID string `json:"id"`
	}
	if err := s.client.doRequest(ctx, "POST", "/api/v1/contribution", req, &result); err != nil {
		return "", err
	}
	return result.ID, nil
}
