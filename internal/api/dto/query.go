package dto

// QueryRequest is a natural-language question over the knowledge store
type QueryRequest struct {
	Question string `json:"question" validate:"required,min=3"`
}

// QueryResponse carries the translated query and its results
type QueryResponse struct {
	Question        string              `json:"question"`
	SparqlQuery     string              `json:"sparql_query"`
	Results         []map[string]string `json:"results"`
	Count           int                 `json:"count"`
	ExecutionTimeMs int64               `json:"execution_time_ms"`
}

// SparqlRequest is a raw SPARQL SELECT query
type SparqlRequest struct {
	Query string `json:"query" validate:"required,min=10"`
}

// SparqlResponse carries the results of a raw query
type SparqlResponse struct {
	Results         []map[string]string `json:"results"`
	Count           int                 `json:"count"`
	ExecutionTimeMs int64               `json:"execution_time_ms"`
}

// ContributionRequest is a community contribution to record in the ontology
type ContributionRequest struct {
	Utilisateur string  `json:"utilisateur" validate:"required,min=2,max=100"`
	Description string  `json:"description" validate:"required,min=5,max=500"`
	Type        string  `json:"type,omitempty"`
	Quantite    float64 `json:"quantite" validate:"gte=0"`
	Unite       string  `json:"unite,omitempty"`
}
