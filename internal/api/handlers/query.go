package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/nouraboussaoud/Eco-Tourisme/internal/api/dto"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/nlq"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/pkg/errors"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/pkg/logger"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/pkg/utils"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/pkg/validator"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/store/fuseki"
)

// QueryHandler answers natural-language questions over the knowledge store
type QueryHandler struct {
	translator nlq.Translator
	store      *fuseki.Client
	logger     *logger.Logger
	validator  *validator.Validator
}

// NewQueryHandler creates a new query handler
func NewQueryHandler(translator nlq.Translator, store *fuseki.Client, log *logger.Logger, val *validator.Validator) *QueryHandler {
	return &QueryHandler{translator: translator, store: store, logger: log, validator: val}
}

// Ask translates a French question into SPARQL and executes it
// @Summary Ask a natural-language question
// @Description Translate a French question into SPARQL, run it and return the results
// @Tags Query
// @Accept json
// @Produce json
// @Param request body dto.QueryRequest true "Question"
// @Success 200 {object} dto.QueryResponse "Query results"
// @Failure 400 {object} utils.ErrorResponse "Invalid request or validation error"
// @Failure 502 {object} utils.ErrorResponse "Knowledge store unavailable"
// @Router /query [post]
func (h *QueryHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req dto.QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if errs := h.validator.Validate(req); len(errs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", errs))
		return
	}

	sparql, err := h.translator.Translate(r.Context(), req.Question)
	if err != nil {
		utils.WriteError(w, errors.UpstreamFetch("translator", err))
		return
	}

	start := time.Now()
	result, err := h.store.Query(r.Context(), sparql)
	if err != nil {
		writeServiceError(w, err, "Failed to execute query")
		return
	}

	rows := fuseki.ParseResults(result)
	h.logger.WithFields(map[string]interface{}{
		"question": req.Question,
		"count":    len(rows),
	}).Info("Natural-language query answered")

	utils.WriteSuccess(w, http.StatusOK, dto.QueryResponse{
		Question:        req.Question,
		SparqlQuery:     sparql,
		Results:         rows,
		Count:           len(rows),
		ExecutionTimeMs: time.Since(start).Milliseconds(),
	})
}

// Execute runs a raw SPARQL SELECT query
// @Summary Execute a SPARQL query
// @Description Run a raw SPARQL SELECT query against the knowledge store
// @Tags Query
// @Accept json
// @Produce json
// @Param request body dto.SparqlRequest true "SPARQL query"
// @Success 200 {object} dto.SparqlResponse "Query results"
// @Failure 400 {object} utils.ErrorResponse "Invalid request or write query"
// @Failure 502 {object} utils.ErrorResponse "Knowledge store unavailable"
// @Router /sparql [post]
func (h *QueryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	var req dto.SparqlRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if errs := h.validator.Validate(req); len(errs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", errs))
		return
	}

	// The raw endpoint is read-only; contributions go through their own route.
	if isWriteQuery(req.Query) {
		utils.WriteError(w, errors.BadRequest("Only SELECT queries are allowed on this endpoint"))
		return
	}

	start := time.Now()
	result, err := h.store.Query(r.Context(), req.Query)
	if err != nil {
		writeServiceError(w, err, "Failed to execute query")
		return
	}

	rows := fuseki.ParseResults(result)
	utils.WriteSuccess(w, http.StatusOK, dto.SparqlResponse{
		Results:         rows,
		Count:           len(rows),
		ExecutionTimeMs: time.Since(start).Milliseconds(),
	})
}

// isWriteQuery reports whether a SPARQL string contains an update form
func isWriteQuery(query string) bool {
	upper := strings.ToUpper(query)
	for _, keyword := range []string{"INSERT", "DELETE", "DROP", "CLEAR", "CREATE", "LOAD"} {
		if strings.Contains(upper, keyword) {
			return true
		}
	}
	return false
}
