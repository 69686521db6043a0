package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/nouraboussaoud/Eco-Tourisme/internal/api/dto"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/pkg/errors"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/pkg/logger"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/pkg/utils"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/pkg/validator"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/store/fuseki"
)

// ContributionHandler records community contributions in the ontology
type ContributionHandler struct {
	catalog   *fuseki.Catalog
	logger    *logger.Logger
	validator *validator.Validator
}

// NewContributionHandler creates a new contribution handler
func NewContributionHandler(catalog *fuseki.Catalog, log *logger.Logger, val *validator.Validator) *ContributionHandler {
	return &ContributionHandler{catalog: catalog, logger: log, validator: val}
}

// Create records a new contribution
// @Summary Record a contribution
// @Description Insert a community contribution into the knowledge store
// @Tags Contributions
// @Accept json
// @Produce json
// @Param request body dto.ContributionRequest true "Contribution details"
// @Success 201 {object} map[string]string "Contribution recorded"
// @Failure 400 {object} utils.ErrorResponse "Invalid request or validation error"
// @Failure 502 {object} utils.ErrorResponse "Knowledge store unavailable"
// @Router /contribution [post]
func (h *ContributionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.ContributionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if errs := h.validator.Validate(req); len(errs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", errs))
		return
	}

	id, err := h.catalog.AddContribution(r.Context(), fuseki.Contribution{
		Utilisateur: req.Utilisateur,
		Description: req.Description,
		Type:        req.Type,
		Quantite:    req.Quantite,
		Unite:       req.Unite,
	})
	if err != nil {
		writeServiceError(w, err, "Failed to record contribution")
		return
	}

	h.logger.WithFields(map[string]interface{}{
		"contribution_id": id,
		"utilisateur":     req.Utilisateur,
	}).Info("Contribution recorded")

	utils.WriteSuccess(w, http.StatusCreated, map[string]string{"id": id})
}
