package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/nouraboussaoud/Eco-Tourisme/internal/api/dto"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/domain/entity"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/domain/recommendation"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/pkg/errors"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/pkg/logger"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/pkg/utils"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/pkg/validator"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/services"
)

// PersonalityHandler serves the personality quiz and trip package mode
type PersonalityHandler struct {
	personality *services.PersonalityService
	packages    recommendation.PackageService
	catalog     entity.Catalog
	logger      *logger.Logger
	validator   *validator.Validator
}

// NewPersonalityHandler creates a new personality handler
func NewPersonalityHandler(personality *services.PersonalityService, packages recommendation.PackageService, catalog entity.Catalog, log *logger.Logger, val *validator.Validator) *PersonalityHandler {
	return &PersonalityHandler{
		personality: personality,
		packages:    packages,
		catalog:     catalog,
		logger:      log,
		validator:   val,
	}
}

// Questions returns the personality quiz
// @Summary Get quiz questions
// @Description Get the traveler personality quiz questions
// @Tags Personality
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]profile.Question} "Quiz questions"
// @Router /personality/questions [get]
func (h *PersonalityHandler) Questions(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccess(w, http.StatusOK, h.personality.Questions())
}

// Analyze derives a personality profile from quiz answers
// @Summary Analyze quiz answers
// @Description Derive a traveler personality profile from quiz answers
// @Tags Personality
// @Accept json
// @Produce json
// @Param request body dto.AnalyzeRequest true "Quiz answers"
// @Success 200 {object} utils.SuccessResponse{data=profile.PersonalityProfile} "Personality profile"
// @Failure 400 {object} utils.ErrorResponse "Invalid request or validation error"
// @Router /personality/analyze [post]
func (h *PersonalityHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req dto.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if errs := h.validator.Validate(req); len(errs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", errs))
		return
	}

	p, err := h.personality.AnalyzeAnswers(r.Context(), req.Answers, h.destinations(r))
	if err != nil {
		writeServiceError(w, err, "Failed to analyze answers")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, p)
}

// GeneratePackage builds a full trip package from quiz answers
// @Summary Generate a trip package
// @Description Analyze quiz answers and build a full personality-driven trip package
// @Tags Personality
// @Accept json
// @Produce json
// @Param request body dto.PackageRequest true "Quiz answers"
// @Success 200 {object} utils.SuccessResponse{data=recommendation.TripPackage} "Trip package"
// @Failure 400 {object} utils.ErrorResponse "Invalid request or validation error"
// @Failure 422 {object} utils.ErrorResponse "No destinations available"
// @Router /personality/package [post]
func (h *PersonalityHandler) GeneratePackage(w http.ResponseWriter, r *http.Request) {
	var req dto.PackageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if errs := h.validator.Validate(req); len(errs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", errs))
		return
	}

	places := h.destinations(r)
	p, err := h.personality.AnalyzeAnswers(r.Context(), req.Answers, places)
	if err != nil {
		writeServiceError(w, err, "Failed to analyze answers")
		return
	}

	// Accommodations are optional; the generator degrades to a flat estimate.
	accommodations, err := h.catalog.Accommodations(r.Context())
	if err != nil {
		h.logger.WithError(err).Warn("Accommodation fetch failed, generating package without lodging data")
		accommodations = nil
	}

	pkg, err := h.packages.GenerateTripPackage(r.Context(), *p, places, accommodations)
	if err != nil {
		writeServiceError(w, err, "Failed to generate trip package")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, pkg)
}

// destinations fetches the destination list, degrading to nil on store failure
func (h *PersonalityHandler) destinations(r *http.Request) []entity.Entity {
	places, err := h.catalog.Destinations(r.Context())
	if err != nil {
		h.logger.WithError(err).Warn("Destination fetch failed")
		return nil
	}
	return places
}
