package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/api/dto"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/domain/profile"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/domain/recommendation"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/pkg/errors"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/pkg/logger"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/pkg/utils"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/pkg/validator"
)

// RecommendationHandler serves the single-destination recommendation mode
type RecommendationHandler struct {
	service   recommendation.Service
	logger    *logger.Logger
	validator *validator.Validator
}

// NewRecommendationHandler creates a new recommendation handler
func NewRecommendationHandler(service recommendation.Service, log *logger.Logger, val *validator.Validator) *RecommendationHandler {
	return &RecommendationHandler{service: service, logger: log, validator: val}
}

// Profiles returns the static traveler profiles
// @Summary List traveler profiles
// @Description Get the traveler profiles available for recommendations
// @Tags Recommendations
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]profile.CatalogEntry} "Traveler profiles"
// @Router /recommendations/profiles [get]
func (h *RecommendationHandler) Profiles(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccess(w, http.StatusOK, profile.Catalog())
}

// Generate builds a recommendation for a traveler profile
// @Summary Generate a recommendation
// @Description Build a full recommendation (activities, accommodation, transport) for a traveler profile
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body dto.GenerateRecommendationRequest true "Trip parameters"
// @Success 200 {object} utils.SuccessResponse{data=recommendation.Recommendation} "Generated recommendation"
// @Failure 400 {object} utils.ErrorResponse "Invalid request or validation error"
// @Router /recommendations/generate [post]
func (h *RecommendationHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req dto.GenerateRecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if errs := h.validator.Validate(req); len(errs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", errs))
		return
	}

	rec, err := h.service.GenerateRecommendation(r.Context(), profile.TravelerProfile{
		ProfileID:           req.Profile,
		EcoPriority:         req.EcoPriority,
		Budget:              req.Budget,
		DurationDays:        req.DurationDays,
		TransportPreference: req.TransportPreference,
	}, req.Destination, req.CarbonPriority)
	if err != nil {
		writeServiceError(w, err, "Failed to generate recommendation")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, rec)
}

// Activities returns activities ranked for a traveler profile
// @Summary List activities for a profile
// @Description Get activities ranked by compatibility with a traveler profile
// @Tags Recommendations
// @Produce json
// @Param profile path string true "Traveler profile" Enums(Adventure, Culture, BienEtre, Famille)
// @Success 200 {object} utils.SuccessResponse{data=[]entity.Entity} "Ranked activities"
// @Router /recommendations/activities/{profile} [get]
func (h *RecommendationHandler) Activities(w http.ResponseWriter, r *http.Request) {
	profileID := chi.URLParam(r, "profile")

	activities, err := h.service.ActivitiesForProfile(r.Context(), profileID)
	if err != nil {
		writeServiceError(w, err, "Failed to list activities")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, activities)
}

// Accommodations returns eco-friendly accommodations for a traveler profile
// @Summary List accommodations for a profile
// @Description Get eco-friendly accommodations, falling back to all when none reach the threshold
// @Tags Recommendations
// @Produce json
// @Param profile path string true "Traveler profile" Enums(Adventure, Culture, BienEtre, Famille)
// @Success 200 {object} utils.SuccessResponse{data=[]entity.Entity} "Accommodations"
// @Router /recommendations/accommodations/{profile} [get]
func (h *RecommendationHandler) Accommodations(w http.ResponseWriter, r *http.Request) {
	profileID := chi.URLParam(r, "profile")

	accommodations, err := h.service.AccommodationsForProfile(r.Context(), profileID)
	if err != nil {
		writeServiceError(w, err, "Failed to list accommodations")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, accommodations)
}

// Transports returns transport options with carbon ratings
// @Summary List transport options
// @Description Get transports with their carbon score, cleanest first when carbon_sensitive is set
// @Tags Recommendations
// @Produce json
// @Param carbon_sensitive query bool false "Sort cleanest first"
// @Success 200 {object} utils.SuccessResponse{data=[]recommendation.TransportOption} "Transport options"
// @Router /recommendations/transports [get]
func (h *RecommendationHandler) Transports(w http.ResponseWriter, r *http.Request) {
	carbonSensitive, _ := strconv.ParseBool(r.URL.Query().Get("carbon_sensitive"))

	options, err := h.service.TransportOptions(r.Context(), carbonSensitive)
	if err != nil {
		writeServiceError(w, err, "Failed to list transports")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, options)
}

// CarbonCalculator computes the footprint of a transport over a distance
// @Summary Calculate a carbon footprint
// @Description Compute the CO2 footprint of a transport choice and suggest lower-carbon alternatives
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body dto.CarbonCalculatorRequest true "Transport and distance"
// @Success 200 {object} utils.SuccessResponse{data=recommendation.TransportCarbon} "Carbon footprint"
// @Failure 400 {object} utils.ErrorResponse "Invalid request or validation error"
// @Router /recommendations/carbon-calculator [post]
func (h *RecommendationHandler) CarbonCalculator(w http.ResponseWriter, r *http.Request) {
	var req dto.CarbonCalculatorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if errs := h.validator.Validate(req); len(errs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", errs))
		return
	}

	utils.WriteSuccess(w, http.StatusOK, h.service.TransportCarbon(req.Transport, req.DistanceKm))
}

// Compare ranks recommendations generated for several profiles
// @Summary Compare recommendations
// @Description Generate a recommendation per traveler profile and rank them against each other
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body dto.CompareRequest true "Profiles and trip parameters"
// @Success 200 {object} utils.SuccessResponse{data=recommendation.Comparison} "Comparison"
// @Failure 400 {object} utils.ErrorResponse "Invalid request or validation error"
// @Router /recommendations/compare [post]
func (h *RecommendationHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var req dto.CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if errs := h.validator.Validate(req); len(errs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", errs))
		return
	}

	packages := make([]*recommendation.Recommendation, 0, len(req.Profiles))
	for _, profileID := range req.Profiles {
		rec, err := h.service.GenerateRecommendation(r.Context(), profile.TravelerProfile{
			ProfileID:    profileID,
			Budget:       req.Budget,
			DurationDays: req.DurationDays,
		}, req.Destination, req.CarbonPriority)
		if err != nil {
			writeServiceError(w, err, "Failed to generate recommendation for comparison")
			return
		}
		packages = append(packages, rec)
	}

	utils.WriteSuccess(w, http.StatusOK, h.service.Compare(packages))
}
