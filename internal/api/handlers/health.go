package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/nouraboussaoud/Eco-Tourisme/internal/pkg/logger"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/pkg/utils"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/store/fuseki"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	store  *fuseki.Client
	logger *logger.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(store *fuseki.Client, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		store:  store,
		logger: log,
	}
}

// Healthz handles liveness probe
// @Summary Liveness probe
// @Description Check if the application is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string "Application is alive"
// @Router /health [get]
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccess(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// Readyz handles readiness probe
// @Summary Readiness probe
// @Description Check if the application can reach the knowledge store
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string "Application is ready"
// @Failure 503 {object} utils.ErrorResponse "Service unavailable"
// @Router /readyz [get]
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	// Check knowledge store connection
	if err := h.store.Ping(ctx); err != nil {
		h.logger.ErrorWithErr(err, "Knowledge store ping failed")
		utils.WriteErrorMessage(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Knowledge store connection failed")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, map[string]string{
		"status": "ready",
		"store":  "connected",
	})
}
