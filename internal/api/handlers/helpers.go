package handlers

import (
	"net/http"

	"github.com/nouraboussaoud/Eco-Tourisme/internal/pkg/errors"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/pkg/utils"
)

// writeServiceError maps a service error onto the HTTP response, preserving
// the status code of application errors
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	if appErr, ok := err.(*errors.AppError); ok {
		utils.WriteError(w, appErr)
		return
	}
	utils.WriteError(w, errors.Internal(fallback, err))
}
