package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/nstapp/content-library/internal/models"
	"go.uber.org/zap"
)

type BaseHandler struct {
	logger   *zap.Logger
	validate *validator.Validate
}

// respondJSON sends a JSON response
func (h *BaseHandler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// respondError sends an error JSON response
func (h *BaseHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, models.ErrorResponse{Error: message})
}

// decodeJSON reads the request body into dst and validates it
func (h *BaseHandler) decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return h.validate.Struct(dst)
}

// respondServiceError maps library errors to HTTP statuses
func (h *BaseHandler) respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrSessionNotFound):
		h.respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrInvalidLibrary):
		h.respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrInvalidAction),
		errors.Is(err, models.ErrNoActivePurchase),
		errors.Is(err, models.ErrInsufficientCredits):
		h.respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, models.ErrUnlockFailed):
		h.respondError(w, http.StatusBadGateway, "unlock request could not be delivered")
	default:
		h.logger.Error("library action failed", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "internal server error")
	}
}
