package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fjod/mycogrow/storefront-service/internal/carousel"
	"github.com/fjod/mycogrow/storefront-service/internal/store"
	"github.com/fjod/mycogrow/storefront-service/internal/view"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Warn("failed to encode response", zap.Error(err))
	}
}

func (h *Handler) respondError(w http.ResponseWriter, status int, code, message string) {
	h.respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// handleError converts domain errors to HTTP status codes
func (h *Handler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrUnknownProduct):
		h.respondError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, store.ErrInvalidQuantity):
		h.respondError(w, http.StatusBadRequest, "invalid_quantity", err.Error())
	case errors.Is(err, carousel.ErrIndexOutOfRange), errors.Is(err, view.ErrUnknownTab):
		h.respondError(w, http.StatusBadRequest, "invalid_argument", err.Error())
	default:
		h.log.Error("unhandled error", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
