package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"curio-box/internal/model"

	"github.com/rs/zerolog"
)

// SessionHeader carries the shopper's session id. Subscription state is
// keyed by it and held in memory only.
const SessionHeader = "X-Session-ID"

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeDomainError maps a domain error to an HTTP status and writes it.
func writeDomainError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if !errors.As(err, &domainErr) {
		writeError(w, http.StatusInternalServerError, "internal server error", logger)
		return
	}

	status := http.StatusBadRequest
	switch domainErr.Code {
	case model.ErrCodeItemNotFound, model.ErrCodeOrderNotFound:
		status = http.StatusNotFound
	case model.ErrCodeOrderCompleted, model.ErrCodeOrderIncomplete, model.ErrCodeCategoryMismatch:
		status = http.StatusConflict
	case model.ErrCodeNotSubscribed:
		status = http.StatusPaymentRequired
	case model.ErrCodeInternalError:
		status = http.StatusInternalServerError
	}

	logger.Warn().Str("code", domainErr.Code).Int("status", status).Msg(domainErr.Message)
	writeJSON(w, status, ErrorResponse{Error: domainErr.Message, Code: domainErr.Code})
}
