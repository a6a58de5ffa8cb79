package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"curio-box/internal/model"
	"curio-box/internal/service"

	"github.com/rs/zerolog"
)

// AdminHandler handles the admin curation view's HTTP requests.
type AdminHandler struct {
	service service.AdminService
	logger  zerolog.Logger
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(service service.AdminService, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		logger:  logger.With().Str("handler", "admin").Logger(),
	}
}

// Board handles GET /api/admin/board requests.
func (h *AdminHandler) Board(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, h.service.Board(r.Context()))
}

// Orders dispatches /api/admin/orders/... requests:
//
//	POST   /api/admin/orders/reset
//	POST   /api/admin/orders/{id}/assign
//	POST   /api/admin/orders/{id}/complete
//	DELETE /api/admin/orders/{id}
func (h *AdminHandler) Orders(w http.ResponseWriter, r *http.Request) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/admin/orders"), "/")
	if rest == "" {
		writeError(w, http.StatusBadRequest, "order ID is required", h.logger)
		return
	}

	if rest == "reset" {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
			return
		}
		h.service.ResetOrders(r.Context())
		w.WriteHeader(http.StatusNoContent)
		return
	}

	parts := strings.Split(rest, "/")
	switch {
	case len(parts) == 1 && r.Method == http.MethodDelete:
		h.delete(w, r, parts[0])
	case len(parts) == 2 && parts[1] == "assign" && r.Method == http.MethodPost:
		h.assign(w, r, parts[0])
	case len(parts) == 2 && parts[1] == "complete" && r.Method == http.MethodPost:
		h.complete(w, r, parts[0])
	default:
		writeError(w, http.StatusNotFound, "not found", h.logger)
	}
}

// Reset handles POST /api/admin/reset requests, wiping the whole demo.
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	h.service.ResetDemoData(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) assign(w http.ResponseWriter, r *http.Request, orderID string) {
	var req model.AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if err := h.service.Assign(r.Context(), orderID, &req); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) complete(w http.ResponseWriter, r *http.Request, orderID string) {
	summary, err := h.service.Complete(r.Context(), orderID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

func (h *AdminHandler) delete(w http.ResponseWriter, r *http.Request, orderID string) {
	if err := h.service.Delete(r.Context(), orderID); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
