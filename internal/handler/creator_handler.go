package handler

import (
	"encoding/json"
	"net/http"

	"curio-box/internal/model"
	"curio-box/internal/service"

	"github.com/rs/zerolog"
)

// CreatorHandler handles the creator view's HTTP requests.
type CreatorHandler struct {
	service service.CreatorService
	logger  zerolog.Logger
}

// NewCreatorHandler creates a new creator handler.
func NewCreatorHandler(service service.CreatorService, logger zerolog.Logger) *CreatorHandler {
	return &CreatorHandler{
		service: service,
		logger:  logger.With().Str("handler", "creator").Logger(),
	}
}

// Items handles GET and POST /api/creator/items requests.
func (h *CreatorHandler) Items(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.service.ListItems(r.Context()))
	case http.MethodPost:
		h.create(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

func (h *CreatorHandler) create(w http.ResponseWriter, r *http.Request) {
	var req model.ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	item, err := h.service.AddItem(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

// Remove handles DELETE /api/creator/items/{id} requests.
func (h *CreatorHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	itemID := r.URL.Path[len("/api/creator/items/"):]
	if itemID == "" {
		writeError(w, http.StatusBadRequest, "item ID is required", h.logger)
		return
	}

	if err := h.service.RemoveItem(r.Context(), itemID); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
