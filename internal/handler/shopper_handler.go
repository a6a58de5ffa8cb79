package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"curio-box/internal/model"
	"curio-box/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ShopperHandler handles the shopper view's HTTP requests.
type ShopperHandler struct {
	service service.ShopperService
	logger  zerolog.Logger
}

// NewShopperHandler creates a new shopper handler.
func NewShopperHandler(service service.ShopperService, logger zerolog.Logger) *ShopperHandler {
	return &ShopperHandler{
		service: service,
		logger:  logger.With().Str("handler", "shopper").Logger(),
	}
}

// Orders handles POST /api/shopper/orders requests. While the session is
// unsubscribed the response is 402 with the payment prompt; no order is
// submitted.
func (h *ShopperHandler) Orders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req model.OrderRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
			return
		}
	}

	resp, err := h.service.PlaceOrder(r.Context(), h.sessionID(w, r), req.Categories)
	if err != nil {
		if errors.Is(err, model.ErrNotSubscribed) {
			writeJSON(w, http.StatusPaymentRequired, resp)
			return
		}
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// State handles GET /api/shopper/state requests.
func (h *ShopperHandler) State(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, h.service.State(h.sessionID(w, r)))
}

// ConfirmPayment handles POST /api/shopper/payment/confirm requests.
func (h *ShopperHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, h.service.ConfirmPayment(h.sessionID(w, r)))
}

// AcknowledgeSubscription handles POST /api/shopper/subscription/acknowledge
// requests.
func (h *ShopperHandler) AcknowledgeSubscription(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, h.service.AcknowledgeSubscription(h.sessionID(w, r)))
}

// sessionID reads the session header, minting a fresh id when absent so a
// bare client still gets a consistent gate within one response.
func (h *ShopperHandler) sessionID(w http.ResponseWriter, r *http.Request) string {
	if id := r.Header.Get(SessionHeader); id != "" {
		return id
	}
	id := uuid.NewString()
	w.Header().Set(SessionHeader, id)
	return id
}
