package router

import (
	"net/http"

	"curio-box/internal/handler"
	"curio-box/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	creatorHandler *handler.CreatorHandler,
	adminHandler *handler.AdminHandler,
	shopperHandler *handler.ShopperHandler,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Creator routes
	creatorItemsHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/creator/items" && r.URL.Path != "/api/creator/items/" {
			creatorHandler.Remove(w, r)
			return
		}
		creatorHandler.Items(w, r)
	}
	mux.HandleFunc("/api/creator/items", creatorItemsHandler)
	mux.HandleFunc("/api/creator/items/", creatorItemsHandler)

	// Admin routes
	mux.HandleFunc("/api/admin/board", adminHandler.Board)
	mux.HandleFunc("/api/admin/orders/", adminHandler.Orders)
	mux.HandleFunc("/api/admin/reset", adminHandler.Reset)

	// Shopper routes
	mux.HandleFunc("/api/shopper/orders", shopperHandler.Orders)
	mux.HandleFunc("/api/shopper/state", shopperHandler.State)
	mux.HandleFunc("/api/shopper/payment/confirm", shopperHandler.ConfirmPayment)
	mux.HandleFunc("/api/shopper/subscription/acknowledge", shopperHandler.AcknowledgeSubscription)

	// Apply middleware in order: Recovery -> Logging -> CORS
	var h http.Handler = mux
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
