package service

import (
	"context"

	"curio-box/internal/model"
)

// Domain is the slice of the domain store the services depend on.
// *store.Store satisfies it.
type Domain interface {
	Items() []model.Item
	Orders() []model.Order
	Order(orderID string) (model.Order, error)
	Item(itemID string) (model.Item, error)
	AddItem(ctx context.Context, name, business string, category model.Category, description string) (model.Item, error)
	RemoveItem(ctx context.Context, itemID string) error
	SubmitOrder(ctx context.Context, categories []model.Category) (model.Order, error)
	AssignItem(ctx context.Context, orderID string, sectionIndex int, itemID string) error
	CompleteOrder(ctx context.Context, orderID string) error
	DeleteOrder(ctx context.Context, orderID string) error
	ResetOrders(ctx context.Context)
	ResetDemoData(ctx context.Context)
}

// CreatorService defines the creator view's operations.
type CreatorService interface {
	// ListItems returns every listed item.
	ListItems(ctx context.Context) []model.Item

	// AddItem lists a new item.
	AddItem(ctx context.Context, req *model.ItemRequest) (model.Item, error)

	// RemoveItem delists an item and clears it from every order section.
	RemoveItem(ctx context.Context, itemID string) error
}

// AdminService defines the admin curation view's operations.
type AdminService interface {
	// Board returns items grouped by category and orders in curation order.
	Board(ctx context.Context) model.Board

	// Assign places an item into an order section, guarding the drag
	// payload's category before the store re-validates.
	Assign(ctx context.Context, orderID string, req *model.AssignRequest) error

	// Complete marks a fully assigned order completed and returns its
	// section-by-section summary.
	Complete(ctx context.Context, orderID string) (*model.CompletionSummary, error)

	// Delete removes an order.
	Delete(ctx context.Context, orderID string) error

	// ResetOrders empties the order collection.
	ResetOrders(ctx context.Context)

	// ResetDemoData empties both collections.
	ResetDemoData(ctx context.Context)
}

// ShopperService defines the shopper view's operations, including the
// simulated subscription gate. Gate state is per-session and in-memory
// only; a restart resets every session to unsubscribed.
type ShopperService interface {
	// State reports the session's position in the subscription flow.
	State(sessionID string) model.ShopperState

	// PlaceOrder submits a box order for a subscribed session. For an
	// unsubscribed session it returns the payment prompt instead of
	// submitting.
	PlaceOrder(ctx context.Context, sessionID string, categories []model.Category) (*model.PlaceOrderResponse, error)

	// ConfirmPayment acknowledges the payment prompt and moves the session
	// to the subscription-started prompt.
	ConfirmPayment(sessionID string) model.ShopperState

	// AcknowledgeSubscription dismisses the subscription-started prompt and
	// marks the session subscribed.
	AcknowledgeSubscription(sessionID string) model.ShopperState
}
