package model

import "time"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
)

// Order represents a shopper's request for a curated box.
type Order struct {
	ID        string      `json:"id"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
	Sections  []Section   `json:"sections"`
}

// Section is one slot within an order. It requests a category and holds an
// optional reference to the item an admin assigned to it.
type Section struct {
	RequestedCategory Category `json:"requestedCategory"`
	SelectedItemID    *string  `json:"selectedItemId"`
}

// Assigned reports whether the section has an item assigned.
func (s Section) Assigned() bool {
	return s.SelectedItemID != nil
}

// FullyAssigned reports whether every section of the order has an item.
func (o Order) FullyAssigned() bool {
	for _, section := range o.Sections {
		if !section.Assigned() {
			return false
		}
	}
	return true
}

// OrderRequest represents the request payload for submitting a box order.
type OrderRequest struct {
	Categories []Category `json:"categories"`
}

// AssignRequest represents the request payload for assigning an item to an
// order section.
type AssignRequest struct {
	SectionIndex int    `json:"sectionIndex"`
	ItemID       string `json:"itemId"`
	// ItemCategory carries the dragged item's category so the admin service
	// can pre-check it against the section before touching the store.
	ItemCategory Category `json:"itemCategory"`
}

// CompletionSummary is returned when an order is completed: one line per
// section naming the assigned item and its business.
type CompletionSummary struct {
	OrderID string   `json:"orderId"`
	Lines   []string `json:"lines"`
}
