package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"curio-box/internal/model"
	"curio-box/internal/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Store owns the item and order collections for the lifetime of the process.
// All mutation goes through its operations; each successful mutation mirrors
// the affected collection into its storage slot. The in-memory state is
// authoritative, so storage failures never surface to callers, but the most
// recent one is kept behind LastPersistError so it stays observable.
type Store struct {
	mu      sync.RWMutex
	adapter storage.Adapter
	logger  zerolog.Logger

	items  []model.Item
	orders []model.Order

	persistErr error
}

// New seeds a store from the two persisted slots. An absent or empty items
// slot falls back to the starter catalog; an absent orders slot falls back
// to no orders.
func New(ctx context.Context, adapter storage.Adapter, starter []model.Item, logger zerolog.Logger) (*Store, error) {
	s := &Store{
		adapter: adapter,
		logger:  logger.With().Str("component", "store").Logger(),
	}

	var items []model.Item
	ok, err := adapter.Load(ctx, storage.ItemsSlot, &items)
	if err != nil {
		return nil, err
	}
	if !ok || len(items) == 0 {
		items = append([]model.Item(nil), starter...)
	}
	s.items = items

	var orders []model.Order
	ok, err = adapter.Load(ctx, storage.OrdersSlot, &orders)
	if err != nil {
		return nil, err
	}
	if !ok || orders == nil {
		orders = []model.Order{}
	}
	s.orders = orders

	s.logger.Info().
		Int("items", len(s.items)).
		Int("orders", len(s.orders)).
		Msg("store loaded")
	return s, nil
}

// Items returns a copy of the item collection.
func (s *Store) Items() []model.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Item(nil), s.items...)
}

// Orders returns a deep copy of the order collection.
func (s *Store) Orders() []model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Order, len(s.orders))
	for i, order := range s.orders {
		out[i] = copyOrder(order)
	}
	return out
}

// Order returns a copy of a single order.
func (s *Store) Order(orderID string) (model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, order := range s.orders {
		if order.ID == orderID {
			return copyOrder(order), nil
		}
	}
	return model.Order{}, model.ErrOrderNotFound
}

// Item returns a copy of a single item.
func (s *Store) Item(itemID string) (model.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.ID == itemID {
			return item, nil
		}
	}
	return model.Item{}, model.ErrItemNotFound
}

// AddItem appends a new item with a fresh id. All fields are trimmed and
// must be non-empty; the category must be one a creator may assign.
func (s *Store) AddItem(ctx context.Context, name, business string, category model.Category, description string) (model.Item, error) {
	name = strings.TrimSpace(name)
	business = strings.TrimSpace(business)
	description = strings.TrimSpace(description)
	if name == "" || business == "" || description == "" {
		return model.Item{}, model.ErrEmptyField
	}
	if !category.Valid() {
		return model.Item{}, model.ErrUnknownCategory
	}
	if !category.CreatorAssignable() {
		return model.Item{}, model.ErrReservedCategory
	}

	item := model.Item{
		ID:          uuid.NewString(),
		Name:        name,
		Business:    business,
		Category:    category,
		Description: description,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
	s.persistItems(ctx)

	s.logger.Info().
		Str("item_id", item.ID).
		Str("category", string(category)).
		Msg("item added")
	return item, nil
}

// RemoveItem deletes an item and clears every order section referencing it,
// so no order ever points at a deleted item. Removing an unknown id is a
// no-op.
func (s *Store) RemoveItem(ctx context.Context, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	kept := s.items[:0]
	for _, item := range s.items {
		if item.ID == itemID {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		return nil
	}
	s.items = kept

	cleared := 0
	for i := range s.orders {
		for j := range s.orders[i].Sections {
			section := &s.orders[i].Sections[j]
			if section.SelectedItemID != nil && *section.SelectedItemID == itemID {
				section.SelectedItemID = nil
				cleared++
			}
		}
	}

	s.persistItems(ctx)
	if cleared > 0 {
		s.persistOrders(ctx)
	}

	s.logger.Info().
		Str("item_id", itemID).
		Int("sections_cleared", cleared).
		Msg("item removed")
	return nil
}

// SubmitOrder creates a pending order with one unassigned section per
// requested category and prepends it to the collection.
func (s *Store) SubmitOrder(ctx context.Context, categories []model.Category) (model.Order, error) {
	if len(categories) == 0 {
		return model.Order{}, model.ErrNoSections
	}
	sections := make([]model.Section, len(categories))
	for i, category := range categories {
		if !category.Valid() {
			return model.Order{}, model.ErrUnknownCategory
		}
		sections[i] = model.Section{RequestedCategory: category}
	}

	order := model.Order{
		ID:        uuid.NewString(),
		Status:    model.OrderPending,
		CreatedAt: time.Now().UTC(),
		Sections:  sections,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append([]model.Order{order}, s.orders...)
	s.persistOrders(ctx)

	s.logger.Info().
		Str("order_id", order.ID).
		Int("sections", len(sections)).
		Msg("order submitted")
	return copyOrder(order), nil
}

// AssignItem sets a section's selected item. The order must exist and still
// be pending, the index must be in range, and the item must exist with a
// category the section accepts (Surprise accepts anything). An existing
// assignment is overwritten.
func (s *Store) AssignItem(ctx context.Context, orderID string, sectionIndex int, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := s.findOrder(orderID)
	if order == nil {
		return model.ErrOrderNotFound
	}
	if order.Status == model.OrderCompleted {
		return model.ErrOrderCompleted
	}
	if sectionIndex < 0 || sectionIndex >= len(order.Sections) {
		return model.ErrSectionOutOfRange
	}

	var item *model.Item
	for i := range s.items {
		if s.items[i].ID == itemID {
			item = &s.items[i]
			break
		}
	}
	if item == nil {
		return model.ErrItemNotFound
	}

	section := &order.Sections[sectionIndex]
	if !section.RequestedCategory.Accepts(item.Category) {
		return model.ErrCategoryMismatch
	}

	id := itemID
	section.SelectedItemID = &id
	s.persistOrders(ctx)

	s.logger.Info().
		Str("order_id", orderID).
		Int("section", sectionIndex).
		Str("item_id", itemID).
		Msg("item assigned")
	return nil
}

// CompleteOrder marks an order completed once every section is assigned.
// A not-fully-assigned order is left pending. Completing an already
// completed order is a no-op.
func (s *Store) CompleteOrder(ctx context.Context, orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := s.findOrder(orderID)
	if order == nil {
		return model.ErrOrderNotFound
	}
	if order.Status == model.OrderCompleted {
		return nil
	}
	if !order.FullyAssigned() {
		return model.ErrOrderIncomplete
	}

	order.Status = model.OrderCompleted
	s.persistOrders(ctx)

	s.logger.Info().Str("order_id", orderID).Msg("order completed")
	return nil
}

// DeleteOrder removes an order from the collection.
func (s *Store) DeleteOrder(ctx context.Context, orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.orders[:0]
	found := false
	for _, order := range s.orders {
		if order.ID == orderID {
			found = true
			continue
		}
		kept = append(kept, order)
	}
	if !found {
		return model.ErrOrderNotFound
	}
	s.orders = kept
	s.persistOrders(ctx)

	s.logger.Info().Str("order_id", orderID).Msg("order deleted")
	return nil
}

// ResetOrders empties the order collection and clears its persisted slot.
func (s *Store) ResetOrders(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = []model.Order{}
	if err := s.adapter.Clear(ctx, storage.OrdersSlot); err != nil {
		s.recordPersistError(err, storage.OrdersSlot)
	}
	s.logger.Info().Msg("orders reset")
}

// ResetDemoData empties both collections and clears both persisted slots.
func (s *Store) ResetDemoData(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = []model.Item{}
	s.orders = []model.Order{}
	if err := s.adapter.Clear(ctx, storage.ItemsSlot); err != nil {
		s.recordPersistError(err, storage.ItemsSlot)
	}
	if err := s.adapter.Clear(ctx, storage.OrdersSlot); err != nil {
		s.recordPersistError(err, storage.OrdersSlot)
	}
	s.logger.Info().Msg("demo data reset")
}

// LastPersistError returns the most recent swallowed storage failure, or nil.
func (s *Store) LastPersistError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.persistErr
}

// findOrder returns a pointer into the owned slice; callers hold s.mu.
func (s *Store) findOrder(orderID string) *model.Order {
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			return &s.orders[i]
		}
	}
	return nil
}

func (s *Store) persistItems(ctx context.Context) {
	if err := s.adapter.Save(ctx, storage.ItemsSlot, s.items); err != nil {
		s.recordPersistError(err, storage.ItemsSlot)
	}
}

func (s *Store) persistOrders(ctx context.Context) {
	if err := s.adapter.Save(ctx, storage.OrdersSlot, s.orders); err != nil {
		s.recordPersistError(err, storage.OrdersSlot)
	}
}

func (s *Store) recordPersistError(err error, slot string) {
	s.persistErr = err
	s.logger.Error().Err(err).Str("slot", slot).Msg("storage write failed, keeping in-memory state")
}

func copyOrder(order model.Order) model.Order {
	out := order
	out.Sections = make([]model.Section, len(order.Sections))
	for i, section := range order.Sections {
		out.Sections[i] = section
		if section.SelectedItemID != nil {
			id := *section.SelectedItemID
			out.Sections[i].SelectedItemID = &id
		}
	}
	return out
}
