package service

import (
	"context"
	"fmt"
	"sort"

	"curio-box/internal/model"

	"github.com/rs/zerolog"
)

// adminService implements AdminService.
type adminService struct {
	domain Domain
	logger zerolog.Logger
}

// NewAdminService creates a new admin service.
func NewAdminService(domain Domain, logger zerolog.Logger) AdminService {
	return &adminService{
		domain: domain,
		logger: logger.With().Str("service", "admin").Logger(),
	}
}

// Board groups items by category (full enum, empty groups included) and
// sorts orders pending-first, then newest-first within the same status.
func (s *adminService) Board(ctx context.Context) model.Board {
	items := s.domain.Items()
	grouped := make(map[model.Category][]model.Item, len(model.Categories))
	for _, category := range model.Categories {
		grouped[category] = []model.Item{}
	}
	for _, item := range items {
		grouped[item.Category] = append(grouped[item.Category], item)
	}

	orders := s.domain.Orders()
	sort.SliceStable(orders, func(i, j int) bool {
		if orders[i].Status != orders[j].Status {
			return orders[i].Status == model.OrderPending
		}
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	return model.Board{ItemsByCategory: grouped, Orders: orders}
}

// Assign places an item into an order section. It rejects drops on completed
// orders and drag payloads whose category the section does not accept, then
// hands off to the store, which re-validates against the item collection.
func (s *adminService) Assign(ctx context.Context, orderID string, req *model.AssignRequest) error {
	if req == nil || req.ItemID == "" {
		return model.ErrItemNotFound
	}

	order, err := s.domain.Order(orderID)
	if err != nil {
		return err
	}
	if order.Status == model.OrderCompleted {
		return model.ErrOrderCompleted
	}
	if req.SectionIndex < 0 || req.SectionIndex >= len(order.Sections) {
		return model.ErrSectionOutOfRange
	}
	if req.ItemCategory != "" {
		requested := order.Sections[req.SectionIndex].RequestedCategory
		if !requested.Accepts(req.ItemCategory) {
			s.logger.Debug().
				Str("order_id", orderID).
				Int("section", req.SectionIndex).
				Str("requested", string(requested)).
				Str("dragged", string(req.ItemCategory)).
				Msg("drop rejected by category guard")
			return model.ErrCategoryMismatch
		}
	}

	return s.domain.AssignItem(ctx, orderID, req.SectionIndex, req.ItemID)
}

// Complete marks the order completed and builds the summary shown to the
// admin: one line per section with the assigned item's name and business.
func (s *adminService) Complete(ctx context.Context, orderID string) (*model.CompletionSummary, error) {
	if err := s.domain.CompleteOrder(ctx, orderID); err != nil {
		s.logger.Warn().Err(err).Str("order_id", orderID).Msg("completion rejected")
		return nil, err
	}

	order, err := s.domain.Order(orderID)
	if err != nil {
		return nil, err
	}

	lines := make([]string, len(order.Sections))
	for i, section := range order.Sections {
		label := "Unassigned"
		if section.SelectedItemID != nil {
			if item, err := s.domain.Item(*section.SelectedItemID); err == nil {
				label = fmt.Sprintf("%s - %s", item.Name, item.Business)
			}
		}
		lines[i] = fmt.Sprintf("Section %d (%s): %s", i+1, section.RequestedCategory, label)
	}

	return &model.CompletionSummary{OrderID: orderID, Lines: lines}, nil
}

// Delete removes an order.
func (s *adminService) Delete(ctx context.Context, orderID string) error {
	return s.domain.DeleteOrder(ctx, orderID)
}

// ResetOrders empties the order collection.
func (s *adminService) ResetOrders(ctx context.Context) {
	s.domain.ResetOrders(ctx)
}

// ResetDemoData empties both collections.
func (s *adminService) ResetDemoData(ctx context.Context) {
	s.domain.ResetDemoData(ctx)
}
