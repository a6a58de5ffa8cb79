package service

import (
	"context"

	"curio-box/internal/model"

	"github.com/rs/zerolog"
)

// creatorService implements CreatorService.
type creatorService struct {
	domain Domain
	logger zerolog.Logger
}

// NewCreatorService creates a new creator service.
func NewCreatorService(domain Domain, logger zerolog.Logger) CreatorService {
	return &creatorService{
		domain: domain,
		logger: logger.With().Str("service", "creator").Logger(),
	}
}

// ListItems returns every listed item.
func (s *creatorService) ListItems(ctx context.Context) []model.Item {
	items := s.domain.Items()
	s.logger.Debug().Int("count", len(items)).Msg("listed items")
	return items
}

// AddItem lists a new item. The store rejects empty fields and reserved or
// unknown categories.
func (s *creatorService) AddItem(ctx context.Context, req *model.ItemRequest) (model.Item, error) {
	if req == nil {
		return model.Item{}, model.ErrEmptyField
	}

	item, err := s.domain.AddItem(ctx, req.Name, req.Business, req.Category, req.Description)
	if err != nil {
		s.logger.Warn().Err(err).Str("category", string(req.Category)).Msg("item rejected")
		return model.Item{}, err
	}
	return item, nil
}

// RemoveItem delists an item. Removing an unknown id is a silent no-op.
func (s *creatorService) RemoveItem(ctx context.Context, itemID string) error {
	if err := s.domain.RemoveItem(ctx, itemID); err != nil {
		s.logger.Error().Err(err).Str("item_id", itemID).Msg("failed to remove item")
		return err
	}
	return nil
}
