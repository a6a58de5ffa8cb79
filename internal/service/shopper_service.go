package service

import (
	"context"
	"sync"

	"curio-box/internal/model"

	"github.com/rs/zerolog"
)

// DefaultBoxSlots is the number of sections in a shopper's box when the
// request does not choose its own categories.
const DefaultBoxSlots = 5

// subscription stages for a shopper session. The gate is strictly linear:
// unsubscribed -> payment prompt confirmed -> subscribed.
type subscriptionStage int

const (
	stageUnsubscribed subscriptionStage = iota
	stagePaymentConfirmed
	stageSubscribed
)

const (
	paymentPrompt    = "Start your monthly box subscription to place this order."
	subscribedPrompt = "Pretend payment succeeded. The shopper is now subscribed monthly."
)

// shopperService implements ShopperService. Session state lives only in this
// struct; it is never persisted, so a restart resets every session.
type shopperService struct {
	domain Domain
	logger zerolog.Logger

	mu       sync.Mutex
	sessions map[string]subscriptionStage
}

// NewShopperService creates a new shopper service.
func NewShopperService(domain Domain, logger zerolog.Logger) ShopperService {
	return &shopperService{
		domain:   domain,
		logger:   logger.With().Str("service", "shopper").Logger(),
		sessions: map[string]subscriptionStage{},
	}
}

// State reports the session's position in the subscription flow.
func (s *shopperService) State(sessionID string) model.ShopperState {
	return s.stateOf(s.stage(sessionID))
}

// PlaceOrder submits a box order once the session is subscribed. While
// unsubscribed it returns the payment prompt and submits nothing. An empty
// category list falls back to the default box.
func (s *shopperService) PlaceOrder(ctx context.Context, sessionID string, categories []model.Category) (*model.PlaceOrderResponse, error) {
	if s.stage(sessionID) != stageSubscribed {
		s.logger.Debug().Str("session_id", sessionID).Msg("order blocked by subscription gate")
		return &model.PlaceOrderResponse{
			State: model.ShopperState{Subscribed: false, Prompt: paymentPrompt},
		}, model.ErrNotSubscribed
	}

	if len(categories) == 0 {
		categories = DefaultBox()
	}

	order, err := s.domain.SubmitOrder(ctx, categories)
	if err != nil {
		s.logger.Warn().Err(err).Str("session_id", sessionID).Msg("order submission rejected")
		return nil, err
	}

	s.logger.Info().
		Str("session_id", sessionID).
		Str("order_id", order.ID).
		Int("sections", len(order.Sections)).
		Msg("order placed")
	return &model.PlaceOrderResponse{
		Order: &order,
		State: model.ShopperState{Subscribed: true},
	}, nil
}

// ConfirmPayment moves an unsubscribed session past the payment prompt.
func (s *shopperService) ConfirmPayment(sessionID string) model.ShopperState {
	s.mu.Lock()
	if s.sessions[sessionID] == stageUnsubscribed {
		s.sessions[sessionID] = stagePaymentConfirmed
	}
	stage := s.sessions[sessionID]
	s.mu.Unlock()
	return s.stateOf(stage)
}

// AcknowledgeSubscription dismisses the subscription-started prompt and
// marks the session subscribed.
func (s *shopperService) AcknowledgeSubscription(sessionID string) model.ShopperState {
	s.mu.Lock()
	if s.sessions[sessionID] == stagePaymentConfirmed {
		s.sessions[sessionID] = stageSubscribed
	}
	stage := s.sessions[sessionID]
	s.mu.Unlock()
	return s.stateOf(stage)
}

func (s *shopperService) stage(sessionID string) subscriptionStage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[sessionID]
}

func (s *shopperService) stateOf(stage subscriptionStage) model.ShopperState {
	switch stage {
	case stageSubscribed:
		return model.ShopperState{Subscribed: true}
	case stagePaymentConfirmed:
		return model.ShopperState{Subscribed: false, Prompt: subscribedPrompt}
	default:
		return model.ShopperState{Subscribed: false, Prompt: paymentPrompt}
	}
}

// DefaultBox returns the default shopper box: five Genre slots.
func DefaultBox() []model.Category {
	categories := make([]model.Category, DefaultBoxSlots)
	for i := range categories {
		categories[i] = model.CategoryGenre
	}
	return categories
}
