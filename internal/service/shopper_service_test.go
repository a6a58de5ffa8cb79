package service

import (
	"context"
	"testing"

	"curio-box/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShopperService_SubscriptionGate(t *testing.T) {
	domain := new(MockDomain)
	svc := NewShopperService(domain, zerolog.Nop())
	session := "s1"

	// A fresh session is unsubscribed and prompted to pay.
	state := svc.State(session)
	assert.False(t, state.Subscribed)
	assert.NotEmpty(t, state.Prompt)

	// Confirming payment moves to the subscription-started prompt.
	state = svc.ConfirmPayment(session)
	assert.False(t, state.Subscribed)
	assert.Equal(t, subscribedPrompt, state.Prompt)

	// Acknowledging the prompt completes the gate.
	state = svc.AcknowledgeSubscription(session)
	assert.True(t, state.Subscribed)
	assert.Empty(t, state.Prompt)

	// The gate is per session: another session starts over.
	other := svc.State("s2")
	assert.False(t, other.Subscribed)
}

func TestShopperService_GateStepsAreOrdered(t *testing.T) {
	domain := new(MockDomain)
	svc := NewShopperService(domain, zerolog.Nop())

	// Acknowledging before confirming payment does not subscribe.
	state := svc.AcknowledgeSubscription("s1")
	assert.False(t, state.Subscribed)
	assert.Equal(t, paymentPrompt, state.Prompt)

	// Confirming twice does not skip ahead.
	svc.ConfirmPayment("s1")
	state = svc.ConfirmPayment("s1")
	assert.False(t, state.Subscribed)
	assert.Equal(t, subscribedPrompt, state.Prompt)
}

func TestShopperService_PlaceOrder_BlockedWhileUnsubscribed(t *testing.T) {
	ctx := context.Background()
	domain := new(MockDomain)
	svc := NewShopperService(domain, zerolog.Nop())

	resp, err := svc.PlaceOrder(ctx, "s1", []model.Category{model.CategoryFood})

	assert.ErrorIs(t, err, model.ErrNotSubscribed)
	require.NotNil(t, resp)
	assert.Nil(t, resp.Order)
	assert.False(t, resp.State.Subscribed)
	assert.Equal(t, paymentPrompt, resp.State.Prompt)
	domain.AssertNotCalled(t, "SubmitOrder")
}

func TestShopperService_PlaceOrder_Subscribed(t *testing.T) {
	ctx := context.Background()
	categories := []model.Category{model.CategoryFashion, model.CategorySurprise}
	submitted := model.Order{
		ID:     "o1",
		Status: model.OrderPending,
		Sections: []model.Section{
			{RequestedCategory: model.CategoryFashion},
			{RequestedCategory: model.CategorySurprise},
		},
	}

	domain := new(MockDomain)
	domain.On("SubmitOrder", ctx, categories).Return(submitted, nil)

	svc := NewShopperService(domain, zerolog.Nop())
	svc.ConfirmPayment("s1")
	svc.AcknowledgeSubscription("s1")

	resp, err := svc.PlaceOrder(ctx, "s1", categories)

	require.NoError(t, err)
	require.NotNil(t, resp.Order)
	assert.Equal(t, "o1", resp.Order.ID)
	assert.True(t, resp.State.Subscribed)
	domain.AssertExpectations(t)
}

func TestShopperService_PlaceOrder_DefaultBox(t *testing.T) {
	ctx := context.Background()

	domain := new(MockDomain)
	domain.On("SubmitOrder", ctx, DefaultBox()).Return(model.Order{ID: "o1"}, nil)

	svc := NewShopperService(domain, zerolog.Nop())
	svc.ConfirmPayment("s1")
	svc.AcknowledgeSubscription("s1")

	_, err := svc.PlaceOrder(ctx, "s1", nil)

	require.NoError(t, err)
	domain.AssertExpectations(t)
}

func TestDefaultBox(t *testing.T) {
	box := DefaultBox()
	require.Len(t, box, DefaultBoxSlots)
	for _, category := range box {
		assert.Equal(t, model.CategoryGenre, category)
	}
}
