package service

import (
	"context"

	"curio-box/internal/model"

	"github.com/stretchr/testify/mock"
)

// MockDomain is a mock implementation of Domain.
type MockDomain struct {
	mock.Mock
}

func (m *MockDomain) Items() []model.Item {
	args := m.Called()
	return args.Get(0).([]model.Item)
}

func (m *MockDomain) Orders() []model.Order {
	args := m.Called()
	return args.Get(0).([]model.Order)
}

func (m *MockDomain) Order(orderID string) (model.Order, error) {
	args := m.Called(orderID)
	return args.Get(0).(model.Order), args.Error(1)
}

func (m *MockDomain) Item(itemID string) (model.Item, error) {
	args := m.Called(itemID)
	return args.Get(0).(model.Item), args.Error(1)
}

func (m *MockDomain) AddItem(ctx context.Context, name, business string, category model.Category, description string) (model.Item, error) {
	args := m.Called(ctx, name, business, category, description)
	return args.Get(0).(model.Item), args.Error(1)
}

func (m *MockDomain) RemoveItem(ctx context.Context, itemID string) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

func (m *MockDomain) SubmitOrder(ctx context.Context, categories []model.Category) (model.Order, error) {
	args := m.Called(ctx, categories)
	return args.Get(0).(model.Order), args.Error(1)
}

func (m *MockDomain) AssignItem(ctx context.Context, orderID string, sectionIndex int, itemID string) error {
	args := m.Called(ctx, orderID, sectionIndex, itemID)
	return args.Error(0)
}

func (m *MockDomain) CompleteOrder(ctx context.Context, orderID string) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockDomain) DeleteOrder(ctx context.Context, orderID string) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockDomain) ResetOrders(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockDomain) ResetDemoData(ctx context.Context) {
	m.Called(ctx)
}
