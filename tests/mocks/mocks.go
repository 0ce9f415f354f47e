// Package mocks provides testify mocks for the application ports.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"orders-backend/domain/core/aggregates"
	"orders-backend/domain/events"
)

// MockOrderRepository is a testify mock for ports.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetByNumber(ctx context.Context, orderNumber string) (*aggregates.Order, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*aggregates.Order), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, order *aggregates.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

// MockEventBus is a testify mock for ports.EventBus
type MockEventBus struct {
	mock.Mock
}

func (m *MockEventBus) Publish(ctx context.Context, event events.DomainEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventBus) PublishBatch(ctx context.Context, batch []events.DomainEvent) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}
