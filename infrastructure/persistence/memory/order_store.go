// Package memory provides in-memory implementations of the persistence
// ports, used for local development and tests.
package memory

import (
	"context"
	"sync"
	"time"

	"orders-backend/domain/core/aggregates"
	"orders-backend/domain/core/valueobjects"
)

// OrderStore is an in-memory OrderRepository. Safe for concurrent use.
// Orders are snapshotted on Save and rehydrated on Get, the same round-trip
// a real persistence record makes, so no two callers ever share aggregate
// state.
type OrderStore struct {
	mu     sync.RWMutex
	orders map[string]orderSnapshot
}

// orderSnapshot is the stored form of an order, detached from the aggregate
// that produced it.
type orderSnapshot struct {
	orderNumber string
	userID      string
	userName    string
	status      aggregates.OrderStatus
	items       []valueobjects.OrderItem
	createdAt   time.Time
	paidAt      time.Time
}

// NewOrderStore creates a new in-memory order store
func NewOrderStore() *OrderStore {
	return &OrderStore{
		orders: make(map[string]orderSnapshot),
	}
}

// GetByNumber retrieves an order, returning (nil, nil) when absent. Every
// call returns an independent aggregate.
func (s *OrderStore) GetByNumber(ctx context.Context, orderNumber string) (*aggregates.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	snap, exists := s.orders[orderNumber]
	if !exists {
		return nil, nil
	}
	return aggregates.Rehydrate(
		snap.orderNumber,
		snap.userID,
		snap.userName,
		snap.status,
		snap.items,
		snap.createdAt,
		snap.paidAt,
	), nil
}

// Save persists an order, creating or replacing it.
func (s *OrderStore) Save(ctx context.Context, order *aggregates.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	snap := orderSnapshot{
		orderNumber: order.OrderNumber(),
		userID:      order.UserID(),
		userName:    order.UserName(),
		status:      order.Status(),
		items:       order.Items(),
		createdAt:   order.CreatedAt(),
		paidAt:      order.PaidAt(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders[snap.orderNumber] = snap
	return nil
}

// Len returns the number of stored orders.
func (s *OrderStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}
