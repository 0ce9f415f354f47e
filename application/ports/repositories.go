// Package ports defines the interfaces the application layer depends on.
// Implementations live in the infrastructure layer.
package ports

import (
	"context"
	"time"

	"orders-backend/domain/core/aggregates"
)

// OrderRepository persists and loads order aggregates.
//
// GetByNumber returns (nil, nil) when the order does not exist; absence is
// ordinary control flow, not a fault.
type OrderRepository interface {
	GetByNumber(ctx context.Context, orderNumber string) (*aggregates.Order, error)
	Save(ctx context.Context, order *aggregates.Order) error
}

// IdempotencyStore caches command outcomes keyed by request id so retried
// commands short-circuit to their original result instead of re-running.
type IdempotencyStore interface {
	// Get returns the cached outcome and whether one exists.
	Get(ctx context.Context, operation, key string) (any, bool, error)

	// Store records an outcome. The first writer wins; storing an already
	// present key is not an error.
	Store(ctx context.Context, operation, key string, result any) error
}

// IdempotencyTTL is how long cached command outcomes are retained by default.
const IdempotencyTTL = 24 * time.Hour
