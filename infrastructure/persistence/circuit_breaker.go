// Package persistence provides decorators applied around the concrete
// repository implementations.
package persistence

import (
	"context"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"orders-backend/application/ports"
	"orders-backend/domain/core/aggregates"
	appErrors "orders-backend/pkg/errors"
)

// CircuitBreakerRepository wraps an OrderRepository so a failing backing
// store sheds load instead of stacking up timeouts.
type CircuitBreakerRepository struct {
	inner   ports.OrderRepository
	breaker *gobreaker.CircuitBreaker
	logger  *zap.Logger
}

// NewCircuitBreakerRepository decorates the given repository with a
// circuit breaker.
func NewCircuitBreakerRepository(inner ports.OrderRepository, logger *zap.Logger) *CircuitBreakerRepository {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "order-repository",
		MaxRequests: 5,
		Interval:    30 * time.Second,
		Timeout:     60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 5 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= 0.8
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})

	return &CircuitBreakerRepository{
		inner:   inner,
		breaker: breaker,
		logger:  logger,
	}
}

// GetByNumber retrieves an order through the breaker.
func (r *CircuitBreakerRepository) GetByNumber(ctx context.Context, orderNumber string) (*aggregates.Order, error) {
	result, err := r.breaker.Execute(func() (any, error) {
		return r.inner.GetByNumber(ctx, orderNumber)
	})
	if err != nil {
		return nil, r.mapError(err)
	}
	if result == nil {
		return nil, nil
	}
	order, _ := result.(*aggregates.Order)
	return order, nil
}

// Save persists an order through the breaker.
func (r *CircuitBreakerRepository) Save(ctx context.Context, order *aggregates.Order) error {
	_, err := r.breaker.Execute(func() (any, error) {
		return nil, r.inner.Save(ctx, order)
	})
	if err != nil {
		return r.mapError(err)
	}
	return nil
}

func (r *CircuitBreakerRepository) mapError(err error) error {
	switch err {
	case gobreaker.ErrOpenState, gobreaker.ErrTooManyRequests:
		return appErrors.NewInternal("order store unavailable", err)
	default:
		return err
	}
}
