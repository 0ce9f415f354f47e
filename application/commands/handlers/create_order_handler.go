// Package handlers contains the instrumented command handlers. Both share
// one shape: time the operation, run the domain logic, and record metrics
// for the outcome without ever letting telemetry affect the result.
package handlers

import (
	"context"
	"time"

	"go.uber.org/zap"

	"orders-backend/application/commands"
	"orders-backend/application/ports"
	"orders-backend/domain/core/aggregates"
	"orders-backend/domain/core/valueobjects"
	"orders-backend/domain/events"
	"orders-backend/pkg/errors"
	"orders-backend/pkg/masking"
	"orders-backend/pkg/observability"
)

// CreateOrderHandler handles the CreateOrderCommand
type CreateOrderHandler struct {
	orders   ports.OrderRepository
	eventBus ports.EventBus
	metrics  *observability.OrderMetrics
	logger   *zap.Logger
}

// NewCreateOrderHandler creates a new handler instance
func NewCreateOrderHandler(
	orders ports.OrderRepository,
	eventBus ports.EventBus,
	metrics *observability.OrderMetrics,
	logger *zap.Logger,
) *CreateOrderHandler {
	return &CreateOrderHandler{
		orders:   orders,
		eventBus: eventBus,
		metrics:  metrics,
		logger:   logger,
	}
}

// Handle executes the create order command. On failure the fault is counted
// by kind and re-raised unchanged; instrument writes themselves cannot fail,
// so telemetry is never a reason to fail the command.
func (h *CreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*aggregates.Order, error) {
	start := time.Now()

	order, err := h.createOrder(ctx, cmd)
	if err != nil {
		h.metrics.RecordOrderError(ctx, err)
		h.logger.Error("Order creation failed",
			zap.String("userID", masking.UserID(cmd.UserID)),
			zap.Error(err))
		return nil, err
	}

	h.metrics.RecordOrderPlaced(ctx, order, masking.UserID(cmd.UserID), time.Since(start).Seconds())

	event := events.NewOrderPlacedEvent(
		order.OrderNumber(),
		masking.UserID(order.UserID()),
		order.TotalUnits(),
		order.TotalValue(),
	)
	if err := h.eventBus.Publish(ctx, event); err != nil {
		// Events can be replayed downstream; a publish failure never fails
		// the order.
		h.logger.Warn("Failed to publish order placed event",
			zap.String("orderNumber", order.OrderNumber()),
			zap.Error(err))
	}

	h.logger.Info("Order placed",
		zap.String("orderNumber", order.OrderNumber()),
		zap.String("userID", masking.UserID(order.UserID())),
		zap.Int("totalUnits", order.TotalUnits()))

	return order, nil
}

// createOrder runs the domain logic: build and validate the aggregate, then
// persist it.
func (h *CreateOrderHandler) createOrder(ctx context.Context, cmd commands.CreateOrderCommand) (*aggregates.Order, error) {
	items := make([]valueobjects.OrderItem, 0, len(cmd.Items))
	for _, in := range cmd.Items {
		item, err := valueobjects.NewOrderItem(in.ProductID, in.ProductName, in.Units, in.UnitPrice, in.Discount)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	order, err := aggregates.NewOrder(cmd.UserID, cmd.UserName, items)
	if err != nil {
		return nil, err
	}

	if err := h.orders.Save(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to save order")
	}

	return order, nil
}
