package handlers

import (
	"context"
	"time"

	"go.uber.org/zap"

	"orders-backend/application/commands"
	"orders-backend/application/ports"
	"orders-backend/domain/events"
	"orders-backend/pkg/errors"
	"orders-backend/pkg/observability"
)

// MarkOrderPaidHandler transitions a submitted order to paid after the
// external payment wait completes. A missing order is a negative result,
// not a fault: the handler returns false without writing anything.
type MarkOrderPaidHandler struct {
	orders      ports.OrderRepository
	eventBus    ports.EventBus
	metrics     *observability.OrderMetrics
	logger      *zap.Logger
	paymentWait time.Duration
}

// NewMarkOrderPaidHandler creates a new handler instance. paymentWait
// stands in for external payment validation; zero disables the wait.
func NewMarkOrderPaidHandler(
	orders ports.OrderRepository,
	eventBus ports.EventBus,
	metrics *observability.OrderMetrics,
	logger *zap.Logger,
	paymentWait time.Duration,
) *MarkOrderPaidHandler {
	return &MarkOrderPaidHandler{
		orders:      orders,
		eventBus:    eventBus,
		metrics:     metrics,
		logger:      logger,
		paymentWait: paymentWait,
	}
}

// Handle executes the mark order paid command. The transition is
// unconditional once the payment wait completes; there is no rejection
// branch. Cancellation during the wait or the save aborts without emitting
// success metrics.
func (h *MarkOrderPaidHandler) Handle(ctx context.Context, cmd commands.MarkOrderPaidCommand) (bool, error) {
	start := time.Now()

	order, err := h.orders.GetByNumber(ctx, cmd.OrderNumber)
	if err != nil {
		wrapped := errors.Wrap(err, "failed to load order")
		h.metrics.RecordPaymentError(ctx, wrapped)
		h.logger.Error("Payment handling failed",
			zap.String("orderNumber", cmd.OrderNumber),
			zap.Error(wrapped))
		return false, wrapped
	}
	if order == nil {
		h.logger.Info("Order not found for payment",
			zap.String("orderNumber", cmd.OrderNumber))
		return false, nil
	}

	if err := h.awaitPayment(ctx); err != nil {
		h.metrics.RecordPaymentError(ctx, err)
		h.logger.Warn("Payment wait aborted",
			zap.String("orderNumber", cmd.OrderNumber),
			zap.Error(err))
		return false, err
	}

	order.MarkPaid()
	if err := h.orders.Save(ctx, order); err != nil {
		wrapped := errors.Wrap(err, "failed to save paid order")
		h.metrics.RecordPaymentError(ctx, wrapped)
		h.logger.Error("Payment handling failed",
			zap.String("orderNumber", cmd.OrderNumber),
			zap.Error(wrapped))
		return false, wrapped
	}

	h.metrics.RecordOrderPaid(ctx, order.OrderNumber(), time.Since(start).Seconds())

	if err := h.eventBus.Publish(ctx, events.NewOrderPaidEvent(order.OrderNumber())); err != nil {
		h.logger.Warn("Failed to publish order paid event",
			zap.String("orderNumber", order.OrderNumber()),
			zap.Error(err))
	}

	h.logger.Info("Order marked as paid",
		zap.String("orderNumber", order.OrderNumber()))

	return true, nil
}

// awaitPayment blocks for the configured payment window, yielding early if
// the caller cancels.
func (h *MarkOrderPaidHandler) awaitPayment(ctx context.Context) error {
	if h.paymentWait <= 0 {
		return nil
	}

	timer := time.NewTimer(h.paymentWait)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
