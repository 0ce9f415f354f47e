// Package observability owns the business metric instruments for order
// handling. Instruments are created once at startup from an injected meter
// and shared by every in-flight request; the OpenTelemetry SDK guarantees
// concurrent Add/Record calls are safe without caller-side locking.
package observability

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"orders-backend/domain/core/aggregates"
	"orders-backend/pkg/errors"
)

// Attribute keys attached to metric data points. Identity-bearing values
// are masked before they reach these attributes.
const (
	AttrOrderID   = "order_id"
	AttrUserID    = "user_id"
	AttrErrorKind = "error_kind"
)

// OrderMetrics holds the long-lived metric instruments referenced by the
// command handlers. Instrument names, units, and descriptions are part of
// the externally observable contract.
type OrderMetrics struct {
	OrdersPlaced            metric.Int64Counter
	OrderItems              metric.Int64Counter
	OrderValue              metric.Float64Counter
	OrderProcessingTime     metric.Float64Histogram
	OrderProcessingErrors   metric.Int64Counter
	OrdersPaid              metric.Int64Counter
	PaymentProcessingTime   metric.Float64Histogram
	PaymentProcessingErrors metric.Int64Counter
}

// NewOrderMetrics creates the order instruments on the given meter. Called
// exactly once per process, at container construction.
func NewOrderMetrics(meter metric.Meter) (*OrderMetrics, error) {
	m := &OrderMetrics{}
	var err error

	if m.OrdersPlaced, err = meter.Int64Counter("orderPlacedCounter",
		metric.WithDescription("Number of orders placed"),
		metric.WithUnit("{count}"),
	); err != nil {
		return nil, err
	}

	if m.OrderItems, err = meter.Int64Counter("orderItemsCounter",
		metric.WithDescription("Sum of item quantities across created orders"),
		metric.WithUnit("{count}"),
	); err != nil {
		return nil, err
	}

	if m.OrderValue, err = meter.Float64Counter("orderValueCounter",
		metric.WithDescription("Sum of (unit price - discount) * units across created orders"),
		metric.WithUnit("{currency}"),
	); err != nil {
		return nil, err
	}

	if m.OrderProcessingTime, err = meter.Float64Histogram("orderProcessingTimeHistogram",
		metric.WithDescription("Wall-clock duration of order creation handling"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, err
	}

	if m.OrderProcessingErrors, err = meter.Int64Counter("orderProcessingErrorsCounter",
		metric.WithDescription("Number of failed order creation attempts, tagged by error kind"),
		metric.WithUnit("{count}"),
	); err != nil {
		return nil, err
	}

	if m.OrdersPaid, err = meter.Int64Counter("orderPaidCounter",
		metric.WithDescription("Number of orders transitioned to paid"),
		metric.WithUnit("{count}"),
	); err != nil {
		return nil, err
	}

	if m.PaymentProcessingTime, err = meter.Float64Histogram("paymentProcessingTimeHistogram",
		metric.WithDescription("Wall-clock duration of payment status handling"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, err
	}

	if m.PaymentProcessingErrors, err = meter.Int64Counter("paymentProcessingErrorsCounter",
		metric.WithDescription("Number of failed payment status attempts, tagged by error kind"),
		metric.WithUnit("{count}"),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RecordOrderPlaced updates the business counters for a successfully
// created order. maskedUserID must already be masked.
func (m *OrderMetrics) RecordOrderPlaced(ctx context.Context, order *aggregates.Order, maskedUserID string, elapsedSeconds float64) {
	attrs := metric.WithAttributes(
		attribute.String(AttrOrderID, order.OrderNumber()),
		attribute.String(AttrUserID, maskedUserID),
	)

	m.OrdersPlaced.Add(ctx, 1, attrs)
	m.OrderItems.Add(ctx, int64(order.TotalUnits()), attrs)
	m.OrderValue.Add(ctx, order.TotalValue(), attrs)
	m.OrderProcessingTime.Record(ctx, elapsedSeconds)
}

// RecordOrderError counts a failed order creation attempt.
func (m *OrderMetrics) RecordOrderError(ctx context.Context, err error) {
	m.OrderProcessingErrors.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrErrorKind, errors.Kind(err)),
	))
}

// RecordOrderPaid updates the payment counters for a paid order.
func (m *OrderMetrics) RecordOrderPaid(ctx context.Context, orderNumber string, elapsedSeconds float64) {
	m.OrdersPaid.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrOrderID, orderNumber),
	))
	m.PaymentProcessingTime.Record(ctx, elapsedSeconds)
}

// RecordPaymentError counts a failed payment status attempt.
func (m *OrderMetrics) RecordPaymentError(ctx context.Context, err error) {
	m.PaymentProcessingErrors.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrErrorKind, errors.Kind(err)),
	))
}
