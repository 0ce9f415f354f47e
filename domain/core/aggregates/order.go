// Package aggregates holds the order aggregate root.
package aggregates

import (
	"time"

	"github.com/google/uuid"

	"orders-backend/domain/core/valueobjects"
	"orders-backend/pkg/errors"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusSubmitted OrderStatus = "submitted"
	StatusPaid      OrderStatus = "paid"
)

// Order is the aggregate root for a customer order.
type Order struct {
	orderNumber string
	userID      string
	userName    string
	status      OrderStatus
	items       []valueobjects.OrderItem
	createdAt   time.Time
	paidAt      time.Time
}

// NewOrder creates a submitted order for the given user with at least one item.
func NewOrder(userID, userName string, items []valueobjects.OrderItem) (*Order, error) {
	if userID == "" {
		return nil, errors.NewValidation("user id is required")
	}
	if len(items) == 0 {
		return nil, errors.NewValidation("order requires at least one item")
	}

	return &Order{
		orderNumber: uuid.New().String(),
		userID:      userID,
		userName:    userName,
		status:      StatusSubmitted,
		items:       append([]valueobjects.OrderItem(nil), items...),
		createdAt:   time.Now().UTC(),
	}, nil
}

// Rehydrate rebuilds an order from persisted state.
func Rehydrate(orderNumber, userID, userName string, status OrderStatus, items []valueobjects.OrderItem, createdAt, paidAt time.Time) *Order {
	return &Order{
		orderNumber: orderNumber,
		userID:      userID,
		userName:    userName,
		status:      status,
		items:       append([]valueobjects.OrderItem(nil), items...),
		createdAt:   createdAt,
		paidAt:      paidAt,
	}
}

// OrderNumber returns the order identifier.
func (o *Order) OrderNumber() string { return o.orderNumber }

// UserID returns the buyer identifier.
func (o *Order) UserID() string { return o.userID }

// UserName returns the buyer display name.
func (o *Order) UserName() string { return o.userName }

// Status returns the current lifecycle state.
func (o *Order) Status() OrderStatus { return o.status }

// Items returns a copy of the order's line items.
func (o *Order) Items() []valueobjects.OrderItem {
	return append([]valueobjects.OrderItem(nil), o.items...)
}

// CreatedAt returns the submission time.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// PaidAt returns the payment time, zero if unpaid.
func (o *Order) PaidAt() time.Time { return o.paidAt }

// IsPaid reports whether the order has been paid.
func (o *Order) IsPaid() bool { return o.status == StatusPaid }

// MarkPaid transitions the order to paid. The transition is unconditional
// once payment processing completes; marking an already-paid order is a
// no-op so replayed commands cannot corrupt state.
func (o *Order) MarkPaid() {
	if o.status == StatusPaid {
		return
	}
	o.status = StatusPaid
	o.paidAt = time.Now().UTC()
}

// TotalUnits returns the sum of item quantities.
func (o *Order) TotalUnits() int {
	total := 0
	for _, item := range o.items {
		total += item.Units()
	}
	return total
}

// TotalValue returns the sum of (unitPrice - discount) * units across items.
func (o *Order) TotalValue() float64 {
	total := 0.0
	for _, item := range o.items {
		total += item.TotalValue()
	}
	return total
}
