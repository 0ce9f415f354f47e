// Package events defines the domain events emitted by order handling.
package events

import "time"

// Event sources - These define where events originate from
const (
	// SourceBackend is the primary backend service source
	SourceBackend = "orders.backend"
)

// Event types - These define the types of events in the system
const (
	TypeOrderPlaced = "order.placed"
	TypeOrderPaid   = "order.paid"
)

// DomainEvent is implemented by every event published on the event bus.
type DomainEvent interface {
	GetEventType() string
	GetAggregateID() string
	GetTimestamp() time.Time
}

// OrderPlacedEvent is published after an order is successfully created.
// Identity fields carry masked values only; raw identity never leaves the
// process through telemetry or events.
type OrderPlacedEvent struct {
	OrderNumber string    `json:"orderNumber"`
	MaskedUser  string    `json:"user"`
	TotalUnits  int       `json:"totalUnits"`
	TotalValue  float64   `json:"totalValue"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewOrderPlacedEvent creates an order placed event.
func NewOrderPlacedEvent(orderNumber, maskedUser string, totalUnits int, totalValue float64) *OrderPlacedEvent {
	return &OrderPlacedEvent{
		OrderNumber: orderNumber,
		MaskedUser:  maskedUser,
		TotalUnits:  totalUnits,
		TotalValue:  totalValue,
		Timestamp:   time.Now().UTC(),
	}
}

// GetEventType returns the event type
func (e *OrderPlacedEvent) GetEventType() string { return TypeOrderPlaced }

// GetAggregateID returns the aggregate ID
func (e *OrderPlacedEvent) GetAggregateID() string { return e.OrderNumber }

// GetTimestamp returns the event timestamp
func (e *OrderPlacedEvent) GetTimestamp() time.Time { return e.Timestamp }

// OrderPaidEvent is published after an order transitions to paid.
type OrderPaidEvent struct {
	OrderNumber string    `json:"orderNumber"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewOrderPaidEvent creates an order paid event.
func NewOrderPaidEvent(orderNumber string) *OrderPaidEvent {
	return &OrderPaidEvent{
		OrderNumber: orderNumber,
		Timestamp:   time.Now().UTC(),
	}
}

// GetEventType returns the event type
func (e *OrderPaidEvent) GetEventType() string { return TypeOrderPaid }

// GetAggregateID returns the aggregate ID
func (e *OrderPaidEvent) GetAggregateID() string { return e.OrderNumber }

// GetTimestamp returns the event timestamp
func (e *OrderPaidEvent) GetTimestamp() time.Time { return e.Timestamp }
