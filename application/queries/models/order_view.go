// Package models holds the read models returned by query handlers.
package models

import "time"

// OrderItemView is the read model for a line item.
type OrderItemView struct {
	ProductID   string
	ProductName string
	Units       int
	UnitPrice   float64
	Discount    float64
}

// OrderView is the read model for a single order.
type OrderView struct {
	OrderNumber string
	Status      string
	Items       []OrderItemView
	TotalUnits  int
	TotalValue  float64
	CreatedAt   time.Time
	PaidAt      time.Time
}
