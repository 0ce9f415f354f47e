// Package commands defines the write-side operations of the order service.
package commands

import (
	"orders-backend/pkg/errors"
)

// OrderItemInput is one line item on a create order command.
type OrderItemInput struct {
	ProductID   string  `json:"product_id" validate:"required"`
	ProductName string  `json:"product_name" validate:"max=200"`
	Units       int     `json:"units" validate:"required,gt=0"`
	UnitPrice   float64 `json:"unit_price" validate:"gte=0"`
	Discount    float64 `json:"discount" validate:"gte=0"`
}

// CreateOrderCommand represents the command to place a new order
type CreateOrderCommand struct {
	RequestID string           `json:"request_id" validate:"required"`
	UserID    string           `json:"user_id" validate:"required"`
	UserName  string           `json:"user_name" validate:"max=200"`
	Items     []OrderItemInput `json:"items" validate:"required,min=1,dive"`
}

// CommandName identifies the command for dispatch and logging.
func (CreateOrderCommand) CommandName() string { return "create_order" }

// RequestKey is the duplicate-request identifier used by the idempotency layer.
func (cmd CreateOrderCommand) RequestKey() string { return cmd.RequestID }

// Validate validates the command
func (cmd CreateOrderCommand) Validate() error {
	if cmd.UserID == "" {
		return errors.NewValidation("user ID is required")
	}
	if len(cmd.Items) == 0 {
		return errors.NewValidation("at least one item is required")
	}
	return nil
}
