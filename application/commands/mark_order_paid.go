package commands

import (
	"orders-backend/pkg/errors"
)

// MarkOrderPaidCommand represents the command to transition an order to paid
type MarkOrderPaidCommand struct {
	RequestID   string `json:"request_id" validate:"required"`
	OrderNumber string `json:"order_number" validate:"required"`
}

// CommandName identifies the command for dispatch and logging.
func (MarkOrderPaidCommand) CommandName() string { return "mark_order_paid" }

// RequestKey is the duplicate-request identifier used by the idempotency layer.
func (cmd MarkOrderPaidCommand) RequestKey() string { return cmd.RequestID }

// Validate validates the command
func (cmd MarkOrderPaidCommand) Validate() error {
	if cmd.OrderNumber == "" {
		return errors.NewValidation("order number is required")
	}
	return nil
}
