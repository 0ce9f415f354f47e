// Package handlers contains the query handlers.
package handlers

import (
	"context"

	"go.uber.org/zap"

	"orders-backend/application/ports"
	"orders-backend/application/queries"
	"orders-backend/application/queries/models"
)

// GetOrderHandler resolves an order read model. A missing order yields
// (nil, nil); absence is not a fault.
type GetOrderHandler struct {
	orders ports.OrderRepository
	logger *zap.Logger
}

// NewGetOrderHandler creates a new handler instance
func NewGetOrderHandler(orders ports.OrderRepository, logger *zap.Logger) *GetOrderHandler {
	return &GetOrderHandler{orders: orders, logger: logger}
}

// Handle executes the get order query
func (h *GetOrderHandler) Handle(ctx context.Context, query queries.GetOrderQuery) (*models.OrderView, error) {
	order, err := h.orders.GetByNumber(ctx, query.OrderNumber)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}

	items := make([]models.OrderItemView, 0, len(order.Items()))
	for _, item := range order.Items() {
		items = append(items, models.OrderItemView{
			ProductID:   item.ProductID(),
			ProductName: item.ProductName(),
			Units:       item.Units(),
			UnitPrice:   item.UnitPrice(),
			Discount:    item.Discount(),
		})
	}

	return &models.OrderView{
		OrderNumber: order.OrderNumber(),
		Status:      string(order.Status()),
		Items:       items,
		TotalUnits:  order.TotalUnits(),
		TotalValue:  order.TotalValue(),
		CreatedAt:   order.CreatedAt(),
		PaidAt:      order.PaidAt(),
	}, nil
}
