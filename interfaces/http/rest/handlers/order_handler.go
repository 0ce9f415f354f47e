// Package handlers contains the HTTP handlers for the order endpoints.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"orders-backend/application/commands"
	"orders-backend/application/mediator"
	"orders-backend/application/queries"
	queryhandlers "orders-backend/application/queries/handlers"
	"orders-backend/application/queries/models"
	"orders-backend/domain/core/aggregates"
	"orders-backend/pkg/api"
	"orders-backend/pkg/auth"
	"orders-backend/pkg/errors"
)

// OrderHandler serves the order endpoints. Writes go through the mediator,
// reads hit the query handler directly.
type OrderHandler struct {
	mediator *mediator.Mediator
	getOrder *queryhandlers.GetOrderHandler
	logger   *zap.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(m *mediator.Mediator, getOrder *queryhandlers.GetOrderHandler, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{mediator: m, getOrder: getOrder, logger: logger}
}

// CreateOrder handles POST /api/v1/orders.
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		api.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req api.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	items := make([]commands.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.OrderItemInput{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Units:       item.Units,
			UnitPrice:   item.UnitPrice,
			Discount:    item.Discount,
		})
	}

	result, err := h.mediator.Send(r.Context(), commands.CreateOrderCommand{
		RequestID: req.RequestID,
		UserID:    principal.Subject,
		UserName:  principal.Name,
		Items:     items,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	order, ok := result.(*aggregates.Order)
	if !ok {
		api.Error(w, http.StatusInternalServerError, "unexpected command result")
		return
	}

	api.Success(w, http.StatusCreated, orderResponse(order))
}

// MarkOrderPaid handles POST /api/v1/orders/{orderNumber}/pay.
func (h *OrderHandler) MarkOrderPaid(w http.ResponseWriter, r *http.Request) {
	orderNumber := chi.URLParam(r, "orderNumber")
	if orderNumber == "" {
		api.Error(w, http.StatusBadRequest, "order number is required")
		return
	}

	var req api.MarkOrderPaidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.mediator.Send(r.Context(), commands.MarkOrderPaidCommand{
		RequestID:   req.RequestID,
		OrderNumber: orderNumber,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	paid, _ := result.(bool)
	api.Success(w, http.StatusOK, api.MarkOrderPaidResponse{
		OrderNumber: orderNumber,
		Paid:        paid,
	})
}

// GetOrder handles GET /api/v1/orders/{orderNumber}.
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderNumber := chi.URLParam(r, "orderNumber")
	if orderNumber == "" {
		api.Error(w, http.StatusBadRequest, "order number is required")
		return
	}

	view, err := h.getOrder.Handle(r.Context(), queries.GetOrderQuery{OrderNumber: orderNumber})
	if err != nil {
		h.writeError(w, err)
		return
	}
	if view == nil {
		api.Error(w, http.StatusNotFound, "order not found")
		return
	}

	api.Success(w, http.StatusOK, viewResponse(view))
}

func (h *OrderHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.IsValidation(err):
		api.Error(w, http.StatusBadRequest, err.Error())
	case errors.IsNotFound(err):
		api.Error(w, http.StatusNotFound, err.Error())
	case errors.IsConflict(err):
		api.Error(w, http.StatusConflict, err.Error())
	default:
		h.logger.Error("request failed", zap.Error(err))
		api.Error(w, http.StatusInternalServerError, "internal server error")
	}
}

func orderResponse(order *aggregates.Order) api.OrderResponse {
	items := make([]api.OrderItemResponse, 0, len(order.Items()))
	for _, item := range order.Items() {
		items = append(items, api.OrderItemResponse{
			ProductID:   item.ProductID(),
			ProductName: item.ProductName(),
			Units:       item.Units(),
			UnitPrice:   item.UnitPrice(),
			Discount:    item.Discount(),
		})
	}

	resp := api.OrderResponse{
		OrderNumber: order.OrderNumber(),
		Status:      string(order.Status()),
		Items:       items,
		TotalUnits:  order.TotalUnits(),
		TotalValue:  order.TotalValue(),
		CreatedAt:   order.CreatedAt().Format(time.RFC3339),
	}
	if order.IsPaid() {
		resp.PaidAt = order.PaidAt().Format(time.RFC3339)
	}
	return resp
}

func viewResponse(view *models.OrderView) api.OrderResponse {
	items := make([]api.OrderItemResponse, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, api.OrderItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Units:       item.Units,
			UnitPrice:   item.UnitPrice,
			Discount:    item.Discount,
		})
	}

	resp := api.OrderResponse{
		OrderNumber: view.OrderNumber,
		Status:      view.Status,
		Items:       items,
		TotalUnits:  view.TotalUnits,
		TotalValue:  view.TotalValue,
		CreatedAt:   view.CreatedAt.Format(time.RFC3339),
	}
	if !view.PaidAt.IsZero() {
		resp.PaidAt = view.PaidAt.Format(time.RFC3339)
	}
	return resp
}
