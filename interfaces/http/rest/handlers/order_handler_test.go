package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"orders-backend/application/commands"
	"orders-backend/application/mediator"
	queryhandlers "orders-backend/application/queries/handlers"
	"orders-backend/domain/core/aggregates"
	"orders-backend/domain/core/valueobjects"
	"orders-backend/infrastructure/persistence/memory"
	"orders-backend/pkg/auth"
)

func newTestHandler(t *testing.T, store *memory.OrderStore, med *mediator.Mediator) *OrderHandler {
	t.Helper()
	logger := zap.NewNop()
	return NewOrderHandler(med, queryhandlers.NewGetOrderHandler(store, logger), logger)
}

func authedRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := auth.WithPrincipal(req.Context(), auth.Principal{Subject: "user1234567", Name: "John Smith"})
	return req.WithContext(ctx)
}

func TestCreateOrder_ReturnsCreatedOrder(t *testing.T) {
	store := memory.NewOrderStore()
	med := mediator.NewMediator(zap.NewNop())
	med.Register("create_order", func(ctx context.Context, cmd mediator.Command) (any, error) {
		create := cmd.(commands.CreateOrderCommand)
		item, err := valueobjects.NewOrderItem("p-1", "widget", 2, 10, 0)
		require.NoError(t, err)
		order, err := aggregates.NewOrder(create.UserID, create.UserName, []valueobjects.OrderItem{item})
		require.NoError(t, err)
		return order, nil
	})
	handler := newTestHandler(t, store, med)

	body := `{"requestId":"req-1","items":[{"productId":"p-1","productName":"widget","units":2,"unitPrice":10,"discount":0}]}`
	rec := httptest.NewRecorder()
	handler.CreateOrder(rec, authedRequest(http.MethodPost, "/api/orders", body))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalValue":20`)
	assert.Contains(t, rec.Body.String(), `"status":"submitted"`)
}

func TestCreateOrder_RejectsAnonymousCaller(t *testing.T) {
	store := memory.NewOrderStore()
	handler := newTestHandler(t, store, mediator.NewMediator(zap.NewNop()))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{}`))
	handler.CreateOrder(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateOrder_RejectsMalformedBody(t *testing.T) {
	store := memory.NewOrderStore()
	handler := newTestHandler(t, store, mediator.NewMediator(zap.NewNop()))

	rec := httptest.NewRecorder()
	handler.CreateOrder(rec, authedRequest(http.MethodPost, "/api/orders", "{not json"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetOrder_NotFound(t *testing.T) {
	store := memory.NewOrderStore()
	handler := newTestHandler(t, store, mediator.NewMediator(zap.NewNop()))

	req := authedRequest(http.MethodGet, "/api/orders/missing", "")
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("orderNumber", "missing")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))

	rec := httptest.NewRecorder()
	handler.GetOrder(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMarkOrderPaid_ReportsTransition(t *testing.T) {
	store := memory.NewOrderStore()
	med := mediator.NewMediator(zap.NewNop())
	med.Register("mark_order_paid", func(ctx context.Context, cmd mediator.Command) (any, error) {
		return true, nil
	})
	handler := newTestHandler(t, store, med)

	req := authedRequest(http.MethodPut, "/api/orders/ord-1/paid", `{"requestId":"req-2"}`)
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("orderNumber", "ord-1")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))

	rec := httptest.NewRecorder()
	handler.MarkOrderPaid(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"paid":true`)
}
