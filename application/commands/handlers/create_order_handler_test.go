package handlers

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"orders-backend/application/commands"
	"orders-backend/pkg/errors"
	"orders-backend/pkg/observability"
	"orders-backend/tests/fixtures"
	"orders-backend/tests/mocks"
)

func createOrderCommand() commands.CreateOrderCommand {
	return commands.CreateOrderCommand{
		RequestID: "req-1",
		UserID:    "user1234567",
		UserName:  "alice",
		Items: []commands.OrderItemInput{
			{ProductID: "prod-1", ProductName: "keyboard", Units: 3, UnitPrice: 10, Discount: 1},
			{ProductID: "prod-2", ProductName: "monitor", Units: 1, UnitPrice: 20, Discount: 0},
		},
	}
}

func TestCreateOrderHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockRepo := new(mocks.MockOrderRepository)
	mockBus := new(mocks.MockEventBus)
	metrics, reader := fixtures.NewTestOrderMetrics(t)
	logger := zap.NewNop()

	mockRepo.On("Save", ctx, mock.Anything).Return(nil)
	mockBus.On("Publish", ctx, mock.Anything).Return(nil)

	handler := NewCreateOrderHandler(mockRepo, mockBus, metrics, logger)

	// Act
	order, err := handler.Handle(ctx, createOrderCommand())

	// Assert
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, 4, order.TotalUnits())
	assert.Equal(t, 47.0, order.TotalValue())

	rm := fixtures.Collect(t, reader)
	assert.EqualValues(t, 1, fixtures.CounterValue(t, rm, "orderPlacedCounter"))
	assert.EqualValues(t, 4, fixtures.CounterValue(t, rm, "orderItemsCounter"))
	assert.InDelta(t, 47.0, fixtures.FloatCounterValue(t, rm, "orderValueCounter"), 1e-9)
	assert.EqualValues(t, 1, fixtures.HistogramCount(t, rm, "orderProcessingTimeHistogram"))
	assert.Equal(t, "user****", fixtures.CounterAttr(t, rm, "orderPlacedCounter", observability.AttrUserID))

	mockRepo.AssertExpectations(t)
	mockBus.AssertExpectations(t)
}

func TestCreateOrderHandler_Handle_ValidationFault(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockRepo := new(mocks.MockOrderRepository)
	mockBus := new(mocks.MockEventBus)
	metrics, reader := fixtures.NewTestOrderMetrics(t)

	handler := NewCreateOrderHandler(mockRepo, mockBus, metrics, zap.NewNop())

	cmd := createOrderCommand()
	cmd.Items[0].Units = 0

	// Act
	order, err := handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.IsValidation(err))

	rm := fixtures.Collect(t, reader)
	assert.EqualValues(t, 1, fixtures.CounterValue(t, rm, "orderProcessingErrorsCounter"))
	assert.Equal(t, "VALIDATION", fixtures.CounterAttr(t, rm, "orderProcessingErrorsCounter", observability.AttrErrorKind))
	assert.EqualValues(t, 0, fixtures.CounterValue(t, rm, "orderPlacedCounter"))

	// Nothing was persisted or published.
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	mockBus.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestCreateOrderHandler_Handle_SaveFault(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockRepo := new(mocks.MockOrderRepository)
	mockBus := new(mocks.MockEventBus)
	metrics, reader := fixtures.NewTestOrderMetrics(t)

	mockRepo.On("Save", ctx, mock.Anything).Return(errors.NewInternal("dynamo down", nil))

	handler := NewCreateOrderHandler(mockRepo, mockBus, metrics, zap.NewNop())

	// Act
	_, err := handler.Handle(ctx, createOrderCommand())

	// Assert
	require.Error(t, err)
	assert.True(t, errors.IsInternal(err))

	rm := fixtures.Collect(t, reader)
	assert.EqualValues(t, 1, fixtures.CounterValue(t, rm, "orderProcessingErrorsCounter"))
	assert.Equal(t, "INTERNAL", fixtures.CounterAttr(t, rm, "orderProcessingErrorsCounter", observability.AttrErrorKind))
	assert.EqualValues(t, 0, fixtures.CounterValue(t, rm, "orderPlacedCounter"))
}

func TestCreateOrderHandler_Handle_EventPublishFailureDoesNotFailOrder(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockRepo := new(mocks.MockOrderRepository)
	mockBus := new(mocks.MockEventBus)
	metrics, reader := fixtures.NewTestOrderMetrics(t)

	mockRepo.On("Save", ctx, mock.Anything).Return(nil)
	mockBus.On("Publish", ctx, mock.Anything).Return(errors.NewInternal("bus down", nil))

	handler := NewCreateOrderHandler(mockRepo, mockBus, metrics, zap.NewNop())

	// Act
	order, err := handler.Handle(ctx, createOrderCommand())

	// Assert
	require.NoError(t, err)
	require.NotNil(t, order)

	rm := fixtures.Collect(t, reader)
	assert.EqualValues(t, 1, fixtures.CounterValue(t, rm, "orderPlacedCounter"))
	assert.EqualValues(t, 0, fixtures.CounterValue(t, rm, "orderProcessingErrorsCounter"))
}

func TestCreateOrderHandler_Handle_Concurrent(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockRepo := new(mocks.MockOrderRepository)
	mockBus := new(mocks.MockEventBus)
	metrics, reader := fixtures.NewTestOrderMetrics(t)

	mockRepo.On("Save", mock.Anything, mock.Anything).Return(nil)
	mockBus.On("Publish", mock.Anything, mock.Anything).Return(nil)

	handler := NewCreateOrderHandler(mockRepo, mockBus, metrics, zap.NewNop())

	// Act: 100 simultaneous order creations.
	const workers = 100
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := handler.Handle(ctx, createOrderCommand())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// Assert: no lost counter updates.
	rm := fixtures.Collect(t, reader)
	assert.EqualValues(t, workers, fixtures.CounterValue(t, rm, "orderPlacedCounter"))
	assert.EqualValues(t, workers*4, fixtures.CounterValue(t, rm, "orderItemsCounter"))
}
