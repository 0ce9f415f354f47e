package mediator

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"orders-backend/infrastructure/persistence/memory"
	"orders-backend/pkg/errors"
)

type testCommand struct {
	RequestID string `validate:"required"`
	Value     string
}

func (testCommand) CommandName() string { return "test_command" }

func (c testCommand) RequestKey() string { return c.RequestID }

func TestMediator_Send_UnknownCommand(t *testing.T) {
	m := NewMediator(zap.NewNop())

	_, err := m.Send(context.Background(), testCommand{RequestID: "r1"})

	assert.Error(t, err)
}

func TestMediator_Send_DispatchesToHandler(t *testing.T) {
	m := NewMediator(zap.NewNop())
	m.Register("test_command", func(ctx context.Context, cmd Command) (any, error) {
		return cmd.(testCommand).Value, nil
	})

	result, err := m.Send(context.Background(), testCommand{RequestID: "r1", Value: "ok"})

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
}

func TestValidationBehavior_RejectsInvalidCommand(t *testing.T) {
	m := NewMediator(zap.NewNop())
	m.Use(ValidationBehavior(validator.New()))

	invoked := false
	m.Register("test_command", func(ctx context.Context, cmd Command) (any, error) {
		invoked = true
		return nil, nil
	})

	_, err := m.Send(context.Background(), testCommand{})

	assert.True(t, errors.IsValidation(err))
	assert.False(t, invoked)
}

func TestIdempotencyBehavior_ShortCircuitsDuplicates(t *testing.T) {
	store := memory.NewIdempotencyStore(0)
	m := NewMediator(zap.NewNop())
	m.Use(IdempotencyBehavior(store, zap.NewNop()))

	invocations := 0
	m.Register("test_command", func(ctx context.Context, cmd Command) (any, error) {
		invocations++
		return "outcome", nil
	})

	first, err := m.Send(context.Background(), testCommand{RequestID: "dup"})
	require.NoError(t, err)
	second, err := m.Send(context.Background(), testCommand{RequestID: "dup"})
	require.NoError(t, err)

	assert.Equal(t, "outcome", first)
	assert.Equal(t, "outcome", second)
	assert.Equal(t, 1, invocations, "duplicate request must not re-run the handler")
}

func TestIdempotencyBehavior_FailuresAreNotCached(t *testing.T) {
	store := memory.NewIdempotencyStore(0)
	m := NewMediator(zap.NewNop())
	m.Use(IdempotencyBehavior(store, zap.NewNop()))

	invocations := 0
	m.Register("test_command", func(ctx context.Context, cmd Command) (any, error) {
		invocations++
		if invocations == 1 {
			return nil, errors.NewInternal("transient", nil)
		}
		return "recovered", nil
	})

	_, err := m.Send(context.Background(), testCommand{RequestID: "retry"})
	require.Error(t, err)

	result, err := m.Send(context.Background(), testCommand{RequestID: "retry"})
	require.NoError(t, err)
	assert.Equal(t, "recovered", result)
	assert.Equal(t, 2, invocations)
}
