package mediator

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"orders-backend/application/ports"
	"orders-backend/pkg/errors"
)

// Validatable is implemented by commands carrying their own invariants.
type Validatable interface {
	Validate() error
}

// Keyed is implemented by commands that carry a duplicate-request
// identifier. An empty key opts out of deduplication.
type Keyed interface {
	RequestKey() string
}

// LoggingBehavior logs every dispatched command with its outcome and
// duration.
func LoggingBehavior(logger *zap.Logger) Behavior {
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, cmd Command) (any, error) {
			start := time.Now()

			result, err := next(ctx, cmd)
			if err != nil {
				logger.Error("Command failed",
					zap.String("command", cmd.CommandName()),
					zap.Duration("duration", time.Since(start)),
					zap.Error(err))
				return result, err
			}

			logger.Debug("Command succeeded",
				zap.String("command", cmd.CommandName()),
				zap.Duration("duration", time.Since(start)))
			return result, nil
		}
	}
}

// ValidationBehavior rejects structurally invalid commands before they
// reach a handler, using the struct tags plus the command's own Validate.
func ValidationBehavior(validate *validator.Validate) Behavior {
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, cmd Command) (any, error) {
			if err := validate.Struct(cmd); err != nil {
				return nil, errors.NewValidation(fmt.Sprintf("invalid %s command: %v", cmd.CommandName(), err))
			}
			if v, ok := cmd.(Validatable); ok {
				if err := v.Validate(); err != nil {
					return nil, err
				}
			}
			return next(ctx, cmd)
		}
	}
}

// IdempotencyBehavior short-circuits duplicate commands to their cached
// outcome so handler side effects and metrics are applied exactly once per
// logical request. Store failures degrade to re-execution rather than
// failing the command.
func IdempotencyBehavior(store ports.IdempotencyStore, logger *zap.Logger) Behavior {
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, cmd Command) (any, error) {
			keyed, ok := cmd.(Keyed)
			if !ok || keyed.RequestKey() == "" {
				return next(ctx, cmd)
			}

			cached, found, err := store.Get(ctx, cmd.CommandName(), keyed.RequestKey())
			if err != nil {
				logger.Warn("Idempotency lookup failed",
					zap.String("command", cmd.CommandName()),
					zap.Error(err))
			} else if found {
				logger.Info("Duplicate command short-circuited",
					zap.String("command", cmd.CommandName()),
					zap.String("requestKey", keyed.RequestKey()))
				return cached, nil
			}

			result, err := next(ctx, cmd)
			if err != nil {
				// Failed attempts are not cached; a retry gets a fresh run.
				return result, err
			}

			if storeErr := store.Store(ctx, cmd.CommandName(), keyed.RequestKey(), result); storeErr != nil {
				logger.Warn("Failed to store idempotency result",
					zap.String("command", cmd.CommandName()),
					zap.Error(storeErr))
			}

			return result, nil
		}
	}
}
