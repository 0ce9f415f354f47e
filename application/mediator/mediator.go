// Package mediator provides a single entry point for dispatching commands,
// decoupling the presentation layer from the application layer. Cross
// cutting concerns (logging, validation, idempotency) are behaviors wrapped
// around the registered handlers.
package mediator

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Command is implemented by every dispatchable command.
type Command interface {
	CommandName() string
}

// HandlerFunc executes a command and returns its outcome.
type HandlerFunc func(ctx context.Context, cmd Command) (any, error)

// Behavior wraps a handler with a cross-cutting concern. Behaviors may
// short-circuit (idempotency) or pass through (logging, validation).
type Behavior func(next HandlerFunc) HandlerFunc

// Mediator dispatches commands to their registered handlers through the
// behavior pipeline.
type Mediator struct {
	handlers  map[string]HandlerFunc
	behaviors []Behavior
	logger    *zap.Logger
}

// NewMediator creates a new mediator instance
func NewMediator(logger *zap.Logger) *Mediator {
	return &Mediator{
		handlers: make(map[string]HandlerFunc),
		logger:   logger,
	}
}

// Use appends a behavior to the pipeline. Behaviors run in registration
// order, outermost first.
func (m *Mediator) Use(b Behavior) {
	m.behaviors = append(m.behaviors, b)
}

// Register binds a command name to its handler. Registration happens once
// at startup; Send is safe for concurrent use afterwards.
func (m *Mediator) Register(name string, h HandlerFunc) {
	m.handlers[name] = h
}

// Send dispatches a command through the pipeline and returns the handler's
// outcome.
func (m *Mediator) Send(ctx context.Context, cmd Command) (any, error) {
	handler, ok := m.handlers[cmd.CommandName()]
	if !ok {
		return nil, fmt.Errorf("no handler registered for command %q", cmd.CommandName())
	}

	for i := len(m.behaviors) - 1; i >= 0; i-- {
		handler = m.behaviors[i](handler)
	}

	return handler(ctx, cmd)
}
