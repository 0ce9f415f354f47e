// Package messaging provides the default event bus used when no external
// bus is configured.
package messaging

import (
	"context"

	"go.uber.org/zap"

	"orders-backend/application/ports"
	"orders-backend/domain/events"
)

// LogBus is an EventBus that records events in the application log only.
type LogBus struct {
	logger *zap.Logger
}

// NewLogBus creates a log-only event bus
func NewLogBus(logger *zap.Logger) ports.EventBus {
	return &LogBus{logger: logger}
}

// Publish logs a single event.
func (b *LogBus) Publish(ctx context.Context, event events.DomainEvent) error {
	b.logger.Debug("Domain event",
		zap.String("eventType", event.GetEventType()),
		zap.String("aggregateID", event.GetAggregateID()))
	return nil
}

// PublishBatch logs each event in the batch.
func (b *LogBus) PublishBatch(ctx context.Context, batch []events.DomainEvent) error {
	for _, event := range batch {
		if err := b.Publish(ctx, event); err != nil {
			return err
		}
	}
	return nil
}
