package ports

import (
	"context"

	"orders-backend/domain/events"
)

// EventBus publishes domain events to external consumers. Publish failures
// are reported to the caller but must never abort the command that raised
// the events.
type EventBus interface {
	Publish(ctx context.Context, event events.DomainEvent) error
	PublishBatch(ctx context.Context, events []events.DomainEvent) error
}
