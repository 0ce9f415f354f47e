//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/google/wire"

	"orders-backend/infrastructure/config"
)

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogLevel,
	ProvideLogger,
	ProvideJWTValidator,
	ProvideTracerProvider,
	ProvideMeterProvider,
	ProvideOrderMetrics,
	ProvideCollector,
	ProvideOrderRepository,
	ProvideIdempotencyStore,
	ProvideEventBus,
	ProvideMediator,
	ProvideHandler,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer builds the full dependency graph.
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil
}
