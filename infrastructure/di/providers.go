// Package di assembles the application object graph with google/wire.
package di

import (
	"context"
	"fmt"
	"net/http"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"orders-backend/application/commands"
	commandhandlers "orders-backend/application/commands/handlers"
	"orders-backend/application/mediator"
	"orders-backend/application/ports"
	queryhandlers "orders-backend/application/queries/handlers"
	"orders-backend/infrastructure/config"
	"orders-backend/infrastructure/messaging"
	ebmessaging "orders-backend/infrastructure/messaging/eventbridge"
	"orders-backend/infrastructure/observability"
	"orders-backend/infrastructure/persistence"
	dynamopersistence "orders-backend/infrastructure/persistence/dynamodb"
	"orders-backend/infrastructure/persistence/memory"
	"orders-backend/infrastructure/telemetry"
	"orders-backend/interfaces/http/rest"
	"orders-backend/interfaces/http/rest/handlers"
	"orders-backend/pkg/auth"
	appmetrics "orders-backend/pkg/observability"
)

// Container holds all application dependencies
type Container struct {
	Config          *config.Config
	Logger          *zap.Logger
	LogLevel        zap.AtomicLevel
	JWTValidator    *auth.JWTValidator
	TracerProvider  *telemetry.TracerProvider
	MeterProvider   *telemetry.MeterProvider
	OrderMetrics    *appmetrics.OrderMetrics
	Collector       *observability.Collector
	OrderRepository ports.OrderRepository
	EventBus        ports.EventBus
	Mediator        *mediator.Mediator
	Handler         http.Handler
}

// Shutdown flushes telemetry and releases resources.
func (c *Container) Shutdown(ctx context.Context) error {
	var firstErr error
	if c.TracerProvider != nil {
		if err := c.TracerProvider.Shutdown(ctx); err != nil {
			firstErr = err
		}
	}
	if c.MeterProvider != nil {
		if err := c.MeterProvider.Shutdown(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	_ = c.Logger.Sync()
	return firstErr
}

// ProvideLogLevel parses the configured log level into a runtime-adjustable
// handle. Unparseable values fall back to info.
func ProvideLogLevel(cfg *config.Config) zap.AtomicLevel {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level.SetLevel(zapcore.InfoLevel)
	}
	return level
}

// ProvideLogger builds the process logger on the shared level handle.
func ProvideLogger(cfg *config.Config, level zap.AtomicLevel) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.Environment == "production" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = level

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

// ProvideJWTValidator creates the token validator from configuration.
func ProvideJWTValidator(cfg *config.Config) (*auth.JWTValidator, error) {
	return auth.NewJWTValidator(auth.JWTConfig{
		SigningMethod: cfg.JWTSigningMethod,
		SecretKey:     cfg.JWTSecret,
		PublicKey:     cfg.JWTPublicKey,
		Issuer:        cfg.JWTIssuer,
	})
}

// ProvideTracerProvider initializes trace export.
func ProvideTracerProvider(cfg *config.Config) (*telemetry.TracerProvider, error) {
	return telemetry.InitTracing(cfg.Telemetry, cfg.ServiceName, cfg.Environment)
}

// ProvideMeterProvider initializes metric export.
func ProvideMeterProvider(cfg *config.Config) (*telemetry.MeterProvider, error) {
	return telemetry.InitMetrics(cfg.Telemetry, cfg.ServiceName, cfg.Environment)
}

// ProvideOrderMetrics registers the order instruments on the service meter.
func ProvideOrderMetrics(cfg *config.Config, mp *telemetry.MeterProvider) (*appmetrics.OrderMetrics, error) {
	return appmetrics.NewOrderMetrics(mp.Meter(cfg.ServiceName))
}

// ProvideCollector creates the Prometheus collector for HTTP metrics.
func ProvideCollector() *observability.Collector {
	return observability.NewCollector("orders")
}

// ProvideOrderRepository selects the storage driver and wraps it with a
// circuit breaker.
func ProvideOrderRepository(ctx context.Context, cfg *config.Config, logger *zap.Logger) (ports.OrderRepository, error) {
	var repo ports.OrderRepository
	switch cfg.StorageDriver {
	case "dynamodb":
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}
		client := dynamodb.NewFromConfig(awsCfg)
		repo = dynamopersistence.NewOrderRepository(client, cfg.DynamoDBTable, logger)
	default:
		repo = memory.NewOrderStore()
	}
	return persistence.NewCircuitBreakerRepository(repo, logger), nil
}

// ProvideIdempotencyStore creates the duplicate-request cache.
func ProvideIdempotencyStore(cfg *config.Config) ports.IdempotencyStore {
	return memory.NewIdempotencyStore(cfg.IdempotencyTTL)
}

// ProvideEventBus publishes to EventBridge when a bus name is configured,
// otherwise falls back to the log-only bus.
func ProvideEventBus(ctx context.Context, cfg *config.Config, logger *zap.Logger) (ports.EventBus, error) {
	if cfg.EventBusName == "" {
		return messaging.NewLogBus(logger), nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return ebmessaging.NewPublisher(eventbridge.NewFromConfig(awsCfg), cfg.EventBusName, logger), nil
}

// ProvideMediator registers the command handlers behind the behavior
// pipeline: logging, validation, then idempotency.
func ProvideMediator(
	cfg *config.Config,
	orders ports.OrderRepository,
	idempotency ports.IdempotencyStore,
	eventBus ports.EventBus,
	metrics *appmetrics.OrderMetrics,
	logger *zap.Logger,
) *mediator.Mediator {
	med := mediator.NewMediator(logger)
	med.Use(mediator.LoggingBehavior(logger))
	med.Use(mediator.ValidationBehavior(validator.New()))
	med.Use(mediator.IdempotencyBehavior(idempotency, logger))

	createOrder := commandhandlers.NewCreateOrderHandler(orders, eventBus, metrics, logger)
	med.Register("create_order", func(ctx context.Context, cmd mediator.Command) (any, error) {
		return createOrder.Handle(ctx, cmd.(commands.CreateOrderCommand))
	})

	markPaid := commandhandlers.NewMarkOrderPaidHandler(orders, eventBus, metrics, logger, cfg.PaymentWait)
	med.Register("mark_order_paid", func(ctx context.Context, cmd mediator.Command) (any, error) {
		return markPaid.Handle(ctx, cmd.(commands.MarkOrderPaidCommand))
	})

	return med
}

// ProvideHandler builds the HTTP surface.
func ProvideHandler(
	cfg *config.Config,
	med *mediator.Mediator,
	orders ports.OrderRepository,
	validator *auth.JWTValidator,
	collector *observability.Collector,
	logger *zap.Logger,
) http.Handler {
	getOrder := queryhandlers.NewGetOrderHandler(orders, logger)
	orderHandler := handlers.NewOrderHandler(med, getOrder, logger)
	router := rest.NewRouter(orderHandler, validator, collector, cfg.ServiceName, logger)
	return router.Setup()
}
