// Package config loads application configuration from the environment,
// optionally seeded from a YAML file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// TelemetryConfig holds the exporter settings consumed at process startup.
// The core instrumentation never reads these; they only shape the
// providers built around it.
type TelemetryConfig struct {
	// Endpoint is the OTLP collector endpoint, host:port.
	Endpoint string `yaml:"endpoint"`
	// Protocol selects the OTLP transport: grpc or http.
	Protocol string `yaml:"protocol"`
	// EnableTracing toggles span export.
	EnableTracing bool `yaml:"enableTracing"`
	// EnableMetrics toggles metric export.
	EnableMetrics bool `yaml:"enableMetrics"`
	// MetricInterval is the periodic reader export interval.
	MetricInterval time.Duration `yaml:"metricInterval"`
}

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string `yaml:"serverAddress"`
	Environment   string `yaml:"environment"`
	ServiceName   string `yaml:"serviceName"`

	// Logging
	LogLevel string `yaml:"logLevel"`

	// Authentication
	JWTSigningMethod string `yaml:"jwtSigningMethod"`
	JWTSecret        string `yaml:"jwtSecret"`
	JWTPublicKey     string `yaml:"jwtPublicKey"`
	JWTIssuer        string `yaml:"jwtIssuer"`

	// Telemetry
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Storage
	StorageDriver string `yaml:"storageDriver"` // memory or dynamodb
	AWSRegion     string `yaml:"awsRegion"`
	DynamoDBTable string `yaml:"dynamoDBTable"`
	EventBusName  string `yaml:"eventBusName"`

	// Payment handling
	PaymentWait time.Duration `yaml:"paymentWait"`

	// Idempotency
	IdempotencyTTL time.Duration `yaml:"idempotencyTTL"`
}

// LoadConfig loads configuration from an optional YAML file named by
// CONFIG_FILE, then overlays environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.ServerAddress = getEnv("SERVER_ADDRESS", defaultStr(cfg.ServerAddress, ":8080"))
	cfg.Environment = getEnv("ENVIRONMENT", defaultStr(cfg.Environment, "development"))
	cfg.ServiceName = getEnv("OTEL_SERVICE_NAME", defaultStr(cfg.ServiceName, "orders-backend"))
	cfg.LogLevel = getEnv("LOG_LEVEL", defaultStr(cfg.LogLevel, "info"))

	cfg.JWTSigningMethod = getEnv("JWT_SIGNING_METHOD", defaultStr(cfg.JWTSigningMethod, "HS256"))
	cfg.JWTSecret = getEnv("JWT_SECRET", cfg.JWTSecret)
	cfg.JWTPublicKey = getEnv("JWT_PUBLIC_KEY", cfg.JWTPublicKey)
	cfg.JWTIssuer = getEnv("JWT_ISSUER", defaultStr(cfg.JWTIssuer, "orders-backend"))

	cfg.Telemetry.Endpoint = getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", defaultStr(cfg.Telemetry.Endpoint, "localhost:4317"))
	cfg.Telemetry.Protocol = getEnv("OTEL_EXPORTER_OTLP_PROTOCOL", defaultStr(cfg.Telemetry.Protocol, "grpc"))
	cfg.Telemetry.EnableTracing = getEnvBool("ENABLE_TRACING", cfg.Telemetry.EnableTracing)
	cfg.Telemetry.EnableMetrics = getEnvBool("ENABLE_METRICS", cfg.Telemetry.EnableMetrics)
	cfg.Telemetry.MetricInterval = getEnvDuration("METRIC_EXPORT_INTERVAL", defaultDur(cfg.Telemetry.MetricInterval, 15*time.Second))

	cfg.StorageDriver = getEnv("STORAGE_DRIVER", defaultStr(cfg.StorageDriver, "memory"))
	cfg.AWSRegion = getEnv("AWS_REGION", defaultStr(cfg.AWSRegion, "us-west-2"))
	cfg.DynamoDBTable = getEnv("DYNAMODB_TABLE", defaultStr(cfg.DynamoDBTable, "orders"))
	cfg.EventBusName = getEnv("EVENT_BUS_NAME", cfg.EventBusName)

	cfg.PaymentWait = getEnvDuration("PAYMENT_WAIT", defaultDur(cfg.PaymentWait, 2*time.Second))
	cfg.IdempotencyTTL = getEnvDuration("IDEMPOTENCY_TTL", defaultDur(cfg.IdempotencyTTL, 24*time.Hour))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.Environment == "production" {
		if c.JWTSigningMethod == "HS256" && c.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is required in production")
		}
		if c.JWTSigningMethod == "RS256" && c.JWTPublicKey == "" {
			return fmt.Errorf("JWT_PUBLIC_KEY is required in production")
		}
	}
	switch c.Telemetry.Protocol {
	case "grpc", "http":
	default:
		return fmt.Errorf("unsupported OTLP protocol: %s", c.Telemetry.Protocol)
	}
	switch c.StorageDriver {
	case "memory", "dynamodb":
	default:
		return fmt.Errorf("unsupported storage driver: %s", c.StorageDriver)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func defaultStr(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

func defaultDur(value, fallback time.Duration) time.Duration {
	if value != 0 {
		return value
	}
	return fallback
}
