package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "orders-backend", cfg.ServiceName)
	assert.Equal(t, "grpc", cfg.Telemetry.Protocol)
	assert.Equal(t, "memory", cfg.StorageDriver)
	assert.Equal(t, 2*time.Second, cfg.PaymentWait)
	assert.Equal(t, 24*time.Hour, cfg.IdempotencyTTL)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_PROTOCOL", "http")
	t.Setenv("PAYMENT_WAIT", "50ms")
	t.Setenv("STORAGE_DRIVER", "dynamodb")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "http", cfg.Telemetry.Protocol)
	assert.Equal(t, 50*time.Millisecond, cfg.PaymentWait)
	assert.Equal(t, "dynamodb", cfg.StorageDriver)
}

func TestLoadConfig_InvalidProtocol(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_PROTOCOL", "udp")

	_, err := LoadConfig()

	assert.Error(t, err)
}

func TestLoadConfig_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logLevel: debug\nserviceName: orders-test\n"), 0o644))
	t.Setenv("CONFIG_FILE", path)

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "orders-test", cfg.ServiceName)
}

func TestLoadConfig_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()

	assert.Error(t, err)
}
