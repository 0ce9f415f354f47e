package di

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"orders-backend/infrastructure/config"
)

func TestProvideLogLevel_ParsesConfiguredLevel(t *testing.T) {
	level := ProvideLogLevel(&config.Config{LogLevel: "debug"})
	assert.Equal(t, zapcore.DebugLevel, level.Level())
}

func TestProvideLogLevel_FallsBackToInfo(t *testing.T) {
	level := ProvideLogLevel(&config.Config{LogLevel: "shouting"})
	assert.Equal(t, zapcore.InfoLevel, level.Level())
}

func TestProvideLogger_SharesLevelHandle(t *testing.T) {
	cfg := &config.Config{LogLevel: "warn", Environment: "development"}
	level := ProvideLogLevel(cfg)

	logger, err := ProvideLogger(cfg, level)
	require.NoError(t, err)

	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	level.SetLevel(zapcore.DebugLevel)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}
