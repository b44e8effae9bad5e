package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLoggerLevels(t *testing.T) {
	logger, err := NewLogger(false, "warn")
	require.NoError(t, err)

	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
}

func TestNewLoggerDevelopmentDefaultsToDebug(t *testing.T) {
	logger, err := NewLogger(true, "")
	require.NoError(t, err)

	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	_, err := NewLogger(false, "loud")
	assert.Error(t, err)
	assert.Panics(t, func() { MustNewLogger(false, "loud") })
}
