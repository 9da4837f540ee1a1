package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel(" warn "))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("loud"))
}

func TestInitOnce(t *testing.T) {
	require.NoError(t, Init(zapcore.InfoLevel, zap.String("service", "logger-test")))
	first := Log
	require.NoError(t, Init(zapcore.DebugLevel))
	assert.Same(t, first, Log)
}
