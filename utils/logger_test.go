package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger_Levels(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"warn":  zapcore.WarnLevel,
		"ERROR": zapcore.ErrorLevel,
		"":      zapcore.InfoLevel,
		"loud":  zapcore.InfoLevel,
	}

	for input, want := range cases {
		logger, err := NewLogger(LoggerOptions{Level: input, Format: "json", Service: "agro-riego-api"})
		require.NoError(t, err, input)
		assert.True(t, logger.Core().Enabled(want), input)
		if want > zapcore.DebugLevel {
			assert.False(t, logger.Core().Enabled(want-1), input)
		}
	}
}

func TestNewLogger_ConsoleFormat(t *testing.T) {
	logger, err := NewLogger(LoggerOptions{Level: "info", Format: "console"})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
}
