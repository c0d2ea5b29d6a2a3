package log

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewWithCore(core, LevelInfo)

	logger.Debug("hidden")
	logger.Info("shown", Int("round", 3), Float64("budget", 1.5))
	require.Equal(t, 1, logs.Len())

	entry := logs.All()[0]
	assert.Equal(t, "shown", entry.Message)
	assert.Equal(t, int64(3), entry.ContextMap()["round"])
	assert.Equal(t, 1.5, entry.ContextMap()["budget"])

	logger.SetLevel(LevelDebug)
	assert.Equal(t, LevelDebug, logger.GetLevel())
	logger.Debug("now shown")
	assert.Equal(t, 1, logs.FilterMessage("now shown").Len())
}

func TestLoggerWith(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewWithCore(core, LevelDebug).With(String("table", "wave-1"))

	logger.Error("failed", Error(errors.New("boom")), Bool("retry", false), Uint64("seed", 9))
	require.Equal(t, 1, logs.Len())

	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "wave-1", fields["table"])
	assert.Equal(t, "boom", fields["error"])
	assert.Equal(t, false, fields["retry"])
	assert.Equal(t, uint64(9), fields["seed"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelWarn, ParseLevel("warning"))
	assert.Equal(t, LevelError, ParseLevel("error"))
	assert.Equal(t, LevelInfo, ParseLevel("verbose"))
}

func TestNopAndProvide(t *testing.T) {
	Nop().Info("dropped")
	assert.NotNil(t, Provide())
}
