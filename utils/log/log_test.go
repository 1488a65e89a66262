package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()
	tests := map[string]Level{
		"debug":   DEBUG,
		"INFO":    INFO,
		"warn":    WARNING,
		"warning": WARNING,
		" error ": ERROR,
		"fatal":   FATAL,
		"verbose": INFO,
		"":        INFO,
	}
	for name, want := range tests {
		assert.Equal(t, want, ParseLevel(name), name)
	}
}

// nolint:paralleltest // changes the package level
func TestSetLevel(t *testing.T) {
	defer SetLevel(GetLevel())

	SetLevel(DEBUG)
	assert.Equal(t, DEBUG, GetLevel())
	assert.True(t, zapLevel.Enabled(zapcore.DebugLevel))

	SetLevel(ERROR)
	assert.Equal(t, ERROR, GetLevel())
	assert.False(t, zapLevel.Enabled(zapcore.DebugLevel))

	// below the gate, nothing reaches zap
	Debug("dropped %d", 1)
	Info("dropped %s", "too")
}
