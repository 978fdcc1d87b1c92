package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smilintux/skyforge/pkg/config"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"unknown", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, parseLogLevel(tt.input), "level %q", tt.input)
	}
}

func TestNew(t *testing.T) {
	log := New(&config.Config{Env: "development", LogLevel: "debug", LogFormat: "json"})
	require.NotNil(t, log)
}

func TestNopLoggerChains(t *testing.T) {
	log := NewNop()

	chained := log.WithField("key", "value").
		WithFields(map[string]interface{}{"a": 1, "b": 2}).
		WithError(assert.AnError)
	require.NotNil(t, chained)

	// must not panic or emit anywhere
	chained.Debug("debug")
	chained.Info("info")
	chained.Warn("warn")
	chained.Error("error")
	chained.Infof("formatted %d", 42)
}
