package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestConfigure(t *testing.T) {
	tests := []struct {
		level   string
		enabled zapcore.Level
		muted   zapcore.Level
	}{
		{level: "debug", enabled: zapcore.DebugLevel, muted: zapcore.DebugLevel - 1},
		{level: "warn", enabled: zapcore.WarnLevel, muted: zapcore.InfoLevel},
		{level: "loud", enabled: zapcore.InfoLevel, muted: zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			Configure("forecast-client", tt.level)
			t.Cleanup(func() { Configure("forecast-client", "info") })

			assert.True(t, logger.Core().Enabled(tt.enabled))
			assert.False(t, logger.Core().Enabled(tt.muted))
			assert.NotNil(t, Logger)
		})
	}
}
