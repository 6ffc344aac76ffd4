package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		level   string
		format  string
		enabled zap.AtomicLevel
		wantErr bool
	}{
		{name: "production json", level: "info", format: "json", enabled: zap.NewAtomicLevelAt(zap.InfoLevel)},
		{name: "production console", level: "WARN", format: "console", enabled: zap.NewAtomicLevelAt(zap.WarnLevel)},
		{name: "debug ignores level", debug: true, level: "bogus", enabled: zap.NewAtomicLevelAt(zap.DebugLevel)},
		{name: "bad level", level: "loud", format: "json", wantErr: true},
		{name: "bad format", level: "info", format: "xml", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			log, err := New(tc.debug, tc.level, tc.format)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, log.Core().Enabled(tc.enabled.Level()))
			assert.False(t, log.Core().Enabled(tc.enabled.Level()-1))
		})
	}
}
