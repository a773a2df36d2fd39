// pkg/logging/logging_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Filesystem (temp dirs via env override)
// PURPOSE: Test logger setup and verbosity mapping

package logging

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetupLoggerVerbosity(t *testing.T) {
	// Keep log file writes inside the test sandbox
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default_warn", 0, zerolog.WarnLevel},
		{"v_info", 1, zerolog.InfoLevel},
		{"vv_debug", 2, zerolog.DebugLevel},
		{"vvv_trace", 3, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetupLogger(tt.verbosity)
			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
		})
	}
}

func TestGetLogger(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	SetupLogger(0)

	logger := GetLogger("dirstack")
	// The component logger must be usable without panicking
	logger.Debug().Msg("probe")
}

func TestGetLogFilePath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/custom/state")
	assert.Equal(t, "/custom/state/dorc/dorc.log", getLogFilePath())
}
