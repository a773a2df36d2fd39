// pkg/ui/format_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test format parsing and resolution

package ui_test

import (
	"os"
	"testing"

	"github.com/arthur-debert/dorc/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    ui.Format
		wantErr bool
	}{
		{"auto", ui.FormatAuto, false},
		{"", ui.FormatAuto, false},
		{"term", ui.FormatTerminal, false},
		{"terminal", ui.FormatTerminal, false},
		{"text", ui.FormatText, false},
		{"plain", ui.FormatText, false},
		{"TEXT", ui.FormatText, false},
		{"yaml", ui.FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run("input_"+tt.input, func(t *testing.T) {
			got, err := ui.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "auto", ui.FormatAuto.String())
	assert.Equal(t, "term", ui.FormatTerminal.String())
	assert.Equal(t, "text", ui.FormatText.String())
}

func TestResolveExplicitFormats(t *testing.T) {
	// Explicit formats pass through untouched
	assert.Equal(t, ui.FormatText, ui.Resolve(ui.FormatText, os.Stdout))
	assert.Equal(t, ui.FormatTerminal, ui.Resolve(ui.FormatTerminal, os.Stdout))
}

func TestDetectFormatNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, ui.FormatText, ui.DetectFormat(os.Stdout))
}
