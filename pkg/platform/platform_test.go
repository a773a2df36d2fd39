// pkg/platform/platform_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Environment variables, filesystem
// PURPOSE: Test platform detection probes

package platform_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/arthur-debert/dorc/pkg/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func TestDetectFamily(t *testing.T) {
	d := platform.Detect()

	switch runtime.GOOS {
	case "darwin":
		assert.Equal(t, platform.Darwin, d.Family)
	case "linux":
		assert.Equal(t, platform.Linux, d.Family)
	default:
		assert.Equal(t, platform.Other, d.Family)
	}
}

func TestDetectTerm(t *testing.T) {
	t.Setenv("TERM", "xterm-256color")
	assert.Equal(t, "xterm-256color", platform.Detect().Term)
}

func TestIsRemoteSession(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want bool
	}{
		{
			name: "no_markers",
			env:  map[string]string{"SSH_CONNECTION": "", "SSH_CLIENT": "", "SSH_TTY": ""},
			want: false,
		},
		{
			name: "ssh_connection",
			env:  map[string]string{"SSH_CONNECTION": "10.0.0.1 22 10.0.0.2 22", "SSH_CLIENT": "", "SSH_TTY": ""},
			want: true,
		},
		{
			name: "ssh_tty_only",
			env:  map[string]string{"SSH_CONNECTION": "", "SSH_CLIENT": "", "SSH_TTY": "/dev/pts/3"},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			assert.Equal(t, tt.want, platform.IsRemoteSession())
		})
	}
}

func TestDirExists(t *testing.T) {
	dir := t.TempDir()

	assert.True(t, platform.DirExists(dir))
	assert.False(t, platform.DirExists(filepath.Join(dir, "missing")))

	// A regular file is not a directory
	file := filepath.Join(dir, "f")
	writeFile(t, file)
	assert.False(t, platform.DirExists(file))
}

func TestToolAvailable(t *testing.T) {
	// go itself must be on PATH in any test environment
	assert.True(t, platform.ToolAvailable("go"))
	assert.False(t, platform.ToolAvailable("definitely-not-a-real-tool-xyz"))
}
