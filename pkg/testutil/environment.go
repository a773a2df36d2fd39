// pkg/testutil/environment.go
// DEPENDENCIES: None (base test utilities)
// PURPOSE: Isolate session state for tests

package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dorc/pkg/paths"
)

// TestEnvironment points every backing file at a fresh temp directory so
// tests never touch the developer's real session state.
type TestEnvironment struct {
	Root      string
	DataDir   string
	ConfigDir string
	StateDir  string
	Paths     paths.Paths

	t *testing.T
}

// NewTestEnvironment creates an isolated environment rooted in t.TempDir.
// Cleanup is handled by the testing framework.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	env := &TestEnvironment{
		Root:      root,
		DataDir:   filepath.Join(root, "data"),
		ConfigDir: filepath.Join(root, "config"),
		StateDir:  filepath.Join(root, "state"),
		t:         t,
	}

	t.Setenv(paths.EnvDataDir, env.DataDir)
	t.Setenv(paths.EnvConfigDir, env.ConfigDir)
	t.Setenv(paths.EnvStateDir, env.StateDir)
	t.Setenv(paths.EnvDirStackFile, "")
	t.Setenv(paths.EnvHistFile, "")
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "xdg-state"))

	env.Paths = paths.New()
	return env
}

// DirStackFile is the dirstack path inside the isolated environment.
func (e *TestEnvironment) DirStackFile() string {
	return e.Paths.DirStackFile()
}

// HistFile is the history path inside the isolated environment.
func (e *TestEnvironment) HistFile() string {
	return e.Paths.HistFile()
}
