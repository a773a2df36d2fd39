// pkg/session/session_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Filesystem (temp dirs via env overrides)
// PURPOSE: Test the wired session lifecycle end to end

package session_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dorc/pkg/session"
	"github.com/arthur-debert/dorc/pkg/testutil"
	"github.com/arthur-debert/dorc/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestSession isolates all backing files in a temp directory
func newTestSession(t *testing.T) *session.Session {
	t.Helper()
	testutil.NewTestEnvironment(t)

	s, err := session.New(ui.FormatText)
	require.NoError(t, err)
	return s
}

func TestNewSessionWiring(t *testing.T) {
	s := newTestSession(t)

	assert.NotNil(t, s.Config)
	assert.NotNil(t, s.Paths)
	assert.NotNil(t, s.Platform)
	assert.NotNil(t, s.Env)
	assert.NotNil(t, s.DirStack)
	assert.NotNil(t, s.History)
	assert.NotNil(t, s.Prompt)
}

func TestChangedDirectoryListsAndPersists(t *testing.T) {
	s := newTestSession(t)

	visited := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(visited, "afile"), []byte("x"), 0644))

	listing, err := s.ChangedDirectory(visited)
	require.NoError(t, err)
	assert.Contains(t, listing, "afile")
	assert.Equal(t, visited, s.DirStack.Stack().Top())

	// Persisted state must be on disk immediately
	data, err := os.ReadFile(s.Paths.DirStackFile())
	require.NoError(t, err)
	assert.Contains(t, string(data), visited)
}

func TestRestoreAcrossSessions(t *testing.T) {
	testutil.NewTestEnvironment(t)
	visited := t.TempDir()

	first, err := session.New(ui.FormatText)
	require.NoError(t, err)
	_, err = first.ChangedDirectory(visited)
	require.NoError(t, err)

	second, err := session.New(ui.FormatText)
	require.NoError(t, err)
	assert.Equal(t, visited, second.RestoreDirectory())
}

func TestAddHistoryRoundTrip(t *testing.T) {
	s := newTestSession(t)

	require.NoError(t, s.AddHistory("make test"))
	require.NoError(t, s.AddHistory("make test")) // consecutive duplicate
	require.NoError(t, s.AddHistory(" hidden"))   // private command

	entries, err := s.History.Load()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "make test", entries[0].Command)
}

func TestBootstrapSnippet(t *testing.T) {
	s := newTestSession(t)

	out := s.Bootstrap("zsh")
	assert.Contains(t, out, "export EDITOR=")
	assert.Contains(t, out, "export REPORTTIME=5")
	assert.Contains(t, out, "setopt AUTO_PUSHD")
	assert.Contains(t, out, s.Paths.HistFile())
}

func TestRenderPromptNeverEmpty(t *testing.T) {
	s := newTestSession(t)
	assert.NotEmpty(t, s.RenderPrompt())
}
