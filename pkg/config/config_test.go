// pkg/config/config_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Filesystem (temp config files)
// PURPOSE: Test layered config loading and overrides

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dorc/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := config.Defaults()
	require.NoError(t, err)

	assert.Equal(t, "vim", cfg.Environment.Editor)
	assert.Equal(t, "most", cfg.Environment.Pager)
	assert.Equal(t, "less", cfg.Environment.PagerFallback)
	assert.Equal(t, 10000, cfg.History.Size)
	assert.Equal(t, 10000, cfg.History.SaveSize)
	assert.Equal(t, 20, cfg.DirStack.Size)
	assert.Equal(t, 5, cfg.Prompt.ReportTime)
	assert.NotEmpty(t, cfg.Environment.Path["darwin"])
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "no-such.toml"))
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.DirStack.Size)
}

func TestLoadUserOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dorc.toml")
	content := `
[environment]
editor = "nvim"

[dirstack]
size = 5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "nvim", cfg.Environment.Editor)
	assert.Equal(t, 5, cfg.DirStack.Size)
	// Untouched keys keep their defaults
	assert.Equal(t, "most", cfg.Environment.Pager)
	assert.Equal(t, 10000, cfg.History.Size)
}

func TestLoadInvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dorc.toml")
	require.NoError(t, os.WriteFile(path, []byte("not [valid toml"), 0644))

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("DORC_HISTORY_SIZE", "500")

	cfg, err := config.Load("")
	assert.NoError(t, err)
	assert.Equal(t, 500, cfg.History.Size)
}

func TestDefaultTOMLIsACopy(t *testing.T) {
	a := config.DefaultTOML()
	a[0] = 'X'
	b := config.DefaultTOML()
	assert.NotEqual(t, a[0], b[0], "mutating the returned slice must not affect the embedded defaults")
}
