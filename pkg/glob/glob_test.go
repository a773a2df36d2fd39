// pkg/glob/glob_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Filesystem (temp dirs)
// PURPOSE: Test pattern expansion and fail-on-unmatched semantics

package glob_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dorc/pkg/errors"
	"github.com/arthur-debert/dorc/pkg/glob"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, f := range []string{"a.txt", "b.txt", "c.log"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte("x"), 0644))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "d.txt"), []byte("x"), 0644))
	return dir
}

func TestExpand(t *testing.T) {
	dir := setupTree(t)

	matches, err := glob.Expand(filepath.Join(dir, "*.txt"))
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "b.txt"),
	}, matches)
}

func TestExpandRecursive(t *testing.T) {
	dir := setupTree(t)

	matches, err := glob.Expand(filepath.Join(dir, "**", "*.txt"))
	require.NoError(t, err)
	assert.Contains(t, matches, filepath.Join(dir, "sub", "d.txt"))
}

func TestExpandUnmatchedIsError(t *testing.T) {
	dir := setupTree(t)

	_, err := glob.Expand(filepath.Join(dir, "*.nope"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnmatchedPattern))
}

func TestExpandMalformedPattern(t *testing.T) {
	_, err := glob.Expand("[unclosed")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
