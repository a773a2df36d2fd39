// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code matching

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/dorc/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "unmatched_pattern_error",
			code:    errors.ErrUnmatchedPattern,
			message: "no matches for pattern",
			wantStr: "[UNMATCHED_PATTERN] no matches for pattern",
		},
		{
			name:    "backing_store_error",
			code:    errors.ErrBackingStoreUnavailable,
			message: "cannot create state directory",
			wantStr: "[BACKING_STORE_UNAVAILABLE] cannot create state directory",
		},
		{
			name:    "vcs_query_error",
			code:    errors.ErrVcsQueryFailure,
			message: "status query failed",
			wantStr: "[VCS_QUERY_FAILURE] status query failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)
			assert.Equal(t, tt.wantStr, err.Error())
			assert.Equal(t, tt.code, err.Code)
		})
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := errors.Wrap(cause, errors.ErrStoreWrite, "failed to write dirstack file")

	assert.Equal(t, errors.ErrStoreWrite, err.Code)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "permission denied")
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, errors.ErrStoreWrite, "no-op"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrStoreWrite, "no-op %d", 1))
}

func TestIsErrorCode(t *testing.T) {
	err := errors.Newf(errors.ErrUnmatchedPattern, "no matches for %q", "*.nope")

	assert.True(t, errors.IsErrorCode(err, errors.ErrUnmatchedPattern))
	assert.False(t, errors.IsErrorCode(err, errors.ErrStoreWrite))

	// Works through wrapping with standard errors
	wrapped := fmt.Errorf("outer: %w", err)
	assert.True(t, errors.IsErrorCode(wrapped, errors.ErrUnmatchedPattern))

	// Plain errors have no code
	assert.False(t, errors.IsErrorCode(stderrors.New("plain"), errors.ErrUnmatchedPattern))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrBackingStoreUnavailable, "cannot create directory").
		WithDetail("path", "/nonexistent/state")

	assert.Equal(t, "/nonexistent/state", err.Details["path"])
}
