// Package glob expands wildcard patterns with fail-on-unmatched semantics:
// a pattern matching nothing is a user-facing error for that operation,
// never passed through literally.
package glob

import (
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/arthur-debert/dorc/pkg/errors"
)

// Expand returns the sorted filesystem matches for pattern. Patterns may
// use doublestar (`**`) recursion. Zero matches is an UnmatchedPattern
// error; a malformed pattern is an InvalidInput error.
func Expand(pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "malformed pattern %q", pattern)
	}
	if len(matches) == 0 {
		return nil, errors.Newf(errors.ErrUnmatchedPattern, "no matches for pattern %q", pattern)
	}
	sort.Strings(matches)
	return matches, nil
}
