// Package vcs provides the version-control status collaborator used by the
// prompt: a synchronous, side-effect-free query answering whether a
// directory sits inside a tracked repository and, if so, summarizing its
// state.
package vcs

import (
	"fmt"
	"strings"
)

// Status summarizes repository state for prompt display
type Status struct {
	// Branch is the checked-out branch name, or a short description of a
	// detached HEAD
	Branch string

	// Dirty reports tracked files with uncommitted modifications
	Dirty bool

	// Untracked reports the presence of untracked files
	Untracked bool

	// Stashed reports the presence of stash entries
	Stashed bool

	// Ahead and Behind count commits relative to the upstream branch
	Ahead  int
	Behind int
}

// StatusProvider answers status queries for a working directory.
// Implementations must treat the query as read-only. Any failure,
// including "not a repository", is reported through the error; callers
// that render prompts map every error to an empty segment.
type StatusProvider interface {
	Status(dir string) (*Status, error)
}

// Format renders the verbose status token shown on the prompt's right
// side, e.g. "(main *?$ ↑2 ↓1)".
func (s *Status) Format() string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(s.Branch)

	var flags strings.Builder
	if s.Dirty {
		flags.WriteString("*")
	}
	if s.Untracked {
		flags.WriteString("?")
	}
	if s.Stashed {
		flags.WriteString("$")
	}
	if flags.Len() > 0 {
		b.WriteString(" ")
		b.WriteString(flags.String())
	}

	if s.Ahead > 0 {
		fmt.Fprintf(&b, " ↑%d", s.Ahead)
	}
	if s.Behind > 0 {
		fmt.Fprintf(&b, " ↓%d", s.Behind)
	}

	b.WriteString(")")
	return b.String()
}
