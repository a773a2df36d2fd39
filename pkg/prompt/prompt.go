// Package prompt composes the dynamic status line rendered before every
// line read: a bracketed user@host cwd segment colored by privilege and
// session origin, a privilege marker, and a version-control status segment
// delegated to the vcs collaborator.
package prompt

import (
	"os"
	"os/user"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/dorc/pkg/logging"
	"github.com/arthur-debert/dorc/pkg/platform"
	"github.com/arthur-debert/dorc/pkg/style"
	"github.com/arthur-debert/dorc/pkg/ui"
	"github.com/arthur-debert/dorc/pkg/vcs"
)

// Privilege markers appended to the left-hand segment
const (
	superUserMarker = "#"
	userMarker      = "$"
)

// State is the process state a prompt render derives from. It is
// recomputed for every render and never persisted.
type State struct {
	Username     string
	Hostname     string
	WorkingDir   string
	EffectiveUID int
	Remote       bool
}

// Composer renders prompts from session state and a status provider
type Composer struct {
	provider vcs.StatusProvider
	format   ui.Format
	logger   zerolog.Logger
}

// New creates a Composer. The provider may be nil, in which case the
// version-control segment is always empty.
func New(provider vcs.StatusProvider, format ui.Format) *Composer {
	return &Composer{
		provider: provider,
		format:   format,
		logger:   logging.GetLogger("prompt"),
	}
}

// CurrentState derives prompt state from the running process. A working
// directory deleted out from under the session falls back to the
// last-known $PWD string.
func CurrentState() State {
	s := State{
		EffectiveUID: os.Geteuid(),
		Remote:       platform.IsRemoteSession(),
	}

	if u, err := user.Current(); err == nil {
		s.Username = u.Username
	} else {
		s.Username = os.Getenv("USER")
	}

	if host, err := os.Hostname(); err == nil {
		s.Hostname = host
	}

	if cwd, err := os.Getwd(); err == nil {
		s.WorkingDir = cwd
	} else {
		s.WorkingDir = os.Getenv("PWD")
	}

	return s
}

// Render composes the prompt for the given state. The version-control
// query runs synchronously; any failure, including "not a repository",
// yields an empty right-hand segment and is never surfaced to the user.
func (c *Composer) Render(s State) string {
	left := c.renderLeft(s)

	right := c.renderVcs(s.WorkingDir)
	if right == "" {
		return left + " "
	}
	return left + " " + right + " "
}

// renderLeft builds `[user@host cwd]` plus the privilege marker
func (c *Composer) renderLeft(s State) string {
	username := s.Username
	hostname := s.Hostname
	cwd := s.WorkingDir
	marker := userMarker
	if s.EffectiveUID == 0 {
		marker = superUserMarker
	}

	if c.format == ui.FormatTerminal {
		if s.EffectiveUID == 0 {
			username = style.PrivilegedUserStyle.Render(username)
		} else {
			username = style.UserStyle.Render(username)
		}
		if s.Remote {
			hostname = style.RemoteHostStyle.Render(hostname)
		} else {
			hostname = style.LocalHostStyle.Render(hostname)
		}
		cwd = style.PathStyle.Render(cwd)
	}

	return "[" + username + "@" + hostname + " " + cwd + "]" + marker
}

// renderVcs queries the status provider and formats the right-hand segment
func (c *Composer) renderVcs(dir string) string {
	if c.provider == nil || dir == "" {
		return ""
	}

	status, err := c.provider.Status(dir)
	if err != nil || status == nil {
		c.logger.Trace().Err(err).Str("dir", dir).Msg("no version-control status")
		return ""
	}

	token := status.Format()
	if c.format == ui.FormatTerminal {
		return style.VcsStyle.Render(token)
	}
	return token
}
