// Package session ties the configurator together: one Session object owns
// the configuration, platform descriptor, environment snapshot, stores,
// and prompt composer for the lifetime of an invocation. There is no
// ambient global state beyond the logger.
package session

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/dorc/pkg/config"
	"github.com/arthur-debert/dorc/pkg/dirstack"
	"github.com/arthur-debert/dorc/pkg/env"
	"github.com/arthur-debert/dorc/pkg/history"
	"github.com/arthur-debert/dorc/pkg/logging"
	"github.com/arthur-debert/dorc/pkg/paths"
	"github.com/arthur-debert/dorc/pkg/platform"
	"github.com/arthur-debert/dorc/pkg/prompt"
	"github.com/arthur-debert/dorc/pkg/shell"
	"github.com/arthur-debert/dorc/pkg/ui"
	"github.com/arthur-debert/dorc/pkg/vcs"
)

// Session is the explicit context object for one dorc invocation
type Session struct {
	Config   *config.Config
	Paths    paths.Paths
	Platform *platform.Descriptor
	Env      *env.Snapshot

	DirStack *dirstack.Store
	History  *history.Store
	Prompt   *prompt.Composer

	Format ui.Format
	logger zerolog.Logger
}

// New creates a fully wired session. Configuration problems are the only
// fatal condition; every store degrades rather than failing.
func New(format ui.Format) (*Session, error) {
	p := paths.New()

	cfg, err := config.Load(p.ConfigFilePath())
	if err != nil {
		return nil, err
	}

	desc := platform.Detect()
	resolved := ui.Resolve(format, os.Stdout)

	s := &Session{
		Config:   cfg,
		Paths:    p,
		Platform: desc,
		Env:      env.Build(cfg, desc),
		DirStack: dirstack.NewStore(p.DirStackFile(), cfg.DirStack.Size),
		History:  history.NewStore(p.HistFile(), cfg.History.SaveSize),
		Prompt:   prompt.New(vcs.NewGitProvider(), resolved),
		Format:   resolved,
		logger:   logging.GetLogger("session"),
	}
	return s, nil
}

// Bootstrap renders the init snippet for the given shell
func (s *Session) Bootstrap(sh string) string {
	return shell.Snippet(shell.Params{
		Shell:      sh,
		Snapshot:   s.Env,
		Term:       s.Platform.Term,
		HistFile:   s.Paths.HistFile(),
		HistSize:   s.Config.History.Size,
		SaveSize:   s.Config.History.SaveSize,
		ReportTime: s.Config.Prompt.ReportTime,
	})
}

// ChangedDirectory handles a successful directory change: render the
// listing first, then persist the updated stack. The listing substitutes
// for the navigation output the shell suppresses.
func (s *Session) ChangedDirectory(cwd string) (string, error) {
	listing := ui.ListDirectory(cwd, s.Format)
	if err := s.DirStack.OnDirectoryChanged(cwd); err != nil {
		// Persistence failure degrades the experience, not the session
		s.logger.Warn().Err(err).Msg("directory stack not persisted")
	}
	return listing, nil
}

// RestoreDirectory returns the directory the session should start in,
// empty when the previous state is absent or stale
func (s *Session) RestoreDirectory() string {
	return s.DirStack.Restore()
}

// RenderPrompt composes the prompt from current process state
func (s *Session) RenderPrompt() string {
	return s.Prompt.Render(prompt.CurrentState())
}

// AddHistory records a completed command with the current time
func (s *Session) AddHistory(command string) error {
	return s.History.Add(command, time.Now())
}
