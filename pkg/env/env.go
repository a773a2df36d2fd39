// Package env computes the session's environment snapshot: editor, pager,
// and search-path augmentation. The snapshot is built once at startup and
// emitted as export directives by the init snippet.
package env

import (
	"os"
	"strings"

	"github.com/arthur-debert/dorc/pkg/config"
	"github.com/arthur-debert/dorc/pkg/errors"
	"github.com/arthur-debert/dorc/pkg/logging"
	"github.com/arthur-debert/dorc/pkg/platform"
)

// Var is a single environment variable assignment
type Var struct {
	Name  string
	Value string
}

// Snapshot is the ordered, immutable set of environment values for one
// session. Order is deterministic so emitted snippets are stable.
type Snapshot struct {
	vars []Var
}

// Vars returns the variables in emission order
func (s *Snapshot) Vars() []Var {
	out := make([]Var, len(s.vars))
	copy(out, s.vars)
	return out
}

// Get returns the value for name, or empty when absent
func (s *Snapshot) Get(name string) string {
	for _, v := range s.vars {
		if v.Name == name {
			return v.Value
		}
	}
	return ""
}

// probes abstracts the filesystem checks so tests can substitute them
type probes struct {
	toolAvailable func(string) bool
	dirExists     func(string) bool
}

func defaultProbes() probes {
	return probes{
		toolAvailable: platform.ToolAvailable,
		dirExists:     platform.DirExists,
	}
}

// Build computes the environment snapshot from configuration and the
// platform descriptor. Absent optional tools or directories silently skip
// their augmentation; Build never fails.
func Build(cfg *config.Config, desc *platform.Descriptor) *Snapshot {
	return build(cfg, desc, defaultProbes())
}

func build(cfg *config.Config, desc *platform.Descriptor, p probes) *Snapshot {
	logger := logging.GetLogger("env")
	s := &Snapshot{}

	s.vars = append(s.vars, Var{Name: "EDITOR", Value: cfg.Environment.Editor})

	// Pager: the feature-capable variant only when actually installed
	pager := cfg.Environment.PagerFallback
	if p.toolAvailable(cfg.Environment.Pager) {
		pager = cfg.Environment.Pager
	} else {
		missing := errors.New(errors.ErrMissingOptionalTool, "preferred pager not installed").
			WithDetail("tool", cfg.Environment.Pager)
		logger.Debug().Err(missing).Msg("using fallback pager")
	}
	s.vars = append(s.vars, Var{Name: "PAGER", Value: pager})

	// PATH: prepend platform-specific directories that exist
	var prefix []string
	for _, dir := range cfg.Environment.Path[string(desc.Family)] {
		if p.dirExists(dir) {
			prefix = append(prefix, dir)
		}
	}
	if len(prefix) > 0 {
		path := strings.Join(prefix, string(os.PathListSeparator))
		if current := os.Getenv("PATH"); current != "" {
			path += string(os.PathListSeparator) + current
		}
		s.vars = append(s.vars, Var{Name: "PATH", Value: path})
	}

	return s
}
