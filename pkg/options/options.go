// Package options defines the fixed set of session behavior toggles.
// The set is compiled in and applied unconditionally; each option knows
// the shell directives that realize it in the init snippet.
package options

// Option names
const (
	StackBasedNavigation          = "stack-based-navigation"
	SuppressNavigationOutput      = "suppress-navigation-output"
	IgnoreDuplicateStackEntries   = "ignore-duplicate-stack-entries"
	ShareHistoryAcrossSessions    = "share-history-across-sessions"
	DeduplicateConsecutiveHistory = "deduplicate-consecutive-history"
	FailOnUnmatchedPattern        = "fail-on-unmatched-pattern"
)

// Option is one boolean behavior toggle and the directives realizing it
type Option struct {
	Name    string
	Enabled bool

	// Directives maps a shell name to the option directives for that shell.
	// A shell with no entry has no native equivalent and the behavior is
	// realized entirely inside the binary.
	Directives map[string][]string
}

// Set returns the compiled-in option table. The returned slice is a fresh
// copy; order is stable for snippet emission.
func Set() []Option {
	return []Option{
		{
			Name:    StackBasedNavigation,
			Enabled: true,
			Directives: map[string][]string{
				"zsh": {"setopt AUTO_PUSHD"},
			},
		},
		{
			Name:    SuppressNavigationOutput,
			Enabled: true,
			Directives: map[string][]string{
				"zsh": {"setopt PUSHD_SILENT"},
			},
		},
		{
			Name:    IgnoreDuplicateStackEntries,
			Enabled: true,
			Directives: map[string][]string{
				"zsh": {"setopt PUSHD_IGNORE_DUPS"},
			},
		},
		{
			Name:    ShareHistoryAcrossSessions,
			Enabled: true,
			Directives: map[string][]string{
				"zsh":  {"setopt SHARE_HISTORY", "setopt INC_APPEND_HISTORY"},
				"bash": {"shopt -s histappend"},
			},
		},
		{
			Name:    DeduplicateConsecutiveHistory,
			Enabled: true,
			Directives: map[string][]string{
				"zsh":  {"setopt HIST_IGNORE_DUPS", "setopt HIST_IGNORE_SPACE"},
				"bash": {`HISTCONTROL="ignoredups:ignorespace"`},
			},
		},
		{
			Name:    FailOnUnmatchedPattern,
			Enabled: true,
			Directives: map[string][]string{
				"zsh":  {"setopt NOMATCH"},
				"bash": {"shopt -s failglob"},
			},
		},
	}
}

// Lookup returns the option with the given name, or false when unknown.
func Lookup(name string) (Option, bool) {
	for _, opt := range Set() {
		if opt.Name == name {
			return opt, true
		}
	}
	return Option{}, false
}

// IsEnabled reports whether a named option is enabled. Unknown names are
// disabled.
func IsEnabled(name string) bool {
	opt, ok := Lookup(name)
	return ok && opt.Enabled
}

// Directives returns every enabled option's directives for the given
// shell, in table order. Applying the result twice yields the same session
// behavior; every directive is idempotent.
func Directives(shell string) []string {
	var out []string
	for _, opt := range Set() {
		if !opt.Enabled {
			continue
		}
		out = append(out, opt.Directives[shell]...)
	}
	return out
}
