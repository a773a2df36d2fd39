// Package shell generates the bootstrap snippet a user sources from their
// rc file. The snippet wires dorc into the interactive session: exports,
// option directives, key bindings, the directory-change hook, the prompt
// command, and history capture.
package shell

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/dorc/pkg/env"
	"github.com/arthur-debert/dorc/pkg/keymap"
	"github.com/arthur-debert/dorc/pkg/options"
)

// Supported shells
const (
	Zsh  = "zsh"
	Bash = "bash"
)

// Params carries everything the snippet embeds
type Params struct {
	Shell    string
	Snapshot *env.Snapshot
	Term     string

	// HistFile and caps are exported so the line editor's own history
	// machinery agrees with dorc's backing store
	HistFile string
	HistSize int
	SaveSize int

	// ReportTime is the threshold in seconds above which the shell reports
	// resource usage of a finished command. Zero disables the report.
	ReportTime int
}

// Snippet renders the full bootstrap script for the given shell.
// Unknown shells get the zsh variant, which is the primary target.
func Snippet(p Params) string {
	var b strings.Builder

	b.WriteString("# dorc session bootstrap. Source this from your rc file:\n")
	b.WriteString(fmt.Sprintf("#   eval \"$(dorc init %s)\"\n", shellName(p.Shell)))

	writeExports(&b, p)
	writeOptions(&b, p)

	if shellName(p.Shell) == Zsh {
		writeBindings(&b, p)
		writeZshHooks(&b)
	} else {
		// Key bindings are zsh-only; readline users bind keys in inputrc,
		// which dorc does not own
		writeBashHooks(&b)
	}

	return b.String()
}

func shellName(shell string) string {
	if shell == Bash {
		return Bash
	}
	return Zsh
}

func writeExports(b *strings.Builder, p Params) {
	b.WriteString("\n# Session environment\n")
	for _, v := range p.Snapshot.Vars() {
		fmt.Fprintf(b, "export %s=%s\n", v.Name, quote(v.Value))
	}
	fmt.Fprintf(b, "export HISTFILE=%s\n", quote(p.HistFile))
	fmt.Fprintf(b, "export HISTSIZE=%d\n", p.HistSize)
	fmt.Fprintf(b, "export SAVEHIST=%d\n", p.SaveSize)

	// REPORTTIME is a zsh parameter; bash has no equivalent report
	if shellName(p.Shell) == Zsh && p.ReportTime > 0 {
		fmt.Fprintf(b, "export REPORTTIME=%d\n", p.ReportTime)
	}
}

func writeOptions(b *strings.Builder, p Params) {
	directives := options.Directives(shellName(p.Shell))
	if len(directives) == 0 {
		return
	}
	b.WriteString("\n# Session options\n")
	for _, d := range directives {
		b.WriteString(d)
		b.WriteString("\n")
	}
}

func writeBindings(b *strings.Builder, p Params) {
	b.WriteString("\n# Key bindings\n")
	for _, binding := range keymap.Bindings(p.Term) {
		fmt.Fprintf(b, "bindkey %s %s\n", quote(binding.Sequence), binding.Action)
	}
	// Menu completion engages on the second tab press through the
	// completion system, not a bindable key sequence
	b.WriteString("zstyle ':completion:*' menu select\n")
}

func writeZshHooks(b *strings.Builder) {
	b.WriteString(`
# dorc hooks
autoload -Uz add-zsh-hook

__dorc_chpwd() {
  dorc hook chpwd "$PWD"
}
add-zsh-hook chpwd __dorc_chpwd

__dorc_precmd() {
  PROMPT="$(dorc prompt)"
}
add-zsh-hook precmd __dorc_precmd

__dorc_addhistory() {
  dorc history add -- "${1%%$'\n'}"
}
add-zsh-hook zshaddhistory __dorc_addhistory

# Restore the previous session's directory stack
__dorc_restore="$(dorc restore)"
if [ -n "$__dorc_restore" ]; then
  cd -- "$__dorc_restore"
fi
unset __dorc_restore
`)
}

func writeBashHooks(b *strings.Builder) {
	b.WriteString(`
# dorc hooks
__dorc_prompt_command() {
  local last
  last="$(HISTTIMEFORMAT= history 1 | sed 's/^ *[0-9]* *//')"
  if [ -n "$last" ]; then
    dorc history add -- "$last"
  fi
  if [ "$PWD" != "$__dorc_last_pwd" ]; then
    __dorc_last_pwd="$PWD"
    dorc hook chpwd "$PWD"
  fi
  PS1="$(dorc prompt)"
}
PROMPT_COMMAND=__dorc_prompt_command

# Restore the previous session's directory stack
__dorc_restore="$(dorc restore)"
if [ -n "$__dorc_restore" ]; then
  cd -- "$__dorc_restore"
fi
unset __dorc_restore
`)
}

// quote wraps a value in double quotes, escaping embedded quotes
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
