package main

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort      = "An interactive shell session configurator"
	MsgInitShort      = "Print the session bootstrap snippet"
	MsgHookShort      = "Entry points invoked by shell hooks"
	MsgChpwdShort     = "Record a directory change and print the listing"
	MsgRestoreShort   = "Print the directory to restore from the previous session"
	MsgPromptShort    = "Render the prompt for the current process state"
	MsgHistoryShort   = "Manage the shared command history"
	MsgHistAddShort   = "Append a completed command to the shared history"
	MsgHistListShort  = "Print the retained command history"
	MsgDirsShort      = "Print the directory stack, most recent first"
	MsgGlobShort      = "Expand a wildcard pattern, failing when nothing matches"
	MsgGenconfigShort = "Print the default configuration"
	MsgTopicsShort    = "Display documentation topics"
	MsgVersionShort   = "Print version information"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat  = "Output format: auto, term, or text"
)

// Long messages
const (
	MsgRootLong = `dorc configures an interactive shell session: environment exports,
directory-stack navigation, shared command history, key bindings, and a
dynamic prompt with version-control status.

Wire it into your shell by adding this line to your rc file:

  eval "$(dorc init zsh)"`

	MsgInitLong = `Print the bootstrap snippet for the given shell (zsh or bash).

The snippet exports the session environment, applies the session options,
binds keys for the detected terminal, installs the directory-change and
prompt hooks, and restores the previous session's directory stack.`

	MsgTopicsLong = "Display extended documentation beyond command help."
)
