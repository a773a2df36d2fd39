package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Prompt segment styles
var (
	PrivilegedUserStyle = lipgloss.NewStyle().
				Foreground(PrivilegedColor).
				Bold(true)

	UserStyle = lipgloss.NewStyle().
			Foreground(UnprivilegedColor).
			Bold(true)

	RemoteHostStyle = lipgloss.NewStyle().
			Foreground(RemoteHostColor).
			Bold(true)

	LocalHostStyle = lipgloss.NewStyle().
			Foreground(LocalHostColor)

	PathStyle = lipgloss.NewStyle().
			Foreground(PathColor)

	VcsStyle = lipgloss.NewStyle().
			Foreground(VcsColor)
)

// General text styles
var (
	NormalStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)
)

// Listing styles
var (
	DirStyle = lipgloss.NewStyle().
			Foreground(DirColor).
			Bold(true)

	SymlinkStyle = lipgloss.NewStyle().
			Foreground(SymlinkColor)

	ExecutableStyle = lipgloss.NewStyle().
			Foreground(ExecutableColor)
)
