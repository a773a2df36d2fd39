// Package platform detects the running platform and terminal once at
// session start. Components receive the resulting descriptor instead of
// re-probing the system ad hoc.
package platform

import (
	"os"
	"os/exec"
	"runtime"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Family identifies the operating system family
type Family string

const (
	Darwin Family = "darwin"
	Linux  Family = "linux"
	Other  Family = "other"
)

// Descriptor captures platform and terminal capabilities for one session.
// Computed once by Detect; treated as immutable afterward.
type Descriptor struct {
	// Family is the operating system family
	Family Family

	// Term is the terminal type from $TERM, empty when unset
	Term string

	// Interactive reports whether stdout is attached to a terminal
	Interactive bool

	// ColorCapable reports whether the terminal supports color output
	ColorCapable bool

	// RemoteSession reports whether an SSH session marker is present
	RemoteSession bool
}

// Detect computes the platform descriptor for the current process.
func Detect() *Descriptor {
	d := &Descriptor{
		Term: os.Getenv("TERM"),
	}

	switch runtime.GOOS {
	case "darwin":
		d.Family = Darwin
	case "linux":
		d.Family = Linux
	default:
		d.Family = Other
	}

	d.Interactive = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

	if os.Getenv("NO_COLOR") != "" {
		d.ColorCapable = false
	} else {
		d.ColorCapable = d.Interactive && termenv.ColorProfile() != termenv.Ascii
	}

	d.RemoteSession = IsRemoteSession()

	return d
}

// IsRemoteSession reports whether the process runs inside an SSH session.
// Any non-empty SSH marker counts.
func IsRemoteSession() bool {
	for _, v := range []string{"SSH_CONNECTION", "SSH_CLIENT", "SSH_TTY"} {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}

// DirExists reports whether path names an existing directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ToolAvailable reports whether an executable is reachable via PATH.
func ToolAvailable(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
