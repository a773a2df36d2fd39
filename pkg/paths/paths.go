// Package paths provides centralized path handling for dorc.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvDataDir overrides the XDG data directory for dorc
	EnvDataDir = "DORC_DATA_DIR"

	// EnvConfigDir overrides the XDG config directory for dorc
	EnvConfigDir = "DORC_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for dorc
	EnvStateDir = "DORC_STATE_DIR"

	// EnvDirStackFile overrides the directory-stack backing file
	EnvDirStackFile = "DORC_DIRSTACK_FILE"

	// EnvHistFile overrides the command-history backing file
	EnvHistFile = "DORC_HISTFILE"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files.
// These constants define dorc's on-disk layout and are NOT user-configurable
// beyond the environment overrides above; the backing file formats depend on
// stable locations shared by every concurrent session of the same user.
const (
	// DorcDirName is the directory name for dorc-specific files
	DorcDirName = "dorc"

	// DirStackFileName is the backing file for the directory stack
	DirStackFileName = "dirs"

	// HistFileName is the backing file for shared command history
	HistFileName = "history"

	// ConfigFileName is the user configuration file
	ConfigFileName = "dorc.toml"

	// LogFileName is the name of the log file
	LogFileName = "dorc.log"
)

// Paths provides centralized path management for dorc
type Paths interface {
	DataDir() string
	ConfigDir() string
	StateDir() string
	ConfigFilePath() string
	DirStackFile() string
	HistFile() string
	LogFilePath() string
}

type paths struct {
	dataDir   string
	configDir string
	stateDir  string

	dirStackFile string
	histFile     string
}

// New creates a Paths instance. All locations honor their environment
// overrides first, with a leading ~ expanded, and fall back to XDG base
// directories.
func New() Paths {
	p := &paths{}

	if dir := os.Getenv(EnvDataDir); dir != "" {
		p.dataDir = ExpandHome(dir)
	} else {
		p.dataDir = filepath.Join(xdg.DataHome, DorcDirName)
	}

	if dir := os.Getenv(EnvConfigDir); dir != "" {
		p.configDir = ExpandHome(dir)
	} else {
		p.configDir = filepath.Join(xdg.ConfigHome, DorcDirName)
	}

	if dir := os.Getenv(EnvStateDir); dir != "" {
		p.stateDir = ExpandHome(dir)
	} else {
		p.stateDir = filepath.Join(xdg.StateHome, DorcDirName)
	}

	if file := os.Getenv(EnvDirStackFile); file != "" {
		p.dirStackFile = ExpandHome(file)
	} else {
		p.dirStackFile = filepath.Join(p.stateDir, DirStackFileName)
	}

	if file := os.Getenv(EnvHistFile); file != "" {
		p.histFile = ExpandHome(file)
	} else {
		p.histFile = filepath.Join(p.stateDir, HistFileName)
	}

	return p
}

func (p *paths) DataDir() string   { return p.dataDir }
func (p *paths) ConfigDir() string { return p.configDir }
func (p *paths) StateDir() string  { return p.stateDir }

func (p *paths) ConfigFilePath() string {
	return filepath.Join(p.configDir, ConfigFileName)
}

func (p *paths) DirStackFile() string { return p.dirStackFile }
func (p *paths) HistFile() string     { return p.histFile }

func (p *paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// ExpandHome expands a leading ~ to the user's home directory.
// Paths like ~other are returned unchanged.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if path == "~" {
			return home
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
