// Package config loads dorc's layered configuration: embedded defaults,
// then the user's config file, then DORC_* environment overrides.
package config

import (
	_ "embed"
	"os"
	"strings"

	stderrors "errors"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/dorc/pkg/errors"
)

//go:embed dorc.toml
var defaultConfig []byte

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// Environment holds editor, pager, and search-path settings
type Environment struct {
	Editor        string              `koanf:"editor"`
	Pager         string              `koanf:"pager"`
	PagerFallback string              `koanf:"pager_fallback"`
	Path          map[string][]string `koanf:"path"`
}

// History holds command-history retention settings
type History struct {
	Size     int `koanf:"size"`
	SaveSize int `koanf:"save_size"`
}

// DirStack holds directory-stack settings
type DirStack struct {
	Size int `koanf:"size"`
}

// Prompt holds prompt rendering settings
type Prompt struct {
	ReportTime int `koanf:"report_time"`
}

// Config is the fully merged configuration for one session
type Config struct {
	Environment Environment `koanf:"environment"`
	History     History     `koanf:"history"`
	DirStack    DirStack    `koanf:"dirstack"`
	Prompt      Prompt      `koanf:"prompt"`
}

// Load merges defaults, the user config file (if present), and environment
// overrides into a Config. A missing user file is not an error.
func Load(configFile string) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default config")
	}

	// 2. User config file, when one exists
	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			if err := k.Load(file.Provider(configFile), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", configFile)
			}
		}
	}

	// 3. Environment overrides: DORC_HISTORY_SIZE -> history.size
	if err := k.Load(env.Provider("DORC_", ".", func(s string) string {
		return strings.ToLower(strings.Replace(
			strings.TrimPrefix(s, "DORC_"), "_", ".", 1))
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal config")
	}
	return &cfg, nil
}

// Defaults returns the compiled-in configuration without file or
// environment overrides applied.
func Defaults() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default config")
	}
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal default config")
	}
	return &cfg, nil
}

// DefaultTOML returns the embedded default configuration verbatim,
// for `dorc genconfig`.
func DefaultTOML() []byte {
	out := make([]byte, len(defaultConfig))
	copy(out, defaultConfig)
	return out
}
