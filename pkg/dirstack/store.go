package dirstack

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/dorc/pkg/errors"
	"github.com/arthur-debert/dorc/pkg/logging"
)

// Store persists the directory stack to a newline-delimited backing file,
// most-recent-first. Writes are full-file rewrite-and-replace so a
// concurrent reader never observes partial state.
type Store struct {
	path    string
	stack   *Stack
	persist bool
	logger  zerolog.Logger
}

// NewStore creates a store backed by path with the given stack capacity.
// When the backing directory cannot be created the store reports the
// failure once and degrades to non-persistent operation; the session
// continues.
func NewStore(path string, capacity int) *Store {
	s := &Store{
		path:    path,
		stack:   NewStack(capacity),
		persist: true,
		logger:  logging.GetLogger("dirstack"),
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		storeErr := errors.Wrap(err, errors.ErrBackingStoreUnavailable,
			"cannot create directory-stack backing location").WithDetail("path", path)
		s.logger.Error().Err(storeErr).Msg("directory stack will not be persisted this session")
		s.persist = false
	}

	return s
}

// Stack exposes the in-memory stack
func (s *Store) Stack() *Stack { return s.stack }

// Restore loads the backing file into an empty in-memory stack and returns
// the directory the session should change into: the top entry when it still
// names an existing directory, empty otherwise. A missing or unreadable
// backing file is treated as an empty stack, never an error. Entries naming
// vanished directories are kept in the stack; only the initial change of
// directory is skipped.
func (s *Store) Restore() string {
	if s.stack.Len() > 0 {
		return ""
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn().Err(err).Str("path", s.path).Msg("unreadable directory-stack file, starting empty")
		}
		return ""
	}

	s.stack.load(strings.Split(strings.TrimRight(string(data), "\n"), "\n"))

	top := s.stack.Top()
	if top == "" {
		return ""
	}
	if info, err := os.Stat(top); err != nil || !info.IsDir() {
		s.logger.Debug().Str("dir", top).Msg("restored top entry no longer exists, keeping current directory")
		return ""
	}
	return top
}

// OnDirectoryChanged records cwd as the new top of the stack and rewrites
// the backing file. Invoked by the shell hook after every successful
// directory change.
func (s *Store) OnDirectoryChanged(cwd string) error {
	s.stack.Push(cwd)
	return s.save()
}

// save rewrites the backing file with write-then-rename so no partial
// state is ever observable.
func (s *Store) save() error {
	if !s.persist {
		return nil
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".dirs-*")
	if err != nil {
		return errors.Wrap(err, errors.ErrStoreWrite, "failed to create temporary stack file")
	}
	tmpName := tmp.Name()

	var sb strings.Builder
	for _, dir := range s.stack.Entries() {
		sb.WriteString(dir)
		sb.WriteByte('\n')
	}

	if _, err := tmp.WriteString(sb.String()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return errors.Wrap(err, errors.ErrStoreWrite, "failed to write stack file")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return errors.Wrap(err, errors.ErrStoreWrite, "failed to close stack file")
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return errors.Wrap(err, errors.ErrStoreWrite, "failed to replace stack file")
	}

	s.logger.Trace().Str("path", s.path).Int("entries", s.stack.Len()).Msg("directory stack persisted")
	return nil
}
