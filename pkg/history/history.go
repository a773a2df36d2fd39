// Package history implements the shared command history: an append-only,
// size-bounded, timestamped log visible to every concurrently running
// session of the same user through a common backing file.
package history

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/dorc/pkg/errors"
	"github.com/arthur-debert/dorc/pkg/logging"
)

// DefaultCap is the retained entry count when none is configured
const DefaultCap = 10000

// Entry is one retained command with its completion timestamp
type Entry struct {
	When    time.Time
	Command string
}

// Store is the shared history backed by an extended-format line file:
//
//	: <unix-seconds>:0;<command>
//
// Appends are immediate (one write per completed command) so other
// running sessions can pick entries up; each record is a complete line,
// which keeps concurrent appends from corrupting the file structure.
type Store struct {
	path    string
	cap     int
	persist bool
	logger  zerolog.Logger
}

// NewStore creates a history store backed by path, retaining at most cap
// entries. An uncreatable backing location is reported once; the store
// then degrades to non-persistent operation.
func NewStore(path string, cap int) *Store {
	if cap <= 0 {
		cap = DefaultCap
	}
	s := &Store{
		path:    path,
		cap:     cap,
		persist: true,
		logger:  logging.GetLogger("history"),
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		storeErr := errors.Wrap(err, errors.ErrBackingStoreUnavailable,
			"cannot create history backing location").WithDetail("path", path)
		s.logger.Error().Err(storeErr).Msg("command history will not be persisted this session")
		s.persist = false
	}

	return s
}

// Add appends one completed command. Commands with a leading space are the
// deliberate private-command escape hatch and are never persisted; a
// command identical to the immediately preceding retained entry is dropped.
// When the file grows past the retention cap the oldest entries are
// evicted by rewrite.
func (s *Store) Add(command string, when time.Time) error {
	if !s.persist {
		return nil
	}
	if command == "" || strings.HasPrefix(command, " ") {
		return nil
	}
	// Multi-line records would break the one-record-per-line discipline
	command = strings.ReplaceAll(strings.TrimRight(command, "\n"), "\n", " ")

	entries, err := s.Load()
	if err != nil {
		return err
	}
	if len(entries) > 0 && entries[len(entries)-1].Command == command {
		s.logger.Trace().Str("command", command).Msg("consecutive duplicate dropped")
		return nil
	}

	if len(entries)+1 > s.cap {
		// Evict oldest and rewrite; the new entry goes on the end
		entries = append(entries, Entry{When: when, Command: command})
		return s.rewrite(entries[len(entries)-s.cap:])
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return errors.Wrap(err, errors.ErrStoreWrite, "failed to open history file")
	}
	defer func() { _ = f.Close() }()

	if _, err := fmt.Fprintf(f, ": %d:0;%s\n", when.Unix(), command); err != nil {
		return errors.Wrap(err, errors.ErrStoreWrite, "failed to append history entry")
	}
	return nil
}

// Load reads retained entries, oldest first, up to the retention cap.
// A missing backing file yields an empty history; malformed lines are
// tolerated and skipped.
func (s *Store) Load() ([]Entry, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, errors.ErrStoreRead, "failed to open history file")
	}
	defer func() { _ = f.Close() }()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		entry, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrStoreRead, "failed to read history file")
	}

	if len(entries) > s.cap {
		entries = entries[len(entries)-s.cap:]
	}
	return entries, nil
}

// rewrite replaces the backing file with the given entries, newest last,
// using write-then-rename.
func (s *Store) rewrite(entries []Entry) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".history-*")
	if err != nil {
		return errors.Wrap(err, errors.ErrStoreWrite, "failed to create temporary history file")
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	for _, e := range entries {
		fmt.Fprintf(w, ": %d:0;%s\n", e.When.Unix(), e.Command)
	}
	if err := w.Flush(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return errors.Wrap(err, errors.ErrStoreWrite, "failed to write history file")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return errors.Wrap(err, errors.ErrStoreWrite, "failed to close history file")
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return errors.Wrap(err, errors.ErrStoreWrite, "failed to replace history file")
	}

	s.logger.Debug().Int("entries", len(entries)).Msg("history compacted to retention cap")
	return nil
}

// parseLine parses one extended-format history line
func parseLine(line string) (Entry, bool) {
	if !strings.HasPrefix(line, ": ") {
		return Entry{}, false
	}
	rest := line[2:]
	colon := strings.IndexByte(rest, ':')
	if colon < 0 {
		return Entry{}, false
	}
	ts, err := strconv.ParseInt(rest[:colon], 10, 64)
	if err != nil {
		return Entry{}, false
	}
	semi := strings.IndexByte(rest[colon:], ';')
	if semi < 0 {
		return Entry{}, false
	}
	command := rest[colon+semi+1:]
	if command == "" {
		return Entry{}, false
	}
	return Entry{When: time.Unix(ts, 0), Command: command}, true
}
