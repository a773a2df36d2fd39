// Package dirstack maintains the session's directory history: an ordered,
// deduplicated, capacity-bounded stack of visited directories persisted to
// a newline-delimited backing file.
package dirstack

// DefaultCapacity is the retained directory count when none is configured
const DefaultCapacity = 20

// Stack is an in-memory directory stack, most-recent-first, no duplicates.
type Stack struct {
	entries  []string
	capacity int
}

// NewStack creates an empty stack with the given capacity.
// Non-positive capacities fall back to DefaultCapacity.
func NewStack(capacity int) *Stack {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Stack{capacity: capacity}
}

// Push makes dir the new top entry. A prior occurrence of dir is removed
// first, so the stack never holds duplicates. When the stack still exceeds
// capacity after deduplication, the oldest entry is evicted (dedup first,
// evict after).
func (s *Stack) Push(dir string) {
	if dir == "" {
		return
	}
	s.remove(dir)
	s.entries = append([]string{dir}, s.entries...)
	if len(s.entries) > s.capacity {
		s.entries = s.entries[:s.capacity]
	}
}

// remove deletes the first occurrence of dir, if any
func (s *Stack) remove(dir string) {
	for i, e := range s.entries {
		if e == dir {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

// Top returns the most recent directory, or empty for an empty stack
func (s *Stack) Top() string {
	if len(s.entries) == 0 {
		return ""
	}
	return s.entries[0]
}

// Entries returns the stack contents most-recent-first
func (s *Stack) Entries() []string {
	out := make([]string, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of retained directories
func (s *Stack) Len() int { return len(s.entries) }

// load replaces the stack contents with entries, preserving order,
// dropping blanks and duplicates, and enforcing capacity.
func (s *Stack) load(entries []string) {
	s.entries = s.entries[:0]
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if e == "" {
			continue
		}
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		s.entries = append(s.entries, e)
		if len(s.entries) == s.capacity {
			break
		}
	}
}
