// pkg/keymap/keymap_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test terminal-keyed binding table resolution

package keymap_test

import (
	"testing"

	"github.com/arthur-debert/dorc/pkg/keymap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findBinding(bindings []keymap.Binding, action keymap.Action) (keymap.Binding, bool) {
	for _, b := range bindings {
		if b.Action == action {
			return b, true
		}
	}
	return keymap.Binding{}, false
}

func TestBindingsDefault(t *testing.T) {
	bindings := keymap.Bindings("xterm-256color")
	require.NotEmpty(t, bindings)

	home, ok := findBinding(bindings, keymap.MoveLineStart)
	require.True(t, ok)
	assert.Equal(t, `^[[H`, home.Sequence)
}

func TestBindingsTerminalOverride(t *testing.T) {
	bindings := keymap.Bindings("rxvt-unicode")

	home, ok := findBinding(bindings, keymap.MoveLineStart)
	require.True(t, ok)
	assert.Equal(t, `^[[7~`, home.Sequence)

	// Actions without an override keep the default sequence
	del, ok := findBinding(bindings, keymap.DeleteChar)
	require.True(t, ok)
	assert.Equal(t, `^[[3~`, del.Sequence)
}

func TestBindingsUnknownTerminal(t *testing.T) {
	assert.Equal(t, keymap.Bindings("xterm"), keymap.Bindings("some-exotic-term"))
}

func TestBindingsStableOrder(t *testing.T) {
	assert.Equal(t, keymap.Bindings("xterm"), keymap.Bindings("xterm"))
}

func TestEveryActionBound(t *testing.T) {
	bindings := keymap.Bindings("linux")
	actions := map[keymap.Action]bool{}
	for _, b := range bindings {
		actions[b.Action] = true
	}

	for _, a := range []keymap.Action{
		keymap.MoveLineStart, keymap.MoveLineEnd, keymap.DeleteChar,
		keymap.HistorySearchBack, keymap.HistorySearchFwd,
	} {
		assert.True(t, actions[a], "action %s must be bound", a)
	}
}

func TestNoMultiKeySequences(t *testing.T) {
	// Each binding must be one dispatchable sequence; the line editor
	// never sees two keypresses as a single capability string
	for _, b := range keymap.Bindings("xterm") {
		assert.NotContains(t, b.Sequence, `^I`, "binding %s uses a multi-press sequence", b.Action)
	}
}
