package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arcade-tui/arkanoid/internal/core"
)

// KeyMap holds the key bindings for a game session. Bindings carry their own
// help text, so the pause menu and the bindings can never drift apart.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Release    key.Binding
	StartPause key.Binding
	Reset      key.Binding
	Hardcore   key.Binding
	Music      key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/←", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/→", "move right"),
		),
		Release: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "release ball"),
		),
		StartPause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "start/pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r", "delete"),
			key.WithHelp("r", "reset"),
		),
		Hardcore: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "hardcore mode"),
		),
		Music: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "music on/off"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Map translates a key message to a game action.
func (k KeyMap) Map(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Release):
		return core.ActionRelease
	case key.Matches(msg, k.StartPause):
		return core.ActionStartPause
	case key.Matches(msg, k.Reset):
		return core.ActionReset
	case key.Matches(msg, k.Hardcore):
		return core.ActionHardcore
	case key.Matches(msg, k.Music):
		return core.ActionMusic
	}
	return core.ActionNone
}
