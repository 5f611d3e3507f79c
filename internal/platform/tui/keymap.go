package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pad2048/internal/game2048"
	"github.com/vovakirdan/pad2048/internal/gesture"
)

// padKeys is the keyboard block standing in for the electrode grid,
// laid out like the pads: 4 rows by 3 columns.
var padKeys = [gesture.LayoutRows][gesture.LayoutCols]string{
	{"1", "2", "3"},
	{"q", "w", "e"},
	{"a", "s", "d"},
	{"z", "x", "c"},
}

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Pads    [gesture.PadCount]key.Binding // Pads[i] touches pad i+1
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Toggle  key.Binding
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Toggle, k.Restart, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Pads[0], k.Toggle, k.Restart},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	var km KeyMap
	for row := range gesture.LayoutRows {
		for col := range gesture.LayoutCols {
			pad := gesture.PadAt(row, col)
			km.Pads[pad-1] = key.NewBinding(key.WithKeys(padKeys[row][col]))
		}
	}
	// One help entry stands for the whole block
	km.Pads[0].SetHelp("1-3 q-e a-d z-c", "touch pad")

	km.Up = key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("arrows", "swipe"),
	)
	km.Down = key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("down", "swipe down"),
	)
	km.Left = key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("left", "swipe left"),
	)
	km.Right = key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("right", "swipe right"),
	)
	km.Toggle = key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "swipe/direct"),
	)
	km.Restart = key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "restart"),
	)
	km.Help = key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	)
	km.Quit = key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	)
	return km
}

// Pad returns the pad a key touches.
func (k KeyMap) Pad(msg tea.KeyMsg) (int, bool) {
	for i, b := range k.Pads {
		if key.Matches(msg, b) {
			return i + 1, true
		}
	}
	return 0, false
}

// Swipe returns the direction an arrow key stands for.
func (k KeyMap) Swipe(msg tea.KeyMsg) (game2048.Direction, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return game2048.DirUp, true
	case key.Matches(msg, k.Down):
		return game2048.DirDown, true
	case key.Matches(msg, k.Left):
		return game2048.DirLeft, true
	case key.Matches(msg, k.Right):
		return game2048.DirRight, true
	}
	return game2048.DirNone, false
}

// PadKey returns the key bound to a pad, for the on-screen grid.
func PadKey(pad int) string {
	for row := range gesture.LayoutRows {
		for col := range gesture.LayoutCols {
			if gesture.PadAt(row, col) == pad {
				return padKeys[row][col]
			}
		}
	}
	return ""
}
