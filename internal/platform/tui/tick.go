// Package tui provides the Bubble Tea front end for pad2048.
// It emulates the touch grid on the keyboard, drives the session tick loop
// and renders the board.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a session tick.
type TickMsg time.Time

// spawnMsg reveals the frame held back by the spawn delay.
type spawnMsg struct {
	generation uint64
}

// tickCmd returns a Bubble Tea command that sends a tick after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// spawnCmd returns a command that reveals pending frames after delay.
func spawnCmd(delay time.Duration, generation uint64) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return spawnMsg{generation: generation}
	})
}
