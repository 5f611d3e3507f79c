package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pad2048/internal/game2048"
	"github.com/vovakirdan/pad2048/internal/gesture"
	"github.com/vovakirdan/pad2048/internal/session"
)

// HUD styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF8000"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	padStyle = lipgloss.NewStyle().
			Width(3).
			Align(lipgloss.Center).
			Foreground(lipgloss.Color("245"))

	currentPadStyle = padStyle.
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#FFFF00"))

	historyPadStyle = padStyle.
			Foreground(lipgloss.Color("#FFFF00"))

	gameOverStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF0000"))
)

// renderHUD draws the score panel and the pad grid side by side.
func renderHUD(snap session.Snapshot, lastDir game2048.Direction) string {
	var lines []string
	lines = append(lines, titleStyle.Render("pad2048"))
	lines = append(lines, "")
	lines = append(lines, field("Score", fmt.Sprint(snap.Score)))
	lines = append(lines, field("Max", fmt.Sprint(snap.MaxTile)))
	lines = append(lines, field("Moves", fmt.Sprint(snap.Moves)))
	lines = append(lines, field("Mode", snap.Gesture.Mode.String()))
	lines = append(lines, field("Swipe", lastDir.String()))
	lines = append(lines, field("Trail", formatHistory(snap.Gesture)))
	if snap.State == session.StateGameOver {
		lines = append(lines, "", gameOverStyle.Render(game2048.GameOverBanner), labelStyle.Render("r to restart"))
	}

	stats := panelStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.JoinVertical(lipgloss.Left, stats, renderPadGrid(snap.Gesture))
}

func field(label, value string) string {
	return labelStyle.Render(fmt.Sprintf("%-6s", label)) + value
}

// formatHistory lists the pad history oldest first.
func formatHistory(st gesture.State) string {
	var parts []string
	for _, p := range []int{st.Last3, st.Last2, st.Last1, st.Current} {
		if p == 0 {
			continue
		}
		parts = append(parts, fmt.Sprint(p))
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " > ")
}

// renderPadGrid draws the electrode layout with each pad's key, marking the
// current pad and the rest of the history.
func renderPadGrid(st gesture.State) string {
	history := map[int]bool{st.Last1: true, st.Last2: true, st.Last3: true}

	rows := make([]string, 0, gesture.LayoutRows)
	for row := range gesture.LayoutRows {
		cells := make([]string, 0, gesture.LayoutCols)
		for col := range gesture.LayoutCols {
			pad := gesture.PadAt(row, col)
			style := padStyle
			switch {
			case pad == st.Current:
				style = currentPadStyle
			case history[pad]:
				style = historyPadStyle
			}
			cells = append(cells, style.Render(PadKey(pad)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return panelStyle.Render(strings.Join(rows, "\n"))
}
