package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pad2048/internal/core"
)

type cellStyle struct {
	fg, bg core.Color
}

// styleCache maps colour pairs to lipgloss styles.
type styleCache map[cellStyle]lipgloss.Style

func (c styleCache) get(fg, bg core.Color) lipgloss.Style {
	k := cellStyle{fg, bg}
	if st, ok := c[k]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if !fg.IsDefault() {
		st = st.Foreground(lipgloss.Color(fg.Hex()))
	}
	if !bg.IsDefault() {
		st = st.Background(lipgloss.Color(bg.Hex()))
	}
	c[k] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	styles := styleCache{}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			// Collect consecutive cells with the same colours
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start.Fg.IsDefault() && start.Bg.IsDefault() {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styles.get(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
