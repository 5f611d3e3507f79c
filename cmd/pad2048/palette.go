package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pad2048/internal/game2048"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Show the tile colour table",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprint(cmd.OutOrStdout(), renderPalette())
	},
}

func renderPalette() string {
	var sb strings.Builder
	for _, e := range game2048.Palette {
		swatch := lipgloss.NewStyle().
			Background(lipgloss.Color(e.Color.Hex())).
			Render("      ")
		fmt.Fprintf(&sb, "%5d  %s  %s\n", e.Value, e.Color.Hex(), swatch)
	}
	return sb.String()
}
