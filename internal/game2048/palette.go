package game2048

import "github.com/vovakirdan/pad2048/internal/core"

// PaletteEntry pairs a tile value with its display colour.
type PaletteEntry struct {
	Value int
	Color core.Color
}

// Palette is the fixed tile colour table: black for an empty cell, then a hue
// progression from red through violet and magenta for 2..2048.
var Palette = [...]PaletteEntry{
	{0, 0x000000},
	{2, 0xFF0000},
	{4, 0xFF8000},
	{8, 0xFFFF00},
	{16, 0x00FF00},
	{32, 0x00FF80},
	{64, 0x00FFFF},
	{128, 0x0008FF},
	{256, 0x0000FF},
	{512, 0x8000FF},
	{1024, 0xFF00FF},
	{2048, 0xFF0080},
}

// TileColor returns the palette colour for a tile value.
// Values beyond 2048 keep the 2048 colour; values not in the table are black.
func TileColor(value int) core.Color {
	for _, e := range Palette {
		if e.Value == value {
			return e.Color
		}
	}
	if value > Palette[len(Palette)-1].Value {
		return Palette[len(Palette)-1].Color
	}
	return core.ColorBlack
}
