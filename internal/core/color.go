package core

import "fmt"

// Color is a 24-bit RGB colour for a screen cell.
// ColorDefault leaves the terminal's own colour in place.
type Color int32

const (
	ColorDefault Color = -1
	ColorBlack   Color = 0x000000
	ColorWhite   Color = 0xFFFFFF
	ColorGray    Color = 0x808080
)

// RGB packs three 8-bit channels into a Color.
func RGB(r, g, b uint8) Color {
	return Color(int32(r)<<16 | int32(g)<<8 | int32(b))
}

// IsDefault reports whether the colour defers to the terminal.
func (c Color) IsDefault() bool {
	return c < 0
}

// Hex returns the colour as "#RRGGBB", or "" for ColorDefault.
func (c Color) Hex() string {
	if c.IsDefault() {
		return ""
	}
	return fmt.Sprintf("#%06X", int32(c)&0xFFFFFF)
}
