package game2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/pad2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 4 // Height of each cell (including top border)

	// BoardWidth and BoardHeight are the rendered grid size in characters.
	BoardWidth  = BoardSize*cellWidth + 1
	BoardHeight = BoardSize*cellHeight + 1
)

// GameOverBanner is the fixed text shown once no move remains.
const GameOverBanner = "GAME OVER"

// ScreenRenderer draws boards into a core.Screen.
// The grid is centered horizontally and placed at row Top.
type ScreenRenderer struct {
	Screen *core.Screen
	Top    int

	frames int
}

// NewScreenRenderer creates a renderer drawing into dst.
func NewScreenRenderer(dst *core.Screen, top int) *ScreenRenderer {
	return &ScreenRenderer{Screen: dst, Top: top}
}

// Frames returns how many draw calls the renderer has served.
func (r *ScreenRenderer) Frames() int {
	return r.frames
}

// DrawBoard renders the grid with coloured tiles and their values.
func (r *ScreenRenderer) DrawBoard(b Board) {
	r.frames++
	x := (r.Screen.Width() - BoardWidth) / 2
	RenderBoard(r.Screen, b, max(x, 0), r.Top)
}

// DrawGameOver blanks the board area and shows the terminal banner.
func (r *ScreenRenderer) DrawGameOver(b Board) {
	r.frames++
	RenderGameOver(r.Screen, b, r.Top)
}

// RenderBoard draws the 4x4 grid with its top-left corner at (boardX, boardY).
func RenderBoard(dst *core.Screen, b Board, boardX, boardY int) {
	drawGrid(dst, boardX, boardY)

	for row := range BoardSize {
		for col := range BoardSize {
			val := b[row][col]

			// Interior of the cell, inside the grid lines
			inner := core.NewRect(
				boardX+col*cellWidth+1,
				boardY+row*cellHeight+1,
				cellWidth-1,
				cellHeight-1,
			)
			color := TileColor(val)
			dst.FillRect(inner, color)

			if val == 0 {
				continue
			}

			label := strconv.Itoa(val)
			padLeft := max((inner.W-len(label))/2, 0)
			_, cy := inner.Center()
			dst.DrawTextColored(inner.X+padLeft, cy, label, core.ColorBlack, color)
		}
	}
}

// drawGrid draws the box-drawing borders of the board.
func drawGrid(dst *core.Screen, boardX, boardY int) {
	for y := range BoardSize + 1 {
		for x := range BoardSize + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == BoardSize:
				corner = '┐'
			case y == BoardSize && x == 0:
				corner = '└'
			case y == BoardSize && x == BoardSize:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == BoardSize:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == BoardSize:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < BoardSize {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}

			if y < BoardSize {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}
}

// RenderGameOver clears the board area to black and draws the boxed banner
// with the highest tile reached.
func RenderGameOver(dst *core.Screen, b Board, top int) {
	area := core.NewRect(0, top, dst.Width(), BoardHeight)
	dst.FillRect(area, core.ColorBlack)

	lines := []string{GameOverBanner, fmt.Sprintf("Max tile: %d", b.MaxTile())}
	w := max(len(lines[0]), len(lines[1])) + 4
	_, cy := area.Center()
	dst.DrawBox(core.NewRect((dst.Width()-w)/2, cy-2, w, len(lines)+2))

	for i, line := range lines {
		x := (dst.Width() - len(line)) / 2
		dst.DrawTextColored(x, cy-1+i, line, core.ColorWhite, core.ColorBlack)
	}
}
