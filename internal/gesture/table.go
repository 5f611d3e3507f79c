package gesture

import "github.com/vovakirdan/pad2048/internal/game2048"

// The electrodes form a grid of 4 rows by 3 columns, numbered down each column:
//
//	1   5   9
//	2   6  10
//	3   7  11
//	4   8  12
//
// A swipe is recognised from the pads a finger crosses on this layout.
const (
	LayoutRows = 4
	LayoutCols = 3
)

// PadAt returns the pad index at a layout position, or 0 when out of range.
func PadAt(row, col int) int {
	if row < 0 || row >= LayoutRows || col < 0 || col >= LayoutCols {
		return 0
	}
	return col*LayoutRows + row + 1
}

// anyPad marks a history slot that is not compared.
const anyPad = -1

// swipePath is a recognised history, most recent pad first:
// current, last1, last2, last3.
type swipePath struct {
	history [4]int
	dir     game2048.Direction
}

// swipePaths is the authoritative sequence table for swipe mode.
// Vertical swipes cross the whole middle column; horizontal swipes cross
// the third row and ignore the oldest slot.
var swipePaths = []swipePath{
	{history: [4]int{8, 7, 6, 5}, dir: game2048.DirDown},
	{history: [4]int{11, 7, 3, anyPad}, dir: game2048.DirRight},
	{history: [4]int{5, 6, 7, 8}, dir: game2048.DirUp},
	{history: [4]int{3, 7, 11, anyPad}, dir: game2048.DirLeft},
}

// directPads maps single pads to directions in direct mode.
var directPads = map[int]game2048.Direction{
	8:  game2048.DirDown,
	11: game2048.DirRight,
	5:  game2048.DirUp,
	3:  game2048.DirLeft,
}

func decode(s State) game2048.Direction {
	if s.Mode == ModeDirect {
		if dir, ok := directPads[s.Current]; ok {
			return dir
		}
		return game2048.DirNone
	}

	history := [4]int{s.Current, s.Last1, s.Last2, s.Last3}
	for _, p := range swipePaths {
		if p.matches(history) {
			return p.dir
		}
	}
	return game2048.DirNone
}

func (p swipePath) matches(history [4]int) bool {
	for i, want := range p.history {
		if want != anyPad && history[i] != want {
			return false
		}
	}
	return true
}

// PathFor returns the pads to touch, in temporal order, to produce dir in
// the given mode. It returns nil for DirNone.
func PathFor(mode Mode, dir game2048.Direction) []int {
	if mode == ModeDirect {
		for pad, d := range directPads {
			if d == dir {
				return []int{pad}
			}
		}
		return nil
	}

	for _, p := range swipePaths {
		if p.dir != dir {
			continue
		}
		var path []int
		for i := len(p.history) - 1; i >= 0; i-- {
			if p.history[i] != anyPad {
				path = append(path, p.history[i])
			}
		}
		return path
	}
	return nil
}
