// Package game2048 implements the 4x4 tile-merging board: swipe and merge,
// tile spawning, terminal detection, the tile palette and a screen renderer.
package game2048

import (
	"fmt"
	"strings"
)

// Direction represents a swipe direction.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "None"
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// ParseDirection converts a direction name, in any case, back into a Direction.
func ParseDirection(s string) (Direction, bool) {
	for _, d := range Directions {
		if strings.EqualFold(s, d.String()) {
			return d, true
		}
	}
	return DirNone, false
}

// Directions lists the four swipe directions.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// BoardSize is the board dimension.
const BoardSize = 4

// Board represents the 4x4 grid, indexed [row][col] with row 0 at the top.
// A cell holds 0 (empty) or a power of two >= 2.
type Board [BoardSize][BoardSize]int

// Cell addresses one board position.
type Cell struct {
	Row, Col int
}

// SwipeResult describes what a swipe did to the board.
type SwipeResult struct {
	Merges int  // Number of tile pairs combined
	Points int  // Sum of the values produced by merges
	Moved  bool // Whether any cell changed
}

// Combo reports whether at least one merge occurred.
func (r SwipeResult) Combo() bool {
	return r.Merges > 0
}

// lineOrder lists, for each direction, the cell index along a line starting at
// the edge tiles move toward and walking inward.
var lineOrder = map[Direction][BoardSize]int{
	DirRight: {3, 2, 1, 0},
	DirLeft:  {0, 1, 2, 3},
	DirUp:    {0, 1, 2, 3},
	DirDown:  {3, 2, 1, 0},
}

// compactPasses is the number of slide passes before merging; three passes
// fully compact a line of four regardless of how the gaps are distributed.
const compactPasses = 3

// line is a view of one row or column ordered from the target edge inward.
type line [BoardSize]*int

// lineAt returns line k (a row for Left/Right, a column for Up/Down).
func (b *Board) lineAt(dir Direction, k int) line {
	order := lineOrder[dir]
	var l line
	for i, idx := range order {
		if dir == DirLeft || dir == DirRight {
			l[i] = &b[k][idx]
		} else {
			l[i] = &b[idx][k]
		}
	}
	return l
}

// compact performs one edge-ward slide: every empty cell pulls in its inward
// neighbour. A single pass moves each tile at most one step per gap it meets
// in scan order.
func (l line) compact() {
	for i := 0; i < BoardSize-1; i++ {
		if *l[i] == 0 {
			*l[i] = *l[i+1]
			*l[i+1] = 0
		}
	}
}

// merge combines equal non-zero neighbours scanning from the edge inward.
// The inward cell is zeroed, so a freshly doubled tile never merges again in
// the same pass.
func (l line) merge() (merges, points int) {
	for i := 0; i < BoardSize-1; i++ {
		if *l[i] != 0 && *l[i] == *l[i+1] {
			*l[i] *= 2
			*l[i+1] = 0
			merges++
			points += *l[i]
		}
	}
	return merges, points
}

// ApplySwipe slides and merges every line toward the direction's edge.
// DirNone (or any unknown direction) leaves the board untouched.
func (b *Board) ApplySwipe(dir Direction) SwipeResult {
	if _, ok := lineOrder[dir]; !ok {
		return SwipeResult{}
	}

	before := *b
	var res SwipeResult

	for k := range BoardSize {
		l := b.lineAt(dir, k)

		for range compactPasses {
			l.compact()
		}

		merges, points := l.merge()
		res.Merges += merges
		res.Points += points

		// Close the gaps left by merging
		l.compact()
	}

	res.Moved = *b != before
	return res
}

// IsFull returns true if no cell is empty.
func (b Board) IsFull() bool {
	for row := range BoardSize {
		for col := range BoardSize {
			if b[row][col] == 0 {
				return false
			}
		}
	}
	return true
}

// HasPossibleMerge returns true if any horizontally or vertically adjacent
// tiles hold equal values. Empty cells never merge.
func (b Board) HasPossibleMerge() bool {
	for row := range BoardSize {
		for col := range BoardSize {
			val := b[row][col]
			if val == 0 {
				continue
			}
			if col < BoardSize-1 && b[row][col+1] == val {
				return true
			}
			if row < BoardSize-1 && b[row+1][col] == val {
				return true
			}
		}
	}
	return false
}

// HasAnyMove returns true if the board is not full or any neighbours can merge.
// A full board without an equal adjacent pair is terminal.
func (b Board) HasAnyMove() bool {
	return !b.IsFull() || b.HasPossibleMerge()
}

// EmptyCells returns the coordinates of all empty cells in row-major order.
func (b Board) EmptyCells() []Cell {
	var cells []Cell
	for row := range BoardSize {
		for col := range BoardSize {
			if b[row][col] == 0 {
				cells = append(cells, Cell{Row: row, Col: col})
			}
		}
	}
	return cells
}

// MaxTile returns the maximum tile value on the board.
func (b Board) MaxTile() int {
	maxVal := 0
	for row := range BoardSize {
		for col := range BoardSize {
			maxVal = max(maxVal, b[row][col])
		}
	}
	return maxVal
}

// TileCount returns the number of non-empty cells.
func (b Board) TileCount() int {
	return BoardSize*BoardSize - len(b.EmptyCells())
}

// Sum returns the total of all tile values.
func (b Board) Sum() int {
	total := 0
	for row := range BoardSize {
		for col := range BoardSize {
			total += b[row][col]
		}
	}
	return total
}

// Valid reports whether every cell is 0 or a power of two >= 2.
func (b Board) Valid() bool {
	for row := range BoardSize {
		for col := range BoardSize {
			v := b[row][col]
			if v == 0 {
				continue
			}
			if v < 2 || v&(v-1) != 0 {
				return false
			}
		}
	}
	return true
}

// String formats the board as four right-aligned rows, for logs and tests.
func (b Board) String() string {
	var sb strings.Builder
	for row := range BoardSize {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := range BoardSize {
			if col > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%4d", b[row][col])
		}
	}
	return sb.String()
}
