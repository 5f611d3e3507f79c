package game2048

import (
	"math/rand"
	"strings"
	"testing"
)

func rowBoard(row [BoardSize]int) Board {
	var b Board
	b[0] = row
	return b
}

func TestApplySwipeRow(t *testing.T) {
	tests := []struct {
		name     string
		dir      Direction
		input    [4]int
		expected [4]int
		merges   int
		points   int
	}{
		{
			name:     "right four equal collapse to two",
			dir:      DirRight,
			input:    [4]int{2, 2, 2, 2},
			expected: [4]int{0, 0, 4, 4},
			merges:   2,
			points:   8,
		},
		{
			name:     "right pair slides to edge",
			dir:      DirRight,
			input:    [4]int{2, 2, 0, 0},
			expected: [4]int{0, 0, 0, 4},
			merges:   1,
			points:   4,
		},
		{
			name:     "right across gaps without merge",
			dir:      DirRight,
			input:    [4]int{4, 0, 0, 2},
			expected: [4]int{0, 0, 4, 2},
		},
		{
			name:     "left nearer pair merges first",
			dir:      DirLeft,
			input:    [4]int{2, 0, 2, 2},
			expected: [4]int{4, 2, 0, 0},
			merges:   1,
			points:   4,
		},
		{
			name:     "left four equal collapse to two",
			dir:      DirLeft,
			input:    [4]int{2, 2, 2, 2},
			expected: [4]int{4, 4, 0, 0},
			merges:   2,
			points:   8,
		},
		{
			name:     "left no chain merge",
			dir:      DirLeft,
			input:    [4]int{2, 2, 4, 0},
			expected: [4]int{4, 4, 0, 0},
			merges:   1,
			points:   4,
		},
		{
			name:     "left two different pairs",
			dir:      DirLeft,
			input:    [4]int{4, 4, 8, 8},
			expected: [4]int{8, 16, 0, 0},
			merges:   2,
			points:   24,
		},
		{
			name:     "left single tile",
			dir:      DirLeft,
			input:    [4]int{0, 0, 0, 2},
			expected: [4]int{2, 0, 0, 0},
		},
		{
			name:     "no merge possible",
			dir:      DirLeft,
			input:    [4]int{2, 4, 8, 16},
			expected: [4]int{2, 4, 8, 16},
		},
		{
			name:     "empty row",
			dir:      DirRight,
			input:    [4]int{0, 0, 0, 0},
			expected: [4]int{0, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := rowBoard(tt.input)
			res := b.ApplySwipe(tt.dir)
			if b[0] != tt.expected {
				t.Errorf("ApplySwipe(%v) on %v = %v, want %v", tt.dir, tt.input, b[0], tt.expected)
			}
			if res.Merges != tt.merges {
				t.Errorf("merges = %d, want %d", res.Merges, tt.merges)
			}
			if res.Points != tt.points {
				t.Errorf("points = %d, want %d", res.Points, tt.points)
			}
			if res.Combo() != (tt.merges > 0) {
				t.Errorf("Combo() = %v with %d merges", res.Combo(), res.Merges)
			}
			if res.Moved != (tt.input != tt.expected) {
				t.Errorf("Moved = %v, want %v", res.Moved, tt.input != tt.expected)
			}
		})
	}
}

func TestApplySwipeUp(t *testing.T) {
	b := Board{
		{2, 4, 2, 0},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 2},
	}

	expected := Board{
		{4, 8, 4, 2},
		{0, 0, 4, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	res := b.ApplySwipe(DirUp)

	if b != expected {
		t.Errorf("ApplySwipe(Up): got\n%v\nwant\n%v", b, expected)
	}
	if res.Merges != 4 {
		t.Errorf("ApplySwipe(Up) merges = %d, want 4", res.Merges)
	}
}

func TestApplySwipeDown(t *testing.T) {
	b := Board{
		{2, 4, 2, 2},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 0},
	}

	expected := Board{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 4, 0},
		{4, 8, 4, 2},
	}

	res := b.ApplySwipe(DirDown)

	if b != expected {
		t.Errorf("ApplySwipe(Down): got\n%v\nwant\n%v", b, expected)
	}
	if !res.Moved {
		t.Error("ApplySwipe(Down) should report movement")
	}
}

func TestApplySwipeNone(t *testing.T) {
	b := Board{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 4},
	}
	before := b

	res := b.ApplySwipe(DirNone)

	if b != before || res != (SwipeResult{}) {
		t.Errorf("ApplySwipe(None) changed the board or reported %+v", res)
	}
}

func TestNoChangeWhenAligned(t *testing.T) {
	b := Board{
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	res := b.ApplySwipe(DirLeft)

	if res.Moved {
		t.Error("ApplySwipe(Left) should not move already left-aligned tiles")
	}
}

// randomBoard fills a board with small tiles and gaps.
func randomBoard(rng *rand.Rand) Board {
	values := []int{0, 0, 2, 2, 4, 8}
	var b Board
	for row := range BoardSize {
		for col := range BoardSize {
			b[row][col] = values[rng.Intn(len(values))]
		}
	}
	return b
}

func TestSwipeMergeCountProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		b := randomBoard(rng)
		for _, dir := range Directions {
			next := b
			before := next.TileCount()
			sumBefore := next.Sum()

			res := next.ApplySwipe(dir)

			if got := before - next.TileCount(); got != res.Merges {
				t.Fatalf("%v on\n%v\nremoved %d tiles with %d merges", dir, b, got, res.Merges)
			}
			if next.Sum() != sumBefore {
				t.Fatalf("%v changed the tile sum from %d to %d", dir, sumBefore, next.Sum())
			}
			if !next.Valid() {
				t.Fatalf("%v produced an invalid board\n%v", dir, next)
			}
		}
	}
}

func TestSwipeStableBoardIsFixedPoint(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 200; i++ {
		b := randomBoard(rng)
		for _, dir := range Directions {
			next := b
			// Converge: each application either merges or leaves the board alone
			for range BoardSize * BoardSize {
				if !next.ApplySwipe(dir).Moved {
					break
				}
			}

			stable := next
			res := next.ApplySwipe(dir)
			if res.Moved || next != stable {
				t.Fatalf("%v changed a stable board\n%v\ninto\n%v", dir, stable, next)
			}
		}
	}
}

func TestSwipeWithoutMergeIsCompact(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 200; i++ {
		b := randomBoard(rng)
		for _, dir := range Directions {
			next := b
			next.ApplySwipe(dir)
			again := next
			if again.ApplySwipe(dir).Merges == 0 && again != next {
				t.Fatalf("%v moved tiles of an already swiped board\n%v", dir, next)
			}
		}
	}
}

func TestHasAnyMove(t *testing.T) {
	tests := []struct {
		name     string
		board    Board
		full     bool
		expected bool
	}{
		{
			name: "full without equal neighbours is terminal",
			board: Board{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
			full:     true,
			expected: false,
		},
		{
			name: "full with horizontal pair",
			board: Board{
				{2, 2, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
			full:     true,
			expected: true,
		},
		{
			name: "full with vertical pair",
			board: Board{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 4096},
			},
			full:     true,
			expected: true,
		},
		{
			name: "empty cell",
			board: Board{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 0, 4096},
				{8192, 16384, 32768, 65536},
			},
			full:     false,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.board.IsFull(); got != tt.full {
				t.Errorf("IsFull() = %v, want %v", got, tt.full)
			}
			if got := tt.board.HasAnyMove(); got != tt.expected {
				t.Errorf("HasAnyMove() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestEmptyCells(t *testing.T) {
	b := Board{
		{2, 0, 2, 2},
		{2, 2, 2, 2},
		{2, 2, 2, 0},
		{2, 2, 2, 2},
	}

	cells := b.EmptyCells()
	expected := []Cell{{Row: 0, Col: 1}, {Row: 2, Col: 3}}

	if len(cells) != len(expected) {
		t.Fatalf("EmptyCells() = %v, want %v", cells, expected)
	}
	for i := range expected {
		if cells[i] != expected[i] {
			t.Errorf("EmptyCells()[%d] = %v, want %v", i, cells[i], expected[i])
		}
	}
}

func TestValid(t *testing.T) {
	good := Board{{0, 2, 4, 8}, {16, 32, 64, 128}}
	if !good.Valid() {
		t.Error("powers of two should be valid")
	}

	for _, bad := range []int{1, 3, 6, -2} {
		b := Board{{bad}}
		if b.Valid() {
			t.Errorf("cell value %d should be invalid", bad)
		}
	}
}

func TestBoardHelpers(t *testing.T) {
	b := Board{
		{2, 0, 0, 0},
		{0, 64, 0, 0},
		{0, 0, 4, 0},
		{0, 0, 0, 0},
	}

	if b.MaxTile() != 64 {
		t.Errorf("MaxTile() = %d, want 64", b.MaxTile())
	}
	if b.TileCount() != 3 {
		t.Errorf("TileCount() = %d, want 3", b.TileCount())
	}
	if b.Sum() != 70 {
		t.Errorf("Sum() = %d, want 70", b.Sum())
	}
}

func TestHasPossibleMergeIgnoresEmptyCells(t *testing.T) {
	tests := []struct {
		name     string
		board    Board
		expected bool
	}{
		{"empty board", Board{}, false},
		{"isolated tiles", Board{{2, 0, 4, 0}, {0, 8, 0, 16}}, false},
		{"equal tiles across a gap", Board{{2, 0, 2, 0}}, false},
		{"equal neighbours", Board{{0, 4, 4, 0}}, true},
		{"equal vertical neighbours", Board{{0, 0, 8}, {0, 0, 8}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.board.HasPossibleMerge(); got != tt.expected {
				t.Errorf("HasPossibleMerge() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestBoardQueriesOnReturnedValue(t *testing.T) {
	full := func() Board {
		return Board{
			{2, 4, 2, 4},
			{4, 2, 4, 2},
			{2, 4, 2, 4},
			{4, 2, 4, 2},
		}
	}

	if got := full().TileCount(); got != 16 {
		t.Errorf("TileCount() = %d, want 16", got)
	}
	if !full().IsFull() || full().HasAnyMove() {
		t.Error("checkerboard should be full and terminal")
	}
	if got := full().MaxTile(); got != 4 {
		t.Errorf("MaxTile() = %d, want 4", got)
	}
}

func TestDirectionString(t *testing.T) {
	names := map[Direction]string{
		DirNone:       "None",
		DirUp:         "Up",
		DirDown:       "Down",
		DirLeft:       "Left",
		DirRight:      "Right",
		Direction(42): "Unknown",
	}
	for d, want := range names {
		if d.String() != want {
			t.Errorf("Direction(%d).String() = %q, want %q", d, d.String(), want)
		}
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range Directions {
		got, ok := ParseDirection(strings.ToLower(d.String()))
		if !ok || got != d {
			t.Errorf("ParseDirection(%q) = %v, %v", strings.ToLower(d.String()), got, ok)
		}
	}
	if _, ok := ParseDirection("none"); ok {
		t.Error("ParseDirection should reject none")
	}
	if _, ok := ParseDirection("diagonal"); ok {
		t.Error("ParseDirection should reject unknown names")
	}
}
